package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-secure-routes/internal/logger"
	"github.com/MKhiriev/go-secure-routes/internal/metrics"
	"github.com/MKhiriev/go-secure-routes/internal/routing"
	"github.com/MKhiriev/go-secure-routes/internal/urlrewrite"
	"github.com/MKhiriev/go-secure-routes/models"
)

type urlService struct {
	manager   *routing.Manager
	annotator *urlrewrite.Annotator

	logger *logger.Logger
}

// NewURLService generates URLs through manager. annotator may be nil, in
// which case Annotate fails with ErrAnnotationDisabled.
func NewURLService(manager *routing.Manager, annotator *urlrewrite.Annotator, logger *logger.Logger) URLService {
	return &urlService{
		manager:   manager,
		annotator: annotator,
		logger:    logger,
	}
}

func (s *urlService) CreateURL(ctx context.Context, conn models.ConnectionState, route string, params url.Values) (string, error) {
	created, err := s.manager.CreateURL(conn, route, params)
	if err != nil {
		return "", fmt.Errorf("error creating url for route %q: %w", route, err)
	}
	return created, nil
}

func (s *urlService) CreateAbsoluteURL(ctx context.Context, conn models.ConnectionState, route string, params url.Values, scheme string) (string, error) {
	created, err := s.manager.CreateAbsoluteURL(conn, route, params, scheme)
	if err != nil {
		return "", fmt.Errorf("error creating absolute url for route %q: %w", route, err)
	}
	return created, nil
}

func (s *urlService) Annotate(ctx context.Context, host string) (int, error) {
	if s.annotator == nil {
		return 0, ErrAnnotationDisabled
	}

	bound, err := s.annotator.Annotate(host)
	if err != nil {
		return 0, fmt.Errorf("error annotating routing rules: %w", err)
	}

	metrics.AddAnnotatedRules(bound)
	s.logger.Info().Str("host", host).Int("bound", bound).Msg("routing rules annotated")

	return bound, nil
}

// observedRewriter counts the decisions of a rewriter as they are applied.
type observedRewriter struct {
	rewriter *urlrewrite.Rewriter
}

func (o observedRewriter) Rewrite(u, route string, conn models.ConnectionState) string {
	decision := o.rewriter.Decide(u, route, conn)
	metrics.ObserveRewrite(decision)
	return decision.Apply(u)
}

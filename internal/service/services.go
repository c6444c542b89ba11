package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secure-routes/internal/config"
	"github.com/MKhiriev/go-secure-routes/internal/logger"
	"github.com/MKhiriev/go-secure-routes/internal/matcher"
	"github.com/MKhiriev/go-secure-routes/internal/policy"
	"github.com/MKhiriev/go-secure-routes/internal/routing"
	"github.com/MKhiriev/go-secure-routes/internal/urlrewrite"
	"github.com/MKhiriev/go-secure-routes/models"
)

// devVersion is served when neither config nor build metadata carry one.
const devVersion = "dev"

type Services struct {
	AppInfoService    AppInfoService
	ConnectionService ConnectionService
	URLService        URLService

	// Routing is the routing table actions are mounted from.
	Routing *routing.Manager
}

// NewServices wires the connection policy described by cfg.Secure.
//
// The kill switch is resolved on every decision: SECURE_DISABLED, or the
// current APP_ENVIRONMENT being listed in SECURE_DISABLED_ENVIRONMENTS,
// turns enforcement and URL rewriting off.
func NewServices(cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	routePolicy, err := matcher.NewPolicy(cfg.Secure.RequiredRoutes, cfg.Secure.ExcludedRoutes)
	if err != nil {
		return nil, fmt.Errorf("error building route policy: %w", err)
	}

	enabled := models.Predicate(func() bool {
		return cfg.Secure.Enabled(cfg.App.CurrentEnvironment())
	})

	safeMethods, err := policy.NewMethodSet(cfg.Secure.SafeMethods...)
	if err != nil {
		return nil, fmt.Errorf("error building safe method set: %w", err)
	}

	mode := policy.Strict
	if cfg.Secure.Lenient {
		mode = policy.Lenient
	}

	evaluator, err := policy.NewEvaluator(routePolicy,
		policy.WithEnabled(enabled),
		policy.WithMode(mode),
		policy.WithSafeMethods(safeMethods),
	)
	if err != nil {
		return nil, fmt.Errorf("error building connection policy: %w", err)
	}

	managerOpts := []routing.ManagerOption{
		routing.WithRules(DefaultRules()...),
		routing.WithBaseURL(cfg.App.BaseURL),
	}
	if cfg.Secure.Rewrites() {
		rewriter, err := urlrewrite.NewRewriter(routePolicy, enabled)
		if err != nil {
			return nil, fmt.Errorf("error building url rewriter: %w", err)
		}
		managerOpts = append(managerOpts, routing.WithRewriter(observedRewriter{rewriter: rewriter}))
	}
	manager := routing.NewManager(managerOpts...)

	var annotator *urlrewrite.Annotator
	if cfg.Secure.Annotates() {
		annotator, err = urlrewrite.NewAnnotator(manager, routePolicy, enabled)
		if err != nil {
			return nil, fmt.Errorf("error building rule annotator: %w", err)
		}
	}

	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if errors.Is(err, ErrVersionIsNotSpecified) {
		logger.Warn().Str("version", devVersion).Msg("no app version given")
		appInfo, err = NewAppInfoService(config.App{Version: devVersion}, buildInfo, logger)
	}
	if err != nil {
		return nil, err
	}

	logger.Info().
		Strs("required", routePolicy.Required().Strings()).
		Strs("excluded", routePolicy.Excluded().Strings()).
		Str("mode", mode.String()).
		Str("url_strategy", cfg.Secure.URLStrategy).
		Msg("secure connection policy configured")

	return &Services{
		AppInfoService:    appInfo,
		ConnectionService: NewConnectionMetricsService().Wrap(NewConnectionService(evaluator, logger)),
		URLService:        NewURLService(manager, annotator, logger),
		Routing:           manager,
	}, nil
}

package service

import (
	"context"

	"github.com/MKhiriev/go-secure-routes/internal/logger"
	"github.com/MKhiriev/go-secure-routes/internal/policy"
	"github.com/MKhiriev/go-secure-routes/models"
)

type connectionService struct {
	evaluator *policy.Evaluator

	logger *logger.Logger
}

func NewConnectionService(evaluator *policy.Evaluator, logger *logger.Logger) ConnectionService {
	return &connectionService{
		evaluator: evaluator,
		logger:    logger,
	}
}

func (s *connectionService) Check(ctx context.Context, route string, conn models.ConnectionState) models.Verdict {
	verdict := s.evaluator.Evaluate(route, conn)

	log := s.logger.WithConnection(route, conn)
	switch verdict.Kind {
	case models.VerdictRedirect:
		log.Debug().Str("target", verdict.Protocol.String()).Msg("protocol mismatch, redirecting")
	case models.VerdictReject:
		log.Warn().Str("reason", verdict.Reason).Msg("request rejected")
	}

	return verdict
}

func (s *connectionService) Classify(method string) models.MethodClass {
	return s.evaluator.Classify(method)
}

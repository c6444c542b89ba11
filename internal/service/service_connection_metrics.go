package service

import (
	"context"

	"github.com/MKhiriev/go-secure-routes/internal/metrics"
	"github.com/MKhiriev/go-secure-routes/models"
)

// ConnectionMetricsService counts every verdict of the wrapped service.
type ConnectionMetricsService struct {
	inner ConnectionService
}

func NewConnectionMetricsService() ConnectionServiceWrapper {
	return &ConnectionMetricsService{}
}

func (m *ConnectionMetricsService) Check(ctx context.Context, route string, conn models.ConnectionState) models.Verdict {
	verdict := m.inner.Check(ctx, route, conn)
	metrics.ObserveVerdict(verdict, conn)
	return verdict
}

func (m *ConnectionMetricsService) Classify(method string) models.MethodClass {
	return m.inner.Classify(method)
}

func (m *ConnectionMetricsService) Wrap(inner ConnectionService) ConnectionService {
	m.inner = inner
	return m
}

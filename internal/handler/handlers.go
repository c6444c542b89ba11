package handler

import (
	"github.com/MKhiriev/go-secure-routes/internal/config"
	"github.com/MKhiriev/go-secure-routes/internal/handler/http"
	"github.com/MKhiriev/go-secure-routes/internal/logger"
	"github.com/MKhiriev/go-secure-routes/internal/service"
)

// Handlers groups the transport handlers. The plain and the TLS listener
// share one HTTP handler, so the secure connection filter sees both sides.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" || cfg.Server.TLSAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

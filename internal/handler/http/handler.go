package http

import (
	"net"
	"time"

	"github.com/MKhiriev/go-secure-routes/internal/config"
	"github.com/MKhiriev/go-secure-routes/internal/logger"
	"github.com/MKhiriev/go-secure-routes/internal/service"
	"github.com/MKhiriev/go-secure-routes/internal/utils"
	"github.com/MKhiriev/go-secure-routes/models"
)

type Handler struct {
	services *service.Services

	// trustForwardedProto lets X-Forwarded-Proto decide the request protocol.
	trustForwardedProto bool
	hstsMaxAge          time.Duration
	requestTimeout      time.Duration

	// listenerPorts maps a protocol to the port its listener is bound to.
	listenerPorts map[models.Protocol]string

	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:            services,
		trustForwardedProto: cfg.Server.TrustForwardedProto,
		hstsMaxAge:          cfg.Secure.HSTSMaxAge,
		requestTimeout:      cfg.Server.RequestTimeout,
		listenerPorts: map[models.Protocol]string{
			models.Insecure: portOf(cfg.Server.HTTPAddress),
			models.Secure:   portOf(cfg.Server.TLSAddress),
		},
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

func portOf(address string) string {
	_, port, err := net.SplitHostPort(address)
	if err != nil {
		return ""
	}
	return port
}

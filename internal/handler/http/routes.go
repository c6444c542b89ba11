package http

import (
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-secure-routes/internal/metrics"
)

// Init builds the router. Every request is traced, observed and logged;
// application pages additionally pass the per-route secure connection
// filter once their route is resolved.
func (h *Handler) Init() (*chi.Mux, error) {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withConnectionState)
	router.Use(h.withLogging)
	router.Use(h.withHSTS)
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// service routes, never redirected
	router.Get("/api/version", h.getServerVersion)
	router.Handle("/metrics", metrics.Handler())

	if err := h.services.Routing.Mount(router, h.actions(), h.withSecureConnection); err != nil {
		return nil, fmt.Errorf("error mounting application routes: %w", err)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router, nil
}

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-secure-routes/internal/logger"
	"github.com/MKhiriev/go-secure-routes/internal/utils"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		event := log.Info()
		if lw.Status() >= http.StatusInternalServerError {
			event = log.Error()
		}

		if conn, ok := utils.GetConnectionFromContext(r.Context()); ok {
			event = event.Str("protocol", conn.Protocol.String())
		}
		if lw.location != "" {
			event = event.Str("location", lw.location)
		}

		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.Status()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

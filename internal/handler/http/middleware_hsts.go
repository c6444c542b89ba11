package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-secure-routes/internal/utils"
)

const hstsHeader = "Strict-Transport-Security"

// withHSTS tells browsers to stick to HTTPS for hstsMaxAge. Only responses
// sent over a secure connection carry the header.
func (h *Handler) withHSTS(next http.Handler) http.Handler {
	if h.hstsMaxAge <= 0 {
		return next
	}

	value := "max-age=" + strconv.FormatInt(int64(h.hstsMaxAge.Seconds()), 10)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if conn, ok := utils.GetConnectionFromContext(r.Context()); ok && conn.IsSecure() {
			w.Header().Set(hstsHeader, value)
		}
		next.ServeHTTP(w, r)
	})
}

package http

import (
	"net"
	"net/http"

	"github.com/MKhiriev/go-secure-routes/internal/logger"
	"github.com/MKhiriev/go-secure-routes/internal/policy"
	"github.com/MKhiriev/go-secure-routes/internal/utils"
	"github.com/MKhiriev/go-secure-routes/models"
)

// withSecureConnection is the per-route admission filter. It runs after the
// route has been resolved and enforces the connection policy for it:
//   - Allow passes the request on;
//   - Redirect sends the client to the same URL over the other protocol,
//     302 for safe methods and 307 for unsafe ones so the body is replayed;
//   - Reject fails the request with 400 and a JSON error.
func (h *Handler) withSecureConnection(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn := h.connectionOf(r)
		verdict := h.services.ConnectionService.Check(r.Context(), route, conn)

		switch verdict.Kind {
		case models.VerdictRedirect:
			status := http.StatusFound
			if conn.Method == models.Unsafe {
				status = http.StatusTemporaryRedirect
			}
			target := verdict.Protocol.Origin(h.redirectHost(r.Host, verdict.Protocol)) + r.URL.RequestURI()
			http.Redirect(w, r, target, status)
		case models.VerdictReject:
			if _, err := utils.WriteError(w, verdict.Reason, statusFromError(policy.ErrPolicyViolation)); err != nil {
				logger.FromRequest(r).Err(err).Msg("error writing rejection")
			}
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// redirectHost moves an explicit listener port over to the listener of the
// target protocol. Hosts without a port, or with a port this server does not
// listen on, are kept as they are.
func (h *Handler) redirectHost(host string, target models.Protocol) string {
	name, port, err := net.SplitHostPort(host)
	if err != nil || port == "" {
		return host
	}

	from, to := h.listenerPorts[target.Opposite()], h.listenerPorts[target]
	if from == "" || to == "" || port != from {
		return host
	}

	if (target == models.Secure && to == "443") || (target == models.Insecure && to == "80") {
		return name
	}
	return net.JoinHostPort(name, to)
}

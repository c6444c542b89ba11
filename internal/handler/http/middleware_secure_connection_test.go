package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secure-routes/internal/utils"
	"github.com/MKhiriev/go-secure-routes/models"
)

func TestWithSecureConnection(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		target       string
		conn         models.ConnectionState
		verdict      models.Verdict
		wantStatus   int
		wantLocation string
		wantNext     bool
	}{
		{
			name:       "allow",
			method:     http.MethodGet,
			target:     "http://domain.com/login",
			conn:       models.ConnectionState{Protocol: models.Secure, Method: models.Safe, Host: "domain.com"},
			verdict:    models.Allow(),
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:         "safe request redirected to https",
			method:       http.MethodGet,
			target:       "http://domain.com/login?next=%2Fcart",
			conn:         models.ConnectionState{Protocol: models.Insecure, Method: models.Safe, Host: "domain.com"},
			verdict:      models.RedirectTo(models.Secure),
			wantStatus:   http.StatusFound,
			wantLocation: "https://domain.com/login?next=%2Fcart",
		},
		{
			name:         "safe request downgraded to http",
			method:       http.MethodGet,
			target:       "https://domain.com/",
			conn:         models.ConnectionState{Protocol: models.Secure, Method: models.Safe, Host: "domain.com"},
			verdict:      models.RedirectTo(models.Insecure),
			wantStatus:   http.StatusFound,
			wantLocation: "http://domain.com/",
		},
		{
			name:         "unsafe request keeps its method",
			method:       http.MethodPost,
			target:       "http://domain.com/login",
			conn:         models.ConnectionState{Protocol: models.Insecure, Method: models.Unsafe, Host: "domain.com"},
			verdict:      models.RedirectTo(models.Secure),
			wantStatus:   http.StatusTemporaryRedirect,
			wantLocation: "https://domain.com/login",
		},
		{
			name:         "listener port swapped",
			method:       http.MethodGet,
			target:       "http://localhost:8080/cart",
			conn:         models.ConnectionState{Protocol: models.Insecure, Method: models.Safe, Host: "localhost:8080"},
			verdict:      models.RedirectTo(models.Secure),
			wantStatus:   http.StatusFound,
			wantLocation: "https://localhost:8443/cart",
		},
		{
			name:       "reject",
			method:     http.MethodPost,
			target:     "http://domain.com/login",
			conn:       models.ConnectionState{Protocol: models.Insecure, Method: models.Unsafe, Host: "domain.com"},
			verdict:    models.Reject(models.RejectReasonInsecureUnsafe),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, connSvc, _, _ := newTestHandler(t)
			connSvc.EXPECT().Check(gomock.Any(), "auth/login", tt.conn).Return(tt.verdict)

			req := httptest.NewRequest(tt.method, tt.target, nil)
			req = req.WithContext(utils.WithConnection(req.Context(), tt.conn))

			nextCalled := false
			filter := h.withSecureConnection("auth/login", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			}))

			rr := httptest.NewRecorder()
			filter.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}

func TestWithSecureConnection_RejectBody(t *testing.T) {
	h, connSvc, _, _ := newTestHandler(t)
	conn := models.ConnectionState{Protocol: models.Insecure, Method: models.Unsafe, Host: "domain.com"}
	connSvc.EXPECT().Check(gomock.Any(), "payment/cart/index", conn).
		Return(models.Reject(models.RejectReasonInsecureUnsafe))

	req := httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader("item=1"))
	req = req.WithContext(utils.WithConnection(req.Context(), conn))

	rr := httptest.NewRecorder()
	rr.Header().Set(utils.TraceIDHeader, "trace-1")
	h.withSecureConnection("payment/cart/index", http.NotFoundHandler()).ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, models.RejectReasonInsecureUnsafe, body.Error)
	assert.Equal(t, "trace-1", body.TraceID)
}

func TestRedirectHost(t *testing.T) {
	tests := []struct {
		name   string
		ports  map[models.Protocol]string
		host   string
		target models.Protocol
		want   string
	}{
		{
			name:   "no port",
			ports:  map[models.Protocol]string{models.Insecure: "8080", models.Secure: "8443"},
			host:   "domain.com",
			target: models.Secure,
			want:   "domain.com",
		},
		{
			name:   "plain port to tls port",
			ports:  map[models.Protocol]string{models.Insecure: "8080", models.Secure: "8443"},
			host:   "domain.com:8080",
			target: models.Secure,
			want:   "domain.com:8443",
		},
		{
			name:   "tls port to plain port",
			ports:  map[models.Protocol]string{models.Insecure: "8080", models.Secure: "8443"},
			host:   "domain.com:8443",
			target: models.Insecure,
			want:   "domain.com:8080",
		},
		{
			name:   "default https port omitted",
			ports:  map[models.Protocol]string{models.Insecure: "8080", models.Secure: "443"},
			host:   "domain.com:8080",
			target: models.Secure,
			want:   "domain.com",
		},
		{
			name:   "default http port omitted",
			ports:  map[models.Protocol]string{models.Insecure: "80", models.Secure: "8443"},
			host:   "domain.com:8443",
			target: models.Insecure,
			want:   "domain.com",
		},
		{
			name:   "foreign port kept",
			ports:  map[models.Protocol]string{models.Insecure: "8080", models.Secure: "8443"},
			host:   "domain.com:9000",
			target: models.Secure,
			want:   "domain.com:9000",
		},
		{
			name:   "single listener keeps port",
			ports:  map[models.Protocol]string{models.Insecure: "8080"},
			host:   "domain.com:8080",
			target: models.Secure,
			want:   "domain.com:8080",
		},
		{
			name:   "ipv6 host",
			ports:  map[models.Protocol]string{models.Insecure: "8080", models.Secure: "8443"},
			host:   "[::1]:8080",
			target: models.Secure,
			want:   "[::1]:8443",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _, _ := newTestHandler(t)
			h.listenerPorts = tt.ports

			assert.Equal(t, tt.want, h.redirectHost(tt.host, tt.target))
		})
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secure-routes/internal/app"
	"github.com/MKhiriev/go-secure-routes/models"
)

// buildRouter creates a minimal chi.Mux without Handler.Init so no services
// are needed.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("login form"))
	})
	router.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Get("/help/{action}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chi.URLParam(r, "action")))
	})
	router.Post("/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "GET /login", method: http.MethodGet, path: "/login", wantStatus: http.StatusOK, wantBody: "login form"},
		{name: "POST /login", method: http.MethodPost, path: "/login", wantStatus: http.StatusCreated},
		{name: "GET /help/faq", method: http.MethodGet, path: "/help/faq", wantStatus: http.StatusOK, wantBody: "faq"},
		{name: "POST /logout", method: http.MethodPost, path: "/logout", wantStatus: http.StatusNoContent},
		{name: "DELETE /login hidden", method: http.MethodDelete, path: "/login", wantStatus: http.StatusNotFound},
		{name: "PUT /login hidden", method: http.MethodPut, path: "/login", wantStatus: http.StatusNotFound},
		{name: "POST /help/faq hidden", method: http.MethodPost, path: "/help/faq", wantStatus: http.StatusNotFound},
		{name: "GET /logout hidden", method: http.MethodGet, path: "/logout", wantStatus: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, path: "/nowhere", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestCheckHTTPMethod_JSONBody(t *testing.T) {
	router := buildRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/login", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)

	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, app.MsgNotFound, body.Error)
}

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := buildRouter()
	const n = 50
	done := make(chan bool, n)

	for i := 0; i < n; i++ {
		go func(i int) {
			method, want := http.MethodGet, http.StatusOK
			if i%2 == 1 {
				method, want = http.MethodDelete, http.StatusNotFound
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(method, "/login", nil))
			done <- rr.Code == want
		}(i)
	}

	for i := 0; i < n; i++ {
		assert.True(t, <-done)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-secure-routes/internal/app"
	"github.com/MKhiriev/go-secure-routes/internal/logger"
	"github.com/MKhiriev/go-secure-routes/internal/utils"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi responds with 405 Method Not Allowed whenever a path matches a
// registered pattern but the method is not handled. CheckHTTPMethod answers
// 404 with a JSON error instead, so unsupported methods cannot probe which
// routes exist.
//
// The path is matched with [chi.Mux.Match], parameterised patterns such as
// "/help/{action}" included. If the method turns out to be registered the
// request goes back through the router.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		if _, err := utils.WriteError(w, app.MsgNotFound, http.StatusNotFound); err != nil {
			logger.FromRequest(r).Err(err).Msg("error writing not found response")
		}
	}
}

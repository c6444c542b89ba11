// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-secure-routes/internal/utils"
	"github.com/MKhiriev/go-secure-routes/models"
)

const forwardedProtoHeader = "X-Forwarded-Proto"

// withConnectionState observes the connection of the request once and
// stores it in the request context for the filters and pages downstream.
func (h *Handler) withConnectionState(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn := h.observeConnection(r)
		next.ServeHTTP(w, r.WithContext(utils.WithConnection(r.Context(), conn)))
	})
}

func (h *Handler) observeConnection(r *http.Request) models.ConnectionState {
	return models.ConnectionState{
		Protocol: h.protocolOf(r),
		Method:   h.services.ConnectionService.Classify(r.Method),
		Host:     r.Host,
	}
}

func (h *Handler) connectionOf(r *http.Request) models.ConnectionState {
	if conn, ok := utils.GetConnectionFromContext(r.Context()); ok {
		return conn
	}
	return h.observeConnection(r)
}

// protocolOf reports TLS termination at this server, or at a trusted proxy
// in front of it.
func (h *Handler) protocolOf(r *http.Request) models.Protocol {
	if r.TLS != nil {
		return models.Secure
	}

	if h.trustForwardedProto {
		proto, _, _ := strings.Cut(r.Header.Get(forwardedProtoHeader), ",")
		if strings.EqualFold(strings.TrimSpace(proto), "https") {
			return models.Secure
		}
	}

	return models.Insecure
}

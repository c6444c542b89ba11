// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"crypto/tls"
	"errors"
	"net"
	"net/http"

	"golang.org/x/crypto/acme/autocert"

	"github.com/MKhiriev/go-secure-routes/internal/logger"
)

// tlsServer serves HTTPS, either from a certificate pair on disk or from
// certificates issued by an autocert manager.
type tlsServer struct {
	server *http.Server

	certFile string
	keyFile  string

	// listener is bound lazily in RunServer unless set beforehand.
	listener net.Listener

	logger *logger.Logger
}

func newTLSServer(handler http.Handler, address, certFile, keyFile string, manager *autocert.Manager, logger *logger.Logger) *tlsServer {
	tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}
	if manager != nil {
		tlsConfig = manager.TLSConfig()
		tlsConfig.MinVersion = tls.VersionTLS12
	}

	return &tlsServer{
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			TLSConfig:         tlsConfig,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		certFile: certFile,
		keyFile:  keyFile,
		logger:   logger,
	}
}

func (t *tlsServer) RunServer() {
	ln, err := listen(t.listener, t.server.Addr)
	if err != nil {
		t.logger.Error().Err(err).Str("address", t.server.Addr).Msg("HTTPS server listen")
		return
	}

	t.logger.Info().Str("address", ln.Addr().String()).Msg("HTTPS server listening")
	if err = t.server.ServeTLS(ln, t.certFile, t.keyFile); err != nil && !errors.Is(err, http.ErrServerClosed) {
		t.logger.Error().Err(err).Msg("HTTPS server ServeTLS")
	}
}

func (t *tlsServer) Shutdown() {
	shutdown(t.server, "HTTPS", t.logger)
}

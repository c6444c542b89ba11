package server

import (
	"context"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/crypto/acme/autocert"

	"github.com/MKhiriev/go-secure-routes/internal/config"
	"github.com/MKhiriev/go-secure-routes/internal/logger"
)

const defaultAutocertCacheDir = "autocert-cache"

type server struct {
	httpServer *httpServer
	tlsServer  *tlsServer
	logger     *logger.Logger
}

// NewServer creates the plain and TLS listeners configured in cfg around
// handler.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	var manager *autocert.Manager
	if len(cfg.AutocertHosts) > 0 {
		manager = newAutocertManager(cfg)
	}

	if cfg.HTTPAddress != "" {
		plain := handler
		if manager != nil {
			// http-01 challenges are answered before the router sees them
			plain = manager.HTTPHandler(handler)
		}
		servers.httpServer = newHTTPServer(plain, cfg.HTTPAddress, logger)
	}
	if cfg.TLSAddress != "" {
		servers.tlsServer = newTLSServer(handler, cfg.TLSAddress, cfg.TLSCertFile, cfg.TLSKeyFile, manager, logger)
	}

	if servers.httpServer == nil && servers.tlsServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func newAutocertManager(cfg config.Server) *autocert.Manager {
	cacheDir := cfg.AutocertCacheDir
	if cacheDir == "" {
		cacheDir = defaultAutocertCacheDir
	}

	return &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		HostPolicy: autocert.HostWhitelist(cfg.AutocertHosts...),
		Cache:      autocert.DirCache(cacheDir),
	}
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	// finish HTTPS server
	if s.tlsServer != nil {
		s.tlsServer.Shutdown()
	}
}

// run serves until ctx is done, then shuts every listener down and waits
// for them to return.
func (s *server) run(ctx context.Context) error {
	// check if any server was created
	if s.httpServer == nil && s.tlsServer == nil {
		return errNoServersToRun
	}

	var wg sync.WaitGroup

	// launch all created servers
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		wg.Go(s.httpServer.RunServer)
	}
	if s.tlsServer != nil {
		s.logger.Info().Msg("Launching HTTPS server")
		wg.Go(s.tlsServer.RunServer)
	}

	<-ctx.Done()

	// finish started servers
	s.Shutdown()
	wg.Wait()

	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}

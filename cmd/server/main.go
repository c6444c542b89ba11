package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-routes/internal/config"
	"github.com/MKhiriev/go-secure-routes/internal/handler"
	"github.com/MKhiriev/go-secure-routes/internal/logger"
	"github.com/MKhiriev/go-secure-routes/internal/server"
	"github.com/MKhiriev/go-secure-routes/internal/service"
	"github.com/MKhiriev/go-secure-routes/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("secure-routes", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(cfg.App.Name, cfg.App.Environment)
	log.Debug().Any("config", cfg).Msg("received configs")

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(*cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.Secure.Annotates() {
		if _, err = services.URLService.Annotate(context.Background(), cfg.App.Host); err != nil {
			log.Fatal().Err(err).Msg("error annotating routing rules")
		}
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	router, err := handlers.HTTP.Init()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating router")
	}

	srv, err := server.NewServer(router, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

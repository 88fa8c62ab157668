package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-payload-guard/internal/config"
	"github.com/MKhiriev/go-payload-guard/internal/handler"
	"github.com/MKhiriev/go-payload-guard/internal/logger"
	"github.com/MKhiriev/go-payload-guard/internal/server"
	"github.com/MKhiriev/go-payload-guard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const healthcheckTimeout = 5 * time.Second

func main() {
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "healthcheck" {
		os.Exit(healthcheck(args[1:]))
	}

	printBuildInfo()

	log := logger.NewLogger("go-payload-guard")
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	handlers, err := handler.NewHandlers(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err := srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// healthcheck checks the configured address, for container HEALTHCHECK use.
func healthcheck(args []string) int {
	log := logger.NewLogger("healthcheck")
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), healthcheckTimeout)
	defer cancel()

	version, err := server.Healthcheck(ctx, cfg.Server.HTTPAddress)
	if err != nil {
		log.Error().Err(err).Str("address", cfg.Server.HTTPAddress).Msg("healthcheck failed")
		return 1
	}

	log.Info().Str("version", version.Version).Msg("healthy")
	return 0
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

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/idea-brand-coach/internal/ai"
	"github.com/MKhiriev/idea-brand-coach/internal/config"
	"github.com/MKhiriev/idea-brand-coach/internal/handler"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/persona"
	"github.com/MKhiriev/idea-brand-coach/internal/server"
	"github.com/MKhiriev/idea-brand-coach/internal/service"
	"github.com/MKhiriev/idea-brand-coach/internal/store"
	"github.com/MKhiriev/idea-brand-coach/internal/workers"
	"github.com/MKhiriev/idea-brand-coach/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := buildInfo()
	fmt.Print(info)

	log := logger.NewLogger("brandcoach-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = info.BuildVersion()
	}

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	catalog, err := persona.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading personas")
	}

	aiClient, err := ai.NewClient(cfg.AI, log)
	if err != nil {
		log.Warn().Err(err).Msg("ai client is not configured, chat answers are disabled")
		aiClient = nil
	}

	services, err := service.NewServices(storages, catalog, aiClient, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bgWorkers := workers.NewWorkers(services, cfg.Workers, log)

	srv, err := server.NewServer(handlers, bgWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return
	}
	log.Info().Msg("server stopped")
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

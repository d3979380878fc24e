package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/portfolio-cms/internal/adapter"
	"github.com/MKhiriev/portfolio-cms/internal/config"
	"github.com/MKhiriev/portfolio-cms/internal/handler"
	"github.com/MKhiriev/portfolio-cms/internal/logger"
	"github.com/MKhiriev/portfolio-cms/internal/server"
	"github.com/MKhiriev/portfolio-cms/internal/service"
	"github.com/MKhiriev/portfolio-cms/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// missing .env is fine, real deployments configure the environment directly
	_ = godotenv.Load()

	log := logger.NewLogger("portfolio-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	notifier, err := adapter.NewTelegramNotifier(cfg.Telegram, log)
	if err != nil {
		if !errors.Is(err, adapter.ErrNotConfigured) {
			log.Fatal().Err(err).Msg("error creating telegram notifier")
		}
		log.Info().Msg("telegram notifications disabled")
		notifier = nil
	}

	services := service.NewServices(storages, notifier, cfg, log)
	handlers := handler.NewHandlers(services, cfg.Server, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
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

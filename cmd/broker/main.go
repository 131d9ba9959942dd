package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-secret-broker/internal/config"
	"github.com/MKhiriev/go-secret-broker/internal/handler"
	"github.com/MKhiriev/go-secret-broker/internal/logger"
	"github.com/MKhiriev/go-secret-broker/internal/server"
	"github.com/MKhiriev/go-secret-broker/internal/service"
	"github.com/MKhiriev/go-secret-broker/internal/store"
	"github.com/MKhiriev/go-secret-broker/internal/utils"
	"github.com/MKhiriev/go-secret-broker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String())

	log := logger.NewLogger("go-secret-broker")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	// credentials stay out of the log
	log.Debug().
		Int("auto_delete_days", cfg.App.AutoDeleteDays).
		Int("max_tries", cfg.App.MaxTries).
		Int("max_message_size", cfg.App.MaxMessageSize).
		Str("nats_url", cfg.Transport.URL).
		Str("queue_group", cfg.Transport.QueueGroup).
		Str("storage", cfg.Storage.Backend).
		Str("status_address", cfg.Server.StatusAddress).
		Int("workers", cfg.Workers.Count).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	conn, err := utils.NewNATSConnection(utils.NATSOptions{
		URL:      cfg.Transport.URL,
		User:     cfg.Transport.User,
		Password: cfg.Transport.Password,
		Name:     cfg.Transport.Name,
		Timeout:  cfg.Transport.RequestTimeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to NATS")
	}

	handlers, err := handler.NewHandlers(services, conn, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, conn, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

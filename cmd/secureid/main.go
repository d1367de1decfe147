package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-secure-id/internal/client"
	"github.com/MKhiriev/go-secure-id/internal/config"
	"github.com/MKhiriev/go-secure-id/internal/logger"
	"github.com/MKhiriev/go-secure-id/internal/service"
	"github.com/MKhiriev/go-secure-id/internal/store"
	"github.com/MKhiriev/go-secure-id/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, args, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	log := logger.NewLogger("secureid", cfg.Log.Level)
	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("kdf", cfg.App.KDF).
		Int("concurrency", cfg.Workers.Concurrency).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(openServices(*cfg, log), models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return 1
	}

	if err = app.Run(ctx, args); err != nil {
		log.Debug().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, "secureid:", app.Message(err))
		if errors.Is(err, client.ErrUsage) || errors.Is(err, client.ErrUnknownCommand) {
			return 2
		}
		return 1
	}

	return 0
}

func openServices(cfg config.StructuredConfig, log *logger.Logger) client.ServicesFactory {
	return func(ctx context.Context) (*service.Services, func() error, error) {
		db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
		if err != nil {
			return nil, nil, fmt.Errorf("error creating storage: %w", err)
		}

		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("error migrating storage: %w", err)
		}

		services, err := service.NewServices(store.NewStorages(db, log), cfg, log)
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("error creating services: %w", err)
		}

		return services, db.Close, nil
	}
}

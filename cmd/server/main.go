package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/ilm-med/internal/adapter"
	"github.com/MKhiriev/ilm-med/internal/config"
	"github.com/MKhiriev/ilm-med/internal/handler"
	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/internal/server"
	"github.com/MKhiriev/ilm-med/internal/service"
	"github.com/MKhiriev/ilm-med/internal/store"
	"github.com/MKhiriev/ilm-med/models"
)

const role = "ilm-med-server"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger(role, "")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = logger.NewLogger(role, cfg.App.LogLevel)

	log.Debug().Any("server", cfg.Server).Msg("received configs")

	if err = run(context.Background(), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

// run owns every resource it opens; it returns instead of exiting so the
// deferred closes run on each failure path.
func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	db, err := store.NewConnectMongo(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to the document store: %w", err)
	}
	defer closeDB(db, log)

	if err = db.Migrate(ctx); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	var roleCache store.RoleCache
	if cfg.Storage.Cache.Address != "" {
		redisClient, err := store.NewRedisClient(ctx, cfg.Storage.Cache, log)
		if err != nil {
			return fmt.Errorf("error connecting to the role cache: %w", err)
		}
		defer closeCache(redisClient, log)
		roleCache = store.NewRoleCache(redisClient, log)
	}

	gateway, err := adapter.NewHTTPPaymentGateway(cfg.Adapter.Payment, log)
	if err != nil {
		return fmt.Errorf("error creating payment gateway: %w", err)
	}

	storages := store.NewStorages(db, roleCache, log)
	services := service.NewServices(storages, gateway, *cfg, models.AppBuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	}, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	srv.RunServer()
	return nil
}

func closeCache(client io.Closer, log *logger.Logger) {
	if err := client.Close(); err != nil {
		log.Error().Err(err).Msg("error closing the role cache")
	}
}

func closeDB(db *store.DB, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Close(ctx); err != nil {
		log.Error().Err(err).Msg("error closing the document store")
	}
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

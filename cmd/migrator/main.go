package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"liferay2wp/internal/config"
	"liferay2wp/internal/media"
	"liferay2wp/internal/publisher"
	"liferay2wp/internal/service"
	"liferay2wp/internal/source/liferay"
	"liferay2wp/internal/state"
	"liferay2wp/internal/wordpress"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("mysql", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to source database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping source database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to source database")

	// Initialize source repository
	repo := liferay.NewRepository(db, liferay.Config{
		CompanyID:           cfg.Liferay.CompanyID,
		GroupID:             cfg.Liferay.GroupID,
		DefaultLocale:       cfg.Liferay.DefaultLocale,
		OnlyApproved:        cfg.Migration.OnlyApproved,
		BatchSize:           cfg.Migration.BatchSize,
		ExcludeStructureIDs: cfg.Migration.ExcludeStructureIDs,
	}, logger)

	// Initialize destination client
	wpClient, err := wordpress.New(wordpress.Config{
		BaseURL:        cfg.WordPress.BaseURL,
		Username:       cfg.WordPress.Username,
		AppPassword:    cfg.WordPress.AppPassword,
		PostType:       cfg.WordPress.PostType,
		Timeout:        cfg.WordPress.Timeout,
		MaxAttempts:    cfg.WordPress.Retry.MaxAttempts,
		InitialBackoff: cfg.WordPress.Retry.InitialBackoff,
		MaxBackoff:     cfg.WordPress.Retry.MaxBackoff,
	}, logger)
	if err != nil {
		logger.Error("failed to build destination client", "error", err)
		os.Exit(1)
	}

	mediaMigrator := media.NewMigrator(
		&http.Client{Timeout: cfg.WordPress.Timeout},
		wpClient,
		logger,
	)

	stateStore := state.NewFileStore(cfg.Migration.StateFile)

	// Optional event publisher
	var pub service.Publisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	migration := service.NewMigrationService(
		repo,
		repo,
		repo,
		repo,
		mediaMigrator,
		wpClient,
		stateStore,
		pub,
		logger,
		service.Config{
			SourceBaseURL: cfg.Liferay.BaseURL,
			DefaultStatus: cfg.WordPress.DefaultStatus,
			AuthorMap:     cfg.WordPress.AuthorMap,
			TemplateMap:   cfg.WordPress.TemplateMap,
			CollectionMap: cfg.WordPress.CollectionMap,
		},
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting migrator",
		"company_id", cfg.Liferay.CompanyID,
		"group_id", cfg.Liferay.GroupID,
		"batch_size", cfg.Migration.BatchSize,
		"state_file", cfg.Migration.StateFile,
	)

	stats, err := migration.Run(ctx)
	if err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	logger.Info("done",
		"processed", stats.Processed,
		"migrated", stats.Migrated,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
		"media_uploaded", stats.MediaUploaded,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	if stats.Errors > 0 {
		os.Exit(2)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}

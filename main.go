package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"podhub/internal/app"
	"podhub/internal/config"
	"podhub/internal/logger"
	"podhub/internal/repositories"
	"podhub/internal/services"
	"podhub/internal/storage"
	"podhub/pkg/rabbitmq"

	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "podhub: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// --- Configuration ---
	cfg, err := config.Load(viper.New())
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	if cfg.UsesDefaultSecret() {
		log.Warn("JWT_SECRET is not set, using the built-in development secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Database ---
	db, err := repositories.OpenDatabase(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	log.Info("database ready", zap.String("driver", cfg.DatabaseDriver))

	// --- Audio storage ---
	blobs, err := openBlobStore(ctx, cfg, log)
	if err != nil {
		return err
	}

	// --- Content events ---
	var events services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.RabbitMQQueue}, log)
		if err != nil {
			return err
		}
		defer mqClient.Close()
		events = mqClient

		err = mqClient.ConsumeContentEvents(func(msg amqp.Delivery) error {
			log.Info("content event received",
				zap.String("type", msg.Type),
				zap.ByteString("body", msg.Body))
			return nil
		})
		if err != nil {
			log.Warn("failed to start content event consumer", zap.Error(err))
		}
	} else {
		log.Info("RABBITMQ_URL not set, content events disabled")
	}

	server, err := app.NewServer(app.Dependencies{
		Config: cfg,
		DB:     db,
		Blobs:  blobs,
		Events: events,
		Log:    log,
	})
	if err != nil {
		return err
	}

	// --- Start HTTP Server ---
	listenErr := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", cfg.AppPort))
		listenErr <- server.Listen(cfg.AppPort)
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	if err := server.Shutdown(); err != nil {
		log.Error("error during shutdown", zap.Error(err))
	}
	log.Info("server gracefully stopped")
	return nil
}

func openBlobStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (storage.BlobStore, error) {
	if cfg.StorageBackend == "s3" {
		return storage.NewS3Store(ctx, cfg.S3, log)
	}
	log.Info("storing audio on local disk", zap.String("dir", cfg.UploadDir))
	return storage.NewLocalStore(cfg.UploadDir)
}

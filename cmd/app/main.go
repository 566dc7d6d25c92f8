package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"icecream/cmd"
	"icecream/internal/adapters/out/postgres"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := newLogger(configs.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var gormDB *gorm.DB
	if configs.Storage == cmd.StoragePostgres {
		gormDB = mustOpenDatabase(ctx, configs, logger)
		defer closeDatabase(gormDB, logger)
	}

	app, err := cmd.NewCompositionRoot(ctx, configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.WithError(closeErr).Warn("Failed to close publishers")
		}
	}()

	if configs.SeedSampleData {
		seeded, seedErr := app.SeedSampleData(ctx)
		if seedErr != nil {
			log.Fatalf("Failed to seed sample data: %v", seedErr)
		}
		logger.WithField("orders", seeded).Info("Sample data seeded")
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Failed to create jobs: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func newLogger(level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(level)
	return logger
}

func mustOpenDatabase(ctx context.Context, configs cmd.Config, logger logrus.FieldLogger) *gorm.DB {
	settings := postgres.ConnectionSettings{
		Host:     configs.DBHost,
		Port:     configs.DBPort,
		User:     configs.DBUser,
		Password: configs.DBPassword,
		DBName:   configs.DBName,
		SSLMode:  configs.DBSslMode,
	}

	if err := postgres.EnsureDatabase(ctx, settings, logger); err != nil {
		log.Fatalf("Failed to prepare database: %v", err)
	}

	gormDB, err := postgres.Open(settings.DSN(settings.DBName), logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func closeDatabase(gormDB *gorm.DB, logger logrus.FieldLogger) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.WithError(err).Warn("Failed to access database handle")
		return
	}
	if err = sqlDB.Close(); err != nil {
		logger.WithError(err).Warn("Failed to close database")
	}
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger logrus.FieldLogger) {
	e, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}
	e.Logger.SetLevel(log.WARN)

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", port)
		logger.WithField("addr", addr).Info("HTTP server listening")
		if startErr := e.Start(addr); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", startErr)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("HTTP server shutdown failed")
	}
}

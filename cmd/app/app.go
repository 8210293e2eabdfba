package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AkifKA/stock-app-api/internal/api"
	"github.com/AkifKA/stock-app-api/internal/config"
	"github.com/AkifKA/stock-app-api/internal/db"
	"github.com/AkifKA/stock-app-api/internal/event"
	"github.com/AkifKA/stock-app-api/internal/logger"
)

const configPath = "./cmd/app/config.yml"

func Start() error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer zap.L().Sync() //nolint:errcheck

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := event.NewHub(conf.API.AllowedCORSDomains)
	go hub.Run(ctx)

	publishers := event.Fanout{hub}
	if conf.Kafka.Enabled {
		kafka, err := event.NewKafkaPublisher(conf.Kafka.Brokers, conf.Kafka.Topic)
		if err != nil {
			return fmt.Errorf("failed to initialize kafka producer -> %w", err)
		}
		defer kafka.Close()

		publishers = append(publishers, kafka)
	}

	if err = config.Watch(configPath, func(updated *config.AppConfig) {
		gin.SetMode(updated.Gin.Mode)
	}); err != nil {
		zap.L().Warn("config watcher disabled", zap.Error(err))
	}

	s := api.NewServer(conf, postgresDB, publishers, hub)

	addr := ":" + s.Config.API.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start the server -> %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down the server -> %w", err)
	}

	return nil
}

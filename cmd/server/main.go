package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studyrecs/internal/config"
	"studyrecs/internal/db"
	"studyrecs/internal/logger"
	"studyrecs/internal/observability"
	"studyrecs/internal/repository"
	"studyrecs/internal/router"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	appLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer appLog.Sync()

	shutdownTracing, err := observability.InitTracing(context.Background(), observability.TracingConfig{
		Enabled:      cfg.TracingEnabled,
		Exporter:     cfg.TracingExporter,
		OTLPEndpoint: cfg.OTLPEndpoint,
		SampleRatio:  cfg.TracingSampleRate,
		Environment:  cfg.Env,
	})
	if err != nil {
		appLog.Fatal("Failed to initialize tracing", "error", err)
	}

	conn, err := db.Open(cfg, appLog)
	if err != nil {
		appLog.Fatal("Failed to open database", "error", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := router.New(router.Deps{
		DB:             conn,
		Repos:          repository.New(conn),
		Log:            appLog,
		Metrics:        observability.NewMetrics(),
		AllowedOrigins: cfg.Origins(),
		RequestTimeout: cfg.RequestTimeout,
		Tracing:        cfg.TracingEnabled,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLog.Info("Server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLog.Error("Server forced to shutdown", "error", err)
	}
	if err := db.Close(conn); err != nil {
		appLog.Error("Failed to close database", "error", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		appLog.Error("Failed to shutdown tracing", "error", err)
	}
	appLog.Info("Server exited")
}

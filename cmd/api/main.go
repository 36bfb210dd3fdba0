package main

// @title OEREB Extract Service API
// @version 2.0.0
// @description Сервис выписок кадастра ограничений публичного права (ÖREB/RDPPF) по земельному участку.
// @description
// @description Основные возможности:
// @description - Выписка по EGRID с выбором языка и тем
// @description - Поиск EGRID по координатам или номеру участка
// @description - Описание тем, муниципалитетов и языков сервиса

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	_ "github.com/oereb-service/docs/swagger"
	"github.com/oereb-service/internal/app"
	"github.com/oereb-service/internal/config"
	httpDelivery "github.com/oereb-service/internal/delivery/http"
	"github.com/oereb-service/internal/delivery/http/handler"
	"github.com/oereb-service/internal/pkg/logger"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting OEREB Extract Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("deployment", cfg.Deployment),
	)

	// 3. Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 4. Connections, theme catalogue and use cases
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	service, err := app.New(ctx, cfg, log, registry)
	cancel()
	if err != nil {
		log.Fatal("Failed to initialize service", zap.Error(err))
	}

	// 5. Initialize HTTP Handlers
	checks := map[string]handler.HealthChecker{"postgres": service.DB}
	if service.Redis != nil {
		checks["redis"] = service.Redis
	}
	handlers := httpDelivery.Handlers{
		Extract:      handler.NewExtractHandler(service.Extract, service.Deployment.DefaultLanguage, log),
		RealEstate:   handler.NewRealEstateHandler(service.RealEstate, log),
		Capabilities: handler.NewCapabilitiesHandler(service.Capabilities, log),
		Health:       handler.NewHealthHandler(checks, log),
	}

	log.Info("HTTP handlers initialized")

	// 6. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, handlers, registry)

	// 7. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	service.Close()

	log.Info("Server stopped successfully")
}

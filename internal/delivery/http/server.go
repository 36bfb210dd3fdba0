package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/oereb-service/internal/config"
	"github.com/oereb-service/internal/delivery/http/handler"
	"github.com/oereb-service/internal/delivery/http/middleware"
	"github.com/oereb-service/internal/pkg/errors"
	"github.com/oereb-service/internal/pkg/utils"
)

// Handlers - обработчики HTTP API
type Handlers struct {
	Extract      *handler.ExtractHandler
	RealEstate   *handler.RealEstateHandler
	Capabilities *handler.CapabilitiesHandler
	Health       *handler.HealthHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
	gatherer prometheus.Gatherer
}

// NewServer - создание нового HTTP сервера. gatherer отдается на /metrics.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	handlers Handlers,
	gatherer prometheus.Gatherer,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "OEREB Extract Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
		gatherer: gatherer,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	if s.gatherer != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	api := s.app.Group("/api/v1")

	api.Get("/health", s.handlers.Health.Health)
	api.Get("/versions/json", s.handlers.Capabilities.GetVersions)
	api.Get("/capabilities/json", s.handlers.Capabilities.GetCapabilities)
	api.Get("/getegrid/json", s.handlers.RealEstate.GetEGRID)
	api.Get("/extract/json", s.handlers.Extract.GetExtract)
}

// App возвращает приложение Fiber (для тестов через app.Test)
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки Fiber (неизвестный маршрут, метод) в формате ErrorResponse
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
			return utils.SendError(c, err)
		}

		return c.Status(code).JSON(utils.ErrorResponse{
			Error: errors.New("HTTP_ERROR", err.Error(), code),
		})
	}
}

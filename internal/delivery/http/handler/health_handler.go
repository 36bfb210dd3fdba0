package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthChecker - зависимость, состояние которой входит в health check
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler - обработчик health check
type HealthHandler struct {
	checks  map[string]HealthChecker
	timeout time.Duration
	logger  *zap.Logger
}

// NewHealthHandler - создание нового HealthHandler. Пустые checkers пропускаются.
func NewHealthHandler(checks map[string]HealthChecker, logger *zap.Logger) *HealthHandler {
	active := make(map[string]HealthChecker, len(checks))
	for name, c := range checks {
		if c != nil {
			active[name] = c
		}
	}
	return &HealthHandler{
		checks:  active,
		timeout: 2 * time.Second,
		logger:  logger,
	}
}

// HealthResponse - состояние сервиса и его зависимостей
type HealthResponse struct {
	Status string            `json:"status"`
	Time   time.Time         `json:"time"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Health godoc
// @Summary Health check
// @Tags Service
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	resp := HealthResponse{Status: "healthy", Time: time.Now(), Checks: make(map[string]string, len(h.checks))}
	status := fiber.StatusOK
	for name, check := range h.checks {
		if err := check.Health(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			resp.Checks[name] = err.Error()
			resp.Status = "unhealthy"
			status = fiber.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	return c.Status(status).JSON(resp)
}

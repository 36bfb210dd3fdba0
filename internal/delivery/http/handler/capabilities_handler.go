package handler

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/oereb-service/internal/pkg/utils"
	"github.com/oereb-service/internal/usecase/dto"
)

// ExtractVersion - версия модели выписки, которую отдает сервис
const ExtractVersion = "extract-2.0"

// CapabilitiesService описывает возможности сервиса
type CapabilitiesService interface {
	GetCapabilities(ctx context.Context, lang string) (*dto.CapabilitiesResponse, error)
}

// CapabilitiesHandler - обработчик запросов возможностей и версий сервиса
type CapabilitiesHandler struct {
	capabilitiesUC CapabilitiesService
	logger         *zap.Logger
}

// NewCapabilitiesHandler - создание нового CapabilitiesHandler
func NewCapabilitiesHandler(capabilitiesUC CapabilitiesService, logger *zap.Logger) *CapabilitiesHandler {
	return &CapabilitiesHandler{
		capabilitiesUC: capabilitiesUC,
		logger:         logger,
	}
}

// CapabilitiesEnvelope - корневой объект ответа GetCapabilities
type CapabilitiesEnvelope struct {
	GetCapabilitiesResponse *dto.CapabilitiesResponse `json:"GetCapabilitiesResponse"`
}

// VersionsEnvelope - корневой объект ответа GetVersions
type VersionsEnvelope struct {
	GetVersionsResponse dto.VersionsResponse `json:"GetVersionsResponse"`
}

// GetCapabilities godoc
// @Summary Возможности сервиса
// @Description Темы, муниципалитеты с опубликованным кадастром, языки и системы координат.
// @Tags Service
// @Produce json
// @Param LANG query string false "Язык названий тем"
// @Success 200 {object} CapabilitiesEnvelope
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/capabilities/json [get]
func (h *CapabilitiesHandler) GetCapabilities(c *fiber.Ctx) error {
	result, err := h.capabilitiesUC.GetCapabilities(c.Context(), c.Query("LANG"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(CapabilitiesEnvelope{GetCapabilitiesResponse: result})
}

// GetVersions godoc
// @Summary Поддерживаемые версии
// @Tags Service
// @Produce json
// @Success 200 {object} VersionsEnvelope
// @Router /api/v1/versions/json [get]
func (h *CapabilitiesHandler) GetVersions(c *fiber.Ctx) error {
	return c.JSON(VersionsEnvelope{
		GetVersionsResponse: dto.VersionsResponse{
			SupportedVersions: []dto.VersionEntry{{
				Version:    ExtractVersion,
				ServiceURL: strings.TrimSuffix(c.BaseURL(), "/") + "/api/v1/",
			}},
		},
	})
}

package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/oereb-service/internal/pkg/utils"
	"github.com/oereb-service/internal/pkg/validator"
	"github.com/oereb-service/internal/usecase/dto"
)

// RealEstateService ищет участки по точке или номеру
type RealEstateService interface {
	GetEGRID(ctx context.Context, req dto.GetEGRIDRequest) (*dto.EGRIDResponse, error)
}

// RealEstateHandler - обработчик поиска участков
type RealEstateHandler struct {
	realEstateUC RealEstateService
	logger       *zap.Logger
}

// NewRealEstateHandler - создание нового RealEstateHandler
func NewRealEstateHandler(realEstateUC RealEstateService, logger *zap.Logger) *RealEstateHandler {
	return &RealEstateHandler{
		realEstateUC: realEstateUC,
		logger:       logger,
	}
}

// EGRIDEnvelope - корневой объект ответа GetEGRID
type EGRIDEnvelope struct {
	GetEGRIDResponse *dto.EGRIDResponse `json:"GetEGRIDResponse"`
}

// GetEGRID godoc
// @Summary Поиск EGRID участков
// @Description Возвращает участки, содержащие точку EN, либо участки с номером NUMBER в кадастровом округе IDENTDN.
// @Tags RealEstate
// @Produce json
// @Param EN query string false "Координаты x,y в системе координат кадастра"
// @Param IDENTDN query string false "Идентификатор кадастрового округа"
// @Param NUMBER query string false "Номер участка"
// @Success 200 {object} EGRIDEnvelope
// @Success 204 "Участки не найдены"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/getegrid/json [get]
func (h *RealEstateHandler) GetEGRID(c *fiber.Ctx) error {
	req := dto.GetEGRIDRequest{
		EN:      c.Query("EN"),
		IdentDN: c.Query("IDENTDN"),
		Number:  c.Query("NUMBER"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.realEstateUC.GetEGRID(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(EGRIDEnvelope{GetEGRIDResponse: result})
}

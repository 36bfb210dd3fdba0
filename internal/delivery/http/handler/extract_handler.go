package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/oereb-service/internal/domain"
	"github.com/oereb-service/internal/pkg/utils"
	"github.com/oereb-service/internal/pkg/validator"
	"github.com/oereb-service/internal/usecase/dto"
)

// ExtractService строит выписку по EGRID
type ExtractService interface {
	GetExtract(ctx context.Context, req dto.ExtractRequest) (*domain.Extract, domain.Params, error)
}

// ExtractHandler - обработчик запросов выписки
type ExtractHandler struct {
	extractUC       ExtractService
	defaultLanguage string
	logger          *zap.Logger
}

// NewExtractHandler - создание нового ExtractHandler.
// defaultLanguage используется, если текст не переведен на язык выписки.
func NewExtractHandler(extractUC ExtractService, defaultLanguage string, logger *zap.Logger) *ExtractHandler {
	return &ExtractHandler{
		extractUC:       extractUC,
		defaultLanguage: defaultLanguage,
		logger:          logger,
	}
}

// ExtractEnvelope - корневой объект ответа выписки
type ExtractEnvelope struct {
	GetExtractByIdResponse ExtractBody `json:"GetExtractByIdResponse"`
}

type ExtractBody struct {
	Extract *dto.ExtractResponse `json:"extract"`
}

// GetExtract godoc
// @Summary Выписка об ограничениях публичного права по участку
// @Description Собирает выписку кадастра по EGRID: затронутые, не затронутые и темы без данных, ограничения с долями площади и длины, документы.
// @Tags Extract
// @Produce json
// @Param EGRID query string true "Федеральный идентификатор участка (CH + 12 символов)"
// @Param LANG query string false "Язык выписки (de, fr, it, rm, en)"
// @Param TOPICS query string false "ALL, ALL_FEDERAL или список кодов тем через запятую" default(ALL)
// @Param GEOMETRY query bool false "Включить геометрии в GeoJSON" default(false)
// @Success 200 {object} ExtractEnvelope
// @Success 204 "Участок не найден"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/extract/json [get]
func (h *ExtractHandler) GetExtract(c *fiber.Ctx) error {
	req := dto.ExtractRequest{
		EGRID:    c.Query("EGRID"),
		Language: c.Query("LANG"),
		Topics:   c.Query("TOPICS"),
		Geometry: c.QueryBool("GEOMETRY", false),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	extract, params, err := h.extractUC.GetExtract(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	h.logger.Debug("Extract built",
		zap.String("egrid", req.EGRID),
		zap.String("lang", params.Language),
		zap.String("topics", params.Topics.String()),
		zap.Int("concerned", len(extract.ConcernedTheme)))

	return c.JSON(ExtractEnvelope{
		GetExtractByIdResponse: ExtractBody{
			Extract: dto.ConvertExtract(extract, params.Language, h.defaultLanguage, params.WithGeometry),
		},
	})
}

package utils

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/oereb-service/internal/pkg/errors"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

type Meta struct {
	Total    int     `json:"total,omitempty"`
	TimeMSec float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// SendError отвечает ошибкой приложения. Ошибки валидации становятся
// INVALID_REQUEST, статус 204 отправляется без тела.
func SendError(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		fields := make(map[string]interface{}, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: errors.ErrInvalidRequest.WithDetails(fields),
		})
	}

	if appErr, ok := errors.As(err); ok {
		if appErr.StatusCode == fiber.StatusNoContent {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}

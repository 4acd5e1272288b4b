package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/dto"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
)

// respondError maps domain errors onto HTTP statuses. Insufficient stock is a
// 409 carrying the shortfall detail so the client can tell the user exactly
// what ran out.
func respondError(c *fiber.Ctx, err error) error {
	var short *domain.InsufficientStockError
	if errors.As(err, &short) {
		insufficientStockTotal.Inc()
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:             "INSUFFICIENT_STOCK",
			Message:          short.Error(),
			LiquorID:         short.LiquorID,
			ShortfallMl:      short.ShortfallMl,
			ShortfallBottles: short.ShortfallBottles,
		})
	}
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		insufficientStockTotal.Inc()
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
}

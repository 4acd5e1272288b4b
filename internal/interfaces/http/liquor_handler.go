package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/catalog"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/dto"
)

// LiquorHandler serves the liquor catalog endpoints.
type LiquorHandler struct {
	uc *catalog.LiquorUseCase
}

// NewLiquorHandler builds the handler.
func NewLiquorHandler(uc *catalog.LiquorUseCase) *LiquorHandler {
	return &LiquorHandler{uc: uc}
}

// Create godoc
// @Summary      Add a liquor to the catalog
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLiquorRequest  true  "brand, sizeMl, barcode, bottlePrice, pourPrices, optional initialBottles"
// @Success      201   {object}  dto.LiquorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/liquors [post]
func (h *LiquorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLiquorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get one catalog entry
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "liquor id"
// @Success      200  {object}  dto.LiquorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/liquors/{id} [get]
func (h *LiquorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List the liquor catalog
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LiquorResponse
// @Router       /api/liquors [get]
func (h *LiquorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Edit a catalog entry
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "liquor id"
// @Param        body  body  dto.UpdateLiquorRequest  true  "updated fields"
// @Success      200   {object}  dto.LiquorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/liquors/{id} [put]
func (h *LiquorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLiquorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remove a catalog entry and its stock records
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  string  true  "liquor id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/liquors/{id} [delete]
func (h *LiquorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

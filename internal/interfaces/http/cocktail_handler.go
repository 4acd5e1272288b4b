package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/catalog"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/dto"
)

// CocktailHandler serves the cocktail recipe endpoints.
type CocktailHandler struct {
	uc *catalog.CocktailUseCase
}

// NewCocktailHandler builds the handler.
func NewCocktailHandler(uc *catalog.CocktailUseCase) *CocktailHandler {
	return &CocktailHandler{uc: uc}
}

// Create godoc
// @Summary      Create a cocktail recipe
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCocktailRequest  true  "name, price, ingredients"
// @Success      201   {object}  dto.CocktailResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cocktails [post]
func (h *CocktailHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCocktailRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CocktailHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CocktailHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update replaces the whole recipe. Past bills keep their frozen snapshots.
func (h *CocktailHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateCocktailRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CocktailHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

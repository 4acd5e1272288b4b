package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/dto"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/sales"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
)

// SalesHandler serves the sale and availability-preview endpoints.
type SalesHandler struct {
	uc *sales.SaleUseCase
}

// NewSalesHandler builds the handler.
func NewSalesHandler(uc *sales.SaleUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// SellBottle godoc
// @Summary      Sell sealed bottles
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SellBottleRequest  true  "liquorId, location, quantity"
// @Success      201   {object}  dto.BillResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse "insufficient stock, with shortfall detail"
// @Router       /api/sales/bottle [post]
func (h *SalesHandler) SellBottle(c *fiber.Ctx) error {
	var in dto.SellBottleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SellBottle(c.Context(), in, GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	salesCommittedTotal.WithLabelValues(entity.SaleKindBottle).Inc()
	billsCommittedTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SellPour godoc
// @Summary      Sell pours of a priced size
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SellPourRequest  true  "liquorId, location, pourSizeMl, quantity"
// @Success      201   {object}  dto.BillResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse "no price configured for the size"
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/pour [post]
func (h *SalesHandler) SellPour(c *fiber.Ctx) error {
	var in dto.SellPourRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SellPour(c.Context(), in, GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	salesCommittedTotal.WithLabelValues(entity.SaleKindPour).Inc()
	billsCommittedTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SellCocktail godoc
// @Summary      Sell cocktails, depleting every ingredient
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SellCocktailRequest  true  "cocktailId, location, quantity"
// @Success      201   {object}  dto.BillResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse "an ingredient ran short; nothing committed"
// @Router       /api/sales/cocktail [post]
func (h *SalesHandler) SellCocktail(c *fiber.Ctx) error {
	var in dto.SellCocktailRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SellCocktail(c.Context(), in, GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	salesCommittedTotal.WithLabelValues(entity.SaleKindCocktail).Inc()
	billsCommittedTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Preview godoc
// @Summary      Speculative availability for an in-progress order
// @Description  Projects the staged, uncommitted lines onto current stock and
//               reports how many more units of each candidate line still fit.
//               Nothing is written.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PreviewRequest  true  "location, staged lines, candidate lines"
// @Success      200   {object}  dto.PreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales/preview [post]
func (h *SalesHandler) Preview(c *fiber.Ctx) error {
	var in dto.PreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.PreviewAvailability(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List returns ledger entries, newest first.
func (h *SalesHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ListSales(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/dto"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/inventory"
)

// InventoryHandler serves the stock record and transfer endpoints.
type InventoryHandler struct {
	stockUC    *inventory.StockUseCase
	transferUC *inventory.TransferUseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(stockUC *inventory.StockUseCase, transferUC *inventory.TransferUseCase) *InventoryHandler {
	return &InventoryHandler{stockUC: stockUC, transferUC: transferUC}
}

// List godoc
// @Summary      List stock records joined with the catalog
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        location  query  int  false  "1 = warehouse, 2 = bar; omit for both"
// @Success      200  {array}  dto.StockItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.stockUC.ListInventory(c.Context(), c.QueryInt("location"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddStock godoc
// @Summary      Book purchased sealed bottles into a location
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddStockRequest  true  "liquorId, location, bottles"
// @Success      201   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) AddStock(c *fiber.Ctx) error {
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.stockUC.AddStock(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateStock sets a record's counts directly (administrative correction).
func (h *InventoryHandler) UpdateStock(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.stockUC.UpdateStock(c.Context(), c.Params("liquorId"), c.QueryInt("location"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteStock removes one stock record.
func (h *InventoryHandler) DeleteStock(c *fiber.Ctx) error {
	if err := h.stockUC.DeleteStock(c.Context(), c.Params("liquorId"), c.QueryInt("location")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Transfer godoc
// @Summary      Move sealed bottles from the warehouse to the bar
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "liquorId, bottles"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse "insufficient sealed bottles at the warehouse"
// @Router       /api/transfers [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.transferUC.Transfer(c.Context(), in, GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	transfersTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteTransfer hard-removes a transfer log row (audit correction, no stock
// reversal).
func (h *InventoryHandler) DeleteTransfer(c *fiber.Ctx) error {
	if err := h.transferUC.DeleteTransfer(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListTransfers returns the transfer log, newest first.
func (h *InventoryHandler) ListTransfers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	out, err := h.transferUC.ListTransfers(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

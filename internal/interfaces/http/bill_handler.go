package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/billing"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/dto"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/sales"
)

// BillHandler serves the bill endpoints.
type BillHandler struct {
	uc     *billing.BillUseCase
	saleUC *sales.SaleUseCase
}

// NewBillHandler builds the handler.
func NewBillHandler(uc *billing.BillUseCase, saleUC *sales.SaleUseCase) *BillHandler {
	return &BillHandler{uc: uc, saleUC: saleUC}
}

// Commit godoc
// @Summary      Commit a multi-line order as one bill
// @Description  All lines deplete stock, append to the ledger and freeze onto
//               the bill in one transaction. Any shortfall aborts the whole
//               order.
// @Tags         bills
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CommitBillRequest  true  "location and order lines"
// @Success      201   {object}  dto.BillResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse "insufficient stock, with shortfall detail"
// @Router       /api/bills [post]
func (h *BillHandler) Commit(c *fiber.Ctx) error {
	var in dto.CommitBillRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CommitBill(c.Context(), in, GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	for _, item := range out.Items {
		salesCommittedTotal.WithLabelValues(item.Kind).Inc()
	}
	billsCommittedTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID returns one bill with its frozen items.
func (h *BillHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetBill(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List bills
// @Tags         bills
// @Security     Bearer
// @Produce      json
// @Param        month   query  string  false  "calendar month YYYY-MM; omit for paged full list"
// @Param        limit   query  int     false  "page size"
// @Param        offset  query  int     false  "page offset"
// @Success      200  {array}  dto.BillResponse
// @Router       /api/bills [get]
func (h *BillHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ListBills(c.Context(), c.Query("month"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Lines returns the sale ledger entries behind one bill.
func (h *BillHandler) Lines(c *fiber.Ctx) error {
	out, err := h.saleUC.ListByBill(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Hard-delete a bill
// @Description  Audit correction only. The sale ledger and stock records are
//               left alone, so historical reconstructions still reflect what
//               was actually poured.
// @Tags         bills
// @Security     Bearer
// @Param        id  path  string  true  "bill id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bills/{id} [delete]
func (h *BillHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteBill(c.Context(), c.Params("id"), GetActor(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

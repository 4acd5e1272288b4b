package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/reporting"
)

// ReportHandler serves the historical reporting endpoints.
type ReportHandler struct {
	uc *reporting.ReportUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *reporting.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Daily godoc
// @Summary      Per-day opening/closing stock, reconstructed from the event logs
// @Description  Walks backwards from the current records, undoing sales and
//               transfers day by day. No snapshots are stored; what was in
//               stock on any past morning is derived on demand.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  true  "first day, YYYY-MM-DD"
// @Param        to    query  string  true  "last day, YYYY-MM-DD (inclusive)"
// @Success      200   {array}   dto.DayReport
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse "event log inconsistent with current records"
// @Router       /api/reports/daily [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	out, err := h.uc.DailyReport(c.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Monthly godoc
// @Summary      Monthly income summary from bill snapshots
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        month  query  string  true  "calendar month, YYYY-MM"
// @Success      200    {object}  dto.MonthlyReport
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	out, err := h.uc.MonthlyIncome(c.Context(), c.Query("month"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MonthlyExport streams the monthly report as an xlsx attachment.
func (h *ReportHandler) MonthlyExport(c *fiber.Ctx) error {
	data, filename, err := h.uc.ExportMonthlyXLSX(c.Context(), c.Query("month"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

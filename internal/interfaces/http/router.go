package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/billing"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/catalog"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/inventory"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/reporting"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/sales"
)

// RouterDeps collects the use cases the router wires up.
type RouterDeps struct {
	LiquorUC   *catalog.LiquorUseCase
	CocktailUC *catalog.CocktailUseCase
	StockUC    *inventory.StockUseCase
	TransferUC *inventory.TransferUseCase
	SaleUC     *sales.SaleUseCase
	BillUC     *billing.BillUseCase
	ReportUC   *reporting.ReportUseCase
	JWTSecret  string
}

// Router registers the API routes. Everything under /api requires a Bearer
// token identifying the acting user.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	liquors := api.Group("/liquors")
	liquorHandler := NewLiquorHandler(deps.LiquorUC)
	liquors.Post("/", liquorHandler.Create)
	liquors.Get("/", liquorHandler.List)
	liquors.Get("/:id", liquorHandler.GetByID)
	liquors.Put("/:id", liquorHandler.Update)
	liquors.Delete("/:id", liquorHandler.Delete)

	cocktails := api.Group("/cocktails")
	cocktailHandler := NewCocktailHandler(deps.CocktailUC)
	cocktails.Post("/", cocktailHandler.Create)
	cocktails.Get("/", cocktailHandler.List)
	cocktails.Get("/:id", cocktailHandler.GetByID)
	cocktails.Put("/:id", cocktailHandler.Update)
	cocktails.Delete("/:id", cocktailHandler.Delete)

	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.StockUC, deps.TransferUC)
	inv.Get("/", inventoryHandler.List)
	inv.Post("/", inventoryHandler.AddStock)
	inv.Put("/:liquorId", inventoryHandler.UpdateStock)
	inv.Delete("/:liquorId", inventoryHandler.DeleteStock)

	transfers := api.Group("/transfers")
	transfers.Post("/", inventoryHandler.Transfer)
	transfers.Get("/", inventoryHandler.ListTransfers)
	transfers.Delete("/:id", inventoryHandler.DeleteTransfer)

	salesGroup := api.Group("/sales")
	salesHandler := NewSalesHandler(deps.SaleUC)
	salesGroup.Post("/bottle", salesHandler.SellBottle)
	salesGroup.Post("/pour", salesHandler.SellPour)
	salesGroup.Post("/cocktail", salesHandler.SellCocktail)
	salesGroup.Post("/preview", salesHandler.Preview)
	salesGroup.Get("/", salesHandler.List)

	bills := api.Group("/bills")
	billHandler := NewBillHandler(deps.BillUC, deps.SaleUC)
	bills.Post("/", billHandler.Commit)
	bills.Get("/", billHandler.List)
	bills.Get("/:id", billHandler.GetByID)
	bills.Get("/:id/lines", billHandler.Lines)
	bills.Delete("/:id", billHandler.Delete)

	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/daily", reportHandler.Daily)
	reports.Get("/monthly", reportHandler.Monthly)
	reports.Get("/monthly/export.xlsx", reportHandler.MonthlyExport)
}

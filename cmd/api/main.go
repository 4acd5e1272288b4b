package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/billing"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/catalog"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/inventory"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/reporting"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/sales"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/infrastructure/postgres"
	httpRouter "github.com/sandunudayakanthaproducts/chandima-cafe/internal/interfaces/http"
	"github.com/sandunudayakanthaproducts/chandima-cafe/pkg/config"
	"github.com/sandunudayakanthaproducts/chandima-cafe/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	if err := postgres.Migrate(cfg.DB.DSN()); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	tz, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", cfg.App.Timezone).Msg("falling back to local timezone")
		tz = time.Local
	}

	liquorRepo := postgres.NewLiquorRepository(pool)
	cocktailRepo := postgres.NewCocktailRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	billRepo := postgres.NewBillRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	liquorUC := catalog.NewLiquorUseCase(liquorRepo, stockRepo)
	cocktailUC := catalog.NewCocktailUseCase(cocktailRepo, liquorRepo)
	stockUC := inventory.NewStockUseCase(liquorRepo, stockRepo, txRunner)
	transferUC := inventory.NewTransferUseCase(liquorRepo, transferRepo, txRunner)
	saleUC := sales.NewSaleUseCase(liquorRepo, cocktailRepo, stockRepo, saleRepo, txRunner)
	billUC := billing.NewBillUseCase(billRepo, saleUC, tz, log.Zerolog())
	reportUC := reporting.NewReportUseCase(liquorRepo, billRepo, txRunner, tz, log.Zerolog())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Chandima Cafe API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		LiquorUC:   liquorUC,
		CocktailUC: cocktailUC,
		StockUC:    stockUC,
		TransferUC: transferUC,
		SaleUC:     saleUC,
		BillUC:     billUC,
		ReportUC:   reportUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("HTTP server")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("HTTP server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

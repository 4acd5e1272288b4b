package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Business counters. Request-level metrics can come from the reverse proxy;
// these track the events the owners actually ask about.
var (
	salesCommittedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cafe_sales_committed_total",
		Help: "Committed sale lines by kind.",
	}, []string{"kind"})

	billsCommittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cafe_bills_committed_total",
		Help: "Committed bills.",
	})

	transfersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cafe_transfers_total",
		Help: "Committed warehouse-to-bar transfers.",
	})

	insufficientStockTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cafe_insufficient_stock_total",
		Help: "Operations rejected for insufficient stock.",
	})
)

// MetricsHandler serves the Prometheus scrape endpoint.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

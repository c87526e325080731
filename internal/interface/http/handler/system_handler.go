package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"

	"voiceover-app/internal/infrastructure/metrics"
)

// RegisterHealthRoutes adds GET /healthz.
func RegisterHealthRoutes(app *fiber.App) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
}

// RegisterMetricsRoutes exposes reg at GET /metrics.
func RegisterMetricsRoutes(app *fiber.App, reg *prometheus.Registry) {
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler(reg)))
}

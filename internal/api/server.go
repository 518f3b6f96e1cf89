package api

import (
	middleware "github.com/Behyna/sms-relay/internal/error"
	"github.com/Behyna/sms-relay/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

const ServiceName = "smsrelay"

// NewApp builds the fiber app with the relay's middleware stack. Any origin may
// call the API.
func NewApp(m *metrics.Metrics, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               ServiceName,
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
	}))
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	app.Use(metrics.HealthCheckMiddleware(ServiceName))

	return app
}

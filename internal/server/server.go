// Package server is the inbound HTTP boundary: one analysis endpoint
// plus service info and liveness routes.
package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

// Version is the service version reported on the info route.
const Version = "1.0.0"

// New builds the fiber application with its middleware and routes.
func New(handler *Handler, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Stockmind " + Version,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,OPTIONS",
	}))
	app.Use(accessLog(log))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "Stockmind",
			"version": Version,
			"usage":   "GET /analyze_company?company_name=<name>",
		})
	})
	app.Get("/healthz", handler.Healthz)
	app.Get("/analyze_company", handler.AnalyzeCompany)

	return app
}

func accessLog(log *zap.Logger) fiber.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)))
		return err
	}
}

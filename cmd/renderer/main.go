package main

import (
	"fmt"
	"time"

	"grid-studio/internal/common/config"
	"grid-studio/internal/common/health"
	"grid-studio/internal/common/logging"
	"grid-studio/internal/common/middleware"
	"grid-studio/internal/grid/export"
	"grid-studio/internal/renderer/handlers"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Renderer Service
// ============================================================

func main() {
	cfg := config.Load().PortOr("3001")
	log := logging.Component(logging.New(cfg.Environment, cfg.LogLevel), "renderer")

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Grid Renderer",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())

	// ============================================================
	// Health Check Routes
	// ============================================================

	health.Register(app)

	// ============================================================
	// Renderer Routes
	// ============================================================

	exporter := export.NewExporter(cfg.MaxCanvasSide, cfg.BatchWorkers, log)
	handlers.Register(app, handlers.NewRenderHandler(exporter, log))

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().
		Str("addr", addr).
		Str("env", cfg.Environment).
		Int("max_canvas_side", cfg.MaxCanvasSide).
		Msg("starting renderer")

	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"grid-studio/internal/common/config"
	"grid-studio/internal/common/health"
	"grid-studio/internal/common/logging"
	"grid-studio/internal/common/middleware"
	"grid-studio/internal/gateway"
	"grid-studio/internal/gateway/proxy"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// API Gateway
// ============================================================

func main() {
	cfg := config.Load()
	log := logging.Component(logging.New(cfg.Environment, cfg.LogLevel), "gateway")

	up := gateway.Upstreams{
		RendererURL: config.Getenv("RENDERER_URL", "http://localhost:3001"),
		LibraryURL:  config.Getenv("LIBRARY_URL", "http://localhost:3002"),
		DocsPath:    config.Getenv("DOCS_PATH", "docs/gridgen.openapi.yaml"),
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Grid Studio Gateway",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.CORS(cfg.CORSOrigins))
	app.Use(middleware.Logger())

	// ============================================================
	// Health Check Routes
	// ============================================================

	health.Register(app, upstreamReady(up.RendererURL), upstreamReady(up.LibraryURL))

	// ============================================================
	// Service Routes (Proxy)
	// ============================================================

	gateway.Register(app, proxy.New(time.Duration(cfg.WriteTimeout)*time.Second, log), up)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().
		Str("addr", addr).
		Str("env", cfg.Environment).
		Str("renderer", up.RendererURL).
		Str("library", up.LibraryURL).
		Msg("starting gateway")

	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

// upstreamReady опрашивает /health/live сервиса.
func upstreamReady(baseURL string) health.Check {
	return func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/health/live", nil)
		if err != nil {
			return err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return fmt.Errorf("%s: %w", baseURL, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%s: status %d", baseURL, resp.StatusCode)
		}
		return nil
	}
}

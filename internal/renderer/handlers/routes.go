package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Routes
// ============================================================

func Register(app *fiber.App, h *RenderHandler) {
	app.Get("/patterns", Patterns)
	app.Get("/presets", Presets)
	app.Get("/defaults", Defaults)
	app.Get("/colors", Colors)

	app.Post("/render/png", h.RenderPNG)
	app.Post("/render/svg", h.RenderSVG)
	app.Post("/render/geometry", h.Geometry)
	app.Post("/randomize", h.Randomize)
	app.Post("/inspect", h.Inspect)
}

package gateway

import (
	"grid-studio/internal/gateway/handlers"
	"grid-studio/internal/gateway/proxy"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Gateway Routes
// ============================================================

type Upstreams struct {
	RendererURL string
	LibraryURL  string
	DocsPath    string
}

const specURL = "/docs/openapi.yaml"

// Register вешает документацию и прокси-маршруты /api/v1.
func Register(app *fiber.App, p *proxy.Proxy, up Upstreams) {
	app.Get(specURL, handlers.SwaggerSpec(up.DocsPath))
	app.Get("/docs", handlers.SwaggerUI(specURL))

	api := app.Group("/api/v1")

	api.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Grid Studio API v1",
			"status":  "ok",
		})
	})

	// Renderer Service
	api.Get("/patterns", p.To(up.RendererURL+"/patterns"))
	api.Get("/presets", p.To(up.RendererURL+"/presets"))
	api.Get("/defaults", p.To(up.RendererURL+"/defaults"))
	api.Get("/colors", p.To(up.RendererURL+"/colors"))
	api.Post("/render/*", p.Prefix(up.RendererURL+"/render"))
	api.Post("/randomize", p.To(up.RendererURL+"/randomize"))
	api.Post("/inspect", p.To(up.RendererURL+"/inspect"))

	// Library Service
	api.Post("/login", p.To(up.LibraryURL+"/login"))
	api.Post("/logout", p.To(up.LibraryURL+"/logout"))
	api.All("/users/*", p.Prefix(up.LibraryURL+"/users"))
}

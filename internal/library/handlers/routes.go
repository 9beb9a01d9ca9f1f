package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Routes
// ============================================================

func Register(app *fiber.App, h *LibraryHandler) {
	app.Post("/login", h.Login)
	app.Post("/logout", h.Logout)

	owned := h.RequireOwner
	app.Get("/users/:id/grids", owned, h.ListGrids)
	app.Post("/users/:id/grids", owned, h.CreateGrid)
	app.Post("/users/:id/grids/export", owned, h.BatchExport)
	app.Get("/users/:id/grids/:gridID", owned, h.GetGrid)
	app.Patch("/users/:id/grids/:gridID", owned, h.RenameGrid)
	app.Put("/users/:id/grids/:gridID", owned, h.UpdateGrid)
	app.Delete("/users/:id/grids/:gridID", owned, h.DeleteGrid)
	app.Get("/users/:id/grids/:gridID/thumbnail", owned, h.Thumbnail)
	app.Get("/users/:id/grids/:gridID/export", owned, h.Export)
}

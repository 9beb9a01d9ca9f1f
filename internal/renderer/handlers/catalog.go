package handlers

import (
	"grid-studio/internal/grid/catalog"
	"grid-studio/internal/grid/models"
	"grid-studio/internal/grid/randomize"
	"grid-studio/internal/grid/render"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Catalog Handlers
// ============================================================

// Patterns отдаёт каталог по категориям в порядке интерфейса.
func Patterns(c fiber.Ctx) error {
	return c.JSON(catalog.Categories())
}

func Presets(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"sizes":      models.SizePresets(),
		"lineStyles": models.LineStyles,
	})
}

func Defaults(c fiber.Ctx) error {
	return c.JSON(models.DefaultConfig())
}

type swatch struct {
	Hex string `json:"hex"`
	RGB string `json:"rgb"`
	HSL string `json:"hsl"`
}

// Colors: палитра линий с представлениями RGB и HSL.
func Colors(c fiber.Ctx) error {
	out := make([]swatch, 0, len(randomize.Palette))
	for _, hex := range randomize.Palette {
		rgb, err := render.RGBString(hex)
		if err != nil {
			return err
		}
		hsl, err := render.HSLString(hex)
		if err != nil {
			return err
		}
		out = append(out, swatch{Hex: hex, RGB: rgb, HSL: hsl})
	}
	return c.JSON(out)
}

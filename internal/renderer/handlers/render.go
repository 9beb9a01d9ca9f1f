package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strconv"

	"grid-studio/internal/common/logging"
	"grid-studio/internal/grid/export"
	"grid-studio/internal/grid/models"
	"grid-studio/internal/grid/randomize"
	"grid-studio/internal/grid/render"
	"grid-studio/internal/grid/svgscan"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

// ============================================================
// Render Handler
// ============================================================

type RenderHandler struct {
	exporter *export.Exporter
	log      zerolog.Logger
}

func NewRenderHandler(exporter *export.Exporter, log zerolog.Logger) *RenderHandler {
	return &RenderHandler{
		exporter: exporter,
		log:      logging.Component(log, "render"),
	}
}

// RenderPNG рисует конфигурацию из тела запроса в PNG.
func (h *RenderHandler) RenderPNG(c fiber.Ctx) error {
	return h.renderFile(c, export.FormatPNG)
}

// RenderSVG собирает SVG-документ для конфигурации из тела запроса.
func (h *RenderHandler) RenderSVG(c fiber.Ctx) error {
	return h.renderFile(c, export.FormatSVG)
}

func (h *RenderHandler) renderFile(c fiber.Ctx, format export.Format) error {
	cfg, err := h.decodeConfig(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	transparent := c.Query("transparent") == "true"
	data, err := h.exporter.Render(cfg, format, transparent)
	if err != nil {
		return h.renderError(c, err)
	}

	h.log.Info().
		Str("format", string(format)).
		Int("width", cfg.State.Width).
		Int("height", cfg.State.Height).
		Bool("transparent", transparent).
		Int("bytes", len(data)).
		Msg("rendered")

	c.Set("Content-Type", format.ContentType())
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename(cfg.State, format)))
	return c.Send(data)
}

// Geometry возвращает план примитивов по слоям вместе с матрицей холста.
func (h *RenderHandler) Geometry(c fiber.Ctx) error {
	cfg, err := h.decodeConfig(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.exporter.Validate(cfg); err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(render.Compose(cfg.State, cfg.Layers))
}

// Randomize подбирает паттерны и стиль слоя ?layer=1|2.
// Необязательный ?seed= делает результат воспроизводимым.
func (h *RenderHandler) Randomize(c fiber.Ctx) error {
	cfg, err := h.decodeConfig(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	layer, err := strconv.Atoi(c.Query("layer", "1"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "layer must be 1 or 2"})
	}

	seed := rand.Uint64()
	if s := c.Query("seed"); s != "" {
		if seed, err = strconv.ParseUint(s, 10, 64); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid seed"})
		}
	}

	out, err := randomize.Randomize(cfg, layer, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	h.log.Debug().Int("layer", layer).Uint64("seed", seed).Msg("randomized")
	return c.JSON(out)
}

// Inspect разбирает загруженный SVG и возвращает сводку по слоям.
func (h *RenderHandler) Inspect(c fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "file required in multipart/form-data"})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to open file"})
	}
	defer f.Close()

	doc, err := svgscan.Parse(io.LimitReader(f, file.Size))
	if err != nil {
		h.log.Warn().Err(err).Str("file", file.Filename).Msg("inspect failed")
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(doc.Summary())
}

// ============================================================
// Helpers
// ============================================================

// decodeConfig читает GridConfig; пустое тело означает конфигурацию по умолчанию.
func (h *RenderHandler) decodeConfig(c fiber.Ctx) (models.GridConfig, error) {
	cfg := models.DefaultConfig()
	if len(c.Body()) == 0 {
		return cfg, nil
	}
	if err := json.Unmarshal(c.Body(), &cfg); err != nil {
		h.log.Debug().Err(err).Msg("decode config")
		return cfg, errors.New("invalid JSON payload")
	}
	return cfg, nil
}

func (h *RenderHandler) renderError(c fiber.Ctx, err error) error {
	h.log.Warn().Err(err).Msg("render rejected")
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode"

	"grid-studio/internal/common/logging"
	"grid-studio/internal/grid/models"
	"grid-studio/internal/grid/render"

	"github.com/gogpu/gg"
	"github.com/klauspost/compress/zip"
	"github.com/rs/zerolog"
	"golang.org/x/image/draw"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ============================================================
// Formats
// ============================================================

type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat принимает "png" или "svg"; пустая строка означает png.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	}
	return "", fmt.Errorf("unsupported format %q", s)
}

func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// ThumbnailSide: максимальная сторона превью в библиотеке.
const ThumbnailSide = 300

var ErrInvalidCanvas = errors.New("invalid canvas size")

// ============================================================
// Exporter
// ============================================================

type Exporter struct {
	maxSide int
	workers int
	log     zerolog.Logger
}

func NewExporter(maxSide, workers int, log zerolog.Logger) *Exporter {
	if workers < 1 {
		workers = 1
	}
	return &Exporter{
		maxSide: maxSide,
		workers: workers,
		log:     logging.Component(log, "export"),
	}
}

// Validate проверяет холст и параметры слоёв до рендеринга.
func (e *Exporter) Validate(cfg models.GridConfig) error {
	s := cfg.State
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, s.Width, s.Height)
	}
	if e.maxSide > 0 && (s.Width > e.maxSide || s.Height > e.maxSide) {
		return fmt.Errorf("%w: %dx%d exceeds %d px", ErrInvalidCanvas, s.Width, s.Height, e.maxSide)
	}
	if !render.ValidColor(s.BgColor) {
		return fmt.Errorf("invalid background color %q", s.BgColor)
	}
	if s.Margin < 0 || s.Padding < 0 || s.Gutter < 0 {
		return fmt.Errorf("margin, padding and gutter must be non-negative")
	}
	for i, l := range cfg.Layers.Ordered() {
		if err := validateLayer(l); err != nil {
			return fmt.Errorf("layer %d: %w", i+1, err)
		}
	}
	return nil
}

func validateLayer(l models.LayerState) error {
	if !render.ValidColor(l.LineColor) {
		return fmt.Errorf("invalid line color %q", l.LineColor)
	}
	if !slices.Contains(models.LineStyles, l.LineStyle) {
		return fmt.Errorf("unknown line style %q", l.LineStyle)
	}
	if !(l.LineWeight > 0) {
		return fmt.Errorf("line weight must be positive, got %v", l.LineWeight)
	}
	if !inPercent(l.Opacity) || !inPercent(l.LineOpacity) {
		return fmt.Errorf("opacity must be within 0..100")
	}
	return nil
}

func inPercent(v float64) bool {
	return v >= 0 && v <= 100
}

// Render возвращает файл в нужном формате.
func (e *Exporter) Render(cfg models.GridConfig, format Format, transparent bool) ([]byte, error) {
	if format == FormatSVG {
		if err := e.Validate(cfg); err != nil {
			return nil, err
		}
		return []byte(render.SVG(cfg.State, cfg.Layers, transparent)), nil
	}
	return e.PNG(cfg, transparent)
}

func (e *Exporter) PNG(cfg models.GridConfig, transparent bool) ([]byte, error) {
	start := time.Now()
	dc, err := e.draw(cfg, transparent)
	if err != nil {
		return nil, err
	}
	defer dc.Close()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	e.log.Debug().
		Int("width", cfg.State.Width).
		Int("height", cfg.State.Height).
		Float64("ms", logging.Since(start)).
		Msg("png rendered")
	return buf.Bytes(), nil
}

func (e *Exporter) SVG(cfg models.GridConfig, transparent bool) ([]byte, error) {
	return e.Render(cfg, FormatSVG, transparent)
}

func (e *Exporter) draw(cfg models.GridConfig, transparent bool) (*gg.Context, error) {
	if err := e.Validate(cfg); err != nil {
		return nil, err
	}
	dc := gg.NewContext(cfg.State.Width, cfg.State.Height)
	if err := render.Raster(dc, cfg.State, cfg.Layers, transparent); err != nil {
		dc.Close()
		return nil, fmt.Errorf("raster: %w", err)
	}
	return dc, nil
}

// Thumbnail рисует сетку в полном размере и уменьшает так, чтобы
// большая сторона не превышала maxSide. Меньшие холсты не растягиваются.
func (e *Exporter) Thumbnail(cfg models.GridConfig, maxSide int) ([]byte, error) {
	dc, err := e.draw(cfg, false)
	if err != nil {
		return nil, err
	}
	defer dc.Close()

	src := dc.Image()
	w, h := ThumbnailSize(cfg.State.Width, cfg.State.Height, maxSide)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// ThumbnailSize: размеры превью при масштабе min(max/W, max/H, 1).
func ThumbnailSize(width, height, maxSide int) (int, int) {
	scale := math.Min(1, math.Min(float64(maxSide)/float64(width), float64(maxSide)/float64(height)))
	w := max(1, int(math.Round(float64(width)*scale)))
	h := max(1, int(math.Round(float64(height)*scale)))
	return w, h
}

// ============================================================
// Batch
// ============================================================

type Item struct {
	Name   string
	Config models.GridConfig
}

// Batch рендерит элементы параллельно и складывает их в zip в
// исходном порядке. Прозрачный фон в пакетном экспорте не используется.
func (e *Exporter) Batch(ctx context.Context, items []Item, format Format) ([]byte, error) {
	start := time.Now()
	files := make([][]byte, len(items))

	var wg sync.WaitGroup
	var firstError error
	var errMu sync.Mutex
	fail := func(err error) {
		errMu.Lock()
		if firstError == nil {
			firstError = err
		}
		errMu.Unlock()
	}
	sem := make(chan struct{}, e.workers)

loop:
	for i, item := range items {
		select {
		case <-ctx.Done():
			break loop
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(idx int, it Item) {
			defer wg.Done()
			defer func() { <-sem }()

			if ctx.Err() != nil {
				return
			}
			data, err := e.Render(it.Config, format, false)
			if err != nil {
				fail(fmt.Errorf("%s: %w", it.Name, err))
				return
			}
			files[idx] = data
		}(i, item)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if firstError != nil {
		return nil, firstError
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	names := UniqueNames(items, format)
	for i, data := range files {
		f, err := zw.Create(names[i])
		if err != nil {
			return nil, fmt.Errorf("zip entry: %w", err)
		}
		if _, err := f.Write(data); err != nil {
			return nil, fmt.Errorf("zip write: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip close: %w", err)
	}

	e.log.Info().
		Int("items", len(items)).
		Str("format", string(format)).
		Float64("ms", logging.Since(start)).
		Msg("batch exported")
	return buf.Bytes(), nil
}

// UniqueNames возвращает имена файлов архива; повторы получают -2, -3.
// Суффикс пропускает имена, уже занятые другими элементами.
func UniqueNames(items []Item, format Format) []string {
	used := make(map[string]bool, len(items))
	next := make(map[string]int, len(items))
	names := make([]string, len(items))
	for i, it := range items {
		base := SanitizeName(it.Name)
		name := base
		for n := max(next[base], 2); used[name]; n++ {
			name = fmt.Sprintf("%s-%d", base, n)
			next[base] = n + 1
		}
		used[name] = true
		names[i] = name + "." + string(format)
	}
	return names
}

// ============================================================
// Names
// ============================================================

func Filename(state models.CanvasState, format Format) string {
	return fmt.Sprintf("baseline-grid-%dx%d.%s", state.Width, state.Height, format)
}

func ArchiveName(format Format) string {
	return fmt.Sprintf("baseline-grids-%s.zip", format)
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// SanitizeName убирает диакритику и заменяет прочие символы на "_".
func SanitizeName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.TrimSpace(name))
	if err != nil {
		folded = name
	}
	clean := unsafeChars.ReplaceAllString(folded, "_")
	if clean == "" {
		return "grid"
	}
	return clean
}

package geometry

import (
	"math"

	"grid-studio/internal/grid/models"
)

// ============================================================
// Frame
// ============================================================

// Frame: рабочий прямоугольник холста и общие параметры построения.
type Frame struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	Gutter float64 `json:"gutter"`
	Scale  float64 `json:"scale"`
}

// NewFrame вычисляет рабочую область один раз на вызов рендера.
func NewFrame(s models.CanvasState) Frame {
	inset := s.Margin + s.Padding
	return Frame{
		X:      inset,
		Y:      inset,
		W:      float64(s.Width) - 2*inset,
		H:      float64(s.Height) - 2*inset,
		Gutter: s.Gutter,
		Scale:  math.Max(float64(s.Width), float64(s.Height)) / 1000,
	}
}

// Empty: вырожденная область (нулевая, отрицательная или NaN).
func (f Frame) Empty() bool {
	return !(f.W > 0 && f.H > 0)
}

func (f Frame) CX() float64 { return f.X + f.W/2 }

func (f Frame) CY() float64 { return f.Y + f.H/2 }

// Radius: базовый радиус фигур сакральной геометрии.
func (f Frame) Radius() float64 { return math.Min(f.W, f.H) * 0.4 }

// ============================================================
// Line style
// ============================================================

// Dash возвращает штрих-пунктир для стиля линии; nil для solid.
func Dash(style models.LineStyle, scale float64) []float64 {
	switch style {
	case models.LineDashed:
		return []float64{8 * scale, 4 * scale}
	case models.LineDotted:
		return []float64{2 * scale, 4 * scale}
	}
	return nil
}

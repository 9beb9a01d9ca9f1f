package geometry

import (
	"math"
	"strconv"
	"strings"

	"grid-studio/internal/grid/models"
)

// ============================================================
// Canvas Transform
// ============================================================

// Transform: поворот и отражение вокруг центра всего холста.
type Transform struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"` // градусы
	FlipH    bool    `json:"flipH"`
	FlipV    bool    `json:"flipV"`
}

func NewTransform(s models.CanvasState) Transform {
	return Transform{
		Width:    float64(s.Width),
		Height:   float64(s.Height),
		Rotation: s.Rotation,
		FlipH:    s.FlipH,
		FlipV:    s.FlipV,
	}
}

func (t Transform) IsIdentity() bool {
	return math.Mod(t.Rotation, 360) == 0 && !t.FlipH && !t.FlipV
}

func (t Transform) Radians() float64 {
	return t.Rotation * math.Pi / 180
}

// ScaleXY: множители отражения.
func (t Transform) ScaleXY() (float64, float64) {
	sx, sy := 1.0, 1.0
	if t.FlipH {
		sx = -1
	}
	if t.FlipV {
		sy = -1
	}
	return sx, sy
}

// Matrix возвращает аффинную матрицу [a b c d e f] в порядке canvas:
// x' = a*x + c*y + e, y' = b*x + d*y + f.
func (t Transform) Matrix() [6]float64 {
	sin, cos := math.Sincos(t.Radians())
	sx, sy := t.ScaleXY()
	a, b := cos*sx, sin*sx
	c, d := -sin*sy, cos*sy
	hw, hh := t.Width/2, t.Height/2
	return [6]float64{a, b, c, d, hw - a*hw - c*hh, hh - b*hw - d*hh}
}

// Apply переводит точку из координат построения в координаты холста.
func (t Transform) Apply(p Point) Point {
	m := t.Matrix()
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Attr возвращает значение SVG-атрибута transform; пусто для тождественного.
func (t Transform) Attr() string {
	if t.IsIdentity() {
		return ""
	}
	hw, hh := t.Width/2, t.Height/2
	parts := []string{"translate(" + FormatFloat(hw) + "," + FormatFloat(hh) + ")"}
	if t.Rotation != 0 {
		parts = append(parts, "rotate("+FormatFloat(t.Rotation)+")")
	}
	if t.FlipH || t.FlipV {
		sx, sy := t.ScaleXY()
		parts = append(parts, "scale("+FormatFloat(sx)+","+FormatFloat(sy)+")")
	}
	parts = append(parts, "translate("+FormatFloat(-hw)+","+FormatFloat(-hh)+")")
	return strings.Join(parts, " ")
}

// FormatFloat печатает число в кратчайшей точной форме.
func FormatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}

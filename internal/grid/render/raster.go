package render

import (
	"grid-studio/internal/grid/geometry"
	"grid-studio/internal/grid/models"

	"github.com/gogpu/gg"
)

// ============================================================
// Raster backend
// ============================================================

// Surface: часть API *gg.Context, которой пользуется растровый бэкенд.
type Surface interface {
	Clear()
	ClearWithColor(col gg.RGBA)
	SetRGBA(r, g, b, a float64)
	SetLineWidth(width float64)
	SetDash(lengths ...float64)
	ClearDash()
	Push()
	Pop()
	Translate(x, y float64)
	Rotate(angle float64)
	Scale(x, y float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
	DrawRectangle(x, y, w, h float64)
	DrawCircle(x, y, r float64)
	Stroke() error
}

var _ Surface = (*gg.Context)(nil)

// Raster рисует оба слоя на поверхности размером width × height.
// Ошибку может вернуть только обводка самой поверхности.
func Raster(s Surface, state models.CanvasState, layers models.Layers, transparent bool) error {
	return Compose(state, layers).Raster(s, transparent)
}

func (sc Scene) Raster(s Surface, transparent bool) error {
	if transparent {
		s.Clear()
	} else {
		s.ClearWithColor(gg.Hex(sc.Background))
	}

	for _, layer := range sc.Layers {
		if err := sc.rasterLayer(s, layer); err != nil {
			return err
		}
	}
	return nil
}

func (sc Scene) rasterLayer(s Surface, layer LayerPlan) error {
	if layer.Empty() {
		return nil
	}

	s.Push()
	defer s.Pop()

	col := gg.Hex(layer.Style.Color)
	s.SetRGBA(col.R, col.G, col.B, layer.Style.Alpha)
	s.SetLineWidth(layer.Style.Width)
	if len(layer.Style.Dash) > 0 {
		s.SetDash(layer.Style.Dash...)
	} else {
		s.ClearDash()
	}

	t := sc.Transform
	hw, hh := t.Width/2, t.Height/2
	sx, sy := t.ScaleXY()
	s.Translate(hw, hh)
	s.Rotate(t.Radians())
	s.Scale(sx, sy)
	s.Translate(-hw, -hh)

	for _, p := range layer.Patterns {
		for _, shape := range p.Shapes {
			trace(s, shape)
		}
	}
	return s.Stroke()
}

// trace добавляет фигуру в текущий путь.
func trace(s Surface, shape geometry.Shape) {
	switch v := shape.(type) {
	case geometry.Line:
		s.MoveTo(v.X1, v.Y1)
		s.LineTo(v.X2, v.Y2)
	case geometry.Rect:
		s.DrawRectangle(v.X, v.Y, v.W, v.H)
	case geometry.Circle:
		s.DrawCircle(v.CX, v.CY, v.R)
	case geometry.Arc:
		// DrawArc преобразует только центр, поэтому при отражении
		// дуга строится кубическими сегментами в координатах построения.
		start := v.StartPoint()
		s.MoveTo(start.X, start.Y)
		for _, c := range v.Cubics() {
			s.CubicTo(c.C1.X, c.C1.Y, c.C2.X, c.C2.Y, c.To.X, c.To.Y)
		}
	case geometry.Polygon:
		s.MoveTo(v.Points[0].X, v.Points[0].Y)
		for _, pt := range v.Points[1:] {
			s.LineTo(pt.X, pt.Y)
		}
		s.ClosePath()
	case geometry.ClippedLines:
		for _, l := range v.Visible() {
			s.MoveTo(l.X1, l.Y1)
			s.LineTo(l.X2, l.Y2)
		}
	}
}

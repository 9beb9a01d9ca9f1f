package catalog

import (
	"math"

	"grid-studio/internal/grid/geometry"
)

// ============================================================
// Radial
// ============================================================

var radial = []entry{
	{"radial", "Radial", radialRings},
	{"radial-corner", "Corner Radial", radialCorner},
	{"radial-concentric", "Concentric", concentric},
	{"radial-sunburst", "Sunburst", sunburst},
	{"radial-quadrant", "Quadrant Arcs", quadrantArcs},
}

// rays: n лучей равномерно по окружности из (cx, cy).
func rays(p *geometry.Plan, cx, cy, length float64, n int) {
	for i := 0; i < n; i++ {
		a := float64(i) / float64(n) * 2 * math.Pi
		p.Line(cx, cy, cx+math.Cos(a)*length, cy+math.Sin(a)*length)
	}
}

func radialRings(f geometry.Frame, p *geometry.Plan) {
	cx, cy := f.CX(), f.CY()
	rr := math.Min(f.W, f.H) / 2
	for i := 1; i <= 5; i++ {
		p.Circle(cx, cy, rr*float64(i)/5)
	}
	rays(p, cx, cy, rr, 8)
}

// radialCorner: дуги и веер из правого нижнего угла.
func radialCorner(f geometry.Frame, p *geometry.Plan) {
	ox, oy := f.X+f.W, f.Y+f.H
	maxR := math.Hypot(f.W, f.H)
	for i := 1; i <= 5; i++ {
		p.Arc(ox, oy, maxR*float64(i)/5, math.Pi, math.Pi*1.5, false)
	}
	for i := 0; i < 5; i++ {
		a := math.Pi + float64(i)/4*(math.Pi/2)
		p.Line(ox, oy, ox+math.Cos(a)*maxR, oy+math.Sin(a)*maxR)
	}
}

func concentric(f geometry.Frame, p *geometry.Plan) {
	cx, cy := f.CX(), f.CY()
	cr := math.Min(f.W, f.H) / 2
	for i := 1; i <= 12; i++ {
		p.Circle(cx, cy, cr*float64(i)/12)
	}
}

func sunburst(f geometry.Frame, p *geometry.Plan) {
	rays(p, f.CX(), f.CY(), math.Max(f.W, f.H), 16)
}

// quadrantArcs: по три четверти окружности в каждом углу,
// обход против часовой стрелки.
func quadrantArcs(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h := f.X, f.Y, f.W, f.H
	qr := math.Min(w, h) * 0.6
	for i := 1; i <= 3; i++ {
		r := qr * float64(i) / 3
		p.Arc(x, y, r, math.Pi/2, 0, true)
		p.Arc(x+w, y, r, math.Pi, math.Pi/2, true)
		p.Arc(x+w, y+h, r, math.Pi*1.5, math.Pi, true)
		p.Arc(x, y+h, r, 0, math.Pi*1.5, true)
	}
}

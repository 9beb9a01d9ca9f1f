package catalog

import (
	"math"

	"grid-studio/internal/grid/geometry"
)

// ============================================================
// Axial
// ============================================================

var axial = []entry{
	{"axial-15", "15°", tilted(15, 0.5)},
	{"axial-30", "30°", tilted(30, 0.5)},
	{"axial-45", "45°", axial45},
	{"axial-60", "60°", axial60},
	{"axial-offset-high", "Offset High", tilted(30, 0.25)},
	{"axial-offset-low", "Offset Low", tilted(30, 0.75)},
}

func deg(a float64) float64 {
	return a * math.Pi / 180
}

// tilted: ось под углом deg через точку на доле at высоты,
// во всю ширину рабочей области.
func tilted(angle, at float64) Rule {
	return func(f geometry.Frame, p *geometry.Plan) {
		oy := f.Y + f.H*at
		dy := f.W * math.Tan(deg(angle)) / 2
		p.Line(f.X, oy-dy, f.X+f.W, oy+dy)
	}
}

func axial45(f geometry.Frame, p *geometry.Plan) {
	p.Line(f.X, f.Y, f.X+f.W, f.Y+f.H)
}

// axial60 ограничивает ось высотой области.
func axial60(f geometry.Frame, p *geometry.Plan) {
	t := math.Tan(deg(60))
	dy := math.Min(f.W*t/2, f.H/2)
	dx := dy / t
	cx := f.CX()
	p.Line(cx-dx, f.Y, cx+dx, f.Y+f.H)
}

// ============================================================
// Diagonal
// ============================================================

var diagonal = []entry{
	{"diagonal", "Diagonal Lines", diagonals},
	{"diagonal-thirds", "Diagonal Thirds", diagonalThirds},
	{"diagonal-quarters", "Diagonal Quarters", diagonalQuarters},
	{"diagonal-cross", "Diagonal Cross", diagonalCross},
	{"diagonal-angle", "Angular 30/60", diagonalAngle},
	{"diagonal-chevron", "Chevron", chevron},
}

func diagonals(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h := f.X, f.Y, f.W, f.H
	p.Line(x, y, x+w, y+h)
	p.Line(x+w, y, x, y+h)
}

func diagonalThirds(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h := f.X, f.Y, f.W, f.H
	diagonals(f, p)
	p.Line(x+w/3, y, x+w, y+h*2/3)
	p.Line(x, y+h/3, x+w*2/3, y+h)
	p.Line(x+w*2/3, y, x, y+h*2/3)
	p.Line(x+w, y+h/3, x+w/3, y+h)
}

func diagonalQuarters(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h := f.X, f.Y, f.W, f.H
	diagonals(f, p)
	p.Line(x+w/2, y, x, y+h/2)
	p.Line(x+w/2, y, x+w, y+h/2)
	p.Line(x, y+h/2, x+w/2, y+h)
	p.Line(x+w, y+h/2, x+w/2, y+h)
}

// diagonalCross: по три параллели к каждой диагонали с шагом в четверть
// стороны, затем сами диагонали.
func diagonalCross(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h := f.X, f.Y, f.W, f.H
	for i := 1.0; i < 4; i++ {
		p.Line(x+w*i/4, y, x+w, y+h*(4-i)/4)
		p.Line(x, y+h*i/4, x+w*(4-i)/4, y+h)
		p.Line(x+w*(4-i)/4, y, x, y+h*(4-i)/4)
		p.Line(x+w, y+h*i/4, x+w*i/4, y+h)
	}
	diagonals(f, p)
}

func diagonalAngle(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h := f.X, f.Y, f.W, f.H
	for _, a := range []float64{30, 60} {
		t := math.Tan(deg(a))
		p.Line(x, y+h, math.Min(x+w, x+h/t), y)
		p.Line(x+w, y+h, math.Max(x, x+w-h/t), y)
	}
}

func chevron(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h := f.X, f.Y, f.W, f.H
	ch := h / 5
	for i := 0; i < 5; i++ {
		cy := y + float64(i)*ch
		p.Line(x, cy+ch, x+w/2, cy)
		p.Line(x+w/2, cy, x+w, cy+ch)
	}
}

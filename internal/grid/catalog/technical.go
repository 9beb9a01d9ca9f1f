package catalog

import (
	"math"

	"grid-studio/internal/grid/geometry"
)

// ============================================================
// Technical
// ============================================================

var technical = []entry{
	{"isometric", "Isometric", isometric},
	{"perspective-1pt", "1-Point Perspective", perspective1},
	{"perspective-2pt", "2-Point Perspective", perspective2},
	{"perspective-3pt", "3-Point Perspective", perspective3},
}

// isometric: сетка равносторонних треугольников с шагом 30*scale,
// обрезанная по рабочей области, плюс рамка.
func isometric(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h := f.X, f.Y, f.W, f.H
	sp := 30 * f.Scale
	if !(sp > 0) || f.Empty() {
		return
	}
	triH := sp * math.Sqrt(3) / 2
	numRows := int(math.Ceil(h/triH)) + 1
	numCols := int(math.Ceil(w/sp)) + 2

	p.Clip(x, y, w, h, func(c *geometry.Plan) {
		for r := 0; r <= numRows; r++ {
			py := y + h - float64(r)*triH
			c.Line(x, py, x+w, py)
		}
		for r := 0; r < numRows; r++ {
			yBot := y + h - float64(r)*triH
			yTop := yBot - triH
			xOff := 0.0
			if r%2 == 0 {
				xOff = sp / 2
			}
			for k := -1; k <= numCols; k++ {
				ax := x + float64(k)*sp + xOff
				c.Line(ax-sp/2, yBot, ax, yTop)
				c.Line(ax+sp/2, yBot, ax, yTop)
			}
		}
	})
	p.Rect(x, y, w, h)
}

func perspective1(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h := f.X, f.Y, f.W, f.H
	cx, cy := f.CX(), f.CY()
	targets := []geometry.Point{
		{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h},
		{X: x + w/2, Y: y}, {X: x + w, Y: cy}, {X: x + w/2, Y: y + h}, {X: x, Y: cy},
	}
	for _, t := range targets {
		p.Line(cx, cy, t.X, t.Y)
	}
	p.Line(x, cy, x+w, cy)
}

func perspective2(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h := f.X, f.Y, f.W, f.H
	hy := y + h*0.4
	lv := x - w*0.1
	rv := x + w*1.1
	p.Line(x, hy, x+w, hy)
	for i := 0; i <= 4; i++ {
		ty := y + h*float64(i)/4
		p.Line(lv, hy, x+w, ty)
		p.Line(rv, hy, x, ty)
	}
}

func perspective3(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h := f.X, f.Y, f.W, f.H
	hy := y + h*0.3
	lv := x - w*0.1
	rv := x + w*1.1
	bv := y + h*1.3
	p.Line(x, hy, x+w, hy)
	for i := 0; i <= 3; i++ {
		ty := y + h*float64(i)/3
		p.Line(lv, hy, x+w, ty)
		p.Line(rv, hy, x, ty)
	}
	for i := 0; i <= 4; i++ {
		p.Line(x+w*float64(i)/4, y, x+w/2, bv)
	}
}

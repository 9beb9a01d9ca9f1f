package catalog

import "grid-studio/internal/grid/geometry"

// ============================================================
// Modular / Columns / Rows
// ============================================================

var modular = []entry{
	{"modular-2x2", "2×2 Modular", modules(2, 2)},
	{"modular-3x3", "3×3 Modular", modules(3, 3)},
	{"modular-4x4", "4×4 Modular", modules(4, 4)},
	{"modular-4x6", "4×6 Modular", modules(4, 6)},
	{"modular-5x5", "5×5 Modular", modules(5, 5)},
	{"modular-6x6", "6×6 Modular", modules(6, 6)},
}

var columns = []entry{
	{"columns-2", "2 Columns", cols(2)},
	{"columns-3", "3 Columns", cols(3)},
	{"columns-4", "4 Columns", cols(4)},
	{"columns-5", "5 Columns", cols(5)},
	{"columns-6", "6 Columns", cols(6)},
	{"columns-8", "8 Columns", cols(8)},
	{"columns-12", "12 Columns", cols(12)},
}

var rows = []entry{
	{"rows-2", "2 Rows", rowsOf(2)},
	{"rows-3", "3 Rows", rowsOf(3)},
	{"rows-4", "4 Rows", rowsOf(4)},
	{"rows-6", "6 Rows", rowsOf(6)},
	{"rows-8", "8 Rows", rowsOf(8)},
	{"rows-12", "12 Rows", rowsOf(12)},
}

// modules: ячейки cols×rows, разделённые gutter.
func modules(nc, nr int) Rule {
	return func(f geometry.Frame, p *geometry.Plan) {
		g := f.Gutter
		cw := (f.W - g*float64(nc-1)) / float64(nc)
		rh := (f.H - g*float64(nr-1)) / float64(nr)
		for col := 0; col < nc; col++ {
			for row := 0; row < nr; row++ {
				p.Rect(f.X+float64(col)*(cw+g), f.Y+float64(row)*(rh+g), cw, rh)
			}
		}
	}
}

// cols рисует обе границы каждой колонны.
func cols(n int) Rule {
	return func(f geometry.Frame, p *geometry.Plan) {
		g := f.Gutter
		cw := (f.W - g*float64(n-1)) / float64(n)
		for i := 0; i < n; i++ {
			colX := f.X + float64(i)*(cw+g)
			p.Line(colX, f.Y, colX, f.Y+f.H)
			p.Line(colX+cw, f.Y, colX+cw, f.Y+f.H)
		}
	}
}

func rowsOf(n int) Rule {
	return func(f geometry.Frame, p *geometry.Plan) {
		g := f.Gutter
		rh := (f.H - g*float64(n-1)) / float64(n)
		for i := 0; i < n; i++ {
			ry := f.Y + float64(i)*(rh+g)
			p.Line(f.X, ry, f.X+f.W, ry)
			p.Line(f.X, ry+rh, f.X+f.W, ry+rh)
		}
	}
}

// ============================================================
// Compound
// ============================================================

var compound = []entry{
	{"compound-3-4", "3+4", compoundOf(3, 4)},
	{"compound-3-5", "3+5", compoundOf(3, 5)},
	{"compound-4-5", "4+5", compoundOf(4, 5)},
	{"compound-4-6", "4+6", compoundOf(4, 6)},
	{"compound-5-6", "5+6", compoundOf(5, 6)},
	{"program", "Program", program},
	{"cross-channel", "Cross Channel", crossChannel},
}

// compoundOf накладывает два независимых деления n1 и n2 по обеим осям.
func compoundOf(n1, n2 int) Rule {
	return func(f geometry.Frame, p *geometry.Plan) {
		x, y, w, h := f.X, f.Y, f.W, f.H
		for _, n := range []int{n1, n2} {
			for i := 1; i < n; i++ {
				px := x + w*float64(i)/float64(n)
				p.Line(px, y, px, y+h)
			}
		}
		for _, n := range []int{n1, n2} {
			for i := 1; i < n; i++ {
				py := y + h*float64(i)/float64(n)
				p.Line(x, py, x+w, py)
			}
		}
		border(f, p)
	}
}

func program(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h := f.X, f.Y, f.W, f.H
	for d := 2; d <= 6; d++ {
		for i := 1; i < d; i++ {
			px := x + w*float64(i)/float64(d)
			py := y + h*float64(i)/float64(d)
			p.Line(px, y, px, y+h)
			p.Line(x, py, x+w, py)
		}
	}
	border(f, p)
}

func crossChannel(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h := f.X, f.Y, f.W, f.H
	ng1 := w / phi
	ng2 := ng1 / phi
	p.Line(x+ng1, y, x+ng1, y+h)
	p.Line(x+w-ng1, y, x+w-ng1, y+h)
	p.Line(x+ng2, y, x+ng2, y+h)
	p.Line(x+w-ng2, y, x+w-ng2, y+h)

	ngh1 := h / phi
	ngh2 := ngh1 / phi
	p.Line(x, y+ngh1, x+w, y+ngh1)
	p.Line(x, y+h-ngh1, x+w, y+h-ngh1)
	p.Line(x, y+ngh2, x+w, y+ngh2)
	p.Line(x, y+h-ngh2, x+w, y+h-ngh2)
}

// border: замкнутый контур рабочей области.
func border(f geometry.Frame, p *geometry.Plan) {
	p.Polygon(
		geometry.Point{X: f.X, Y: f.Y},
		geometry.Point{X: f.X + f.W, Y: f.Y},
		geometry.Point{X: f.X + f.W, Y: f.Y + f.H},
		geometry.Point{X: f.X, Y: f.Y + f.H},
	)
}

// ============================================================
// Standard / Baseline
// ============================================================

var standard = []entry{
	{"standard-4", "Standard (4px)", squareGrid(4)},
	{"standard-8", "Standard (8px)", squareGrid(8)},
	{"standard-12", "Standard (12px)", squareGrid(12)},
	{"standard-24", "Standard (24px)", squareGrid(24)},
	{"standard-48", "Standard (48px)", squareGrid(48)},
}

var baseline = []entry{
	{"baseline-4", "Baseline (4px)", baselineGrid(4)},
	{"baseline-8", "Baseline (8px)", baselineGrid(8)},
	{"baseline-12", "Baseline (12px)", baselineGrid(12)},
	{"baseline-24", "Baseline (24px)", baselineGrid(24)},
	{"baseline-48", "Baseline (48px)", baselineGrid(48)},
}

func baselineGrid(px float64) Rule {
	return func(f geometry.Frame, p *geometry.Plan) {
		sp := px * f.Scale
		if !(sp > 0) || f.Empty() {
			return
		}
		for py := f.Y; py <= f.Y+f.H; py += sp {
			p.Line(f.X, py, f.X+f.W, py)
		}
	}
}

func squareGrid(px float64) Rule {
	return func(f geometry.Frame, p *geometry.Plan) {
		sp := px * f.Scale
		if !(sp > 0) || f.Empty() {
			return
		}
		for py := f.Y; py <= f.Y+f.H; py += sp {
			p.Line(f.X, py, f.X+f.W, py)
		}
		for gx := f.X; gx <= f.X+f.W; gx += sp {
			p.Line(gx, f.Y, gx, f.Y+f.H)
		}
	}
}

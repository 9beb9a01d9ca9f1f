package catalog

import "grid-studio/internal/grid/geometry"

// ============================================================
// Rhythm
// ============================================================

var rhythm = []entry{
	{"fifths", "Fifths", hlines(0, 0.2, 0.4, 0.6, 0.8, 1)},
	{"sevenths", "Sevenths", sevenths},
	{"field-grid", "Field", fieldGrid},
	{"musical", "Musical", hlines(0, 0.125, 0.25, 0.333, 0.5, 0.667, 0.75, 0.875, 1)},
	{"progressive", "Progressive", hlines(0, 0.08, 0.18, 0.3, 0.45, 0.62, 0.8, 1)},
	{"fibonacci-rhythm", "Fibonacci Rhythm", fibonacciRhythm},
	{"phi-sections", "Phi Sections", hlines(0, 1-1/phi, 1/phi, 1-1/phi/phi, 1/phi/phi, 1)},
}

// hlines: горизонтали на заданных долях высоты.
func hlines(fractions ...float64) Rule {
	return func(f geometry.Frame, p *geometry.Plan) {
		for _, v := range fractions {
			p.Line(f.X, f.Y+f.H*v, f.X+f.W, f.Y+f.H*v)
		}
	}
}

func sevenths(f geometry.Frame, p *geometry.Plan) {
	for i := 0; i <= 7; i++ {
		py := f.Y + f.H*float64(i)/7
		p.Line(f.X, py, f.X+f.W, py)
	}
}

func fieldGrid(f geometry.Frame, p *geometry.Plan) {
	const nc, nr = 4, 6
	cw := f.W / nc
	rh := f.H / nr
	for i := 0; i <= nc; i++ {
		px := f.X + float64(i)*cw
		p.Line(px, f.Y, px, f.Y+f.H)
	}
	for i := 0; i <= nr; i++ {
		py := f.Y + float64(i)*rh
		p.Line(f.X, py, f.X+f.W, py)
	}
}

// fibonacciRhythm: накопленные суммы ряда 0,1,1,2,...,21,
// нормированные на 34; линия ставится до прибавления текущего члена.
func fibonacciRhythm(f geometry.Frame, p *geometry.Plan) {
	seq := []float64{0, 1, 1, 2, 3, 5, 8, 13, 21}
	acc := 0.0
	for i, v := range seq {
		if i > 0 {
			py := f.Y + f.H*(acc/34)
			p.Line(f.X, py, f.X+f.W, py)
		}
		acc += v
	}
}

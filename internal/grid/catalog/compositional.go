package catalog

import "grid-studio/internal/grid/geometry"

// phi: золотое сечение в том виде, в каком оно используется в построениях.
const phi = 1.618

// ============================================================
// Compositional
// ============================================================

var compositional = []entry{
	{"center-lines", "Center Lines", centerLines},
	{"rule-of-thirds", "Rule of Thirds", ruleOfThirds},
	{"fibonacci", "Fibonacci", goldenSpiral},
	{"dynamic-symmetry", "Dynamic Symmetry", dynamicSymmetry},
	{"harmonic-armature", "Harmonic Armature", harmonicArmature},
}

func centerLines(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h := f.X, f.Y, f.W, f.H
	p.Line(x+w/2, y, x+w/2, y+h)
	p.Line(x, y+h/2, x+w, y+h/2)
}

func ruleOfThirds(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h := f.X, f.Y, f.W, f.H
	p.Line(x+w/3, y, x+w/3, y+h)
	p.Line(x+2*w/3, y, x+2*w/3, y+h)
	p.Line(x, y+h/3, x+w, y+h/3)
	p.Line(x, y+2*h/3, x+w, y+2*h/3)
}

// goldenSpiral отрезает от оставшегося прямоугольника долю 1/phi,
// обходя стороны справа, снизу, слева и сверху, восемь шагов.
func goldenSpiral(f geometry.Frame, p *geometry.Plan) {
	sx, sy, sw, sh := f.X, f.Y, f.W, f.H
	for i := 0; i < 8; i++ {
		switch i % 4 {
		case 0:
			nw := sw / phi
			p.Line(sx+nw, sy, sx+nw, sy+sh)
			sx += nw
			sw -= nw
		case 1:
			nh := sh / phi
			p.Line(sx, sy+sh-nh, sx+sw, sy+sh-nh)
			sh -= nh
		case 2:
			nw := sw / phi
			p.Line(sx+sw-nw, sy, sx+sw-nw, sy+sh)
			sw -= nw
		case 3:
			nh := sh / phi
			p.Line(sx, sy+nh, sx+sw, sy+nh)
			sy += nh
			sh -= nh
		}
	}
}

func dynamicSymmetry(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h := f.X, f.Y, f.W, f.H
	p.Line(x, y, x+w, y+h)
	p.Line(x+w, y, x, y+h)
	p.Line(x, y, x+w, y+h*0.618)
	p.Line(x+w, y, x, y+h*0.618)
	p.Line(x, y+h, x+w, y+h*0.382)
	p.Line(x+w, y+h, x, y+h*0.382)
}

func harmonicArmature(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h := f.X, f.Y, f.W, f.H
	p.Line(x, y, x+w, y+h)
	p.Line(x+w, y, x, y+h)
	p.Line(x+w/2, y, x, y+h)
	p.Line(x+w/2, y, x+w, y+h)
	p.Line(x, y+h/2, x+w, y)
	p.Line(x, y+h/2, x+w, y+h)
	p.Line(x+w, y+h/2, x, y)
	p.Line(x+w, y+h/2, x, y+h)
}

package geometry

import "math"

// ============================================================
// Plan
// ============================================================

// Plan собирает примитивы одного или нескольких паттернов.
// Вырожденные фигуры отбрасываются здесь, чтобы правила построения
// не проверяли знаменатели и радиусы каждый сам.
type Plan struct {
	shapes []Shape
}

func NewPlan() *Plan {
	return &Plan{}
}

func (p *Plan) Shapes() []Shape {
	return p.shapes
}

func (p *Plan) Len() int {
	return len(p.shapes)
}

// Line добавляет отрезок (x1,y1)-(x2,y2).
func (p *Plan) Line(x1, y1, x2, y2 float64) {
	if !finite(x1, y1, x2, y2) {
		return
	}
	p.shapes = append(p.shapes, Line{X1: x1, Y1: y1, X2: x2, Y2: y2})
}

// Rect добавляет прямоугольник; отрицательный размер нормализуется
// так же, как это делает strokeRect.
func (p *Plan) Rect(x, y, w, h float64) {
	if !finite(x, y, w, h) {
		return
	}
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	p.shapes = append(p.shapes, Rect{X: x, Y: y, W: w, H: h})
}

func (p *Plan) Circle(cx, cy, r float64) {
	if !finite(cx, cy, r) || r <= 0 {
		return
	}
	p.shapes = append(p.shapes, Circle{CX: cx, CY: cy, R: r})
}

func (p *Plan) Arc(cx, cy, r, start, end float64, ccw bool) {
	if !finite(cx, cy, r, start, end) || r <= 0 {
		return
	}
	p.shapes = append(p.shapes, Arc{CX: cx, CY: cy, R: r, Start: start, End: end, CCW: ccw})
}

func (p *Plan) Polygon(points ...Point) {
	if len(points) < 2 {
		return
	}
	for _, pt := range points {
		if !finite(pt.X, pt.Y) {
			return
		}
	}
	p.shapes = append(p.shapes, Polygon{Points: append([]Point(nil), points...)})
}

// Clip собирает отрезки, которые должны быть обрезаны по прямоугольнику.
// Фигуры, отличные от отрезков, внутри build игнорируются.
func (p *Plan) Clip(x, y, w, h float64, build func(sub *Plan)) {
	sub := NewPlan()
	sub.Rect(x, y, w, h)
	if sub.Len() == 0 {
		return
	}
	clip := sub.shapes[0].(Rect)
	sub.shapes = sub.shapes[:0]

	build(sub)

	lines := make([]Line, 0, len(sub.shapes))
	for _, s := range sub.shapes {
		if l, ok := s.(Line); ok {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return
	}
	p.shapes = append(p.shapes, ClippedLines{Clip: clip, Lines: lines})
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

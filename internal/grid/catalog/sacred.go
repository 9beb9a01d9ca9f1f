package catalog

import (
	"math"

	"grid-studio/internal/grid/geometry"
)

// ============================================================
// Sacred Geometry
// ============================================================

var sacred = []entry{
	{"circle", "Circle", circle},
	{"vesica-piscis", "Vesica Piscis", vesica},
	{"trinity", "Trinity", ring(3, 0.35, 0.7, -math.Pi/2)},
	{"tetrad", "Tetrad", ring(4, 0.4, 0.65, 0)},
	{"quintet", "Quintet", ring(5, 0.45, 0.58, -math.Pi/2)},
	{"seed-of-life", "Seed of Life", seedOfLife},
	{"flower-of-life", "Flower of Life", flowerOfLife},
	{"sri-yantra", "Sri Yantra", sriYantra},
	{"metatrons-cube", "Metatron's Cube", metatron},
}

func circle(f geometry.Frame, p *geometry.Plan) {
	p.Circle(f.CX(), f.CY(), f.Radius())
}

func vesica(f geometry.Frame, p *geometry.Plan) {
	vr := f.Radius() * 0.75
	p.Circle(f.CX()-vr*0.4, f.CY(), vr)
	p.Circle(f.CX()+vr*0.4, f.CY(), vr)
}

// ring: n окружностей радиуса size*r, центры которых лежат на
// окружности dist*r начиная с угла phase.
func ring(n int, dist, size, phase float64) Rule {
	return func(f geometry.Frame, p *geometry.Plan) {
		r := f.Radius()
		for i := 0; i < n; i++ {
			a := float64(i)*2*math.Pi/float64(n) + phase
			p.Circle(f.CX()+r*dist*math.Cos(a), f.CY()+r*dist*math.Sin(a), r*size)
		}
	}
}

func seedOfLife(f geometry.Frame, p *geometry.Plan) {
	cx, cy := f.CX(), f.CY()
	sr := f.Radius() * 0.5
	p.Circle(cx, cy, sr)
	for i := 0; i < 6; i++ {
		a := float64(i) * math.Pi / 3
		p.Circle(cx+sr*math.Cos(a), cy+sr*math.Sin(a), sr)
	}
}

func flowerOfLife(f geometry.Frame, p *geometry.Plan) {
	cx, cy := f.CX(), f.CY()
	fr := f.Radius() * 0.28
	p.Circle(cx, cy, fr)
	for rg := 0; rg < 2; rg++ {
		dist := fr * float64(rg+1)
		for i := 0; i < 6; i++ {
			a := float64(i)*math.Pi/3 + float64(rg)*math.Pi/6
			p.Circle(cx+dist*math.Cos(a), cy+dist*math.Sin(a), fr)
		}
	}
	for i := 0; i < 6; i++ {
		a := float64(i) * math.Pi / 3
		p.Circle(cx+fr*2*math.Cos(a), cy+fr*2*math.Sin(a), fr)
	}
}

// Вершины треугольников янтры в долях от 1.15r.
var (
	yantraUp = [][3][2]float64{
		{{0, -0.92}, {-0.82, 0.58}, {0.82, 0.58}},
		{{0, -0.58}, {-0.52, 0.32}, {0.52, 0.32}},
		{{0, -0.32}, {-0.32, 0.16}, {0.32, 0.16}},
		{{0, -0.12}, {-0.14, 0.06}, {0.14, 0.06}},
	}
	yantraDown = [][3][2]float64{
		{{0, 0.92}, {-0.72, -0.48}, {0.72, -0.48}},
		{{0, 0.62}, {-0.54, -0.32}, {0.54, -0.32}},
		{{0, 0.42}, {-0.38, -0.2}, {0.38, -0.2}},
		{{0, 0.26}, {-0.24, -0.1}, {0.24, -0.1}},
		{{0, 0.12}, {-0.1, -0.04}, {0.1, -0.04}},
	}
)

func sriYantra(f geometry.Frame, p *geometry.Plan) {
	cx, cy := f.CX(), f.CY()
	s := f.Radius() * 1.15
	tri := func(t [3][2]float64) {
		p.Polygon(
			geometry.Point{X: cx + t[0][0]*s, Y: cy + t[0][1]*s},
			geometry.Point{X: cx + t[1][0]*s, Y: cy + t[1][1]*s},
			geometry.Point{X: cx + t[2][0]*s, Y: cy + t[2][1]*s},
		)
	}
	for _, t := range yantraUp {
		tri(t)
	}
	for _, t := range yantraDown {
		tri(t)
	}
	p.Line(cx-s*0.82, cy+s*0.58, cx+s*0.82, cy+s*0.58)
	p.Line(cx-s*0.72, cy-s*0.48, cx+s*0.72, cy-s*0.48)
}

// metatron соединяет попарно 13 точек: шесть внешних вершин, центр и
// шесть внутренних, затем обводит каждую малой окружностью.
func metatron(f geometry.Frame, p *geometry.Plan) {
	cx, cy := f.CX(), f.CY()
	r := f.Radius()
	hex := func(rad float64) []geometry.Point {
		pts := make([]geometry.Point, 6)
		for i := range pts {
			a := float64(i)*math.Pi/3 - math.Pi/2
			pts[i] = geometry.Point{X: cx + rad*math.Cos(a), Y: cy + rad*math.Sin(a)}
		}
		return pts
	}
	outer, inner := hex(r), hex(r*0.5)

	pts := make([]geometry.Point, 0, 13)
	pts = append(pts, outer...)
	pts = append(pts, geometry.Point{X: cx, Y: cy})
	pts = append(pts, inner...)
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			p.Line(pts[i].X, pts[i].Y, pts[j].X, pts[j].Y)
		}
	}

	for _, pt := range append(outer, inner...) {
		p.Circle(pt.X, pt.Y, r*0.25)
	}
	p.Circle(cx, cy, r*0.25)
}

package geometry

import "math"

// ============================================================
// Geometry primitives
// ============================================================

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Shape: примитив, который умеют рисовать оба бэкенда.
type Shape interface {
	Kind() string
}

type Line struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type Circle struct {
	CX float64 `json:"cx"`
	CY float64 `json:"cy"`
	R  float64 `json:"r"`
}

// Arc повторяет семантику canvas arc(): углы в радианах, по часовой
// стрелке на экране, если CCW == false.
type Arc struct {
	CX    float64 `json:"cx"`
	CY    float64 `json:"cy"`
	R     float64 `json:"r"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	CCW   bool    `json:"ccw"`
}

// Polygon: замкнутая ломаная.
type Polygon struct {
	Points []Point `json:"points"`
}

// ClippedLines: отрезки, видимые только внутри Clip.
type ClippedLines struct {
	Clip  Rect   `json:"clip"`
	Lines []Line `json:"lines"`
}

func (Line) Kind() string         { return "line" }
func (Rect) Kind() string         { return "rect" }
func (Circle) Kind() string       { return "circle" }
func (Arc) Kind() string          { return "arc" }
func (Polygon) Kind() string      { return "polygon" }
func (ClippedLines) Kind() string { return "clip" }

// ============================================================
// Arc helpers
// ============================================================

// Sweep возвращает знаковый угол дуги по правилам canvas:
// положительный по часовой, не более полного круга.
func (a Arc) Sweep() float64 {
	const full = 2 * math.Pi
	d := a.End - a.Start
	if a.CCW {
		d = -d
	}
	if d >= full {
		d = full
	} else {
		d = math.Mod(d, full)
		if d < 0 {
			d += full
		}
	}
	if a.CCW {
		return -d
	}
	return d
}

func (a Arc) PointAt(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{X: a.CX + a.R*cos, Y: a.CY + a.R*sin}
}

func (a Arc) StartPoint() Point { return a.PointAt(a.Start) }

func (a Arc) EndPoint() Point { return a.PointAt(a.Start + a.Sweep()) }

func (a Arc) MidPoint() Point { return a.PointAt(a.Start + a.Sweep()/2) }

// Cubic: сегмент кубической кривой Безье.
type Cubic struct {
	C1, C2, To Point
}

// Cubics аппроксимирует дугу сегментами не больше четверти окружности.
// Средняя точка каждого сегмента лежит точно на окружности.
func (a Arc) Cubics() []Cubic {
	sweep := a.Sweep()
	if sweep == 0 {
		return nil
	}
	n := int(math.Ceil(math.Abs(sweep)/(math.Pi/2) - 1e-9))
	if n < 1 {
		n = 1
	}
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	out := make([]Cubic, 0, n)
	a0 := a.Start
	for i := 0; i < n; i++ {
		a1 := a0 + step
		s0, c0 := math.Sincos(a0)
		s1, c1 := math.Sincos(a1)
		p0 := Point{X: a.CX + a.R*c0, Y: a.CY + a.R*s0}
		p3 := Point{X: a.CX + a.R*c1, Y: a.CY + a.R*s1}
		out = append(out, Cubic{
			C1: Point{X: p0.X - k*a.R*s0, Y: p0.Y + k*a.R*c0},
			C2: Point{X: p3.X + k*a.R*s1, Y: p3.Y - k*a.R*c1},
			To: p3,
		})
		a0 = a1
	}
	return out
}

// Eval вычисляет точку кривой при параметре t.
func (c Cubic) Eval(from Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Point{
		X: a*from.X + b*c.C1.X + d*c.C2.X + e*c.To.X,
		Y: a*from.Y + b*c.C1.Y + d*c.C2.Y + e*c.To.Y,
	}
}

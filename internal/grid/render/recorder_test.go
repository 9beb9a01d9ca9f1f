package render

import (
	"math"

	"grid-studio/internal/grid/geometry"

	"github.com/gogpu/gg"
)

// prim: примитив в сравнимом виде. Для дуги хранятся начало, конец и
// середина: этого достаточно, чтобы отличить направление и радиус.
type prim struct {
	Kind string
	V    []float64
}

type segment struct {
	cubic bool
	c     geometry.Cubic
	to    geometry.Point
}

type subpath struct {
	start  geometry.Point
	segs   []segment
	closed bool
}

// recorder: поддельная поверхность, записывающая команды пути.
type recorder struct {
	calls   []string
	prims   []prim
	device  []prim
	strokes int
	err     error

	bg          gg.RGBA
	cleared     bool
	rgba        [4]float64
	width       float64
	dash        []float64
	matrix      [6]float64
	stack       [][6]float64
	strokeState [][6]float64
	cur         *subpath
}

func newRecorder() *recorder {
	return &recorder{matrix: identity()}
}

func identity() [6]float64 { return [6]float64{1, 0, 0, 1, 0, 0} }

func mul(m, t [6]float64) [6]float64 {
	return [6]float64{
		m[0]*t[0] + m[2]*t[1],
		m[1]*t[0] + m[3]*t[1],
		m[0]*t[2] + m[2]*t[3],
		m[1]*t[2] + m[3]*t[3],
		m[0]*t[4] + m[2]*t[5] + m[4],
		m[1]*t[4] + m[3]*t[5] + m[5],
	}
}

func apply(m [6]float64, p geometry.Point) geometry.Point {
	return geometry.Point{X: m[0]*p.X + m[2]*p.Y + m[4], Y: m[1]*p.X + m[3]*p.Y + m[5]}
}

func (r *recorder) Clear() {
	r.calls = append(r.calls, "clear")
	r.cleared = true
}

func (r *recorder) ClearWithColor(col gg.RGBA) {
	r.calls = append(r.calls, "clearWithColor")
	r.bg = col
}

func (r *recorder) SetRGBA(red, g, b, a float64) {
	r.calls = append(r.calls, "setRGBA")
	r.rgba = [4]float64{red, g, b, a}
}

func (r *recorder) SetLineWidth(width float64) {
	r.calls = append(r.calls, "setLineWidth")
	r.width = width
}

func (r *recorder) SetDash(lengths ...float64) {
	r.calls = append(r.calls, "setDash")
	r.dash = append([]float64(nil), lengths...)
}

func (r *recorder) ClearDash() {
	r.calls = append(r.calls, "clearDash")
	r.dash = nil
}

func (r *recorder) Push() {
	r.calls = append(r.calls, "push")
	r.stack = append(r.stack, r.matrix)
}

func (r *recorder) Pop() {
	r.calls = append(r.calls, "pop")
	r.matrix = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *recorder) Translate(x, y float64) {
	r.matrix = mul(r.matrix, [6]float64{1, 0, 0, 1, x, y})
}

func (r *recorder) Rotate(angle float64) {
	sin, cos := math.Sincos(angle)
	r.matrix = mul(r.matrix, [6]float64{cos, sin, -sin, cos, 0, 0})
}

func (r *recorder) Scale(x, y float64) {
	r.matrix = mul(r.matrix, [6]float64{x, 0, 0, y, 0, 0})
}

func (r *recorder) MoveTo(x, y float64) {
	r.flush()
	r.cur = &subpath{start: geometry.Point{X: x, Y: y}}
}

func (r *recorder) LineTo(x, y float64) {
	r.cur.segs = append(r.cur.segs, segment{to: geometry.Point{X: x, Y: y}})
}

func (r *recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c := geometry.Cubic{
		C1: geometry.Point{X: c1x, Y: c1y},
		C2: geometry.Point{X: c2x, Y: c2y},
		To: geometry.Point{X: x, Y: y},
	}
	r.cur.segs = append(r.cur.segs, segment{cubic: true, c: c, to: c.To})
}

func (r *recorder) ClosePath() {
	r.cur.closed = true
}

func (r *recorder) DrawRectangle(x, y, w, h float64) {
	r.flush()
	r.prims = append(r.prims, prim{"rect", []float64{x, y, w, h}})
}

func (r *recorder) DrawCircle(x, y, rad float64) {
	r.flush()
	r.prims = append(r.prims, prim{"circle", []float64{x, y, rad}})
}

func (r *recorder) Stroke() error {
	r.flush()
	r.calls = append(r.calls, "stroke")
	r.strokes++
	r.strokeState = append(r.strokeState, r.matrix)
	return r.err
}

func (r *recorder) flush() {
	sp := r.cur
	r.cur = nil
	if sp == nil || len(sp.segs) == 0 {
		return
	}

	if sp.closed {
		v := []float64{sp.start.X, sp.start.Y}
		for _, s := range sp.segs {
			v = append(v, s.to.X, s.to.Y)
		}
		r.prims = append(r.prims, prim{"polygon", v})
		return
	}

	if sp.segs[0].cubic {
		end := sp.segs[len(sp.segs)-1].to
		mid := cubicMid(sp.start, sp.segs)
		r.prims = append(r.prims, prim{"arc", []float64{sp.start.X, sp.start.Y, end.X, end.Y, mid.X, mid.Y}})
		return
	}

	to := sp.segs[0].to
	r.prims = append(r.prims, prim{"line", []float64{sp.start.X, sp.start.Y, to.X, to.Y}})
	a, b := apply(r.matrix, sp.start), apply(r.matrix, to)
	r.device = append(r.device, prim{"line", []float64{a.X, a.Y, b.X, b.Y}})
}

// cubicMid: точка в середине цепочки равных сегментов.
func cubicMid(start geometry.Point, segs []segment) geometry.Point {
	n := len(segs)
	if n%2 == 0 {
		return segs[n/2-1].to
	}
	from := start
	if n > 1 {
		from = segs[n/2-1].to
	}
	return segs[n/2].c.Eval(from, 0.5)
}

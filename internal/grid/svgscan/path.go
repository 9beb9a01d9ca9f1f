package svgscan

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"grid-studio/internal/grid/geometry"
)

// ============================================================
// Path Parser
// ============================================================

var commandRe = regexp.MustCompile(`([MmAa])([^MmAa]*)`)

// ParseArc восстанавливает дугу из пути вида "M x,y A r,r 0 large,sweep x,y ...".
// Последовательные команды A складываются в одну дугу.
func ParseArc(d string) (geometry.Arc, error) {
	d = strings.TrimSpace(d)
	if d == "" {
		return geometry.Arc{}, fmt.Errorf("empty path")
	}

	var (
		cur      geometry.Point
		arc      geometry.Arc
		total    float64
		segments int
		moved    bool
	)

	for _, match := range commandRe.FindAllStringSubmatch(d, -1) {
		cmd := match[1]
		args := parseCoords(match[2])

		switch cmd {
		case "M", "m":
			if len(args) < 2 {
				return geometry.Arc{}, fmt.Errorf("moveto needs 2 coordinates, got %d", len(args))
			}
			if cmd == "m" {
				cur = geometry.Point{X: cur.X + args[0], Y: cur.Y + args[1]}
			} else {
				cur = geometry.Point{X: args[0], Y: args[1]}
			}
			moved = true

		case "A", "a":
			if !moved {
				return geometry.Arc{}, fmt.Errorf("arc without moveto")
			}
			if len(args) != 7 {
				return geometry.Arc{}, fmt.Errorf("arc needs 7 parameters, got %d", len(args))
			}
			to := geometry.Point{X: args[5], Y: args[6]}
			if cmd == "a" {
				to = geometry.Point{X: cur.X + args[5], Y: cur.Y + args[6]}
			}
			seg := toCenter(cur, to, args[0], args[3] != 0, args[4] != 0)
			if segments == 0 {
				arc = seg
			}
			total += seg.End - seg.Start
			segments++
			cur = to
		}
	}

	if segments == 0 {
		return geometry.Arc{}, fmt.Errorf("path has no arc commands")
	}
	arc.End = arc.Start + total
	arc.CCW = total < 0
	return arc, nil
}

// toCenter: перевод из параметризации концами в центральную
// (SVG 1.1, приложение F.6.5) для окружности без поворота осей.
// Возвращаемые Start и End задают знаковый угол: End - Start.
func toCenter(from, to geometry.Point, r float64, large, sweep bool) geometry.Arc {
	r = math.Abs(r)
	hx := (from.X - to.X) / 2
	hy := (from.Y - to.Y) / 2
	d2 := hx*hx + hy*hy
	if d2 > r*r {
		r = math.Sqrt(d2)
	}

	coef := 0.0
	if d2 > 0 {
		coef = math.Sqrt(math.Max(0, (r*r-d2)/d2))
	}
	if large == sweep {
		coef = -coef
	}
	cxp := coef * hy
	cyp := -coef * hx

	cx := cxp + (from.X+to.X)/2
	cy := cyp + (from.Y+to.Y)/2

	ux, uy := (hx-cxp)/r, (hy-cyp)/r
	vx, vy := (-hx-cxp)/r, (-hy-cyp)/r
	start := math.Atan2(uy, ux)
	delta := math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	return geometry.Arc{CX: cx, CY: cy, R: r, Start: start, End: start + delta}
}

func parseCoords(s string) []float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	// Разделитель: запятая или пробел
	s = strings.ReplaceAll(s, ",", " ")
	parts := strings.Fields(s)

	var coords []float64
	for _, part := range parts {
		val, err := strconv.ParseFloat(part, 64)
		if err == nil {
			coords = append(coords, val)
		}
	}

	return coords
}

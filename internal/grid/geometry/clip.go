package geometry

// ============================================================
// Line clipping
// ============================================================

// ClipLine обрезает отрезок по прямоугольнику (Liang–Barsky).
// ok == false, если от отрезка ничего не осталось.
func ClipLine(l Line, r Rect) (Line, bool) {
	dx := l.X2 - l.X1
	dy := l.Y2 - l.Y1
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, l.X1 - r.X},
		{dx, r.X + r.W - l.X1},
		{-dy, l.Y1 - r.Y},
		{dy, r.Y + r.H - l.Y1},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return Line{}, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return Line{}, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return Line{}, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	out := l
	if t0 > 0 {
		out.X1 = l.X1 + t0*dx
		out.Y1 = l.Y1 + t0*dy
	}
	if t1 < 1 {
		out.X2 = l.X1 + t1*dx
		out.Y2 = l.Y1 + t1*dy
	}
	return out, true
}

// Visible возвращает видимые части отрезков группы.
func (c ClippedLines) Visible() []Line {
	out := make([]Line, 0, len(c.Lines))
	for _, l := range c.Lines {
		if v, ok := ClipLine(l, c.Clip); ok {
			out = append(out, v)
		}
	}
	return out
}

package render

import (
	"fmt"
	"html"
	"math"
	"strings"

	"grid-studio/internal/grid/geometry"
	"grid-studio/internal/grid/models"
)

// ============================================================
// SVG backend
// ============================================================

// SVG собирает самостоятельный SVG-документ по тем же примитивам,
// что и растровый бэкенд.
func SVG(state models.CanvasState, layers models.Layers, transparent bool) string {
	return Compose(state, layers).SVG(transparent)
}

func (sc Scene) SVG(transparent bool) string {
	w, h := formatFloat(float64(sc.Width)), formatFloat(float64(sc.Height))

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`, w, h, w, h))
	builder.WriteString("\n")

	if !transparent {
		builder.WriteString(fmt.Sprintf(`  <rect width="%s" height="%s" fill="%s"/>`, w, h, attr(sc.Background)))
		builder.WriteString("\n")
	}

	transform := sc.Transform.Attr()
	for _, layer := range sc.Layers {
		writeLayer(&builder, layer, transform)
	}

	builder.WriteString(`</svg>`)
	return builder.String()
}

func writeLayer(b *strings.Builder, layer LayerPlan, transform string) {
	st := layer.Style
	b.WriteString(fmt.Sprintf(`  <g stroke="%s" stroke-opacity="%s" stroke-width="%s" fill="none"`,
		attr(st.Color), formatFloat(st.Alpha), formatFloat(st.Width)))
	if len(st.Dash) > 0 {
		parts := make([]string, len(st.Dash))
		for i, d := range st.Dash {
			parts[i] = formatFloat(d)
		}
		b.WriteString(fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(parts, ",")))
	}
	if transform != "" {
		b.WriteString(fmt.Sprintf(` transform="%s"`, transform))
	}
	b.WriteString(">\n")

	clips := 0
	for _, p := range layer.Patterns {
		for _, shape := range p.Shapes {
			if c, ok := shape.(geometry.ClippedLines); ok {
				id := fmt.Sprintf("clip-%d-%d", layer.Key, clips)
				clips++
				writeClipped(b, c, id)
				continue
			}
			b.WriteString("    ")
			b.WriteString(element(shape))
			b.WriteString("\n")
		}
	}

	b.WriteString("  </g>\n")
}

func writeClipped(b *strings.Builder, c geometry.ClippedLines, id string) {
	b.WriteString(fmt.Sprintf(`    <defs><clipPath id="%s">%s</clipPath></defs>`, id, element(c.Clip)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(`    <g clip-path="url(#%s)">`, id))
	b.WriteString("\n")
	for _, l := range c.Lines {
		b.WriteString("      ")
		b.WriteString(element(l))
		b.WriteString("\n")
	}
	b.WriteString("    </g>\n")
}

// element возвращает разметку одного примитива.
func element(shape geometry.Shape) string {
	switch v := shape.(type) {
	case geometry.Line:
		return fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s"/>`,
			formatFloat(v.X1), formatFloat(v.Y1), formatFloat(v.X2), formatFloat(v.Y2))
	case geometry.Rect:
		return fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s"/>`,
			formatFloat(v.X), formatFloat(v.Y), formatFloat(v.W), formatFloat(v.H))
	case geometry.Circle:
		return fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s"/>`,
			formatFloat(v.CX), formatFloat(v.CY), formatFloat(v.R))
	case geometry.Arc:
		return fmt.Sprintf(`<path d="%s"/>`, arcPath(v))
	case geometry.Polygon:
		pts := make([]string, len(v.Points))
		for i, p := range v.Points {
			pts[i] = formatFloat(p.X) + "," + formatFloat(p.Y)
		}
		return fmt.Sprintf(`<polygon points="%s"/>`, strings.Join(pts, " "))
	}
	return ""
}

// arcPath переводит дугу canvas в команды M/A. Полный оборот
// делится на две половины: одна команда A не может замкнуть круг.
func arcPath(a geometry.Arc) string {
	sweep := a.Sweep()
	start := a.StartPoint()
	r := formatFloat(a.R)
	flag := "0"
	if sweep > 0 {
		flag = "1"
	}

	d := "M" + formatFloat(start.X) + "," + formatFloat(start.Y)
	seg := func(large string, to geometry.Point) string {
		return " A" + r + "," + r + " 0 " + large + "," + flag + " " + formatFloat(to.X) + "," + formatFloat(to.Y)
	}

	if math.Abs(sweep) >= 2*math.Pi {
		mid := a.PointAt(a.Start + sweep/2)
		return d + seg("0", mid) + seg("0", a.EndPoint())
	}
	large := "0"
	if math.Abs(sweep) > math.Pi {
		large = "1"
	}
	return d + seg(large, a.EndPoint())
}

func formatFloat(val float64) string {
	return geometry.FormatFloat(val)
}

func attr(s string) string {
	return html.EscapeString(s)
}

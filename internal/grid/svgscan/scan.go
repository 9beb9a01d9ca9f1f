package svgscan

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"grid-studio/internal/grid/geometry"
)

// ============================================================
// XML Structures
// ============================================================

// node сохраняет порядок дочерних элементов: он совпадает с порядком отрисовки.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []node     `xml:",any"`
}

func (n node) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func (n node) float(name string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(n.attr(name)), 64)
	return v
}

// ============================================================
// Document
// ============================================================

type Document struct {
	Width      float64
	Height     float64
	Background string
	Layers     []Layer
}

// Layer: группа слоя с атрибутами обводки и примитивами в порядке документа.
type Layer struct {
	Stroke    string
	Opacity   float64
	Width     float64
	Dash      []float64
	Transform string
	Shapes    []geometry.Shape
}

// Counts: число примитивов каждого вида; отрезки внутри обрезки
// считаются как line.
func (l Layer) Counts() map[string]int {
	out := make(map[string]int)
	for _, s := range l.Shapes {
		if c, ok := s.(geometry.ClippedLines); ok {
			out["clip"]++
			out["line"] += len(c.Lines)
			continue
		}
		out[s.Kind()]++
	}
	return out
}

// ============================================================
// Parser
// ============================================================

func Parse(r io.Reader) (*Document, error) {
	var root node
	decoder := xml.NewDecoder(r)
	if err := decoder.Decode(&root); err != nil {
		return nil, fmt.Errorf("decode svg: %w", err)
	}
	if root.XMLName.Local != "svg" {
		return nil, fmt.Errorf("root element is %q, not svg", root.XMLName.Local)
	}

	doc := &Document{
		Width:  root.float("width"),
		Height: root.float("height"),
	}
	for _, child := range root.Children {
		switch child.XMLName.Local {
		case "rect":
			doc.Background = child.attr("fill")
		case "g":
			layer, err := parseLayer(child)
			if err != nil {
				return nil, err
			}
			doc.Layers = append(doc.Layers, layer)
		}
	}
	return doc, nil
}

func parseLayer(g node) (Layer, error) {
	layer := Layer{
		Stroke:    g.attr("stroke"),
		Opacity:   g.float("stroke-opacity"),
		Width:     g.float("stroke-width"),
		Dash:      parseCoords(g.attr("stroke-dasharray")),
		Transform: g.attr("transform"),
	}

	clips := make(map[string]geometry.Rect)
	for _, child := range g.Children {
		switch child.XMLName.Local {
		case "defs":
			for _, cp := range child.Children {
				if cp.XMLName.Local != "clipPath" {
					continue
				}
				for _, r := range cp.Children {
					if r.XMLName.Local == "rect" {
						clips[cp.attr("id")] = rectOf(r)
					}
				}
			}
		case "g":
			id := strings.TrimSuffix(strings.TrimPrefix(child.attr("clip-path"), "url(#"), ")")
			clip, ok := clips[id]
			if !ok {
				return Layer{}, fmt.Errorf("group references unknown clip %q", id)
			}
			group := geometry.ClippedLines{Clip: clip}
			for _, l := range child.Children {
				if l.XMLName.Local == "line" {
					group.Lines = append(group.Lines, lineOf(l))
				}
			}
			layer.Shapes = append(layer.Shapes, group)
		default:
			shape, err := shapeOf(child)
			if err != nil {
				return Layer{}, err
			}
			if shape != nil {
				layer.Shapes = append(layer.Shapes, shape)
			}
		}
	}
	return layer, nil
}

func shapeOf(n node) (geometry.Shape, error) {
	switch n.XMLName.Local {
	case "line":
		return lineOf(n), nil
	case "rect":
		return rectOf(n), nil
	case "circle":
		return geometry.Circle{CX: n.float("cx"), CY: n.float("cy"), R: n.float("r")}, nil
	case "polygon":
		coords := parseCoords(n.attr("points"))
		if len(coords)%2 != 0 {
			return nil, fmt.Errorf("odd number of polygon coordinates")
		}
		pts := make([]geometry.Point, 0, len(coords)/2)
		for i := 0; i < len(coords); i += 2 {
			pts = append(pts, geometry.Point{X: coords[i], Y: coords[i+1]})
		}
		return geometry.Polygon{Points: pts}, nil
	case "path":
		return ParseArc(n.attr("d"))
	}
	return nil, nil
}

func lineOf(n node) geometry.Line {
	return geometry.Line{X1: n.float("x1"), Y1: n.float("y1"), X2: n.float("x2"), Y2: n.float("y2")}
}

func rectOf(n node) geometry.Rect {
	return geometry.Rect{X: n.float("x"), Y: n.float("y"), W: n.float("width"), H: n.float("height")}
}

// ============================================================
// Summary
// ============================================================

type LayerSummary struct {
	Stroke    string         `json:"stroke"`
	Opacity   float64        `json:"opacity"`
	Width     float64        `json:"width"`
	Dash      []float64      `json:"dash,omitempty"`
	Transform string         `json:"transform,omitempty"`
	Counts    map[string]int `json:"counts"`
}

type Summary struct {
	Width      float64        `json:"width"`
	Height     float64        `json:"height"`
	Background string         `json:"background,omitempty"`
	Layers     []LayerSummary `json:"layers"`
}

// Summary: сводка документа без координат примитивов.
func (d *Document) Summary() Summary {
	s := Summary{
		Width:      d.Width,
		Height:     d.Height,
		Background: d.Background,
		Layers:     make([]LayerSummary, 0, len(d.Layers)),
	}
	for _, l := range d.Layers {
		s.Layers = append(s.Layers, LayerSummary{
			Stroke:    l.Stroke,
			Opacity:   l.Opacity,
			Width:     l.Width,
			Dash:      l.Dash,
			Transform: l.Transform,
			Counts:    l.Counts(),
		})
	}
	return s
}

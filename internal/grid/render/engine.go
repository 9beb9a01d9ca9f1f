package render

import (
	"encoding/json"

	"grid-studio/internal/grid/catalog"
	"grid-studio/internal/grid/geometry"
	"grid-studio/internal/grid/models"
)

// ============================================================
// Scene
// ============================================================

// Style: параметры обводки слоя, общие для обоих бэкендов.
type Style struct {
	Color string    `json:"color"`
	Alpha float64   `json:"alpha"`
	Width float64   `json:"width"`
	Dash  []float64 `json:"dash,omitempty"`
}

type PatternPlan struct {
	ID     string           `json:"id"`
	Shapes []geometry.Shape `json:"shapes"`
}

// MarshalJSON добавляет к каждой фигуре её вид.
func (p PatternPlan) MarshalJSON() ([]byte, error) {
	type tagged struct {
		Kind  string         `json:"kind"`
		Shape geometry.Shape `json:"shape"`
	}
	shapes := make([]tagged, 0, len(p.Shapes))
	for _, s := range p.Shapes {
		shapes = append(shapes, tagged{Kind: s.Kind(), Shape: s})
	}
	return json.Marshal(struct {
		ID     string   `json:"id"`
		Shapes []tagged `json:"shapes"`
	}{p.ID, shapes})
}

// LayerPlan: геометрия одного видимого слоя в координатах построения.
type LayerPlan struct {
	Key      int           `json:"key"`
	Style    Style         `json:"style"`
	Patterns []PatternPlan `json:"patterns"`
}

// Empty сообщает, что в слое нет ни одной фигуры.
func (l LayerPlan) Empty() bool {
	for _, p := range l.Patterns {
		if len(p.Shapes) > 0 {
			return false
		}
	}
	return true
}

type Scene struct {
	Width      int                `json:"width"`
	Height     int                `json:"height"`
	Background string             `json:"background"`
	Frame      geometry.Frame     `json:"frame"`
	Transform  geometry.Transform `json:"transform"`
	Matrix     [6]float64         `json:"matrix"`
	Layers     []LayerPlan        `json:"layers"`
}

// Compose строит сцену: рабочая область и преобразование считаются один
// раз, затем каждый видимый слой раскладывается на примитивы.
// Неизвестные id пропускаются; вырожденная область не даёт фигур.
func Compose(state models.CanvasState, layers models.Layers) Scene {
	frame := geometry.NewFrame(state)
	tr := geometry.NewTransform(state)
	scene := Scene{
		Width:      state.Width,
		Height:     state.Height,
		Background: state.BgColor,
		Frame:      frame,
		Transform:  tr,
		Matrix:     tr.Matrix(),
	}

	for i, layer := range layers.Ordered() {
		if !layer.Visible() {
			continue
		}
		lp := LayerPlan{
			Key: i + 1,
			Style: Style{
				Color: layer.LineColor,
				Alpha: StrokeAlpha(layer),
				Width: layer.LineWeight,
				Dash:  geometry.Dash(layer.LineStyle, frame.Scale),
			},
		}
		for _, id := range layer.SelectedGrids {
			if _, ok := catalog.Lookup(id); !ok {
				continue
			}
			plan := geometry.NewPlan()
			if !frame.Empty() {
				catalog.Build(id, frame, plan)
			}
			lp.Patterns = append(lp.Patterns, PatternPlan{ID: id, Shapes: plan.Shapes()})
		}
		scene.Layers = append(scene.Layers, lp)
	}
	return scene
}

// StrokeAlpha: итоговая прозрачность линий слоя: lineOpacity × opacity.
func StrokeAlpha(l models.LayerState) float64 {
	return (l.LineOpacity / 100) * (l.Opacity / 100)
}

package models

import "fmt"

// ============================================================
// Canvas & Layers
// ============================================================

type LineStyle string

const (
	LineSolid  LineStyle = "solid"
	LineDashed LineStyle = "dashed"
	LineDotted LineStyle = "dotted"
)

// LineStyles перечисляет стили в порядке, в котором их показывает UI.
var LineStyles = []LineStyle{LineSolid, LineDashed, LineDotted}

type CanvasState struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Margin   float64 `json:"margin"`
	Padding  float64 `json:"padding"`
	Gutter   float64 `json:"gutter"`
	BgColor  string  `json:"bgColor"`
	Rotation float64 `json:"rotation"`
	FlipH    bool    `json:"flipH"`
	FlipV    bool    `json:"flipV"`
	Zoom     float64 `json:"zoom"`
}

type LayerState struct {
	SelectedGrids []string  `json:"selectedGrids"`
	LineWeight    float64   `json:"lineWeight"`
	LineStyle     LineStyle `json:"lineStyle"`
	LineColor     string    `json:"lineColor"`
	LineOpacity   float64   `json:"lineOpacity"`
	Opacity       float64   `json:"opacity"`
}

// Visible сообщает, будет ли слой что-то рисовать.
func (l LayerState) Visible() bool {
	return len(l.SelectedGrids) > 0 && l.Opacity != 0
}

// Layers хранит ровно два слоя; в JSON ключи "1" и "2".
type Layers struct {
	One LayerState `json:"1"`
	Two LayerState `json:"2"`
}

// Ordered возвращает слои в порядке отрисовки.
func (l Layers) Ordered() [2]LayerState {
	return [2]LayerState{l.One, l.Two}
}

// Layer возвращает указатель на слой по ключу 1 или 2.
func (l *Layers) Layer(key int) (*LayerState, error) {
	switch key {
	case 1:
		return &l.One, nil
	case 2:
		return &l.Two, nil
	}
	return nil, fmt.Errorf("unknown layer %d", key)
}

type Locks struct {
	Margin      bool `json:"margin"`
	Padding     bool `json:"padding"`
	Gutter      bool `json:"gutter"`
	LineWeight  bool `json:"lineWeight"`
	LineStyle   bool `json:"lineStyle"`
	LineColor   bool `json:"lineColor"`
	LineOpacity bool `json:"lineOpacity"`
}

// GridConfig: сохраняемая единица.
type GridConfig struct {
	State  CanvasState `json:"state"`
	Layers Layers      `json:"layers"`
	Locks  Locks       `json:"locks"`
}

// ============================================================
// Defaults
// ============================================================

func DefaultState() CanvasState {
	return CanvasState{
		Width:   1440,
		Height:  900,
		Margin:  20,
		Padding: 20,
		Gutter:  20,
		BgColor: "#FFFFFF",
		Zoom:    1,
	}
}

func DefaultLayers() Layers {
	return Layers{
		One: LayerState{
			SelectedGrids: []string{"ui-app-shell"},
			LineWeight:    1,
			LineStyle:     LineSolid,
			LineColor:     "#a855f7",
			LineOpacity:   70,
			Opacity:       100,
		},
		Two: LayerState{
			SelectedGrids: []string{},
			LineWeight:    1,
			LineStyle:     LineSolid,
			LineColor:     "#22c55e",
			LineOpacity:   70,
			Opacity:       100,
		},
	}
}

func DefaultLocks() Locks {
	return Locks{LineWeight: true}
}

func DefaultConfig() GridConfig {
	return GridConfig{
		State:  DefaultState(),
		Layers: DefaultLayers(),
		Locks:  DefaultLocks(),
	}
}

// DefaultName: имя по умолчанию при сохранении в библиотеку.
func (c GridConfig) DefaultName() string {
	return fmt.Sprintf("Grid %dx%d", c.State.Width, c.State.Height)
}

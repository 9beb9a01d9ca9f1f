package render

import (
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"grid-studio/internal/grid/catalog"
	"grid-studio/internal/grid/geometry"
	"grid-studio/internal/grid/models"
	"grid-studio/internal/grid/svgscan"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-6)

func canvas(w, h int) models.CanvasState {
	s := models.DefaultState()
	s.Width, s.Height = w, h
	s.Margin, s.Padding, s.Gutter = 0, 0, 0
	return s
}

func single(ids ...string) models.Layers {
	l := models.DefaultLayers()
	l.One.SelectedGrids = ids
	l.Two.SelectedGrids = nil
	return l
}

func svgPrims(t *testing.T, l svgscan.Layer) []prim {
	t.Helper()
	var out []prim
	for _, s := range l.Shapes {
		switch v := s.(type) {
		case geometry.Line:
			out = append(out, prim{"line", []float64{v.X1, v.Y1, v.X2, v.Y2}})
		case geometry.Rect:
			out = append(out, prim{"rect", []float64{v.X, v.Y, v.W, v.H}})
		case geometry.Circle:
			out = append(out, prim{"circle", []float64{v.CX, v.CY, v.R}})
		case geometry.Polygon:
			var pts []float64
			for _, p := range v.Points {
				pts = append(pts, p.X, p.Y)
			}
			out = append(out, prim{"polygon", pts})
		case geometry.Arc:
			a, b, m := v.StartPoint(), v.EndPoint(), v.MidPoint()
			out = append(out, prim{"arc", []float64{a.X, a.Y, b.X, b.Y, m.X, m.Y}})
		case geometry.ClippedLines:
			for _, l := range v.Visible() {
				out = append(out, prim{"line", []float64{l.X1, l.Y1, l.X2, l.Y2}})
			}
		default:
			t.Fatalf("unexpected svg shape %T", s)
		}
	}
	return out
}

func parseSVG(t *testing.T, doc string) *svgscan.Document {
	t.Helper()
	d, err := svgscan.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse svg: %v", err)
	}
	return d
}

// ============================================================
// Backend equivalence
// ============================================================

func TestBackendsDrawSamePrimitives(t *testing.T) {
	states := map[string]models.CanvasState{
		"landscape": {Width: 1200, Height: 800, Margin: 24, Padding: 16, Gutter: 12, BgColor: "#101010"},
		"portrait":  {Width: 1080, Height: 1920, Margin: 40, Padding: 8, Gutter: 24, BgColor: "#FFFFFF", Rotation: 30, FlipH: true},
	}
	for name, state := range states {
		for _, d := range catalog.All() {
			t.Run(name+"/"+d.ID, func(t *testing.T) {
				layers := single(d.ID)

				rec := newRecorder()
				if err := Raster(rec, state, layers, false); err != nil {
					t.Fatalf("Raster: %v", err)
				}
				doc := parseSVG(t, SVG(state, layers, false))
				if len(doc.Layers) != 1 {
					t.Fatalf("svg has %d layers, want 1", len(doc.Layers))
				}

				want := svgPrims(t, doc.Layers[0])
				if len(want) == 0 {
					t.Fatal("pattern drew nothing")
				}
				if diff := cmp.Diff(want, rec.prims, approx); diff != "" {
					t.Errorf("raster differs from svg (-svg +raster):\n%s", diff)
				}
			})
		}
	}
}

func TestRasterMatrixMatchesSVGTransform(t *testing.T) {
	tests := []struct {
		name  string
		rot   float64
		flipH bool
		flipV bool
	}{
		{"identity", 0, false, false},
		{"rotate", 37.5, false, false},
		{"flip h", 0, true, false},
		{"everything", -120, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := canvas(800, 600)
			s.Rotation, s.FlipH, s.FlipV = tt.rot, tt.flipH, tt.flipV

			rec := newRecorder()
			if err := Raster(rec, s, single("center-lines"), true); err != nil {
				t.Fatal(err)
			}
			if rec.strokes != 1 {
				t.Fatalf("strokes = %d, want 1", rec.strokes)
			}
			want := geometry.NewTransform(s).Matrix()
			if diff := cmp.Diff(want, rec.strokeState[0], approx); diff != "" {
				t.Errorf("matrix (-want +got):\n%s", diff)
			}
			if len(rec.stack) != 0 {
				t.Errorf("unbalanced push/pop: %d left", len(rec.stack))
			}

			doc := parseSVG(t, SVG(s, single("center-lines"), true))
			if got := doc.Layers[0].Transform; got != geometry.NewTransform(s).Attr() {
				t.Errorf("svg transform = %q", got)
			}
		})
	}
}

// ============================================================
// Scenarios
// ============================================================

func TestRuleOfThirdsScenario(t *testing.T) {
	doc := parseSVG(t, SVG(canvas(1000, 1000), single("rule-of-thirds"), false))
	got := svgPrims(t, doc.Layers[0])
	third, two := 1000.0/3, 2000.0/3
	want := []prim{
		{"line", []float64{third, 0, third, 1000}},
		{"line", []float64{two, 0, two, 1000}},
		{"line", []float64{0, third, 1000, third}},
		{"line", []float64{0, two, 1000, two}},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("rule of thirds (-want +got):\n%s", diff)
	}
}

func TestColumnsScenario(t *testing.T) {
	rec := newRecorder()
	if err := Raster(rec, canvas(1000, 500), single("columns-4"), false); err != nil {
		t.Fatal(err)
	}
	var want []prim
	for i := 0; i < 4; i++ {
		x := float64(i) * 250
		want = append(want,
			prim{"line", []float64{x, 0, x, 500}},
			prim{"line", []float64{x + 250, 0, x + 250, 500}},
		)
	}
	if diff := cmp.Diff(want, rec.prims, approx); diff != "" {
		t.Errorf("columns-4 (-want +got):\n%s", diff)
	}
}

func TestRotationScenario(t *testing.T) {
	s := canvas(1000, 1000)
	s.Rotation = 90
	rec := newRecorder()
	if err := Raster(rec, s, single("rule-of-thirds"), false); err != nil {
		t.Fatal(err)
	}
	third, two := 1000.0/3, 2000.0/3
	want := []prim{
		{"line", []float64{1000, third, 0, third}},
		{"line", []float64{1000, two, 0, two}},
		{"line", []float64{two, 0, two, 1000}},
		{"line", []float64{third, 0, third, 1000}},
	}
	if diff := cmp.Diff(want, rec.device, approx); diff != "" {
		t.Errorf("rotated device lines (-want +got):\n%s", diff)
	}

	doc := parseSVG(t, SVG(s, single("rule-of-thirds"), false))
	if got := doc.Layers[0].Transform; got != "translate(500,500) rotate(90) translate(-500,-500)" {
		t.Errorf("svg transform = %q", got)
	}
}

func alphaAt(img image.Image, x, y int) uint8 {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA).A
}

func rasterImage(t *testing.T, s models.CanvasState, l models.Layers) image.Image {
	t.Helper()
	dc := gg.NewContext(s.Width, s.Height)
	defer dc.Close()
	if err := Raster(dc, s, l, true); err != nil {
		t.Fatalf("Raster: %v", err)
	}
	return dc.Image()
}

func TestRotationPixels(t *testing.T) {
	s := canvas(1000, 1000)
	l := single("fifths")
	l.One.LineWeight = 2
	l.One.LineOpacity = 100

	flat := rasterImage(t, s, l)
	s.Rotation = 90
	turned := rasterImage(t, s, l)

	if alphaAt(flat, 500, 200) == 0 || alphaAt(flat, 800, 500) != 0 {
		t.Errorf("unrotated: alpha(500,200)=%d alpha(800,500)=%d", alphaAt(flat, 500, 200), alphaAt(flat, 800, 500))
	}
	if alphaAt(turned, 800, 500) == 0 || alphaAt(turned, 500, 200) != 0 {
		t.Errorf("rotated: alpha(800,500)=%d alpha(500,200)=%d", alphaAt(turned, 800, 500), alphaAt(turned, 500, 200))
	}
}

func TestOpacityCommutes(t *testing.T) {
	s := canvas(600, 600)
	a := single("center-lines")
	a.One.LineWeight = 2
	a.One.Opacity, a.One.LineOpacity = 100, 50
	b := a
	b.One.Opacity, b.One.LineOpacity = 50, 100

	imgA, imgB := rasterImage(t, s, a), rasterImage(t, s, b)
	if alphaAt(imgA, 300, 100) == 0 {
		t.Fatal("no ink on the centre line")
	}
	if alphaAt(imgA, 300, 100) != alphaAt(imgB, 300, 100) {
		t.Errorf("alpha differs: %d vs %d", alphaAt(imgA, 300, 100), alphaAt(imgB, 300, 100))
	}

	for _, l := range []models.Layers{a, b} {
		doc := parseSVG(t, SVG(s, l, true))
		if doc.Layers[0].Opacity != 0.5 {
			t.Errorf("stroke-opacity = %v, want 0.5", doc.Layers[0].Opacity)
		}
	}
}

// ============================================================
// Edge cases
// ============================================================

func TestInvisibleLayersDrawNothing(t *testing.T) {
	tests := map[string]func(l *models.Layers){
		"no grids":     func(l *models.Layers) { l.One.SelectedGrids = nil },
		"zero opacity": func(l *models.Layers) { l.One.Opacity = 0 },
		"unknown id":   func(l *models.Layers) { l.One.SelectedGrids = []string{"no-such-grid"} },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			l := single("rule-of-thirds")
			mutate(&l)
			rec := newRecorder()
			if err := Raster(rec, canvas(400, 400), l, true); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff([]string{"clear"}, rec.calls); diff != "" {
				t.Errorf("calls (-want +got):\n%s", diff)
			}
			doc := parseSVG(t, SVG(canvas(400, 400), l, true))
			for _, layer := range doc.Layers {
				if len(layer.Shapes) != 0 {
					t.Errorf("svg layer has %d shapes", len(layer.Shapes))
				}
			}
		})
	}
}

func TestDegenerateCanvas(t *testing.T) {
	s := canvas(100, 100)
	s.Margin, s.Padding = 40, 20
	var ids []string
	for _, d := range catalog.All() {
		ids = append(ids, d.ID)
	}
	rec := newRecorder()
	if err := Raster(rec, s, single(ids...), false); err != nil {
		t.Fatal(err)
	}
	if rec.strokes != 0 || len(rec.prims) != 0 {
		t.Errorf("degenerate canvas drew %d prims with %d strokes", len(rec.prims), rec.strokes)
	}
	doc := parseSVG(t, SVG(s, single(ids...), false))
	if len(doc.Layers) != 1 || len(doc.Layers[0].Shapes) != 0 {
		t.Errorf("svg = %+v", doc.Layers)
	}
}

func TestStrokeErrorPropagates(t *testing.T) {
	rec := newRecorder()
	rec.err = errors.New("boom")
	err := Raster(rec, canvas(100, 100), single("diagonal"), false)
	if !errors.Is(err, rec.err) {
		t.Errorf("err = %v, want boom", err)
	}
	if len(rec.stack) != 0 {
		t.Error("state not restored after failed stroke")
	}
}

func TestRasterStyle(t *testing.T) {
	l := single("diagonal")
	l.One.LineColor = "#ff0000"
	l.One.LineStyle = models.LineDashed
	l.One.LineWeight = 3
	l.One.LineOpacity, l.One.Opacity = 80, 50

	rec := newRecorder()
	if err := Raster(rec, canvas(2000, 1000), l, false); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([4]float64{1, 0, 0, 0.4}, rec.rgba, approx); diff != "" {
		t.Errorf("rgba (-want +got):\n%s", diff)
	}
	if rec.width != 3 {
		t.Errorf("width = %v", rec.width)
	}
	if diff := cmp.Diff([]float64{16, 8}, rec.dash); diff != "" {
		t.Errorf("dash (-want +got):\n%s", diff)
	}
	if rec.bg != gg.Hex("#FFFFFF") {
		t.Errorf("background = %+v", rec.bg)
	}

	out := SVG(canvas(2000, 1000), l, false)
	for _, want := range []string{`stroke="#ff0000"`, `stroke-opacity="0.4"`, `stroke-width="3"`, `stroke-dasharray="16,8"`, `fill="#FFFFFF"`} {
		if !strings.Contains(out, want) {
			t.Errorf("svg missing %s", want)
		}
	}
	if strings.Contains(out, "transform=") {
		t.Error("identity transform emitted")
	}
}

func TestTransparentSVGHasNoBackground(t *testing.T) {
	doc := parseSVG(t, SVG(canvas(300, 200), single("diagonal"), true))
	if doc.Background != "" {
		t.Errorf("background = %q", doc.Background)
	}
	if doc.Width != 300 || doc.Height != 200 {
		t.Errorf("size = %vx%v", doc.Width, doc.Height)
	}
}

func TestLayerOrderAndClipIds(t *testing.T) {
	l := single("isometric")
	l.Two.SelectedGrids = []string{"isometric", "isometric"}
	out := SVG(canvas(600, 400), l, false)
	for _, id := range []string{`id="clip-1-0"`, `id="clip-2-0"`, `id="clip-2-1"`} {
		if strings.Count(out, id) != 1 {
			t.Errorf("%s appears %d times", id, strings.Count(out, id))
		}
	}
	doc := parseSVG(t, out)
	if len(doc.Layers) != 2 || doc.Layers[0].Stroke != "#a855f7" || doc.Layers[1].Stroke != "#22c55e" {
		t.Errorf("layers out of order: %+v", doc.Layers)
	}
}

func TestIdempotent(t *testing.T) {
	s := models.DefaultState()
	l := models.DefaultLayers()
	l.Two.SelectedGrids = []string{"flower-of-life", "radial-quadrant"}

	if SVG(s, l, false) != SVG(s, l, false) {
		t.Error("SVG output differs between calls")
	}
	a, b := newRecorder(), newRecorder()
	_ = Raster(a, s, l, false)
	_ = Raster(b, s, l, false)
	if diff := cmp.Diff(a.prims, b.prims); diff != "" {
		t.Errorf("raster differs between calls:\n%s", diff)
	}
}

func TestJSONRoundTripRendersSame(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.State.Rotation = 45
	cfg.Layers.Two.SelectedGrids = []string{"sri-yantra"}
	cfg.Layers.Two.LineStyle = models.LineDotted

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	var back models.GridConfig
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if SVG(cfg.State, cfg.Layers, false) != SVG(back.State, back.Layers, false) {
		t.Error("round-tripped config renders differently")
	}
}

func TestSceneJSON(t *testing.T) {
	sc := Compose(canvas(100, 100), single("radial-corner"))
	data, err := json.Marshal(sc)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{`"kind":"arc"`, `"kind":"line"`, `"matrix":[`} {
		if !strings.Contains(out, want) {
			t.Errorf("scene json missing %s", want)
		}
	}
}

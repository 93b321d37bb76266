package chartrender

import (
	"bytes"
	"testing"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/lytico/ag-grid/src/scene"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func band(id string, ys ...float64) scene.AreaDatum {
	a := scene.AreaDatum{ItemID: id, Fill: chart.ColorBlue, Stroke: chart.ColorBlue}
	for i, y := range ys {
		a.Points = append(a.Points, scene.Point{X: float64(i * 10), Y: y})
	}
	return a
}

func TestRenderProducesPNG(t *testing.T) {
	areas := []scene.AreaDatum{band("p", 5, 8, 3, 0, 0, 0)}
	markers := []scene.MarkerDatum{
		{Index: 0, ItemID: "p", Point: scene.Point{X: 0, Y: 5}, Fill: chart.ColorBlue},
		{Index: 1, ItemID: "p", Point: scene.Point{X: 10, Y: 8}, Fill: chart.ColorBlue},
	}
	png, err := Render(areas, markers, Options{Title: "t", Width: 800})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Fatalf("output is not a PNG (first bytes %v)", png[:4])
	}
}

func TestRenderDefaultOptionsAutoRange(t *testing.T) {
	// Zero-value options leave the y-range to go-chart's auto scaling; the
	// axis must come out unbounded rather than carrying a nil range.
	areas := []scene.AreaDatum{band("p", 5, 8, 3, 0, 0, 0)}
	png, err := Render(areas, nil, Options{Width: 800})
	if err != nil {
		t.Fatalf("render with default options failed: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Fatalf("output is not a PNG (first bytes %v)", png[:4])
	}
}

func TestRenderExplicitYRange(t *testing.T) {
	areas := []scene.AreaDatum{band("p", 5, 8, 3, 0, 0, 0)}
	png, err := Render(areas, nil, Options{Width: 800, YMin: -20, YMax: 20})
	if err != nil {
		t.Fatalf("render with explicit range failed: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Fatalf("output is not a PNG (first bytes %v)", png[:4])
	}
}

func TestRenderRejectsEmptyScene(t *testing.T) {
	if _, err := Render(nil, nil, Options{Width: 800}); err == nil {
		t.Fatalf("expected error for empty scene")
	}
}

func TestDimensions(t *testing.T) {
	cases := []struct {
		in    int
		wantW int
	}{
		{100, 640},
		{639, 640},
		{640, 640},
		{1400, 1400},
	}
	for _, c := range cases {
		w, h := Dimensions(c.in)
		if w != c.wantW {
			t.Fatalf("input %d => width %d want %d", c.in, w, c.wantW)
		}
		if h < 240 || h > 560 {
			t.Fatalf("height clamp violated for input %d => h=%d", c.in, h)
		}
	}
}

func TestLabelBoxAndAnchor(t *testing.T) {
	w, h := LabelBox("12.5")
	if w <= 0 || h <= 0 {
		t.Fatalf("label box degenerate: %dx%d", w, h)
	}
	wide, _ := LabelBox("123456")
	narrow, _ := LabelBox("1")
	if wide <= narrow {
		t.Fatalf("wider text should measure wider: %d vs %d", wide, narrow)
	}
	ax, ay := CenteredAnchor(100, 50, "12.5")
	if ax >= 100 || ay >= 50 {
		t.Fatalf("anchor should shift left and up: %v,%v", ax, ay)
	}
}

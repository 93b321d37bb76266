package scene

import (
	"math"
	"testing"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/lytico/ag-grid/src/series"
)

// identity maps domain values straight to pixels.
type identity struct{ band float64 }

func (s identity) Convert(v float64) float64 { return v }
func (s identity) Bandwidth() float64        { return s.band }

func testInput(rows []series.Row, yData [][]float64, keys []string) UpdateInput {
	xData := make([]interface{}, len(rows))
	for i := range rows {
		xData[i] = i
	}
	return UpdateInput{
		XData:  xData,
		YData:  yData,
		Rows:   rows,
		Keys:   keys,
		XScale: identity{},
		YScale: identity{},
		Style: Style{
			Fills:   []drawing.Color{drawing.ColorRed, drawing.ColorBlue},
			Strokes: []drawing.Color{drawing.ColorBlack},
		},
	}
}

func TestBuildSelectionsPolygonClosure(t *testing.T) {
	rows := []series.Row{
		{"x": "a", "p": 3.0, "q": -1.0},
		{"x": "b", "p": 2.0, "q": -4.0},
		{"x": "c", "p": 5.0, "q": 1.0},
	}
	yData := [][]float64{{3, -1}, {2, -4}, {5, 1}}
	areas, _, _ := BuildSelections(testInput(rows, yData, []string{"p", "q"}))
	if len(areas) != 2 {
		t.Fatalf("expected one area per key got %d", len(areas))
	}
	n := len(rows)
	for _, a := range areas {
		if len(a.Points) != 2*n {
			t.Fatalf("area %s has %d points want %d", a.ItemID, len(a.Points), 2*n)
		}
		for i := 0; i < n; i++ {
			top, bottom := a.Points[i], a.Points[2*n-1-i]
			if top.X != bottom.X {
				t.Fatalf("area %s row %d: top x %v != bottom x %v", a.ItemID, i, top.X, bottom.X)
			}
		}
	}
}

func TestBuildSelectionsStackedBaselines(t *testing.T) {
	// Two positive keys stack: q's bottom edge must sit on p's top edge.
	rows := []series.Row{{"x": "a", "p": 3.0, "q": 2.0}}
	yData := [][]float64{{3, 2}}
	areas, _, _ := BuildSelections(testInput(rows, yData, []string{"p", "q"}))
	p, q := areas[0], areas[1]
	if p.Points[0].Y != 3 || p.Points[1].Y != 0 {
		t.Fatalf("p band got top=%v bottom=%v want 3/0", p.Points[0].Y, p.Points[1].Y)
	}
	if q.Points[0].Y != 5 || q.Points[1].Y != 3 {
		t.Fatalf("q band got top=%v bottom=%v want 5/3", q.Points[0].Y, q.Points[1].Y)
	}
}

func TestBuildSelectionsSignSplitBaselines(t *testing.T) {
	// A negative value stacks on the negative baseline regardless of the
	// positive values already stacked in the same row.
	rows := []series.Row{{"x": "a", "p": 3.0, "q": -2.0, "r": -1.0}}
	yData := [][]float64{{3, -2, -1}}
	areas, _, _ := BuildSelections(testInput(rows, yData, []string{"p", "q", "r"}))
	q, r := areas[1], areas[2]
	if q.Points[0].Y != -2 || q.Points[1].Y != 0 {
		t.Fatalf("q band got top=%v bottom=%v want -2/0", q.Points[0].Y, q.Points[1].Y)
	}
	if r.Points[0].Y != -3 || r.Points[1].Y != -2 {
		t.Fatalf("r band got top=%v bottom=%v want -3/-2", r.Points[0].Y, r.Points[1].Y)
	}
}

func TestBuildSelectionsBandCentering(t *testing.T) {
	rows := []series.Row{{"x": "a", "p": 1.0}, {"x": "b", "p": 2.0}}
	yData := [][]float64{{1}, {2}}
	in := testInput(rows, yData, []string{"p"})
	in.XScale = identity{band: 10}
	areas, _, _ := BuildSelections(in)
	if areas[0].Points[0].X != 5 || areas[0].Points[1].X != 6 {
		t.Fatalf("points not centered in band: %v %v", areas[0].Points[0].X, areas[0].Points[1].X)
	}
}

func TestBuildSelectionsMarkersAndLabels(t *testing.T) {
	rows := []series.Row{
		{"x": "a", "p": 3.0, "q": -1.0},
		{"x": "b", "p": 2.0, "q": -4.0},
	}
	yData := [][]float64{{3, -1}, {2, -4}}
	in := testInput(rows, yData, []string{"p", "q"})
	in.Markers = true
	in.Labels = true
	_, markers, labels := BuildSelections(in)
	if len(markers) != 4 || len(labels) != 4 {
		t.Fatalf("expected one marker/label per (row,key): %d markers %d labels", len(markers), len(labels))
	}
	// Markers carry the originating row by reference.
	m := markers[2] // row 1, key p
	if m.Index != 1 || m.ItemID != "p" || m.Value != 2 {
		t.Fatalf("marker mismatch: %+v", m)
	}
	if m.Datum["x"] != "b" {
		t.Fatalf("marker does not reference originating row: %v", m.Datum)
	}
	// Style cycling modulo list length: key index 1 wraps the stroke list.
	if markers[1].Stroke != drawing.ColorBlack {
		t.Fatalf("stroke cycling broken: %+v", markers[1].Stroke)
	}
	if labels[0].Text != "3" {
		t.Fatalf("default label got %q want 3", labels[0].Text)
	}
}

func TestBuildSelectionsCustomFormatterAndNonFinite(t *testing.T) {
	rows := []series.Row{{"x": "a", "p": math.NaN()}}
	yData := [][]float64{{math.NaN()}}
	in := testInput(rows, yData, []string{"p"})
	in.Labels = true
	_, _, labels := BuildSelections(in)
	if labels[0].Text != "" {
		t.Fatalf("non-finite label should fall back to empty, got %q", labels[0].Text)
	}

	in.Format = func(p LabelParams) string { return p.ItemID + "!" }
	_, _, labels = BuildSelections(in)
	if labels[0].Text != "p!" {
		t.Fatalf("custom formatter ignored, got %q", labels[0].Text)
	}
}

func TestSeriesUpdateSkipsWhenUnready(t *testing.T) {
	var s Series
	rows := []series.Row{{"x": "a", "p": 1.0}}
	good := testInput(rows, [][]float64{{1}}, []string{"p"})
	if !s.Update(good) {
		t.Fatalf("expected ready update to run")
	}
	before := s.Areas.Nodes()[0]

	cases := []struct {
		name string
		mut  func(*UpdateInput)
	}{
		{"no keys", func(in *UpdateInput) { in.Keys = nil }},
		{"no rows", func(in *UpdateInput) { in.Rows = nil; in.XData = nil; in.YData = nil }},
		{"nil x scale", func(in *UpdateInput) { in.XScale = nil }},
		{"nil y scale", func(in *UpdateInput) { in.YScale = nil }},
		{"length mismatch", func(in *UpdateInput) { in.YData = nil }},
		{"short value vector", func(in *UpdateInput) { in.YData = [][]float64{{}} }},
	}
	for _, c := range cases {
		in := good
		c.mut(&in)
		if s.Update(in) {
			t.Fatalf("%s: expected skipped cycle", c.name)
		}
		if len(s.Areas.Nodes()) != 1 || s.Areas.Nodes()[0] != before {
			t.Fatalf("%s: retained nodes disturbed by skipped cycle", c.name)
		}
	}
}

func TestSeriesUpdateReconcilesLayers(t *testing.T) {
	var s Series
	rows := []series.Row{
		{"x": "a", "p": 1.0},
		{"x": "b", "p": 2.0},
	}
	in := testInput(rows, [][]float64{{1}, {2}}, []string{"p"})
	in.Markers = true
	if !s.Update(in) {
		t.Fatalf("expected update to run")
	}
	if len(s.Areas.Nodes()) != 1 || len(s.Markers.Nodes()) != 2 || len(s.Labels.Nodes()) != 0 {
		t.Fatalf("layer sizes: areas=%d markers=%d labels=%d", len(s.Areas.Nodes()), len(s.Markers.Nodes()), len(s.Labels.Nodes()))
	}
	marker := s.Markers.Nodes()[0]

	// Second cycle with one fewer row: marker nodes shrink, survivors age.
	in2 := testInput(rows[:1], [][]float64{{1}}, []string{"p"})
	in2.Markers = true
	if !s.Update(in2) {
		t.Fatalf("expected second update to run")
	}
	if len(s.Markers.Nodes()) != 1 {
		t.Fatalf("marker layer not shrunk: %d", len(s.Markers.Nodes()))
	}
	if s.Markers.Nodes()[0] != marker {
		t.Fatalf("surviving marker lost identity")
	}
	if marker.Gen != 1 {
		t.Fatalf("surviving marker Gen = %d want 1", marker.Gen)
	}
}

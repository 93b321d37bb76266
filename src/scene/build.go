// Package scene computes per-series render data (stacked-band polygons,
// marker points, label placements) from processed series tables and
// reconciles it against retained render nodes, splitting each layer into
// enter/update/exit sets so the renderer touches as few nodes as possible.
package scene

import (
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/lytico/ag-grid/src/series"
)

// Point is a pixel-space coordinate.
type Point struct {
	X, Y float64
}

// AreaDatum is one value key's stacked band: a closed polygon of 2n points
// for n rows, tracing the top edge forward (index i) and the bottom edge
// backward (index 2n-1-i). Top and bottom points of the same row share an x.
type AreaDatum struct {
	ItemID string
	Points []Point
	Fill   drawing.Color
	Stroke drawing.Color
}

// MarkerDatum is one marker per (row, value key). Datum references the
// originating raw row so tooltip and click payloads can carry it.
type MarkerDatum struct {
	Index  int
	ItemID string
	Point  Point
	Fill   drawing.Color
	Stroke drawing.Color
	Value  float64
	Datum  series.Row
}

// LabelDatum is one label per (row, value key).
type LabelDatum struct {
	Index  int
	ItemID string
	Point  Point
	Text   string
}

// Style holds ordered color lists cycled by value-key index mod length.
type Style struct {
	Fills   []drawing.Color
	Strokes []drawing.Color
}

func cycle(cols []drawing.Color, i int) drawing.Color {
	if len(cols) == 0 {
		return drawing.ColorTransparent
	}
	return cols[i%len(cols)]
}

// LabelParams is the fixed parameter structure handed to label formatters.
type LabelParams struct {
	ItemID string
	Value  float64
	Datum  series.Row
}

// Formatter renders a label string for one datum. Nil means default
// formatting.
type Formatter func(LabelParams) string

func defaultLabel(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return fmt.Sprintf("%g", v)
}

// UpdateInput is the full snapshot one update cycle works from.
type UpdateInput struct {
	XData  []interface{}
	YData  [][]float64
	Rows   []series.Row
	Keys   []string
	XScale Scale
	YScale Scale
	Style  Style
	// Markers/Labels gate emission of the respective layers.
	Markers bool
	Labels  bool
	Format  Formatter
}

func (in *UpdateInput) ready() bool {
	if len(in.Keys) == 0 || len(in.Rows) == 0 {
		return false
	}
	if in.XScale == nil || in.YScale == nil {
		return false
	}
	if len(in.XData) != len(in.Rows) || len(in.YData) != len(in.Rows) {
		return false
	}
	for _, vec := range in.YData {
		if len(vec) < len(in.Keys) {
			return false
		}
	}
	return true
}

// BuildSelections computes the three render layers for one update cycle in
// O(rows x keys). Stacking walks each row once, keeping a running negative
// and a running non-negative cumulative total; each value stacks on the
// baseline matching its sign. The polygon gets its top edge point at index
// i and its bottom edge point at the mirrored index, so no separate closing
// step is needed beyond joining first and last point.
func BuildSelections(in UpdateInput) ([]AreaDatum, []MarkerDatum, []LabelDatum) {
	n := len(in.Rows)
	half := in.XScale.Bandwidth() / 2

	areas := make([]AreaDatum, len(in.Keys))
	for k, key := range in.Keys {
		areas[k] = AreaDatum{
			ItemID: key,
			Points: make([]Point, 2*n),
			Fill:   cycle(in.Style.Fills, k),
			Stroke: cycle(in.Style.Strokes, k),
		}
	}
	var markers []MarkerDatum
	var labels []LabelDatum

	for i := 0; i < n; i++ {
		prevMin, prevMax := 0.0, 0.0
		x := in.XScale.Convert(float64(i)) + half
		for k, key := range in.Keys {
			v := in.YData[i][k]
			prev := prevMax
			if v < 0 {
				prev = prevMin
			}
			top := Point{X: x, Y: in.YScale.Convert(prev + v)}
			bottom := Point{X: x, Y: in.YScale.Convert(prev)}
			areas[k].Points[i] = top
			areas[k].Points[2*n-1-i] = bottom
			if v < 0 {
				prevMin += v
			} else {
				prevMax += v
			}

			if in.Markers {
				markers = append(markers, MarkerDatum{
					Index:  i,
					ItemID: key,
					Point:  top,
					Fill:   cycle(in.Style.Fills, k),
					Stroke: cycle(in.Style.Strokes, k),
					Value:  v,
					Datum:  in.Rows[i],
				})
			}
			if in.Labels {
				text := defaultLabel(v)
				if in.Format != nil {
					text = in.Format(LabelParams{ItemID: key, Value: v, Datum: in.Rows[i]})
				}
				labels = append(labels, LabelDatum{Index: i, ItemID: key, Point: top, Text: text})
			}
		}
	}
	return areas, markers, labels
}

// Series owns the retained render state for one stacked series instance.
// Single-threaded: callers serialize Update invocations; nothing here locks.
type Series struct {
	Areas   Layer[AreaDatum]
	Markers Layer[MarkerDatum]
	Labels  Layer[LabelDatum]
}

// Update runs one reconciliation cycle against in. When the input is not
// ready (no rows, no keys, missing scales, mismatched table lengths) the
// cycle is skipped and the previous retained nodes stay visible as-is; the
// return reports whether the cycle ran.
func (s *Series) Update(in UpdateInput) bool {
	if !in.ready() {
		return false
	}
	areas, markers, labels := BuildSelections(in)
	s.Areas.Sync(areas)
	s.Markers.Sync(markers)
	s.Labels.Sync(labels)
	return true
}

// Package chartrender turns a reconciled scene into a PNG image using
// go-chart. Rendering is delegated wholesale to the chart library; this
// package only translates scene data into chart series and styles.
package chartrender

import (
	"bytes"
	"errors"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/lytico/ag-grid/src/logging"
	"github.com/lytico/ag-grid/src/scene"
)

// Options controls one render.
type Options struct {
	Title  string
	Width  int
	Height int
	YMin   float64
	YMax   float64
}

// areaStyle fills the band and strokes its outline.
func areaStyle(fill, stroke drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 1.2,
		StrokeColor: stroke,
		FillColor:   fill.WithAlpha(96),
	}
}

// markerStyle renders points only (no connecting line).
func markerStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}

// Render draws the area bands and marker layers into a PNG. Labels are
// measured (see LabelBox) but drawn by the host, which owns text layout.
func Render(areas []scene.AreaDatum, markers []scene.MarkerDatum, opts Options) ([]byte, error) {
	defer logging.TimeTrack(time.Now(), "chart render")
	if len(areas) == 0 {
		return nil, errors.New("no area data to render")
	}
	w, h := Dimensions(opts.Width)
	if opts.Height > 0 {
		h = opts.Height
	}

	series := []chart.Series{}
	for _, a := range areas {
		xs := make([]float64, len(a.Points))
		ys := make([]float64, len(a.Points))
		for i, p := range a.Points {
			xs[i] = p.X
			ys[i] = p.Y
		}
		series = append(series, chart.ContinuousSeries{
			Name:    a.ItemID,
			XValues: xs,
			YValues: ys,
			Style:   areaStyle(a.Fill, a.Stroke),
		})
	}
	if len(markers) > 0 {
		// One point series per item id so the legend stays per value key.
		byItem := map[string][]scene.MarkerDatum{}
		order := []string{}
		for _, m := range markers {
			if _, ok := byItem[m.ItemID]; !ok {
				order = append(order, m.ItemID)
			}
			byItem[m.ItemID] = append(byItem[m.ItemID], m)
		}
		for _, id := range order {
			ms := byItem[id]
			xs := make([]float64, len(ms))
			ys := make([]float64, len(ms))
			for i, m := range ms {
				xs[i] = m.Point.X
				ys[i] = m.Point.Y
			}
			series = append(series, chart.ContinuousSeries{
				Name:    id + " markers",
				XValues: xs,
				YValues: ys,
				Style:   markerStyle(ms[0].Fill),
			})
		}
	}

	// Only set Range when there is a real bound: a typed-nil *ContinuousRange
	// in the Range interface field makes go-chart call IsZero through a nil
	// pointer.
	yAxis := chart.YAxis{}
	if opts.YMax > opts.YMin {
		yAxis.Range = &chart.ContinuousRange{Min: opts.YMin, Max: opts.YMax}
	}
	ch := chart.Chart{
		Title:      opts.Title,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 24}},
		YAxis:      yAxis,
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

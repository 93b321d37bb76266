package main

import (
	"flag"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/lytico/ag-grid/src/chartrender"
	"github.com/lytico/ag-grid/src/gridagg"
	"github.com/lytico/ag-grid/src/gridview"
	"github.com/lytico/ag-grid/src/logging"
	"github.com/lytico/ag-grid/src/scene"
	"github.com/lytico/ag-grid/src/series"
)

const (
	categoryKey = "month"
	chartWidth  = 900
)

var valueKeys = []string{"revenue", "costs", "writeoffs"}

// demoRows is the built-in dataset; loading external data is out of scope
// for the demo.
func demoRows() []series.Row {
	return []series.Row{
		{"month": "Jan", "revenue": 42.0, "costs": -18.0, "writeoffs": -2.0},
		{"month": "Feb", "revenue": 55.0, "costs": -21.0, "writeoffs": -1.5},
		{"month": "Mar", "revenue": 61.0, "costs": -25.0, "writeoffs": -4.0},
		{"month": "Apr", "revenue": 58.0, "costs": -23.0, "writeoffs": -2.5},
		{"month": "May", "revenue": 70.0, "costs": -28.0, "writeoffs": -3.0},
		{"month": "Jun", "revenue": 64.0, "costs": -26.0, "writeoffs": -1.0},
	}
}

type uiState struct {
	app    fyne.App
	window fyne.Window

	model   *gridview.SliceRowModel
	enabled map[string]bool
	norm    float64

	srs       scene.Series
	chartImg  *canvas.Image
	table     *widget.Table
	statusBar *gridview.StatusBar

	// selection anchors one range per click pair: first tap sets start,
	// second tap completes the range. A modifier-free anchor replaces the
	// selection; holding Ctrl adds another range to it.
	pendingStart   *gridagg.RowPos
	pendingCol     int
	addToSelection bool
	ranges         []gridagg.CellRange
}

func seriesStyle() scene.Style {
	return scene.Style{
		Fills: []drawing.Color{
			chart.ColorBlue, chart.ColorRed, chart.ColorGreen,
			chart.ColorOrange, chart.ColorCyan,
		},
		Strokes: []drawing.Color{
			chart.ColorBlue, chart.ColorRed, chart.ColorGreen,
			chart.ColorOrange, chart.ColorCyan,
		},
	}
}

// refreshChart runs one full processing + reconciliation + render cycle.
func (st *uiState) refreshChart() {
	rows := st.model.Rows
	res, ok := series.Process(rows, series.Options{
		CategoryKey: categoryKey,
		ValueKeys:   valueKeys,
		Enabled:     st.enabled,
		NormalizeTo: st.norm,
	})
	if !ok {
		logging.Warnf("series processing skipped: empty category key or value keys")
		return
	}

	w, h := chartrender.Dimensions(chartWidth)
	yRange := &chart.ContinuousRange{Min: res.Extent[0], Max: res.Extent[1]}
	yRange.Domain = h
	ran := st.srs.Update(scene.UpdateInput{
		XData:   res.XData,
		YData:   res.YData,
		Rows:    rows,
		Keys:    valueKeys,
		XScale:  scene.BandScale{Count: len(rows), Pixels: float64(w)},
		YScale:  scene.ContinuousScale{Range: yRange},
		Style:   seriesStyle(),
		Markers: true,
		Labels:  true,
	})
	if !ran {
		logging.Debugf("scene update skipped; retaining previous nodes")
		return
	}

	areas := make([]scene.AreaDatum, 0, len(st.srs.Areas.Nodes()))
	for _, n := range st.srs.Areas.Nodes() {
		areas = append(areas, n.Datum)
	}
	markers := make([]scene.MarkerDatum, 0, len(st.srs.Markers.Nodes()))
	for _, n := range st.srs.Markers.Nodes() {
		markers = append(markers, n.Datum)
	}
	png, err := chartrender.Render(areas, markers, chartrender.Options{
		Title: "Stacked series",
		Width: chartWidth,
		YMin:  res.Extent[0],
		YMax:  res.Extent[1],
	})
	if err != nil {
		logging.Errorf("chart render failed: %v", err)
		return
	}
	st.chartImg.Resource = fyne.NewStaticResource("chart.png", png)
	st.chartImg.Refresh()
}

// refreshAggregates recomputes the status bar from the current ranges.
func (st *uiState) refreshAggregates() {
	agg := gridagg.Compute(st.ranges, st.model, st.model)
	st.statusBar.ShowAggregate(agg)
}

func (st *uiState) onCellSelected(id widget.TableCellID) {
	if id.Row == 0 {
		return // header
	}
	pos := gridagg.RowPos{Section: gridagg.Body, Index: id.Row - 1}
	if st.pendingStart == nil {
		if !st.addToSelection {
			st.ranges = nil
			st.refreshAggregates()
		}
		p := pos
		st.pendingStart = &p
		st.pendingCol = id.Col
		return
	}
	st.ranges = append(st.ranges, gridagg.CellRange{
		Start:   *st.pendingStart,
		End:     pos,
		Columns: columnSpan(st.pendingCol, id.Col),
	})
	st.pendingStart = nil
	st.refreshAggregates()
}

// columnSpan names the columns between two tapped column indices, inclusive.
func columnSpan(a, b int) []string {
	if b < a {
		a, b = b, a
	}
	var cols []string
	for i := a; i <= b; i++ {
		if name := columnName(i); name != "" {
			cols = append(cols, name)
		}
	}
	return cols
}

func columnName(i int) string {
	if i == 0 {
		return categoryKey
	}
	if i-1 < len(valueKeys) {
		return valueKeys[i-1]
	}
	return ""
}

func (st *uiState) buildTable() *widget.Table {
	rows := st.model.Rows
	t := widget.NewTable(
		func() (int, int) { return len(rows) + 1, len(valueKeys) + 1 },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			l := obj.(*widget.Label)
			if id.Row == 0 {
				l.TextStyle = fyne.TextStyle{Bold: true}
				l.SetText(columnName(id.Col))
				return
			}
			l.TextStyle = fyne.TextStyle{}
			v := rows[id.Row-1][columnName(id.Col)]
			l.SetText(fmt.Sprintf("%v", v))
		},
	)
	t.OnSelected = st.onCellSelected
	widths := gridview.ColumnWidths(1000, len(valueKeys)+1)
	for i, w := range widths {
		t.SetColumnWidth(i, w)
	}
	return t
}

func (st *uiState) buildLegend() fyne.CanvasObject {
	checks := make([]fyne.CanvasObject, 0, len(valueKeys))
	for _, key := range valueKeys {
		k := key
		c := widget.NewCheck(k, func(on bool) {
			st.enabled[k] = on
			st.refreshChart()
		})
		c.SetChecked(st.enabled[k])
		checks = append(checks, c)
	}
	return container.NewHBox(checks...)
}

func main() {
	logLevel := flag.String("loglevel", "info", "log level: debug|info|warn|error")
	norm := flag.Float64("normalize", 0, "normalize each row to this magnitude (0 = off)")
	flag.Parse()
	logging.SetLogLevel(*logLevel)

	st := &uiState{
		model:   &gridview.SliceRowModel{Rows: demoRows()},
		enabled: series.ResetEnabled(valueKeys),
		norm:    *norm,
	}

	st.app = app.New()
	st.window = st.app.NewWindow("gridviz")
	st.chartImg = canvas.NewImageFromResource(nil)
	st.chartImg.FillMode = canvas.ImageFillContain
	st.chartImg.SetMinSize(fyne.NewSize(600, gridview.ChartHeight(800)))
	st.statusBar = gridview.NewStatusBar()
	st.table = st.buildTable()

	st.refreshChart()

	content := container.NewBorder(
		container.NewVBox(st.buildLegend(), st.chartImg),
		st.statusBar.CanvasObject(),
		nil, nil,
		st.table,
	)
	st.window.SetContent(content)
	st.window.Resize(fyne.NewSize(1000, 760))
	if deskCanvas, ok := st.window.Canvas().(desktop.Canvas); ok {
		deskCanvas.SetOnKeyDown(func(e *fyne.KeyEvent) {
			if e.Name == desktop.KeyControlLeft || e.Name == desktop.KeyControlRight {
				st.addToSelection = true
			}
		})
		deskCanvas.SetOnKeyUp(func(e *fyne.KeyEvent) {
			if e.Name == desktop.KeyControlLeft || e.Name == desktop.KeyControlRight {
				st.addToSelection = false
			}
		})
	}
	st.window.ShowAndRun()
}

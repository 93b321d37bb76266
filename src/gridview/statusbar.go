// Package gridview holds the Fyne-facing grid pieces: the aggregate status
// bar, the in-memory row model backing the demo table, and column sizing
// helpers.
package gridview

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/lytico/ag-grid/src/gridagg"
)

// StatusBar shows range-selection aggregates beneath the grid. It
// implements gridagg.StatusSink; pushing a hidden aggregate clears it.
type StatusBar struct {
	box   *fyne.Container
	avg   *widget.Label
	count *widget.Label
	min   *widget.Label
	max   *widget.Label
	sum   *widget.Label
}

// NewStatusBar builds an empty, hidden status bar.
func NewStatusBar() *StatusBar {
	s := &StatusBar{
		avg:   widget.NewLabel(""),
		count: widget.NewLabel(""),
		min:   widget.NewLabel(""),
		max:   widget.NewLabel(""),
		sum:   widget.NewLabel(""),
	}
	s.box = container.NewHBox(s.avg, s.count, s.min, s.max, s.sum)
	s.box.Hide()
	return s
}

// CanvasObject returns the container to place in the window layout.
func (s *StatusBar) CanvasObject() fyne.CanvasObject { return s.box }

// ShowAggregate implements gridagg.StatusSink.
func (s *StatusBar) ShowAggregate(a gridagg.Aggregate) {
	if !a.Visible {
		s.box.Hide()
		return
	}
	s.avg.SetText(fmt.Sprintf("Average: %g", a.Avg))
	s.count.SetText(fmt.Sprintf("Count: %d", a.Count))
	s.min.SetText(fmt.Sprintf("Min: %g", a.Min))
	s.max.SetText(fmt.Sprintf("Max: %g", a.Max))
	s.sum.SetText(fmt.Sprintf("Sum: %g", a.Sum))
	s.box.Show()
}

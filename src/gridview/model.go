package gridview

import (
	"github.com/lytico/ag-grid/src/gridagg"
	"github.com/lytico/ag-grid/src/series"
)

// SliceRowModel is an in-memory row model with optional pinned sections.
// It backs the demo table and anything else that aggregates over plain
// row slices.
type SliceRowModel struct {
	PinnedTop    []series.Row
	Rows         []series.Row
	PinnedBottom []series.Row
}

// Count implements gridagg.RowModel.
func (m *SliceRowModel) Count(s gridagg.Section) int {
	switch s {
	case gridagg.PinnedTop:
		return len(m.PinnedTop)
	case gridagg.Body:
		return len(m.Rows)
	case gridagg.PinnedBottom:
		return len(m.PinnedBottom)
	}
	return 0
}

// Row resolves a position to its backing record, or nil when out of range.
func (m *SliceRowModel) Row(p gridagg.RowPos) series.Row {
	var rows []series.Row
	switch p.Section {
	case gridagg.PinnedTop:
		rows = m.PinnedTop
	case gridagg.Body:
		rows = m.Rows
	case gridagg.PinnedBottom:
		rows = m.PinnedBottom
	}
	if p.Index < 0 || p.Index >= len(rows) {
		return nil
	}
	return rows[p.Index]
}

// Value implements gridagg.ValueSource by field lookup on the backing row.
func (m *SliceRowModel) Value(column string, row gridagg.RowPos) interface{} {
	r := m.Row(row)
	if r == nil {
		return nil
	}
	return r[column]
}

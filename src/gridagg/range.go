// Package gridagg computes status-bar aggregates (sum, count, min, max,
// average) over rectangular cell-range selections of a grid. Ranges may
// overlap and may have reversed endpoints; every selected cell is visited
// exactly once per aggregation pass.
package gridagg

// Section identifies one of the grid's row containers. The three sections
// form a single logical row sequence in this order.
type Section int

const (
	PinnedTop Section = iota
	Body
	PinnedBottom
)

func (s Section) String() string {
	switch s {
	case PinnedTop:
		return "pinned-top"
	case Body:
		return "body"
	case PinnedBottom:
		return "pinned-bottom"
	}
	return "unknown"
}

// RowPos addresses one row within a section.
type RowPos struct {
	Section Section
	Index   int
}

// CellRange is a rectangular selection. Start and End arrive in selection
// order, not document order: either may precede the other.
type CellRange struct {
	Start   RowPos
	End     RowPos
	Columns []string
}

// RowModel exposes the grid's row layout to the traversal.
type RowModel interface {
	// Count reports the number of rows in a section.
	Count(Section) int
}

// ValueSource looks a cell's value up by column and row.
type ValueSource interface {
	Value(column string, row RowPos) interface{}
}

// Before reports whether a precedes b in the logical row sequence.
func Before(a, b RowPos) bool {
	if a.Section != b.Section {
		return a.Section < b.Section
	}
	return a.Index < b.Index
}

// Next advances one row, crossing from pinned-top into the body and from
// the body into pinned-bottom. The second return is false past the end.
func Next(m RowModel, p RowPos) (RowPos, bool) {
	p.Index++
	for p.Index >= m.Count(p.Section) {
		if p.Section == PinnedBottom {
			return RowPos{}, false
		}
		p.Section++
		p.Index = 0
	}
	return p, true
}

// First returns the first row of the logical sequence.
func First(m RowModel) (RowPos, bool) {
	for s := PinnedTop; s <= PinnedBottom; s++ {
		if m.Count(s) > 0 {
			return RowPos{Section: s}, true
		}
	}
	return RowPos{}, false
}

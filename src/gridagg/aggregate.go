package gridagg

import (
	"math"
	"strconv"

	"github.com/lytico/ag-grid/src/logging"
)

// Aggregate is the flat result pushed to the status display. Visible is
// false when fewer than two cells were selected; the display hides the
// aggregates entirely in that case.
type Aggregate struct {
	Sum     float64
	Min     float64
	Max     float64
	Avg     float64
	Count   int
	Visible bool
}

// StatusSink receives aggregation results. The grid pushes a fresh value on
// every selection change; a result with Visible false clears the display.
type StatusSink interface {
	ShowAggregate(Aggregate)
}

type cellKey struct {
	section Section
	row     int
	column  string
}

// coerce turns a cell value into a float64. String values are parsed;
// anything else non-numeric reports false.
func coerce(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Compute walks every cell covered by ranges exactly once and accumulates
// sum, count, min, max and average. Endpoint order within a range is
// discovered by comparison, never assumed. A cell covered by several
// overlapping ranges counts once: the dedup set spans the whole pass. Every
// visited cell increments Count; only numeric, non-NaN values (strings
// coerced) enter the sum and extremes. Min and Max are seeded at zero, so an
// all-negative selection reports Max 0 and symmetrically for Min; empty or
// all-text selections report zeroes rather than infinities.
func Compute(ranges []CellRange, model RowModel, src ValueSource) Aggregate {
	agg := Aggregate{}
	seen := make(map[cellKey]struct{})

	for _, r := range ranges {
		from, to := r.Start, r.End
		if Before(to, from) {
			from, to = to, from
		}
		for pos, ok := from, true; ok; pos, ok = Next(model, pos) {
			for _, col := range r.Columns {
				key := cellKey{section: pos.Section, row: pos.Index, column: col}
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				agg.Count++
				if f, numeric := coerce(src.Value(col, pos)); numeric && !math.IsNaN(f) {
					agg.Sum += f
					if f < agg.Min {
						agg.Min = f
					}
					if f > agg.Max {
						agg.Max = f
					}
				}
			}
			if pos == to {
				break
			}
		}
	}

	if agg.Count > 1 {
		agg.Avg = agg.Sum / float64(agg.Count)
		agg.Visible = true
	}
	logging.Debugf("range aggregation: %d cells over %d ranges", agg.Count, len(ranges))
	return agg
}

// Package series turns opaque input rows into stacked-series data tables:
// one category value per row plus a numeric vector per row, one entry per
// configured value key, together with the cumulative domain extent the axis
// needs. Processing is wholesale: every data or key change rebuilds the
// tables from scratch rather than patching them.
package series

import (
	"math"

	"github.com/lytico/ag-grid/src/logging"
)

// Row is an opaque associative record. Category and value keys are looked up
// dynamically; absent keys degrade gracefully.
type Row map[string]interface{}

// Options configures one processing pass.
type Options struct {
	CategoryKey string
	ValueKeys   []string
	// Enabled maps value key -> participates in stacking. nil means all enabled.
	Enabled map[string]bool
	// NormalizeTo rescales every row so the larger of |negative sum| and
	// positive sum equals this magnitude. Zero or non-finite disables it.
	NormalizeTo float64
	// OnProcessed, when set, is invoked with the result after a successful
	// pass. Downstream layout hangs off this notification.
	OnProcessed func(Result)
}

// Result holds the rebuilt data tables and the derived domain extent.
type Result struct {
	// XData holds the category value of each row, verbatim.
	XData []interface{}
	// YData holds one value vector per row, ordered like Options.ValueKeys.
	YData [][]float64
	// Extent is the {min, max} cumulative domain across all rows.
	Extent [2]float64
}

// ResetEnabled returns an all-enabled map for the given value keys. Callers
// re-initialize enablement with this whenever the value-key list changes.
func ResetEnabled(valueKeys []string) map[string]bool {
	m := make(map[string]bool, len(valueKeys))
	for _, k := range valueKeys {
		m[k] = true
	}
	return m
}

// ToggleEnabled flips one key's enablement (legend interaction).
func ToggleEnabled(m map[string]bool, key string) {
	m[key] = !m[key]
}

// toFloat converts the dynamic values rows carry. Strings are not coerced
// here; numeric coercion of display values is the grid aggregator's business.
func toFloat(v interface{}) (float64, bool) {
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
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// Process rebuilds the data tables for rows under opts. The second return is
// false when the category key or the value-key list is empty; a failed pass
// produces no tables and no notification. Missing keys warn at most once per
// pass and contribute zero.
func Process(rows []Row, opts Options) (Result, bool) {
	if opts.CategoryKey == "" || len(opts.ValueKeys) == 0 {
		return Result{}, false
	}

	var warnOnce logging.OncePerPass
	warnOnce.Reset()

	res := Result{
		XData: make([]interface{}, 0, len(rows)),
		YData: make([][]float64, 0, len(rows)),
	}

	// Global extremes over cumulative per-row sums.
	globalMin, globalMax := 0.0, 0.0
	anyNegative := false

	for _, row := range rows {
		cat, ok := row[opts.CategoryKey]
		if !ok {
			warnOnce.Warnf("cat:"+opts.CategoryKey, "category key %q missing from row; rendering undefined category", opts.CategoryKey)
		}
		res.XData = append(res.XData, cat)

		vec := make([]float64, len(opts.ValueKeys))
		negSum, posSum := 0.0, 0.0
		for i, key := range opts.ValueKeys {
			raw, present := row[key]
			if !present {
				warnOnce.Warnf("val:"+key, "value key %q missing from row; treating as zero", key)
			}
			v := 0.0
			if present && (opts.Enabled == nil || opts.Enabled[key]) {
				if f, numeric := toFloat(raw); numeric && !math.IsNaN(f) && !math.IsInf(f, 0) {
					v = f
				}
			}
			vec[i] = v
			if v < 0 {
				negSum += v
				anyNegative = true
			} else {
				posSum += v
			}
		}
		res.YData = append(res.YData, vec)
		if negSum < globalMin {
			globalMin = negSum
		}
		if posSum > globalMax {
			globalMax = posSum
		}
	}

	target := opts.NormalizeTo
	if target != 0 && !math.IsNaN(target) && !math.IsInf(target, 0) {
		normalize(res.YData, target)
		if anyNegative {
			res.Extent = [2]float64{-target, target}
		} else {
			res.Extent = [2]float64{0, target}
		}
	} else {
		res.Extent = [2]float64{globalMin, globalMax}
	}

	// A flat all-zero dataset would collapse the axis to nothing.
	if res.Extent[0] == 0 && res.Extent[1] == 0 {
		res.Extent[1] = 1
	}

	if opts.OnProcessed != nil {
		opts.OnProcessed(res)
	}
	return res, true
}

// normalize rescales each row independently so that the larger of its
// |negative sum| and positive sum maps to target, preserving sign. A row
// whose negative (or positive) magnitude is zero has only zero entries in
// that branch, so the division never actually runs against a zero divisor.
func normalize(yData [][]float64, target float64) {
	for _, vec := range yData {
		negSum, posSum := 0.0, 0.0
		for _, v := range vec {
			if v < 0 {
				negSum += v
			} else {
				posSum += v
			}
		}
		negMag := -negSum
		for i, v := range vec {
			if v < 0 {
				vec[i] = v / negMag * target
			} else if v > 0 {
				vec[i] = v / posSum * target
			}
		}
	}
}

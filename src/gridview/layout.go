package gridview

// ColumnWidths returns per-column widths for an n-column grid at the given
// window width. Narrow windows get a compact layout that keeps the first
// (category) column readable and squeezes the value columns evenly.
func ColumnWidths(winW float32, n int) []float32 {
	if n <= 0 {
		return nil
	}
	const compactBreakpoint = 760
	const ultraCompactBreakpoint = 480
	w := make([]float32, n)
	first := float32(160)
	rest := float32(110)
	switch {
	case winW < ultraCompactBreakpoint:
		first, rest = 90, 60
	case winW < compactBreakpoint:
		first, rest = 120, 80
	}
	w[0] = first
	for i := 1; i < n; i++ {
		w[i] = rest
	}
	return w
}

// ChartHeight derives the chart panel height from the window height: a
// third of the window, clamped for readability.
func ChartHeight(winH float32) float32 {
	h := winH / 3
	if h < 200 {
		h = 200
	}
	if h > 480 {
		h = 480
	}
	return h
}

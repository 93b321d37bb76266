package scene

import (
	chart "github.com/wcharczuk/go-chart/v2"
)

// Scale maps a domain value to a pixel coordinate. Bandwidth reports the
// pixel width of one category band, or 0 for continuous scales; points are
// centered within the band when it is nonzero.
type Scale interface {
	Convert(v float64) float64
	Bandwidth() float64
}

// ContinuousScale adapts a go-chart continuous range to the Scale interface.
// The range's Domain must be set to the pixel span before use.
type ContinuousScale struct {
	Range *chart.ContinuousRange
}

func (s ContinuousScale) Convert(v float64) float64 {
	return float64(s.Range.Translate(v))
}

func (s ContinuousScale) Bandwidth() float64 { return 0 }

// BandScale lays n categories out over a pixel span, band i covering
// [i*step, (i+1)*step). Convert takes the band index as its domain value.
type BandScale struct {
	Count  int
	Pixels float64
}

func (s BandScale) Convert(v float64) float64 {
	if s.Count <= 0 {
		return 0
	}
	return v * s.Pixels / float64(s.Count)
}

func (s BandScale) Bandwidth() float64 {
	if s.Count <= 0 {
		return 0
	}
	return s.Pixels / float64(s.Count)
}

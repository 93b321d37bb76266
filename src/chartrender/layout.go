package chartrender

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Dimensions applies the width/height clamp rules used for chart images.
// Input: desired raw width (e.g. the hosting canvas width). Returns clamped
// width and a height derived from it.
func Dimensions(rawW int) (int, int) {
	w := rawW
	if w < 640 {
		w = 640
	}
	h := int(float32(w) * 0.5)
	if h < 240 {
		h = 240
	}
	if h > 560 {
		h = 560
	}
	return w, h
}

// LabelBox measures text with the fixed 7x13 face used for overlay text.
// Hosts subtract half the width from a label anchor to center it over its
// marker point.
func LabelBox(text string) (int, int) {
	face := basicfont.Face7x13
	d := font.Drawer{Face: face}
	adv := d.MeasureString(text)
	return adv.Round(), face.Metrics().Height.Round()
}

// CenteredAnchor shifts a label anchor so the text centers on x and sits
// above y by the face height.
func CenteredAnchor(x, y float64, text string) (float64, float64) {
	w, h := LabelBox(text)
	return x - float64(w)/2, y - float64(h)
}

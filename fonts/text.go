package fonts

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// Text is the shared base for anything that lays out labels on a surface.
// It carries the face, the line step, the default and highlight colors and
// the size of the surface being drawn on.
type Text struct {
	Face        font.Face
	FontSize    int
	TextColor   color.Color
	ActiveColor color.Color
	Width       int
	Height      int
}

// Measure returns the pixel size a label occupies: advance width and line height.
func (t *Text) Measure(s string) image.Point {
	_, advance := font.BoundString(t.Face, s)
	return image.Pt(advance.Ceil(), t.LineHeight())
}

// LineHeight is the face's recommended distance between baselines.
func (t *Text) LineHeight() int {
	return t.Face.Metrics().Height.Ceil()
}

// Ascent is the distance from the top of a line to its baseline.
func (t *Text) Ascent() int {
	return t.Face.Metrics().Ascent.Ceil()
}

// ColorFor picks the highlight color for the active entry and the default otherwise.
func (t *Text) ColorFor(active bool) color.Color {
	if active {
		return t.ActiveColor
	}
	return t.TextColor
}

package paraster

import "strconv"

import "github.com/tinne26/paraster/font"
import "github.com/tinne26/paraster/fract"

// A position or offset in pixels. Y grows downwards.
type Point struct {
	X, Y float32
}

// Converts the point to fixed point coordinates.
func (self Point) Fract() fract.Point {
	return fract.Float32sToPoint(self.X, self.Y)
}

func (self Point) String() string {
	x := strconv.FormatFloat(float64(self.X), 'f', 2, 32)
	y := strconv.FormatFloat(float64(self.Y), 'f', 2, 32)
	return "(" + x + ", " + y + ")"
}

// A glyph placed on the output image. The position refers to the
// glyph origin on the baseline.
type Glyph struct {
	Index    font.GlyphIndex
	Position Point
}

package fract

import "image"
import "strconv"

// A pair of [Unit] coordinates. Commonly used during rendering
// processes to keep track of the pen position within the rendering
// target.
type Point struct {
	X Unit
	Y Unit
}

// Creates a point from a pair of units.
func UnitsToPoint(x, y Unit) Point {
	return Point{ X: x, Y: y }
}

// Creates a point from a pair of float32 pixel coordinates.
func Float32sToPoint(x, y float32) Point {
	return Point{ X: FromFloat32(x), Y: FromFloat32(y) }
}

// Returns the point with both coordinates floored to whole pixels.
// Together with [Point.FractShift](), it splits a pen position into
// the pixel where a glyph mask must be placed and the subpixel offset
// that must be used when rasterizing it.
func (self Point) Floor() Point {
	return Point{ X: self.X.Floor(), Y: self.Y.Floor() }
}

// Returns the fractional parts of both coordinates. See [Unit.FractShift]().
func (self Point) FractShift() Point {
	return Point{ X: self.X.FractShift(), Y: self.Y.FractShift() }
}

// Converts the point to an [image.Point] by flooring both coordinates.
func (self Point) ImagePointFloor() image.Point {
	return image.Pt(self.X.ToIntFloor(), self.Y.ToIntFloor())
}

// Returns the point coordinates as a pair of float64s.
func (self Point) ToFloat64s() (x, y float64) {
	return self.X.ToFloat64(), self.Y.ToFloat64()
}

// Returns the point coordinates as a pair of float32s.
func (self Point) ToFloat32s() (x, y float32) {
	return self.X.ToFloat32(), self.Y.ToFloat32()
}

// Returns the result of adding the two points.
func (self Point) AddPoint(point Point) Point {
	self.X += point.X
	self.Y += point.Y
	return self
}

// Returns a textual representation of the point (e.g.: "(2.5, -4)").
func (self Point) String() string {
	x := strconv.FormatFloat(self.X.ToFloat64(), 'f', -1, 64)
	y := strconv.FormatFloat(self.Y.ToFloat64(), 'f', -1, 64)
	return "(" + x + ", " + y + ")"
}

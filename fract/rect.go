package fract

import "image"

import "golang.org/x/image/math/fixed"

// A pair of [Point] values defining a rectangular region.
// Like [image.Rectangle], the Max point is not included
// in the rectangle.
type Rect struct {
	Min Point
	Max Point
}

// Creates a rect from a [fixed.Rectangle26_6], like the ones
// returned by sfnt.Segments.Bounds().
func FromFixedRect(rect fixed.Rectangle26_6) Rect {
	return Rect{
		Min: UnitsToPoint(Unit(rect.Min.X), Unit(rect.Min.Y)),
		Max: UnitsToPoint(Unit(rect.Max.X), Unit(rect.Max.Y)),
	}
}

// Returns the smallest [image.Rectangle] containing the rect.
func (self Rect) ImageRect() image.Rectangle {
	return image.Rect(
		self.Min.X.ToIntFloor(), self.Min.Y.ToIntFloor(),
		self.Max.X.ToIntCeil(), self.Max.Y.ToIntCeil(),
	)
}

// Returns the rect width.
func (self Rect) Width() Unit { return self.Max.X - self.Min.X }

// Returns the rect height.
func (self Rect) Height() Unit { return self.Max.Y - self.Min.Y }

// Returns whether the rect is empty.
func (self Rect) Empty() bool {
	return self.Min.X >= self.Max.X || self.Min.Y >= self.Max.Y
}

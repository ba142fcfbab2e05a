package mask

import "image"

// Coverage exposes a glyph mask as per pixel coverage values
// in [0, 1]. The zero value is an empty coverage.
type Coverage struct {
	alpha *image.Alpha
}

// Wraps the given alpha mask. A nil mask results in an empty coverage.
func NewCoverage(alpha *image.Alpha) Coverage {
	return Coverage{ alpha: alpha }
}

// Returns the underlying alpha mask, which may be nil.
func (self Coverage) Alpha() *image.Alpha { return self.alpha }

// Returns the pixel rectangle covered by the mask.
func (self Coverage) Bounds() image.Rectangle {
	if self.alpha == nil { return image.Rectangle{} }
	return self.alpha.Rect
}

// Returns whether the mask has no pixels.
func (self Coverage) Empty() bool {
	return self.Bounds().Empty()
}

// Returns the coverage at the given absolute pixel position,
// or zero if the position falls outside the bounds.
func (self Coverage) At(x, y int) float32 {
	if !image.Pt(x, y).In(self.Bounds()) { return 0 }
	return float32(self.alpha.AlphaAt(x, y).A)/255.0
}

// Calls fn for every pixel within the bounds, including pixels
// without coverage. Coordinates are relative to Bounds().Min.
func (self Coverage) Each(fn func(x, y int, v float32)) {
	bounds := self.Bounds()
	for y := 0; y < bounds.Dy(); y++ {
		row := self.alpha.Pix[y*self.alpha.Stride:]
		for x := 0; x < bounds.Dx(); x++ {
			fn(x, y, float32(row[x])/255.0)
		}
	}
}

package mask

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/font/sfnt"
import "github.com/tinne26/paraster/fract"

var _ Rasterizer = (*DefaultRasterizer)(nil)

// The DefaultRasterizer adapts [golang.org/x/image/vector.Rasterizer]
// to the [Rasterizer] interface. The zero value is ready to use.
type DefaultRasterizer struct {
	rasterizer vector.Rasterizer

	// the vector rasterizer only accepts coordinates in the
	// positive quadrant, so outline points are shifted
	shift fract.Point
}

// Satisfies the [Rasterizer] interface. The signature of the
// default rasterizer is always zero.
func (self *DefaultRasterizer) Signature() uint64 { return 0 }

// Moves the current position to the given point.
func (self *DefaultRasterizer) MoveTo(point fract.Point) {
	self.rasterizer.MoveTo(point.AddPoint(self.shift).ToFloat32s())
}

// Creates a straight boundary from the current position to the given point.
func (self *DefaultRasterizer) LineTo(point fract.Point) {
	self.rasterizer.LineTo(point.AddPoint(self.shift).ToFloat32s())
}

// Creates a quadratic Bézier curve to the given target passing
// through the given control point.
func (self *DefaultRasterizer) QuadTo(control, target fract.Point) {
	cx, cy := control.AddPoint(self.shift).ToFloat32s()
	tx, ty := target.AddPoint(self.shift).ToFloat32s()
	self.rasterizer.QuadTo(cx, cy, tx, ty)
}

// Creates a cubic Bézier curve to the given target passing through
// the given control points.
func (self *DefaultRasterizer) CubeTo(controlA, controlB, target fract.Point) {
	ax, ay := controlA.AddPoint(self.shift).ToFloat32s()
	bx, by := controlB.AddPoint(self.shift).ToFloat32s()
	tx, ty := target.AddPoint(self.shift).ToFloat32s()
	self.rasterizer.CubeTo(ax, ay, bx, by, tx, ty)
}

// Satisfies the [Rasterizer] interface.
func (self *DefaultRasterizer) Rasterize(outline sfnt.Segments, origin fract.Point) (*image.Alpha, error) {
	width, height, shift, offset := maskPlacement(outlineBounds(outline), origin)
	self.shift = shift
	self.rasterizer.Reset(width, height)
	self.rasterizer.DrawOp = draw.Src

	mask := image.NewAlpha(self.rasterizer.Bounds())
	traceOutline(self, outline)

	// the source is uniform, so the sampling point is irrelevant
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = mask.Rect.Add(offset)
	return mask, nil
}

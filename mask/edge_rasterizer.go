package mask

import "image"

import "golang.org/x/image/font/sfnt"
import "github.com/tinne26/paraster/fract"

var _ Rasterizer = (*EdgeMarkerRasterizer)(nil)

// An alternative to [DefaultRasterizer] that doesn't depend on
// [golang.org/x/image/vector]. Results are visually very similar,
// but the process is slower.
//
// Outline boundaries are marked on an accumulation buffer with the
// signed vertical distance they advance through each pixel, and the
// buffer is then accumulated row by row into coverage values.
//
// The zero value produces jaggy curves, as curve segmentation isn't
// configured. Use [NewEdgeMarkerRasterizer]() for reasonable defaults.
type EdgeMarkerRasterizer struct {
	marker edgeMarker
	shift  fract.Point
}

// Creates an [EdgeMarkerRasterizer] with a curve threshold of 0.1
// and a maximum of 8 curve splits.
func NewEdgeMarkerRasterizer() *EdgeMarkerRasterizer {
	rasterizer := &EdgeMarkerRasterizer{}
	rasterizer.SetCurveThreshold(0.1)
	rasterizer.SetMaxCurveSplits(8)
	return rasterizer
}

// Sets the distance threshold used when splitting Bézier curves into
// lines. If a line misses the curve by more than the threshold, the
// curve is split again.
//
// Reasonable values range from 0.01 to 1.0. Values outside [0, 6.5]
// are clamped and precision is truncated to three decimal places.
func (self *EdgeMarkerRasterizer) SetCurveThreshold(threshold float64) {
	self.marker.Curves.SetThreshold(threshold)
}

// Sets the maximum recursion depth when splitting a curve. A curve
// is approximated by at most 2^maxCurveSplits lines. Values outside
// [0, 255] are clamped.
func (self *EdgeMarkerRasterizer) SetMaxCurveSplits(maxCurveSplits int) {
	self.marker.Curves.SetMaxSplits(maxCurveSplits)
}

// Satisfies the [Rasterizer] interface. The signature has the
// following shape:
//   - 0x00FF000000000000 bits are 0xE6.
//   - 0x0000000000FFFFFF bits store the curve segmentation config.
//   - Other bits are zero.
func (self *EdgeMarkerRasterizer) Signature() uint64 {
	return 0x00E6000000000000 | self.marker.Curves.Signature()
}

func (self *EdgeMarkerRasterizer) MoveTo(point fract.Point) {
	self.marker.MoveTo(point.AddPoint(self.shift).ToFloat64s())
}

func (self *EdgeMarkerRasterizer) LineTo(point fract.Point) {
	self.marker.LineTo(point.AddPoint(self.shift).ToFloat64s())
}

func (self *EdgeMarkerRasterizer) QuadTo(control, target fract.Point) {
	cx, cy := control.AddPoint(self.shift).ToFloat64s()
	tx, ty := target.AddPoint(self.shift).ToFloat64s()
	self.marker.QuadTo(cx, cy, tx, ty)
}

func (self *EdgeMarkerRasterizer) CubeTo(controlA, controlB, target fract.Point) {
	ax, ay := controlA.AddPoint(self.shift).ToFloat64s()
	bx, by := controlB.AddPoint(self.shift).ToFloat64s()
	tx, ty := target.AddPoint(self.shift).ToFloat64s()
	self.marker.CubeTo(ax, ay, bx, by, tx, ty)
}

// Satisfies the [Rasterizer] interface.
func (self *EdgeMarkerRasterizer) Rasterize(outline sfnt.Segments, origin fract.Point) (*image.Alpha, error) {
	width, height, shift, offset := maskPlacement(outlineBounds(outline), origin)
	self.shift = shift
	self.marker.Buffer.Resize(width, height)
	traceOutline(self, outline)

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	self.marker.Buffer.AccumulateTo(mask.Pix)
	mask.Rect = mask.Rect.Add(offset)
	return mask, nil
}

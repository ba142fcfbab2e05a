package mask

import "image"
import "strconv"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import "github.com/tinne26/paraster/fract"

// Rasterizer is an interface for glyph outline rasterization to an
// alpha mask. It's an open alternative to the concrete
// [golang.org/x/image/vector.Rasterizer] type, so anyone can plug
// their own algorithm into the compositing process.
//
// Mask rasterizers can't be used concurrently and must tolerate
// coordinates out of bounds.
type Rasterizer interface {
	// Rasterizes the given outline to an alpha mask. The outline must
	// be drawn at the given fractional position. Only the fractional
	// part of each coordinate is considered.
	Rasterize(sfnt.Segments, fract.Point) (*image.Alpha, error)

	// Returns a value that glyph caches use to tell rasterizers
	// (and their configurations) apart. Two rasterizers that may
	// produce different masks for the same outline must have
	// different signatures.
	Signature() uint64
}

type tracer interface {
	MoveTo(fract.Point)
	LineTo(fract.Point)
	QuadTo(control, target fract.Point)
	CubeTo(controlA, controlB, target fract.Point)
}

// Rasterizes the given outline with the given rasterizer.
//
// Returned masks have their bounds adjusted so the mask is drawn at
// origin (0, 0) plus the fractional part of the given dot. To draw it
// at a specific pen position, translate the mask by the floored
// position (see [fract.Point.ImagePointFloor]()).
//
// The returned mask will be nil if the outline doesn't include any
// lines or curves (e.g.: the glyph for a space).
func Rasterize(outline sfnt.Segments, rasterizer Rasterizer, dot fract.Point) (*image.Alpha, error) {
	if !hasContours(outline) { return nil, nil }
	return rasterizer.Rasterize(outline, dot.FractShift())
}

// Returns the bounds of the mask that [Rasterize]() would produce
// for the given outline and dot, already translated by the floored
// dot. In other words, the pixels that drawing the glyph at the
// given pen position can touch. The result is empty if the outline
// doesn't include any lines or curves.
//
// All the rasterizers in this package respect these bounds.
func Bounds(outline sfnt.Segments, dot fract.Point) image.Rectangle {
	if !hasContours(outline) { return image.Rectangle{} }
	width, height, _, offset := maskPlacement(outlineBounds(outline), dot.FractShift())
	rect := image.Rect(0, 0, width, height).Add(offset)
	return rect.Add(dot.ImagePointFloor())
}

func hasContours(outline sfnt.Segments) bool {
	for _, segment := range outline {
		if segment.Op != sfnt.SegmentOpMoveTo { return true }
	}
	return false
}

// Sends each segment of the outline to the given tracer.
func traceOutline(target tracer, outline sfnt.Segments) {
	for _, segment := range outline {
		args := &segment.Args
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			target.MoveTo(argPoint(args, 0))
		case sfnt.SegmentOpLineTo:
			target.LineTo(argPoint(args, 0))
		case sfnt.SegmentOpQuadTo:
			target.QuadTo(argPoint(args, 0), argPoint(args, 1))
		case sfnt.SegmentOpCubeTo:
			target.CubeTo(argPoint(args, 0), argPoint(args, 1), argPoint(args, 2))
		default:
			panic("unexpected segment op " + strconv.Itoa(int(segment.Op)))
		}
	}
}

func argPoint(args *[3]fixed.Point26_6, i int) fract.Point {
	return fract.UnitsToPoint(fract.Unit(args[i].X), fract.Unit(args[i].Y))
}

// Returns the outline bounds as a fract.Rect.
func outlineBounds(outline sfnt.Segments) fract.Rect {
	return fract.FromFixedRect(outline.Bounds())
}

// Given the outline bounds and the fractional origin, returns the
// size of the mask, the offset that must be added to outline points
// so they fall inside the mask, and the final translation that aligns
// the mask with the glyph origin.
func maskPlacement(bounds fract.Rect, origin fract.Point) (width, height int, shift fract.Point, offset image.Point) {
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	offset = image.Pt(minX.ToIntFloor(), minY.ToIntFloor())
	shift.X = origin.X.FractShift() - minX
	shift.Y = origin.Y.FractShift() - minY
	width  = (bounds.Max.X + shift.X).ToIntCeil()
	height = (bounds.Max.Y + shift.Y).ToIntCeil()
	if width  < 1 { width  = 1 }
	if height < 1 { height = 1 }
	return width, height, shift, offset
}

package paraster

import "image"
import "math"

import "github.com/tinne26/paraster/font"
import "github.com/tinne26/paraster/mask"

// Computes the canvas size required to draw the given glyphs with
// the given padding on each side.
//
// The width goes from the leftmost glyph position to the furthest
// glyph advance. The height goes from the top of the first line to
// the bottom of the last one. For single line text this is simply
// the face height. Without glyphs, the result is the padding plus
// the height of a single line.
//
// When glyph masks extend further right or down than that box (e.g.
// overhanging italics or small paddings) the size grows to contain
// them plus the padding. Masks starting at negative coordinates can't
// be contained by growing the canvas. See [ShiftIntoCanvas]().
func CanvasSize(face font.Scaled, glyphs []Glyph, padding int) (width, height int) {
	lineHeight := face.Height()
	if len(glyphs) == 0 {
		return 2*padding, ceilInt(lineHeight) + 2*padding
	}

	minX, maxX := float32(math.Inf(1)), float32(math.Inf(-1))
	minY, maxY := glyphs[0].Position.Y, glyphs[0].Position.Y
	for _, glyph := range glyphs {
		minX = min(minX, glyph.Position.X)
		maxX = max(maxX, glyph.Position.X + face.Advance(glyph.Index))
		minY = min(minY, glyph.Position.Y)
		maxY = max(maxY, glyph.Position.Y)
	}
	width  = ceilInt(maxX - minX) + 2*padding
	height = ceilInt(maxY - minY + lineHeight) + 2*padding
	if ink := InkBounds(face, glyphs); !ink.Empty() {
		width  = max(width , ink.Max.X + padding)
		height = max(height, ink.Max.Y + padding)
	}
	return width, height
}

// Returns the union of the pixel bounds of the glyph masks, as
// they would be placed by [Composite]().
func InkBounds(face font.Scaled, glyphs []Glyph) image.Rectangle {
	var bounds image.Rectangle
	for _, glyph := range glyphs {
		outline := glyphOutline(face, glyph.Index)
		bounds = bounds.Union(mask.Bounds(outline, glyph.Position.Fract()))
	}
	return bounds
}

// Translates the glyphs by whole pixels, right and down, so that
// none of their masks starts at negative coordinates. Glyphs with
// ink left of their pen position (like a 'j') or above the ascent
// (like an 'Å') may need this when laid out near the origin.
// Returns the applied offset.
func ShiftIntoCanvas(face font.Scaled, glyphs []Glyph) image.Point {
	ink := InkBounds(face, glyphs)
	offset := image.Pt(max(0, -ink.Min.X), max(0, -ink.Min.Y))
	if offset == (image.Point{}) { return offset }
	shiftX, shiftY := float32(offset.X), float32(offset.Y)
	for i := range glyphs {
		glyphs[i].Position.X += shiftX
		glyphs[i].Position.Y += shiftY
	}
	return offset
}

// Creates a fully transparent canvas with the given size.
func NewCanvas(width, height int) *image.NRGBA {
	if width < 0 || height < 0 { panic("negative canvas size") }
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

func ceilInt(value float32) int {
	return int(math.Ceil(float64(value)))
}

package paraster

import "image"
import "image/color"
import "strconv"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/paraster/font"
import "github.com/tinne26/paraster/mask"

// Rasterizes the given glyphs with the given rasterizer and
// accumulates their coverage on the canvas. For every pixel within
// a glyph mask, the alpha is increased by the mask coverage (and
// saturates at 255), while the RGB channels are overwritten with
// the given color.
//
// The canvas must contain all the glyph masks. Use [CanvasSize]()
// with the same glyphs. Masks falling outside the canvas bounds
// will panic.
func Composite(canvas *image.NRGBA, glyphs []Glyph, face font.Scaled, rasterizer mask.Rasterizer, rgb color.NRGBA) {
	for _, glyph := range glyphs {
		alpha := rasterizeGlyph(face, rasterizer, glyph)
		compositeMask(canvas, placeMask(alpha, glyph.Position), rgb)
	}
}

func rasterizeGlyph(face font.Scaled, rasterizer mask.Rasterizer, glyph Glyph) *image.Alpha {
	outline := glyphOutline(face, glyph.Index)
	alpha, err := mask.Rasterize(outline, rasterizer, glyph.Position.Fract())
	if err != nil { panic("mask.Rasterize error: " + err.Error()) }
	return alpha
}

func glyphOutline(face font.Scaled, index font.GlyphIndex) sfnt.Segments {
	outline, err := face.Outline(index)
	if err != nil {
		// missing glyphs are mapped to notdef during layout, so
		// this can only be caused by invalid indices
		panic("face.Outline(index = " + strconv.Itoa(int(index)) + ") error: " + err.Error())
	}
	return outline
}

// Returns the coverage of the mask translated to the whole pixel
// part of the given position. The mask itself isn't modified, as
// it may be shared through a cache.
func placeMask(alpha *image.Alpha, position Point) mask.Coverage {
	if alpha == nil { return mask.Coverage{} }
	placed := *alpha
	placed.Rect = alpha.Rect.Add(position.Fract().ImagePointFloor())
	return mask.NewCoverage(&placed)
}

func compositeMask(canvas *image.NRGBA, coverage mask.Coverage, rgb color.NRGBA) {
	bounds := coverage.Bounds()
	if !bounds.In(canvas.Rect) {
		panic("glyph mask " + bounds.String() + " outside canvas " + canvas.Rect.String())
	}

	coverage.Each(func(x, y int, v float32) {
		offset := canvas.PixOffset(bounds.Min.X + x, bounds.Min.Y + y)
		pixel := canvas.Pix[offset : offset + 4 : offset + 4]
		pixel[0], pixel[1], pixel[2] = rgb.R, rgb.G, rgb.B
		pixel[3] = saturatingAdd(pixel[3], coverageToAlpha(v))
	})
}

// Truncates v*255 to [0, 255]. The small bias keeps coverage values
// that come from 8-bit masks stable through float32 conversions.
func coverageToAlpha(v float32) uint8 {
	scaled := v*255 + 0.001
	if scaled <= 0 { return 0 }
	if scaled >= 255 { return 255 }
	return uint8(scaled)
}

func saturatingAdd(a, b uint8) uint8 {
	if sum := uint16(a) + uint16(b); sum < 255 { return uint8(sum) }
	return 255
}

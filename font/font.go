package font

import "golang.org/x/image/font/sfnt"

// Glyph indices are the opaque glyph identities assigned by a font
// to each character. Index 0 is always the font's notdef glyph.
type GlyphIndex = sfnt.GlyphIndex

// Maps characters to glyphs. Characters not present in the font must
// be mapped to the notdef glyph (index 0) instead of failing.
type GlyphMapper interface {
	GlyphIndex(codePoint rune) GlyphIndex
}

// Font metrics at a fixed scale, in pixels.
type Metrics interface {
	// Distance from the top of a line to its baseline.
	Ascent() float32

	// Distance from the baseline to the bottom of a line, as
	// a positive value.
	Descent() float32

	// Additional spacing between the bottom of a line and the
	// top of the next one.
	LineGap() float32

	// Intrinsic line height, equivalent to Ascent() + Descent().
	Height() float32
}

// Provides horizontal advances for glyphs at a fixed scale.
type Advancer interface {
	Advance(GlyphIndex) float32
}

// Provides the horizontal kerning adjustment to apply between two
// consecutive glyphs. Negative values bring the glyphs closer.
type Kerner interface {
	Kern(prev, next GlyphIndex) float32
}

// Provides glyph outlines at a fixed scale, with y growing downwards
// and relative to the pen position (baseline origin).
//
// The returned segments may be backed by internal buffers and are
// only valid until the next call to any method of the font service.
type Outliner interface {
	Outline(GlyphIndex) (sfnt.Segments, error)
}

// Scaled groups all the capabilities of a font service bound to a
// specific scale. [Face] is the main implementation, and the sizer
// subpackage offers decorators to adjust spacing.
type Scaled interface {
	GlyphMapper
	Metrics
	Advancer
	Kerner
	Outliner
}

// A parsed font along with its original data and name.
//
// The data must not be modified while the font is in use.
type Font struct {
	sfnt *sfnt.Font
	data []byte
	name string
}

// Returns the underlying [sfnt.Font].
func (self *Font) Sfnt() *sfnt.Font { return self.sfnt }

// Returns the raw font data.
func (self *Font) Bytes() []byte { return self.data }

// Returns the font name. May be empty if the font doesn't
// include naming information.
func (self *Font) Name() string { return self.name }

// Returns the number of glyphs in the font.
func (self *Font) NumGlyphs() int { return self.sfnt.NumGlyphs() }

// Creates a new [Face] for the font at the given size, in pixels
// per em. The size must be strictly positive.
func (self *Font) Face(size float32) *Face {
	return newFace(self, size)
}

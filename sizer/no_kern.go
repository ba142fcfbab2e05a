package sizer

import "github.com/tinne26/paraster/font"

var _ font.Scaled = (*NoKernSizer)(nil)

// A sizer that disables kerning. This can be useful for monospaced
// effects or when comparing layouts with and without kerning.
type NoKernSizer struct {
	wrapped
}

// Wraps the given font service disabling kerning.
func NoKern(face font.Scaled) *NoKernSizer {
	if face == nil { panic("can't wrap a nil font service") }
	return &NoKernSizer{ wrapped{ face } }
}

// Satisfies the [font.Kerner] interface. Always returns zero.
func (self *NoKernSizer) Kern(font.GlyphIndex, font.GlyphIndex) float32 {
	return 0
}

package sizer

import "github.com/tinne26/paraster/font"

var _ font.Scaled = (*PaddedAdvanceSizer)(nil)

// A sizer that adds a fixed horizontal padding to every glyph
// advance, also known as letter spacing or tracking. Negative
// values tighten the text.
//
// Notice that padding also applies to spaces.
type PaddedAdvanceSizer struct {
	wrapped
	padding float32
}

// Wraps the given font service adding the given padding, in pixels,
// to every advance.
func PaddedAdvance(face font.Scaled, padding float32) *PaddedAdvanceSizer {
	if face == nil { panic("can't wrap a nil font service") }
	return &PaddedAdvanceSizer{ wrapped: wrapped{ face }, padding: padding }
}

// Sets the configurable horizontal padding value.
func (self *PaddedAdvanceSizer) SetPadding(value float32) {
	self.padding = value
}

// Returns the configurable horizontal padding value.
func (self *PaddedAdvanceSizer) GetPadding() float32 {
	return self.padding
}

// Satisfies the [font.Advancer] interface.
func (self *PaddedAdvanceSizer) Advance(index font.GlyphIndex) float32 {
	return self.Scaled.Advance(index) + self.padding
}

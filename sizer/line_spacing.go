package sizer

import "github.com/tinne26/paraster/font"

var _ font.Scaled = (*LineSpacingSizer)(nil)

// A sizer that scales the distance between consecutive baselines.
// The font height is preserved, only the line gap is modified so
// that Height() + LineGap() becomes factor*(Height() + LineGap())
// of the wrapped font service.
//
// Factors that would make the line gap negative are allowed, and
// will make lines overlap.
type LineSpacingSizer struct {
	wrapped
	factor float32
}

// Wraps the given font service scaling line advances by the given
// factor. A factor of 1 leaves the spacing unchanged.
func LineSpacing(face font.Scaled, factor float32) *LineSpacingSizer {
	if face == nil { panic("can't wrap a nil font service") }
	return &LineSpacingSizer{ wrapped: wrapped{ face }, factor: factor }
}

// Returns the line spacing factor.
func (self *LineSpacingSizer) GetFactor() float32 { return self.factor }

// Satisfies the [font.Metrics] interface.
func (self *LineSpacingSizer) LineGap() float32 {
	advance := self.Scaled.Height() + self.Scaled.LineGap()
	return advance*self.factor - self.Scaled.Height()
}

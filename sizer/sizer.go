// The sizer subpackage provides decorators for [font.Scaled] values
// that adjust how much space each glyph takes.
//
// While font files already contain all the metrics needed to lay
// out text, wrapping the font service allows modifying spacing
// without touching the layout code: ignoring kerning, adding extra
// padding between letters or loosening the line spacing.
//
// All sizers delegate every capability they don't modify to the
// wrapped [font.Scaled], and can be freely stacked.
package sizer

import "github.com/tinne26/paraster/font"

// Common base for all the sizers in this package.
type wrapped struct {
	font.Scaled
}

// Returns the wrapped font service.
func (self wrapped) Unwrap() font.Scaled { return self.Scaled }

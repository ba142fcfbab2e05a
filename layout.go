package paraster

import "unicode"

import "github.com/tinne26/paraster/font"

// Lays out the given text as a paragraph starting at the given
// position, which refers to the top-left corner of the first line.
// The resulting glyphs are appended to target in reading order and
// the extended slice is returned.
//
// Line breaks are applied on '\n' and whenever a glyph that isn't
// whitespace makes the line exceed maxWidth. In the second case the
// offending glyph is moved to the start of the next line. Other
// control characters are skipped. Kerning is never applied to the
// first glyph of a line.
//
// Notice that after a wrap the caret isn't advanced past the moved
// glyph, so the next glyph is placed at the same position.
func LayoutParagraph(face font.Scaled, position Point, maxWidth float32, text string, target []Glyph) []Glyph {
	lineAdvance := face.Height() + face.LineGap()
	caret := Point{ X: position.X, Y: position.Y + face.Ascent() }
	lineBreak := func() {
		caret = Point{ X: position.X, Y: caret.Y + lineAdvance }
	}

	var prevIndex font.GlyphIndex
	hasPrev := false
	for _, codePoint := range text {
		if unicode.IsControl(codePoint) {
			if codePoint == '\n' {
				lineBreak()
				hasPrev = false
			}
			continue
		}

		index := face.GlyphIndex(codePoint)
		if hasPrev {
			caret.X += face.Kern(prevIndex, index)
		}
		glyph := Glyph{ Index: index, Position: caret }
		prevIndex, hasPrev = index, true
		caret.X += face.Advance(index)

		if !unicode.IsSpace(codePoint) && caret.X > position.X + maxWidth {
			lineBreak()
			glyph.Position = caret
			hasPrev = false
		}
		target = append(target, glyph)
	}
	return target
}

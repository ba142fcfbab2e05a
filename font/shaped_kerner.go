package font

import "bytes"
import "fmt"

import "golang.org/x/image/math/fixed"

import "github.com/go-text/typesetting/di"
import gotext "github.com/go-text/typesetting/font"
import "github.com/go-text/typesetting/language"
import "github.com/go-text/typesetting/shaping"

// A [ShapedKerner] obtains kerning values by running glyph pairs
// through the HarfBuzz shaper of [github.com/go-text/typesetting].
//
// sfnt only resolves kern tables and simple GPOS pair adjustments,
// while a shaper applies every positioning lookup a font defines.
// Since shapers work with text instead of glyph indices, the kerner
// needs the runes that produced each glyph.
//
// The kerning for a pair is the difference between the advance of
// the first glyph when shaped together with the second one and its
// advance when shaped alone. If shaping the pair doesn't produce the
// two expected glyphs (e.g., due to ligatures or substitutions) the
// kerning is zero.
//
// Results are memoized per pair. Shaped kerners can't be used
// concurrently.
type ShapedKerner struct {
	face *gotext.Face
	shaper shaping.HarfbuzzShaper
	size fixed.Int26_6
	pairs map[[2]GlyphIndex]float32
	singles map[GlyphIndex]fixed.Int26_6
	runes [2]rune
}

// Creates a new [ShapedKerner] for the given font data and size,
// in pixels per em.
func NewShapedKerner(fontBytes []byte, size float32) (*ShapedKerner, error) {
	if !(size > 0) { panic("shaped kerner size must be > 0") }
	face, err := gotext.ParseTTF(bytes.NewReader(fontBytes))
	if err != nil {
		return nil, fmt.Errorf("shaped kerner font parsing: %w", err)
	}
	return &ShapedKerner{
		face: face,
		size: fixed.Int26_6(size*64 + 0.5),
		pairs: make(map[[2]GlyphIndex]float32, 64),
		singles: make(map[GlyphIndex]fixed.Int26_6, 64),
	}, nil
}

// Returns the kerning between the prev and next glyphs, which must
// be the glyphs the given runes map to.
func (self *ShapedKerner) Kern(prev, next GlyphIndex, prevRune, nextRune rune) float32 {
	key := [2]GlyphIndex{prev, next}
	if kern, found := self.pairs[key]; found { return kern }

	kern := float32(0)
	alone, ok := self.singleAdvance(prev, prevRune)
	if ok {
		self.runes[0], self.runes[1] = prevRune, nextRune
		output := self.shape(self.runes[:2])
		if len(output.Glyphs) == 2 && GlyphIndex(output.Glyphs[0].GlyphID) == prev && GlyphIndex(output.Glyphs[1].GlyphID) == next {
			kern = float32(output.Glyphs[0].Advance - alone)/64.0
		}
	}
	self.pairs[key] = kern
	return kern
}

// Returns the number of memoized pairs.
func (self *ShapedKerner) NumCachedPairs() int { return len(self.pairs) }

func (self *ShapedKerner) singleAdvance(index GlyphIndex, codePoint rune) (fixed.Int26_6, bool) {
	if advance, found := self.singles[index]; found { return advance, true }
	self.runes[0] = codePoint
	output := self.shape(self.runes[:1])
	if len(output.Glyphs) != 1 || GlyphIndex(output.Glyphs[0].GlyphID) != index {
		return 0, false
	}
	advance := output.Glyphs[0].Advance
	self.singles[index] = advance
	return advance, true
}

func (self *ShapedKerner) shape(text []rune) shaping.Output {
	return self.shaper.Shape(self.input(text))
}

// The language is left empty so the shaper applies the font's
// default language system, like it does for untagged text.
func (self *ShapedKerner) input(text []rune) shaping.Input {
	return shaping.Input{
		Text:      text,
		RunStart:  0,
		RunEnd:    len(text),
		Direction: di.DirectionLTR,
		Face:      self.face,
		Size:      self.size,
		Script:    language.LookupScript(text[0]),
	}
}

package font

import "strconv"

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

var _ Scaled = (*Face)(nil)

// Kerning modes for a [Face].
type KerningMode uint8

const (
	// Uses the font tables read by sfnt (kern and GPOS pair
	// adjustments) and falls back to [KernShaped] for the pairs
	// that sfnt can't resolve.
	KernAuto KerningMode = iota

	// Uses only the font tables read by sfnt.
	KernTable

	// Uses a [ShapedKerner] to obtain kerning values through
	// a full text shaper.
	KernShaped

	// Disables kerning.
	KernNone
)

// Returns the kerning mode name ("auto", "table", "shaped" or "none").
func (self KerningMode) String() string {
	switch self {
	case KernAuto   : return "auto"
	case KernTable  : return "table"
	case KernShaped : return "shaped"
	case KernNone   : return "none"
	default:
		return "KerningMode(" + strconv.Itoa(int(self)) + ")"
	}
}

// Parses a kerning mode from its name. See [KerningMode.String]().
func ParseKerningMode(name string) (KerningMode, bool) {
	switch name {
	case "auto"   : return KernAuto, true
	case "table"  : return KernTable, true
	case "shaped" : return KernShaped, true
	case "none"   : return KernNone, true
	default:
		return KernAuto, false
	}
}

// A [Font] bound to a specific size. Face implements the [Scaled]
// interface on top of [sfnt.Font].
//
// Faces can't be used concurrently, as they reuse an internal
// [sfnt.Buffer] for all operations.
type Face struct {
	font *Font
	buffer sfnt.Buffer
	size fixed.Int26_6

	ascent  float32
	descent float32
	lineGap float32

	kerning KerningMode
	shaped *ShapedKerner
	shapedErr error
	runes map[GlyphIndex]rune // reverse mapping for shaped kerning
}

func newFace(fnt *Font, size float32) *Face {
	if fnt == nil { panic("can't create a face from a nil font") }
	if !(size > 0) { panic("face size must be > 0") }

	face := &Face{
		font: fnt,
		size: fixed.Int26_6(size*64 + 0.5),
		runes: make(map[GlyphIndex]rune, 64),
	}
	if face.size == 0 { face.size = 1 }

	metrics, err := fnt.sfnt.Metrics(&face.buffer, face.size, font.HintingNone)
	if err != nil { panic("font.Metrics error: " + err.Error()) }
	face.ascent  = fixedToFloat32(metrics.Ascent)
	face.descent = fixedToFloat32(metrics.Descent)
	lineGap := metrics.Height - metrics.Ascent - metrics.Descent
	if lineGap < 0 { lineGap = 0 }
	face.lineGap = fixedToFloat32(lineGap)
	return face
}

// Returns the font the face was created from.
func (self *Face) Font() *Font { return self.font }

// Returns the face size, in pixels per em.
func (self *Face) Size() float32 { return fixedToFloat32(self.size) }

// Sets the kerning mode. The default is [KernAuto].
func (self *Face) SetKerning(mode KerningMode) {
	if mode > KernNone { panic("invalid kerning mode " + mode.String()) }
	self.kerning = mode
}

// Returns the current kerning mode.
func (self *Face) GetKerning() KerningMode { return self.kerning }

// Satisfies the [Metrics] interface.
func (self *Face) Ascent() float32 { return self.ascent }

// Satisfies the [Metrics] interface.
func (self *Face) Descent() float32 { return self.descent }

// Satisfies the [Metrics] interface.
func (self *Face) LineGap() float32 { return self.lineGap }

// Satisfies the [Metrics] interface.
func (self *Face) Height() float32 { return self.ascent + self.descent }

// Satisfies the [GlyphMapper] interface. Characters missing from
// the font (or that can't be looked up) map to the notdef glyph.
func (self *Face) GlyphIndex(codePoint rune) GlyphIndex {
	index, err := self.font.sfnt.GlyphIndex(&self.buffer, codePoint)
	if err != nil { return 0 }
	if index != 0 {
		if _, seen := self.runes[index]; !seen {
			self.runes[index] = codePoint
		}
	}
	return index
}

// Satisfies the [Advancer] interface.
func (self *Face) Advance(index GlyphIndex) float32 {
	advance, err := self.font.sfnt.GlyphAdvance(&self.buffer, index, self.size, font.HintingNone)
	if err == nil { return fixedToFloat32(advance) }
	panic("font.GlyphAdvance(index = " + strconv.Itoa(int(index)) + ") error: " + err.Error())
}

// Satisfies the [Kerner] interface.
func (self *Face) Kern(prev, next GlyphIndex) float32 {
	switch self.kerning {
	case KernNone:
		return 0
	case KernShaped:
		return self.shapedKern(prev, next)
	case KernTable:
		kern, _ := self.tableKern(prev, next)
		return kern
	default: // KernAuto
		kern, found := self.tableKern(prev, next)
		if found { return kern }
		return self.shapedKern(prev, next)
	}
}

// Returns the kerning from the font tables and whether sfnt could
// resolve the pair.
func (self *Face) tableKern(prev, next GlyphIndex) (float32, bool) {
	kern, err := self.font.sfnt.Kern(&self.buffer, prev, next, self.size, font.HintingNone)
	if err == nil { return fixedToFloat32(kern), true }
	if err == sfnt.ErrNotFound {
		numGlyphs := GlyphIndex(self.font.sfnt.NumGlyphs())
		if prev >= numGlyphs || next >= numGlyphs {
			msg := "font.Kern failed for glyphs with indices "
			msg += strconv.Itoa(int(prev)) + " and " + strconv.Itoa(int(next))
			panic(msg + ": glyph index out of range")
		}
		return 0, false
	}

	msg := "font.Kern failed for glyphs with indices "
	msg += strconv.Itoa(int(prev)) + " and "
	msg += strconv.Itoa(int(next)) + ": " + err.Error()
	panic(msg)
}

func (self *Face) shapedKern(prev, next GlyphIndex) float32 {
	if self.shaped == nil {
		if self.shapedErr != nil { return 0 }
		self.shaped, self.shapedErr = NewShapedKerner(self.font.data, self.Size())
		if self.shapedErr != nil { return 0 }
	}

	prevRune, found := self.runes[prev]
	if !found { return 0 }
	nextRune, found := self.runes[next]
	if !found { return 0 }
	return self.shaped.Kern(prev, next, prevRune, nextRune)
}

// Satisfies the [Outliner] interface. The returned segments are only
// valid until the next call to any of the face methods.
func (self *Face) Outline(index GlyphIndex) (sfnt.Segments, error) {
	return self.font.sfnt.LoadGlyph(&self.buffer, index, self.size, nil)
}

func fixedToFloat32(value fixed.Int26_6) float32 {
	return float32(value)/64.0
}

package paraster

import "testing"

import "golang.org/x/image/font/gofont/goregular"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/paraster/font"

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}

func regularFont(t *testing.T) *font.Font {
	t.Helper()
	fnt, err := font.ParseFromBytes(goregular.TTF)
	if err != nil { t.Fatal(err) }
	return fnt
}

// A font service with round metrics for layout tests. It maps
// 'A' to 1, 'B' to 2 and ' ' to 3. Everything else is notdef.
type testFace struct {
	kerns map[[2]font.GlyphIndex]float32
}

var _ font.Scaled = (*testFace)(nil)

func (self *testFace) GlyphIndex(codePoint rune) font.GlyphIndex {
	switch codePoint {
	case 'A': return 1
	case 'B': return 2
	case ' ': return 3
	default : return 0
	}
}

func (self *testFace) Ascent() float32  { return 10 }
func (self *testFace) Descent() float32 { return 4 }
func (self *testFace) LineGap() float32 { return 2 }
func (self *testFace) Height() float32  { return 14 }

func (self *testFace) Advance(index font.GlyphIndex) float32 {
	switch index {
	case 1: return 12
	case 2: return 10
	case 3: return 6
	default: return 8
	}
}

func (self *testFace) Kern(prev, next font.GlyphIndex) float32 {
	return self.kerns[[2]font.GlyphIndex{prev, next}]
}

// Glyphs are 4x8 boxes standing on the baseline, except the space.
func (self *testFace) Outline(index font.GlyphIndex) (sfnt.Segments, error) {
	if index == 3 { return nil, nil }
	return boxOutline(0, -8, 4, 0), nil
}

// Like testFace, but glyph boxes overhang the advance on both sides
// and go beyond the ascent and descent.
type overhangFace struct { testFace }

func (self *overhangFace) Outline(index font.GlyphIndex) (sfnt.Segments, error) {
	if index == 3 { return nil, nil }
	return boxOutline(-3, -14, 15, 5), nil
}

func boxOutline(minX, minY, maxX, maxY int) sfnt.Segments {
	pt := func(x, y int) [3]fixed.Point26_6 {
		return [3]fixed.Point26_6{ fixed.P(x, y) }
	}
	return sfnt.Segments{
		{ Op: sfnt.SegmentOpMoveTo, Args: pt(minX, minY) },
		{ Op: sfnt.SegmentOpLineTo, Args: pt(minX, maxY) },
		{ Op: sfnt.SegmentOpLineTo, Args: pt(maxX, maxY) },
		{ Op: sfnt.SegmentOpLineTo, Args: pt(maxX, minY) },
		{ Op: sfnt.SegmentOpLineTo, Args: pt(minX, minY) },
	}
}

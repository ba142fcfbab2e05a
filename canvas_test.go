package paraster

import "image"
import "image/color"
import "math"
import "testing"

import "github.com/tinne26/paraster/mask"

func TestCanvasSize(t *testing.T) {
	face := &testFace{}
	tests := []struct {
		name   string
		glyphs []Glyph
		width  int
		height int
	}{
		{ "empty", nil, 40, 54 },
		{ "single line", []Glyph{ {1, Point{20, 30}}, {2, Point{30.5, 30}} }, 61, 54 },
		{ "two lines", []Glyph{ {1, Point{20, 30}}, {2, Point{20, 46}} }, 52, 70 },
		{ "wrapped wide line", []Glyph{ {1, Point{20, 30}}, {1, Point{32, 30}}, {1, Point{20, 46}} }, 64, 70 },
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			width, height := CanvasSize(face, test.glyphs, 20)
			if width != test.width || height != test.height {
				t.Fatalf("expected %dx%d, got %dx%d", test.width, test.height, width, height)
			}
		})
	}
}

// For single line text, the size matches the last glyph advance
// and the face height.
func TestCanvasSizeSingleLine(t *testing.T) {
	face := regularFont(t).Face(45)
	glyphs := LayoutParagraph(face, Point{ X: 20, Y: 20 }, 9999, "This is paraster rendered into a png!", nil)
	first, last := glyphs[0], glyphs[len(glyphs) - 1]
	wantWidth := int(math.Ceil(float64(last.Position.X + face.Advance(last.Index) - first.Position.X))) + 40
	wantHeight := int(math.Ceil(float64(face.Height()))) + 40

	width, height := CanvasSize(face, glyphs, 20)
	if width != wantWidth || height != wantHeight {
		t.Fatalf("expected %dx%d, got %dx%d", wantWidth, wantHeight, width, height)
	}
}

func TestNewCanvas(t *testing.T) {
	canvas := NewCanvas(3, 2)
	if canvas.Rect.Dx() != 3 || canvas.Rect.Dy() != 2 {
		t.Fatalf("unexpected bounds %v", canvas.Rect)
	}
	for _, value := range canvas.Pix {
		if value != 0 { t.Fatal("expected a transparent canvas") }
	}
	if doesNotPanic(func() { NewCanvas(-1, 2) }) {
		t.Fatal("expected panic on negative size")
	}
}

func TestCanvasSizeContainsInk(t *testing.T) {
	face := &overhangFace{}
	glyphs := []Glyph{ {1, Point{20, 30}} }
	width, height := CanvasSize(face, glyphs, 20)
	if width != 55 || height != 55 {
		t.Fatalf("expected 55x55, got %dx%d", width, height)
	}
	if ink := InkBounds(face, glyphs); ink != image.Rect(17, 16, 35, 35) {
		t.Fatalf("unexpected ink bounds %v", ink)
	}

	// without padding the ink starts at negative coordinates
	glyphs = LayoutParagraph(face, Point{}, 9999, "AB", nil)
	offset := ShiftIntoCanvas(face, glyphs)
	if offset != image.Pt(3, 4) { t.Fatalf("unexpected offset %v", offset) }
	if glyphs[0].Position != (Point{3, 14}) || glyphs[1].Position != (Point{15, 14}) {
		t.Fatalf("unexpected shifted positions %v", glyphs)
	}
	width, height = CanvasSize(face, glyphs, 0)
	if width != 30 || height != 19 {
		t.Fatalf("expected 30x19, got %dx%d", width, height)
	}
	canvas := NewCanvas(width, height)
	if !doesNotPanic(func() { Composite(canvas, glyphs, face, &mask.DefaultRasterizer{}, color.NRGBA{A: 255}) }) {
		t.Fatal("compositing panicked on a canvas sized by CanvasSize")
	}

	// nothing to do when the ink is already inside
	if offset := ShiftIntoCanvas(face, glyphs); offset != (image.Point{}) {
		t.Fatalf("unexpected second offset %v", offset)
	}
}

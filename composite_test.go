package paraster

import "image"
import "image/color"
import "testing"

import "github.com/google/go-cmp/cmp"

import "github.com/tinne26/paraster/mask"

var testRed = color.NRGBA{ 150, 0, 0, 255 }

func alphaMask(rect image.Rectangle, value uint8) *image.Alpha {
	alpha := image.NewAlpha(rect)
	for i := range alpha.Pix { alpha.Pix[i] = value }
	return alpha
}

func TestCoverageToAlpha(t *testing.T) {
	tests := []struct {
		in   float32
		want uint8
	}{
		{0, 0}, {-0.5, 0}, {1, 255}, {1.5, 255},
		{0.5, 127}, {0.999, 254}, {float32(51)/255, 51}, {float32(200)/255, 200},
	}
	for _, test := range tests {
		if got := coverageToAlpha(test.in); got != test.want {
			t.Errorf("coverageToAlpha(%f) = %d, want %d", test.in, got, test.want)
		}
	}

	// 8-bit mask values survive the float32 round trip unchanged
	for value := 0; value <= 255; value++ {
		if got := coverageToAlpha(float32(value)/255); got != uint8(value) {
			t.Fatalf("coverageToAlpha(%d/255) = %d", value, got)
		}
	}
}

func TestSaturatingAdd(t *testing.T) {
	tests := [][3]uint8{ {0, 0, 0}, {100, 100, 200}, {200, 100, 255}, {255, 255, 255}, {254, 1, 255} }
	for _, test := range tests {
		if got := saturatingAdd(test[0], test[1]); got != test[2] {
			t.Errorf("saturatingAdd(%d, %d) = %d, want %d", test[0], test[1], got, test[2])
		}
	}
}

func TestCompositeMaskAccumulates(t *testing.T) {
	canvas := NewCanvas(4, 4)
	coverage := mask.NewCoverage(alphaMask(image.Rect(1, 1, 3, 3), 100))
	compositeMask(canvas, coverage, testRed)
	if got := canvas.NRGBAAt(1, 1); got != (color.NRGBA{150, 0, 0, 100}) {
		t.Fatalf("unexpected pixel %v", got)
	}
	if got := canvas.NRGBAAt(0, 0); got != (color.NRGBA{}) {
		t.Fatalf("pixel outside the mask was modified: %v", got)
	}

	// overlapping never decreases alpha and saturates
	blue := color.NRGBA{ 0, 0, 255, 255 }
	for i := 0; i < 3; i++ {
		compositeMask(canvas, coverage, blue)
	}
	if got := canvas.NRGBAAt(2, 2); got != (color.NRGBA{0, 0, 255, 255}) {
		t.Fatalf("expected saturated alpha with overwritten hue, got %v", got)
	}

	// zero coverage still overwrites the color
	compositeMask(canvas, mask.NewCoverage(alphaMask(image.Rect(0, 0, 1, 1), 0)), testRed)
	if got := canvas.NRGBAAt(0, 0); got != (color.NRGBA{150, 0, 0, 0}) {
		t.Fatalf("unexpected pixel %v", got)
	}
}

func TestCompositeMaskOrderIndependence(t *testing.T) {
	a := mask.NewCoverage(alphaMask(image.Rect(0, 0, 3, 3), 90))
	b := mask.NewCoverage(alphaMask(image.Rect(3, 1, 6, 4), 170))

	first, second := NewCanvas(6, 4), NewCanvas(6, 4)
	compositeMask(first, a, testRed)
	compositeMask(first, b, testRed)
	compositeMask(second, b, testRed)
	compositeMask(second, a, testRed)
	if diff := cmp.Diff(first.Pix, second.Pix); diff != "" {
		t.Fatalf("disjoint masks depend on order (-ab +ba):\n%s", diff)
	}
}

func TestCompositeMaskOutOfBounds(t *testing.T) {
	canvas := NewCanvas(4, 4)
	outside := []image.Rectangle{
		image.Rect(3, 3, 5, 5), image.Rect(-1, 0, 2, 2), image.Rect(0, 0, 4, 5),
	}
	for _, rect := range outside {
		coverage := mask.NewCoverage(alphaMask(rect, 255))
		if doesNotPanic(func() { compositeMask(canvas, coverage, testRed) }) {
			t.Fatalf("expected panic for mask %v", rect)
		}
	}
	if !doesNotPanic(func() { compositeMask(canvas, mask.Coverage{}, testRed) }) {
		t.Fatal("empty coverage must not panic")
	}
}

func TestComposite(t *testing.T) {
	face := &testFace{}
	glyphs := []Glyph{
		{ Index: 1, Position: Point{ X: 2, Y: 10 } },
		{ Index: 3, Position: Point{ X: 14, Y: 10 } }, // space, nothing drawn
	}
	canvas := NewCanvas(20, 12)
	Composite(canvas, glyphs, face, &mask.DefaultRasterizer{}, testRed)

	for y := 0; y < 12; y++ {
		for x := 0; x < 20; x++ {
			want := color.NRGBA{}
			if x >= 2 && x < 6 && y >= 2 && y < 10 {
				want = color.NRGBA{ 150, 0, 0, 255 }
			}
			if got := canvas.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}

	// empty glyph lists leave the canvas untouched
	empty := NewCanvas(20, 12)
	Composite(empty, nil, face, &mask.DefaultRasterizer{}, testRed)
	for _, value := range empty.Pix {
		if value != 0 { t.Fatal("canvas modified without glyphs") }
	}

	// glyphs beyond the canvas panic
	far := []Glyph{ { Index: 1, Position: Point{ X: 18, Y: 10 } } }
	if doesNotPanic(func() { Composite(NewCanvas(20, 12), far, face, &mask.DefaultRasterizer{}, testRed) }) {
		t.Fatal("expected panic for glyph outside the canvas")
	}
}

func TestCompositeFractionalPosition(t *testing.T) {
	face := &testFace{}
	glyphs := []Glyph{ { Index: 2, Position: Point{ X: 2.5, Y: 10 } } }
	canvas := NewCanvas(10, 12)
	Composite(canvas, glyphs, face, &mask.DefaultRasterizer{}, testRed)

	// the box spans x in [2.5, 6.5)
	if a := canvas.NRGBAAt(2, 5).A; a < 126 || a > 128 {
		t.Fatalf("expected half coverage at the left edge, got %d", a)
	}
	if a := canvas.NRGBAAt(4, 5).A; a != 255 {
		t.Fatalf("expected full coverage inside, got %d", a)
	}
	if a := canvas.NRGBAAt(6, 5).A; a < 126 || a > 128 {
		t.Fatalf("expected half coverage at the right edge, got %d", a)
	}
}

package fract

import "image"
import "testing"

import "golang.org/x/image/math/fixed"

func TestPoint(t *testing.T) {
	point := Float32sToPoint(20.5, 61.25)
	if point.X != 1312 || point.Y != 3920 {
		t.Fatalf("expected (1312, 3920), got (%d, %d)", point.X, point.Y)
	}
	if point.String() != "(20.5, 61.25)" {
		t.Fatalf("expected (20.5, 61.25), got %s", point.String())
	}

	// floor + fract shift must recompose the original point
	floor, shift := point.Floor(), point.FractShift()
	if floor.AddPoint(shift) != point {
		t.Fatalf("floor %v + shift %v != %v", floor, shift, point)
	}
	if shift.X != 32 || shift.Y != 16 {
		t.Fatalf("expected shift (32, 16), got (%d, %d)", shift.X, shift.Y)
	}
	if point.ImagePointFloor() != image.Pt(20, 61) {
		t.Fatalf("expected (20, 61), got %v", point.ImagePointFloor())
	}

	negative := Float32sToPoint(-0.5, -2)
	if negative.ImagePointFloor() != image.Pt(-1, -2) {
		t.Fatalf("expected (-1, -2), got %v", negative.ImagePointFloor())
	}

	x, y := point.ToFloat32s()
	if x != 20.5 || y != 61.25 {
		t.Fatalf("expected (20.5, 61.25), got (%f, %f)", x, y)
	}
}

func TestRect(t *testing.T) {
	rect := FromFixedRect(fixed.Rectangle26_6{
		Min: fixed.Point26_6{ X: -32, Y: -700 },
		Max: fixed.Point26_6{ X: 650, Y: 10 },
	})
	if rect.Empty() { t.Fatal("unexpected empty rect") }
	if rect.Width() != 682 || rect.Height() != 710 {
		t.Fatalf("unexpected size %dx%d", rect.Width(), rect.Height())
	}
	want := image.Rect(-1, -11, 11, 1)
	if rect.ImageRect() != want {
		t.Fatalf("expected %v, got %v", want, rect.ImageRect())
	}

	var zero Rect
	if !zero.Empty() { t.Fatal("expected zero rect to be empty") }
}

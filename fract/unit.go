package fract

import "math"

import "golang.org/x/image/math/fixed"

// Fixed point type to represent fractional values used for font rendering.
//
// 26 bits represent the integer part of the value, while the remaining 6 bits
// represent the decimal part. If you can understand that var ms Millis = 1000
// is storing the equivalent to 1 second, with Unit, instead of thousandths of
// a value, you are storing 64ths. So, var pixels Unit = 64 would mean 1 pixel,
// and 96 would be 1.5 pixels.
type Unit int32

// Minimum and maximum constants.
const (
	MaxUnit Unit = +0x7FFFFFFF
	MinUnit Unit = -0x7FFFFFFF - 1
	One Unit = 64 // fract.One.ToIntFloor() == 1
	MaxInt int = +33554431
	MinInt int = -33554432
)

// Fast conversion from int to [Unit]. If the int value is not
// representable with a [Unit], the result is undefined.
func FromInt(value int) Unit { return Unit(value << 6) }

// Converts a float32 to the closest Unit, rounding ties away from
// zero. Values outside the representable range are clamped. NaN
// converts to zero.
func FromFloat32(value float32) Unit {
	if value != value { return 0 } // NaN
	scaled := math.Round(float64(value)*64)
	if scaled >= float64(MaxUnit) { return MaxUnit }
	if scaled <= float64(MinUnit) { return MinUnit }
	return Unit(scaled)
}

// Converts a [fixed.Int26_6] value to a Unit. Both types share the
// same representation.
func FromFixed(value fixed.Int26_6) Unit { return Unit(value) }

// Returns the unit as a [fixed.Int26_6] value.
func (self Unit) Fixed() fixed.Int26_6 { return fixed.Int26_6(self) }

func (self Unit) ToFloat32() float32 { return float32(self)/64.0 }
func (self Unit) ToFloat64() float64 { return float64(self)/64.0 }

// Returns whether the Unit is a whole number or if it
// has a fractional part.
func (self Unit) IsWhole() bool {
	return self & 0x3F == 0
}

// Fastest conversion from Unit to int.
func (self Unit) ToIntFloor() int {
	return int(self) >> 6
}

func (self Unit) ToIntCeil() int {
	return (int(self) + 63) >> 6
}

func (self Unit) Floor() Unit {
	return self & ^0x3F
}

func (self Unit) Ceil() Unit {
	return (self + 0x3F).Floor()
}

// Returns the fractional part of the unit as a value in [0, 63],
// always relative to the floor. For negative values, this is not
// the same as self % 64.
func (self Unit) FractShift() Unit {
	return self & 0x3F
}

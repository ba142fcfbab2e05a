// The fract subpackage defines a [Unit] type representing a 26.6
// fixed point value, along with the [Point] and [Rect] helper types.
//
// Layout happens in float32 pixel space, but font outlines and glyph
// mask rasterizers work with 26.6 values, as [golang.org/x/image/font/sfnt]
// does. This subpackage is the bridge between both worlds: it converts
// pen positions to units and splits them into the whole pixel offset
// where a mask will be placed and the fractional offset at which the
// outline must be rasterized.
//
// The internal representation is compatible with [fixed.Int26_6].
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
package fract

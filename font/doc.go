// The font subpackage defines the font service used by the paragraph
// layouter and the glyph compositor: a small set of capability
// interfaces (glyph mapping, metrics, advances, kerning and outlines)
// grouped under [Scaled], and a [Face] type implementing them on top
// of [golang.org/x/image/font/sfnt].
//
// It also contains the helpers to parse fonts from bytes, paths and
// filesystems (including gzipped fonts), access the bundled default
// font, and read basic font properties.
package font

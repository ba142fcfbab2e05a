// The mask subpackage defines the [Rasterizer] interface used to turn
// glyph outlines into coverage masks, along with two implementations
// and the [Coverage] visitor that compositors use to read them.
//
// Glyph outlines are extracted from font files as sets of lines and
// curves. Before they can be blended into a canvas they must be
// rasterized into a grid of coverage values, one per pixel. The
// [DefaultRasterizer] delegates that work to [golang.org/x/image/vector],
// while the [EdgeMarkerRasterizer] implements the same signed area
// accumulation in plain Go.
package mask

// The cache subpackage defines the [GlyphCacheHandler] interface used
// by renderers to reuse rasterized glyph masks, and provides a default
// bounded cache implementation.
//
// Glyph rasterization is the most expensive step of text rendering,
// and paragraphs tend to repeat the same few glyphs many times. Masks
// depend on the face, the rasterizer configuration and the fractional
// pen position, so all three are part of the cache keys.
//
// As a size reference, a glyph mask at 45px is around 30x35 pixels,
// about 1KiB. Caching a full alphabet with punctuation at a single
// size and a few fractional positions already takes a few hundred
// KiBs, so anything below 64KiB will often fall short.
package cache

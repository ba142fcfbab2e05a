package cache

import "github.com/tinne26/paraster/font"
import "github.com/tinne26/paraster/fract"
import "github.com/tinne26/paraster/mask"

// A [GlyphCacheHandler] sits between a glyph cache and a renderer,
// giving the renderer a simple target interface while hiding the
// details of how cache keys are built.
//
// Handlers can't be used concurrently unless the implementation
// explicitly says otherwise.
type GlyphCacheHandler interface {
	// Notifies that the face in use has changed. The id must
	// uniquely identify the face and its size.
	NotifyFaceChange(faceID uint64)

	// Notifies that the rasterizer or its configuration may have
	// changed. Implementations typically read the signature.
	NotifyRasterizerChange(mask.Rasterizer)

	// Notifies the fractional position of the next masks. Only the
	// 6 bits of the fractional part of each coordinate matter.
	NotifyFractChange(fract.Point)

	// Gets the mask for the given glyph under the current configuration.
	// The bool reports whether it was found, as masks may be nil.
	GetMask(font.GlyphIndex) (GlyphMask, bool)

	// Passes a mask for the given glyph under the current configuration.
	// Should only be called after GetMask() fails. For a given
	// configuration, masks must always be consistent.
	PassMask(font.GlyphIndex, GlyphMask)
}

var _ GlyphCacheHandler = (*DefaultCacheHandler)(nil)

// The [GlyphCacheHandler] for a [DefaultCache]. Also keeps hit
// and miss counts, mostly for debugging and tuning purposes.
type DefaultCacheHandler struct {
	cache  *DefaultCache
	key    Key
	hits   int
	misses int
}

func (self *DefaultCacheHandler) NotifyFaceChange(faceID uint64) {
	self.key.Face = faceID
}

func (self *DefaultCacheHandler) NotifyRasterizerChange(rasterizer mask.Rasterizer) {
	self.key.Rasterizer = rasterizer.Signature()
}

// Glyph key layout: 0x0000_0000_0FFF_0000 for the fractional
// position (x in the high 6 bits), 0xFFFF for the glyph index.
func (self *DefaultCacheHandler) NotifyFractChange(position fract.Point) {
	shift := position.FractShift()
	bits := uint64(shift.Y) << 16 | uint64(shift.X) << 22
	self.key.Glyph = (self.key.Glyph &^ 0x0FFF0000) | bits
}

func (self *DefaultCacheHandler) GetMask(index font.GlyphIndex) (GlyphMask, bool) {
	self.setGlyph(index)
	mask, found := self.cache.GetMask(self.key)
	if found {
		self.hits += 1
	} else {
		self.misses += 1
	}
	return mask, found
}

func (self *DefaultCacheHandler) PassMask(index font.GlyphIndex, mask GlyphMask) {
	self.setGlyph(index)
	self.cache.PassMask(self.key, mask)
}

func (self *DefaultCacheHandler) setGlyph(index font.GlyphIndex) {
	self.key.Glyph = (self.key.Glyph &^ 0xFFFF) | uint64(index)
}

// Returns the number of GetMask() hits and misses so far.
func (self *DefaultCacheHandler) Stats() (hits, misses int) {
	return self.hits, self.misses
}

// Provides access to the underlying [DefaultCache].
func (self *DefaultCacheHandler) Cache() *DefaultCache { return self.cache }

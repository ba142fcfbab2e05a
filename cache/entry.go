package cache

import "image"
import "sync/atomic"
import "time"

// Alias for the rasterized glyph masks stored in the cache.
type GlyphMask = *image.Alpha

// Fixed overhead assumed for every mask, approximating the
// image.Alpha struct and the cache bookkeeping.
const maskOverheadBytes = 56

// Returns an approximation of the memory used by a cached mask.
// Nil masks are also cached (e.g., for spaces), so they have a
// non-zero size too.
func GlyphMaskByteSize(mask GlyphMask) uint32 {
	if mask == nil { return maskOverheadBytes }
	return uint32(len(mask.Pix)) + maskOverheadBytes
}

var processStart = time.Now()

// Shifts the cache clock forward, which allows tests to
// simulate time passing without sleeping.
var testClockOffset time.Duration

// Monotonic instant in units of 2^27 nanoseconds (roughly an
// eighth of a second), which is all the resolution we need.
func cacheInstant() uint32 {
	return uint32((time.Since(processStart) + testClockOffset).Nanoseconds() >> 27)
}

// A cached mask along with the information required to
// estimate how much it's being used.
type cacheEntry struct {
	Mask      GlyphMask // read-only
	ByteSize  uint32    // read-only
	CreatedAt uint32    // see cacheInstant(), read-only
	accesses  atomic.Uint32
}

func newCacheEntry(mask GlyphMask) (*cacheEntry, uint32) {
	instant := cacheInstant()
	entry := &cacheEntry{
		Mask: mask,
		ByteSize: GlyphMaskByteSize(mask),
		CreatedAt: instant,
	}
	entry.accesses.Store(1)
	return entry, instant
}

// Must be called whenever the entry is retrieved.
func (self *cacheEntry) Touch() { self.accesses.Add(1) }

// A measure of bytes accessed per unit of time. The coldest
// entries are the eviction candidates. Concurrent-safe.
func (self *cacheEntry) Hotness(instant uint32) uint32 {
	const evictionCost = 1000
	elapsed := instant - self.CreatedAt
	if elapsed == 0 { elapsed = 1 }
	return (evictionCost + self.ByteSize*self.accesses.Load())/elapsed
}

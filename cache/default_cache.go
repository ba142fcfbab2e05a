package cache

import "sync"
import "sync/atomic"

// Identifies a glyph mask within a [DefaultCache].
type Key struct {
	Face       uint64 // see GlyphCacheHandler.NotifyFaceChange()
	Rasterizer uint64 // rasterizer signature
	Glyph      uint64 // glyph index and fractional position bits
}

// The default glyph mask cache. It's concurrent-safe, bounded
// in memory, and evicts entries by sampling a few of them and
// discarding the coldest one.
type DefaultCache struct {
	mutex     sync.RWMutex
	entries   map[Key]*cacheEntry
	byteLimit uint32
	bytesLeft atomic.Uint32
	lowestLeft atomic.Uint32
}

// Creates a new cache bounded by the given size in bytes.
// Negative sizes will panic.
func NewDefaultCache(maxByteSize int) *DefaultCache {
	if maxByteSize < 0 { panic("maxByteSize < 0") }
	cache := &DefaultCache{
		entries: make(map[Key]*cacheEntry, 128),
		byteLimit: uint32(maxByteSize),
	}
	cache.bytesLeft.Store(uint32(maxByteSize))
	cache.lowestLeft.Store(uint32(maxByteSize))
	return cache
}

// Returns the mask stored under the given key, if any.
// The mask itself may be nil.
func (self *DefaultCache) GetMask(key Key) (GlyphMask, bool) {
	self.mutex.RLock()
	entry, found := self.entries[key]
	self.mutex.RUnlock()
	if !found { return nil, false }
	entry.Touch()
	return entry.Mask, true
}

// Stores the given mask under the given key. The mask may be
// ignored if the cache is full of hotter entries, if it's bigger
// than the cache itself or if the key is already present.
func (self *DefaultCache) PassMask(key Key, mask GlyphMask) {
	const maxEvictionRounds = 2

	entry, instant := newCacheEntry(mask)
	if entry.ByteSize > self.byteLimit { return }

	var freed uint32
	if left := self.bytesLeft.Load(); entry.ByteSize > left {
		hotness := entry.Hotness(instant)
		missing := entry.ByteSize - left
		for i := 0; i < maxEvictionRounds && freed < missing; i++ {
			freed += self.evictColdEntry(hotness, instant)
		}
		if freed < missing {
			self.bytesLeft.Add(freed)
			return
		}
	}

	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.bytesLeft.Add(freed)
	if _, exists := self.entries[key]; exists { return }
	if self.bytesLeft.Load() < entry.ByteSize { return }
	left := self.bytesLeft.Add(^(entry.ByteSize - 1)) // subtraction
	if left < self.lowestLeft.Load() {
		self.lowestLeft.Store(left)
	}
	self.entries[key] = entry
}

// Samples a few entries and removes the coldest one if it's colder
// than the given hotness. Returns the freed bytes, which the caller
// must add back to bytesLeft.
func (self *DefaultCache) evictColdEntry(hotness uint32, instant uint32) uint32 {
	const sampleSize = 10

	self.mutex.RLock()
	var coldestKey Key
	coldest := ^uint32(0)
	samples := 0
	for key, entry := range self.entries { // map order is our sampler
		if entryHotness := entry.Hotness(instant); entryHotness < coldest {
			coldest, coldestKey = entryHotness, key
		}
		samples += 1
		if samples >= sampleSize { break }
	}
	self.mutex.RUnlock()
	if coldest >= hotness { return 0 }

	self.mutex.Lock()
	defer self.mutex.Unlock()
	entry, stillExists := self.entries[coldestKey]
	if !stillExists { return 0 }
	delete(self.entries, coldestKey)
	return entry.ByteSize
}

// Returns the number of cached masks.
func (self *DefaultCache) NumEntries() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.entries)
}

// Returns an approximation of the bytes taken by the cached masks.
func (self *DefaultCache) ApproxByteSize() int {
	return int(self.byteLimit - self.bytesLeft.Load())
}

// Returns an approximation of the maximum amount of bytes that
// the cache has held at any point. Useful to tune the cache size.
func (self *DefaultCache) PeakSize() int {
	return int(self.byteLimit - self.lowestLeft.Load())
}

// Returns a new handler for the cache. Handlers can't be used
// concurrently, but many handlers may share the same cache.
func (self *DefaultCache) NewHandler() *DefaultCacheHandler {
	return &DefaultCacheHandler{ cache: self }
}

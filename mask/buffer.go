package mask

// Accumulation buffer for the edge marker. Each value stores the
// signed vertical change of the outline boundaries crossing that
// pixel, so a left to right prefix sum yields the coverage.
type buffer struct {
	Width  int
	Height int
	Values []float64
}

// Sets the new buffer dimensions, reusing the underlying slice
// when possible. The contents are always cleared.
func (self *buffer) Resize(width, height int) {
	if width <= 0 || height <= 0 { panic("width or height <= 0") }
	self.Width, self.Height = width, height
	size := width*height
	if cap(self.Values) < size {
		self.Values = make([]float64, size)
		return
	}
	self.Values = self.Values[:size]
	self.Clear()
}

// Fills the buffer with zeros.
func (self *buffer) Clear() {
	if len(self.Values) <= 24 {
		for i := range self.Values { self.Values[i] = 0 }
		return
	}

	// doubling copies are much faster than a plain loop
	for i := range self.Values[:16] { self.Values[i] = 0 }
	for i := 16; i < len(self.Values); i *= 2 {
		copy(self.Values[i:], self.Values[:i])
	}
}

// Accumulates the boundary changes row by row and writes the
// resulting coverage values into the given alpha pixels, which
// must have the same dimensions as the buffer.
func (self *buffer) AccumulateTo(pix []uint8) {
	if len(pix) != self.Width*self.Height {
		panic("alpha buffer has wrong length")
	}

	for row := 0; row < self.Height; row++ {
		start := row*self.Width
		var acc float64
		var alpha uint8
		for i := start; i < start + self.Width; i++ {
			if value := self.Values[i]; value != 0 {
				acc += value
				alpha = coverageToAlpha(acc)
			}
			pix[i] = alpha
		}
	}
}

// Winding direction doesn't matter, only the magnitude.
func coverageToAlpha(acc float64) uint8 {
	if acc < 0 { acc = -acc }
	if acc >= 1 { return 255 }
	return uint8(acc*255)
}

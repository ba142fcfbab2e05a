package mask

// Splits Bézier curves into straight lines. A curve is split in
// halves until the control points are within the threshold distance
// of the chord or the split depth reaches the configured maximum.
type curveSegmenter struct {
	thresholdThousandths uint16
	maxSplits uint8
	threshold2 float64 // squared threshold
}

// Only the lowest 24 bits are used: the threshold in thousandths
// in the lowest 16 bits and the max splits in the next 8.
func (self *curveSegmenter) Signature() uint64 {
	return uint64(self.thresholdThousandths) | uint64(self.maxSplits) << 16
}

// Values are clamped to [0, 6.5] and truncated to thousandths.
func (self *curveSegmenter) SetThreshold(dist float64) {
	dist = math64Clamp(dist, 0, 6.5)
	self.thresholdThousandths = uint16(dist*1000)
	thousandths := float64(self.thresholdThousandths)
	self.threshold2 = (thousandths*thousandths)/1_000_000.0
}

// Values are clamped to [0, 255].
func (self *curveSegmenter) SetMaxSplits(maxSplits int) {
	self.maxSplits = uint8(math64Clamp(float64(maxSplits), 0, 255))
}

func (self *curveSegmenter) TraceQuad(lineTo func(x, y float64), x, y, ctrlX, ctrlY, fx, fy float64) {
	self.traceQuad(lineTo, x, y, ctrlX, ctrlY, fx, fy, 0)
}

func (self *curveSegmenter) traceQuad(lineTo func(x, y float64), x, y, ctrlX, ctrlY, fx, fy float64, depth uint8) {
	if depth >= self.maxSplits || self.isFlat(x, y, fx, fy, ctrlX, ctrlY) {
		lineTo(fx, fy)
		return
	}

	ax, ay := midpoint(x, y, ctrlX, ctrlY)
	bx, by := midpoint(ctrlX, ctrlY, fx, fy)
	mx, my := midpoint(ax, ay, bx, by)
	self.traceQuad(lineTo, x, y, ax, ay, mx, my, depth + 1)
	self.traceQuad(lineTo, mx, my, bx, by, fx, fy, depth + 1)
}

func (self *curveSegmenter) TraceCube(lineTo func(x, y float64), x, y, cx1, cy1, cx2, cy2, fx, fy float64) {
	self.traceCube(lineTo, x, y, cx1, cy1, cx2, cy2, fx, fy, 0)
}

func (self *curveSegmenter) traceCube(lineTo func(x, y float64), x, y, cx1, cy1, cx2, cy2, fx, fy float64, depth uint8) {
	flat := self.isFlat(x, y, fx, fy, cx1, cy1) && self.isFlat(x, y, fx, fy, cx2, cy2)
	if depth >= self.maxSplits || flat {
		lineTo(fx, fy)
		return
	}

	// de Casteljau subdivision at t = 0.5
	ax, ay := midpoint(x, y, cx1, cy1)
	bx, by := midpoint(cx1, cy1, cx2, cy2)
	cx, cy := midpoint(cx2, cy2, fx, fy)
	abx, aby := midpoint(ax, ay, bx, by)
	bcx, bcy := midpoint(bx, by, cx, cy)
	mx, my := midpoint(abx, aby, bcx, bcy)
	self.traceCube(lineTo, x, y, ax, ay, abx, aby, mx, my, depth + 1)
	self.traceCube(lineTo, mx, my, bcx, bcy, cx, cy, fx, fy, depth + 1)
}

// Reports whether (px, py) is within the threshold distance of
// the line going through (ox, oy) and (fx, fy).
func (self *curveSegmenter) isFlat(ox, oy, fx, fy, px, py float64) bool {
	// line as ax + by + c = 0, dist = |a*px + b*py + c|/sqrt(a^2 + b^2)
	a, b := fy - oy, ox - fx
	c := (fx - ox)*oy - (fy - oy)*ox
	n := a*px + b*py + c
	return n*n <= self.threshold2*(a*a + b*b)
}

func midpoint(ax, ay, bx, by float64) (float64, float64) {
	return (ax + bx)/2, (ay + by)/2
}

func math64Clamp(value, min, max float64) float64 {
	if value < min { return min }
	if value > max { return max }
	return value
}

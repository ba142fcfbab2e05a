package mask

import "math"

// Changes in y below this are considered horizontal, which
// keeps divisions by deltaY stable.
const horizontalityThreshold = 0.000001

// The edge marker traces outline boundaries into a [buffer],
// marking on each pixel how much the boundary advances vertically
// while crossing it. Curves are split into lines by the segmenter.
type edgeMarker struct {
	x, y   float64
	Buffer buffer
	Curves curveSegmenter
}

func (self *edgeMarker) MoveTo(x, y float64) {
	self.x, self.y = x, y
}

// Marks the boundary from the current position to (x, y) and
// moves the current position there.
func (self *edgeMarker) LineTo(x, y float64) {
	fromX, fromY := self.x, self.y
	self.x, self.y = x, y

	deltaX, deltaY := x - fromX, y - fromY
	if math.Abs(deltaY) <= horizontalityThreshold { return }
	xPerY := deltaX/deltaY

	cx, cy := fromX, fromY
	for {
		nextX, nextY := nextWholeCoord(cx, deltaX), nextWholeCoord(cy, deltaY)
		doneX := reachedTarget(nextX, x, deltaX)
		doneY := reachedTarget(nextY, y, deltaY)
		if doneX { nextX = x }
		if doneY { nextY = y }

		// advance up to whichever whole coordinate comes first
		dx, dy := nextX - cx, nextY - cy
		if altDx := xPerY*dy; math.Abs(altDx) <= math.Abs(dx) {
			dx = altDx
		} else {
			dy = dx/xPerY
		}

		self.mark(cx, cy, dx, dy)
		cx += dx
		cy += dy
		if doneX && doneY { return }
	}
}

func (self *edgeMarker) QuadTo(ctrlX, ctrlY, x, y float64) {
	self.Curves.TraceQuad(self.LineTo, self.x, self.y, ctrlX, ctrlY, x, y)
}

func (self *edgeMarker) CubeTo(cx1, cy1, cx2, cy2, x, y float64) {
	self.Curves.TraceCube(self.LineTo, self.x, self.y, cx1, cy1, cx2, cy2, x, y)
}

// Marks a boundary piece that stays within a single pixel. The
// vertical change is split between the pixel and its right neighbour
// proportionally to the horizontal position of the piece midpoint.
func (self *edgeMarker) mark(x, y, dx, dy float64) {
	col := floorOfSegment(x, dx)
	row := floorOfSegment(y, dy)
	if row < 0 || row >= self.Buffer.Height { return }
	if col >= self.Buffer.Width { return }

	rowStart := row*self.Buffer.Width
	if col < 0 { // still has to accumulate
		self.Buffer.Values[rowStart] += dy
		return
	}

	var inPixel float64
	if dx >= 0 {
		inPixel = (1 - (x - math.Floor(x) + dx/2))*dy
	} else {
		inPixel = (math.Ceil(x) - x - dx/2)*dy
	}
	self.Buffer.Values[rowStart + col] += inPixel
	if col + 1 < self.Buffer.Width {
		self.Buffer.Values[rowStart + col + 1] += dy - inPixel
	}
}

func reachedTarget(current, target, direction float64) bool {
	if direction >= 0 { return current >= target }
	return current <= target
}

func nextWholeCoord(position, direction float64) float64 {
	switch {
	case direction > 0:
		if ceil := math.Ceil(position); ceil != position { return ceil }
		return position + 1
	case direction < 0:
		if floor := math.Floor(position); floor != position { return floor }
		return position - 1
	default:
		return position
	}
}

func floorOfSegment(start, advance float64) int {
	floor := math.Floor(start)
	if advance < 0 && floor == start { return int(floor) - 1 }
	return int(floor)
}

package mask

import "math"
import "math/rand"

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

func similarFloat64Slices(a []float64, b []float64) bool {
	if len(a) != len(b) { return false }
	for i, valueA := range a {
		if math.Abs(valueA - b[i]) > 0.001 { return false }
	}
	return true
}

// Marks a closed polygon given as x, y pairs with the edge marker.
func markPolygon(marker *edgeMarker, coords []float64) {
	marker.MoveTo(coords[0], coords[1])
	for i := 2; i < len(coords); i += 2 {
		marker.LineTo(coords[i], coords[i + 1])
	}
}

func randomTriangle(rng *rand.Rand, w, h int) sfnt.Segments {
	fw, fh := float64(w)*64, float64(h)*64
	x, y := fixed.Int26_6(fw/2), fixed.Int26_6(fh/16)
	var segments sfnt.Segments
	segments = moveTo(segments, x, y)
	segments = lineTo(segments, x, fixed.Int26_6(fh - fh/16))
	segments = lineTo(segments, fixed.Int26_6(rng.Float64()*fw), fixed.Int26_6(rng.Float64()*fh))
	return lineTo(segments, x, y)
}

func randomQuad(rng *rand.Rand, w, h int) sfnt.Segments {
	fw, fh := float64(w)*64, float64(h)*64
	x, y := fixed.Int26_6(fw/2), fixed.Int26_6(fh/16)
	var segments sfnt.Segments
	segments = moveTo(segments, x, y)
	segments = lineTo(segments, x, fixed.Int26_6(fh - fh/16))
	cx, cy := fixed.Int26_6(rng.Float64()*fw), fixed.Int26_6(rng.Float64()*fh)
	return quadTo(segments, cx, cy, x, y)
}

func randomSegments(rng *rand.Rand, count, w, h int) sfnt.Segments {
	fw, fh := float64(w)*64, float64(h)*64
	randXY := func() (fixed.Int26_6, fixed.Int26_6) {
		return fixed.Int26_6(rng.Float64()*fw), fixed.Int26_6(rng.Float64()*fh)
	}

	startX, startY := randXY()
	segments := make(sfnt.Segments, 0, count + 2)
	segments = moveTo(segments, startX, startY)
	for i := 0; i < count; i++ {
		x, y := randXY()
		switch rng.Intn(3) {
		case 0:
			segments = lineTo(segments, x, y)
		case 1:
			cx, cy := randXY()
			segments = quadTo(segments, cx, cy, x, y)
		default:
			cx1, cy1 := randXY()
			cx2, cy2 := randXY()
			segments = cubeTo(segments, cx1, cy1, cx2, cy2, x, y)
		}
	}
	return lineTo(segments, startX, startY)
}

// Closed polygon from pixel coordinate pairs.
func polySegments(coords ...float64) sfnt.Segments {
	if len(coords) % 2 != 0 || len(coords) < 6 {
		panic("polygons need at least three x, y pairs")
	}
	toFixed := func(v float64) fixed.Int26_6 { return fixed.Int26_6(v*64) }
	var segments sfnt.Segments
	segments = moveTo(segments, toFixed(coords[0]), toFixed(coords[1]))
	for i := 2; i < len(coords); i += 2 {
		segments = lineTo(segments, toFixed(coords[i]), toFixed(coords[i + 1]))
	}
	return lineTo(segments, toFixed(coords[0]), toFixed(coords[1]))
}

func segment(op sfnt.SegmentOp, points ...fixed.Int26_6) sfnt.Segment {
	seg := sfnt.Segment{ Op: op }
	for i := 0; i + 1 < len(points); i += 2 {
		seg.Args[i/2] = fixed.Point26_6{ X: points[i], Y: points[i + 1] }
	}
	return seg
}

func moveTo(segs sfnt.Segments, x, y fixed.Int26_6) sfnt.Segments {
	return append(segs, segment(sfnt.SegmentOpMoveTo, x, y))
}

func lineTo(segs sfnt.Segments, x, y fixed.Int26_6) sfnt.Segments {
	return append(segs, segment(sfnt.SegmentOpLineTo, x, y))
}

func quadTo(segs sfnt.Segments, cx, cy, x, y fixed.Int26_6) sfnt.Segments {
	return append(segs, segment(sfnt.SegmentOpQuadTo, cx, cy, x, y))
}

func cubeTo(segs sfnt.Segments, cx1, cy1, cx2, cy2, x, y fixed.Int26_6) sfnt.Segments {
	return append(segs, segment(sfnt.SegmentOpCubeTo, cx1, cy1, cx2, cy2, x, y))
}

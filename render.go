package paraster

import "context"
import "image"
import "log/slog"

import "github.com/tinne26/paraster/cache"
import "github.com/tinne26/paraster/fract"

// Lays out the text as a paragraph starting at (padding, padding),
// wrapping lines at the renderer's max width. If some glyph masks
// would still start at negative coordinates (only possible with
// small paddings), the whole paragraph is moved right or down by
// whole pixels until they don't. See [ShiftIntoCanvas]().
func (self *Renderer) Layout(text string) []Glyph {
	text = self.prepareText(text)
	face := self.Face()
	origin := Point{ X: float32(self.padding), Y: float32(self.padding) }
	glyphs := LayoutParagraph(face, origin, self.maxWidth, text, nil)
	offset := ShiftIntoCanvas(face, glyphs)
	logger := Logger()
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("paragraph laid out", "runes", len([]rune(text)), "glyphs", len(glyphs),
			"lines", countLines(glyphs), "shift", offset.String())
	}
	return glyphs
}

// Returns the canvas size required for the given glyphs, including
// the renderer's padding. See [CanvasSize]().
func (self *Renderer) CanvasSize(glyphs []Glyph) (width, height int) {
	return CanvasSize(self.Face(), glyphs, self.padding)
}

// Composites the glyphs on the canvas like [Composite](), but with
// the renderer's face, rasterizer and color, reusing cached masks
// when a cache handler is set.
func (self *Renderer) Composite(canvas *image.NRGBA, glyphs []Glyph) {
	face := self.Face()
	if self.cacheHandler == nil {
		Composite(canvas, glyphs, face, self.rasterizer, self.color)
		return
	}

	// rasterizer configs may change between calls
	self.cacheHandler.NotifyRasterizerChange(self.rasterizer)
	prevFract := fract.Point{ X: -1, Y: -1 }
	for _, glyph := range glyphs {
		position := glyph.Position.Fract()
		if position.FractShift() != prevFract {
			prevFract = position.FractShift()
			self.cacheHandler.NotifyFractChange(position)
		}

		alpha, found := self.cacheHandler.GetMask(glyph.Index)
		if !found {
			alpha = rasterizeGlyph(face, self.rasterizer, glyph)
			self.cacheHandler.PassMask(glyph.Index, alpha)
		}
		compositeMask(canvas, placeMask(alpha, glyph.Position), self.color)
	}

	if handler, ok := self.cacheHandler.(*cache.DefaultCacheHandler); ok {
		hits, misses := handler.Stats()
		Logger().Debug("glyph cache", "hits", hits, "misses", misses,
			"entries", handler.Cache().NumEntries(), "bytes", handler.Cache().ApproxByteSize())
	}
}

// Lays out the text, creates a canvas of the right size and
// composites the glyphs on it.
func (self *Renderer) Render(text string) *image.NRGBA {
	glyphs := self.Layout(text)
	width, height := self.CanvasSize(glyphs)
	Logger().Debug("canvas", "width", width, "height", height)
	canvas := NewCanvas(width, height)
	self.Composite(canvas, glyphs)
	return canvas
}

// Number of distinct baselines.
func countLines(glyphs []Glyph) int {
	lines := 0
	for i, glyph := range glyphs {
		if i == 0 || glyph.Position.Y != glyphs[i - 1].Position.Y {
			lines += 1
		}
	}
	return lines
}

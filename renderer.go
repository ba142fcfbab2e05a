package paraster

import "image/color"
import "sync/atomic"

import "golang.org/x/text/unicode/norm"

import "github.com/tinne26/paraster/cache"
import "github.com/tinne26/paraster/font"
import "github.com/tinne26/paraster/mask"

// Default renderer properties.
const (
	DefaultSize     = 45
	DefaultPadding  = 20
	DefaultMaxWidth = 9999
)

// Faces get a process-wide unique id so glyph caches can tell
// them apart, even when shared between renderers.
var faceIDCounter atomic.Uint64

// The [Renderer] bundles everything needed to turn text into an
// image: a font and size, a color, the layout box and the glyph
// rasterization setup.
//
// Renderers must be created with [NewRenderer]() and a font must be
// set before rendering. Renderers can't be used concurrently.
type Renderer struct {
	font    *font.Font
	face    font.Scaled // lazily built, nil after config changes
	faceID  uint64
	size    float32
	kerning font.KerningMode
	sizerFn func(font.Scaled) font.Scaled

	color     color.NRGBA
	padding   int
	maxWidth  float32
	normalize bool

	rasterizer   mask.Rasterizer
	cacheHandler cache.GlyphCacheHandler
}

// Creates a new [Renderer] with the default size, padding and max
// width, a dark red color, the [mask.DefaultRasterizer], NFC text
// normalization and no cache.
func NewRenderer() *Renderer {
	return &Renderer{
		size: DefaultSize,
		color: color.NRGBA{ 150, 0, 0, 255 },
		padding: DefaultPadding,
		maxWidth: DefaultMaxWidth,
		normalize: true,
		rasterizer: &mask.DefaultRasterizer{},
	}
}

// Sets the font to render with. Fonts can be obtained from the
// font subpackage, e.g. with [font.ParseFromPath]().
func (self *Renderer) SetFont(fnt *font.Font) {
	if fnt == self.font { return }
	self.font = fnt
	self.face = nil
}

// Returns the current font, which may be nil.
func (self *Renderer) GetFont() *font.Font { return self.font }

// Sets the font size, in pixels per em. Non-positive sizes panic.
func (self *Renderer) SetSize(size float32) {
	if !(size > 0) { panic("font size must be > 0") }
	if size == self.size { return }
	self.size = size
	self.face = nil
}

// Returns the current font size.
func (self *Renderer) GetSize() float32 { return self.size }

// Sets the kerning mode. See [font.KerningMode].
func (self *Renderer) SetKerning(mode font.KerningMode) {
	if mode == self.kerning { return }
	self.kerning = mode
	self.face = nil
}

// Returns the current kerning mode.
func (self *Renderer) GetKerning() font.KerningMode { return self.kerning }

// Sets a function to decorate the font face before use, typically
// with the sizer subpackage:
//   renderer.SetSizer(func(face font.Scaled) font.Scaled {
//       return sizer.PaddedAdvance(face, 2)
//   })
// A nil function removes the decorator.
func (self *Renderer) SetSizer(sizerFn func(font.Scaled) font.Scaled) {
	self.sizerFn = sizerFn
	self.face = nil
}

// Sets the text color. Alpha is ignored, as glyph coverage
// determines the final alpha.
func (self *Renderer) SetColor(textColor color.Color) {
	rgb := color.NRGBAModel.Convert(textColor).(color.NRGBA)
	rgb.A = 255
	self.color = rgb
}

// Returns the current text color.
func (self *Renderer) GetColor() color.NRGBA { return self.color }

// Sets the padding applied around the text on each side of the
// canvas. Negative values panic.
func (self *Renderer) SetPadding(padding int) {
	if padding < 0 { panic("padding must be >= 0") }
	self.padding = padding
}

// Returns the current padding.
func (self *Renderer) GetPadding() int { return self.padding }

// Sets the maximum line width before wrapping, in pixels.
func (self *Renderer) SetMaxWidth(maxWidth float32) {
	self.maxWidth = maxWidth
}

// Returns the current maximum line width.
func (self *Renderer) GetMaxWidth() float32 { return self.maxWidth }

// Sets the glyph mask rasterizer. Nil rasterizers panic.
func (self *Renderer) SetRasterizer(rasterizer mask.Rasterizer) {
	if rasterizer == nil { panic("nil rasterizer") }
	self.rasterizer = rasterizer
}

// Returns the current rasterizer.
func (self *Renderer) GetRasterizer() mask.Rasterizer { return self.rasterizer }

// Sets the glyph cache handler, or removes it if nil.
// For example:
//   renderer.SetCacheHandler(cache.NewDefaultCache(1024*1024).NewHandler())
func (self *Renderer) SetCacheHandler(handler cache.GlyphCacheHandler) {
	self.cacheHandler = handler
	if handler != nil && self.face != nil {
		handler.NotifyFaceChange(self.faceID)
	}
}

// Returns the current cache handler, which may be nil.
func (self *Renderer) GetCacheHandler() cache.GlyphCacheHandler { return self.cacheHandler }

// Enables or disables NFC text normalization before layout.
func (self *Renderer) SetNormalization(enabled bool) { self.normalize = enabled }

// Returns whether NFC text normalization is enabled.
func (self *Renderer) GetNormalization() bool { return self.normalize }

// Returns the font face in use, with the sizer applied. Panics
// if no font has been set.
func (self *Renderer) Face() font.Scaled {
	if self.face != nil { return self.face }
	if self.font == nil { panic("renderer font not set") }

	face := self.font.Face(self.size)
	face.SetKerning(self.kerning)
	self.face = face
	if self.sizerFn != nil {
		self.face = self.sizerFn(face)
	}
	self.faceID = faceIDCounter.Add(1)
	if self.cacheHandler != nil {
		self.cacheHandler.NotifyFaceChange(self.faceID)
	}
	Logger().Debug("face created", "font", self.font.Name(), "size", self.size, "kerning", self.kerning.String(), "id", self.faceID)
	return self.face
}

func (self *Renderer) prepareText(text string) string {
	if !self.normalize { return text }
	return norm.NFC.String(text)
}

// paraster renders paragraphs of text into raster images.
//
// The process has three steps:
//   - [LayoutParagraph] turns text into positioned glyphs, wrapping
//     lines at a maximum width and applying kerning.
//   - [CanvasSize] and [NewCanvas] create an image big enough for
//     the glyphs.
//   - [Composite] rasterizes each glyph outline and accumulates its
//     coverage on the canvas.
//
// The [Renderer] bundles the three steps with a font, a size, a
// color and an optional glyph mask cache:
//   fnt, err := font.Default()
//   if err != nil { ... }
//   renderer := paraster.NewRenderer()
//   renderer.SetFont(fnt)
//   img := renderer.Render("Hello world!")
//
// Fonts are loaded through the font subpackage, glyph rasterizers
// live in the mask subpackage and spacing adjustments can be applied
// with the sizer subpackage.
package paraster

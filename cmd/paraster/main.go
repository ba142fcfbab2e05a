// Command paraster renders a paragraph of text into a PNG image.
//
// Usage:
//   paraster [flags] [font-path]
//
// Without a font path, the bundled Go Regular font is used.
package main

import "errors"
import "flag"
import "fmt"
import "image/color"
import "image/png"
import "io"
import "log/slog"
import "os"
import "path/filepath"
import "strconv"
import "strings"

import "github.com/tinne26/paraster"
import "github.com/tinne26/paraster/cache"
import "github.com/tinne26/paraster/font"
import "github.com/tinne26/paraster/mask"
import "github.com/tinne26/paraster/sizer"

const defaultText = "This is paraster rendered into a png!"

type config struct {
	fontPath      string
	text          string
	size          float64
	color         color.NRGBA
	maxWidth      float64
	padding       int
	out           string
	rasterizer    string
	kerning       font.KerningMode
	letterSpacing float64
	cacheSize     int
	verbose       bool
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) { os.Exit(0) }
		fmt.Fprintf(os.Stderr, "paraster: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelWarn
	if cfg.verbose { level = slog.LevelDebug }
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{ Level: level }))
	paraster.SetLogger(logger)

	if err := run(cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "paraster: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (config, error) {
	cfg := config{}
	var colorStr, kerningStr string
	flags := flag.NewFlagSet("paraster", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.Usage = func() {
		fmt.Fprintln(output, "Usage: paraster [flags] [font-path]")
		flags.PrintDefaults()
	}
	flags.StringVar(&cfg.text, "text", defaultText, "text to render")
	flags.Float64Var(&cfg.size, "size", paraster.DefaultSize, "font size in pixels")
	flags.StringVar(&colorStr, "color", "150,0,0", "text color as #rrggbb or r,g,b")
	flags.Float64Var(&cfg.maxWidth, "max-width", paraster.DefaultMaxWidth, "maximum line width before wrapping")
	flags.IntVar(&cfg.padding, "padding", paraster.DefaultPadding, "padding around the text")
	flags.StringVar(&cfg.out, "out", "image_example.png", "output PNG path")
	flags.StringVar(&cfg.rasterizer, "rasterizer", "default", "glyph rasterizer: default or edge")
	flags.StringVar(&kerningStr, "kerning", "auto", "kerning mode: auto, table, shaped or none")
	flags.Float64Var(&cfg.letterSpacing, "letter-spacing", 0, "extra advance per glyph, in pixels")
	flags.IntVar(&cfg.cacheSize, "cache-size", 0, "glyph cache size in bytes (0 disables the cache)")
	flags.BoolVar(&cfg.verbose, "v", false, "enable debug logging")
	if err := flags.Parse(args); err != nil { return cfg, err }

	switch flags.NArg() {
	case 0: // default font
	case 1: cfg.fontPath = flags.Arg(0)
	default:
		return cfg, fmt.Errorf("expected at most one font path, got %d arguments", flags.NArg())
	}

	var err error
	if cfg.color, err = parseColor(colorStr); err != nil { return cfg, err }
	var ok bool
	if cfg.kerning, ok = font.ParseKerningMode(kerningStr); !ok {
		return cfg, fmt.Errorf("invalid kerning mode %q", kerningStr)
	}
	if cfg.rasterizer != "default" && cfg.rasterizer != "edge" {
		return cfg, fmt.Errorf("invalid rasterizer %q", cfg.rasterizer)
	}
	if !(cfg.size > 0) { return cfg, fmt.Errorf("invalid size %v", cfg.size) }
	if cfg.padding < 0 { return cfg, fmt.Errorf("invalid padding %d", cfg.padding) }
	if cfg.cacheSize < 0 { return cfg, fmt.Errorf("invalid cache size %d", cfg.cacheSize) }
	return cfg, nil
}

// Parses "#rrggbb" or "r,g,b" colors.
func parseColor(str string) (color.NRGBA, error) {
	str = strings.TrimSpace(str)
	if hex, found := strings.CutPrefix(str, "#"); found {
		if len(hex) != 6 { return color.NRGBA{}, fmt.Errorf("invalid hex color %q", str) }
		value, err := strconv.ParseUint(hex, 16, 32)
		if err != nil { return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", str, err) }
		return color.NRGBA{ uint8(value >> 16), uint8(value >> 8), uint8(value), 255 }, nil
	}

	parts := strings.Split(str, ",")
	if len(parts) != 3 { return color.NRGBA{}, fmt.Errorf("invalid color %q", str) }
	var channels [3]uint8
	for i, part := range parts {
		value, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil { return color.NRGBA{}, fmt.Errorf("invalid color channel %q: %w", part, err) }
		channels[i] = uint8(value)
	}
	return color.NRGBA{ channels[0], channels[1], channels[2], 255 }, nil
}

func loadFont(path string, stderr io.Writer) (*font.Font, error) {
	if path == "" {
		fmt.Fprintln(stderr, "No font specified ... using default")
		return font.Default()
	}
	fnt, err := font.ParseFromPath(path)
	if err != nil { return nil, fmt.Errorf("error constructing a font from %s: %w", path, err) }
	fmt.Fprintf(stderr, "Using font: %s\n", filepath.Base(path))
	return fnt, nil
}

func run(cfg config, stdout, stderr io.Writer) error {
	fnt, err := loadFont(cfg.fontPath, stderr)
	if err != nil { return err }

	missing, err := font.GetMissingRunes(fnt, cfg.text)
	if err != nil { return fmt.Errorf("checking font coverage: %w", err) }
	if len(missing) > 0 {
		paraster.Logger().Warn("runes missing from font", "font", fnt.Name(), "runes", string(missing))
	}

	renderer := paraster.NewRenderer()
	renderer.SetFont(fnt)
	renderer.SetSize(float32(cfg.size))
	renderer.SetColor(cfg.color)
	renderer.SetPadding(cfg.padding)
	renderer.SetMaxWidth(float32(cfg.maxWidth))
	renderer.SetKerning(cfg.kerning)
	if cfg.rasterizer == "edge" {
		renderer.SetRasterizer(mask.NewEdgeMarkerRasterizer())
	}
	if cfg.letterSpacing != 0 {
		spacing := float32(cfg.letterSpacing)
		renderer.SetSizer(func(face font.Scaled) font.Scaled {
			return sizer.PaddedAdvance(face, spacing)
		})
	}
	if cfg.cacheSize > 0 {
		renderer.SetCacheHandler(cache.NewDefaultCache(cfg.cacheSize).NewHandler())
	}

	img := renderer.Render(cfg.text)

	file, err := os.Create(cfg.out)
	if err != nil { return fmt.Errorf("creating output file: %w", err) }
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encoding png: %w", err)
	}
	if err := file.Close(); err != nil { return fmt.Errorf("closing output file: %w", err) }

	fmt.Fprintf(stdout, "Generated: %s\n", cfg.out)
	return nil
}

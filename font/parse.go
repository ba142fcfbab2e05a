package font

import "os"
import "io"
import "io/fs"
import "fmt"
import "errors"
import "strings"
import "compress/gzip"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/goregular"

// Returned when trying to parse a font from a path that doesn't end
// in .ttf, .otf, .ttf.gz or .otf.gz.
var ErrInvalidExtension = errors.New("invalid font file extension")

// Parses the given font data. The bytes must not be modified while
// the font is in use.
//
// Fonts without naming information are still valid, they simply
// have an empty name.
func ParseFromBytes(fontBytes []byte) (*Font, error) {
	newFont, err := sfnt.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	name, err := GetName(newFont)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("reading font name: %w", err)
	}
	return &Font{ sfnt: newFont, data: fontBytes, name: name }, nil
}

// Attempts to parse a font located at the given filepath. Supported
// formats are .ttf and .otf, optionally gzipped (.ttf.gz, .otf.gz).
func ParseFromPath(path string) (*Font, error) {
	known, gzipped := acceptFontPath(path)
	if !known {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidExtension, path)
	}

	file, err := os.Open(path)
	if err != nil { return nil, err }
	return parseFontFileAndClose(file, gzipped)
}

// Same as [ParseFromPath](), but for filesystems like [embed.FS].
//
// [embed.FS]: https://pkg.go.dev/embed#FS
func ParseFromFS(filesys fs.FS, path string) (*Font, error) {
	known, gzipped := acceptFontPath(path)
	if !known {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidExtension, path)
	}

	file, err := filesys.Open(path)
	if err != nil { return nil, err }
	return parseFontFileAndClose(file, gzipped)
}

// Returns the bundled default font (Go Regular).
func Default() (*Font, error) {
	return ParseFromBytes(goregular.TTF)
}

// ---- helpers ----

func parseFontFileAndClose(file io.ReadCloser, gzipped bool) (*Font, error) {
	var reader io.Reader = file
	if gzipped {
		gzipReader, err := gzip.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("opening gzipped font: %w", err)
		}
		reader = gzipReader
	}

	fontBytes, err := io.ReadAll(reader)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("reading font: %w", err)
	}
	err = file.Close()
	if err != nil { return nil, err }
	return ParseFromBytes(fontBytes)
}

// Returns whether the path has a known font extension and, if so,
// whether it's gzipped. Extensions are case insensitive.
func acceptFontPath(path string) (known bool, gzipped bool) {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".gz") {
		gzipped = true
		lower = lower[:len(lower) - 3]
	}
	if strings.HasSuffix(lower, ".ttf") || strings.HasSuffix(lower, ".otf") {
		return true, gzipped
	}
	return false, false
}

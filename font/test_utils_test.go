package font

import "bytes"
import "testing"
import "compress/gzip"

import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/gofont/goregular"

func mustParse(t *testing.T, fontBytes []byte) *Font {
	t.Helper()
	fnt, err := ParseFromBytes(fontBytes)
	if err != nil { t.Fatal(err) }
	return fnt
}

func regularFont(t *testing.T) *Font { return mustParse(t, goregular.TTF) }
func monoFont(t *testing.T) *Font { return mustParse(t, gomono.TTF) }

// Roboto keeps its kerning in GPOS pair adjustments, unlike the Go
// fonts, which have no kerning at all.
func robotoFont(t *testing.T) *Font {
	t.Helper()
	fnt, err := ParseFromPath("../testdata/Roboto-Regular.ttf")
	if err != nil { t.Fatal(err) }
	return fnt
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buffer bytes.Buffer
	writer := gzip.NewWriter(&buffer)
	if _, err := writer.Write(data); err != nil { t.Fatal(err) }
	if err := writer.Close(); err != nil { t.Fatal(err) }
	return buffer.Bytes()
}

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}

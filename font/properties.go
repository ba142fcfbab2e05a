package font

import "errors"

import "golang.org/x/image/font/sfnt"

var ErrNotFound = errors.New("font property not found or empty")

// Returns the requested font property for the given font.
// If the property is missing, [ErrNotFound] will be returned.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	str, err := font.Name(nil, property)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	if err == nil && str == "" { return "", ErrNotFound }
	return str, err
}

// Returns the family name of the given font. If the information is
// missing, [ErrNotFound] will be returned. Other errors are also
// possible (e.g., if the font naming table is invalid).
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}

// Returns the name of the given font. If the information is missing,
// [ErrNotFound] will be returned.
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the runes in the given text that can't be represented by the
// font. Repeated runes are only reported once, in order of appearance.
//
// If you load fonts dynamically, it is good practice to use this function
// to make sure that the fonts include all the glyphs that you require,
// as missing glyphs are silently rendered with the notdef glyph.
func GetMissingRunes(font *Font, text string) ([]rune, error) {
	var buffer sfnt.Buffer
	var missing []rune
	seen := make(map[rune]struct{})
	for _, codePoint := range text {
		if _, done := seen[codePoint]; done { continue }
		seen[codePoint] = struct{}{}
		index, err := font.sfnt.GlyphIndex(&buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}

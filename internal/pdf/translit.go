package pdf

import "strings"

// The Helvetica core font cannot encode the Turkish-specific glyphs, so the
// fallback path maps them to their closest ASCII forms.
var turkishASCII = strings.NewReplacer(
	"ı", "i", "İ", "I",
	"ş", "s", "Ş", "S",
	"ğ", "g", "Ğ", "G",
	"ü", "u", "Ü", "U",
	"ö", "o", "Ö", "O",
	"ç", "c", "Ç", "C",
)

// Transliterate maps Turkish glyphs to ASCII for core-font rendering.
func Transliterate(s string) string {
	return turkishASCII.Replace(s)
}

// upperTurkish uppercases with Turkish dotted/dotless i handling, for the
// quote reference and section labels.
func upperTurkish(s string) string {
	s = strings.ReplaceAll(s, "i", "İ")
	s = strings.ReplaceAll(s, "ı", "I")
	return strings.ToUpper(s)
}

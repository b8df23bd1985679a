package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks, and recomposes,
// turning "Île-de-France" into "Ile-de-France".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// RegionKey normalizes a region label into the map key used by the regional
// rollup: lowercase, diacritics stripped, anything non-alphanumeric folded
// to a single space. "Île-de-France" → "ile de france".
func RegionKey(name string) string {
	if name == "" {
		return ""
	}
	s := strings.ToLower(name)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

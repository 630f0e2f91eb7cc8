package data

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks strips diacritics so names like "Flabébé" key cleanly.
var foldMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize converts a display name to the canonical lowercase-hyphenated
// identifier used as the lookup key everywhere: "Thunder Wave" and
// "thunder_wave" both become "thunder-wave".
func Normalize(name string) string {
	folded, _, err := transform.String(foldMarks, name)
	if err != nil {
		folded = name
	}
	var b strings.Builder
	b.Grow(len(folded))
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(folded)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '_' || r == '-':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		default:
			// Apostrophes, periods and other punctuation vanish
			// ("King's Rock" → "kings-rock").
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

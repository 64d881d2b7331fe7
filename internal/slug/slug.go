// Package slug normalises titles and folder names into URL-safe slugs the
// way WordPress expects them.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	separators   = regexp.MustCompile(`[\s-]+`)

	// NFD-decompose, strip combining marks, recompose.
	deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Make converts a free-form string into a lowercase hyphenated slug.
// Diacritics are folded to their base letters, anything outside [a-z0-9]
// is dropped, and runs of whitespace or hyphens collapse to one hyphen.
func Make(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	s := strings.ToLower(input)
	if folded, _, err := transform.String(deaccent, s); err == nil {
		s = folded
	}
	s = invalidChars.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

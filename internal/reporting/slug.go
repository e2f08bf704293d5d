package reporting

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StatusSlug turns a display status into a stable machine key: accents
// stripped, lowercased, spaces replaced with hyphens. "Em Aprovisionamento"
// becomes "em-aprovisionamento", "Pendência" becomes "pendencia".
func StatusSlug(status string) string {
	s, _, err := transform.String(deaccent, status)
	if err != nil {
		s = status
	}
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "-")
}

package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeSearchText lowercases s and strips diacritics so "Ibuprofeno"
// matches "ibuprofeno" and "Paracetamól" matches "paracetamol".
func NormalizeSearchText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	return strings.ToLower(strings.TrimSpace(result))
}

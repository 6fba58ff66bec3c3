// Package text provides the string transforms shared by the extractors:
// term normalization for index comparisons and cleanup of text scraped
// from dictionary pages.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes, drops combining diacritical marks and recomposes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize returns term without diacritics and upper-cased
// (e.g. "Élève" -> "ELEVE"). It is only meant for equality comparisons;
// display forms keep their diacritics.
func Normalize(term string) string {
	if term == "" {
		return ""
	}
	result, _, err := transform.String(stripMarks, term)
	if err != nil {
		result = term
	}
	return strings.ToUpper(result)
}

// EqualNormalized reports whether a and b are equal after normalization.
func EqualNormalized(a, b string) bool {
	return Normalize(strings.TrimSpace(a)) == Normalize(strings.TrimSpace(b))
}

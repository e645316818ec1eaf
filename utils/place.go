package utils

import (
	"strings"
	"unicode"
)

// NormalizePlace collapses the spellings reviewers use for one place into a
// canonical label, so "Wuhan, China" and "wuhan" filter as the same origin.
// Unrecognized labels pass through trimmed rather than merged.
func NormalizePlace(value string) string {
	cleaned := strings.TrimSpace(value)
	tokens := strings.FieldsFunc(strings.ToLower(cleaned), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	for _, token := range tokens {
		switch token {
		case "wuhan":
			return "Wuhan"
		case "singapore":
			return "Singapore"
		case "japan":
			return "Japan"
		case "korea":
			return "South Korea"
		case "taiwan":
			return "Taiwan"
		case "usa", "america":
			return "United States"
		}
	}
	return cleaned
}

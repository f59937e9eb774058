package query

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Fold normalizes text for matching: NFC composition, then lowercasing.
// Card text and query text must both pass through Fold to be comparable.
//
// Safe for concurrent use; a fresh Caser is created per call because
// cases.Caser keeps state.
func Fold(s string) string {
	return cases.Lower(language.Und).String(norm.NFC.String(s))
}

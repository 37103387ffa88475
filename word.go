package bbow

import (
	"strings"
	"unicode"
)

// isAlphabetic is true for code-points with the Unicode Alphabetic property:
// letters, letter numbers and Other_Alphabetic marks (e.g. Devanagari
// vowel signs).
func isAlphabetic(r rune) bool {
	return unicode.IsLetter(r) || unicode.In(r, unicode.Nl, unicode.Other_Alphabetic)
}

func isNotAlphabetic(r rune) bool {
	return !isAlphabetic(r)
}

// isWord is true for non-empty strings of alphabetic code-points only.
func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isAlphabetic(r) {
			return false
		}
	}
	return true
}

// trimFragment strips leading and trailing non-alphabetic code-points.
// The result is a substring of fragment.
func trimFragment(fragment string) string {
	return strings.TrimFunc(fragment, isNotAlphabetic)
}

// needsLowercase is true if any code-point of word differs from its
// lowercase mapping. This includes titlecase letters.
func needsLowercase(word string) bool {
	for _, r := range word {
		if unicode.ToLower(r) != r {
			return true
		}
	}
	return false
}

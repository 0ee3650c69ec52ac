// Package casing carries the casing of a matched span over to its
// replacement.
package casing

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers hold state, so a fresh one is made per call.
func upper(s string) string { return cases.Upper(language.Und).String(s) }

func lower(s string) string { return cases.Lower(language.Und).String(s) }

// Preserve returns candidate cased the way original is cased:
//
//   - original empty: candidate as is
//   - original all uppercase and longer than one rune: candidate uppercased
//   - original starts with an uppercase rune: candidate capitalised
//   - anything else: candidate lowercased
func Preserve(candidate, original string) string {
	if original == "" {
		return candidate
	}

	first, _ := utf8.DecodeRuneInString(original)
	firstUpper := string(first) == upper(string(first))
	allUpper := original == upper(original)

	switch {
	case allUpper && utf8.RuneCountInString(original) > 1:
		return upper(candidate)
	case firstUpper:
		return Capitalize(candidate)
	default:
		return lower(candidate)
	}
}

// Capitalize uppercases the first rune of s and lowercases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return upper(string(first)) + lower(s[size:])
}

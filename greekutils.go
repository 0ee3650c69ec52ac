// Package greekutils converts Greek text to and from Latin representations
// (greeklish, phonetic Latin, scholarly transliteration, ISO 843/ELOT 743
// Type 1 and Type 2), strips diacritics and removes stop words.
//
// Converters never fail: empty input is returned unchanged and characters
// a table does not cover pass through. All functions are safe for
// concurrent use.
package greekutils

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/mkarajohn/greek-text-utils/internal/mappings"
	"github.com/mkarajohn/greek-text-utils/internal/replace"
	"github.com/mkarajohn/greek-text-utils/internal/transliteration"
)

// ToGreek converts greeklish or Latin text to Greek. Every rune in
// ignoreCharacters is left untouched.
func ToGreek(text string, ignoreCharacters ...string) string {
	return convert(text, mappings.GreeklishToGreek, ignoreCharacters)
}

// ToGreeklish converts Greek text to greeklish.
func ToGreeklish(text string, ignoreCharacters ...string) string {
	return convert(text, mappings.GreekToGreeklish, ignoreCharacters)
}

// ToPhoneticLatin converts Greek text to Latin by sound.
func ToPhoneticLatin(text string, ignoreCharacters ...string) string {
	return convert(text, mappings.GreekToPhoneticLatin, ignoreCharacters)
}

// ToTransliteratedLatin converts Greek text to scholarly Latin letter by
// letter, with macrons on long vowels.
func ToTransliteratedLatin(text string, ignoreCharacters ...string) string {
	return convert(text, mappings.GreekToTransliteratedLatin, ignoreCharacters)
}

// ToISO843Type1 transliterates Greek per ISO 843/ELOT 743 Type 1. The
// mapping is fixed and reversible with FromISO843Type1; it is the form
// used in catalogues and databases.
func ToISO843Type1(text string) string {
	return transliteration.ToISO843Type1(compose(text))
}

// FromISO843Type1 converts ISO 843 Type 1 Latin back to Greek, writing ς
// at the end of words.
func FromISO843Type1(text string) string {
	return transliteration.FromISO843Type1(compose(text))
}

// ToISO843Type2 transcribes Greek per ISO 843/ELOT 743 Type 2, the
// pronunciation-based form used on passports, ID cards and road signs.
func ToISO843Type2(text string) string {
	return transliteration.ToISO843Type2(compose(text))
}

// ToISO843 is ToISO843Type2.
//
// Deprecated: use ToISO843Type2, or ToISO843Type1 for transliteration.
func ToISO843(text string) string {
	return ToISO843Type2(text)
}

// SanitizeDiacritics replaces accented and breathing-marked Greek vowels
// with the bare letter. Letters with dialytika are kept.
func SanitizeDiacritics(text string, ignoreCharacters ...string) string {
	return convert(text, mappings.Diacritics, ignoreCharacters)
}

// RemoveStopWords removes Greek stop words regardless of case and trims
// the result. With collapseWhitespace every run of two or more whitespace
// characters becomes a single space.
func RemoveStopWords(text string, collapseWhitespace bool) string {
	if text == "" {
		return text
	}
	text = strings.TrimSpace(replace.Apply(compose(text), mappings.StopWords, replace.FoldCase()))
	if collapseWhitespace {
		text = collapseSpaces(text)
	}
	return text
}

func convert(text string, t *replace.Table, ignore []string) string {
	if text == "" {
		return text
	}
	var opts []replace.Option
	if chars := strings.Join(ignore, ""); chars != "" {
		opts = append(opts, replace.WithIgnore(chars))
	}
	return replace.Apply(compose(text), t, opts...)
}

// compose brings text to NFC so decomposed accents match the precomposed
// table entries.
func compose(text string) string {
	if norm.NFC.IsNormalString(text) {
		return text
	}
	return norm.NFC.String(text)
}

func collapseSpaces(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(squash(text[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(squash(text[start:]))
	}
	return b.String()
}

// squash keeps a lone whitespace rune as is and turns longer runs into one
// space.
func squash(run string) string {
	if len([]rune(run)) < 2 {
		return run
	}
	return " "
}

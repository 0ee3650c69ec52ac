// Package mappings holds the conversion tables and character classes.
//
// Everything here is built during package initialisation and is read-only
// afterwards. Table order matters: see replace.Table.
package mappings

import (
	"github.com/mkarajohn/greek-text-utils/internal/replace"
)

const (
	lowerVowels         = "αεηιουω"
	lowerAccentedVowels = "άέήίόύώϊϋΐΰ"
	upperVowels         = "ΑΕΗΙΟΥΩ"
	upperAccentedVowels = "ΆΈΉΊΌΎΏΪΫ"
	lowerConsonants     = "βγδζθκλμνξπρσςτφχψ"
	voicedConsonants    = "βγδζλμνρ"
)

var (
	// GreekLetters holds every lowercase Greek letter, accented or not.
	// Callers lowercase a rune before testing it.
	GreekLetters = replace.NewCharSet(lowerVowels + lowerConsonants + lowerAccentedVowels)

	// VoicedContext holds the lowercase letters after which αυ, ευ and ηυ
	// are voiced: vowels and voiced consonants.
	VoicedContext = replace.NewCharSet(lowerVowels + lowerAccentedVowels + voicedConsonants)

	// WordLetters holds the Greek letters in both cases, used to decide
	// whether a σ stands at the end of a word.
	WordLetters = replace.NewCharSet(runeRange('Α', 'Ω') + runeRange('α', 'ω') +
		upperAccentedVowels + lowerAccentedVowels)
)

func runeRange(from, to rune) string {
	rs := make([]rune, 0, to-from+1)
	for r := from; r <= to; r++ {
		rs = append(rs, r)
	}
	return string(rs)
}

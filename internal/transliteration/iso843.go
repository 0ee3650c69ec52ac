package transliteration

import (
	"strings"
	"unicode"

	"github.com/mkarajohn/greek-text-utils/internal/casing"
	"github.com/mkarajohn/greek-text-utils/internal/mappings"
	"github.com/mkarajohn/greek-text-utils/internal/replace"
)

// contextPattern is a digraph whose Type 2 rendering depends on its
// neighbours. vowel is the Latin base of αυ/ευ/ηυ; it is empty for μπ.
type contextPattern struct {
	find  string
	vowel string
}

var type2Context = []contextPattern{
	{find: "αυ", vowel: "a"},
	{find: "αύ", vowel: "a"},
	{find: "ευ", vowel: "e"},
	{find: "εύ", vowel: "e"},
	{find: "ηυ", vowel: "i"},
	{find: "ηύ", vowel: "i"},
	{find: "μπ"},
}

// ToISO843Type1 transliterates Greek with the fixed ELOT 743 Type 1 rules.
func ToISO843Type1(text string) string {
	if text == "" {
		return text
	}
	return replace.Apply(text, mappings.GreekToISO843Type1)
}

// ToISO843Type2 transcribes Greek with the ELOT 743 Type 2 rules used on
// passports and road signs.
//
// αυ, ευ and ηυ become av/ev/iv before a vowel, a voiced consonant or the
// end of the text and af/ef/if otherwise. μπ is mp between two Greek
// letters and b anywhere else. A single all-caps word comes out all caps.
func ToISO843Type2(text string) string {
	if text == "" {
		return text
	}

	allUpper := isUppercaseWord(text)

	for _, p := range type2Context {
		text = replace.Rewrite(text, p.find, true, func(m replace.Match) string {
			return casing.Preserve(p.resolve(m), m.Text)
		})
	}

	text = replace.Apply(text, mappings.GreekToISO843Type2)

	if allUpper {
		text = replace.Apply(text, mappings.ISO843Type2Uppercase)
	}
	return text
}

func (p contextPattern) resolve(m replace.Match) string {
	if p.vowel == "" {
		if isGreekLetter(m.Before) && isGreekLetter(m.After) {
			return "mp"
		}
		return "b"
	}
	if m.After == replace.None || mappings.VoicedContext.Has(unicode.ToLower(m.After)) {
		return p.vowel + "v"
	}
	return p.vowel + "f"
}

// isUppercaseWord reports whether text is a single word with more than
// one Greek letter, all of them capitals.
func isUppercaseWord(text string) bool {
	if strings.Contains(text, " ") {
		return false
	}
	n := 0
	for _, r := range text {
		if !isGreekLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		n++
	}
	return n > 1
}

func isGreekLetter(r rune) bool {
	return r != replace.None && mappings.GreekLetters.Has(unicode.ToLower(r))
}

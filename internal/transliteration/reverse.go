package transliteration

import (
	"github.com/mkarajohn/greek-text-utils/internal/mappings"
	"github.com/mkarajohn/greek-text-utils/internal/replace"
)

// FromISO843Type1 turns ISO 843 Type 1 Latin back into Greek and writes
// word-final sigma as ς. A hyphen counts as part of the word, so "as-as"
// becomes "ασ-ας".
func FromISO843Type1(text string) string {
	if text == "" {
		return text
	}
	text = replace.Apply(text, mappings.ISO843Type1Reverse)
	return finalSigma(text)
}

func finalSigma(text string) string {
	return replace.Rewrite(text, "σ", false, func(m replace.Match) string {
		if m.After == replace.None || (m.After != '-' && !mappings.WordLetters.Has(m.After)) {
			return "ς"
		}
		return m.Text
	})
}

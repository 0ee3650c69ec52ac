// Package transliteration converts Greek to and from the ISO 843 (ELOT 743)
// Latin schemes and detects which script a text is written in.
package transliteration

import (
	"unicode"
)

type Script string

const (
	ScriptGreek Script = "greek"
	ScriptLatin Script = "latin"
	ScriptMixed Script = "mixed"
	ScriptNone  Script = "none"
)

// DetectScript reports whether the letters of text are Greek, Latin, both,
// or whether text has no letters of either script.
func DetectScript(text string) Script {
	var greek, latin bool
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Greek, r):
			greek = true
		case unicode.Is(unicode.Latin, r):
			latin = true
		}
		if greek && latin {
			return ScriptMixed
		}
	}
	switch {
	case greek:
		return ScriptGreek
	case latin:
		return ScriptLatin
	default:
		return ScriptNone
	}
}

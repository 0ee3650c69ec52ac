package mappings

import "github.com/mkarajohn/greek-text-utils/internal/replace"

// phoneticDiphthongs lists αυ/ευ/ηυ in every casing with their voiced
// Latin form.
var phoneticDiphthongs = pairs(
	"ΑΥ", "AV", "ΑΎ", "ÁV", "Αυ", "Av", "Αύ", "Áv", "αυ", "av", "αύ", "áv",
	"ΕΥ", "EV", "ΕΎ", "ÉV", "Ευ", "Ev", "Εύ", "Év", "ευ", "ev", "εύ", "év",
	"ΗΥ", "IV", "ΗΎ", "ÍV", "Ηυ", "Iv", "Ηύ", "Ív", "ηυ", "iv", "ηύ", "ív",
)

// GreekToPhoneticLatin renders modern Greek the way it sounds: αυ/ευ/ηυ are
// av/ev/iv before a vowel and af/ef/if elsewhere, αι/ει/οι/υι collapse to
// e/i, γ before a front vowel is y, and μπ/ντ/γκ are b/d/g. Stress marks
// are kept as acute accents.
var GreekToPhoneticLatin = replace.MustTable("greek-to-phonetic-latin", replace.Exact, concat(
	// The vowel is kept in Greek and converted by a later row.
	followedBy(lowerVowels+lowerAccentedVowels+upperVowels+upperAccentedVowels, phoneticDiphthongs...),
	pairs(
		"ΑΥ", "AF", "ΑΎ", "ÁF", "Αυ", "Af", "Αύ", "Áf", "αυ", "af", "αύ", "áf",
		"ΕΥ", "EF", "ΕΎ", "ÉF", "Ευ", "Ef", "Εύ", "Éf", "ευ", "ef", "εύ", "éf",
		"ΗΥ", "IF", "ΗΎ", "ÍF", "Ηυ", "If", "Ηύ", "Íf", "ηυ", "if", "ηύ", "íf",

		"ΓΓ", "NG", "Γγ", "Ng", "γγ", "gg",
		"ΓΚ", "G", "Γκ", "G", "γκ", "g",

		"γαι", "ye", "γαί", "yé", "γει", "yi", "γεί", "yí", "γοι", "yi", "γοί", "yí",
		"Γαι", "Ye", "Γαί", "Yé", "Γει", "Yi", "Γεί", "Yí", "Γοι", "Yi", "Γοί", "Yí",
		"γε", "ye", "γέ", "yé", "γη", "yi", "γή", "yí", "γι", "yi", "γί", "yí", "γυ", "yi", "γύ", "yí",
		"Γε", "Ye", "Γέ", "Yé", "Γη", "Yi", "Γή", "Yí", "Γι", "Yi", "Γί", "Yí", "Γυ", "Yi", "Γύ", "Yí",

		"ΟΥ", "OU", "ΟΎ", "OÚ", "Ου", "Ou", "Ού", "Oú", "ου", "ou", "ού", "oú",
		"ΑΙ", "E", "ΑΊ", "É", "Αι", "E", "Αί", "É", "αι", "e", "αί", "é",
		"ΕΙ", "I", "ΕΊ", "Í", "Ει", "I", "Εί", "Í", "ει", "i", "εί", "í",
		"ΟΙ", "I", "ΟΊ", "Í", "Οι", "I", "Οί", "Í", "οι", "i", "οί", "í",
		"ΥΙ", "I", "υι", "i", "υί", "í",

		"ΜΠ", "B", "Μπ", "B", "μπ", "b",
		"ΝΤ", "D", "Ντ", "D", "ντ", "d",

		"Α", "A", "Ά", "Á", "α", "a", "ά", "á",
		"Β", "V", "β", "v",
		"Γ", "G", "γ", "g",
		"Δ", "D", "δ", "d",
		"Ε", "E", "Έ", "É", "ε", "e", "έ", "é",
		"Ζ", "Z", "ζ", "z",
		"Η", "I", "Ή", "Í", "η", "i", "ή", "í",
		"Θ", "Th", "θ", "th",
		"Ι", "I", "Ί", "Í", "Ϊ", "I", "ι", "i", "ί", "í", "ϊ", "i", "ΐ", "í",
		"Κ", "K", "κ", "k",
		"Λ", "L", "λ", "l",
		"Μ", "M", "μ", "m",
		"Ν", "N", "ν", "n",
		"Ξ", "X", "ξ", "x",
		"Ο", "O", "Ό", "Ó", "ο", "o", "ό", "ó",
		"Π", "P", "π", "p",
		"Ρ", "R", "ρ", "r",
		"Σ", "S", "σ", "s", "ς", "s",
		"Τ", "T", "τ", "t",
		"Υ", "I", "Ύ", "Í", "Ϋ", "I", "υ", "i", "ύ", "í", "ϋ", "i", "ΰ", "í",
		"Φ", "F", "φ", "f",
		"Χ", "Kh", "χ", "kh",
		"Ψ", "Ps", "ψ", "ps",
		"Ω", "O", "Ώ", "Ó", "ω", "o", "ώ", "ó",
	),
)...)

package mappings

import "github.com/mkarajohn/greek-text-utils/internal/replace"

// GreeklishToGreek maps greeklish (Latin letters, "8" for θ) to Greek.
// Sigma always becomes σ; final ς is not inferred.
var GreeklishToGreek = replace.MustTable("greeklish-to-greek", replace.Exact, pairs(
	"PS", "Ψ", "Ps", "Ψ", "ps", "ψ",
	"KS", "Ξ", "Ks", "Ξ", "ks", "ξ",
	"TH", "Θ", "Th", "Θ", "th", "θ",
	"CH", "Χ", "Ch", "Χ", "ch", "χ",
	"8", "θ",

	"A", "Α", "a", "α",
	"B", "Β", "b", "β",
	"V", "Β", "v", "β",
	"G", "Γ", "g", "γ",
	"D", "Δ", "d", "δ",
	"E", "Ε", "e", "ε",
	"Z", "Ζ", "z", "ζ",
	"H", "Η", "h", "η",
	"I", "Ι", "i", "ι",
	"K", "Κ", "k", "κ",
	"L", "Λ", "l", "λ",
	"M", "Μ", "m", "μ",
	"N", "Ν", "n", "ν",
	"X", "Χ", "x", "χ",
	"O", "Ο", "o", "ο",
	"P", "Π", "p", "π",
	"R", "Ρ", "r", "ρ",
	"S", "Σ", "s", "σ",
	"T", "Τ", "t", "τ",
	"Y", "Υ", "y", "υ",
	"U", "Υ", "u", "υ",
	"F", "Φ", "f", "φ",
	"W", "Ω", "w", "ω",
)...)

// GreekToGreeklish maps Greek to greeklish. Accented vowels outside the
// ου/αυ/ευ digraphs pass through.
var GreekToGreeklish = replace.MustTable("greek-to-greeklish", replace.Exact, pairs(
	"ΜΠ", "B", "Μπ", "B", "μπ", "b",

	"ΟΥ", "OU", "ΟΎ", "OU", "Ου", "Ou", "Ού", "Ou", "ου", "ou", "ού", "ou",
	"ΑΥ", "AU", "ΑΎ", "AU", "Αυ", "Au", "Αύ", "Au", "αυ", "au", "αύ", "au",
	"ΕΥ", "EU", "ΕΎ", "EU", "Ευ", "Eu", "Εύ", "Eu", "ευ", "eu", "εύ", "eu",

	"Α", "A", "α", "a",
	"Β", "V", "β", "v",
	"Γ", "G", "γ", "g",
	"Δ", "D", "δ", "d",
	"Ε", "E", "ε", "e",
	"Ζ", "Z", "ζ", "z",
	"Η", "H", "η", "h",
	"Θ", "8", "θ", "8",
	"Ι", "I", "ι", "i",
	"Κ", "K", "κ", "k",
	"Λ", "L", "λ", "l",
	"Μ", "M", "μ", "m",
	"Ν", "N", "ν", "n",
	"Ξ", "Ks", "ξ", "ks",
	"Ο", "O", "ο", "o",
	"Π", "P", "π", "p",
	"Ρ", "R", "ρ", "r",
	"Σ", "S", "σ", "s", "ς", "s",
	"Τ", "T", "τ", "t",
	"Υ", "Y", "υ", "y",
	"Φ", "F", "φ", "f",
	"Χ", "X", "χ", "x",
	"Ψ", "Ps", "ψ", "ps",
	"Ω", "W", "ω", "w",
)...)

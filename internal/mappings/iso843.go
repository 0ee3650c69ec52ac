package mappings

import "github.com/mkarajohn/greek-text-utils/internal/replace"

// iso843Letters maps the single letters shared by both ISO 843 types.
// θ, χ and ψ differ between the types in their capital form and are
// listed by each table.
var iso843Letters = pairs(
	"Α", "A", "Ά", "A", "α", "a", "ά", "a",
	"Β", "V", "β", "v",
	"Γ", "G", "γ", "g",
	"Δ", "D", "δ", "d",
	"Ε", "E", "Έ", "E", "ε", "e", "έ", "e",
	"Ζ", "Z", "ζ", "z",
	"Η", "I", "Ή", "I", "η", "i", "ή", "i",
	"Ι", "I", "Ί", "I", "Ϊ", "I", "ι", "i", "ί", "i", "ϊ", "i", "ΐ", "i",
	"Κ", "K", "κ", "k",
	"Λ", "L", "λ", "l",
	"Μ", "M", "μ", "m",
	"Ν", "N", "ν", "n",
	"Ξ", "X", "ξ", "x",
	"Ο", "O", "Ό", "O", "ο", "o", "ό", "o",
	"Π", "P", "π", "p",
	"Ρ", "R", "ρ", "r",
	"Σ", "S", "σ", "s", "ς", "s",
	"Τ", "T", "τ", "t",
	"Υ", "Y", "Ύ", "Y", "Ϋ", "Y", "υ", "y", "ύ", "y", "ϋ", "y", "ΰ", "y",
	"Φ", "F", "φ", "f",
	"Ω", "O", "Ώ", "O", "ω", "o", "ώ", "o",
)

var ouDigraph = pairs(
	"ΟΥ", "OU", "ΟΎ", "OU", "Ου", "Ou", "Ού", "Ou", "ου", "ou", "ού", "ou",
)

// GreekToISO843Type1 is the ELOT 743 Type 1 transliteration. Every rule is
// fixed: αυ is always au, μπ always mp. A capital Θ, Χ or Ψ followed by a
// lowercase letter is written Th, Ch, Ps; otherwise TH, CH, PS.
var GreekToISO843Type1 = replace.MustTable("greek-to-iso843-type1", replace.Exact, concat(
	followedBy(lowerVowels+lowerConsonants+lowerAccentedVowels, pairs(
		"Θ", "Th", "Χ", "Ch", "Ψ", "Ps",
	)...),
	pairs(
		"ΓΧ", "NCH", "Γχ", "Nch", "γχ", "nch",
		"ΓΞ", "NX", "Γξ", "Nx", "γξ", "nx",
		"ΓΓ", "NG", "Γγ", "Ng", "γγ", "ng",
		"ΓΚ", "GK", "Γκ", "Gk", "γκ", "gk",

		"ΑΥ", "AU", "ΑΎ", "AU", "Αυ", "Au", "Αύ", "Au", "αυ", "au", "αύ", "au",
		"ΕΥ", "EU", "ΕΎ", "EU", "Ευ", "Eu", "Εύ", "Eu", "ευ", "eu", "εύ", "eu",
		"ΗΥ", "IY", "ΗΎ", "IY", "Ηυ", "Iy", "Ηύ", "Iy", "ηυ", "iy", "ηύ", "iy",
	),
	ouDigraph,
	pairs(
		"Θ", "TH", "θ", "th",
		"Χ", "CH", "χ", "ch",
		"Ψ", "PS", "ψ", "ps",
	),
	iso843Letters,
)...)

// GreekToISO843Type2 is the base table of the ELOT 743 Type 2
// transcription. αυ/ευ/ηυ and μπ are resolved from context before it runs.
// Θ, Χ, Ψ, ΓΧ and ΓΞ come out titlecased; all-caps input is fixed up
// afterwards.
var GreekToISO843Type2 = replace.MustTable("greek-to-iso843-type2", replace.Exact, concat(
	pairs(
		"ΓΧ", "Nch", "Γχ", "Nch", "γχ", "nch",
		"ΓΞ", "Nx", "Γξ", "Nx", "γξ", "nx",
		"ΓΓ", "NG", "Γγ", "Ng", "γγ", "ng",
		"ΓΚ", "GK", "Γκ", "Gk", "γκ", "gk",
	),
	ouDigraph,
	pairs(
		"Θ", "Th", "θ", "th",
		"Χ", "Ch", "χ", "ch",
		"Ψ", "Ps", "ψ", "ps",
	),
	iso843Letters,
)...)

// ISO843Type2Uppercase turns the titlecased multi-letter output of
// GreekToISO843Type2 into capitals for all-caps input.
var ISO843Type2Uppercase = replace.MustTable("iso843-type2-uppercase", replace.Exact, pairs(
	"Th", "TH", "Ch", "CH", "Ps", "PS", "Nch", "NCH", "Nx", "NX",
)...)

// ISO843Type1Reverse maps Type 1 Latin back to Greek, longest pattern
// first. Each pattern is listed in upper, capitalised and lower form.
// Sigma is always σ here; final ς is applied separately.
var ISO843Type1Reverse = replace.MustTable("iso843-type1-reverse", replace.Exact, pairs(
	// trigraphs
	"NCH", "ΓΧ", "Nch", "Γχ", "nch", "γχ",

	// clusters
	"NX", "ΓΞ", "Nx", "Γξ", "nx", "γξ",
	"NG", "ΓΓ", "Ng", "Γγ", "ng", "γγ",
	"GK", "ΓΚ", "Gk", "Γκ", "gk", "γκ",
	"NT", "ΝΤ", "Nt", "Ντ", "nt", "ντ",
	"TS", "ΤΣ", "Ts", "Τσ", "ts", "τσ",
	"TZ", "ΤΖ", "Tz", "Τζ", "tz", "τζ",

	// vowel digraphs
	"AI", "ΑΙ", "Ai", "Αι", "ai", "αι",
	"EI", "ΕΙ", "Ei", "Ει", "ei", "ει",
	"OI", "ΟΙ", "Oi", "Οι", "oi", "οι",
	"OU", "ΟΥ", "Ou", "Ου", "ou", "ου",

	// fixed Type 1 digraphs
	"AU", "ΑΥ", "Au", "Αυ", "au", "αυ",
	"EU", "ΕΥ", "Eu", "Ευ", "eu", "ευ",
	"IY", "ΗΥ", "Iy", "Ηυ", "iy", "ηυ",
	"MP", "ΜΠ", "Mp", "Μπ", "mp", "μπ",

	// single phonemes
	"TH", "Θ", "Th", "Θ", "th", "θ",
	"CH", "Χ", "Ch", "Χ", "ch", "χ",
	"PS", "Ψ", "Ps", "Ψ", "ps", "ψ",

	"A", "Α", "a", "α",
	"V", "Β", "v", "β",
	"G", "Γ", "g", "γ",
	"D", "Δ", "d", "δ",
	"E", "Ε", "e", "ε",
	"Z", "Ζ", "z", "ζ",
	"I", "Ι", "i", "ι",
	"K", "Κ", "k", "κ",
	"L", "Λ", "l", "λ",
	"M", "Μ", "m", "μ",
	"N", "Ν", "n", "ν",
	"X", "Ξ", "x", "ξ",
	"O", "Ο", "o", "ο",
	"P", "Π", "p", "π",
	"R", "Ρ", "r", "ρ",
	"S", "Σ", "s", "σ",
	"T", "Τ", "t", "τ",
	"Y", "Υ", "y", "υ",
	"F", "Φ", "f", "φ",
	"H", "Η", "h", "η",
	"W", "Ω", "w", "ω",
)...)

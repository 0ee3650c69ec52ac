package mappings

import "github.com/mkarajohn/greek-text-utils/internal/replace"

// GreekToTransliteratedLatin is the scholarly letter-for-letter
// romanisation: η and ω take a macron, υ is u, rough breathing is h, and
// accents are carried over onto the Latin vowel.
var GreekToTransliteratedLatin = replace.MustTable("greek-to-transliterated-latin", replace.Exact, pairs(
	// nasal γ
	"γγ", "ng", "γκ", "nk", "γξ", "nx", "γχ", "nkh",

	// breathings
	"Ἀ", "A", "Ἁ", "Ha", "ἀ", "a", "ἁ", "ha",
	"Ἄ", "Á", "Ἅ", "Há", "ἄ", "á", "ἅ", "há",
	"Ἐ", "E", "Ἑ", "He", "ἐ", "e", "ἑ", "he",
	"Ἔ", "É", "Ἕ", "Hé", "ἔ", "é", "ἕ", "hé",
	"Ἠ", "Ē", "Ἡ", "Hē", "ἠ", "ē", "ἡ", "hē",
	"Ἤ", "Ḗ", "Ἥ", "Hḗ", "ἤ", "ḗ", "ἥ", "hḗ",
	"Ἰ", "I", "Ἱ", "Hi", "ἰ", "i", "ἱ", "hi",
	"Ἴ", "Í", "Ἵ", "Hí", "ἴ", "í", "ἵ", "hí",
	"Ὀ", "O", "Ὁ", "Ho", "ὀ", "o", "ὁ", "ho",
	"Ὄ", "Ó", "Ὅ", "Hó", "ὄ", "ó", "ὅ", "hó",
	"Ὑ", "Hu", "ὐ", "u", "ὑ", "hu",
	"Ὕ", "Hú", "ὔ", "ú", "ὕ", "hú",
	"Ὠ", "Ō", "Ὡ", "Hō", "ὠ", "ō", "ὡ", "hō",
	"Ὤ", "Ṓ", "Ὥ", "Hṓ", "ὤ", "ṓ", "ὥ", "hṓ",
	"Ῥ", "Rh", "ῥ", "rh",

	// circumflex and grave
	"ᾶ", "â", "ῆ", "ê̄", "ῖ", "î", "ῦ", "û", "ῶ", "ō̂",
	"ὰ", "à", "ὲ", "è", "ὴ", "ḕ", "ὶ", "ì", "ὸ", "ò", "ὺ", "ù", "ὼ", "ṑ",

	"Α", "A", "Ά", "Á", "α", "a", "ά", "á",
	"Β", "B", "β", "b",
	"Γ", "G", "γ", "g",
	"Δ", "D", "δ", "d",
	"Ε", "E", "Έ", "É", "ε", "e", "έ", "é",
	"Ζ", "Z", "ζ", "z",
	"Η", "Ē", "Ή", "Ḗ", "η", "ē", "ή", "ḗ",
	"Θ", "Th", "θ", "th",
	"Ι", "I", "Ί", "Í", "Ϊ", "Ï", "ι", "i", "ί", "í", "ϊ", "ï", "ΐ", "ḯ",
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
	"Υ", "U", "Ύ", "Ú", "Ϋ", "Ü", "υ", "u", "ύ", "ú", "ϋ", "ü", "ΰ", "ǘ",
	"Φ", "Ph", "φ", "ph",
	"Χ", "Kh", "χ", "kh",
	"Ψ", "Ps", "ψ", "ps",
	"Ω", "Ō", "Ώ", "Ṓ", "ω", "ō", "ώ", "ṓ",
)...)

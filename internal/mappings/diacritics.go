package mappings

import "github.com/mkarajohn/greek-text-utils/internal/replace"

// Diacritics maps accented and breathing-marked vowels (monotonic and
// polytonic) and ῤ/ῥ to their bare letters. Each Find is a character class.
// Letters with dialytika (ϊ, ΐ, ϋ, ΰ) are left alone.
var Diacritics = replace.MustTable("diacritics", replace.Class,
	replace.Rule{Find: "άἀἁἂἃἄἅἆἇὰάᾀᾁᾂᾃᾄᾅᾆᾇᾰᾱᾲᾳᾴᾶᾷ", Replace: "α"},
	replace.Rule{Find: "ΆἈἉἊἋἌἍἎἏᾈᾉᾊᾋᾌᾍᾎᾏᾸᾹᾺΆᾼ", Replace: "Α"},
	replace.Rule{Find: "έἐἑἒἓἔἕὲέ", Replace: "ε"},
	replace.Rule{Find: "ΈἘἙἚἛἜἝῈΈ", Replace: "Ε"},
	replace.Rule{Find: "ήἠἡἢἣἤἥἦἧὴήᾐᾑᾒᾓᾔᾕᾖᾗῂῃῄῆῇ", Replace: "η"},
	replace.Rule{Find: "ΉἨἩἪἫἬἭἮἯᾘᾙᾚᾛᾜᾝᾞᾟῊΉῌ", Replace: "Η"},
	replace.Rule{Find: "ίἰἱἲἳἴἵἶἷὶίῐῑῖ", Replace: "ι"},
	replace.Rule{Find: "ΊἸἹἺἻἼἽἾἿῘῙῚΊ", Replace: "Ι"},
	replace.Rule{Find: "όὀὁὂὃὄὅὸό", Replace: "ο"},
	replace.Rule{Find: "ΌὈὉὊὋὌὍῸΌ", Replace: "Ο"},
	replace.Rule{Find: "ύὐὑὒὓὔὕὖὗὺύῠῡῦ", Replace: "υ"},
	replace.Rule{Find: "ΎὙὛὝὟῨῩῪΎ", Replace: "Υ"},
	replace.Rule{Find: "ώὠὡὢὣὤὥὦὧὼώᾠᾡᾢᾣᾤᾥᾦᾧῲῳῴῶῷ", Replace: "ω"},
	replace.Rule{Find: "ΏὨὩὪὫὬὭὮὯᾨᾩᾪᾫᾬᾭᾮᾯῺΏῼ", Replace: "Ω"},
	replace.Rule{Find: "ῤῥ", Replace: "ρ"},
	replace.Rule{Find: "Ῥ", Replace: "Ρ"},
)

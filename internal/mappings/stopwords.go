package mappings

import (
	"github.com/samber/lo"

	"github.com/mkarajohn/greek-text-utils/internal/replace"
)

// stopWords are common modern Greek function words, with and without
// stress marks since both spellings show up in practice.
var stopWords = []string{
	// articles
	"ο", "η", "το", "οι", "τα", "του", "της", "των", "τον", "την", "τη", "τους", "τις",
	"ένα", "ενα", "ένας", "ενας", "μια", "μία", "ενός", "ενος", "μιας",

	// conjunctions and particles
	"και", "κι", "ή", "να", "θα", "δε", "δεν", "μη", "μην", "ας",
	"αλλά", "αλλα", "ενώ", "ενω", "όμως", "ομως", "επειδή", "επειδη",
	"αν", "εάν", "εαν", "ότι", "οτι", "πως", "που", "πού", "όταν", "οταν",
	"όπως", "οπως", "όπου", "οπου", "ούτε", "ουτε", "είτε", "ειτε",
	"ναι", "όχι", "οχι",

	// prepositions
	"με", "σε", "στο", "στον", "στη", "στην", "στα", "στου", "στους", "στις", "στων",
	"από", "απο", "για", "προς", "χωρίς", "χωρις", "κατά", "κατα",
	"μετά", "μετα", "παρά", "παρα", "ως", "έως", "εως",

	// pronouns
	"εγώ", "εγω", "εσύ", "εσυ", "αυτός", "αυτος", "αυτή", "αυτη", "αυτό", "αυτο",
	"εμείς", "εμεις", "εσείς", "εσεις", "αυτοί", "αυτοι", "αυτές", "αυτες", "αυτά", "αυτα",
	"μου", "σου", "μας", "σας", "τους", "τι", "τίποτα", "τιποτα", "κάθε", "καθε",

	// verbs and adverbs
	"είναι", "ειναι", "ήταν", "ηταν",
	"πολύ", "πολυ", "λίγο", "λιγο", "πιο", "τόσο", "τοσο", "ακόμα", "ακομα",
	"ήδη", "ηδη", "τώρα", "τωρα", "εδώ", "εδω", "εκεί", "εκει",
	"ποτέ", "ποτε", "πάντα", "παντα",
}

// StopWords removes whole stop words. It is meant to be applied with
// replace.FoldCase.
var StopWords = replace.MustTable("stopwords", replace.Word,
	lo.Map(lo.Uniq(stopWords), func(w string, _ int) replace.Rule {
		return replace.Rule{Find: w}
	})...,
)

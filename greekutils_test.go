package greekutils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGreek(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"theos", "θεοσ"},
		{"tha", "θα"},
		{"8a", "θα"},
		{"psari", "ψαρι"},
		{"CH", "Χ"},
		{"To kallos einai h kalyterh systatikh epistolh", "Το καλλοσ ειναι η καλυτερη συστατικη επιστολη"},
		{"kalhmera, pws eiste?", "καλημερα, πωσ ειστε?"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToGreek(tt.input), "ToGreek(%q)", tt.input)
	}
}

func TestToGreekIgnore(t *testing.T) {
	assert.Equal(t, "καλημερα, pωσ ειστε?", ToGreek("kalhmera, pws eiste?", "?p"))
	assert.Equal(t, "καλημερα, pωσ ειστε?", ToGreek("kalhmera, pws eiste?", "?", "p"))
}

func TestToGreeklish(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"χαρτης", "xarths"},
		{"ουρανος", "ouranos"},
		{"μπαλτα", "balta"},
		{"ψαρι", "psari"},
		{"θρησκεια", "8rhskeia"},
		{"Το κάλλος είναι η καλύτερη συστατική επιστολή", "To kάllos eίnai h kalύterh systatikή epistolή"},
		{"καλημερα, πως ειστε;", "kalhmera, pws eiste;"},
		{"Εύηχο: αυτό που ακούγεται ωραία.", "Euhxo: autό pou akougetai wraίa."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToGreeklish(tt.input), "ToGreeklish(%q)", tt.input)
	}
	assert.Equal(t, "kaλhmera, pws eiste;", ToGreeklish("καλημερα, πως ειστε;", ";λ"))
}

func TestToPhoneticLatin(t *testing.T) {
	assert.Equal(t, "aftós", ToPhoneticLatin("αυτός"))
	assert.Equal(t, "evaggélio", ToPhoneticLatin("ευαγγέλιο"))
	assert.Equal(t, "ífrika", ToPhoneticLatin("ηύρηκα"))
	assert.Equal(t, "Évikho: aftó pou akoúyete oréa.", ToPhoneticLatin("Εύηχο: αυτό που ακούγεται ωραία."))
	assert.Equal(t, "Éviχo: aftó pou akoúyete oréa.", ToPhoneticLatin("Εύηχο: αυτό που ακούγεται ωραία.", "χ"))
	assert.Equal(t, "bíra", ToPhoneticLatin("μπίρα"))
}

func TestToTransliteratedLatin(t *testing.T) {
	assert.Equal(t, "Athḗna", ToTransliteratedLatin("Ἀθήνα"))
	assert.Equal(t, "ḗlios", ToTransliteratedLatin("ήλιος"))
	assert.Equal(t, "psukhḗ", ToTransliteratedLatin("ψυχή"))
	assert.Equal(t, "Hellás", ToTransliteratedLatin("Ἑλλάς"))
	assert.Equal(t, "Eúēkho: autó pou akoúgetai ōraía.", ToTransliteratedLatin("Εύηχο: αυτό που ακούγεται ωραία."))
	assert.Equal(t, "Eύēkho: αutó pou αkoύgetαi ōrαíα.", ToTransliteratedLatin("Εύηχο: αυτό που ακούγεται ωραία.", "αύ"))
}

func TestSanitizeDiacritics(t *testing.T) {
	assert.Equal(t, "Αθηνα Ελλας αεηιουω ϊΐ ϋΰ", SanitizeDiacritics("Ἀθήνα Ἑλλάς άέήίόύώ ϊΐ ϋΰ"))
	assert.Equal(t, "Αθηνα", SanitizeDiacritics("Αθήνα"))
	assert.Equal(t, "Αθήνα", SanitizeDiacritics("Αθήνα", "ή"))
}

func TestSanitizeDiacriticsDecomposed(t *testing.T) {
	// α followed by a combining acute accent
	assert.Equal(t, "αλφα", SanitizeDiacritics("α\u0301λφα"))
}

func TestISO843(t *testing.T) {
	assert.Equal(t, "autos", ToISO843Type1("αυτός"))
	assert.Equal(t, "aftos", ToISO843Type2("αυτός"))
	assert.Equal(t, "bala", ToISO843Type2("μπάλα"))
	assert.Equal(t, "lampa", ToISO843Type2("λάμπα"))
	assert.Equal(t, "kompiouter", ToISO843Type2("κομπιούτερ"))
	assert.Equal(t, "avgo", ToISO843Type2("αυγό"))
	assert.Equal(t, "afthentikos", ToISO843Type2("αυθεντικός"))
	assert.Equal(t, "θεος", FromISO843Type1("theos"))
	assert.Equal(t, "ασ-ας", FromISO843Type1("as-as"))
}

func TestToISO843MatchesType2(t *testing.T) {
	for _, input := range []string{"αυτός", "ευχή", "μπάλα", "κομπιούτερ", "Αθήνα", "θεός", "Καλημέρα σας", "ΑΥΤΟΣ"} {
		assert.Equal(t, ToISO843Type2(input), ToISO843(input), "ToISO843(%q)", input)
	}
}

func TestRemoveStopWords(t *testing.T) {
	out := RemoveStopWords("και εγώ θα παω στην Αθηνα, αλλα οχι σημερα", true)
	assert.Equal(t, "παω Αθηνα, σημερα", out)

	assert.Equal(t, "κανουμε", RemoveStopWords("και  θα   το  κανουμε", true))
	assert.Equal(t, "κανουμε", RemoveStopWords("και  θα   το  κανουμε", false))
	assert.Equal(t, "παω    σπιτι", RemoveStopWords("θα παω  στο  σπιτι", false))
	assert.Equal(t, "παω σπιτι", RemoveStopWords("θα παω  στο  σπιτι", true))
}

func TestRemoveStopWordsCaseInsensitive(t *testing.T) {
	assert.Equal(t, "ΠΑΩ ΣΠΙΤΙ", RemoveStopWords("ΚΑΙ ΠΑΩ ΣΤΟ ΣΠΙΤΙ", true))
	assert.Equal(t, "Αθήνα", RemoveStopWords("Στην Αθήνα", false))
}

func TestRemoveStopWordsWholeWordsOnly(t *testing.T) {
	// "το" and "να" are stop words but not inside longer words
	assert.Equal(t, "τοπος ναυτης", RemoveStopWords("τοπος ναυτης", false))
}

func TestRemoveStopWordsKeepsSingleNewline(t *testing.T) {
	assert.Equal(t, "παω\nσπιτι", RemoveStopWords("παω\nσπιτι", true))
	assert.Equal(t, "παω σπιτι", RemoveStopWords("παω\n\nσπιτι", true))
}

func TestEmptyInputIsReturnedUnchanged(t *testing.T) {
	converters := map[string]func(string) string{
		"ToGreek":               func(s string) string { return ToGreek(s) },
		"ToGreeklish":           func(s string) string { return ToGreeklish(s) },
		"ToPhoneticLatin":       func(s string) string { return ToPhoneticLatin(s) },
		"ToTransliteratedLatin": func(s string) string { return ToTransliteratedLatin(s) },
		"ToISO843Type1":         ToISO843Type1,
		"FromISO843Type1":       FromISO843Type1,
		"ToISO843Type2":         ToISO843Type2,
		"ToISO843":              ToISO843,
		"SanitizeDiacritics":    func(s string) string { return SanitizeDiacritics(s) },
		"RemoveStopWords":       func(s string) string { return RemoveStopWords(s, true) },
	}
	for name, fn := range converters {
		assert.Equal(t, "", fn(""), name)
	}
}

func TestNonGreekPassesThrough(t *testing.T) {
	assert.Equal(t, "123, ok!", ToISO843Type2("123, ok!"))
	assert.Equal(t, "123 !", SanitizeDiacritics("123 !"))
}

func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = ToISO843Type2("Αύριο στην Θεσσαλονίκη")
		}()
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, "Avrio stin Thessaloniki", r)
	}
}

func TestParseScheme(t *testing.T) {
	s, err := ParseScheme(" ISO843-Type2 ")
	require.NoError(t, err)
	assert.Equal(t, SchemeISO843Type2, s)

	_, err = ParseScheme("klingon")
	require.ErrorIs(t, err, ErrUnknownScheme)
	assert.Contains(t, err.Error(), "klingon")
}

func TestConvert(t *testing.T) {
	tests := []struct {
		scheme Scheme
		text   string
		opts   ConvertOptions
		want   string
	}{
		{SchemeGreek, "kalhmera, pws eiste?", ConvertOptions{Ignore: "?p"}, "καλημερα, pωσ ειστε?"},
		{SchemeGreeklish, "ψαρι", ConvertOptions{}, "psari"},
		{SchemePhonetic, "αυτός", ConvertOptions{}, "aftós"},
		{SchemeTransliterated, "ψυχή", ConvertOptions{}, "psukhḗ"},
		{SchemeISO843Type1, "αυτός", ConvertOptions{Ignore: "α"}, "autos"},
		{SchemeISO843Type1Reverse, "theos", ConvertOptions{}, "θεος"},
		{SchemeISO843Type2, "αυτός", ConvertOptions{}, "aftos"},
		{SchemeISO843, "μπάλα", ConvertOptions{}, "bala"},
		{SchemeSanitizeDiacritics, "Ἀθήνα", ConvertOptions{}, "Αθηνα"},
		{SchemeRemoveStopWords, "και  θα   το  κανουμε", ConvertOptions{CollapseWhitespace: true}, "κανουμε"},
	}
	for _, tt := range tests {
		got, err := Convert(tt.scheme, tt.text, tt.opts)
		require.NoError(t, err, tt.scheme)
		assert.Equal(t, tt.want, got, tt.scheme)
	}

	_, err := Convert("nope", "text", ConvertOptions{})
	assert.ErrorIs(t, err, ErrUnknownScheme)
}

func TestSchemesCoverRegistry(t *testing.T) {
	infos := Schemes()
	require.Len(t, infos, 10)
	assert.Equal(t, SchemeGreek, infos[0].Name)
	for _, info := range infos {
		_, err := ParseScheme(string(info.Name))
		assert.NoError(t, err, info.Name)
		assert.NotEmpty(t, info.Description, info.Name)
	}
}

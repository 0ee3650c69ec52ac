package mappings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarajohn/greek-text-utils/internal/replace"
)

func TestTables(t *testing.T) {
	tables := []struct {
		table *replace.Table
		mode  replace.Mode
	}{
		{GreeklishToGreek, replace.Exact},
		{GreekToGreeklish, replace.Exact},
		{GreekToPhoneticLatin, replace.Exact},
		{GreekToTransliteratedLatin, replace.Exact},
		{GreekToISO843Type1, replace.Exact},
		{GreekToISO843Type2, replace.Exact},
		{ISO843Type2Uppercase, replace.Exact},
		{ISO843Type1Reverse, replace.Exact},
		{Diacritics, replace.Class},
		{StopWords, replace.Word},
	}
	names := map[string]bool{}
	for _, tt := range tables {
		require.NotNil(t, tt.table)
		assert.Equal(t, tt.mode, tt.table.Mode(), tt.table.Name())
		assert.Positive(t, tt.table.Len(), tt.table.Name())
		assert.False(t, names[tt.table.Name()], "duplicate table name %s", tt.table.Name())
		names[tt.table.Name()] = true
	}
}

func TestTablesRebuild(t *testing.T) {
	// every shipped table passes validation when built from its own rules
	for _, tbl := range []*replace.Table{GreekToPhoneticLatin, GreekToISO843Type1, ISO843Type1Reverse} {
		_, err := replace.NewTable(tbl.Name(), tbl.Mode(), tbl.Rules()...)
		assert.NoError(t, err, tbl.Name())
	}
}

func TestPairs(t *testing.T) {
	got := pairs("a", "α", "b", "β")
	assert.Equal(t, []replace.Rule{{Find: "a", Replace: "α"}, {Find: "b", Replace: "β"}}, got)
	assert.Panics(t, func() { pairs("a") })
}

func TestFollowedBy(t *testing.T) {
	got := followedBy("xy", replace.Rule{Find: "Θ", Replace: "Th"})
	assert.Equal(t, []replace.Rule{
		{Find: "Θx", Replace: "Thx"},
		{Find: "Θy", Replace: "Thy"},
	}, got)
}

func TestDiacriticsKeepDialytika(t *testing.T) {
	assert.Equal(t, "ϊΐϋΰ", replace.Apply("ϊΐϋΰ", Diacritics))
	assert.Equal(t, "αεηιουω", replace.Apply("άέήίόύώ", Diacritics))
	assert.Equal(t, "ΑΕΗΙΟΥΩ", replace.Apply("ΆΈΉΊΌΎΏ", Diacritics))
}

func TestSets(t *testing.T) {
	assert.True(t, GreekLetters.Has('ς'))
	assert.True(t, GreekLetters.Has('ύ'))
	assert.False(t, GreekLetters.Has('Α'))

	assert.True(t, VoicedContext.Has('γ'))
	assert.True(t, VoicedContext.Has('ο'))
	assert.False(t, VoicedContext.Has('τ'))

	assert.True(t, WordLetters.Has('Ω'))
	assert.True(t, WordLetters.Has('ώ'))
	assert.False(t, WordLetters.Has('-'))
}

func TestStopWordsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range StopWords.Rules() {
		assert.False(t, seen[r.Find], "duplicate stop word %q", r.Find)
		seen[r.Find] = true
		assert.Empty(t, r.Replace)
	}
}

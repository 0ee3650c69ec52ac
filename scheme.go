package greekutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Scheme names a conversion.
type Scheme string

const (
	SchemeGreek              Scheme = "greek"
	SchemeGreeklish          Scheme = "greeklish"
	SchemePhonetic           Scheme = "phonetic"
	SchemeTransliterated     Scheme = "transliterated"
	SchemeISO843Type1        Scheme = "iso843-type1"
	SchemeISO843Type1Reverse Scheme = "iso843-type1-reverse"
	SchemeISO843Type2        Scheme = "iso843-type2"
	SchemeISO843             Scheme = "iso843"
	SchemeSanitizeDiacritics Scheme = "sanitize"
	SchemeRemoveStopWords    Scheme = "stopwords"
)

var ErrUnknownScheme = errors.New("unknown scheme")

// ConvertOptions carries the optional arguments of the converters. Ignore
// is used by the schemes that accept ignore characters and
// CollapseWhitespace by SchemeRemoveStopWords; each is disregarded
// elsewhere.
type ConvertOptions struct {
	Ignore             string
	CollapseWhitespace bool
}

// SchemeInfo describes a scheme for listings.
type SchemeInfo struct {
	Name        Scheme
	Description string
	// Ignore reports whether the scheme honours ConvertOptions.Ignore.
	Ignore bool
}

type schemeEntry struct {
	SchemeInfo
	convert func(text string, opts ConvertOptions) string
}

func withIgnore(fn func(string, ...string) string) func(string, ConvertOptions) string {
	return func(text string, opts ConvertOptions) string { return fn(text, opts.Ignore) }
}

func plain(fn func(string) string) func(string, ConvertOptions) string {
	return func(text string, _ ConvertOptions) string { return fn(text) }
}

var schemes = []schemeEntry{
	{SchemeInfo{SchemeGreek, "greeklish/Latin to Greek", true}, withIgnore(ToGreek)},
	{SchemeInfo{SchemeGreeklish, "Greek to greeklish", true}, withIgnore(ToGreeklish)},
	{SchemeInfo{SchemePhonetic, "Greek to Latin by sound", true}, withIgnore(ToPhoneticLatin)},
	{SchemeInfo{SchemeTransliterated, "Greek to scholarly transliterated Latin", true}, withIgnore(ToTransliteratedLatin)},
	{SchemeInfo{SchemeISO843Type1, "Greek to ISO 843/ELOT 743 Type 1 (transliteration)", false}, plain(ToISO843Type1)},
	{SchemeInfo{SchemeISO843Type1Reverse, "ISO 843 Type 1 Latin back to Greek", false}, plain(FromISO843Type1)},
	{SchemeInfo{SchemeISO843Type2, "Greek to ISO 843/ELOT 743 Type 2 (transcription)", false}, plain(ToISO843Type2)},
	{SchemeInfo{SchemeISO843, "deprecated alias of iso843-type2", false}, plain(ToISO843)},
	{SchemeInfo{SchemeSanitizeDiacritics, "strip accents and breathings from Greek", true}, withIgnore(SanitizeDiacritics)},
	{SchemeInfo{SchemeRemoveStopWords, "remove Greek stop words", false}, func(text string, opts ConvertOptions) string {
		return RemoveStopWords(text, opts.CollapseWhitespace)
	}},
}

var schemesByName = lo.SliceToMap(schemes, func(e schemeEntry) (Scheme, schemeEntry) {
	return e.Name, e
})

// Schemes lists every scheme in a stable order.
func Schemes() []SchemeInfo {
	return lo.Map(schemes, func(e schemeEntry, _ int) SchemeInfo { return e.SchemeInfo })
}

// ParseScheme looks a scheme up by name, ignoring case and surrounding
// space.
func ParseScheme(name string) (Scheme, error) {
	s := Scheme(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := schemesByName[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
	return s, nil
}

// Convert runs the converter registered for scheme.
func Convert(scheme Scheme, text string, opts ConvertOptions) (string, error) {
	e, ok := schemesByName[scheme]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownScheme, string(scheme))
	}
	return e.convert(text, opts), nil
}

// Package replace implements ordered, rule-driven text substitution.
//
// A Table is applied one rule at a time; every rule is a complete
// left-to-right pass over the text produced by the rules before it.
// All functions are pure and safe for concurrent use.
package replace

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// None marks a missing neighbour in a Match.
const None rune = -1

type options struct {
	ignore CharSet
	fold   bool
}

type Option func(*options)

// WithIgnore protects every rune in chars from substitution. A position
// holding a protected rune is copied through and never starts a match.
func WithIgnore(chars string) Option {
	return func(o *options) {
		o.ignore = NewCharSet(chars)
	}
}

// FoldCase makes Exact and Word matching case-insensitive.
func FoldCase() Option {
	return func(o *options) {
		o.fold = true
	}
}

// Apply runs every rule of t over text and returns the result.
// Empty text and a nil table are returned unchanged.
func Apply(text string, t *Table, opts ...Option) string {
	if text == "" || t == nil {
		return text
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	for i := range t.rules {
		text = t.pass(text, &t.rules[i], &o)
	}
	return text
}

func (t *Table) pass(text string, r *compiledRule, o *options) string {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		c, size := utf8.DecodeRuneInString(text[i:])
		if o.ignore.Has(c) {
			b.WriteString(text[i : i+size])
			i += size
			continue
		}
		if n := t.match(text, i, r, o.fold); n > 0 {
			b.WriteString(r.Replace)
			i += n
			continue
		}
		b.WriteString(text[i : i+size])
		i += size
	}
	return b.String()
}

// match reports the byte length of the match of r at text[i:], or 0.
func (t *Table) match(text string, i int, r *compiledRule, fold bool) int {
	switch t.mode {
	case Class:
		c, size := utf8.DecodeRuneInString(text[i:])
		if r.set.Has(c) {
			return size
		}
		return 0
	case Word:
		n := matchPrefix(text[i:], r.Find, fold)
		if n == 0 {
			return 0
		}
		if before, _ := utf8.DecodeLastRuneInString(text[:i]); i > 0 && isWordRune(before) {
			return 0
		}
		if after, _ := utf8.DecodeRuneInString(text[i+n:]); i+n < len(text) && isWordRune(after) {
			return 0
		}
		return n
	default:
		return matchPrefix(text[i:], r.Find, fold)
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r)
}

// matchPrefix returns the byte length of the prefix of s that equals
// pattern, or 0 when s does not start with pattern.
func matchPrefix(s, pattern string, fold bool) int {
	if !fold {
		if strings.HasPrefix(s, pattern) {
			return len(pattern)
		}
		return 0
	}
	n := 0
	for _, pr := range pattern {
		if n >= len(s) {
			return 0
		}
		sr, size := utf8.DecodeRuneInString(s[n:])
		if !equalFold(sr, pr) {
			return 0
		}
		n += size
	}
	return n
}

// equalFold walks the simple case-folding orbit of a, so σ, ς and Σ are
// all equal to each other.
func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}

// Match describes one occurrence found by Rewrite.
type Match struct {
	// Text is the matched span as it appears in the input.
	Text string
	// Before and After are the runes adjacent to the span, or None.
	Before rune
	After  rune
}

// Rewrite replaces every non-overlapping occurrence of pattern, scanning
// left to right, with the string returned by fn. Neighbours reported in
// Match are taken from the input text, not from earlier replacements.
func Rewrite(text, pattern string, fold bool, fn func(Match) string) string {
	if text == "" || pattern == "" {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		if n := matchPrefix(text[i:], pattern, fold); n > 0 {
			m := Match{Text: text[i : i+n], Before: None, After: None}
			if i > 0 {
				m.Before, _ = utf8.DecodeLastRuneInString(text[:i])
			}
			if i+n < len(text) {
				m.After, _ = utf8.DecodeRuneInString(text[i+n:])
			}
			b.WriteString(fn(m))
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		b.WriteString(text[i : i+size])
		i += size
	}
	return b.String()
}

package replace

import (
	"github.com/samber/lo"
)

// CharSet is an immutable set of runes used for membership tests.
// The zero value is an empty set.
type CharSet struct {
	runes map[rune]struct{}
}

// NewCharSet builds a set from every rune in chars. Characters carry no
// special meaning, so "-", "]" or "^" are stored like any other rune.
func NewCharSet(chars string) CharSet {
	if chars == "" {
		return CharSet{}
	}
	return CharSet{runes: lo.Keyify([]rune(chars))}
}

// Union returns a new set holding the runes of s and every other set.
func (s CharSet) Union(others ...CharSet) CharSet {
	out := make(map[rune]struct{}, s.Len())
	for r := range s.runes {
		out[r] = struct{}{}
	}
	for _, o := range others {
		for r := range o.runes {
			out[r] = struct{}{}
		}
	}
	return CharSet{runes: out}
}

func (s CharSet) Has(r rune) bool {
	_, ok := s.runes[r]
	return ok
}

func (s CharSet) Len() int { return len(s.runes) }

func (s CharSet) Empty() bool { return len(s.runes) == 0 }

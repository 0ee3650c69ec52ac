package replace

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects how a table's Find values are matched.
type Mode int

const (
	// Exact matches Find as a literal string.
	Exact Mode = iota
	// Class matches any single rune contained in Find.
	Class
	// Word matches Find as a literal string standing alone: the runes on
	// either side must not be letters, marks or digits.
	Word
)

func (m Mode) String() string {
	switch m {
	case Exact:
		return "exact"
	case Class:
		return "class"
	case Word:
		return "word"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

var (
	ErrEmptyPattern = errors.New("empty find pattern")
	ErrShadowedRule = errors.New("rule is shadowed by an earlier rule")
)

// Rule replaces every match of Find with Replace.
type Rule struct {
	Find    string
	Replace string
}

type compiledRule struct {
	Rule
	set CharSet
}

// Table is an ordered list of rules. Each rule runs as a full pass over the
// output of the previous one, so a table must list longer patterns before
// the shorter patterns they contain.
type Table struct {
	name  string
	mode  Mode
	rules []compiledRule
}

// NewTable validates rules and builds a table.
//
// In Exact mode a rule whose Find contains the Find of an earlier rule is
// rejected: the earlier pass consumes every occurrence first, so the later
// rule could never match.
func NewTable(name string, mode Mode, rules ...Rule) (*Table, error) {
	t := &Table{name: name, mode: mode, rules: make([]compiledRule, 0, len(rules))}
	for i, r := range rules {
		if r.Find == "" {
			return nil, fmt.Errorf("table %s: rule %d: %w", name, i, ErrEmptyPattern)
		}
		if mode == Exact {
			for j := range i {
				if strings.Contains(r.Find, rules[j].Find) {
					return nil, fmt.Errorf("table %s: rule %d %q contains rule %d %q: %w",
						name, i, r.Find, j, rules[j].Find, ErrShadowedRule)
				}
			}
		}
		cr := compiledRule{Rule: r}
		if mode == Class {
			cr.set = NewCharSet(r.Find)
		}
		t.rules = append(t.rules, cr)
	}
	return t, nil
}

// MustTable is like NewTable but panics on an invalid table. It is meant for
// package-level table definitions.
func MustTable(name string, mode Mode, rules ...Rule) *Table {
	t, err := NewTable(name, mode, rules...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) Name() string { return t.name }

func (t *Table) Mode() Mode { return t.mode }

func (t *Table) Len() int { return len(t.rules) }

// Rules returns a copy of the table's rules in order.
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	for i, r := range t.rules {
		out[i] = r.Rule
	}
	return out
}

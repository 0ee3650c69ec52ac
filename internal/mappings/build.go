package mappings

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/mkarajohn/greek-text-utils/internal/replace"
)

// pairs turns find, replace, find, replace, ... into rules.
func pairs(kv ...string) []replace.Rule {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("mappings: odd number of pair values (%d)", len(kv)))
	}
	return lo.Map(lo.Chunk(kv, 2), func(p []string, _ int) replace.Rule {
		return replace.Rule{Find: p[0], Replace: p[1]}
	})
}

// followedBy expands a rule into one rule per rune of next, each matching
// find+rune and writing replace+rune. It spells out a right-hand context as
// plain table rows.
func followedBy(next string, rules ...replace.Rule) []replace.Rule {
	return lo.FlatMap(rules, func(r replace.Rule, _ int) []replace.Rule {
		return lo.Map([]rune(next), func(c rune, _ int) replace.Rule {
			return replace.Rule{Find: r.Find + string(c), Replace: r.Replace + string(c)}
		})
	})
}

func concat(groups ...[]replace.Rule) []replace.Rule {
	return lo.Flatten(groups)
}

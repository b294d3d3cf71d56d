package suggest

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/batteryspecial/QED/types"
)

type fuzzyCandidate struct {
	RankedCandidate
	distance int
}

// fuzzyFilter is the fallback tier behind WithFuzzy: aliases within
// maxDistance edits of the prefix, ordered by distance, alias position and
// alias length, one candidate per output symbol.
func fuzzyFilter(commands []*types.Command, prefix string, maxDistance int) []RankedCandidate {
	var candidates []fuzzyCandidate
	for _, cmd := range commands {
		for i, alias := range cmd.Aliases {
			d := levenshtein.ComputeDistance(strings.ToLower(alias), prefix)
			if d > maxDistance {
				continue
			}
			candidates = append(candidates, fuzzyCandidate{
				RankedCandidate: RankedCandidate{Command: cmd, Alias: alias, AliasIndex: i, Quality: QualityFuzzy},
				distance:        d,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.distance != b.distance {
			return a.distance < b.distance
		}
		if a.AliasIndex != b.AliasIndex {
			return a.AliasIndex < b.AliasIndex
		}

		return len(a.Alias) < len(b.Alias)
	})

	ranked := make([]RankedCandidate, len(candidates))
	for i, c := range candidates {
		ranked[i] = c.RankedCandidate
	}

	return dedupe(ranked)
}

// Package suggest ranks dictionary aliases against a typed prefix for
// autocomplete purposes. It is independent of the translation engine: the
// caller supplies the command list and renders the returned candidates.
package suggest

import (
	"sort"
	"strings"

	"github.com/batteryspecial/QED/types"
)

// MatchQuality grades how an alias matched the typed prefix.
type MatchQuality int

const (
	// QualityExact denotes a case-insensitive exact match.
	QualityExact MatchQuality = iota
	// QualityPrefix denotes a case-insensitive prefix match.
	QualityPrefix
	// QualityFuzzy denotes an edit-distance match from the opt-in fuzzy tier.
	QualityFuzzy
	// QualityListing denotes a candidate from an empty-prefix browse listing,
	// where nothing was actually matched.
	QualityListing
)

// String returns the string representation of a MatchQuality.
func (q MatchQuality) String() string {
	switch q {
	case QualityExact:
		return "exact"
	case QualityPrefix:
		return "prefix"
	case QualityFuzzy:
		return "fuzzy"
	case QualityListing:
		return "listing"
	}

	return "unknown"
}

// RankedCandidate is one suggestion-list entry. Candidates are ephemeral,
// produced per Filter call and never persisted.
type RankedCandidate struct {
	Command    *types.Command
	Alias      string
	AliasIndex int
	Quality    MatchQuality
}

type config struct {
	fuzzyDistance int
}

// Option configures a Filter call.
type Option func(*config)

// WithFuzzy enables the fuzzy fallback tier: when no alias matches the prefix
// exactly or by prefix, aliases within maxDistance edits are returned with
// QualityFuzzy. A maxDistance <= 0 leaves the tier disabled.
func WithFuzzy(maxDistance int) Option {
	return func(c *config) {
		c.fuzzyDistance = maxDistance
	}
}

// Filter selects and orders the aliases matching typed. An empty or
// whitespace-only prefix lists every command under its canonical alias in
// dictionary order, tagged QualityListing so callers can tell a browse
// listing from genuine matches. Otherwise candidates are ordered by match quality (exact
// before prefix), alias position within the command, and alias length, with
// at most one candidate per distinct output symbol.
func Filter(commands []*types.Command, typed string, opts ...Option) []RankedCandidate {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	prefix := strings.ToLower(strings.TrimSpace(typed))
	if prefix == "" {
		return listAll(commands)
	}

	var candidates []RankedCandidate
	for _, cmd := range commands {
		for i, alias := range cmd.Aliases {
			lower := strings.ToLower(alias)
			switch {
			case lower == prefix:
				candidates = append(candidates, RankedCandidate{Command: cmd, Alias: alias, AliasIndex: i, Quality: QualityExact})
			case strings.HasPrefix(lower, prefix):
				candidates = append(candidates, RankedCandidate{Command: cmd, Alias: alias, AliasIndex: i, Quality: QualityPrefix})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Quality != b.Quality {
			return a.Quality < b.Quality
		}
		if a.AliasIndex != b.AliasIndex {
			return a.AliasIndex < b.AliasIndex
		}

		return len(a.Alias) < len(b.Alias)
	})

	deduped := dedupe(candidates)
	if len(deduped) == 0 && cfg.fuzzyDistance > 0 {
		return fuzzyFilter(commands, prefix, cfg.fuzzyDistance)
	}

	return deduped
}

func listAll(commands []*types.Command) []RankedCandidate {
	candidates := make([]RankedCandidate, 0, len(commands))
	for _, cmd := range commands {
		if len(cmd.Aliases) == 0 {
			continue
		}
		candidates = append(candidates, RankedCandidate{
			Command: cmd,
			Alias:   cmd.Canonical(),
			Quality: QualityListing,
		})
	}

	return candidates
}

// dedupe keeps the highest-ranked candidate per distinct output symbol.
// Input must already be sorted best-first.
func dedupe(candidates []RankedCandidate) []RankedCandidate {
	seen := make(map[string]struct{}, len(candidates))
	kept := candidates[:0]
	for _, c := range candidates {
		if _, dup := seen[c.Command.Latex]; dup {
			continue
		}
		seen[c.Command.Latex] = struct{}{}
		kept = append(kept, c)
	}

	return kept
}

package types

import "errors"

// Command maps a set of shorthand aliases to a single LaTeX symbol.
// The first alias is the canonical (display) form.
type Command struct {
	Aliases     []string
	Latex       string
	Description string
}

// Canonical returns the display form of the command, i.e. its first alias.
func (c *Command) Canonical() string {
	if len(c.Aliases) == 0 {
		return ""
	}

	return c.Aliases[0]
}

// Template is a parameterized command. Its match patterns contain the
// placeholder marker "{}"; each placeholder captures a sub-expression which is
// recursively translated and substituted into Latex at the positional
// reference of the same index ("$0", "$1", ...).
//
// Patterns and AliasGroups are mutually exclusive ways of declaring the match
// patterns: Patterns are used verbatim while AliasGroups are expanded by
// choosing one alias per group and joining consecutive groups with a
// placeholder ([["if"], ["then"]] yields "if {} then {}").
type Template struct {
	Patterns    []string
	AliasGroups [][]string
	Latex       string
	Description string
}

// CompiledPattern is a flattened (pattern, output) pair produced from a
// Command or Template. Compiled pattern tables are sorted by pattern length,
// descending, so the longest literal match wins at any scan position.
type CompiledPattern struct {
	Pattern string
	Output  string
}

// MatchResult reports a successful template match: one captured substring per
// placeholder and the text index immediately after the final matched segment.
// A nil *MatchResult denotes no-match.
type MatchResult struct {
	Captured []string
	End      int
}

var (
	ErrNoAliases           = errors.New("command has no aliases")
	ErrDuplicateAlias      = errors.New("alias already registered")
	ErrTemplateShape       = errors.New("template must declare either patterns or alias groups")
	ErrPlaceholderMismatch = errors.New("placeholder count does not match output references")
	ErrDictionaryFrozen    = errors.New("dictionary is frozen after first use")
)

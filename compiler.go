package qed

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ef-ds/deque"

	"github.com/batteryspecial/QED/types"
	"github.com/batteryspecial/QED/util"
)

var refPattern = regexp.MustCompile(`\$(\d+)`)

// compile flattens the dictionary into the two sorted matcher tables: one
// CompiledPattern per command alias, one per expanded template pattern. Both
// tables are ordered by pattern length descending so the scan loop can stop
// at the first, i.e. longest, match. Insertion keeps registration order for
// equal lengths, which makes the tables deterministic.
func (d *Dictionary) compile() {
	for pair := d.commands.Oldest(); pair != nil; pair = pair.Next() {
		cmd := pair.Value
		for _, alias := range cmd.Aliases {
			if d.aliasOwner[alias] != cmd {
				continue
			}
			d.commandTable = insertByLength(d.commandTable, types.CompiledPattern{Pattern: alias, Output: cmd.Latex})
		}
	}

	for _, tpl := range d.templates {
		for _, pattern := range templatePatterns(tpl) {
			d.templateTable = insertByLength(d.templateTable, types.CompiledPattern{Pattern: pattern, Output: tpl.Latex})
		}
	}
}

// insertByLength inserts cp into a table sorted by pattern length descending,
// after any patterns of equal length.
func insertByLength(table []types.CompiledPattern, cp types.CompiledPattern) []types.CompiledPattern {
	pos := sort.Search(len(table), func(i int) bool {
		return len(table[i].Pattern) < len(cp.Pattern)
	})

	return util.InsertSlice(table, pos, cp)
}

// templatePatterns returns the concrete match patterns of a template:
// explicit patterns verbatim, otherwise the cartesian expansion of its alias
// groups.
func templatePatterns(tpl *types.Template) []string {
	if len(tpl.Patterns) > 0 {
		return tpl.Patterns
	}

	return expandAliasGroups(tpl.AliasGroups)
}

type expansion struct {
	prefix string
	group  int
}

// expandAliasGroups generates every pattern reachable by choosing one alias
// per group, each alias followed by a placeholder ([["if"], ["then"]] yields
// "if {} then {}"). The worklist is iterative so deeply grouped templates
// cannot grow the call stack.
func expandAliasGroups(groups [][]string) []string {
	var work deque.Deque
	work.PushBack(expansion{prefix: "", group: 0})

	var patterns []string
	for work.Len() > 0 {
		item, _ := work.PopFront()
		e := item.(expansion)
		if e.group == len(groups) {
			patterns = append(patterns, e.prefix)
			continue
		}
		for _, alias := range groups[e.group] {
			segment := alias + " " + placeholder
			if e.prefix != "" {
				segment = e.prefix + " " + segment
			}
			work.PushBack(expansion{prefix: segment, group: e.group + 1})
		}
	}

	return patterns
}

// outputReferences returns the distinct positional reference indices ("$0",
// "$1", ...) used by an output template.
func outputReferences(output string) map[int]struct{} {
	refs := map[int]struct{}{}
	for _, m := range refPattern.FindAllStringSubmatch(output, -1) {
		var idx int
		fmt.Sscanf(m[1], "%d", &idx)
		refs[idx] = struct{}{}
	}

	return refs
}

// validatePlaceholders checks that a match pattern carries exactly one
// placeholder per positional reference and that the references are dense.
func validatePlaceholders(pattern string, refs map[int]struct{}) error {
	count := strings.Count(pattern, placeholder)
	if count != len(refs) {
		return fmt.Errorf("%w: pattern %q has %d placeholders, output references %d",
			types.ErrPlaceholderMismatch, pattern, count, len(refs))
	}
	for i := 0; i < count; i++ {
		if _, ok := refs[i]; !ok {
			return fmt.Errorf("%w: pattern %q has no output reference $%d",
				types.ErrPlaceholderMismatch, pattern, i)
		}
	}

	return nil
}

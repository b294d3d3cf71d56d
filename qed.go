// Package qed compiles free-form mathematical shorthand into LaTeX.
//
// A Dictionary maps literal aliases ("forall", "RR", "s.t.") to symbols and
// parameterized templates ("mod {}", "if {} then {}") to output patterns
// whose placeholders capture sub-expressions and are recursively translated,
// so templates nest arbitrarily. The dictionary is compiled once into sorted
// matcher tables; scanning is greedy with the longest pattern winning at
// every position, and anything unrecognized passes through unchanged.
//
// The package exposes exactly two operations to its surrounding editor
// shell: shorthand-to-LaTeX conversion and suggestion-list ranking. Both are
// pure functions of their inputs and safe for concurrent use.
package qed

import (
	"strings"

	"github.com/batteryspecial/QED/suggest"
	"github.com/batteryspecial/QED/types"
)

// NewTranslator creates a Translator over dict. The caller should always test
// for error on return because the Translator will be nil when an error occurs
// during configuration.
//
// Example of fluent configuration:
//
//	translator, err := qed.NewTranslator(dictionary,
//		qed.WithEmptyCaptureGlyph(`\blacksquare`),
//		qed.WithBoundaryRunes(",^_{}()[]:.!?"),
//		qed.WithSuggestOptions(suggest.WithFuzzy(2)))
func NewTranslator(dict *Dictionary, configs ...ConfigureTranslatorFunc) (*Translator, error) {
	if dict == nil {
		dict, _ = NewDictionary()
	}

	t := &Translator{
		dict:         dict,
		emptyGlyph:   defaultEmptyGlyph,
		commaSpacing: true,
		unwrapParens: true,
	}
	t.setBoundaryRunes(defaultBoundaryRunes)

	var err error
	for _, config := range configs {
		config(t, &err)
		if err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Dictionary returns the dictionary this Translator reads from.
func (t *Translator) Dictionary() *Dictionary {
	return t.dict
}

// Parse rewrites shorthand text into LaTeX. Empty or whitespace-only input
// produces empty output; unrecognized text always falls through to literal
// passthrough, so Parse never fails. The first call compiles and freezes the
// dictionary.
func (t *Translator) Parse(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	t.dict.ensureCompiled()

	out := restoreBraces(t.scan(maskBraces(text)))
	if t.commaSpacing {
		out = spaceCommas(out)
	}

	return out
}

// Suggest ranks the dictionary's aliases against the live-typed prefix for a
// suggestion list.
func (t *Translator) Suggest(typed string) []suggest.RankedCandidate {
	return suggest.Filter(t.dict.Commands(), typed, t.suggestOpts...)
}

func (t *Translator) setBoundaryRunes(runes string) {
	t.boundaryRunes = make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		t.boundaryRunes[r] = struct{}{}
	}
}

// ParseCommandToLatex is the sole conversion entry point for callers holding
// a plain command list: it builds a throwaway dictionary and translates text
// through it. Callers with a static dictionary should construct a Translator
// once and reuse it.
func ParseCommandToLatex(text string, commands []*types.Command, templates ...*types.Template) string {
	dict, _ := NewDictionary()
	for _, cmd := range commands {
		_ = dict.AddCommand(cmd)
	}
	for _, tpl := range templates {
		_ = dict.AddTemplate(tpl)
	}

	translator, _ := NewTranslator(dict)

	return translator.Parse(text)
}

// FilterCommands is the sole ranking entry point for callers holding a plain
// command list.
func FilterCommands(commands []*types.Command, typed string) []suggest.RankedCandidate {
	return suggest.Filter(commands, typed)
}

package qed

import (
	"github.com/batteryspecial/QED/suggest"
	"github.com/batteryspecial/QED/types"
)

// WithCommand is a fluent wrapper for Dictionary.AddCommand.
func WithCommand(cmd *types.Command) ConfigureDictionaryFunc {
	return func(d *Dictionary, err *error) {
		*err = d.AddCommand(cmd)
	}
}

// WithTemplate is a fluent wrapper for Dictionary.AddTemplate.
func WithTemplate(tpl *types.Template) ConfigureDictionaryFunc {
	return func(d *Dictionary, err *error) {
		*err = d.AddTemplate(tpl)
	}
}

// WithCommands registers a batch of commands, stopping at the first
// configuration error.
func WithCommands(commands ...*types.Command) ConfigureDictionaryFunc {
	return func(d *Dictionary, err *error) {
		for _, cmd := range commands {
			if *err = d.AddCommand(cmd); *err != nil {
				return
			}
		}
	}
}

// WithTemplates registers a batch of templates, stopping at the first
// configuration error.
func WithTemplates(templates ...*types.Template) ConfigureDictionaryFunc {
	return func(d *Dictionary, err *error) {
		for _, tpl := range templates {
			if *err = d.AddTemplate(tpl); *err != nil {
				return
			}
		}
	}
}

// WithBoundaryRunes replaces the set of non-whitespace characters accepted
// after a literal alias match. Whitespace and end-of-input are always
// boundaries.
func WithBoundaryRunes(runes string) ConfigureTranslatorFunc {
	return func(t *Translator, _ *error) {
		t.setBoundaryRunes(runes + string(sentinelOpen) + string(sentinelClose))
	}
}

// WithEmptyCaptureGlyph replaces the glyph substituted for a captured value
// which is empty after recursive translation. An empty glyph leaves the slot
// blank.
func WithEmptyCaptureGlyph(glyph string) ConfigureTranslatorFunc {
	return func(t *Translator, _ *error) {
		t.emptyGlyph = glyph
	}
}

// WithCommaSpacing toggles the thin-space directive inserted after literal
// commas during post-processing.
func WithCommaSpacing(enabled bool) ConfigureTranslatorFunc {
	return func(t *Translator, _ *error) {
		t.commaSpacing = enabled
	}
}

// WithParenUnwrap toggles stripping of a single balancing parenthesis pair
// wrapping a captured value.
func WithParenUnwrap(enabled bool) ConfigureTranslatorFunc {
	return func(t *Translator, _ *error) {
		t.unwrapParens = enabled
	}
}

// WithSuggestOptions sets the ranking options applied by Translator.Suggest.
func WithSuggestOptions(opts ...suggest.Option) ConfigureTranslatorFunc {
	return func(t *Translator, _ *error) {
		t.suggestOpts = opts
	}
}

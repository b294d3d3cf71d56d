package qed

import (
	"github.com/batteryspecial/QED/suggest"
)

// placeholder is the marker splitting a template pattern into literal
// segments. One sub-expression is captured per occurrence.
const placeholder = "{}"

// Sentinels substituted for literal braces before scanning so user-typed
// braces cannot be misread during recursive re-parsing. Private-use runes
// never occur in shorthand input.
const (
	sentinelOpen  = '\ue000'
	sentinelClose = '\ue001'
)

const (
	// defaultEmptyGlyph is substituted for a captured value which is still
	// empty after recursive translation, surfacing incomplete input visibly.
	defaultEmptyGlyph = `\square`

	// defaultBoundaryRunes are the non-whitespace characters accepted after a
	// literal alias match. The exact set is a product decision, hence
	// WithBoundaryRunes.
	defaultBoundaryRunes = ",^_{}()[]:." + string(sentinelOpen) + string(sentinelClose)
)

// ConfigureTranslatorFunc is used when defining Translator options.
type ConfigureTranslatorFunc func(t *Translator, err *error)

// ConfigureDictionaryFunc is used when defining Dictionary entries.
type ConfigureDictionaryFunc func(d *Dictionary, err *error)

// Translator converts shorthand text to LaTeX and ranks autocomplete
// candidates over a single immutable Dictionary. Both operations are pure;
// concurrent use requires no coordination.
type Translator struct {
	dict          *Dictionary
	boundaryRunes map[rune]struct{}
	emptyGlyph    string
	commaSpacing  bool
	unwrapParens  bool
	suggestOpts   []suggest.Option
}

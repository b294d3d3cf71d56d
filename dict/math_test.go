package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"

	qed "github.com/batteryspecial/QED"
)

func builtinTranslator(t *testing.T) *qed.Translator {
	t.Helper()

	commands, templates := Dictionary()
	dictionary, err := qed.NewDictionary(
		qed.WithCommands(commands...),
		qed.WithTemplates(templates...),
	)
	assert.Nil(t, err, "the built-in dictionary must register without configuration errors")

	translator, err := qed.NewTranslator(dictionary)
	assert.Nil(t, err)

	return translator
}

func TestBuiltinDictionary_Registers(t *testing.T) {
	translator := builtinTranslator(t)

	assert.Empty(t, translator.Dictionary().Errors(), "no duplicate aliases or malformed templates")
	assert.Greater(t, len(translator.Dictionary().Commands()), 40)
	assert.NotEmpty(t, translator.Dictionary().Templates())
}

func TestBuiltinDictionary_Aliases(t *testing.T) {
	seen := map[string]bool{}
	for _, cmd := range Commands() {
		assert.NotEmpty(t, cmd.Aliases, "every command needs at least one alias")
		assert.NotEmpty(t, cmd.Latex, "every command needs an output symbol")
		assert.NotEmpty(t, cmd.Description, "every command needs a description for the suggestion list")
		for _, alias := range cmd.Aliases {
			assert.False(t, seen[alias], "alias %q is declared twice", alias)
			seen[alias] = true
		}
	}
}

func TestBuiltinDictionary_Translations(t *testing.T) {
	translator := builtinTranslator(t)

	cases := []struct {
		input string
		want  string
	}{
		{"forall x in RR", `\forall x \in \mathbb{R}`},
		{"mod 5", `\!\pmod{5}`},
		{"x mod 3", `x \!\pmod{3}`},
		{"5 over 6", `\frac{5}{6}`},
		{"n choose k", `\binom{n}{k}`},
		{"sqrt 2", `\sqrt{2}`},
		{"sum from i=1 to n", `\sum_{i=1}^{n}`},
		{"x -> y", `x \to y`},
		{"a <=> b", `a \iff b`},
		{"eps leq delta", `\varepsilon \leq \delta`},
		{"if x in NN then x in ZZ", `x \in \mathbb{N} \implies x \in \mathbb{Z}`},
		{"exists y s.t. y neq 0", `\exists y \text{ s.t. } y \neq 0`},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, translator.Parse(tc.input), "translation of %q", tc.input)
	}
}

func TestBuiltinDictionary_SuggestCoverage(t *testing.T) {
	translator := builtinTranslator(t)

	candidates := translator.Suggest("for")
	assert.NotEmpty(t, candidates)
	assert.Equal(t, "forall", candidates[0].Alias)
}

func TestDictionary_ReturnsFreshSlices(t *testing.T) {
	a := Commands()
	b := Commands()
	a[0] = nil

	assert.NotNil(t, b[0], "mutating a returned slice must not alias the package data")
}

package qed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func matcherTranslator(t *testing.T, configs ...ConfigureTranslatorFunc) *Translator {
	t.Helper()

	translator, err := NewTranslator(nil, configs...)
	assert.Nil(t, err)

	return translator
}

func TestMatchTemplate_SinglePlaceholder(t *testing.T) {
	translator := matcherTranslator(t)

	m := translator.matchTemplate("mod 5", 0, "mod {}")
	assert.NotNil(t, m)
	assert.Equal(t, []string{"5"}, m.Captured)
	assert.Equal(t, 5, m.End, "end index should point past the final matched segment")
}

func TestMatchTemplate_NoMatch(t *testing.T) {
	translator := matcherTranslator(t)

	assert.Nil(t, translator.matchTemplate("modulo 5", 0, "mod {}"), "first segment must match verbatim")
	assert.Nil(t, translator.matchTemplate("if x otherwise y", 0, "if {} then {}"),
		"a missing middle segment is a no-match, not a partial match")
}

func TestMatchTemplate_Offset(t *testing.T) {
	translator := matcherTranslator(t)

	m := translator.matchTemplate("x = y mod 7", 6, "mod {}")
	assert.NotNil(t, m)
	assert.Equal(t, []string{"7"}, m.Captured)
	assert.Equal(t, 11, m.End)
}

func TestMatchTemplate_TwoPlaceholders(t *testing.T) {
	translator := matcherTranslator(t)

	m := translator.matchTemplate("if a then b", 0, "if {} then {}")
	assert.NotNil(t, m)
	assert.Equal(t, []string{"a", "b"}, m.Captured)
	assert.Equal(t, len("if a then b"), m.End)
}

func TestMatchTemplate_SkipsLeadingSpacesOnly(t *testing.T) {
	translator := matcherTranslator(t)

	m := translator.matchTemplate("mod    9", 0, "mod {}")
	assert.NotNil(t, m)
	assert.Equal(t, []string{"9"}, m.Captured, "leading ASCII spaces are skipped before the capture")

	assert.Nil(t, translator.matchTemplate("mod\t9", 0, "mod {}"),
		"tabs are not skipped; the first segment no longer lines up")
}

func TestMatchTemplate_ParenDepth(t *testing.T) {
	translator := matcherTranslator(t)

	m := translator.matchTemplate("if (a then b) then c", 0, "if {} then {}")
	assert.NotNil(t, m)
	assert.Equal(t, []string{"a then b", "c"}, m.Captured,
		"a parenthesized group containing the next literal must be captured whole")
}

func TestMatchTemplate_ClosingParenStopsCapture(t *testing.T) {
	translator := matcherTranslator(t)

	// The closing paren belongs to an enclosing scope: capture stops and the
	// pattern cannot complete past it.
	assert.Nil(t, translator.matchTemplate("mod 3) then x", 0, "if {} then {}"))

	m := translator.matchTemplate("mod 3) qux", 0, "mod {}")
	assert.NotNil(t, m)
	assert.Equal(t, []string{"3"}, m.Captured, "capture stops at an unbalanced closing paren")
	assert.Equal(t, 5, m.End)
}

func TestMatchTemplate_TrimsCapturedValues(t *testing.T) {
	translator := matcherTranslator(t)

	m := translator.matchTemplate("if  a   then  b  ", 0, "if {} then {}")
	assert.NotNil(t, m)
	assert.Equal(t, []string{"a", "b"}, m.Captured)
}

func TestUnwrapOuterParens(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{"(x and y)", "x and y"},
		{"((x))", "(x)"},
		{"(a)(b)", "(a)(b)"},
		{"f(x)", "f(x)"},
		{"(unbalanced", "(unbalanced"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, unwrapOuterParens(tc.value), "unwrap of %q", tc.value)
	}
}

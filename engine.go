package qed

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/batteryspecial/QED/types"
)

// scan is the greedy, longest-match-first loop over masked text. At each
// position templates are tried before literal commands; whatever matches
// nothing is copied through unchanged, so every iteration consumes at least
// one character and free-form prose is never corrupted.
func (t *Translator) scan(text string) string {
	var sb strings.Builder
	i := 0
	for i < len(text) {
		if m, out := t.matchTemplatesAt(text, i); m != nil {
			sb.WriteString(out)
			i = m.End
			continue
		}
		if length, out, ok := t.matchCommandAt(text, i); ok {
			sb.WriteString(out)
			i += length
			continue
		}
		sb.WriteByte(text[i])
		i++
	}

	return sb.String()
}

// matchTemplatesAt tries every template pattern, longest first, and renders
// the first match. Captured values are re-parsed through scan, so templates
// nest to a depth bounded only by the input length; a value which is still
// empty after recursion renders as the configured glyph.
//
// Substitution is a single left-to-right pass over the output template, so a
// captured value containing literal "$N" text is emitted verbatim and never
// rescanned as a reference.
func (t *Translator) matchTemplatesAt(text string, i int) (*types.MatchResult, string) {
	for _, cp := range t.dict.templateTable {
		m := t.matchTemplate(text, i, cp.Pattern)
		if m == nil {
			continue
		}

		values := make([]string, len(m.Captured))
		for idx, captured := range m.Captured {
			value := t.scan(captured)
			if value == "" {
				value = t.emptyGlyph
			}
			values[idx] = value
		}
		out := refPattern.ReplaceAllStringFunc(cp.Output, func(ref string) string {
			idx, err := strconv.Atoi(ref[1:])
			if err != nil || idx >= len(values) {
				return ref
			}

			return values[idx]
		})

		return m, out
	}

	return nil, ""
}

// matchCommandAt tries every literal alias, longest first. An alias matches
// only when the character following it is a word boundary, so "RR" matches in
// "RR^2" but not inside "RRabc".
func (t *Translator) matchCommandAt(text string, i int) (int, string, bool) {
	for _, cp := range t.dict.commandTable {
		if !strings.HasPrefix(text[i:], cp.Pattern) {
			continue
		}
		if !t.isBoundary(text, i+len(cp.Pattern)) {
			continue
		}

		return len(cp.Pattern), cp.Output, true
	}

	return 0, "", false
}

func (t *Translator) isBoundary(text string, pos int) bool {
	if pos >= len(text) {
		return true
	}

	r, _ := utf8.DecodeRuneInString(text[pos:])
	if unicode.IsSpace(r) {
		return true
	}
	_, ok := t.boundaryRunes[r]

	return ok
}

// maskBraces substitutes sentinel runes for literal braces before matching
// begins; restoreBraces reverses them into escaped-brace output afterwards.
func maskBraces(text string) string {
	text = strings.ReplaceAll(text, "{", string(sentinelOpen))

	return strings.ReplaceAll(text, "}", string(sentinelClose))
}

func restoreBraces(text string) string {
	text = strings.ReplaceAll(text, string(sentinelOpen), `\{`)

	return strings.ReplaceAll(text, string(sentinelClose), `\}`)
}

// spaceCommas inserts a thin-space directive after every literal comma.
// Commas already part of a LaTeX directive (preceded by a backslash) are left
// alone.
func spaceCommas(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); i++ {
		sb.WriteByte(text[i])
		if text[i] == ',' && (i == 0 || text[i-1] != '\\') {
			sb.WriteString(`\,`)
		}
	}

	return sb.String()
}

package qed

import (
	"strings"

	"github.com/batteryspecial/QED/types"
)

// matchTemplate determines whether pattern matches text starting at start.
// The pattern's literal segments must match verbatim in a single
// deterministic left-to-right scan; between segments one value is captured
// per placeholder.
//
// Capture boundaries are parenthesis aware: an opening paren deepens the
// capture, a closing paren at depth zero belongs to an enclosing scope and
// terminates it. At depth zero the capture also ends as soon as the next
// literal segment matches, so "(if x then y)" is captured whole even though
// it contains the word "then". Leading spaces (only the ASCII space, matching
// the single-space-delimited input convention) are skipped before a capture
// and captured values are trimmed.
func (t *Translator) matchTemplate(text string, start int, pattern string) *types.MatchResult {
	segments := strings.Split(pattern, placeholder)
	if !strings.HasPrefix(text[start:], segments[0]) {
		return nil
	}

	pos := start + len(segments[0])
	captured := make([]string, 0, len(segments)-1)
	for _, next := range segments[1:] {
		for pos < len(text) && text[pos] == ' ' {
			pos++
		}

		depth := 0
		capStart := pos
		for pos < len(text) {
			c := text[pos]
			if c == ')' && depth == 0 {
				break
			}
			if depth == 0 && next != "" && strings.HasPrefix(text[pos:], next) {
				break
			}
			switch c {
			case '(':
				depth++
			case ')':
				depth--
			}
			pos++
		}

		value := strings.TrimSpace(text[capStart:pos])
		if t.unwrapParens {
			value = unwrapOuterParens(value)
		}
		captured = append(captured, value)

		if next != "" {
			if !strings.HasPrefix(text[pos:], next) {
				return nil
			}
			pos += len(next)
		}
	}

	return &types.MatchResult{Captured: captured, End: pos}
}

// unwrapOuterParens strips a single pair of parentheses wrapping the whole
// value. Parentheses are explicit grouping delimiters for ambiguous nested
// constructs; once a value is captured the outer pair has served its purpose.
func unwrapOuterParens(value string) string {
	if len(value) < 2 || value[0] != '(' || value[len(value)-1] != ')' {
		return value
	}

	depth := 0
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 && i < len(value)-1 {
			return value
		}
	}
	if depth != 0 {
		return value
	}

	return strings.TrimSpace(value[1 : len(value)-1])
}

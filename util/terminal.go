package util

import (
	"os"

	"golang.org/x/term"
)

// TerminalReader abstracts terminal detection so callers can substitute a
// fake in tests.
type TerminalReader interface {
	IsTerminal(fd int) bool
}

type defaultTerminalReader struct{}

func (defaultTerminalReader) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// DefaultTerminal is the TerminalReader used by IsInteractive.
var DefaultTerminal TerminalReader = defaultTerminalReader{}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return DefaultTerminal.IsTerminal(int(f.Fd()))
}

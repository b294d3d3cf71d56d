package parse

import (
	"strings"

	"github.com/google/shlex"
)

// Split tokenizes a control line using shell-style quoting rules.
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}

// Control splits a REPL control line of the form ":cmd arg ...". ok is false
// when the line is not a control line or cannot be tokenized.
func Control(line string) (cmd string, args []string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, ":") {
		return "", nil, false
	}

	fields, err := Split(strings.TrimPrefix(trimmed, ":"))
	if err != nil || len(fields) == 0 {
		return "", nil, false
	}

	return fields[0], fields[1:], true
}

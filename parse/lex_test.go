package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	args, err := Split(`suggest "an element"`)
	assert.Nil(t, err)
	assert.Equal(t, []string{"suggest", "an element"}, args, "quoted arguments stay whole")

	_, err = Split(`unterminated "quote`)
	assert.NotNil(t, err)
}

func TestControl(t *testing.T) {
	cmd, args, ok := Control(":suggest for")
	assert.True(t, ok)
	assert.Equal(t, "suggest", cmd)
	assert.Equal(t, []string{"for"}, args)

	cmd, args, ok = Control("  :quit  ")
	assert.True(t, ok, "surrounding whitespace is tolerated")
	assert.Equal(t, "quit", cmd)
	assert.Empty(t, args)

	_, _, ok = Control("forall x in RR")
	assert.False(t, ok, "plain shorthand is not a control line")

	_, _, ok = Control(":")
	assert.False(t, ok, "a bare colon carries no command")
}

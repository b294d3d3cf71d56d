package qed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerTable_Dispatch(t *testing.T) {
	translator := newTestTranslator(t)
	table := HandlerTable{
		TriggerEnter: ParseHandler{},
		TriggerTab:   SuggestHandler{},
	}

	ctx := &TriggerContext{Text: "forall x in RR", Translator: translator}
	assert.True(t, table.Dispatch(TriggerEnter, ctx))
	assert.Equal(t, `\forall x \in \mathbb{R}`, ctx.Latex)

	ctx = &TriggerContext{Text: "fo", Translator: translator}
	assert.True(t, table.Dispatch(TriggerTab, ctx))
	assert.Len(t, ctx.Candidates, 1)
	assert.Equal(t, "forall", ctx.Candidates[0].Alias)

	assert.False(t, table.Dispatch(TriggerSpace, ctx), "unregistered keys are not handled")
}

func TestParseHandler_DeclinesEmptyText(t *testing.T) {
	translator := newTestTranslator(t)

	ctx := &TriggerContext{Text: "   ", Translator: translator}
	assert.False(t, ParseHandler{}.Attempt(ctx), "whitespace-only text produces nothing to replace")

	assert.False(t, ParseHandler{}.Attempt(&TriggerContext{Text: "x"}), "a handler without a translator declines")
}

func TestSuggestHandler_EmptyListStillConsumes(t *testing.T) {
	translator := newTestTranslator(t)

	ctx := &TriggerContext{Text: "zzz", Translator: translator}
	assert.True(t, SuggestHandler{}.Attempt(ctx))
	assert.Empty(t, ctx.Candidates, "an empty candidate list is a valid outcome")
}

func TestTriggerKey_String(t *testing.T) {
	assert.Equal(t, "space", TriggerSpace.String())
	assert.Equal(t, "enter", TriggerEnter.String())
	assert.Equal(t, "tab", TriggerTab.String())
	assert.Equal(t, "none", TriggerNone.String())
}

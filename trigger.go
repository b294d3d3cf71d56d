package qed

import "github.com/batteryspecial/QED/suggest"

// TriggerKey enumerates the editor keypresses the shell may route to a
// handler. The mapping is a plain table lookup; which keys exist and what
// they do is the shell's decision.
type TriggerKey int

const (
	TriggerNone TriggerKey = iota
	TriggerSpace
	TriggerEnter
	TriggerTab
)

// String returns the string representation of a TriggerKey.
func (k TriggerKey) String() string {
	switch k {
	case TriggerSpace:
		return "space"
	case TriggerEnter:
		return "enter"
	case TriggerTab:
		return "tab"
	}

	return "none"
}

// TriggerContext carries the raw text captured from the editable region into
// a handler and the handler's results back out.
type TriggerContext struct {
	Text       string
	Translator *Translator

	Latex      string
	Candidates []suggest.RankedCandidate
}

// Handler is a keypress capability: Attempt returns true when it consumed
// the trigger.
type Handler interface {
	Attempt(ctx *TriggerContext) bool
}

// HandlerTable maps trigger keys to handlers.
type HandlerTable map[TriggerKey]Handler

// Dispatch routes key to its registered handler. It returns false when no
// handler is registered or the handler declined the trigger.
func (ht HandlerTable) Dispatch(key TriggerKey, ctx *TriggerContext) bool {
	h, ok := ht[key]
	if !ok || h == nil {
		return false
	}

	return h.Attempt(ctx)
}

// ParseHandler translates the context text and stores the result in
// ctx.Latex. It declines whitespace-only text.
type ParseHandler struct{}

func (ParseHandler) Attempt(ctx *TriggerContext) bool {
	if ctx.Translator == nil {
		return false
	}
	ctx.Latex = ctx.Translator.Parse(ctx.Text)

	return ctx.Latex != ""
}

// SuggestHandler ranks the context text as a typed prefix and stores the
// candidates in ctx.Candidates. It always consumes the trigger; an empty
// candidate list is a valid outcome.
type SuggestHandler struct{}

func (SuggestHandler) Attempt(ctx *TriggerContext) bool {
	if ctx.Translator == nil {
		return false
	}
	ctx.Candidates = ctx.Translator.Suggest(ctx.Text)

	return true
}

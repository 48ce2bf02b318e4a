// Package semicolon implements the smart semicolon.
//
// Typing the trigger character in the middle of a line jumps to the end of
// the line and puts the character there (unless the line already ends with
// it). Typing it again right away undoes the jump: the trailing character
// that was added is removed and the key is inserted where the caret was.
package semicolon

import (
	"github.com/dshills/smartkey/internal/keychain"
	"github.com/dshills/smartkey/internal/logging"
	"github.com/dshills/smartkey/internal/selection"
)

// DefaultTrigger is the character handled when none is configured.
const DefaultTrigger = ";"

// toggleState remembers where the caret was before the jump.
type toggleState struct {
	armed    bool
	anchor   selection.Point
	inserted bool
}

// Fallback is the smart-semicolon keystroke handler. It must be used for
// one document at a time.
type Fallback struct {
	trigger string
	state   toggleState
	log     *logging.Logger
}

// New creates a Fallback for the trigger character; "" selects
// DefaultTrigger.
func New(trigger string, log *logging.Logger) *Fallback {
	if trigger == "" {
		trigger = DefaultTrigger
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Fallback{
		trigger: trigger,
		log:     log.WithComponent("semicolon"),
	}
}

// Name implements keychain.Handler.
func (f *Fallback) Name() string {
	return "semicolon"
}

// Armed reports whether the next trigger would roll back the jump.
func (f *Fallback) Armed() bool {
	return f.state.armed
}

// HandleKey implements keychain.Handler.
func (f *Fallback) HandleKey(k keychain.Keystroke, sel selection.Handle) keychain.Result {
	if k.Key != f.trigger || !sel.IsEmpty() {
		f.state = toggleState{}
		return keychain.Pass()
	}

	if f.state.armed && f.canCommit(sel) {
		return f.commit(sel)
	}
	return f.arm(sel)
}

// canCommit reports whether the caret is still at the end of the anchor
// line, right after the trigger character.
func (f *Fallback) canCommit(sel selection.Handle) bool {
	return sel.Active().Line == f.state.anchor.Line &&
		selection.AtEndOfLine(sel) &&
		selection.CharBefore(sel) == f.trigger
}

// commit removes the character added by arm, returns the caret to the
// anchor, and lets the host insert the key there. That insertion is its
// own undo step, after the rollback group.
func (f *Fallback) commit(sel selection.Handle) keychain.Result {
	anchor, inserted := f.state.anchor, f.state.inserted
	f.state = toggleState{}

	end := selection.Group(sel, "smart semicolon")
	defer end()

	if inserted {
		sel.DeleteLeft(selection.RuneLen(f.trigger))
	}
	sel.MoveTo(anchor, false)

	f.log.Debug("rolled back to %d:%d", anchor.Line, anchor.Column)
	return keychain.Claim()
}

// arm records the caret, moves to the end of the line and makes sure the
// line ends with the trigger character.
func (f *Fallback) arm(sel selection.Handle) keychain.Result {
	f.state = toggleState{armed: true, anchor: sel.Active()}

	sel.EndOfLine(false)
	if selection.CharBefore(sel) != f.trigger {
		sel.Insert(f.trigger)
		f.state.inserted = true
	}

	f.log.Debug("armed at %d:%d (inserted=%v)", f.state.anchor.Line, f.state.anchor.Column, f.state.inserted)
	return keychain.Consume()
}

// Package keychain runs keystrokes through an ordered chain of handlers.
//
// The host calls Chain.Dispatch once per physical keystroke, before its own
// default handling. Each handler may claim the keystroke; the first claim
// stops the chain. A claim may also cancel the host's default insertion of
// the key.
package keychain

import (
	"github.com/dshills/smartkey/internal/logging"
	"github.com/dshills/smartkey/internal/selection"
)

// Keystroke is one key delivered by the host.
type Keystroke struct {
	// Key is the text the key would insert, usually one character.
	Key string
	// InStatementCompletion is set while the host's completion popup is open.
	InStatementCompletion bool
}

// Result is a handler's answer to a keystroke.
type Result struct {
	// Handled stops the chain.
	Handled bool
	// Cancel suppresses the host's default handling of the key.
	Cancel bool
}

// Pass lets the keystroke continue down the chain.
func Pass() Result { return Result{} }

// Consume stops the chain and suppresses the default keystroke.
func Consume() Result { return Result{Handled: true, Cancel: true} }

// Claim stops the chain but lets the host insert the key.
func Claim() Result { return Result{Handled: true} }

// Handler intercepts keystrokes.
type Handler interface {
	// HandleKey inspects a keystroke and optionally edits through sel.
	HandleKey(k Keystroke, sel selection.Handle) Result

	// Name identifies the handler in logs.
	Name() string
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc struct {
	name string
	fn   func(k Keystroke, sel selection.Handle) Result
}

// NewHandlerFunc creates a named Handler from fn.
func NewHandlerFunc(name string, fn func(k Keystroke, sel selection.Handle) Result) *HandlerFunc {
	return &HandlerFunc{name: name, fn: fn}
}

// HandleKey implements Handler.
func (f *HandlerFunc) HandleKey(k Keystroke, sel selection.Handle) Result {
	if f.fn == nil {
		return Pass()
	}
	return f.fn(k, sel)
}

// Name implements Handler.
func (f *HandlerFunc) Name() string {
	return f.name
}

// Chain is an ordered list of handlers. Registration order is priority
// order.
type Chain struct {
	handlers []Handler
	log      *logging.Logger
}

// NewChain creates an empty chain.
func NewChain(log *logging.Logger) *Chain {
	if log == nil {
		log = logging.Nop()
	}
	return &Chain{log: log.WithComponent("keychain")}
}

// Append adds handlers at the lowest priority.
func (c *Chain) Append(handlers ...Handler) {
	c.handlers = append(c.handlers, handlers...)
}

// Len returns the number of handlers.
func (c *Chain) Len() int {
	return len(c.handlers)
}

// Names returns handler names in priority order.
func (c *Chain) Names() []string {
	names := make([]string, len(c.handlers))
	for i, h := range c.handlers {
		names[i] = h.Name()
	}
	return names
}

// Dispatch offers k to each handler in order and returns the first
// Handled result, or the zero Result when nobody claims it.
func (c *Chain) Dispatch(k Keystroke, sel selection.Handle) Result {
	for _, h := range c.handlers {
		r := h.HandleKey(k, sel)
		if r.Handled {
			c.log.Debug("key %q handled by %s (cancel=%v)", k.Key, h.Name(), r.Cancel)
			return r
		}
	}
	return Pass()
}

// Package autopair inserts a closing character together with its opener.
package autopair

import (
	"github.com/dshills/smartkey/internal/keychain"
	"github.com/dshills/smartkey/internal/selection"
)

// Pair inserts Text when Key is typed on an empty selection and moves the
// caret Back characters left.
type Pair struct {
	Key  string
	Text string
	Back int
}

// Common pairs.
var (
	Paren       = Pair{Key: "(", Text: "()", Back: 1}
	Bracket     = Pair{Key: "[", Text: "[]", Back: 1}
	SingleQuote = Pair{Key: "'", Text: "''", Back: 1}
	DoubleQuote = Pair{Key: "\"", Text: "\"\"", Back: 1}
)

// Name implements keychain.Handler.
func (p Pair) Name() string {
	return "autopair " + p.Text
}

// HandleKey implements keychain.Handler.
func (p Pair) HandleKey(k keychain.Keystroke, sel selection.Handle) keychain.Result {
	if !sel.IsEmpty() || k.Key != p.Key {
		return keychain.Pass()
	}

	end := selection.Group(sel, "insert "+p.Text)
	defer end()

	sel.Insert(p.Text)
	if p.Back > 0 {
		sel.CharLeft(false, p.Back)
	}
	return keychain.Consume()
}

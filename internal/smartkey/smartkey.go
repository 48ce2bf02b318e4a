// Package smartkey expands multi-character abbreviations as they are typed.
//
// The Matcher watches the run of characters the user types at one caret.
// While the run is a prefix of some trigger key the Matcher claims each
// keystroke (the host still inserts the character). When the next key
// completes a trigger, the typed prefix is verified in the document and
// replaced by the trigger's template, and the completing key is swallowed.
package smartkey

import (
	"strings"

	"github.com/dshills/smartkey/internal/keychain"
	"github.com/dshills/smartkey/internal/logging"
	"github.com/dshills/smartkey/internal/selection"
	"github.com/dshills/smartkey/internal/template"
	"github.com/dshills/smartkey/internal/trigger"
)

// matchState is the run of keys typed so far.
type matchState struct {
	pending    string
	documentID string
	// next is the caret offset expected at the following keystroke.
	next int
}

// Matcher is the smart-key keystroke handler. A Matcher keeps per-run
// state and must be used for one document at a time.
type Matcher struct {
	triggers *trigger.Set
	state    matchState
	log      *logging.Logger
}

// New creates a Matcher over an immutable trigger set.
func New(triggers *trigger.Set, log *logging.Logger) *Matcher {
	if log == nil {
		log = logging.Nop()
	}
	return &Matcher{
		triggers: triggers,
		log:      log.WithComponent("smartkey"),
	}
}

// Name implements keychain.Handler.
func (m *Matcher) Name() string {
	return "smartkey"
}

// Pending returns the keys buffered toward a trigger.
func (m *Matcher) Pending() string {
	return m.state.pending
}

// Reset discards any partial match.
func (m *Matcher) Reset() {
	m.state = matchState{}
}

// HandleKey implements keychain.Handler.
func (m *Matcher) HandleKey(k keychain.Keystroke, sel selection.Handle) keychain.Result {
	if k.Key == "" || !sel.IsEmpty() {
		m.Reset()
		return keychain.Pass()
	}
	if m.state.pending != "" && !m.contiguous(sel) {
		m.log.Debug("caret left run %q, resetting", m.state.pending)
		m.Reset()
	}

	candidates := m.triggers.Candidates(sel.FileName())

	if m.state.pending != "" {
		if e := completing(candidates, m.state.pending, k.Key); e != nil {
			matched := m.state.pending
			m.Reset()

			applied := template.Apply(e.Template, sel, template.Options{
				Name:    "Expand " + e.Key,
				Matched: matched,
			})
			if applied {
				m.log.WithField("key", e.Key).Debug("expanded")
			} else {
				m.log.WithField("key", e.Key).Debug("text before caret is not %q, not expanding", matched)
			}
			return keychain.Result{Handled: true, Cancel: applied}
		}
	}

	m.state.pending += k.Key
	for _, e := range candidates {
		if strings.HasPrefix(e.Key, m.state.pending) {
			m.state.documentID = sel.DocumentID()
			m.state.next = sel.Offset() + selection.RuneLen(k.Key)
			return keychain.Claim()
		}
	}

	m.Reset()
	return keychain.Pass()
}

// contiguous reports whether the caret sits right after the previously
// buffered key in the same document.
func (m *Matcher) contiguous(sel selection.Handle) bool {
	return sel.DocumentID() == m.state.documentID && sel.Offset() == m.state.next
}

// completing returns the first candidate whose key is exactly pending
// followed by key.
func completing(candidates []*trigger.Entry, pending, key string) *trigger.Entry {
	for _, e := range candidates {
		if len(e.Key) == len(pending)+len(key) &&
			strings.HasPrefix(e.Key, pending) &&
			e.Key[len(pending):] == key {
			return e
		}
	}
	return nil
}

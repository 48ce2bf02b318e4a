// Package surround wraps the selection in a template when a template's key
// is typed over it.
package surround

import (
	"github.com/dshills/smartkey/internal/keychain"
	"github.com/dshills/smartkey/internal/lang"
	"github.com/dshills/smartkey/internal/logging"
	"github.com/dshills/smartkey/internal/selection"
	"github.com/dshills/smartkey/internal/template"
)

// Spec is a configured surround template.
type Spec struct {
	Key      string
	Name     string
	Template string
	Disable  bool
}

type entry struct {
	key      string
	name     string
	template *template.Template
}

// Handler applies surround templates.
type Handler struct {
	entries []entry
	log     *logging.Logger
}

// New compiles the enabled specs, keeping their order.
func New(specs []Spec, log *logging.Logger) *Handler {
	if log == nil {
		log = logging.Nop()
	}
	h := &Handler{log: log.WithComponent("surround")}
	for _, s := range specs {
		if s.Disable {
			continue
		}
		h.entries = append(h.entries, entry{
			key:      s.Key,
			name:     s.Name,
			template: template.CompileWrapper(s.Template),
		})
	}
	return h
}

// Len returns the number of enabled templates.
func (h *Handler) Len() int {
	return len(h.entries)
}

// Name implements keychain.Handler.
func (h *Handler) Name() string {
	return "surround"
}

// HandleKey implements keychain.Handler.
func (h *Handler) HandleKey(k keychain.Keystroke, sel selection.Handle) keychain.Result {
	if sel.IsEmpty() {
		return keychain.Pass()
	}
	if kind := lang.Classify(sel.Language()); !kind.SupportsSurround() {
		return keychain.Pass()
	}

	e, ok := h.lookup(k.Key)
	if !ok {
		return keychain.Pass()
	}
	if e.template.Mode == template.Block && !selection.IsFullLine(sel) {
		return keychain.Pass()
	}

	template.Apply(e.template, sel, template.Options{Name: "Surround With " + e.name})
	h.log.WithField("template", e.name).Debug("surrounded selection")
	return keychain.Consume()
}

func (h *Handler) lookup(key string) (entry, bool) {
	for _, e := range h.entries {
		if e.key == key {
			return e, true
		}
	}
	return entry{}, false
}

package surround

import (
	"testing"

	"github.com/dshills/smartkey/internal/document"
	"github.com/dshills/smartkey/internal/keychain"
	"github.com/dshills/smartkey/internal/selection"
)

var specs = []Spec{
	{Key: "(", Name: "parens", Template: "(...)"},
	{Key: "i", Name: "if", Template: "if (|) {\n    ...\n}"},
	{Key: "t", Name: "try", Template: "try {\n    ...\n} catch {\n}", Disable: true},
}

func TestHandler_InlineOnAnySelection(t *testing.T) {
	h := New(specs, nil)
	doc := document.New(document.WithFileName("a.js"), document.WithContent("f(a + b)"))
	doc.SetSelection(selection.Point{Column: 2}, selection.Point{Column: 7})

	r := h.HandleKey(keychain.Keystroke{Key: "("}, doc)
	if r != keychain.Consume() {
		t.Errorf("result %+v, want consumed", r)
	}
	if doc.String() != "f((a + b))" {
		t.Errorf("text = %q", doc.String())
	}
	if name, _ := doc.History().PeekUndo(); name != "Surround With parens" {
		t.Errorf("undo unit = %q", name)
	}
}

func TestHandler_BlockNeedsFullLines(t *testing.T) {
	h := New(specs, nil)
	doc := document.New(document.WithFileName("a.cs"), document.WithContent("  x();\n  y();\n"))

	doc.SetSelection(selection.Point{Column: 2}, selection.Point{Line: 1, Column: 3})
	if r := h.HandleKey(keychain.Keystroke{Key: "i"}, doc); r.Handled {
		t.Fatalf("partial-line selection handled: %+v", r)
	}

	doc.SetSelection(selection.Point{}, selection.Point{Line: 2})
	if r := h.HandleKey(keychain.Keystroke{Key: "i"}, doc); r != keychain.Consume() {
		t.Fatalf("result %+v", r)
	}
	want := "  if () {\n      x();\n      y();\n  }\n"
	if doc.String() != want {
		t.Errorf("text = %q, want %q", doc.String(), want)
	}
	if got := doc.Active(); got != (selection.Point{Line: 0, Column: 6}) {
		t.Errorf("caret = %+v", got)
	}
}

func TestHandler_Passes(t *testing.T) {
	h := New(specs, nil)
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want disabled template skipped", h.Len())
	}

	tests := []struct {
		name string
		doc  *document.Document
		key  string
	}{
		{"empty selection", document.New(document.WithFileName("a.go"), document.WithContent("x\n")), "("},
		{"unsupported language", document.New(document.WithFileName("a.txt"), document.WithContent("x\n")), "("},
		{"unknown key", document.New(document.WithFileName("a.go"), document.WithContent("x\n")), "["},
		{"disabled template", document.New(document.WithFileName("a.go"), document.WithContent("x\n")), "t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.name != "empty selection" {
				tt.doc.SetSelection(selection.Point{}, selection.Point{Line: 1})
			}
			before := tt.doc.String()
			if r := h.HandleKey(keychain.Keystroke{Key: tt.key}, tt.doc); r.Handled {
				t.Errorf("handled: %+v", r)
			}
			if tt.doc.String() != before {
				t.Errorf("text changed to %q", tt.doc.String())
			}
		})
	}
}

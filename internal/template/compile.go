// Package template compiles authored expansion templates and applies them
// to a selection.
//
// A raw template is plain text with two optional markers:
//
//	...   where the selected text goes
//	|     where the caret lands after expansion
//
// When "..." sits alone on its own line the template is a block template:
// its lines wrap whole selected lines and follow their indentation. A
// marker line indented by four spaces additionally indents the wrapped
// lines one level. Any other template is inline and is spliced in place.
// Compile leaves an inline "..." as literal text; CompileWrapper treats it
// as the selection placeholder.
package template

import (
	"strings"

	"github.com/dshills/smartkey/internal/selection"
)

// Mode selects how a template is applied.
type Mode uint8

const (
	// Inline splices the template around the selection in place.
	Inline Mode = iota
	// Block wraps whole selected lines.
	Block
)

// String returns the mode name.
func (m Mode) String() string {
	if m == Block {
		return "block"
	}
	return "inline"
}

const (
	placeholder      = "..."
	caretMarker      = "|"
	innerBlockMarker = "\n    ...\n"
	blockMarker      = "\n...\n"
)

// Template is a compiled template. It is immutable after Compile.
type Template struct {
	// Mode is Inline or Block.
	Mode Mode
	// PreLines are the lines before the placeholder.
	PreLines []string
	// PostLines are the lines after the placeholder.
	PostLines []string
	// CaretLine indexes PreLines followed by PostLines; -1 when the
	// template has no caret marker.
	CaretLine int
	// CaretColumn is the 1-based column of the caret within CaretLine.
	CaretColumn int
	// IndentInner reports whether wrapped lines get one extra indent level.
	IndentInner bool

	raw string
}

// Compile parses a raw template. It never fails: text without markers
// compiles to an inline template that inserts the text verbatim, and a
// "..." that is not a block marker is kept as written.
func Compile(raw string) *Template {
	return compile(raw, false)
}

// CompileWrapper parses a template meant to surround a selection. It is
// Compile except that an inline template is split on its first "...", so
// "(...)" puts the selected text between the parentheses.
func CompileWrapper(raw string) *Template {
	return compile(raw, true)
}

func compile(raw string, wrapInline bool) *Template {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	t := &Template{CaretLine: -1}
	switch {
	case strings.Contains(text, innerBlockMarker):
		text = strings.Replace(text, innerBlockMarker, placeholder, 1)
		t.Mode = Block
		t.IndentInner = true
	case strings.Contains(text, blockMarker):
		text = strings.Replace(text, blockMarker, placeholder, 1)
		t.Mode = Block
	default:
		t.Mode = Inline
	}

	text = strings.Trim(text, "\n \t")
	t.raw = text

	pre, post := text, ""
	if t.Mode == Block || wrapInline {
		pre, post, _ = strings.Cut(text, placeholder)
	}
	t.PreLines = selection.Lines(pre)
	t.PostLines = selection.Lines(post)

	for i, s := range t.PreLines {
		if col, ok := caretColumn(s); ok {
			t.PreLines[i] = strings.ReplaceAll(s, caretMarker, "")
			t.CaretLine = i
			t.CaretColumn = col
		}
	}
	for i, s := range t.PostLines {
		if col, ok := caretColumn(s); ok {
			t.PostLines[i] = strings.ReplaceAll(s, caretMarker, "")
			t.CaretLine = i + len(t.PreLines)
			t.CaretColumn = col
		}
	}

	return t
}

// caretColumn returns the 1-based character column of the first caret
// marker in s.
func caretColumn(s string) (int, bool) {
	i := strings.Index(s, caretMarker)
	if i < 0 {
		return 0, false
	}
	return selection.RuneLen(s[:i]) + 1, true
}

// HasCaret reports whether the template places the caret.
func (t *Template) HasCaret() bool {
	return t.CaretLine >= 0
}

// caretInPre reports whether the caret marker was in the pre lines.
func (t *Template) caretInPre() bool {
	return t.CaretLine >= 0 && t.CaretLine < len(t.PreLines)
}

// prefix returns the pre lines joined for inline use.
func (t *Template) prefix() string {
	return strings.Join(t.PreLines, "\n")
}

// suffix returns the post lines joined for inline use.
func (t *Template) suffix() string {
	return strings.Join(t.PostLines, "\n")
}

// String returns the normalized template text with markers in place.
func (t *Template) String() string {
	return t.raw
}

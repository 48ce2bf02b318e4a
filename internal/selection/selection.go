// Package selection defines the text selection abstraction that keystroke
// handlers operate on.
//
// A Handle is owned by the host editor. It exposes one possibly-empty
// selection inside one document, character-relative navigation, text
// mutation, and a scoped undo group. Lines and columns are zero-based and
// columns count characters (runes), not bytes or display cells.
package selection

import (
	"strings"
	"unicode/utf8"
)

// Point is a zero-based line/column position.
type Point struct {
	Line   int
	Column int
}

// Less reports whether p is before q.
func (p Point) Less(q Point) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

// Handle is the host's view of the active selection.
type Handle interface {
	// IsEmpty reports whether the selection is collapsed to a caret.
	IsEmpty() bool

	// Top returns the earlier end of the selection.
	Top() Point

	// Bottom returns the later end of the selection.
	Bottom() Point

	// Active returns the caret (the end that moves when extending).
	Active() Point

	// Offset returns the absolute character offset of the caret.
	Offset() int

	// Text returns the selected text.
	Text() string

	// Line returns the text of a line without its line terminator.
	Line(line int) string

	// LineCount returns the number of lines in the document.
	LineCount() int

	// MoveTo moves the caret to p, clamped to the document. When extend is
	// false the selection collapses to the caret.
	MoveTo(p Point, extend bool)

	// MoveToOffset moves the caret to an absolute character offset.
	MoveToOffset(offset int, extend bool)

	// CharLeft moves the caret n characters left.
	CharLeft(extend bool, n int)

	// CharRight moves the caret n characters right.
	CharRight(extend bool, n int)

	// EndOfLine moves the caret to the end of its line.
	EndOfLine(extend bool)

	// Insert replaces the selection with text and leaves the caret after it.
	Insert(text string)

	// Delete removes the selected text. It is a no-op on an empty selection.
	Delete()

	// DeleteLeft removes n characters before the caret.
	DeleteLeft(n int)

	// BeginGroup opens a named undo group. Nested calls while a group is
	// open are ignored.
	BeginGroup(name string)

	// EndGroup closes the open undo group.
	EndGroup()

	// GroupOpen reports whether an undo group is open.
	GroupOpen() bool

	// FileName returns the document's file name, possibly empty.
	FileName() string

	// DocumentID returns a stable identity for the document.
	DocumentID() string

	// Language returns the host's language label for the document.
	Language() string

	// IndentSize returns the language indent width in columns.
	IndentSize() int
}

// Group opens an undo group on h unless one is already open and returns
// the function that closes it. The returned function is a no-op when the
// group was opened by someone else.
func Group(h Handle, name string) (end func()) {
	if h.GroupOpen() {
		return func() {}
	}
	h.BeginGroup(name)
	return h.EndGroup
}

// AtEndOfLine reports whether the caret is at the end of its line.
func AtEndOfLine(h Handle) bool {
	p := h.Active()
	return p.Column >= RuneLen(h.Line(p.Line))
}

// AtStartOfLine reports whether p is at column zero.
func AtStartOfLine(p Point) bool {
	return p.Column == 0
}

// CharBefore returns the character immediately before the caret on the
// caret's line, or "" at the start of a line.
func CharBefore(h Handle) string {
	p := h.Active()
	if p.Column == 0 {
		return ""
	}
	line := []rune(h.Line(p.Line))
	if p.Column > len(line) {
		return ""
	}
	return string(line[p.Column-1])
}

// IsFullLine reports whether a non-empty selection starts and ends at the
// start of a line.
func IsFullLine(h Handle) bool {
	return !h.IsEmpty() && AtStartOfLine(h.Top()) && AtStartOfLine(h.Bottom())
}

// ExtendToFullLine grows the selection to cover every line it touches,
// including the terminator of the last line. An empty selection selects
// its current line.
func ExtendToFullLine(h Handle) {
	top := h.Top().Line
	bottom := h.Bottom().Line
	if h.IsEmpty() || !AtStartOfLine(h.Bottom()) {
		bottom++
	}

	h.MoveTo(Point{Line: top}, false)
	if bottom >= h.LineCount() {
		last := h.LineCount() - 1
		h.MoveTo(Point{Line: last, Column: RuneLen(h.Line(last))}, true)
		return
	}
	h.MoveTo(Point{Line: bottom}, true)
}

// Lines splits text into lines the way a line reader does: a trailing
// terminator does not produce an extra empty line and "" has no lines.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// RuneLen returns the number of characters in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Package document provides an in-memory text document that implements
// selection.Handle.
//
// A Document holds its text as characters, one selection (anchor and
// active caret), and a History. Every mutation is recorded; mutations made
// between BeginGroup and EndGroup undo as one unit.
//
// A Document is not safe for concurrent use. The host owns it and drives it
// from its event loop.
package document

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rivo/uniseg"

	"github.com/dshills/smartkey/internal/lang"
	"github.com/dshills/smartkey/internal/selection"
)

// Document is an editable text buffer with a single selection.
type Document struct {
	id         string
	fileName   string
	language   string
	indentSize int
	tabWidth   int

	text       []rune
	lineStarts []int

	anchor int
	active int

	history *History
	dirty   bool
}

// New creates a document.
func New(opts ...Option) *Document {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &Document{
		id:         uuid.NewString(),
		fileName:   o.fileName,
		language:   o.language,
		indentSize: o.indentSize,
		tabWidth:   o.tabWidth,
		text:       []rune(normalizeNewlines(o.content)),
		history:    NewHistory(o.maxUndo),
	}
	if d.language == "" {
		d.language = lang.LabelForFile(d.fileName)
	}
	d.reindex()
	return d
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// reindex rebuilds the line start table.
func (d *Document) reindex() {
	d.lineStarts = d.lineStarts[:0]
	d.lineStarts = append(d.lineStarts, 0)
	for i, r := range d.text {
		if r == '\n' {
			d.lineStarts = append(d.lineStarts, i+1)
		}
	}
}

// String returns the full document text.
func (d *Document) String() string {
	return string(d.text)
}

// Len returns the number of characters in the document.
func (d *Document) Len() int {
	return len(d.text)
}

// History returns the document's undo history.
func (d *Document) History() *History {
	return d.history
}

// Modified reports whether the document changed since it was created or
// last saved.
func (d *Document) Modified() bool {
	return d.dirty
}

// pointToOffset converts a point to an offset, clamping to the document.
func (d *Document) pointToOffset(p selection.Point) int {
	if p.Line < 0 {
		return 0
	}
	if p.Line >= len(d.lineStarts) {
		return len(d.text)
	}
	col := p.Column
	if col < 0 {
		col = 0
	}
	if n := d.lineLen(p.Line); col > n {
		col = n
	}
	return d.lineStarts[p.Line] + col
}

// offsetToPoint converts an offset to a point.
func (d *Document) offsetToPoint(off int) selection.Point {
	off = d.clamp(off)
	lo, hi := 0, len(d.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if d.lineStarts[mid] <= off {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return selection.Point{Line: lo, Column: off - d.lineStarts[lo]}
}

func (d *Document) clamp(off int) int {
	if off < 0 {
		return 0
	}
	if off > len(d.text) {
		return len(d.text)
	}
	return off
}

func (d *Document) lineLen(line int) int {
	end := len(d.text)
	if line+1 < len(d.lineStarts) {
		end = d.lineStarts[line+1] - 1
	}
	return end - d.lineStarts[line]
}

func (d *Document) bounds() (lo, hi int) {
	if d.anchor < d.active {
		return d.anchor, d.active
	}
	return d.active, d.anchor
}

// replace applies and records a replacement of [start, end) and leaves the
// selection collapsed at caret.
func (d *Document) replace(name string, start, end int, text string, caret int) {
	text = normalizeNewlines(text)
	before := span{anchor: d.anchor, active: d.active}
	old := string(d.text[start:end])
	d.apply(start, end, text)
	d.anchor, d.active = caret, caret
	d.history.push(name, edit{
		start:   start,
		oldText: old,
		newText: text,
		before:  before,
		after:   span{anchor: caret, active: caret},
	})
	d.dirty = true
}

// apply splices text into [start, end) without recording history.
func (d *Document) apply(start, end int, text string) {
	ins := []rune(text)
	out := make([]rune, 0, len(d.text)-(end-start)+len(ins))
	out = append(out, d.text[:start]...)
	out = append(out, ins...)
	out = append(out, d.text[end:]...)
	d.text = out
	d.reindex()
}

// Undo reverts the newest undo unit.
func (d *Document) Undo() error {
	e, err := d.history.popUndo()
	if err != nil {
		return err
	}
	for i := len(e.edits) - 1; i >= 0; i-- {
		ed := e.edits[i]
		d.apply(ed.start, ed.start+len([]rune(ed.newText)), ed.oldText)
	}
	first := e.edits[0].before
	d.anchor, d.active = d.clamp(first.anchor), d.clamp(first.active)
	d.dirty = true
	return nil
}

// Redo reapplies the newest undone unit.
func (d *Document) Redo() error {
	e, err := d.history.popRedo()
	if err != nil {
		return err
	}
	for _, ed := range e.edits {
		d.apply(ed.start, ed.start+len([]rune(ed.oldText)), ed.newText)
	}
	last := e.edits[len(e.edits)-1].after
	d.anchor, d.active = d.clamp(last.anchor), d.clamp(last.active)
	d.dirty = true
	return nil
}

// DisplayColumn returns the screen column of p, expanding tabs and
// measuring wide characters.
func (d *Document) DisplayColumn(p selection.Point) int {
	line := []rune(d.Line(p.Line))
	if p.Column < len(line) {
		line = line[:p.Column]
	}
	col := 0
	for _, seg := range strings.SplitAfter(string(line), "\t") {
		if strings.HasSuffix(seg, "\t") {
			col += uniseg.StringWidth(strings.TrimSuffix(seg, "\t"))
			col += d.tabWidth - col%d.tabWidth
			continue
		}
		col += uniseg.StringWidth(seg)
	}
	return col
}

// SetSelection sets the anchor and caret.
func (d *Document) SetSelection(anchor, active selection.Point) {
	d.anchor = d.pointToOffset(anchor)
	d.active = d.pointToOffset(active)
}

// IsEmpty implements selection.Handle.
func (d *Document) IsEmpty() bool {
	return d.anchor == d.active
}

// Top implements selection.Handle.
func (d *Document) Top() selection.Point {
	lo, _ := d.bounds()
	return d.offsetToPoint(lo)
}

// Bottom implements selection.Handle.
func (d *Document) Bottom() selection.Point {
	_, hi := d.bounds()
	return d.offsetToPoint(hi)
}

// Active implements selection.Handle.
func (d *Document) Active() selection.Point {
	return d.offsetToPoint(d.active)
}

// Offset implements selection.Handle.
func (d *Document) Offset() int {
	return d.active
}

// Text implements selection.Handle.
func (d *Document) Text() string {
	lo, hi := d.bounds()
	return string(d.text[lo:hi])
}

// Line implements selection.Handle.
func (d *Document) Line(line int) string {
	if line < 0 || line >= len(d.lineStarts) {
		return ""
	}
	start := d.lineStarts[line]
	return string(d.text[start : start+d.lineLen(line)])
}

// LineCount implements selection.Handle.
func (d *Document) LineCount() int {
	return len(d.lineStarts)
}

// MoveTo implements selection.Handle.
func (d *Document) MoveTo(p selection.Point, extend bool) {
	d.MoveToOffset(d.pointToOffset(p), extend)
}

// MoveToOffset implements selection.Handle.
func (d *Document) MoveToOffset(offset int, extend bool) {
	d.active = d.clamp(offset)
	if !extend {
		d.anchor = d.active
	}
}

// CharLeft implements selection.Handle.
func (d *Document) CharLeft(extend bool, n int) {
	d.MoveToOffset(d.active-n, extend)
}

// CharRight implements selection.Handle.
func (d *Document) CharRight(extend bool, n int) {
	d.MoveToOffset(d.active+n, extend)
}

// EndOfLine implements selection.Handle.
func (d *Document) EndOfLine(extend bool) {
	line := d.offsetToPoint(d.active).Line
	d.MoveToOffset(d.lineStarts[line]+d.lineLen(line), extend)
}

// Insert implements selection.Handle.
func (d *Document) Insert(text string) {
	lo, hi := d.bounds()
	d.replace("insert", lo, hi, text, lo+len([]rune(normalizeNewlines(text))))
}

// Delete implements selection.Handle.
func (d *Document) Delete() {
	lo, hi := d.bounds()
	if lo == hi {
		return
	}
	d.replace("delete", lo, hi, "", lo)
}

// DeleteLeft implements selection.Handle.
func (d *Document) DeleteLeft(n int) {
	d.anchor = d.active
	start := d.clamp(d.active - n)
	if start == d.active {
		return
	}
	d.replace("delete", start, d.active, "", start)
}

// BeginGroup implements selection.Handle.
func (d *Document) BeginGroup(name string) {
	d.history.BeginGroup(name)
}

// EndGroup implements selection.Handle.
func (d *Document) EndGroup() {
	d.history.EndGroup()
}

// GroupOpen implements selection.Handle.
func (d *Document) GroupOpen() bool {
	return d.history.IsGrouping()
}

// FileName implements selection.Handle.
func (d *Document) FileName() string {
	return d.fileName
}

// DocumentID implements selection.Handle.
func (d *Document) DocumentID() string {
	return d.id
}

// Language implements selection.Handle.
func (d *Document) Language() string {
	return d.language
}

// IndentSize implements selection.Handle.
func (d *Document) IndentSize() int {
	return d.indentSize
}

// TabWidth returns the display width of a tab stop.
func (d *Document) TabWidth() int {
	return d.tabWidth
}

var _ selection.Handle = (*Document)(nil)

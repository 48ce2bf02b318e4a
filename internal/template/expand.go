package template

import (
	"strings"

	"github.com/dshills/smartkey/internal/selection"
)

// Options controls a single Apply.
type Options struct {
	// Name labels the undo group opened for the expansion.
	Name string

	// Matched, when set, is the text expected immediately left of the
	// caret. It is verified before anything changes and is replaced by the
	// expansion.
	Matched string
}

const defaultGroupName = "expand template"

// Apply expands t at sel as one undo unit. It returns false, leaving the
// document and caret untouched, when opts.Matched does not match the text
// before the caret.
func Apply(t *Template, sel selection.Handle, opts Options) bool {
	if opts.Matched != "" && !selectMatched(sel, opts.Matched) {
		return false
	}

	name := opts.Name
	if name == "" {
		name = defaultGroupName
	}
	end := selection.Group(sel, name)
	defer end()

	if opts.Matched != "" {
		sel.Delete()
	}

	if t.Mode == Block {
		applyBlock(t, sel)
	} else {
		applyInline(t, sel)
	}
	return true
}

// selectMatched selects the len(matched) characters before the caret and
// reports whether they equal matched. On mismatch the caret is restored.
func selectMatched(sel selection.Handle, matched string) bool {
	origin := sel.Offset()
	n := selection.RuneLen(matched)
	if !sel.IsEmpty() || origin < n {
		return false
	}

	sel.CharLeft(true, n)
	if sel.Text() != matched {
		sel.MoveToOffset(origin, false)
		return false
	}
	return true
}

func applyInline(t *Template, sel selection.Handle) {
	selected := sel.Text()
	start := sel.Offset()
	if sel.Active() != sel.Top() {
		start -= selection.RuneLen(selected)
	}

	prefix := t.prefix()
	sel.Insert(prefix + selected + t.suffix())

	if !t.HasCaret() {
		return
	}
	if t.caretInPre() {
		sel.MoveToOffset(start+offsetWithin(t.PreLines, t.CaretLine, t.CaretColumn), false)
		return
	}
	base := start + selection.RuneLen(prefix) + selection.RuneLen(selected)
	sel.MoveToOffset(base+offsetWithin(t.PostLines, t.CaretLine-len(t.PreLines), t.CaretColumn), false)
}

// offsetWithin converts a line index and 1-based column in lines joined by
// newlines to a character offset.
func offsetWithin(lines []string, line, col int) int {
	off := 0
	for i := 0; i < line && i < len(lines); i++ {
		off += selection.RuneLen(lines[i]) + 1
	}
	return off + col - 1
}

func applyBlock(t *Template, sel selection.Handle) {
	origin := sel.Top()
	selection.ExtendToFullLine(sel)

	text := sel.Text()
	content := selection.Lines(text)
	indentSize := commonIndent(content)

	leading := strings.Repeat(" ", indentSize)
	inner := ""
	if t.IndentInner {
		inner = strings.Repeat(" ", sel.IndentSize())
	}

	var b strings.Builder
	for _, s := range t.PreLines {
		b.WriteString(leading + s + "\n")
	}
	for _, s := range content {
		b.WriteString(inner + s + "\n")
	}
	for _, s := range t.PostLines {
		b.WriteString(leading + s + "\n")
	}
	out := b.String()
	if !strings.HasSuffix(text, "\n") {
		// The selection ended at the end of the document.
		out = strings.TrimSuffix(out, "\n")
	}

	top := sel.Top().Line
	sel.Insert(out)

	switch {
	case t.CaretLine >= len(t.PreLines):
		sel.MoveTo(selection.Point{
			Line:   top + t.CaretLine + len(content),
			Column: t.CaretColumn - 1 + indentSize,
		}, false)
	case t.CaretLine >= 0:
		sel.MoveTo(selection.Point{
			Line:   top + t.CaretLine,
			Column: t.CaretColumn - 1 + indentSize,
		}, false)
	default:
		sel.MoveTo(selection.Point{
			Line:   origin.Line + len(t.PreLines),
			Column: origin.Column + len(inner),
		}, false)
	}
}

// commonIndent returns the smallest leading whitespace width among
// non-blank lines. When every line is blank it is the first line's width.
func commonIndent(lines []string) int {
	least := -1
	for _, s := range lines {
		if strings.TrimSpace(s) == "" {
			continue
		}
		n := leadingWidth(s)
		if least < 0 || n < least {
			least = n
		}
	}
	if least >= 0 {
		return least
	}
	if len(lines) > 0 {
		return leadingWidth(lines[0])
	}
	return 0
}

func leadingWidth(s string) int {
	return selection.RuneLen(s) - selection.RuneLen(strings.TrimLeft(s, " \t"))
}

// Package linecmd implements whole-line editing commands: duplicating the
// selected lines and toggling line comments.
//
// Every command first extends the selection to full lines, runs as a
// single undo unit and leaves the affected lines selected.
package linecmd

import (
	"strings"

	"github.com/dshills/smartkey/internal/selection"
)

// DuplicateDown inserts a copy of the selected lines below them and
// selects the copy.
func DuplicateDown(sel selection.Handle) {
	duplicate(sel, "duplicate lines down", false)
}

// DuplicateUp inserts a copy of the selected lines above them and selects
// the copy.
func DuplicateUp(sel selection.Handle) {
	duplicate(sel, "duplicate lines up", true)
}

func duplicate(sel selection.Handle, name string, up bool) {
	end := selection.Group(sel, name)
	defer end()

	selection.ExtendToFullLine(sel)
	text := sel.Text()
	if text == "" {
		return
	}

	top, bottom := sel.Top(), sel.Bottom()
	n := len(selection.Lines(text))
	terminated := strings.HasSuffix(text, "\n")

	switch {
	case up:
		sel.MoveTo(top, false)
		if !terminated {
			text += "\n"
		}
		sel.Insert(text)
		sel.MoveTo(selection.Point{Line: top.Line}, false)
		sel.MoveTo(selection.Point{Line: top.Line + n}, true)
	case terminated:
		sel.MoveTo(bottom, false)
		sel.Insert(text)
		sel.MoveTo(selection.Point{Line: bottom.Line}, false)
		sel.MoveTo(selection.Point{Line: bottom.Line + n}, true)
	default:
		// The last line has no terminator, so the copy needs one in front.
		sel.MoveTo(bottom, false)
		sel.Insert("\n" + text)
		last := sel.Active()
		sel.MoveTo(selection.Point{Line: top.Line + n}, false)
		sel.MoveTo(last, true)
	}
}

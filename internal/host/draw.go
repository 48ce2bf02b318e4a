package host

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/smartkey/internal/selection"
)

var (
	textStyle     = tcell.StyleDefault
	selectedStyle = tcell.StyleDefault.Reverse(true)
	statusStyle   = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
)

// draw renders the visible lines and the status line.
func (e *Editor) draw() {
	e.screen.Clear()
	width, height := e.screen.Size()
	if height < 2 {
		e.screen.Show()
		return
	}
	rows := height - 1

	caret := e.doc.Active()
	if caret.Line < e.top {
		e.top = caret.Line
	}
	if caret.Line >= e.top+rows {
		e.top = caret.Line - rows + 1
	}

	top, bottom := e.doc.Top(), e.doc.Bottom()
	for row := 0; row < rows && e.top+row < e.doc.LineCount(); row++ {
		line := e.top + row
		e.drawLine(row, line, width, func(col int) bool {
			p := selection.Point{Line: line, Column: col}
			return !p.Less(top) && p.Less(bottom)
		})
	}

	e.drawStatus(rows, width)
	e.screen.ShowCursor(e.doc.DisplayColumn(caret), caret.Line-e.top)
	e.screen.Show()
}

// drawLine draws one document line, one grapheme cluster per cell run.
// selected reports whether the character at a column is selected.
func (e *Editor) drawLine(row, line, width int, selected func(col int) bool) {
	tab := e.doc.TabWidth()
	x, col := 0, 0

	g := uniseg.NewGraphemes(e.doc.Line(line))
	for g.Next() && x < width {
		runes := g.Runes()
		style := textStyle
		if selected(col) {
			style = selectedStyle
		}

		if runes[0] == '\t' {
			next := x + tab - x%tab
			for ; x < next && x < width; x++ {
				e.screen.SetContent(x, row, ' ', nil, style)
			}
		} else {
			e.screen.SetContent(x, row, runes[0], runes[1:], style)
			x += max(g.Width(), 1)
		}
		col += len(runes)
	}
}

func (e *Editor) drawStatus(row, width int) {
	name := e.doc.FileName()
	if name == "" {
		name = "[no name]"
	}
	if e.doc.Modified() {
		name += " [+]"
	}
	caret := e.doc.Active()
	text := fmt.Sprintf(" %s  %s  %d:%d  %s", name, e.doc.Language(), caret.Line+1, caret.Column+1, e.status)

	x := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() && x < width {
		runes := g.Runes()
		e.screen.SetContent(x, row, runes[0], runes[1:], statusStyle)
		x += max(g.Width(), 1)
	}
	for ; x < width; x++ {
		e.screen.SetContent(x, row, ' ', nil, statusStyle)
	}
}

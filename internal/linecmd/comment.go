package linecmd

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/dshills/smartkey/internal/lang"
	"github.com/dshills/smartkey/internal/selection"
)

// ErrUnsupportedLanguage is returned when a command has no rule for the
// document's language.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// codeLine is one line split into its indentation and its code.
type codeLine struct {
	indent []rune
	code   string
}

func parseLine(s string) codeLine {
	code := strings.TrimLeftFunc(s, unicode.IsSpace)
	return codeLine{
		indent: []rune(s[:len(s)-len(code)]),
		code:   code,
	}
}

func (l codeLine) blank() bool {
	return l.code == ""
}

func (l codeLine) commented(c lang.Comment) bool {
	return l.blank() || strings.HasPrefix(l.code, c.Start)
}

func (l codeLine) uncomment(c lang.Comment) string {
	if l.blank() {
		return string(l.indent) + l.code
	}
	code := strings.TrimPrefix(l.code, c.Start)
	if c.End != "" {
		code = strings.TrimSuffix(code, c.End)
	}
	return string(l.indent) + code
}

// comment places the comment start at column at, keeping any deeper
// indentation inside the comment.
func (l codeLine) comment(c lang.Comment, at int) string {
	if l.blank() {
		return string(l.indent)
	}
	at = min(at, len(l.indent))
	return string(l.indent[:at]) + c.Start + string(l.indent[at:]) + l.code + c.End
}

// ToggleComments comments out the selected lines, or uncomments them when
// every non-blank line already starts with the language's comment token.
// New comment tokens go at the smallest indentation among the lines.
func ToggleComments(sel selection.Handle) error {
	c, ok := lang.CommentFor(lang.Classify(sel.Language()))
	if !ok {
		return fmt.Errorf("toggle comments in %q: %w", sel.Language(), ErrUnsupportedLanguage)
	}

	end := selection.Group(sel, "toggle comments")
	defer end()

	selection.ExtendToFullLine(sel)
	text := sel.Text()
	if text == "" {
		return nil
	}

	raw := selection.Lines(text)
	lines := make([]codeLine, len(raw))
	all := true
	least := -1
	for i, s := range raw {
		lines[i] = parseLine(s)
		if !lines[i].commented(c) {
			all = false
		}
		if !lines[i].blank() && (least < 0 || len(lines[i].indent) < least) {
			least = len(lines[i].indent)
		}
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		if all {
			out[i] = l.uncomment(c)
		} else {
			out[i] = l.comment(c, least)
		}
	}

	top := sel.Top()
	replacement := strings.Join(out, "\n")
	if strings.HasSuffix(text, "\n") {
		replacement += "\n"
	}
	sel.Insert(replacement)
	last := sel.Active()
	sel.MoveTo(selection.Point{Line: top.Line}, false)
	sel.MoveTo(last, true)
	return nil
}

// Package host delivers keystrokes from a terminal or a byte stream to a
// document through a handler chain.
//
// Every printable key is offered to the chain before the host inserts it;
// the host inserts the key unless the chain cancels it. Each document has
// its own chain so sequence and toggle state never leak between
// documents.
package host

import (
	"errors"
	"fmt"
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/smartkey/internal/document"
	"github.com/dshills/smartkey/internal/features"
	"github.com/dshills/smartkey/internal/keychain"
	"github.com/dshills/smartkey/internal/linecmd"
	"github.com/dshills/smartkey/internal/logging"
	"github.com/dshills/smartkey/internal/selection"
)

// Editor is a single-document terminal editor.
type Editor struct {
	screen tcell.Screen
	doc    *document.Document
	log    *logging.Logger

	mu    sync.Mutex
	chain *keychain.Chain

	top    int
	status string
	quit   bool
}

// NewEditor creates an editor for doc drawing on screen. The screen must
// already be initialized.
func NewEditor(screen tcell.Screen, doc *document.Document, b *features.Builder, log *logging.Logger) *Editor {
	if log == nil {
		log = logging.Nop()
	}
	return &Editor{
		screen: screen,
		doc:    doc,
		log:    log.WithComponent("editor"),
		chain:  b.Chain(),
	}
}

// Document returns the edited document.
func (e *Editor) Document() *document.Document {
	return e.doc
}

// Status returns the current status message.
func (e *Editor) Status() string {
	return e.status
}

// Reconfigure replaces the handler chain. Pending sequence and toggle
// state is dropped. Safe to call from another goroutine.
func (e *Editor) Reconfigure(b *features.Builder) {
	chain := b.Chain()
	e.mu.Lock()
	e.chain = chain
	e.mu.Unlock()
	e.screen.PostEvent(tcell.NewEventInterrupt("config reloaded"))
}

// quitRequest is posted by Quit.
type quitRequest struct{}

// Quit asks Run to return after the current event. Safe to call from
// another goroutine.
func (e *Editor) Quit() {
	e.screen.PostEvent(tcell.NewEventInterrupt(quitRequest{}))
}

// Run draws the document and processes events until the user quits.
func (e *Editor) Run() error {
	for !e.quit {
		e.draw()
		ev := e.screen.PollEvent()
		if ev == nil {
			return nil
		}
		e.HandleEvent(ev)
	}
	return nil
}

// HandleEvent applies one terminal event. It reports false once the
// editor should exit.
func (e *Editor) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		e.handleKey(ev)
	case *tcell.EventResize:
		e.screen.Sync()
	case *tcell.EventInterrupt:
		switch data := ev.Data().(type) {
		case quitRequest:
			e.quit = true
		case string:
			e.status = data
		}
	}
	return !e.quit
}

func (e *Editor) handleKey(ev *tcell.EventKey) {
	extend := ev.Modifiers()&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyEnter:
		e.typeKey("\n")
		return
	case tcell.KeyTab:
		e.typeKey("\t")
		return
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if e.doc.IsEmpty() {
			e.doc.DeleteLeft(1)
		} else {
			e.doc.Delete()
		}
		return
	case tcell.KeyDelete:
		if e.doc.IsEmpty() {
			e.doc.CharRight(true, 1)
		}
		e.doc.Delete()
		return
	case tcell.KeyLeft:
		e.doc.CharLeft(extend, 1)
		return
	case tcell.KeyRight:
		e.doc.CharRight(extend, 1)
		return
	case tcell.KeyUp, tcell.KeyDown:
		p := e.doc.Active()
		if ev.Key() == tcell.KeyUp {
			p.Line--
		} else {
			p.Line++
		}
		if p.Line >= 0 && p.Line < e.doc.LineCount() {
			e.doc.MoveTo(p, extend)
		}
		return
	case tcell.KeyHome:
		e.doc.MoveTo(selection.Point{Line: e.doc.Active().Line}, extend)
		return
	case tcell.KeyEnd:
		e.doc.EndOfLine(extend)
		return
	}

	if cmd, ok := ctrlLetter(ev); ok {
		e.command(cmd)
		return
	}
	if ev.Key() == tcell.KeyRune && unicode.IsPrint(ev.Rune()) {
		e.typeKey(string(ev.Rune()))
	}
}

// ctrlLetter returns the lower-case letter or '_' of a control chord.
func ctrlLetter(ev *tcell.EventKey) (rune, bool) {
	k := ev.Key()
	switch {
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return 'a' + rune(k-tcell.KeyCtrlA), true
	case k == tcell.KeyCtrlUnderscore:
		return '_', true
	case k == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0:
		r := unicode.ToLower(ev.Rune())
		if r == '/' {
			r = '_'
		}
		return r, true
	}
	return 0, false
}

// typeKey offers key to the chain and inserts it unless cancelled.
func (e *Editor) typeKey(key string) {
	e.mu.Lock()
	chain := e.chain
	e.mu.Unlock()

	r := chain.Dispatch(keychain.Keystroke{Key: key}, e.doc)
	if !r.Cancel {
		e.doc.Insert(key)
	}
}

func (e *Editor) command(c rune) {
	switch c {
	case 'q':
		e.quit = true
	case 's':
		if err := e.doc.Save(); err != nil {
			e.report(err)
			return
		}
		e.status = "saved " + e.doc.FileName()
	case 'z':
		if err := e.doc.Undo(); err != nil && !errors.Is(err, document.ErrNothingToUndo) {
			e.report(err)
		}
	case 'y':
		if err := e.doc.Redo(); err != nil && !errors.Is(err, document.ErrNothingToRedo) {
			e.report(err)
		}
	case 'd':
		linecmd.DuplicateDown(e.doc)
	case 'u':
		linecmd.DuplicateUp(e.doc)
	case '_':
		if err := linecmd.ToggleComments(e.doc); err != nil {
			e.report(err)
		}
	case 'a':
		last := e.doc.LineCount() - 1
		e.doc.MoveTo(selection.Point{}, false)
		e.doc.MoveTo(selection.Point{Line: last, Column: selection.RuneLen(e.doc.Line(last))}, true)
	}
}

func (e *Editor) report(err error) {
	e.log.Error("%v", err)
	e.status = fmt.Sprintf("error: %v", err)
}

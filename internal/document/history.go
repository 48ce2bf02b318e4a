package document

import (
	"errors"
	"sync"
	"time"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// span is a selection expressed as anchor/active character offsets.
type span struct {
	anchor int
	active int
}

// edit is one replacement applied to the document.
type edit struct {
	start   int
	oldText string
	newText string
	before  span
	after   span
}

// entry is one undo unit: a single edit or a closed group of edits.
type entry struct {
	name      string
	edits     []edit
	timestamp time.Time
}

// History manages undo/redo state for a document.
type History struct {
	mu sync.Mutex

	undoStack []*entry
	redoStack []*entry

	// Grouping state
	grouping   bool
	groupName  string
	groupEdits []edit

	maxEntries int
}

// NewHistory creates a history keeping at most maxEntries undo units.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	return &History{maxEntries: maxEntries}
}

// push records an applied edit. While a group is open the edit joins it.
func (h *History) push(name string, e edit) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		h.groupEdits = append(h.groupEdits, e)
		return
	}

	h.pushLocked(&entry{name: name, edits: []edit{e}, timestamp: time.Now()})
}

func (h *History) pushLocked(e *entry) {
	h.undoStack = append(h.undoStack, e)
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// BeginGroup starts a named group. Edits recorded until EndGroup form a
// single undo unit. Nested calls while grouping are ignored.
func (h *History) BeginGroup(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		return
	}

	h.grouping = true
	h.groupName = name
	h.groupEdits = nil
}

// EndGroup closes the open group. An empty group leaves no undo unit.
func (h *History) EndGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.grouping {
		return
	}

	h.grouping = false
	if len(h.groupEdits) > 0 {
		h.pushLocked(&entry{name: h.groupName, edits: h.groupEdits, timestamp: time.Now()})
	}
	h.groupEdits = nil
	h.groupName = ""
}

// IsGrouping returns true if a group is open.
func (h *History) IsGrouping() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.grouping
}

// popUndo removes the newest undo unit.
func (h *History) popUndo() (*entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return nil, ErrNothingToUndo
	}
	e := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, e)
	return e, nil
}

// popRedo removes the newest redo unit.
func (h *History) popRedo() (*entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return nil, ErrNothingToRedo
	}
	e := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, e)
	return e, nil
}

// UndoCount returns the number of undo units available.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// RedoCount returns the number of redo units available.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack)
}

// PeekUndo returns the name of the next undo unit.
func (h *History) PeekUndo() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return "", false
	}
	return h.undoStack[len(h.undoStack)-1].name, true
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undoStack = nil
	h.redoStack = nil
	h.grouping = false
	h.groupEdits = nil
}

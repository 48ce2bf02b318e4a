// Package trigger holds the configured smart-key abbreviations.
//
// A Set is built once from configuration and never changes. Triggers
// without a file type are "common"; the rest are grouped by file-type
// suffix. Candidates always yields common triggers first, then the scoped
// groups that apply to the file, each in declaration order.
package trigger

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/dshills/smartkey/internal/template"
)

// Trigger is a character sequence that expands into a template once
// typed in full.
type Trigger struct {
	// Key is the literal sequence that fires the trigger.
	Key string
	// FileType restricts the trigger to file names ending with it,
	// compared case-insensitively. Empty applies everywhere.
	FileType string
	// Value is the raw template.
	Value string
}

// Entry is a trigger with its compiled template.
type Entry struct {
	Trigger
	Template *template.Template
}

type scopedGroup struct {
	suffix  string
	entries []*Entry
}

// Set is an immutable, partitioned collection of triggers.
type Set struct {
	common []*Entry
	scoped []scopedGroup
	size   int
}

// fold case-folds s. A Caser is stateful, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// NewSet compiles triggers into a Set, preserving declaration order.
func NewSet(triggers []Trigger) *Set {
	s := &Set{size: len(triggers)}
	index := make(map[string]int)

	for _, t := range triggers {
		t.FileType = fold(t.FileType)
		e := &Entry{Trigger: t, Template: template.Compile(t.Value)}

		if t.FileType == "" {
			s.common = append(s.common, e)
			continue
		}

		i, ok := index[t.FileType]
		if !ok {
			i = len(s.scoped)
			index[t.FileType] = i
			s.scoped = append(s.scoped, scopedGroup{suffix: t.FileType})
		}
		s.scoped[i].entries = append(s.scoped[i].entries, e)
	}
	return s
}

// Len returns the number of triggers in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.size
}

// Candidates returns the triggers visible in a document named fileName:
// common triggers first, then every scoped group whose suffix ends the
// file name.
func (s *Set) Candidates(fileName string) []*Entry {
	if s == nil {
		return nil
	}
	if len(s.scoped) == 0 {
		return s.common
	}

	name := fold(fileName)
	out := make([]*Entry, 0, len(s.common))
	out = append(out, s.common...)
	for _, g := range s.scoped {
		if strings.HasSuffix(name, g.suffix) {
			out = append(out, g.entries...)
		}
	}
	return out
}

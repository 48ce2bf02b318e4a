package selection_test

import (
	"reflect"
	"testing"

	"github.com/dshills/smartkey/internal/document"
	"github.com/dshills/smartkey/internal/selection"
)

func at(line, col int) selection.Point {
	return selection.Point{Line: line, Column: col}
}

func TestLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\n\n", []string{"a", ""}},
		{"a\nb", []string{"a", "b"}},
		{"\n", []string{""}},
	}
	for _, tt := range tests {
		if got := selection.Lines(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Lines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPoint_Less(t *testing.T) {
	if !at(0, 5).Less(at(1, 0)) || !at(1, 1).Less(at(1, 2)) {
		t.Error("ordering wrong")
	}
	if at(1, 2).Less(at(1, 2)) {
		t.Error("point less than itself")
	}
}

func TestExtendToFullLine(t *testing.T) {
	tests := []struct {
		name           string
		content        string
		anchor, active selection.Point
		wantText       string
	}{
		{"caret", "ab\ncd\nef", at(1, 1), at(1, 1), "cd\n"},
		{"partial lines", "ab\ncd\nef", at(0, 1), at(1, 1), "ab\ncd\n"},
		{"already full", "ab\ncd\nef", at(0, 0), at(1, 0), "ab\n"},
		{"last line", "ab\ncd", at(1, 1), at(1, 1), "cd"},
		{"empty document", "", at(0, 0), at(0, 0), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := document.New(document.WithContent(tt.content))
			doc.SetSelection(tt.anchor, tt.active)
			selection.ExtendToFullLine(doc)
			if doc.Text() != tt.wantText {
				t.Errorf("Text() = %q, want %q", doc.Text(), tt.wantText)
			}
			if doc.Top().Column != 0 {
				t.Errorf("Top() = %+v", doc.Top())
			}
		})
	}
}

func TestIsFullLine(t *testing.T) {
	doc := document.New(document.WithContent("ab\ncd\n"))
	if selection.IsFullLine(doc) {
		t.Error("empty selection is not a full line")
	}
	doc.SetSelection(at(0, 0), at(1, 0))
	if !selection.IsFullLine(doc) {
		t.Error("line selection not recognised")
	}
	doc.SetSelection(at(0, 1), at(1, 0))
	if selection.IsFullLine(doc) {
		t.Error("partial selection recognised")
	}
}

func TestCaretHelpers(t *testing.T) {
	doc := document.New(document.WithContent("aé;\nx"))

	doc.MoveTo(at(0, 0), false)
	if selection.CharBefore(doc) != "" || selection.AtEndOfLine(doc) {
		t.Error("start of line")
	}
	doc.MoveTo(at(0, 3), false)
	if selection.CharBefore(doc) != ";" || !selection.AtEndOfLine(doc) {
		t.Errorf("end of line: before=%q", selection.CharBefore(doc))
	}
	doc.MoveTo(at(0, 2), false)
	if selection.CharBefore(doc) != "é" {
		t.Errorf("CharBefore = %q", selection.CharBefore(doc))
	}
	if selection.RuneLen("aé;") != 3 {
		t.Error("RuneLen counts bytes")
	}
}

func TestGroup(t *testing.T) {
	doc := document.New()

	end := selection.Group(doc, "outer")
	inner := selection.Group(doc, "inner")
	doc.Insert("x")
	inner()
	if !doc.GroupOpen() {
		t.Fatal("inner end closed the outer group")
	}
	end()

	if name, _ := doc.History().PeekUndo(); name != "outer" {
		t.Errorf("undo unit = %q", name)
	}
}

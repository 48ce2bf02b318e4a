package template

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dshills/smartkey/internal/document"
	"github.com/dshills/smartkey/internal/selection"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wrap      bool
		mode      Mode
		inner     bool
		pre       []string
		post      []string
		caretLine int
		caretCol  int
	}{
		{
			name:      "inline caret",
			raw:       "(|)",
			mode:      Inline,
			pre:       []string{"()"},
			caretLine: 0,
			caretCol:  2,
		},
		{
			name:      "inline placeholder",
			raw:       "(...)",
			wrap:      true,
			mode:      Inline,
			pre:       []string{"("},
			post:      []string{")"},
			caretLine: -1,
		},
		{
			name:      "inline trimmed",
			raw:       "\r\n  // TODO:\r\n",
			mode:      Inline,
			pre:       []string{"// TODO:"},
			caretLine: -1,
		},
		{
			name:      "block indented",
			raw:       "if (\n    ...\n)",
			mode:      Block,
			inner:     true,
			pre:       []string{"if ("},
			post:      []string{")"},
			caretLine: -1,
		},
		{
			name:      "block caret in post",
			raw:       "try {\n...\n} finally {|}",
			mode:      Block,
			pre:       []string{"try {"},
			post:      []string{"} finally {}"},
			caretLine: 1,
			caretCol:  12,
		},
		{
			name:      "last caret wins",
			raw:       "a|b\nc\n...\nd|e",
			mode:      Block,
			pre:       []string{"ab", "c"},
			post:      []string{"de"},
			caretLine: 2,
			caretCol:  2,
		},
		{
			name:      "block marker needs its own line",
			raw:       "x ... y",
			wrap:      true,
			mode:      Inline,
			pre:       []string{"x "},
			post:      []string{" y"},
			caretLine: -1,
		},
		{
			name:      "inline keeps literal dots",
			raw:       "fmt.Println(args...)",
			mode:      Inline,
			pre:       []string{"fmt.Println(args...)"},
			caretLine: -1,
		},
		{
			name:      "inline keeps dots with caret",
			raw:       "f(|xs...)",
			mode:      Inline,
			pre:       []string{"f(xs...)"},
			caretLine: 0,
			caretCol:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compile := Compile
			if tt.wrap {
				compile = CompileWrapper
			}
			tmpl := compile(tt.raw)
			if tmpl.Mode != tt.mode {
				t.Errorf("Mode = %v, want %v", tmpl.Mode, tt.mode)
			}
			if tmpl.IndentInner != tt.inner {
				t.Errorf("IndentInner = %v, want %v", tmpl.IndentInner, tt.inner)
			}
			if !reflect.DeepEqual(tmpl.PreLines, tt.pre) {
				t.Errorf("PreLines = %q, want %q", tmpl.PreLines, tt.pre)
			}
			if !reflect.DeepEqual(tmpl.PostLines, tt.post) {
				t.Errorf("PostLines = %q, want %q", tmpl.PostLines, tt.post)
			}
			if tmpl.CaretLine != tt.caretLine {
				t.Errorf("CaretLine = %d, want %d", tmpl.CaretLine, tt.caretLine)
			}
			if tt.caretLine >= 0 && tmpl.CaretColumn != tt.caretCol {
				t.Errorf("CaretColumn = %d, want %d", tmpl.CaretColumn, tt.caretCol)
			}
		})
	}
}

func TestCompile_Deterministic(t *testing.T) {
	raw := "for (|;;) {\n    ...\n}"
	if !reflect.DeepEqual(Compile(raw), Compile(raw)) {
		t.Error("identical raw templates compiled differently")
	}
}

func TestApply_InlineCaret(t *testing.T) {
	doc := document.New(document.WithContent("x = "))
	doc.MoveToOffset(4, false)

	if !Apply(Compile("(|)"), doc, Options{}) {
		t.Fatal("Apply returned false")
	}
	if doc.String() != "x = ()" {
		t.Errorf("text = %q", doc.String())
	}
	if doc.Offset() != 5 || !doc.IsEmpty() {
		t.Errorf("caret = %d, want 5", doc.Offset())
	}
}

func TestApply_InlineWrapsSelection(t *testing.T) {
	doc := document.New(document.WithContent("1 abc 2"))
	doc.SetSelection(selection.Point{Column: 5}, selection.Point{Column: 2})

	Apply(CompileWrapper("(...)"), doc, Options{})
	if doc.String() != "1 (abc) 2" {
		t.Errorf("text = %q", doc.String())
	}
	if doc.Offset() != 7 {
		t.Errorf("caret = %d, want end of insertion 7", doc.Offset())
	}
}

func TestApply_InlineCaretAfterSelection(t *testing.T) {
	doc := document.New(document.WithContent("v"))
	doc.SetSelection(selection.Point{}, selection.Point{Column: 1})

	Apply(CompileWrapper("print(...|)"), doc, Options{})
	if doc.String() != "print(v)" {
		t.Errorf("text = %q", doc.String())
	}
	if doc.Offset() != 7 {
		t.Errorf("caret = %d, want 7", doc.Offset())
	}
}

func TestApply_InlineLiteralDotsAroundSelection(t *testing.T) {
	doc := document.New(document.WithContent("v"))
	doc.SetSelection(selection.Point{}, selection.Point{Column: 1})

	Apply(Compile("<...>"), doc, Options{})
	if doc.String() != "<...>v" {
		t.Errorf("text = %q", doc.String())
	}
}

func TestApply_MatchedReplaced(t *testing.T) {
	doc := document.New(document.WithContent("x tod"))
	doc.MoveToOffset(5, false)

	if !Apply(Compile("// TODO:"), doc, Options{Matched: "tod", Name: "Expand todo"}) {
		t.Fatal("Apply returned false")
	}
	if doc.String() != "x // TODO:" {
		t.Errorf("text = %q", doc.String())
	}
	if doc.History().UndoCount() != 1 {
		t.Errorf("UndoCount() = %d, want 1", doc.History().UndoCount())
	}
	if name, _ := doc.History().PeekUndo(); name != "Expand todo" {
		t.Errorf("undo unit = %q", name)
	}

	if err := doc.Undo(); err != nil {
		t.Fatal(err)
	}
	if doc.String() != "x tod" {
		t.Errorf("after undo text = %q", doc.String())
	}
}

func TestApply_MatchedMismatch(t *testing.T) {
	doc := document.New(document.WithContent("xyz"))
	doc.MoveToOffset(3, false)

	if Apply(Compile("// TODO:"), doc, Options{Matched: "tod"}) {
		t.Fatal("Apply returned true on mismatch")
	}
	if doc.String() != "xyz" || doc.Offset() != 3 || !doc.IsEmpty() {
		t.Errorf("document changed: %q at %d", doc.String(), doc.Offset())
	}
	if doc.History().UndoCount() != 0 || doc.GroupOpen() {
		t.Error("mismatch left history behind")
	}
}

func TestApply_MatchedLongerThanDocument(t *testing.T) {
	doc := document.New(document.WithContent("o"))
	doc.MoveToOffset(1, false)

	if Apply(Compile("x"), doc, Options{Matched: "todo"}) {
		t.Error("Apply returned true")
	}
}

func TestApply_BlockIndentRoundTrip(t *testing.T) {
	original := "    a\n    b\n"
	doc := document.New(document.WithContent(original + "tail"))
	doc.SetSelection(selection.Point{}, selection.Point{Line: 2})

	if !Apply(Compile("if (\n    ...\n)"), doc, Options{}) {
		t.Fatal("Apply returned false")
	}

	want := "    if (\n        a\n        b\n    )\ntail"
	if doc.String() != want {
		t.Fatalf("text = %q, want %q", doc.String(), want)
	}
	if got := doc.Active(); got != (selection.Point{Line: 1, Column: 4}) {
		t.Errorf("caret = %+v, want original start shifted", got)
	}

	var body []string
	for i := 1; i <= 2; i++ {
		body = append(body, strings.TrimPrefix(doc.Line(i), strings.Repeat(" ", doc.IndentSize())))
	}
	if got := strings.Join(body, "\n") + "\n"; got != original {
		t.Errorf("stripped body = %q, want %q", got, original)
	}
}

func TestApply_BlockCaretInPre(t *testing.T) {
	doc := document.New(document.WithContent("  x\n"))
	doc.MoveTo(selection.Point{Column: 3}, false)

	Apply(Compile("if (|) {\n    ...\n}"), doc, Options{})

	if want := "  if () {\n      x\n  }\n"; doc.String() != want {
		t.Fatalf("text = %q, want %q", doc.String(), want)
	}
	if got := doc.Active(); got != (selection.Point{Line: 0, Column: 6}) {
		t.Errorf("caret = %+v", got)
	}
}

func TestApply_BlockCaretInPost(t *testing.T) {
	doc := document.New(document.WithContent("x\n"))

	Apply(Compile("do {\n    ...\n} while (|);"), doc, Options{})

	if want := "do {\n    x\n} while ();\n"; doc.String() != want {
		t.Fatalf("text = %q, want %q", doc.String(), want)
	}
	if got := doc.Active(); got != (selection.Point{Line: 2, Column: 9}) {
		t.Errorf("caret = %+v", got)
	}
}

func TestApply_BlockAtEndOfDocument(t *testing.T) {
	doc := document.New(document.WithContent("a"))

	Apply(Compile("{\n...\n}"), doc, Options{})
	if doc.String() != "{\na\n}" {
		t.Errorf("text = %q", doc.String())
	}
}

func TestApply_BlockIgnoresBlankLinesForIndent(t *testing.T) {
	doc := document.New(document.WithContent("    a\n\n    b\n"))
	doc.SetSelection(selection.Point{}, selection.Point{Line: 3})

	Apply(Compile("{\n...\n}"), doc, Options{})
	if want := "    {\n    a\n\n    b\n    }\n"; doc.String() != want {
		t.Errorf("text = %q, want %q", doc.String(), want)
	}
}

func TestApply_ReusesOpenGroup(t *testing.T) {
	doc := document.New(document.WithContent("v"))
	doc.BeginGroup("outer")
	doc.SetSelection(selection.Point{}, selection.Point{Column: 1})

	Apply(CompileWrapper("[...]"), doc, Options{})
	if !doc.GroupOpen() {
		t.Fatal("Apply closed a group it did not open")
	}
	doc.EndGroup()

	if name, _ := doc.History().PeekUndo(); name != "outer" {
		t.Errorf("undo unit = %q, want outer", name)
	}
}

package lang

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		label string
		want  Kind
	}{
		{"CSharp", CSharp},
		{"javascript", JavaScript},
		{"Go", Go},
		{"VisualBasic", VisualBasic},
		{"vbscript", VBScript},
		{"HTML", HTML},
		{"xml", XML},
		{"css", CSS},
		{"", Unknown},
		{"cobol", Unknown},
	}

	for _, tt := range tests {
		if got := Classify(tt.label); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestLabelForFile(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"main.go", Go},
		{"Program.CS", CSharp},
		{"app.js", JavaScript},
		{"index.html", HTML},
		{"README", Unknown},
	}

	for _, tt := range tests {
		if got := Classify(LabelForFile(tt.name)); got != tt.want {
			t.Errorf("Classify(LabelForFile(%q)) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCommentFor(t *testing.T) {
	if c, ok := CommentFor(Go); !ok || c.Start != "//" || c.End != "" {
		t.Errorf("CommentFor(Go) = %+v, %v", c, ok)
	}
	if c, ok := CommentFor(XML); !ok || c.Start != "<!--" || c.End != "-->" {
		t.Errorf("CommentFor(XML) = %+v, %v", c, ok)
	}
	if _, ok := CommentFor(Unknown); ok {
		t.Error("CommentFor(Unknown) should not be ok")
	}
}

func TestKind_SupportsSurround(t *testing.T) {
	for _, k := range []Kind{CSharp, JavaScript, Go} {
		if !k.SupportsSurround() {
			t.Errorf("%v should support surround", k)
		}
	}
	for _, k := range []Kind{Unknown, HTML, VisualBasic} {
		if k.SupportsSurround() {
			t.Errorf("%v should not support surround", k)
		}
	}
}

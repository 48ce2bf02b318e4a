// Package lang classifies documents into the closed set of language kinds
// the keystroke features know about.
package lang

import (
	"path/filepath"
	"strings"
)

// Kind is a supported document language.
type Kind uint8

const (
	// Unknown is any language label the features do not support.
	Unknown Kind = iota
	CSharp
	JavaScript
	Go
	VisualBasic
	VBScript
	HTML
	XML
	CSS
)

var kindNames = map[Kind]string{
	Unknown:     "unknown",
	CSharp:      "csharp",
	JavaScript:  "javascript",
	Go:          "go",
	VisualBasic: "visualbasic",
	VBScript:    "vbscript",
	HTML:        "html",
	XML:         "xml",
	CSS:         "css",
}

// String returns the canonical label of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Classify maps a host language label to a Kind. Labels are matched
// case-insensitively; anything unrecognised is Unknown.
func Classify(label string) Kind {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "csharp", "c#", "cs":
		return CSharp
	case "javascript", "js", "typescript", "ts":
		return JavaScript
	case "go", "golang":
		return Go
	case "visualbasic", "vb":
		return VisualBasic
	case "vbscript":
		return VBScript
	case "html", "htm":
		return HTML
	case "xml", "xaml":
		return XML
	case "css":
		return CSS
	default:
		return Unknown
	}
}

var extLabels = map[string]string{
	".cs":   "csharp",
	".js":   "javascript",
	".mjs":  "javascript",
	".ts":   "typescript",
	".go":   "go",
	".vb":   "visualbasic",
	".vbs":  "vbscript",
	".html": "html",
	".htm":  "html",
	".xml":  "xml",
	".xaml": "xml",
	".css":  "css",
}

// LabelForFile returns a language label for a file name based on its
// extension, or "" when the extension is not recognised.
func LabelForFile(name string) string {
	return extLabels[strings.ToLower(filepath.Ext(name))]
}

// SupportsSurround reports whether surround templates apply to k.
func (k Kind) SupportsSurround() bool {
	switch k {
	case CSharp, JavaScript, Go:
		return true
	default:
		return false
	}
}

// Comment describes how a language comments out a line.
type Comment struct {
	// Start is prepended to the commented code.
	Start string
	// End is appended to the commented code; empty for line comments.
	End string
}

// CommentFor returns the comment tokens for k. ok is false for Unknown.
func CommentFor(k Kind) (c Comment, ok bool) {
	switch k {
	case VisualBasic, VBScript:
		return Comment{Start: "'"}, true
	case CSharp, JavaScript, Go, CSS:
		return Comment{Start: "//"}, true
	case HTML, XML:
		return Comment{Start: "<!--", End: "-->"}, true
	default:
		return Comment{}, false
	}
}

package document

// options holds document construction settings.
type options struct {
	content    string
	fileName   string
	language   string
	indentSize int
	tabWidth   int
	maxUndo    int
}

func defaultOptions() options {
	return options{
		indentSize: 4,
		tabWidth:   4,
		maxUndo:    1000,
	}
}

// Option configures a Document.
type Option func(*options)

// WithContent sets the initial text.
func WithContent(text string) Option {
	return func(o *options) {
		o.content = text
	}
}

// WithFileName sets the document's file name. The language label is
// derived from its extension unless WithLanguage is also given.
func WithFileName(name string) Option {
	return func(o *options) {
		o.fileName = name
	}
}

// WithLanguage sets the language label.
func WithLanguage(label string) Option {
	return func(o *options) {
		o.language = label
	}
}

// WithIndentSize sets the language indent width.
func WithIndentSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.indentSize = n
		}
	}
}

// WithTabWidth sets the tab width used for display columns.
func WithTabWidth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.tabWidth = n
		}
	}
}

// WithMaxUndo limits the number of undo units kept.
func WithMaxUndo(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxUndo = n
		}
	}
}

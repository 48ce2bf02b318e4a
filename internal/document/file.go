package document

import (
	"fmt"
	"io"
	"os"
)

// Open loads a document from path. A missing file yields an empty
// document that will be created on Save.
func Open(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	all := make([]Option, 0, len(opts)+2)
	all = append(all, WithFileName(path), WithContent(string(data)))
	all = append(all, opts...)
	return New(all...), nil
}

// WriteTo writes the document text to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

// Save writes the document to its file name.
func (d *Document) Save() error {
	if d.fileName == "" {
		return ErrNoFileName
	}
	if err := os.WriteFile(d.fileName, []byte(d.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", d.fileName, err)
	}
	d.dirty = false
	return nil
}

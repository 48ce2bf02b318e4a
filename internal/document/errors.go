package document

import "errors"

// ErrNoFileName indicates Save was called on a document without a file name.
var ErrNoFileName = errors.New("document has no file name")

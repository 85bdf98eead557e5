package document

import "errors"

var (
	// ErrInputNotFound reports a source that does not exist or cannot be read.
	ErrInputNotFound = errors.New("input not found")
	// ErrInvalidDocument reports content that does not parse as a document.
	ErrInvalidDocument = errors.New("invalid document")
)

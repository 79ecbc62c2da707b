package schemald

import "errors"

// Errors reported by run-time entry points. Nil arguments are caller bugs and
// fail immediately; they are never swallowed.
var (
	// ErrNilWriter reports a nil io.Writer passed as output sink.
	ErrNilWriter = errors.New("schemald: nil writer")
	// ErrNilCollection reports a nil *Collection passed to a renderer.
	ErrNilCollection = errors.New("schemald: nil collection")
	// ErrNilDocument reports a nil Schema passed as a document.
	ErrNilDocument = errors.New("schemald: nil document")
	// ErrMultipleValues reports a second top-level value written to one Writer.
	ErrMultipleValues = errors.New("schemald: writer accepts a single top-level value")
	// ErrUnbalanced reports a token sequence that does not form valid JSON.
	ErrUnbalanced = errors.New("schemald: unbalanced token sequence")
	// ErrDuplicateKey reports two properties of one type that resolve to the same key.
	ErrDuplicateKey = errors.New("schemald: duplicate property key")
	// ErrNotStruct reports a value the interpreted writer cannot describe.
	ErrNotStruct = errors.New("schemald: value is not a pointer to a struct")
)

package corpus

import (
	"errors"
	"fmt"
)

// ErrCorpusNotFound reports that the corpus root (or a required subpath)
// does not exist. Surfaced before any generation call is attempted.
var ErrCorpusNotFound = errors.New("corpus directory not found")

// UnreadableFileError reports a candidate file whose bytes could not be
// decoded as text under the detected or fallback encoding.
type UnreadableFileError struct {
	Path string
	Err  error
}

func (e *UnreadableFileError) Error() string {
	return fmt.Sprintf("unreadable candidate file %s: %v", e.Path, e.Err)
}

func (e *UnreadableFileError) Unwrap() error { return e.Err }

// EmptyDocumentError reports a logical document that yielded zero usable
// candidate transcriptions. Such documents abort the batch instead of
// being silently skipped.
type EmptyDocumentError struct {
	Document string
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("document %s has no candidate transcriptions", e.Document)
}

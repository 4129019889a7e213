package services

import (
	"errors"
	"fmt"
)

// ErrEmptyDocument means the parser ran cleanly but produced no text,
// e.g. a scanned PDF with no OCR layer.
var ErrEmptyDocument = errors.New("no text could be extracted from the document")

// ValidationError covers user-correctable problems with the upload
// itself: missing file, empty filename, disallowed extension. Nothing
// has been written anywhere when one of these is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// UnsupportedFormatError is returned by the parser for an extension it
// does not handle. Upload validation should make this unreachable.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Extension)
}

// DocumentReadError wraps a failure inside one of the document parsing
// libraries, keeping the original cause and the file involved.
type DocumentReadError struct {
	Path string
	Err  error
}

func (e *DocumentReadError) Error() string {
	return fmt.Sprintf("failed to read document %s: %v", e.Path, e.Err)
}

func (e *DocumentReadError) Unwrap() error {
	return e.Err
}

// ProcessingError is the catch-all for unexpected failures in the
// analysis pipeline. The cause is logged server-side; callers only see
// the message.
type ProcessingError struct {
	Message string
	Err     error
}

func (e *ProcessingError) Error() string {
	return e.Message
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

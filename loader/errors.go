package loader

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedSource     = errors.New("malformed source")
	ErrMissingColumn       = errors.New("missing column")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidDurationType = errors.New("invalid duration type")
	ErrInvalidCoordinates  = errors.New("invalid coordinates")
)

// MalformedSourceError describes why a source could not be loaded. It matches both
// ErrMalformedSource and its Reason with errors.Is
type MalformedSourceError struct {
	Source string
	Line   int
	Column string
	Reason error
}

func newMalformedSourceError(source string, line int, column string, reason error) *MalformedSourceError {
	return &MalformedSourceError{
		Source: source,
		Line:   line,
		Column: column,
		Reason: reason,
	}
}

func (e *MalformedSourceError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s: %s: line %v: column %q", ErrMalformedSource, e.Source, e.Reason, e.Line, e.Column)
	}
	return fmt.Sprintf("%s: %s: %s: column %q", ErrMalformedSource, e.Source, e.Reason, e.Column)
}

func (e *MalformedSourceError) Unwrap() error {
	return e.Reason
}

func (e *MalformedSourceError) Is(target error) bool {
	return target == ErrMalformedSource
}

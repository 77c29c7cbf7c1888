package pic2term

import (
	"errors"
	"fmt"
)

var (
	// ErrGeometryUnresolved is returned when no target size was requested and
	// the terminal size could not be detected
	ErrGeometryUnresolved = errors.New("unable to determine output size, pass a width or height")
	// ErrInvalidAspect is returned for a non-finite or non-positive aspect ratio
	ErrInvalidAspect = errors.New("aspect ratio must be a positive number")
	// ErrUnknownFilter is returned by ParseFilter
	ErrUnknownFilter = errors.New("unknown resampling filter")
	// ErrUnknownEncoding is returned by ParseEncoding
	ErrUnknownEncoding = errors.New("unknown output encoding")
)

// PreconditionError reports malformed input handed to the core by a caller
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func precondition(op, format string, args ...any) error {
	return &PreconditionError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

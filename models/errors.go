package models

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds returned by the address book. Callers match them with errors.Is,
// the wrapped message says which argument or line was at fault.
var (
	// ErrNullReference is returned when a required *Entry or *Book is nil.
	ErrNullReference = errors.New("null reference")

	// ErrInvalidArgument is returned for an empty name or a malformed phone number/email address.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMalformedInput is returned when a serialized book ends in the middle of a record.
	ErrMalformedInput = errors.New("malformed input")

	// ErrIOFailure is returned when the underlying reader or writer fails.
	ErrIOFailure = errors.New("io failure")

	// ErrNotFound is returned by searches that match no entry.
	ErrNotFound = errors.New("entry not found")
)

// IOError wraps a failure of the underlying reader or writer.
// errors.Is(err, ErrIOFailure) holds for every IOError.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrIOFailure, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIOFailure
}

package status

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTicketNotFound = errors.New("ticket: ticket not found")
	ErrEmptyUsername  = errors.New("booking: username not supplied")
	ErrNotConfirmed   = errors.New("ticket: deletion not confirmed")
	ErrRateLimited    = errors.New("security: rate limit exceeded")
)

// ValidationError reports required form fields that were left empty.
// It is raised before any store call is attempted.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: missing required fields: %s", strings.Join(e.Missing, ", "))
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StoreError is the single opaque failure condition for remote table
// operations. The underlying cause is carried verbatim and never
// classified further.
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

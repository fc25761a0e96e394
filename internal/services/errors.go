package services

import (
	"errors"
	"fmt"
)

var (
	// ErrPrefixNotFound is returned when a non-root prefix matches nothing
	// in the bucket at all.
	ErrPrefixNotFound = errors.New("prefix not found")
	// ErrTooManyPages is returned when the pagination loop exceeds the
	// configured page cap without the store reporting an end.
	ErrTooManyPages = errors.New("too many listing pages")
)

// StoreUnavailableError wraps a transport or auth failure from the object
// store. The cause is kept for logging; it is never shown to clients.
type StoreUnavailableError struct {
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("object store unavailable: %v", e.Err)
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }

// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// ErrRateLimited is returned when a client exhausts its request window.
var ErrRateLimited = errors.New("Too many requests. Please try again later.")

// ValidationError marks a submission rejected for a specific field.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// StoreError wraps a persistence failure so handlers can map it to a
// server error instead of a client error.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %v", e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStoreError(err error) error {
	return &StoreError{Err: err}
}

// ErrCallbackNotFound is a sentinel error
type ErrCallbackNotFound struct {
	CallbackID string
}

func (e *ErrCallbackNotFound) Error() string {
	return fmt.Sprintf("callback request %q not found", e.CallbackID)
}

// Helper constructor
func NewCallbackNotFound(id string) error {
	return &ErrCallbackNotFound{CallbackID: id}
}

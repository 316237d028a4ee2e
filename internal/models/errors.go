package models

import "errors"

// Error kinds shared by every layer. Wrap them with fmt.Errorf("...: %w")
// and test with errors.Is.
var (
	ErrValidation      = errors.New("validation error")
	ErrConflict        = errors.New("conflict")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
)

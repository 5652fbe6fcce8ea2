package models

import "errors"

// Error taxonomy shared by stores and services. Handlers map these to
// status codes with errors.Is/As; anything else falls through to the
// error-handler middleware as a 500.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrNotOwner       = errors.New("not authorized to access this resource")
	ErrBadCredentials = errors.New("password is incorrect")
)

// ValidationError reports a schema constraint violation (missing required
// field, enum mismatch) before any persistence call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

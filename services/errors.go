package services

import (
	"errors"
	"fmt"
)

// Sentinel domain errors. Controllers translate these to HTTP statuses;
// anything not matching the taxonomy is treated as an internal failure.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrForbidden        = errors.New("operation not permitted")
	ErrAlreadyAssigned  = errors.New("reviewer is already assigned to this paper")
	ErrCapacityExceeded = errors.New("paper already has the maximum number of reviewers")
	ErrInvalidState     = errors.New("operation not allowed in current paper status")
	ErrConflict         = errors.New("concurrent update conflict")
)

// FieldError reports a single failed validation check.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates all field-level failures for one request so
// clients get the full itemized list in a single round trip.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("validation failed: %s: %s", e.Fields[0].Field, e.Fields[0].Message)
	}
	return fmt.Sprintf("validation failed on %d fields", len(e.Fields))
}

// Add appends a field failure.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Err returns the error if any field failed, nil otherwise.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// AsValidation unwraps a ValidationError if err carries one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Package apperrors defines the error taxonomy the HTTP layer maps onto
// status codes: validation failures, missing resources, quota exhaustion.
// Anything else coming out of a service is treated as an internal store
// failure and rendered as a generic 500.
package apperrors

import (
	"errors"
	"fmt"
	"time"
)

// ValidationError covers missing or malformed required fields. Never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError covers a referenced resource that does not exist, is
// soft-deleted, or does not belong to the claimed user.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func NewNotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// LimitExceededError carries usage details for the 429 response body.
type LimitExceededError struct {
	Limit      int       `json:"limit"`
	Used       int       `json:"used"`
	ResetAfter time.Time `json:"reset_after"`
}

func (e *LimitExceededError) Error() string {
	return "daily message limit exceeded"
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
)

// NotFoundMessage is shown to users for every "no result" class failure.
const NotFoundMessage = "The requested information was not found in our database. Please verify the input and try again."

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Reason  InvalidReason
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Reason returns the reason of the first field error, if any.
func (e *ValidationError) Reason() InvalidReason {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].Reason
}

// UserMessage returns the first field message, or the joined error text.
func (e *ValidationError) UserMessage() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Message
	}
	return e.Error()
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewReasonError creates a single-field ValidationError carrying a reason code.
func NewReasonError(field string, reason InvalidReason, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Reason: reason, Message: message}},
	}
}

// LookupErrorKind classifies upstream lookup failures.
type LookupErrorKind string

const (
	LookupHTTP      LookupErrorKind = "http"
	LookupEmpty     LookupErrorKind = "empty"
	LookupTransport LookupErrorKind = "transport"
)

// LookupError is returned by lookup providers. HTTP and empty failures unwrap
// to ErrNotFound; transport failures unwrap to their cause.
type LookupError struct {
	Kind     LookupErrorKind
	Category Category
	Status   int
	Err      error
}

func (e *LookupError) Error() string {
	switch e.Kind {
	case LookupHTTP:
		return fmt.Sprintf("lookup %s: request failed with status: %d", e.Category, e.Status)
	case LookupEmpty:
		return fmt.Sprintf("lookup %s: no data found for the provided input", e.Category)
	default:
		return fmt.Sprintf("lookup %s: %v", e.Category, e.Err)
	}
}

func (e *LookupError) Unwrap() error {
	if e.Kind == LookupTransport {
		return e.Err
	}
	return ErrNotFound
}

// UserMessage is the text shown in the blocking error dialog.
func (e *LookupError) UserMessage() string {
	if e.Kind == LookupTransport && e.Err != nil {
		return e.Err.Error()
	}
	return NotFoundMessage
}

// NoChainedIDMessage is shown when a chained lookup has nothing to follow.
const NoChainedIDMessage = "No Aadhaar number available to fetch"

// ChainedMessage is the inline text shown when a chained lookup fails.
func (e *LookupError) ChainedMessage() string {
	const prefix = "Failed to fetch Aadhaar details: "
	switch e.Kind {
	case LookupHTTP:
		return fmt.Sprintf(prefix+"Aadhaar API request failed with status: %d", e.Status)
	case LookupEmpty:
		return prefix + "No Aadhaar data found for the provided ID"
	default:
		return prefix + e.UserMessage()
	}
}

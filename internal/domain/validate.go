package domain

import (
	"fmt"
	"strings"
)

// InvalidReason explains why a raw input was rejected.
type InvalidReason string

const (
	ReasonEmpty           InvalidReason = "empty"
	ReasonPatternMismatch InvalidReason = "pattern-mismatch"
)

// ValidationResult is either Valid with the trimmed value or Invalid with a reason.
type ValidationResult struct {
	Value  string
	Reason InvalidReason
}

func (r ValidationResult) Valid() bool { return r.Reason == "" }

// Err returns the result as a *ValidationError, or nil when the input is valid.
func (r ValidationResult) Err(c Category) error {
	switch r.Reason {
	case "":
		return nil
	case ReasonEmpty:
		return NewReasonError("query", r.Reason, "Please enter a value")
	default:
		def := DefinitionFor(c)
		return NewReasonError("query", r.Reason, fmt.Sprintf("Please enter a valid %s %s", c, def.Noun))
	}
}

// Validate checks raw user input against the category grammar.
func Validate(c Category, raw string) ValidationResult {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ValidationResult{Reason: ReasonEmpty}
	}
	if !DefinitionFor(c).Pattern.MatchString(value) {
		return ValidationResult{Reason: ReasonPatternMismatch}
	}
	return ValidationResult{Value: value}
}

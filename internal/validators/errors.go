package validators

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedType is returned when the value passed to Validate is not a
// struct (or pointer to struct).
var ErrUnsupportedType = errors.New("unsupported type for validation")

// FieldError describes a single failed validation rule.
type FieldError struct {
	// Field is the JSON name of the offending field.
	Field string
	// Tag is the failed rule, e.g. "required", "email", "min".
	Tag string
	// Param is the rule parameter, e.g. "6" for min=6.
	Param string
}

// Message renders a short human-readable description of the failure.
func (f FieldError) Message() string {
	switch f.Tag {
	case "required":
		return fmt.Sprintf("%s is required", f.Field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", f.Field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", f.Field, f.Param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", f.Field, f.Param)
	default:
		return fmt.Sprintf("%s is invalid", f.Field)
	}
}

// FieldErrors is returned by [RequestValidator.Validate] when one or more
// fields fail validation.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, f := range e {
		msgs = append(msgs, f.Message())
	}
	return strings.Join(msgs, "; ")
}

// HasTag reports whether any field failed the given rule.
func (e FieldErrors) HasTag(tag string) bool {
	for _, f := range e {
		if f.Tag == tag {
			return true
		}
	}
	return false
}

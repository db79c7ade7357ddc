package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidEnumValue matches any *InvalidEnumValueError.
	ErrInvalidEnumValue = errors.New("invalid enum value")
	// ErrMissingField matches any *MissingFieldError.
	ErrMissingField = errors.New("missing required field")
)

// InvalidEnumValueError reports a token that does not name a known variant.
type InvalidEnumValueError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be one of %s", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// Is lets errors.Is(err, ErrInvalidEnumValue) succeed.
func (e *InvalidEnumValueError) Is(target error) bool { return target == ErrInvalidEnumValue }

// MissingFieldError reports a required record field that was left empty.
type MissingFieldError struct {
	Kind  Kind
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is missing required field %q", e.Kind, e.Field)
}

// Is lets errors.Is(err, ErrMissingField) succeed.
func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

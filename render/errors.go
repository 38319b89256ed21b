package render

import (
	"errors"
	"fmt"

	"github.com/hhhapz/formhtml/form"
)

var (
	// ErrConfig indicates an unusable option value.
	ErrConfig = errors.New("invalid configuration")
	// ErrMissingField indicates a node lacks data rendering requires.
	ErrMissingField = errors.New("missing field")
	// ErrUnfilledBlank indicates a blank without a value in complete mode.
	ErrUnfilledBlank = errors.New("unfilled blank")
)

// ConfigError reports an option set to a value the renderer does not know.
type ConfigError struct {
	Option string
	Value  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Option, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfig
}

// MissingFieldError reports a node at Path without a required field.
type MissingFieldError struct {
	Field string
	Path  form.Path
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing %s at %s", e.Field, e.Path)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// UnfilledBlankError reports a blank that no value matched.
type UnfilledBlankError struct {
	Path form.Path
}

func (e *UnfilledBlankError) Error() string {
	return fmt.Sprintf("no value for blank at %s", e.Path)
}

func (e *UnfilledBlankError) Unwrap() error {
	return ErrUnfilledBlank
}

package conv

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrFormat is matched by every *FormatError.
	ErrFormat = errors.New("conv: invalid format")
	// ErrCast is matched by every *CastError.
	ErrCast = errors.New("conv: invalid cast")
	// ErrConfiguration is matched by every *ConfigError.
	ErrConfiguration = errors.New("conv: invalid configuration")
)

// FormatError reports field text that could not be parsed as the target type.
type FormatError struct {
	Input string
	Type  reflect.Type
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("conv: cannot parse %q as %s", e.Input, typeName(e.Type))
}

// Unwrap returns ErrFormat.
func (e *FormatError) Unwrap() error { return ErrFormat }

// CastError reports a value of the wrong runtime type, or nil handed to a
// converter that does not accept nil.
type CastError struct {
	Value any
	Want  reflect.Type
}

func (e *CastError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("conv: nil is not a valid %s", typeName(e.Want))
	}

	return fmt.Sprintf("conv: cannot use %T as %s", e.Value, typeName(e.Want))
}

// Unwrap returns ErrCast.
func (e *CastError) Unwrap() error { return ErrCast }

// ConfigError reports an invalid construction argument.
type ConfigError struct {
	// Subject names the rejected argument, e.g. "format" or "separator".
	Subject string
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("conv: invalid %s: %s", e.Subject, e.Reason)
}

// Unwrap returns ErrConfiguration.
func (e *ConfigError) Unwrap() error { return ErrConfiguration }

// NewConfigError returns a *ConfigError for subject.
func NewConfigError(subject, format string, args ...any) error {
	return &ConfigError{Subject: subject, Reason: fmt.Sprintf(format, args...)}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}

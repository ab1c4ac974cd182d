package mapping

import (
	"errors"
	"fmt"

	"csv-mapper/internal/match"
)

var (
	// ErrNoRecord is returned when a mapping or property is accessed before
	// a record is bound.
	ErrNoRecord = errors.New("mapping: no record bound")
	// ErrPropertyNotFound is matched by every *LookupError.
	ErrPropertyNotFound = errors.New("mapping: property not found")
	// ErrIndexOutOfRange is returned for ordinal access outside [0, Len).
	ErrIndexOutOfRange = errors.New("mapping: index out of range")
)

// LookupError reports access to a property name the mapping does not hold.
type LookupError struct {
	Name string
	// Suggestion is the closest known name, or empty.
	Suggestion string
}

func newLookupError(name string, known []string) *LookupError {
	return &LookupError{Name: name, Suggestion: match.Suggest(name, known)}
}

func (e *LookupError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("mapping: property %q not found (did you mean %q?)", e.Name, e.Suggestion)
	}

	return fmt.Sprintf("mapping: property %q not found", e.Name)
}

// Unwrap returns ErrPropertyNotFound.
func (e *LookupError) Unwrap() error { return ErrPropertyNotFound }

func rangeError(i, n int) error {
	return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, n)
}

package conv

import (
	"reflect"
	"strings"
	"unicode"
)

// Converter converts between CSV field text and values of type T.
//
// Implementations are immutable and safe to share between goroutines.
type Converter[T any] interface {
	// TryParse parses s. It never panics and reports failure with false.
	TryParse(s string) (T, bool)
	// Format returns the field text for v. An empty string means "no value".
	Format(v T) string
	// Throwing reports whether Parse returns a *FormatError on failure
	// instead of the default value.
	Throwing() bool
	// DefaultValue is returned for blank input and, when not throwing,
	// for unparsable input.
	DefaultValue() T
	// AcceptsNull reports whether nil is a valid value.
	AcceptsNull() bool
	// DataType returns the reflect.Type of T.
	DataType() reflect.Type
}

// BlankHandler is implemented by converters whose TryParse handles blank
// input itself instead of falling back to the default value.
type BlankHandler interface {
	HandlesBlank() bool
}

// ValueChecker is implemented by converters that accept values of more than
// one runtime type through a type-erased setter.
type ValueChecker interface {
	CheckValue(v any) error
}

// Parse parses s with c and applies the converter's error policy.
func Parse[T any](c Converter[T], s string) (T, error) {
	if isBlank(s) {
		if bh, ok := c.(BlankHandler); !ok || !bh.HandlesBlank() {
			return c.DefaultValue(), nil
		}
	}

	v, ok := c.TryParse(s)
	if ok {
		return v, nil
	}

	if c.Throwing() {
		var zero T
		return zero, &FormatError{Input: s, Type: c.DataType()}
	}

	return c.DefaultValue(), nil
}

// Must is a helper that wraps a call to a converter constructor and panics
// if the error is non-nil. It is intended for package-level variables.
func Must[C any](c C, err error) C {
	if err != nil {
		panic(err)
	}

	return c
}

// IsNil reports whether v is nil, including typed nil pointers, slices,
// maps, channels and functions.
func IsNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// Nilable reports whether values of t can be nil.
func Nilable(t reflect.Type) bool {
	if t == nil {
		return true
	}

	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

func isBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

// base carries the state shared by every converter.
type base[T any] struct {
	throwing    bool
	def         T
	acceptsNull bool
	dataType    reflect.Type
}

func newBase[T any](cfg *config, fallback T) (base[T], error) {
	b := base[T]{
		throwing: cfg.throwing,
		def:      fallback,
		dataType: reflect.TypeFor[T](),
	}
	b.acceptsNull = Nilable(b.dataType)

	if cfg.hasDefault {
		if cfg.def == nil {
			if !b.acceptsNull {
				return b, NewConfigError("default", "nil is not a valid %s", b.dataType)
			}

			var zero T
			b.def = zero

			return b, nil
		}

		v, ok := cfg.def.(T)
		if !ok {
			return b, NewConfigError("default", "%T is not a %s", cfg.def, b.dataType)
		}

		b.def = v
	}

	return b, nil
}

func (b base[T]) Throwing() bool         { return b.throwing }
func (b base[T]) DefaultValue() T        { return b.def }
func (b base[T]) AcceptsNull() bool      { return b.acceptsNull }
func (b base[T]) DataType() reflect.Type { return b.dataType }

// Policy implements the Throwing, DefaultValue, AcceptsNull and DataType
// methods of Converter from options. Converters defined outside this package
// embed it to get the same option handling as the built-in ones.
type Policy[T any] struct {
	base[T]
}

// NewPolicy resolves opts for values of type T. The default value is the
// zero value unless WithDefault is given.
func NewPolicy[T any](opts ...Option) (Policy[T], error) {
	var zero T

	b, err := newBase[T](newConfig(opts), zero)
	if err != nil {
		return Policy[T]{}, err
	}

	return Policy[T]{base: b}, nil
}

// checkDefault verifies that the default value survives a format/parse
// round trip through c, i.e. that c accepts its own default.
func checkDefault[T any](c Converter[T]) error {
	def := c.DefaultValue()
	if IsNil(def) {
		if !c.AcceptsNull() {
			return NewConfigError("default", "nil is not accepted by %s", c.DataType())
		}

		return nil
	}

	s := c.Format(def)
	if s == "" {
		return nil
	}

	if _, ok := c.TryParse(s); !ok {
		return NewConfigError("default", "%q is not accepted by the %s converter", s, c.DataType())
	}

	return nil
}

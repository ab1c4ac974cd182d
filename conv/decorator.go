package conv

import (
	"fmt"
	"reflect"
	"strings"
)

// NullableConverter lifts a Converter[T] to *T. Blank or unparsable input
// yields nil; Throwing is taken from the wrapped converter.
type NullableConverter[T any] struct {
	base[*T]
	inner Converter[T]
}

// Nullable wraps inner so that nil represents a missing value.
func Nullable[T any](inner Converter[T]) (*NullableConverter[T], error) {
	if inner == nil {
		return nil, NewConfigError("converter", "nil converter")
	}

	return &NullableConverter[T]{
		base: base[*T]{
			throwing:    inner.Throwing(),
			acceptsNull: true,
			dataType:    reflect.TypeFor[*T](),
		},
		inner: inner,
	}, nil
}

// Inner returns the wrapped converter.
func (c *NullableConverter[T]) Inner() Converter[T] { return c.inner }

func (c *NullableConverter[T]) TryParse(s string) (*T, bool) {
	v, ok := c.inner.TryParse(s)
	if !ok {
		return nil, false
	}

	return &v, true
}

func (c *NullableConverter[T]) Format(v *T) string {
	if v == nil {
		return ""
	}

	return c.inner.Format(*v)
}

// Null is the type of DBNull.
type Null struct{}

func (Null) String() string { return "<null>" }

// DBNull marks a field that holds no value. NullMarker converters read blank
// fields as DBNull and write DBNull as an empty field.
var DBNull = Null{}

// NullMarkerConverter wraps a Converter[T] into a Converter[any] whose values
// are either T or DBNull.
type NullMarkerConverter[T any] struct {
	base[any]
	inner Converter[T]
}

// NullMarker wraps inner so that blank fields read as DBNull. Its default
// value is DBNull; Throwing is taken from inner.
func NullMarker[T any](inner Converter[T]) (*NullMarkerConverter[T], error) {
	if inner == nil {
		return nil, NewConfigError("converter", "nil converter")
	}

	return &NullMarkerConverter[T]{
		base: base[any]{
			throwing:    inner.Throwing(),
			def:         DBNull,
			acceptsNull: true,
			dataType:    reflect.TypeFor[any](),
		},
		inner: inner,
	}, nil
}

// Inner returns the wrapped converter.
func (c *NullMarkerConverter[T]) Inner() Converter[T] { return c.inner }

func (c *NullMarkerConverter[T]) TryParse(s string) (any, bool) {
	if isBlank(s) {
		return DBNull, true
	}

	v, ok := c.inner.TryParse(s)
	if !ok {
		return DBNull, false
	}

	return v, true
}

func (c *NullMarkerConverter[T]) Format(v any) string {
	switch t := v.(type) {
	case nil, Null:
		return ""
	case T:
		return c.inner.Format(t)
	default:
		return fmt.Sprint(t)
	}
}

// CheckValue accepts nil, DBNull and values of type T.
func (c *NullMarkerConverter[T]) CheckValue(v any) error {
	switch v.(type) {
	case nil, Null, T:
		return nil
	default:
		return &CastError{Value: v, Want: reflect.TypeFor[T]()}
	}
}

// SliceConverter converts []T to a single field by joining the item texts
// with a separator.
type SliceConverter[T any] struct {
	base[[]T]
	item     Converter[T]
	sep      string
	nullable bool
}

// Slice returns a converter for []T. Blank input, or input whose items are
// all blank, yields nil when nullable is true and an empty slice otherwise.
// An empty slice is written as an empty field. Each item is parsed with the
// item converter's policy, so a throwing item converter makes the slice
// converter throwing as well.
func Slice[T any](item Converter[T], sep string, nullable bool) (*SliceConverter[T], error) {
	if item == nil {
		return nil, NewConfigError("converter", "nil item converter")
	}

	if sep == "" {
		return nil, NewConfigError("separator", "separator must not be empty")
	}

	c := &SliceConverter[T]{
		base: base[[]T]{
			throwing:    item.Throwing(),
			acceptsNull: true,
			dataType:    reflect.TypeFor[[]T](),
		},
		item:     item,
		sep:      sep,
		nullable: nullable,
	}

	if !nullable {
		c.def = []T{}
	}

	return c, nil
}

// Item returns the item converter.
func (c *SliceConverter[T]) Item() Converter[T] { return c.item }

// Separator returns the item separator.
func (c *SliceConverter[T]) Separator() string { return c.sep }

// DefaultValue returns a fresh value so callers may append to it.
func (c *SliceConverter[T]) DefaultValue() []T {
	if c.nullable {
		return nil
	}

	return []T{}
}

func (c *SliceConverter[T]) TryParse(s string) ([]T, bool) {
	if isBlank(s) {
		return c.DefaultValue(), true
	}

	tokens := strings.Split(s, c.sep)

	blank := true
	for _, tok := range tokens {
		if !isBlank(tok) {
			blank = false
			break
		}
	}

	if blank {
		return c.DefaultValue(), true
	}

	out := make([]T, 0, len(tokens))
	for _, tok := range tokens {
		v, err := Parse(c.item, tok)
		if err != nil {
			return nil, false
		}

		out = append(out, v)
	}

	return out, true
}

func (c *SliceConverter[T]) Format(v []T) string {
	if len(v) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, item := range v {
		if i > 0 {
			sb.WriteString(c.sep)
		}

		sb.WriteString(c.item.Format(item))
	}

	return sb.String()
}

package mapping

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"csv-mapper/conv"
	"csv-mapper/record"
)

// Property binds one named logical field to one or more columns of the
// record currently assigned to it.
//
// Properties hold per-record resolution state and are not safe for
// concurrent use. Use Mapping.Clone to give each goroutine its own copy.
type Property interface {
	// Name is the identifier the property is addressed by.
	Name() string
	// Record returns the bound record, or nil.
	Record() *record.Record
	// Value reads the property from the bound record.
	Value() (any, error)
	// SetValue writes v, which must have the property's data type or be nil.
	SetValue(v any) error
	DataType() reflect.Type

	bind(rec *record.Record)
	collect(seen map[uint64]bool, out []int) []int
	clone(memo map[*Mapping]*Mapping) Property
}

// Typed is a Property with statically typed accessors. Every property
// constructed by this package implements Typed for its value type.
type Typed[T any] interface {
	Property
	Get() (T, error)
	Set(v T) error
}

var lastPropertyID atomic.Uint64

type propBase struct {
	name string
	id   uint64
	rec  *record.Record
}

func newPropBase(name string) (propBase, error) {
	if !isIdentifier(name) {
		return propBase{}, conv.NewConfigError("property name", "%q is not an identifier", name)
	}

	return propBase{name: name, id: lastPropertyID.Add(1)}, nil
}

func (p *propBase) Name() string            { return p.name }
func (p *propBase) Record() *record.Record  { return p.rec }
func (p *propBase) bind(rec *record.Record) { p.rec = rec }
func (p *propBase) wrap(err error) error    { return fmt.Errorf("mapping: %s: %w", p.name, err) }
func (p *propBase) fresh() propBase         { return propBase{name: p.name, id: lastPropertyID.Add(1)} }

// ValidName reports whether name is accepted as a property name.
func ValidName(name string) bool { return isIdentifier(name) }

// isIdentifier reports whether s is an ASCII letter or underscore followed
// by ASCII letters, digits or underscores.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i := range len(s) {
		c := s[i]

		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}

// column holds the converter of a single-column property and performs
// the absent-aware read and write.
type column[T any] struct {
	converter conv.Converter[T]
	nilable   bool
	checker   conv.ValueChecker
}

func newColumn[T any](c conv.Converter[T]) (column[T], error) {
	if c == nil {
		return column[T]{}, conv.NewConfigError("converter", "nil converter")
	}

	checker, _ := c.(conv.ValueChecker)

	return column[T]{
		converter: c,
		nilable:   conv.Nilable(reflect.TypeFor[T]()),
		checker:   checker,
	}, nil
}

// Converter returns the property's converter.
func (c *column[T]) Converter() conv.Converter[T] { return c.converter }

func (c *column[T]) DataType() reflect.Type { return c.converter.DataType() }

// read parses field idx of rec; idx < 0 means the column is absent.
func (c *column[T]) read(rec *record.Record, idx int) (T, error) {
	if idx < 0 || idx >= rec.Count() {
		return c.converter.DefaultValue(), nil
	}

	return conv.Parse(c.converter, rec.Value(idx))
}

// write formats v into field idx of rec. nil and values the converter
// rejects fail before the absent check so misuse surfaces even when the
// column is missing.
func (c *column[T]) write(rec *record.Record, idx int, v T) error {
	if c.nilable && !c.converter.AcceptsNull() && conv.IsNil(v) {
		return &conv.CastError{Want: c.converter.DataType()}
	}

	if c.checker != nil {
		if err := c.checker.CheckValue(any(v)); err != nil {
			return err
		}
	}

	if idx < 0 || idx >= rec.Count() {
		return nil
	}

	rec.SetValue(idx, c.converter.Format(v))

	return nil
}

// assert converts a type-erased value for Set.
func (c *column[T]) assert(v any) (T, error) {
	return assertValue[T](v, c.converter.AcceptsNull(), c.checker, c.converter.DataType())
}

func assertValue[T any](v any, acceptsNull bool, checker conv.ValueChecker, want reflect.Type) (T, error) {
	var zero T

	if v == nil {
		if !acceptsNull {
			return zero, &conv.CastError{Want: want}
		}

		return zero, nil
	}

	if checker != nil {
		if err := checker.CheckValue(v); err != nil {
			return zero, err
		}
	}

	t, ok := v.(T)
	if !ok {
		return zero, &conv.CastError{Value: v, Want: want}
	}

	return t, nil
}

func boxed[T any](v T, err error) (any, error) {
	if err != nil {
		return nil, err
	}

	return v, nil
}

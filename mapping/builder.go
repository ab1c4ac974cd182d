package mapping

import (
	"errors"
	"fmt"
	"reflect"

	"csv-mapper/conv"
)

// Builder collects properties and construction errors so a whole mapping
// can be declared in one expression and checked once:
//
//	m, err := mapping.NewBuilder().
//		Add(mapping.NewIndexProperty[int]("A", 0, intConv)).
//		Add(mapping.NewColumnNameProperty[int]("B", []string{"B", "b_*"}, intConv)).
//		Build()
type Builder struct {
	props []Property
	errs  []error
}

func NewBuilder() *Builder { return &Builder{} }

// Add appends p, or records err. It accepts the results of a property
// constructor directly.
func (b *Builder) Add(p Property, err error) *Builder {
	switch {
	case err != nil:
		b.errs = append(b.errs, err)
	case p == nil || conv.IsNil(p):
		b.errs = append(b.errs, conv.NewConfigError("property", "nil property"))
	default:
		b.props = append(b.props, p)
	}

	return b
}

// Build returns the mapping, or every collected error joined.
func (b *Builder) Build() (*Mapping, error) {
	m := &Mapping{index: make(map[string]int, len(b.props))}
	errs := b.errs

	for _, p := range b.props {
		if err := m.Add(p); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return m, nil
}

// Lookup returns the property named name as a Typed[T].
func Lookup[T any](m *Mapping, name string) (Typed[T], error) {
	p, err := m.Property(name)
	if err != nil {
		return nil, err
	}

	t, ok := p.(Typed[T])
	if !ok {
		return nil, fmt.Errorf("%w: property %q holds %s, not %s", conv.ErrCast, name, p.DataType(), reflect.TypeFor[T]())
	}

	return t, nil
}

// GetAs reads the property named name as a T.
func GetAs[T any](m *Mapping, name string) (T, error) {
	var zero T

	if m.Record() == nil {
		return zero, ErrNoRecord
	}

	p, err := Lookup[T](m, name)
	if err != nil {
		return zero, err
	}

	return p.Get()
}

// SetAs writes v to the property named name.
func SetAs[T any](m *Mapping, name string, v T) error {
	if m.Record() == nil {
		return ErrNoRecord
	}

	p, err := Lookup[T](m, name)
	if err != nil {
		return err
	}

	return p.Set(v)
}

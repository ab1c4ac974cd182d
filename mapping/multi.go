package mapping

import (
	"reflect"
	"strings"

	"csv-mapper/conv"
	"csv-mapper/record"
)

// MultiColumnCodec converts a value to and from the properties of a nested
// mapping. The mapping passed to each method is bound to the current record.
type MultiColumnCodec[T any] interface {
	// HasValue reports whether the columns hold any data. When it returns
	// false the converter yields its default value without calling
	// TryConvert.
	HasValue(m *Mapping) bool
	// TryConvert builds a value from the nested properties.
	TryConvert(m *Mapping) (T, bool)
	// Write stores v into the nested properties. A failure part way through
	// may leave earlier columns written.
	Write(m *Mapping, v T) error
}

// MultiColumnConverter reads and writes a value spread over several
// columns, applying the same throw/default policy as single-column
// converters. The policy belongs to the composite; the nested properties'
// own policies only affect how each column is parsed.
type MultiColumnConverter[T any] struct {
	conv.Policy[T]
	mapping *Mapping
	codec   MultiColumnCodec[T]
	nilable bool
}

// NewMultiColumnConverter returns a converter over the nested mapping m.
// conv.WithThrowing and conv.WithDefault set its policy.
func NewMultiColumnConverter[T any](m *Mapping, codec MultiColumnCodec[T], opts ...conv.Option) (*MultiColumnConverter[T], error) {
	if m == nil {
		return nil, conv.NewConfigError("mapping", "nil nested mapping")
	}

	if codec == nil {
		return nil, conv.NewConfigError("codec", "nil multi-column codec")
	}

	policy, err := conv.NewPolicy[T](opts...)
	if err != nil {
		return nil, err
	}

	return &MultiColumnConverter[T]{
		Policy:  policy,
		mapping: m,
		codec:   codec,
		nilable: conv.Nilable(reflect.TypeFor[T]()),
	}, nil
}

// Mapping returns the nested mapping.
func (c *MultiColumnConverter[T]) Mapping() *Mapping { return c.mapping }

// Convert reads the value from the nested mapping's record.
func (c *MultiColumnConverter[T]) Convert() (T, error) {
	var zero T

	if c.mapping.Record() == nil {
		return zero, ErrNoRecord
	}

	if !c.codec.HasValue(c.mapping) {
		return c.DefaultValue(), nil
	}

	if v, ok := c.codec.TryConvert(c.mapping); ok {
		return v, nil
	}

	if c.Throwing() {
		return zero, &conv.FormatError{Input: c.mapping.accessedText(), Type: c.DataType()}
	}

	return c.DefaultValue(), nil
}

// ConvertToCsv writes v into the nested mapping's record.
func (c *MultiColumnConverter[T]) ConvertToCsv(v T) error {
	if c.mapping.Record() == nil {
		return ErrNoRecord
	}

	if c.nilable && !c.AcceptsNull() && conv.IsNil(v) {
		return &conv.CastError{Want: c.DataType()}
	}

	return c.codec.Write(c.mapping, v)
}

func (c *MultiColumnConverter[T]) withMapping(m *Mapping) *MultiColumnConverter[T] {
	cp := *c
	cp.mapping = m

	return &cp
}

// MultiColumnProperty delegates to a MultiColumnConverter. Binding the
// property binds the converter's nested mapping to the same record.
type MultiColumnProperty[T any] struct {
	propBase
	converter *MultiColumnConverter[T]
}

// NewMultiColumnProperty returns a property named name backed by c.
func NewMultiColumnProperty[T any](name string, c *MultiColumnConverter[T]) (*MultiColumnProperty[T], error) {
	base, err := newPropBase(name)
	if err != nil {
		return nil, err
	}

	if c == nil {
		return nil, conv.NewConfigError("converter", "nil multi-column converter")
	}

	return &MultiColumnProperty[T]{propBase: base, converter: c}, nil
}

// Converter returns the property's converter.
func (p *MultiColumnProperty[T]) Converter() *MultiColumnConverter[T] { return p.converter }

func (p *MultiColumnProperty[T]) DataType() reflect.Type { return p.converter.DataType() }

func (p *MultiColumnProperty[T]) bind(rec *record.Record) {
	p.rec = rec
	p.converter.mapping.SetRecord(rec)
}

func (p *MultiColumnProperty[T]) Get() (T, error) {
	if p.rec == nil {
		var zero T
		return zero, ErrNoRecord
	}

	v, err := p.converter.Convert()
	if err != nil {
		return v, p.wrap(err)
	}

	return v, nil
}

func (p *MultiColumnProperty[T]) Set(v T) error {
	if p.rec == nil {
		return ErrNoRecord
	}

	if err := p.converter.ConvertToCsv(v); err != nil {
		return p.wrap(err)
	}

	return nil
}

func (p *MultiColumnProperty[T]) Value() (any, error) { return boxed(p.Get()) }

func (p *MultiColumnProperty[T]) SetValue(v any) error {
	if p.rec == nil {
		return ErrNoRecord
	}

	t, err := assertValue[T](v, p.converter.AcceptsNull(), nil, p.converter.DataType())
	if err != nil {
		return p.wrap(err)
	}

	return p.Set(t)
}

// collect adds the nested mapping's indexes. seen holds the properties
// already on the traversal so a mapping that contains this property is
// not entered twice.
func (p *MultiColumnProperty[T]) collect(seen map[uint64]bool, out []int) []int {
	if seen[p.id] {
		return out
	}

	seen[p.id] = true

	for _, nested := range p.converter.mapping.props {
		out = nested.collect(seen, out)
	}

	return out
}

func (p *MultiColumnProperty[T]) clone(memo map[*Mapping]*Mapping) Property {
	return &MultiColumnProperty[T]{
		propBase:  p.fresh(),
		converter: p.converter.withMapping(p.converter.mapping.cloneWith(memo)),
	}
}

// accessedText joins the fields the mapping reads, for error messages.
func (m *Mapping) accessedText() string {
	if m.rec == nil {
		return ""
	}

	var sb strings.Builder

	for i, idx := range m.AccessedColumnIndexes() {
		if i > 0 {
			sb.WriteByte(',')
		}

		if idx < m.rec.Count() {
			sb.WriteString(m.rec.Value(idx))
		}
	}

	return sb.String()
}

package mapping

import (
	"csv-mapper/conv"
)

// IndexProperty is bound to a fixed column index. The property is absent
// for records with fewer fields: reads return the converter's default value
// and writes are dropped.
type IndexProperty[T any] struct {
	propBase
	column[T]
	index int
}

// NewIndexProperty returns a property named name reading column index.
func NewIndexProperty[T any](name string, index int, c conv.Converter[T]) (*IndexProperty[T], error) {
	base, err := newPropBase(name)
	if err != nil {
		return nil, err
	}

	if index < 0 {
		return nil, conv.NewConfigError("index", "column index %d of %s is negative", index, name)
	}

	col, err := newColumn(c)
	if err != nil {
		return nil, err
	}

	return &IndexProperty[T]{propBase: base, column: col, index: index}, nil
}

// Index returns the bound column index.
func (p *IndexProperty[T]) Index() int { return p.index }

func (p *IndexProperty[T]) Get() (T, error) {
	if p.rec == nil {
		var zero T
		return zero, ErrNoRecord
	}

	v, err := p.read(p.rec, p.index)
	if err != nil {
		return v, p.wrap(err)
	}

	return v, nil
}

func (p *IndexProperty[T]) Set(v T) error {
	if p.rec == nil {
		return ErrNoRecord
	}

	if err := p.write(p.rec, p.index, v); err != nil {
		return p.wrap(err)
	}

	return nil
}

func (p *IndexProperty[T]) Value() (any, error) { return boxed(p.Get()) }

func (p *IndexProperty[T]) SetValue(v any) error {
	if p.rec == nil {
		return ErrNoRecord
	}

	t, err := p.assert(v)
	if err != nil {
		return p.wrap(err)
	}

	return p.Set(t)
}

func (p *IndexProperty[T]) collect(_ map[uint64]bool, out []int) []int {
	return append(out, p.index)
}

func (p *IndexProperty[T]) clone(map[*Mapping]*Mapping) Property {
	c := *p
	c.propBase = p.fresh()

	return &c
}

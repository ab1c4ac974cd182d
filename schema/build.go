package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"csv-mapper/conv"
	"csv-mapper/csvio"
	"csv-mapper/mapping"
)

// Build validates f and returns the mapping it describes.
func Build(f *File) (*mapping.Mapping, error) {
	if d := Validate(f); d.HasErrors() {
		return nil, d.Error()
	}

	b := mapping.NewBuilder()
	for i := range f.Properties {
		b.Add(BuildProperty(&f.Properties[i]))
	}

	return b.Build()
}

// CSVOptions returns the reader and writer options f declares.
func CSVOptions(f *File) []csvio.Option {
	opts := []csvio.Option{
		csvio.WithHeader(f.Options.Header()),
		csvio.WithIgnoreCase(f.Options.IgnoreCase),
	}

	if len(f.Options.Separator) == 1 {
		opts = append(opts, csvio.WithSeparator(f.Options.Separator[0]))
	}

	return opts
}

// BuildProperty returns the property p declares.
func BuildProperty(p *Property) (mapping.Property, error) {
	k, ok := p.Kind()
	if !ok {
		return nil, conv.NewConfigError("type", "unknown type %q", p.Type)
	}

	switch k {
	case conv.KindString:
		return scalar(p, ctor[string](conv.String))
	case conv.KindBool:
		return scalar(p, ctor[bool](conv.Bool))
	case conv.KindRune:
		return scalar(p, ctor[rune](conv.Rune))
	case conv.KindInt:
		return scalar(p, integer[int](p.Hex))
	case conv.KindInt8:
		return scalar(p, integer[int8](p.Hex))
	case conv.KindInt16:
		return scalar(p, integer[int16](p.Hex))
	case conv.KindInt32:
		return scalar(p, integer[int32](p.Hex))
	case conv.KindInt64:
		return scalar(p, integer[int64](p.Hex))
	case conv.KindUint:
		return scalar(p, integer[uint](p.Hex))
	case conv.KindUint8:
		return scalar(p, integer[uint8](p.Hex))
	case conv.KindUint16:
		return scalar(p, integer[uint16](p.Hex))
	case conv.KindUint32:
		return scalar(p, integer[uint32](p.Hex))
	case conv.KindUint64:
		return scalar(p, integer[uint64](p.Hex))
	case conv.KindFloat32:
		return scalar(p, ctor[float32](conv.Float[float32]))
	case conv.KindFloat64:
		return scalar(p, ctor[float64](conv.Float[float64]))
	case conv.KindDecimal:
		return scalar(p, ctor[decimal.Decimal](conv.Decimal))
	case conv.KindTime:
		return scalar(p, ctor[time.Time](conv.Time))
	case conv.KindDuration:
		return scalar(p, ctor[time.Duration](conv.Duration))
	case conv.KindUUID:
		return scalar(p, ctor[uuid.UUID](conv.UUID))
	case conv.KindBytes:
		return scalar(p, ctor[[]byte](conv.Bytes))
	case conv.KindEnum:
		return scalar(p, constructor[int64](func(opts ...conv.Option) (conv.Converter[int64], error) {
			c, err := conv.Enum(p.Values, opts...)
			if err != nil {
				return nil, err
			}

			return c, nil
		}))
	default:
		return nil, conv.NewConfigError("type", "unsupported type %q", p.Type)
	}
}

type constructor[T any] func(opts ...conv.Option) (conv.Converter[T], error)

// ctor adapts a converter constructor to return the Converter interface.
func ctor[T any, C conv.Converter[T]](f func(opts ...conv.Option) (C, error)) constructor[T] {
	return func(opts ...conv.Option) (conv.Converter[T], error) {
		c, err := f(opts...)
		if err != nil {
			return nil, err
		}

		return c, nil
	}
}

func integer[T conv.Integer](hex bool) constructor[T] {
	return func(opts ...conv.Option) (conv.Converter[T], error) {
		c, err := conv.Int[T](opts...)
		if err == nil && hex {
			c, err = conv.Hex(c)
		}

		if err != nil {
			return nil, err
		}

		return c, nil
	}
}

func converterOptions(p *Property) ([]conv.Option, error) {
	opts := []conv.Option{conv.WithThrowing(p.Throwing)}

	if p.Format != "" {
		opts = append(opts, conv.WithFormat(p.Format))
	}

	if p.Layout != "" {
		opts = append(opts, conv.WithLayout(p.Layout))
	}

	if p.Location != "" {
		loc, err := time.LoadLocation(p.Location)
		if err != nil {
			return nil, conv.NewConfigError("location", "%v", err)
		}

		opts = append(opts, conv.WithLocation(loc))
	}

	if p.IgnoreCase {
		opts = append(opts, conv.WithIgnoreCase(true))
	}

	return opts, nil
}

// scalar builds the item converter, resolves the textual default through
// it and applies the decorators.
func scalar[T any](p *Property, newConverter constructor[T]) (mapping.Property, error) {
	opts, err := converterOptions(p)
	if err != nil {
		return nil, err
	}

	c, err := newConverter(opts...)
	if err != nil {
		return nil, err
	}

	if p.Default != nil {
		def, ok := c.TryParse(*p.Default)
		if !ok {
			return nil, conv.NewConfigError("default", "%q is not a valid %s", *p.Default, p.Type)
		}

		if c, err = newConverter(append(opts, conv.WithDefault(def))...); err != nil {
			return nil, err
		}
	}

	switch {
	case p.IsList():
		s, err := conv.Slice(c, p.Separator, p.CollectionNullable)
		if err != nil {
			return nil, err
		}

		return bind[[]T](p, s)
	case p.NullMarker:
		n, err := conv.NullMarker(c)
		if err != nil {
			return nil, err
		}

		return bind[any](p, n)
	case p.Nullable:
		n, err := conv.Nullable(c)
		if err != nil {
			return nil, err
		}

		return bind[*T](p, n)
	default:
		return bind(p, c)
	}
}

func bind[T any](p *Property, c conv.Converter[T]) (mapping.Property, error) {
	if p.ByIndex() {
		ip, err := mapping.NewIndexProperty[T](p.Name, *p.Index, c)
		if err != nil {
			return nil, err
		}

		return ip, nil
	}

	np, err := mapping.NewColumnNameProperty[T](p.Name, p.Columns, c)
	if err != nil {
		return nil, err
	}

	return np, nil
}

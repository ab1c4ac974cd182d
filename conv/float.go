package conv

import (
	"reflect"
	"strconv"
	"strings"
)

// Floating is the set of floating-point types.
type Floating interface {
	~float32 | ~float64
}

// FloatConverter converts floating-point numbers.
//
// The default format produces the shortest text that parses back to the
// same value. Fixed and exponent formats with a precision are lossy.
type FloatConverter[T Floating] struct {
	base[T]
	format numberFormat
	bits   int
}

// Float returns a converter for the floating-point type T. Supported formats
// are "", G[n], F[n], E[n] and e[n].
func Float[T Floating](opts ...Option) (*FloatConverter[T], error) {
	cfg := newConfig(opts)

	format, err := parseFloatFormat(cfg.format)
	if err != nil {
		return nil, err
	}

	b, err := newBase[T](cfg, 0)
	if err != nil {
		return nil, err
	}

	c := &FloatConverter[T]{
		base:   b,
		format: format,
		bits:   reflect.TypeFor[T]().Bits(),
	}

	if err := checkDefault[T](c); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *FloatConverter[T]) TryParse(s string) (T, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), c.bits)
	if err != nil {
		return 0, false
	}

	return T(f), true
}

func (c *FloatConverter[T]) Format(v T) string {
	return strconv.FormatFloat(float64(v), c.format.verb, c.format.prec, c.bits)
}

package conv

import (
	"reflect"
	"strconv"
	"strings"
)

// Integer is the set of signed and unsigned integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IntConverter converts integers in decimal or hexadecimal notation.
type IntConverter[T Integer] struct {
	base[T]
	format numberFormat
	signed bool
	bits   int
}

// Int returns a converter for the integer type T. Supported formats are
// "", G, D[n], X[n] and x[n].
func Int[T Integer](opts ...Option) (*IntConverter[T], error) {
	cfg := newConfig(opts)

	format, err := parseIntFormat(cfg.format)
	if err != nil {
		return nil, err
	}

	b, err := newBase[T](cfg, 0)
	if err != nil {
		return nil, err
	}

	var zero T
	c := &IntConverter[T]{
		base:   b,
		format: format,
		signed: ^zero < 0,
		bits:   reflect.TypeFor[T]().Bits(),
	}

	if err := checkDefault[T](c); err != nil {
		return nil, err
	}

	return c, nil
}

// Hex returns c formatted and parsed as hexadecimal. If c already uses a
// hexadecimal format it is returned unchanged.
func Hex[T Integer](c *IntConverter[T]) (*IntConverter[T], error) {
	if c == nil {
		return nil, NewConfigError("converter", "nil converter")
	}

	if c.format.hex() {
		return c, nil
	}

	h := *c
	h.format = numberFormat{verb: 'X', prec: -1}

	return &h, nil
}

// IsHex reports whether c uses a hexadecimal format.
func (c *IntConverter[T]) IsHex() bool { return c.format.hex() }

func (c *IntConverter[T]) TryParse(s string) (T, bool) {
	s = strings.TrimSpace(s)

	if c.format.hex() {
		// Hex input is the two's complement bit pattern.
		u, err := strconv.ParseUint(s, 16, c.bits)
		if err != nil {
			return 0, false
		}

		return T(u), true
	}

	if c.signed {
		n, err := strconv.ParseInt(s, 10, c.bits)
		if err != nil {
			return 0, false
		}

		return T(n), true
	}

	n, err := strconv.ParseUint(s, 10, c.bits)
	if err != nil {
		return 0, false
	}

	return T(n), true
}

func (c *IntConverter[T]) Format(v T) string {
	var s string

	switch {
	case c.format.hex():
		mask := ^uint64(0) >> (64 - c.bits)

		s = strconv.FormatUint(uint64(v)&mask, 16)
		if c.format.verb == 'X' {
			s = strings.ToUpper(s)
		}
	case c.signed:
		s = strconv.FormatInt(int64(v), 10)
	default:
		s = strconv.FormatUint(uint64(v), 10)
	}

	if c.format.prec > 0 {
		return pad(s, c.format.prec)
	}

	return s
}

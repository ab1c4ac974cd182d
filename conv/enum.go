package conv

import (
	"maps"
	"slices"
	"strings"
)

// EnumConverter converts named integer constants. Unknown names are rejected;
// numeric text is accepted for any value of T.
type EnumConverter[T Integer] struct {
	base[T]
	byName     map[string]T
	names      map[T]string
	num        *IntConverter[T]
	ignoreCase bool
	numeric    bool
}

// Enum returns a converter for the named values of T. With format D values
// are always written as numbers; the default format writes names.
func Enum[T Integer](values map[string]T, opts ...Option) (*EnumConverter[T], error) {
	if len(values) == 0 {
		return nil, NewConfigError("values", "enum needs at least one named value")
	}

	cfg := newConfig(opts)

	var numeric bool

	switch cfg.format {
	case "", "G", "g":
	case "D", "d":
		numeric = true
	default:
		return nil, NewConfigError("format", "%q is not an enum format", cfg.format)
	}

	b, err := newBase[T](cfg, 0)
	if err != nil {
		return nil, err
	}

	num, err := Int[T]()
	if err != nil {
		return nil, err
	}

	c := &EnumConverter[T]{
		base:       b,
		byName:     make(map[string]T, len(values)),
		names:      make(map[T]string, len(values)),
		num:        num,
		ignoreCase: cfg.ignoreCase,
		numeric:    numeric,
	}

	// Sorted so that the smallest name wins when several share a value.
	for _, name := range slices.Sorted(maps.Keys(values)) {
		if strings.TrimSpace(name) == "" {
			return nil, NewConfigError("values", "enum names must not be blank")
		}

		key := c.key(name)
		if _, dup := c.byName[key]; dup {
			return nil, NewConfigError("values", "enum name %q is ambiguous", name)
		}

		v := values[name]
		c.byName[key] = v

		if _, ok := c.names[v]; !ok {
			c.names[v] = name
		}
	}

	if err := checkDefault[T](c); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *EnumConverter[T]) key(name string) string {
	if c.ignoreCase {
		return strings.ToLower(name)
	}

	return name
}

func (c *EnumConverter[T]) TryParse(s string) (T, bool) {
	s = strings.TrimSpace(s)
	if v, ok := c.byName[c.key(s)]; ok {
		return v, true
	}

	return c.num.TryParse(s)
}

func (c *EnumConverter[T]) Format(v T) string {
	if !c.numeric {
		if name, ok := c.names[v]; ok {
			return name
		}
	}

	return c.num.Format(v)
}

// CustomConverter adapts a parse/format function pair.
type CustomConverter[T any] struct {
	base[T]
	parse  func(string) (T, bool)
	format func(T) string
}

// Custom returns a converter built from parse and format. parse is only
// called with non-blank input.
func Custom[T any](parse func(string) (T, bool), format func(T) string, opts ...Option) (*CustomConverter[T], error) {
	if parse == nil || format == nil {
		return nil, NewConfigError("converter", "parse and format functions are required")
	}

	var zero T

	b, err := newBase[T](newConfig(opts), zero)
	if err != nil {
		return nil, err
	}

	c := &CustomConverter[T]{base: b, parse: parse, format: format}
	if err := checkDefault[T](c); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *CustomConverter[T]) TryParse(s string) (T, bool) { return c.parse(s) }

func (c *CustomConverter[T]) Format(v T) string { return c.format(v) }

package conv

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DecimalConverter converts arbitrary-precision decimals.
type DecimalConverter struct {
	base[decimal.Decimal]
	places int32 // -1 keeps the exact representation
}

// Decimal returns a converter for decimal.Decimal fields. Supported formats
// are "" and G (exact) and F[n] (n fixed decimals, default 2, lossy).
func Decimal(opts ...Option) (*DecimalConverter, error) {
	cfg := newConfig(opts)

	verb, prec, err := parseFormatSpec(cfg.format)
	if err != nil {
		return nil, err
	}

	places := int32(-1)

	switch verb {
	case 0, 'G', 'g':
	case 'F', 'f':
		places = 2
		if prec >= 0 {
			places = int32(prec)
		}
	case 'R', 'r':
		return nil, NewConfigError("format", "%q: round-trip format is not supported, the default format round-trips", cfg.format)
	default:
		return nil, NewConfigError("format", "%q is not a decimal format", cfg.format)
	}

	b, err := newBase[decimal.Decimal](cfg, decimal.Zero)
	if err != nil {
		return nil, err
	}

	return &DecimalConverter{base: b, places: places}, nil
}

func (c *DecimalConverter) TryParse(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, false
	}

	return d, true
}

func (c *DecimalConverter) Format(v decimal.Decimal) string {
	if c.places >= 0 {
		return v.StringFixed(c.places)
	}

	return v.String()
}

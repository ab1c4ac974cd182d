package conv

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// UUIDConverter converts uuid.UUID values.
//
// Formats: D (default, 8-4-4-4-12), N (32 digits), B (braces) and
// P (parentheses). Parsing accepts all of them.
type UUIDConverter struct {
	base[uuid.UUID]
	verb byte
}

// UUID returns a converter for uuid.UUID fields.
func UUID(opts ...Option) (*UUIDConverter, error) {
	cfg := newConfig(opts)

	var verb byte

	switch cfg.format {
	case "", "D", "d":
		verb = 'D'
	case "N", "n":
		verb = 'N'
	case "B", "b":
		verb = 'B'
	case "P", "p":
		verb = 'P'
	default:
		return nil, NewConfigError("format", "%q is not a UUID format", cfg.format)
	}

	b, err := newBase[uuid.UUID](cfg, uuid.Nil)
	if err != nil {
		return nil, err
	}

	return &UUIDConverter{base: b, verb: verb}, nil
}

func (c *UUIDConverter) TryParse(s string) (uuid.UUID, bool) {
	s = strings.TrimSpace(s)
	if len(s) > 2 && s[0] == '(' && s[len(s)-1] == ')' {
		s = s[1 : len(s)-1]
	}

	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}

	return u, true
}

func (c *UUIDConverter) Format(v uuid.UUID) string {
	switch c.verb {
	case 'N':
		return hex.EncodeToString(v[:])
	case 'B':
		return "{" + v.String() + "}"
	case 'P':
		return "(" + v.String() + ")"
	default:
		return v.String()
	}
}

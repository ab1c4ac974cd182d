package conv

import (
	"encoding/base64"
	"strings"
)

// BytesConverter converts byte slices to and from standard base64.
type BytesConverter struct {
	base[[]byte]
}

// Bytes returns a base64 converter. Its default value is nil.
func Bytes(opts ...Option) (*BytesConverter, error) {
	b, err := newBase[[]byte](newConfig(opts), nil)
	if err != nil {
		return nil, err
	}

	return &BytesConverter{base: b}, nil
}

func (c *BytesConverter) TryParse(s string) ([]byte, bool) {
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, false
	}

	return b, true
}

func (c *BytesConverter) Format(v []byte) string {
	return base64.StdEncoding.EncodeToString(v)
}

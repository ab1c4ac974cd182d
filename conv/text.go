package conv

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// StringConverter passes field text through unchanged. An empty field yields
// the default value; whitespace is kept.
type StringConverter struct {
	base[string]
}

// String returns a converter for string fields.
func String(opts ...Option) (*StringConverter, error) {
	b, err := newBase[string](newConfig(opts), "")
	if err != nil {
		return nil, err
	}

	return &StringConverter{base: b}, nil
}

func (c *StringConverter) HandlesBlank() bool { return true }

func (c *StringConverter) TryParse(s string) (string, bool) {
	if s == "" {
		return c.def, true
	}

	return s, true
}

func (c *StringConverter) Format(v string) string { return v }

// BoolConverter accepts true/false in any letter case, plus the forms
// understood by strconv.ParseBool.
type BoolConverter struct {
	base[bool]
}

// Bool returns a converter for bool fields.
func Bool(opts ...Option) (*BoolConverter, error) {
	b, err := newBase[bool](newConfig(opts), false)
	if err != nil {
		return nil, err
	}

	return &BoolConverter{base: b}, nil
}

func (c *BoolConverter) TryParse(s string) (bool, bool) {
	s = strings.TrimSpace(s)

	switch {
	case strings.EqualFold(s, "true"):
		return true, true
	case strings.EqualFold(s, "false"):
		return false, true
	}

	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, false
	}

	return v, true
}

func (c *BoolConverter) Format(v bool) string { return strconv.FormatBool(v) }

// RuneConverter converts single-character fields. A field holding one
// whitespace character is a valid rune; only an empty field is blank.
type RuneConverter struct {
	base[rune]
}

// Rune returns a converter for single-character fields.
func Rune(opts ...Option) (*RuneConverter, error) {
	b, err := newBase[rune](newConfig(opts), 0)
	if err != nil {
		return nil, err
	}

	c := &RuneConverter{base: b}
	if err := checkDefault[rune](c); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *RuneConverter) HandlesBlank() bool { return true }

func (c *RuneConverter) TryParse(s string) (rune, bool) {
	if s == "" {
		return c.def, true
	}

	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, false
	}

	return r, true
}

func (c *RuneConverter) Format(v rune) string {
	if v == 0 {
		return ""
	}

	return string(v)
}

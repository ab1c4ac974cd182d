package schema

import (
	"strings"

	"csv-mapper/conv"
)

// File represents the root of a YAML mapping definition.
type File struct {
	// Version of the definition format.
	Version string `yaml:"version,omitempty"`

	// Name identifies the mapping. Generated views are named after it.
	Name string `yaml:"name"`

	// Options describe the CSV text the mapping reads.
	Options Options `yaml:"options,omitempty"`

	// Properties in declaration order.
	Properties []Property `yaml:"properties"`
}

// Options configure the reader and writer used with a mapping.
type Options struct {
	// HasHeader defaults to true.
	HasHeader *bool `yaml:"has_header,omitempty"`

	// IgnoreCase makes column name lookups case-insensitive.
	IgnoreCase bool `yaml:"ignore_case,omitempty"`

	// Separator is a single character; defaults to ",".
	Separator string `yaml:"separator,omitempty"`
}

// Header reports whether the first row holds column names.
func (o Options) Header() bool {
	return o.HasHeader == nil || *o.HasHeader
}

// Property declares one mapped field. Exactly one of Index and Columns
// must be set.
type Property struct {
	Name string `yaml:"name"`

	// Type is a converter name such as "int32", "decimal" or "uuid".
	Type string `yaml:"type"`

	// Index binds the property to a fixed column.
	Index *int `yaml:"index,omitempty"`

	// Columns binds the property to the first column matching one of the
	// aliases; '*' and '?' are wildcards.
	Columns StringOrArray `yaml:"columns,omitempty"`

	// Nullable maps blank fields to a nil pointer.
	Nullable bool `yaml:"nullable,omitempty"`

	// NullMarker maps blank fields to conv.DBNull.
	NullMarker bool `yaml:"null_marker,omitempty"`

	// Hex reads and writes integers in hexadecimal.
	Hex bool `yaml:"hex,omitempty"`

	// Format is a numeric, UUID or enum format string.
	Format string `yaml:"format,omitempty"`

	// Layout is a time layout in Go reference-time notation.
	Layout string `yaml:"layout,omitempty"`

	// Location is an IANA zone name for times without an offset.
	Location string `yaml:"location,omitempty"`

	// Throwing reports unparsable fields as errors instead of returning the
	// default value.
	Throwing bool `yaml:"throwing,omitempty"`

	// Default is the text of the default value, parsed by the property's
	// converter.
	Default *string `yaml:"default,omitempty"`

	// Separator turns the property into a list whose items are split on it.
	Separator string `yaml:"separator,omitempty"`

	// CollectionNullable makes a blank list field read as nil rather than
	// an empty list.
	CollectionNullable bool `yaml:"collection_nullable,omitempty"`

	// IgnoreCase makes bool and enum names case-insensitive.
	IgnoreCase bool `yaml:"ignore_case,omitempty"`

	// Values names the members of an enum.
	Values map[string]int64 `yaml:"values,omitempty"`
}

// Kind returns the converter kind named by Type.
func (p *Property) Kind() (conv.Kind, bool) {
	return conv.KindFromName(p.Type)
}

// ByIndex reports whether the property is bound to a fixed column.
func (p *Property) ByIndex() bool {
	return p.Index != nil
}

// IsList reports whether the property holds a list of values.
func (p *Property) IsList() bool {
	return p.Separator != ""
}

// GoType returns the Go type of the property's values, qualified with the
// package alias for non-builtin types. It returns "" for unknown types.
func GoType(p *Property) string {
	k, ok := p.Kind()
	if !ok {
		return ""
	}

	t := k.GoType()

	switch {
	case p.IsList():
		return "[]" + t
	case p.NullMarker:
		return "any"
	case p.Nullable:
		return "*" + t
	default:
		return t
	}
}

// ImportPath returns the package GoType refers to, or "".
func ImportPath(p *Property) string {
	k, ok := p.Kind()
	if !ok || (p.NullMarker && !p.IsList()) {
		return ""
	}

	return k.ImportPath()
}

// StringOrArray is a list of strings that may be written in YAML as a single
// scalar.
type StringOrArray []string

// IsEmpty reports whether no alias is given.
func (s StringOrArray) IsEmpty() bool { return len(s) == 0 }

// String joins the elements for messages.
func (s StringOrArray) String() string {
	return strings.Join(s, ", ")
}

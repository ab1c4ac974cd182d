package schema

import (
	"fmt"
	"slices"
	"strings"

	"csv-mapper/conv"
	"csv-mapper/internal/diagnostic"
	"csv-mapper/internal/match"
	"csv-mapper/mapping"
)

// Validate checks a mapping definition without reading any CSV. Structural
// problems are reported first; properties that pass them are then built
// so converter option errors (formats, defaults) surface too.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("schema_is_nil", "schema is nil", "", "")
		return res
	}

	scope := f.Name

	if f.Version != "" && f.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported version %q (expected %q)", f.Version, CurrentVersion), scope, "")
	}

	switch {
	case f.Name == "":
		res.AddError("missing_name", "schema must have a name", scope, "")
	case !mapping.ValidName(f.Name):
		res.AddError("invalid_name", fmt.Sprintf("schema name %q is not an identifier", f.Name), scope, "")
	}

	validateOptions(res, scope, &f.Options)

	if len(f.Properties) == 0 {
		res.AddWarning("no_properties", "schema declares no properties", scope, "")
	}

	seen := map[string]struct{}{}

	for i := range f.Properties {
		p := &f.Properties[i]

		if _, ok := seen[p.Name]; ok && p.Name != "" {
			res.AddError("duplicate_property", fmt.Sprintf("duplicate property %q", p.Name), scope, p.Name)
			continue
		}

		seen[p.Name] = struct{}{}

		if validateProperty(res, scope, p) {
			if _, err := BuildProperty(p); err != nil {
				res.AddError("invalid_property", err.Error(), scope, p.Name)
			}
		}
	}

	return res
}

func validateOptions(res *diagnostic.Diagnostics, scope string, o *Options) {
	if o.Separator == "" {
		return
	}

	if len(o.Separator) != 1 {
		res.AddError("invalid_separator", fmt.Sprintf("separator %q must be a single byte", o.Separator), scope, "")
		return
	}

	if strings.ContainsAny(o.Separator, "\"\r\n") {
		res.AddError("invalid_separator", fmt.Sprintf("separator %q is not allowed", o.Separator), scope, "")
	}
}

// validateProperty reports structural problems and returns whether p is
// sound enough to build.
func validateProperty(res *diagnostic.Diagnostics, scope string, p *Property) bool {
	ok := true

	fail := func(code, msg string, suggestions ...string) {
		res.AddError(code, msg, scope, p.Name, suggestions...)
		ok = false
	}

	if !mapping.ValidName(p.Name) {
		fail("invalid_property_name", fmt.Sprintf("property name %q is not an identifier", p.Name))
	}

	k, known := p.Kind()
	if !known {
		var suggestions []string
		if s := match.Suggest(strings.ToLower(p.Type), conv.KindNames()); s != "" {
			suggestions = append(suggestions, s)
		}

		fail("unknown_type", fmt.Sprintf("unknown type %q", p.Type), suggestions...)
	}

	validateBinding(p, fail)

	if p.Nullable && p.NullMarker {
		fail("conflicting_null_handling", "nullable and null_marker are mutually exclusive")
	}

	if p.IsList() && p.Default != nil {
		fail("default_on_list", "list properties cannot declare a default")
	}

	if p.CollectionNullable && !p.IsList() {
		res.AddWarning("collection_nullable_ignored", "collection_nullable has no effect without separator", scope, p.Name)
	}

	if known {
		validateKindOptions(res, scope, p, k, fail)
	}

	return ok
}

func validateBinding(p *Property, fail func(code, msg string, suggestions ...string)) {
	switch {
	case p.Index != nil && !p.Columns.IsEmpty():
		fail("ambiguous_binding", "index and columns are mutually exclusive")
	case p.Index != nil:
		if *p.Index < 0 {
			fail("negative_index", fmt.Sprintf("index %d is negative", *p.Index))
		}
	case p.Columns.IsEmpty():
		fail("missing_binding", "property must declare index or columns")
	case slices.Contains(p.Columns, ""):
		fail("empty_column_alias", "column aliases must not be empty")
	}
}

func validateKindOptions(res *diagnostic.Diagnostics, scope string, p *Property, k conv.Kind, fail func(code, msg string, suggestions ...string)) {
	if p.Hex && !k.IsInteger() {
		fail("hex_on_non_integer", fmt.Sprintf("hex requires an integer type, not %s", p.Type))
	}

	if p.Hex && p.Format != "" {
		res.AddWarning("hex_overrides_format", fmt.Sprintf("hex overrides format %q", p.Format), scope, p.Name)
	}

	if p.Format != "" && !k.IsNumber() && k != conv.KindUUID && k != conv.KindEnum {
		fail("format_not_supported", fmt.Sprintf("type %s does not take a format", p.Type))
	}

	if (p.Layout != "" || p.Location != "") && k != conv.KindTime {
		fail("layout_not_supported", fmt.Sprintf("layout and location apply to time, not %s", p.Type))
	}

	if p.IgnoreCase && k != conv.KindBool && k != conv.KindEnum {
		res.AddWarning("ignore_case_ignored", fmt.Sprintf("ignore_case has no effect on %s", p.Type), scope, p.Name)
	}

	switch {
	case k == conv.KindEnum && len(p.Values) == 0:
		fail("missing_enum_values", "enum requires values")
	case k != conv.KindEnum && len(p.Values) > 0:
		res.AddWarning("values_ignored", fmt.Sprintf("values have no effect on %s", p.Type), scope, p.Name)
	}
}

// Package record defines the in-memory CSV row consumed by the mapping layer.
//
// A Record holds the field texts of one row and a reference to a Layout, the
// immutable column-name table shared by every row of one source. The
// Layout's identifier is the record's identity token: properties cache
// column resolutions per identifier, so records that share a Layout share
// resolutions, and replacing the Layout invalidates them.
package record

import (
	"slices"
	"strings"
	"sync/atomic"
)

var lastID atomic.Uint64

func nextID() uint64 { return lastID.Add(1) }

// Layout is an immutable column-name table.
type Layout struct {
	names      []string
	ignoreCase bool
	id         uint64
}

// NewLayout returns a layout for names. A nil or empty names slice describes
// headerless data. Every call returns a layout with a new identifier.
func NewLayout(names []string, ignoreCase bool) *Layout {
	var own []string
	if len(names) > 0 {
		own = slices.Clone(names)
	}

	return &Layout{names: own, ignoreCase: ignoreCase, id: nextID()}
}

// ID returns the process-unique identifier of l.
func (l *Layout) ID() uint64 { return l.id }

// Names returns a copy of the column names, or nil for headerless data.
func (l *Layout) Names() []string { return slices.Clone(l.names) }

// Len returns the number of named columns.
func (l *Layout) Len() int { return len(l.names) }

// Name returns the i-th column name.
func (l *Layout) Name(i int) string { return l.names[i] }

func (l *Layout) HasNames() bool   { return len(l.names) > 0 }
func (l *Layout) IgnoreCase() bool { return l.ignoreCase }

// EqualNames compares two column names with the layout's case policy.
func (l *Layout) EqualNames(a, b string) bool {
	if l.ignoreCase {
		return strings.EqualFold(a, b)
	}

	return a == b
}

// IndexOf returns the lowest index whose name equals name, or -1.
func (l *Layout) IndexOf(name string) int {
	for i, n := range l.names {
		if l.EqualNames(n, name) {
			return i
		}
	}

	return -1
}

// Record is one mutable CSV row.
//
// A Record is not safe for concurrent use.
type Record struct {
	layout *Layout
	values []string
}

// New returns a record holding values. A nil layout gives the record a
// fresh headerless layout. The values slice is owned by the record.
func New(layout *Layout, values []string) *Record {
	if layout == nil {
		layout = NewLayout(nil, false)
	}

	return &Record{layout: layout, values: values}
}

// Blank returns a record with n empty fields.
func Blank(layout *Layout, n int) *Record {
	return New(layout, make([]string, n))
}

// Identifier returns the identity token of the record's column layout.
func (r *Record) Identifier() uint64 { return r.layout.id }

func (r *Record) Layout() *Layout { return r.layout }

// Count returns the number of fields.
func (r *Record) Count() int { return len(r.values) }

// Value returns the i-th field. It panics if i is out of range.
func (r *Record) Value(i int) string { return r.values[i] }

// SetValue replaces the i-th field. It panics if i is out of range.
func (r *Record) SetValue(i int, s string) { r.values[i] = s }

// Values returns the fields. The slice is shared with the record and is
// overwritten by Reset.
func (r *Record) Values() []string { return r.values }

// ColumnNames returns a copy of the column names, or nil for headerless data.
func (r *Record) ColumnNames() []string { return r.layout.Names() }

func (r *Record) HasColumnNames() bool { return r.layout.HasNames() }
func (r *Record) IgnoreCase() bool     { return r.layout.ignoreCase }

// EqualNames compares two column names with the record's case policy.
func (r *Record) EqualNames(a, b string) bool { return r.layout.EqualNames(a, b) }

// IndexOf returns the lowest column index named name, or -1.
func (r *Record) IndexOf(name string) int { return r.layout.IndexOf(name) }

// Reset replaces the fields in place, reusing the backing array. The
// identity token is unchanged.
func (r *Record) Reset(values []string) {
	r.values = append(r.values[:0], values...)
}

// Clear empties every field.
func (r *Record) Clear() {
	clear(r.values)
}

// Clone returns a copy of r that shares its layout.
func (r *Record) Clone() *Record {
	return &Record{layout: r.layout, values: slices.Clone(r.values)}
}

// SetLayout replaces the column layout, changing the identity token.
func (r *Record) SetLayout(layout *Layout) {
	if layout == nil {
		layout = NewLayout(nil, r.layout.ignoreCase)
	}

	r.layout = layout
}

// SetColumnNames replaces the column names, keeping the case policy.
func (r *Record) SetColumnNames(names []string) {
	r.SetLayout(NewLayout(names, r.layout.ignoreCase))
}

// String joins the fields with commas without quoting. It is meant for
// diagnostics only.
func (r *Record) String() string {
	return strings.Join(r.values, ",")
}

package mapping

import (
	"iter"
	"slices"
	"strings"

	"csv-mapper/conv"
	"csv-mapper/record"
)

// Mapping is an ordered collection of uniquely named properties bound to
// one record at a time.
//
// A Mapping is built once per CSV shape and rebound to every row with
// SetRecord. It is not safe for concurrent use; Clone gives each goroutine
// an independent copy that shares only the immutable converters.
type Mapping struct {
	props []Property
	index map[string]int
	rec   *record.Record
}

// New returns a mapping holding props in order.
func New(props ...Property) (*Mapping, error) {
	m := &Mapping{index: make(map[string]int, len(props))}

	for _, p := range props {
		if err := m.Add(p); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// SetRecord binds rec to the mapping and every property, including the
// nested mappings of multi-column properties. Rebinding the record that is
// already bound does nothing.
func (m *Mapping) SetRecord(rec *record.Record) {
	if m.rec == rec {
		return
	}

	// Set before propagating so a nested mapping that leads back here stops.
	m.rec = rec

	for _, p := range m.props {
		p.bind(rec)
	}
}

// Record returns the bound record, or nil.
func (m *Mapping) Record() *record.Record { return m.rec }

// Len returns the number of properties.
func (m *Mapping) Len() int { return len(m.props) }

// Names returns the property names in order.
func (m *Mapping) Names() []string {
	names := make([]string, len(m.props))
	for i, p := range m.props {
		names[i] = p.Name()
	}

	return names
}

// Contains reports whether a property named name exists.
func (m *Mapping) Contains(name string) bool {
	_, ok := m.index[name]
	return ok
}

// IndexOf returns the position of the property named name, or -1.
func (m *Mapping) IndexOf(name string) int {
	if i, ok := m.index[name]; ok {
		return i
	}

	return -1
}

// Property returns the property named name.
func (m *Mapping) Property(name string) (Property, error) {
	i, ok := m.index[name]
	if !ok {
		return nil, newLookupError(name, m.Names())
	}

	return m.props[i], nil
}

// PropertyAt returns the i-th property.
func (m *Mapping) PropertyAt(i int) (Property, error) {
	if i < 0 || i >= len(m.props) {
		return nil, rangeError(i, len(m.props))
	}

	return m.props[i], nil
}

// Properties iterates over the properties in order.
func (m *Mapping) Properties() iter.Seq[Property] {
	return slices.Values(m.props)
}

// Get reads the property named name.
func (m *Mapping) Get(name string) (any, error) {
	if m.rec == nil {
		return nil, ErrNoRecord
	}

	p, err := m.Property(name)
	if err != nil {
		return nil, err
	}

	return p.Value()
}

// GetAt reads the i-th property.
func (m *Mapping) GetAt(i int) (any, error) {
	if m.rec == nil {
		return nil, ErrNoRecord
	}

	p, err := m.PropertyAt(i)
	if err != nil {
		return nil, err
	}

	return p.Value()
}

// Set writes v to the property named name.
func (m *Mapping) Set(name string, v any) error {
	if m.rec == nil {
		return ErrNoRecord
	}

	p, err := m.Property(name)
	if err != nil {
		return err
	}

	return p.SetValue(v)
}

// SetAt writes v to the i-th property.
func (m *Mapping) SetAt(i int, v any) error {
	if m.rec == nil {
		return ErrNoRecord
	}

	p, err := m.PropertyAt(i)
	if err != nil {
		return err
	}

	return p.SetValue(v)
}

// Add appends p. Its name must not be in use.
func (m *Mapping) Add(p Property) error {
	return m.Insert(len(m.props), p)
}

// Insert places p at position i, shifting later properties.
func (m *Mapping) Insert(i int, p Property) error {
	if i < 0 || i > len(m.props) {
		return rangeError(i, len(m.props)+1)
	}

	if err := m.checkNew(p, -1); err != nil {
		return err
	}

	m.props = slices.Insert(m.props, i, p)
	m.reindex()
	p.bind(m.rec)

	return nil
}

// Replace swaps the property named name for p. p may keep the old name or
// take a name not used by any other property.
func (m *Mapping) Replace(name string, p Property) error {
	i, ok := m.index[name]
	if !ok {
		return newLookupError(name, m.Names())
	}

	return m.ReplaceAt(i, p)
}

// ReplaceAt swaps the i-th property for p.
func (m *Mapping) ReplaceAt(i int, p Property) error {
	if i < 0 || i >= len(m.props) {
		return rangeError(i, len(m.props))
	}

	if err := m.checkNew(p, i); err != nil {
		return err
	}

	m.props[i] = p
	m.reindex()
	p.bind(m.rec)

	return nil
}

// Remove deletes the property named name and reports whether it existed.
func (m *Mapping) Remove(name string) bool {
	i, ok := m.index[name]
	if !ok {
		return false
	}

	_ = m.RemoveAt(i)

	return true
}

// RemoveAt deletes the i-th property.
func (m *Mapping) RemoveAt(i int) error {
	if i < 0 || i >= len(m.props) {
		return rangeError(i, len(m.props))
	}

	m.props = slices.Delete(m.props, i, i+1)
	m.reindex()

	return nil
}

// checkNew validates p for position at; at is -1 for an insertion.
func (m *Mapping) checkNew(p Property, at int) error {
	if p == nil || conv.IsNil(p) {
		return conv.NewConfigError("property", "nil property")
	}

	if i, ok := m.index[p.Name()]; ok && i != at {
		return conv.NewConfigError("property name", "duplicate property name %q", p.Name())
	}

	return nil
}

func (m *Mapping) reindex() {
	if m.index == nil {
		m.index = make(map[string]int, len(m.props))
	}

	clear(m.index)

	for i, p := range m.props {
		m.index[p.Name()] = i
	}
}

// Entry is a property name and the value read from the bound record.
type Entry struct {
	Name  string
	Value any
}

// Entries iterates over the (name, value) pairs in declaration order. A
// property that fails to read yields its error with a zero Value; iteration
// continues unless the caller stops it. Without a bound record the sequence
// yields a single ErrNoRecord.
func (m *Mapping) Entries() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		if m.rec == nil {
			yield(Entry{}, ErrNoRecord)
			return
		}

		for _, p := range m.props {
			v, err := p.Value()
			if !yield(Entry{Name: p.Name(), Value: v}, err) {
				return
			}
		}
	}
}

// AccessedColumnIndexes returns the sorted, distinct column indexes the
// properties read and write. Name-bound properties contribute only when
// they resolve against the bound record.
func (m *Mapping) AccessedColumnIndexes() []int {
	seen := make(map[uint64]bool)

	var out []int
	for _, p := range m.props {
		out = p.collect(seen, out)
	}

	slices.Sort(out)

	return slices.Compact(out)
}

// HasData reports whether any column the mapping accesses holds a
// non-blank field in the bound record.
func (m *Mapping) HasData() bool {
	if m.rec == nil {
		return false
	}

	for _, idx := range m.AccessedColumnIndexes() {
		if idx < m.rec.Count() && strings.TrimSpace(m.rec.Value(idx)) != "" {
			return true
		}
	}

	return false
}

// Clone returns an unbound deep copy of m. Converters are shared; property
// state is not. Nested mappings are cloned once even when reachable through
// several multi-column properties or from themselves.
func (m *Mapping) Clone() *Mapping {
	return m.cloneWith(make(map[*Mapping]*Mapping))
}

func (m *Mapping) cloneWith(memo map[*Mapping]*Mapping) *Mapping {
	if c, ok := memo[m]; ok {
		return c
	}

	c := &Mapping{
		props: make([]Property, 0, len(m.props)),
		index: make(map[string]int, len(m.props)),
	}
	memo[m] = c

	for _, p := range m.props {
		c.props = append(c.props, p.clone(memo))
	}

	c.reindex()

	return c
}

package mapping

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"csv-mapper/conv"
	"csv-mapper/record"
)

// alias is one accepted column name. Wildcard aliases carry two anchored
// patterns so the record's case policy can pick one without recompiling.
type alias struct {
	text  string
	exact *regexp.Regexp
	fold  *regexp.Regexp
}

func (a alias) wildcard() bool { return a.exact != nil }

func compileAlias(text string) (alias, error) {
	if text == "" {
		return alias{}, conv.NewConfigError("alias", "column alias must not be empty")
	}

	if !strings.ContainsAny(text, "*?") {
		return alias{text: text}, nil
	}

	var sb strings.Builder

	sb.WriteString(`^`)

	for _, r := range text {
		switch r {
		case '*':
			sb.WriteString(`.*?`)
		case '?':
			sb.WriteString(`.`)
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}

	sb.WriteString(`$`)

	exact, err := regexp.Compile(`(?s)` + sb.String())
	if err != nil {
		return alias{}, conv.NewConfigError("alias", "%q: %v", text, err)
	}

	fold, err := regexp.Compile(`(?is)` + sb.String())
	if err != nil {
		return alias{}, conv.NewConfigError("alias", "%q: %v", text, err)
	}

	return alias{text: text, exact: exact, fold: fold}, nil
}

// ColumnNameProperty is bound to a column by name. Aliases are tried in
// declared order and the first one matching any column wins; a wildcard
// alias ('*' any run, '?' one character) picks the lowest matching index.
// The property is absent when no alias matches or the record has no column
// names.
//
// The resolved index is cached until the bound record's identifier
// changes.
type ColumnNameProperty[T any] struct {
	propBase
	column[T]
	aliases []alias

	cacheID  uint64
	cacheIdx int
	cached   bool
}

// NewColumnNameProperty returns a property named name reading the first
// column matching one of aliases.
func NewColumnNameProperty[T any](name string, aliases []string, c conv.Converter[T]) (*ColumnNameProperty[T], error) {
	base, err := newPropBase(name)
	if err != nil {
		return nil, err
	}

	if len(aliases) == 0 {
		return nil, conv.NewConfigError("alias", "%s needs at least one column alias", name)
	}

	col, err := newColumn(c)
	if err != nil {
		return nil, err
	}

	p := &ColumnNameProperty[T]{propBase: base, column: col}

	for _, text := range aliases {
		a, err := compileAlias(text)
		if err != nil {
			return nil, err
		}

		p.aliases = append(p.aliases, a)
	}

	return p, nil
}

// Aliases returns the declared column aliases.
func (p *ColumnNameProperty[T]) Aliases() []string {
	out := make([]string, len(p.aliases))
	for i, a := range p.aliases {
		out[i] = a.text
	}

	return out
}

// ColumnIndex resolves the property against the bound record. It returns
// -1 when the property is absent or no record is bound.
func (p *ColumnNameProperty[T]) ColumnIndex() int {
	if p.rec == nil {
		return -1
	}

	return p.resolve()
}

func (p *ColumnNameProperty[T]) resolve() int {
	id := p.rec.Identifier()
	if p.cached && p.cacheID == id {
		return p.cacheIdx
	}

	p.cacheIdx = p.lookup(p.rec.Layout())
	p.cacheID = id
	p.cached = true

	return p.cacheIdx
}

func (p *ColumnNameProperty[T]) lookup(layout *record.Layout) int {
	if !layout.HasNames() {
		return -1
	}

	for _, a := range p.aliases {
		idx := -1

		if a.wildcard() {
			re := a.exact
			if layout.IgnoreCase() {
				re = a.fold
			}

			for i := range layout.Len() {
				if re.MatchString(layout.Name(i)) {
					idx = i
					break
				}
			}
		} else {
			idx = layout.IndexOf(a.text)
		}

		if idx >= 0 {
			slog.Debug("mapping: alias resolved", "property", p.name, "alias", a.text, "column", idx)
			return idx
		}
	}

	slog.Debug("mapping: no alias matched", "property", p.name, "aliases", p.Aliases())

	return -1
}

func (p *ColumnNameProperty[T]) Get() (T, error) {
	if p.rec == nil {
		var zero T
		return zero, ErrNoRecord
	}

	v, err := p.read(p.rec, p.resolve())
	if err != nil {
		return v, p.wrap(err)
	}

	return v, nil
}

func (p *ColumnNameProperty[T]) Set(v T) error {
	if p.rec == nil {
		return ErrNoRecord
	}

	if err := p.write(p.rec, p.resolve(), v); err != nil {
		return p.wrap(err)
	}

	return nil
}

func (p *ColumnNameProperty[T]) Value() (any, error) { return boxed(p.Get()) }

func (p *ColumnNameProperty[T]) SetValue(v any) error {
	if p.rec == nil {
		return ErrNoRecord
	}

	t, err := p.assert(v)
	if err != nil {
		return p.wrap(err)
	}

	return p.Set(t)
}

func (p *ColumnNameProperty[T]) collect(_ map[uint64]bool, out []int) []int {
	if idx := p.ColumnIndex(); idx >= 0 {
		out = append(out, idx)
	}

	return out
}

func (p *ColumnNameProperty[T]) clone(map[*Mapping]*Mapping) Property {
	c := *p
	c.propBase = p.fresh()
	c.aliases = slices.Clone(p.aliases)
	c.cached = false

	return &c
}

package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csv-mapper/conv"
	"csv-mapper/record"
)

func named(ignoreCase bool, names []string, values ...string) *record.Record {
	if values == nil {
		values = make([]string, len(names))
	}

	return record.New(record.NewLayout(names, ignoreCase), values)
}

func TestColumnNameResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		aliases    []string
		columns    []string
		ignoreCase bool
		want       int
	}{
		{
			name:    "literal",
			aliases: []string{"B"},
			columns: []string{"A", "B", "C"},
			want:    1,
		},
		{
			name:    "wildcard lowest index wins",
			aliases: []string{"Foo*"},
			columns: []string{"Foo", "FooBar"},
			want:    0,
		},
		{
			name:    "wildcard skips non matching prefix",
			aliases: []string{"Foo*"},
			columns: []string{"XFoo", "FooBar", "Foo"},
			want:    1,
		},
		{
			name:    "alias order beats column order",
			aliases: []string{"Exact", "Wild*"},
			columns: []string{"WildOne", "Exact"},
			want:    1,
		},
		{
			name:    "later alias used when earlier misses",
			aliases: []string{"Missing", "Wild*"},
			columns: []string{"WildOne", "Exact"},
			want:    0,
		},
		{
			name:    "question mark is one character",
			aliases: []string{"?d"},
			columns: []string{"xid", "id", "Id"},
			want:    1,
		},
		{
			name:    "regex metacharacters are literal",
			aliases: []string{"a.b*"},
			columns: []string{"axb1", "a.b2"},
			want:    1,
		},
		{
			name:    "literal alias containing brackets",
			aliases: []string{"price[eur]"},
			columns: []string{"price", "price[eur]"},
			want:    1,
		},
		{
			name:    "case sensitive literal",
			aliases: []string{"name"},
			columns: []string{"Name"},
			want:    -1,
		},
		{
			name:       "ignore case literal",
			aliases:    []string{"name"},
			columns:    []string{"Id", "NAME"},
			ignoreCase: true,
			want:       1,
		},
		{
			name:    "case sensitive wildcard",
			aliases: []string{"FOO*"},
			columns: []string{"foobar"},
			want:    -1,
		},
		{
			name:       "ignore case wildcard",
			aliases:    []string{"FOO*"},
			columns:    []string{"foobar"},
			ignoreCase: true,
			want:       0,
		},
		{
			name:    "star matches empty",
			aliases: []string{"Total*"},
			columns: []string{"Total"},
			want:    0,
		},
		{
			name:    "no names",
			aliases: []string{"*"},
			columns: nil,
			want:    -1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p, err := NewColumnNameProperty[int]("P", tc.aliases, intConv)
			require.NoError(t, err)

			rec := named(tc.ignoreCase, tc.columns)
			if tc.columns == nil {
				rec = headerless("1", "2")
			}

			p.bind(rec)
			assert.Equal(t, tc.want, p.ColumnIndex())
		})
	}
}

func TestColumnNamePropertyConstruction(t *testing.T) {
	t.Parallel()

	_, err := NewColumnNameProperty[int]("P", nil, intConv)
	assert.ErrorIs(t, err, conv.ErrConfiguration)

	_, err = NewColumnNameProperty[int]("P", []string{"A", ""}, intConv)
	assert.ErrorIs(t, err, conv.ErrConfiguration)

	_, err = NewColumnNameProperty[int]("P", []string{"A"}, nil)
	assert.ErrorIs(t, err, conv.ErrConfiguration)

	p, err := NewColumnNameProperty[string]("P", []string{"A", "B*"}, stringConv)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B*"}, p.Aliases())
	assert.Equal(t, -1, p.ColumnIndex(), "unbound")
}

func TestColumnNameReadWrite(t *testing.T) {
	t.Parallel()

	p, err := NewColumnNameProperty[int]("Qty", []string{"quantity", "qty*"}, intConv)
	require.NoError(t, err)

	rec := named(false, []string{"name", "qty_total"}, "pen", "12")
	p.bind(rec)

	v, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	require.NoError(t, p.Set(13))
	assert.Equal(t, []string{"pen", "13"}, rec.Values())
}

func TestColumnNameAbsent(t *testing.T) {
	t.Parallel()

	def := conv.Must(conv.Int[int](conv.WithDefault(-5)))

	p, err := NewColumnNameProperty[int]("C", []string{"C"}, def)
	require.NoError(t, err)

	t.Run("short row", func(t *testing.T) {
		rec := named(false, []string{"A", "B", "C"}, "1")
		p.bind(rec)

		assert.Equal(t, 2, p.ColumnIndex())

		v, err := p.Get()
		require.NoError(t, err)
		assert.Equal(t, -5, v)

		require.NoError(t, p.Set(8))
		assert.Equal(t, []string{"1"}, rec.Values())
	})

	t.Run("no match", func(t *testing.T) {
		rec := named(false, []string{"A", "B"}, "1", "2")
		p.bind(rec)

		v, err := p.Get()
		require.NoError(t, err)
		assert.Equal(t, -5, v)

		require.NoError(t, p.Set(8))
		assert.Equal(t, []string{"1", "2"}, rec.Values())
	})

	t.Run("nil write to absent pointer column", func(t *testing.T) {
		ptr := conv.Must(conv.Custom(
			func(s string) (*int, bool) { return nil, false },
			func(v *int) string { return "" },
		))
		q, err := NewColumnNameProperty[*int]("Ptr", []string{"missing"}, ptr)
		require.NoError(t, err)

		q.bind(named(false, []string{"A"}, "1"))
		assert.NoError(t, q.Set(nil), "pointer converters accept nil")
	})
}

func TestColumnNameCacheInvalidation(t *testing.T) {
	t.Parallel()

	p, err := NewColumnNameProperty[int]("Y", []string{"Y"}, intConv)
	require.NoError(t, err)

	first := named(false, []string{"X", "Y"}, "1", "2")
	p.bind(first)
	assert.Equal(t, 1, p.ColumnIndex())

	second := named(false, []string{"Y", "X"}, "3", "4")
	p.bind(second)
	assert.Equal(t, 0, p.ColumnIndex())

	v, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	// Same record, new header.
	second.SetColumnNames([]string{"X", "Z", "Y"})
	second.Reset([]string{"5", "6", "7"})
	assert.Equal(t, 2, p.ColumnIndex())

	v, err = p.Get()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestColumnNameCacheSharedLayout(t *testing.T) {
	t.Parallel()

	layout := record.NewLayout([]string{"A", "B"}, false)
	p, err := NewColumnNameProperty[int]("B", []string{"B"}, intConv)
	require.NoError(t, err)

	for i, row := range [][]string{{"1", "10"}, {"2", "20"}, {"3", "30"}} {
		p.bind(record.New(layout, row))

		v, err := p.Get()
		require.NoError(t, err)
		assert.Equal(t, (i+1)*10, v)
	}
}

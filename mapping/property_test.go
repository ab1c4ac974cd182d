package mapping

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csv-mapper/conv"
	"csv-mapper/record"
)

var (
	intConv    = conv.Must(conv.Int[int]())
	strictInt  = conv.Must(conv.Int[int](conv.WithThrowing(true)))
	stringConv = conv.Must(conv.String())
)

func headerless(values ...string) *record.Record {
	return record.New(nil, values)
}

func TestPropertyNameValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		valid bool
	}{
		{name: "A", valid: true},
		{name: "_private", valid: true},
		{name: "Order2", valid: true},
		{name: "snake_case_9", valid: true},
		{name: ""},
		{name: "1abc"},
		{name: "with-dash"},
		{name: "with space"},
		{name: "Größe"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewIndexProperty[int](tc.name, 0, intConv)
			if tc.valid {
				require.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, conv.ErrConfiguration)
		})
	}
}

func TestIndexPropertyConstruction(t *testing.T) {
	t.Parallel()

	_, err := NewIndexProperty[int]("A", -1, intConv)
	assert.ErrorIs(t, err, conv.ErrConfiguration)

	_, err = NewIndexProperty[int]("A", 0, nil)
	assert.ErrorIs(t, err, conv.ErrConfiguration)

	p, err := NewIndexProperty[int]("A", 3, intConv)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Index())
	assert.Equal(t, "A", p.Name())
	assert.Same(t, intConv, p.Converter())
}

func TestIndexPropertyReadWrite(t *testing.T) {
	t.Parallel()

	p, err := NewIndexProperty[int]("B", 1, intConv)
	require.NoError(t, err)

	rec := headerless("7", "-1")
	p.bind(rec)

	v, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, -1, v)

	require.NoError(t, p.Set(4711))
	assert.Equal(t, "4711", rec.Value(1))

	boxed, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, 4711, boxed)
}

func TestIndexPropertyAbsent(t *testing.T) {
	t.Parallel()

	def := conv.Must(conv.Int[int](conv.WithDefault(9), conv.WithThrowing(true)))
	p, err := NewIndexProperty[int]("C", 5, def)
	require.NoError(t, err)

	rec := headerless("1", "2")
	p.bind(rec)

	v, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	require.NoError(t, p.Set(3))
	assert.Equal(t, []string{"1", "2"}, rec.Values())
}

func TestPropertyUnbound(t *testing.T) {
	t.Parallel()

	p, err := NewIndexProperty[int]("A", 0, intConv)
	require.NoError(t, err)

	_, err = p.Get()
	assert.ErrorIs(t, err, ErrNoRecord)
	assert.ErrorIs(t, p.Set(1), ErrNoRecord)
	assert.ErrorIs(t, p.SetValue("x"), ErrNoRecord)

	_, err = p.Value()
	assert.ErrorIs(t, err, ErrNoRecord)
}

func TestPropertyFormatError(t *testing.T) {
	t.Parallel()

	p, err := NewIndexProperty[int]("Qty", 0, strictInt)
	require.NoError(t, err)
	p.bind(headerless("abc"))

	_, err = p.Get()
	require.ErrorIs(t, err, conv.ErrFormat)
	assert.Contains(t, err.Error(), "Qty")

	var fe *conv.FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "abc", fe.Input)

	lenient, err := NewIndexProperty[int]("Qty", 0, intConv)
	require.NoError(t, err)
	lenient.bind(headerless("abc"))

	v, err := lenient.Get()
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestPropertySetValueCast(t *testing.T) {
	t.Parallel()

	p, err := NewIndexProperty[int]("A", 0, intConv)
	require.NoError(t, err)

	rec := headerless("1")
	p.bind(rec)

	tests := []struct {
		name  string
		value any
	}{
		{name: "string", value: "2"},
		{name: "int64", value: int64(2)},
		{name: "nil", value: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := p.SetValue(tc.value)
			require.ErrorIs(t, err, conv.ErrCast)
			assert.Equal(t, "1", rec.Value(0), "no mutation on cast error")
		})
	}

	require.NoError(t, p.SetValue(2))
	assert.Equal(t, "2", rec.Value(0))
}

func TestPropertyNullableValues(t *testing.T) {
	t.Parallel()

	nullable := conv.Must(conv.Nullable[int](intConv))
	p, err := NewIndexProperty[*int]("N", 0, nullable)
	require.NoError(t, err)

	rec := headerless("5")
	p.bind(rec)

	require.NoError(t, p.SetValue(nil))
	assert.Empty(t, rec.Value(0))

	v, err := p.Get()
	require.NoError(t, err)
	assert.Nil(t, v)

	marker := conv.Must(conv.NullMarker[int](intConv))
	q, err := NewIndexProperty[any]("M", 0, marker)
	require.NoError(t, err)
	q.bind(rec)

	require.NoError(t, q.SetValue(5))
	assert.Equal(t, "5", rec.Value(0))

	require.NoError(t, q.SetValue(conv.DBNull))
	assert.Empty(t, rec.Value(0))

	got, err := q.Value()
	require.NoError(t, err)
	assert.Equal(t, conv.DBNull, got)

	require.NoError(t, q.SetValue(7))
	require.ErrorIs(t, q.SetValue("text"), conv.ErrCast)
	assert.Equal(t, "7", rec.Value(0))
}

func TestNullMarkerTypedSetRejectsForeignValues(t *testing.T) {
	m, err := NewBuilder().
		Add(NewIndexProperty[any]("A", 0, conv.Must(conv.NullMarker[int](conv.Must(conv.Int[int]()))))).
		Build()
	require.NoError(t, err)

	rec := headerless("5")
	m.SetRecord(rec)

	a, err := Lookup[any](m, "A")
	require.NoError(t, err)

	tests := []struct {
		name string
		set  func() error
		want string
		cast bool
	}{
		{name: "lookupFloat", set: func() error { return a.Set(2.5) }, want: "5", cast: true},
		{name: "lookupString", set: func() error { return a.Set("x") }, want: "5", cast: true},
		{name: "setAsFloat", set: func() error { return SetAs[any](m, "A", 2.5) }, want: "5", cast: true},
		{name: "setAsNull", set: func() error { return SetAs[any](m, "A", conv.DBNull) }, want: ""},
		{name: "lookupInt", set: func() error { return a.Set(7) }, want: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set()
			if tt.cast {
				require.ErrorIs(t, err, conv.ErrCast)
				assert.Contains(t, err.Error(), "mapping: A:")
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.want, rec.Value(0))
		})
	}
}

package conv

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	lenient := Must(Int[int32](WithDefault(int32(-1))))
	strict := Must(Int[int32](WithThrowing(true), WithDefault(int32(-1))))

	tests := []struct {
		name    string
		c       Converter[int32]
		input   string
		want    int32
		wantErr bool
	}{
		{name: "valid", c: lenient, input: "42", want: 42},
		{name: "surroundingSpace", c: lenient, input: " 42 ", want: 42},
		{name: "garbageLenient", c: lenient, input: "4x2", want: -1},
		{name: "garbageStrict", c: strict, input: "4x2", wantErr: true},
		{name: "emptyStrict", c: strict, input: "", want: -1},
		{name: "whitespaceStrict", c: strict, input: " \t ", want: -1},
		{name: "overflowStrict", c: strict, input: "2147483648", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tc.c, tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrFormat)

				var fe *FormatError
				require.True(t, errors.As(err, &fe))
				assert.Equal(t, tc.input, fe.Input)
				assert.Equal(t, reflect.TypeFor[int32](), fe.Type)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWithDefaultValidation(t *testing.T) {
	t.Parallel()

	_, err := Int[int32](WithDefault(5))
	assert.ErrorIs(t, err, ErrConfiguration, "untyped int is not an int32")

	_, err = Int[int](WithDefault(nil))
	assert.ErrorIs(t, err, ErrConfiguration, "int does not accept nil")

	c, err := Bytes(WithDefault(nil))
	require.NoError(t, err)
	assert.Nil(t, c.DefaultValue())

	_, err = Time(WithLayout("2006-01-02"), WithDefault("2024-01-01"))
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = Enum(map[string]int{"A": 1}, WithDefault(7))
	require.NoError(t, err, "numeric text for an unnamed value is still accepted")
}

func TestAcceptsNull(t *testing.T) {
	t.Parallel()

	assert.False(t, Must(Int[int]()).AcceptsNull())
	assert.False(t, Must(String()).AcceptsNull())
	assert.True(t, Must(Bytes()).AcceptsNull())
	assert.True(t, Must(Nullable[int](Must(Int[int]()))).AcceptsNull())
	assert.True(t, Must(NullMarker[int](Must(Int[int]()))).AcceptsNull())
}

func TestMustPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		Must(Int[int](WithFormat("R")))
	})
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	var s []int
	var a any

	assert.True(t, IsNil(p))
	assert.True(t, IsNil(s))
	assert.True(t, IsNil(a))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil([]int{}))
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	fe := &FormatError{Input: "abc", Type: reflect.TypeFor[int]()}
	assert.Equal(t, `conv: cannot parse "abc" as int`, fe.Error())

	ce := &CastError{Value: "x", Want: reflect.TypeFor[int]()}
	assert.Equal(t, "conv: cannot use string as int", ce.Error())
	assert.ErrorIs(t, ce, ErrCast)

	nilCast := &CastError{Want: reflect.TypeFor[int]()}
	assert.Equal(t, "conv: nil is not a valid int", nilCast.Error())

	cfg := NewConfigError("separator", "must not be %s", "empty")
	assert.Equal(t, "conv: invalid separator: must not be empty", cfg.Error())
	assert.ErrorIs(t, cfg, ErrConfiguration)
}

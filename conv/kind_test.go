package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindFromName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want Kind
	}{
		{name: "int32", want: KindInt32},
		{name: " UUID ", want: KindUUID},
		{name: "guid", want: KindUUID},
		{name: "char", want: KindRune},
		{name: "byte", want: KindUint8},
		{name: "base64", want: KindBytes},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			k, ok := KindFromName(tc.name)
			require.True(t, ok)
			assert.Equal(t, tc.want, k)
		})
	}

	_, ok := KindFromName("complex128")
	assert.False(t, ok)
}

func TestKindNamesCoverEveryKind(t *testing.T) {
	t.Parallel()

	seen := make(map[Kind]bool)
	for _, name := range KindNames() {
		k, ok := KindFromName(name)
		require.True(t, ok, name)
		seen[k] = true
	}

	for k := KindString; int(k) < KindTotal; k++ {
		assert.True(t, seen[k], k.String())
		assert.NotEmpty(t, k.GoType())
	}
}

func TestKindClassification(t *testing.T) {
	t.Parallel()

	assert.True(t, KindUint16.IsInteger())
	assert.False(t, KindFloat32.IsInteger())
	assert.True(t, KindFloat64.IsFloat())
	assert.True(t, KindDecimal.IsNumber())
	assert.False(t, KindTime.IsNumber())

	assert.Equal(t, "github.com/google/uuid", KindUUID.ImportPath())
	assert.Equal(t, "time", KindDuration.ImportPath())
	assert.Empty(t, KindInt.ImportPath())
	assert.Equal(t, "int64", KindEnum.GoType())
	assert.Equal(t, "KindUUID", KindUUID.String())
}

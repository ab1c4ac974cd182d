package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"csv-mapper/mapping", "mapping"},
		{"time", "time"},
		{"github.com/shopspring/decimal", "decimal"},
		{"gopkg.in/yaml.v3", "yaml"},
		{"github.com/go-viper/mapstructure/v2", "mapstructure"},
		{"github.com/davecgh/go-spew", "spew"},
		{"example.com/csv-tools", "csvtools"},
		{"example.com/v2data", "v2data"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, ImportName(tt.path))
		})
	}
}

func TestOnly(t *testing.T) {
	v, ok := Only([]string{"a"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = Only([]string{"a", "b"})
	assert.False(t, ok)

	_, ok = Only[[]int](nil)
	assert.False(t, ok)
}

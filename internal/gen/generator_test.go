package gen

import (
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/imports"

	"csv-mapper/schema"
)

const orderSchema = `
name: order_line
properties:
  - name: ID
    type: int64
    index: 0
  - name: Total
    type: decimal
    columns: total
  - name: Shipped
    type: time
    columns: shipped
    nullable: true
  - name: Tags
    columns: tags
    separator: "|"
  - name: Ref
    type: guid
    columns: ref
    null_marker: true
  - name: type
    columns: kind
`

func parseSchema(t *testing.T, text string) *schema.File {
	t.Helper()

	f, err := schema.Parse([]byte(text))
	require.NoError(t, err)

	return f
}

func TestGenerate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PackageName = "orders"
	cfg.OutputDir = ""

	file, err := Generate(parseSchema(t, orderSchema), cfg)
	require.NoError(t, err)

	assert.Equal(t, "order_line_view.go", file.Filename)

	content := string(file.Content)

	for _, want := range []string{
		"// Code generated by csvmap gen. DO NOT EDIT.",
		"package orders",
		`"csv-mapper/mapping"`,
		`"github.com/shopspring/decimal"`,
		`"time"`,
		"type OrderLineView struct",
		"func NewOrderLineView(m *mapping.Mapping) (*OrderLineView, error)",
		`mapping.Lookup[*time.Time](m, "Shipped")`,
		"func (v *OrderLineView) GetID() (int64, error)",
		"func (v *OrderLineView) SetTotal(x decimal.Decimal) error",
		"func (v *OrderLineView) GetType() (string, error)",
		"// GetTags reads Tags from the current record.",
	} {
		assert.Contains(t, content, want)
	}

	for _, field := range []string{
		`m\s+\*mapping\.Mapping`,
		`id\s+mapping\.Typed\[int64\]`,
		`total\s+mapping\.Typed\[decimal\.Decimal\]`,
		`shipped\s+mapping\.Typed\[\*time\.Time\]`,
		`tags\s+mapping\.Typed\[\[\]string\]`,
		`ref\s+mapping\.Typed\[any\]`,
		`typeProp\s+mapping\.Typed\[string\]`,
	} {
		assert.Regexp(t, field, content)
	}

	// standard library, third party, then local packages
	stdlib := strings.Index(content, `"time"`)
	thirdParty := strings.Index(content, `"github.com/shopspring/decimal"`)
	local := strings.Index(content, `"csv-mapper/mapping"`)
	assert.Less(t, stdlib, thirdParty)
	assert.Less(t, thirdParty, local)
	assert.Empty(t, imports.LocalPrefix, "the shared prefix is restored")

	// the null marker converter yields any, which needs no uuid import
	assert.NotContains(t, content, "github.com/google/uuid")

	_, err = parser.ParseFile(token.NewFileSet(), file.Filename, file.Content, parser.AllErrors)
	require.NoError(t, err)

	formatted, err := format.Source(file.Content)
	require.NoError(t, err)
	assert.Equal(t, content, string(formatted))
}

func TestGenerateConcurrent(t *testing.T) {
	f := parseSchema(t, orderSchema)

	want, err := Generate(f, DefaultConfig())
	require.NoError(t, err)

	other := DefaultConfig()
	other.MappingImport = "example.com/csv/mapping"

	var wg sync.WaitGroup

	results := make([]GeneratedFile, 8)
	errs := make([]error, 8)

	for i := range results {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if i%2 == 1 {
				_, errs[i] = Generate(f, other)
				return
			}

			results[i], errs[i] = Generate(f, DefaultConfig())
		}()
	}

	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])

		if i%2 == 0 {
			assert.Equal(t, string(want.Content), string(results[i].Content))
		}
	}
}

func TestGenerateWithoutComments(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GenerateComments = false
	cfg.MappingImport = "example.com/csv/mapping"

	file, err := Generate(parseSchema(t, `
name: Point
properties:
  - {name: X, type: float64, index: 0}
`), cfg)
	require.NoError(t, err)

	content := string(file.Content)
	assert.Contains(t, content, "package views")
	assert.Contains(t, content, `"example.com/csv/mapping"`)
	assert.Contains(t, content, "func (v *PointView) GetX() (float64, error)")
	assert.NotContains(t, content, "// GetX")
	assert.Equal(t, "point_view.go", file.Filename)
}

func TestGenerateNoProperties(t *testing.T) {
	file, err := Generate(parseSchema(t, "name: Empty\n"), DefaultConfig())
	require.NoError(t, err)

	content := string(file.Content)
	assert.Contains(t, content, "type EmptyView struct")
	assert.NotContains(t, content, "var err error")

	_, err = parser.ParseFile(token.NewFileSet(), file.Filename, file.Content, 0)
	require.NoError(t, err)
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		schema  string
		pkg     string
		wantErr string
	}{
		{
			name:    "invalid schema",
			schema:  "name: Bad\nproperties:\n  - {name: A, type: strng, index: 0}\n",
			wantErr: "unknown_type",
		},
		{
			name:    "accessor collision",
			schema:  "name: Dup\nproperties:\n  - {name: order_id, index: 0}\n  - {name: OrderID, index: 1}\n",
			wantErr: `properties "order_id" and "OrderID" both generate accessor OrderID`,
		},
		{
			name:    "bad package",
			schema:  "name: P\n",
			pkg:     "func",
			wantErr: `package name "func" is not an identifier`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if tt.pkg != "" {
				cfg.PackageName = tt.pkg
			}

			_, err := Generate(parseSchema(t, tt.schema), cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestHandleName(t *testing.T) {
	tests := map[string]string{
		"ID":       "id",
		"M":        "mProp",
		"Range":    "rangeProp",
		"order_id": "orderID",
		"Color":    "color",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, handleName(in))
		})
	}
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	files := []GeneratedFile{
		{Filename: "a_view.go", Content: []byte("package views\n")},
		{Filename: "b_view.go", Content: []byte("package views\n")},
	}
	require.NoError(t, WriteFiles(files, dir))

	for _, f := range files {
		got, err := os.ReadFile(filepath.Join(dir, f.Filename))
		require.NoError(t, err)
		assert.Equal(t, f.Content, got)
	}
}

func TestWriteDebugUnformatted(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, writeDebugUnformatted(dir, "x_view.go", []byte("package")))

	got, err := os.ReadFile(filepath.Join(dir, "x_view.unformatted.go"))
	require.NoError(t, err)
	assert.Equal(t, "package", string(got))

	assert.NoError(t, writeDebugUnformatted("", "x_view.go", nil))
}

package gen

import (
	"bytes"
	"fmt"
	"go/token"
	"slices"
	"strings"
	"sync"

	"golang.org/x/tools/imports"

	"csv-mapper/internal/common"
	"csv-mapper/internal/match"
	"csv-mapper/schema"
)

// DefaultMappingImport is the import path of the mapping package generated
// views refer to.
const DefaultMappingImport = "csv-mapper/mapping"

// Config holds configuration for code generation.
type Config struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is where unformatted sources are dumped when formatting
	// fails. Empty disables the dump.
	OutputDir string
	// MappingImport overrides DefaultMappingImport.
	MappingImport string
	// GenerateComments emits doc comments on generated declarations.
	GenerateComments bool
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		PackageName:      "views",
		OutputDir:        "./generated",
		MappingImport:    DefaultMappingImport,
		GenerateComments: true,
	}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "order_view.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders the typed view of f. The schema must validate.
//
// When formatting fails the unformatted source is returned together with
// the error.
func Generate(f *schema.File, cfg Config) (GeneratedFile, error) {
	if d := schema.Validate(f); d.HasErrors() {
		return GeneratedFile{}, fmt.Errorf("invalid schema: %w", d.Error())
	}

	data, err := buildViewData(f, cfg)
	if err != nil {
		return GeneratedFile{}, err
	}

	var buf bytes.Buffer
	if err := viewTemplate.Execute(&buf, data); err != nil {
		return GeneratedFile{}, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := formatSource(data.Filename, buf.Bytes(), data.LocalPrefix)
	if err != nil {
		if cfg.OutputDir != "" {
			_ = writeDebugUnformatted(cfg.OutputDir, data.Filename, buf.Bytes())
		}

		return GeneratedFile{Filename: data.Filename, Content: buf.Bytes()},
			fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return GeneratedFile{Filename: data.Filename, Content: formatted}, nil
}

// localPrefixMu guards imports.LocalPrefix, which the imports package
// reads as a global.
var localPrefixMu sync.Mutex

// formatSource formats src and groups its imports as standard library,
// third party, then packages under localPrefix.
func formatSource(filename string, src []byte, localPrefix string) ([]byte, error) {
	localPrefixMu.Lock()
	defer localPrefixMu.Unlock()

	prev := imports.LocalPrefix
	imports.LocalPrefix = localPrefix

	defer func() { imports.LocalPrefix = prev }()

	return imports.Process(filename, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
}

// viewData holds all data needed for the view template.
type viewData struct {
	PackageName      string
	Filename         string
	Schema           string
	ViewName         string
	Mapping          string
	Imports          []string
	LocalPrefix      string
	Fields           []fieldData
	GenerateComments bool
}

// fieldData describes the handle and accessors of one property.
type fieldData struct {
	Property string
	Handle   string
	Method   string
	Type     string
}

func buildViewData(f *schema.File, cfg Config) (*viewData, error) {
	pkg := cfg.PackageName
	if pkg == "" {
		pkg = DefaultConfig().PackageName
	}

	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("package name %q is not an identifier", pkg)
	}

	mappingImport := cfg.MappingImport
	if mappingImport == "" {
		mappingImport = DefaultMappingImport
	}

	data := &viewData{
		PackageName:      pkg,
		Filename:         strings.Join(match.TokenizeIdent(f.Name), "_") + "_view.go",
		Schema:           f.Name,
		ViewName:         match.ExportedName(f.Name) + "View",
		Mapping:          common.ImportName(mappingImport),
		Imports:          []string{mappingImport},
		LocalPrefix:      strings.SplitN(mappingImport, "/", 2)[0],
		GenerateComments: cfg.GenerateComments,
	}

	methods := map[string]string{}

	for i := range f.Properties {
		p := &f.Properties[i]

		method := match.ExportedName(p.Name)
		if other, ok := methods[method]; ok {
			return nil, fmt.Errorf("properties %q and %q both generate accessor %s", other, p.Name, method)
		}

		methods[method] = p.Name

		if imp := schema.ImportPath(p); imp != "" && !slices.Contains(data.Imports, imp) {
			data.Imports = append(data.Imports, imp)
		}

		data.Fields = append(data.Fields, fieldData{
			Property: p.Name,
			Handle:   handleName(p.Name),
			Method:   method,
			Type:     schema.GoType(p),
		})
	}

	slices.Sort(data.Imports)

	return data, nil
}

// handleName returns the struct field holding a property handle. It never
// collides with the mapping field or a keyword.
func handleName(property string) string {
	name := match.UnexportedName(property)
	if name == "m" || token.IsKeyword(name) {
		return name + "Prop"
	}

	return name
}

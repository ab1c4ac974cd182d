package gen

import "text/template"

var viewTemplate = template.Must(template.New("view").Parse(`// Code generated by csvmap gen. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	"{{.}}"
{{end}})
{{if .GenerateComments}}
// {{.ViewName}} is a typed view over a mapping built from the {{.Schema}} schema.
// It reads and writes the record currently bound to that mapping.{{end}}
type {{.ViewName}} struct {
	m *{{.Mapping}}.Mapping
{{range .Fields}}	{{.Handle}} {{$.Mapping}}.Typed[{{.Type}}]
{{end}}}
{{if .GenerateComments}}
// New{{.ViewName}} looks up every {{.Schema}} property in m.{{end}}
func New{{.ViewName}}(m *{{.Mapping}}.Mapping) (*{{.ViewName}}, error) {
	v := &{{.ViewName}}{m: m}
{{if .Fields}}
	var err error
{{range .Fields}}
	if v.{{.Handle}}, err = {{$.Mapping}}.Lookup[{{.Type}}](m, {{printf "%q" .Property}}); err != nil {
		return nil, err
	}
{{end}}{{end}}
	return v, nil
}
{{if .GenerateComments}}
// Mapping returns the mapping the view reads through.{{end}}
func (v *{{.ViewName}}) Mapping() *{{.Mapping}}.Mapping { return v.m }
{{range .Fields}}{{if $.GenerateComments}}
// Get{{.Method}} reads {{.Property}} from the current record.{{end}}
func (v *{{$.ViewName}}) Get{{.Method}}() ({{.Type}}, error) { return v.{{.Handle}}.Get() }
{{if $.GenerateComments}}
// Set{{.Method}} writes {{.Property}} to the current record.{{end}}
func (v *{{$.ViewName}}) Set{{.Method}}(x {{.Type}}) error { return v.{{.Handle}}.Set(x) }
{{end}}`))

// Package gen generates strongly typed views over mappings described by a
// schema.
//
// For a schema named Order the generated OrderView holds one typed handle
// per property and exposes GetX/SetX accessors, so rows are read without
// name lookups or type assertions:
//
//	m, _ := schema.Build(f)
//	v, _ := orders.NewOrderView(m)
//	m.SetRecord(rec)
//	id, err := v.GetID()
//
// Output is rendered with text/template and formatted with
// golang.org/x/tools/imports.
package gen

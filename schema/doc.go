// Package schema provides YAML mapping definitions, their validation, and
// the construction of a *mapping.Mapping from them.
//
// # Schema Overview
//
//	version: "1"
//	name: Order
//	options:
//	  has_header: true
//	  ignore_case: true
//	  separator: ";"
//	properties:
//	  - name: ID
//	    type: int64
//	    index: 0
//	    throwing: true
//	  - name: Customer
//	    columns: [customer, "customer_*"]   # first alias that matches wins
//	  - name: Total
//	    type: decimal
//	    columns: total
//	    default: "0"
//	  - name: Color
//	    type: uint32
//	    columns: color
//	    hex: true
//	  - name: Shipped
//	    type: time
//	    columns: shipped_at
//	    layout: "2006-01-02"
//	    nullable: true
//	  - name: Tags
//	    columns: tags
//	    separator: "|"
//	  - name: Status
//	    type: enum
//	    columns: status
//	    values: {open: 0, closed: 1}
//	    ignore_case: true
//
// Type defaults to string. Column aliases may be a single string or a list
// and may contain the wildcards '*' and '?'. Default values are written as
// text and parsed by the property's converter.
//
// # Validation
//
// Validate reports problems as diagnostics with stable codes (for example
// unknown_type, missing_binding, duplicate_property) and suggests the
// closest type name for misspellings. Build refuses definitions with
// errors.
package schema

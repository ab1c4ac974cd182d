// Package mapping exposes the fields of a CSV record as named, typed
// properties.
//
// A Mapping is an ordered set of properties. Each property binds one
// logical field to the columns of the record currently assigned to the
// mapping:
//
//   - IndexProperty reads a fixed column index.
//   - ColumnNameProperty reads the first column matching one of its
//     aliases; aliases may contain the wildcards '*' and '?'.
//   - MultiColumnProperty spreads one value over several columns through a
//     MultiColumnConverter and a nested Mapping.
//
// A property whose column does not exist in the current record is absent:
// reading it yields the converter's default value and writing it does
// nothing. Parse failures follow the converter's policy (see package conv).
//
// Typical use binds each row in turn:
//
//	for {
//		rec, err := r.Read()
//		if errors.Is(err, io.EOF) {
//			break
//		}
//		...
//		m.SetRecord(rec)
//		id, err := idProp.Get()
//		...
//	}
//
// Name-based access (Get, Set, Entries) is convenient but boxes values;
// the Typed handles returned by the constructors or Lookup avoid that.
package mapping

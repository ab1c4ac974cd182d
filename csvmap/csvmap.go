// Package csvmap runs a mapping.Mapping over whole CSV documents.
//
// Read and Parse project every row into a caller type; Write and Format
// fill a record per item. ProcessParallel fans rows out to workers, each
// holding its own clone of the mapping.
package csvmap

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"csv-mapper/csvio"
	"csv-mapper/mapping"
	"csv-mapper/record"
)

// RowError attaches the 1-based data row number to a projection or fill
// failure.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string { return fmt.Sprintf("csvmap: row %d: %v", e.Row, e.Err) }

func (e *RowError) Unwrap() error { return e.Err }

// Read returns an iterator projecting every row of r through m. A
// projection error is yielded with its row and iteration continues if the
// caller asks for more; a CSV syntax error ends the sequence.
//
// m is bound to each row in turn and must not be used concurrently.
func Read[T any](r io.Reader, m *mapping.Mapping, project func(*mapping.Mapping) (T, error), opts ...csvio.Option) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		cr := csvio.NewReader(r, opts...)

		for {
			rec, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}

			if err != nil {
				var zero T
				yield(zero, err)

				return
			}

			m.SetRecord(rec)

			v, err := project(m)
			if err != nil {
				err = &RowError{Row: cr.Row(), Err: err}
			}

			if !yield(v, err) {
				return
			}
		}
	}
}

// Parse projects every row of text and stops at the first error.
func Parse[T any](text string, m *mapping.Mapping, project func(*mapping.Mapping) (T, error), opts ...csvio.Option) ([]T, error) {
	var out []T

	for v, err := range Read(strings.NewReader(text), m, project, opts...) {
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, nil
}

// Write writes one row per item. Every row starts blank and fill sets the
// properties through m. Without column names or a column count the row
// width is the highest column index m accesses, plus one.
func Write[S any](w io.Writer, items iter.Seq[S], m *mapping.Mapping, fill func(S, *mapping.Mapping) error, opts ...csvio.Option) error {
	cw := csvio.NewWriter(w, opts...)

	rec := cw.NewRecord()
	m.SetRecord(rec)

	if rec.Count() == 0 {
		if idx := m.AccessedColumnIndexes(); len(idx) > 0 {
			rec = record.Blank(cw.Layout(), idx[len(idx)-1]+1)
			m.SetRecord(rec)
		}
	}

	row := 0

	for item := range items {
		row++

		rec.Clear()

		if err := fill(item, m); err != nil {
			return &RowError{Row: row, Err: err}
		}

		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	return cw.Flush()
}

// Format is Write into a string.
func Format[S any](items []S, m *mapping.Mapping, fill func(S, *mapping.Mapping) error, opts ...csvio.Option) (string, error) {
	var sb strings.Builder

	if err := Write(&sb, slices.Values(items), m, fill, opts...); err != nil {
		return "", err
	}

	return sb.String(), nil
}

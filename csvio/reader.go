// Package csvio reads and writes CSV rows as *record.Record values.
//
// Every record produced by one Reader shares a single record.Layout, so
// column resolutions cached by mapping properties stay valid from row to
// row. With WithReuseRecord the Reader also returns the same Record object
// for every row.
package csvio

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"csv-mapper/internal/csvtext"
	"csv-mapper/record"
)

// ParseError carries the line and column of malformed CSV text.
type ParseError = csvtext.ParseError

var (
	ErrBareQuote         = csvtext.ErrBareQuote
	ErrUnterminatedQuote = csvtext.ErrUnterminatedQuote
	ErrFieldCount        = csvtext.ErrFieldCount
	ErrInvalidDelim      = csvtext.ErrInvalidDelim
)

// Reader reads records from CSV text.
type Reader struct {
	tok    *csvtext.Reader
	cfg    config
	layout *record.Layout
	rec    *record.Record
	fields []string
	init   bool
	hdrErr error
	row    int
}

// NewReader returns a Reader on r. It panics if r is nil.
func NewReader(r io.Reader, opts ...Option) *Reader {
	cfg := newConfig(opts)

	tok := csvtext.NewReader(r)
	tok.Comma = cfg.comma
	tok.Quote = cfg.quote
	tok.SkipEmptyLines = cfg.skipEmpty

	if !cfg.strictWidth {
		tok.FieldsPerRecord = -1
	}

	return &Reader{tok: tok, cfg: cfg}
}

// Read returns the next data record, or io.EOF after the last one.
func (r *Reader) Read() (*record.Record, error) {
	if !r.init {
		r.hdrErr = r.readHeader()
	}

	if r.hdrErr != nil {
		return nil, r.hdrErr
	}

	var dst []string
	if r.cfg.reuse {
		dst = r.fields
	}

	fields, err := r.tok.Read(dst)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}

		return nil, fmt.Errorf("csvio: row %d: %w", r.row+1, err)
	}

	r.row++

	if !r.cfg.reuse {
		return record.New(r.layout, fields), nil
	}

	r.fields = fields
	if r.rec == nil {
		r.rec = record.New(r.layout, make([]string, 0, len(fields)))
	}

	r.rec.Reset(fields)

	return r.rec, nil
}

func (r *Reader) readHeader() error {
	r.init = true

	if !r.cfg.header {
		r.layout = record.NewLayout(r.cfg.names, r.cfg.ignoreCase)
		return nil
	}

	names, err := r.tok.Read(nil)
	if err != nil {
		if errors.Is(err, io.EOF) {
			r.layout = record.NewLayout(nil, r.cfg.ignoreCase)
			return io.EOF
		}

		return fmt.Errorf("csvio: header: %w", err)
	}

	r.layout = record.NewLayout(names, r.cfg.ignoreCase)
	slog.Debug("csvio: header read", "columns", len(names), "ignoreCase", r.cfg.ignoreCase)

	return nil
}

// Layout returns the column layout, reading the header if necessary. It is
// nil only if reading the header failed; the next Read reports the failure.
func (r *Reader) Layout() *record.Layout {
	if !r.init {
		r.hdrErr = r.readHeader()
	}

	return r.layout
}

// Row returns the 1-based number of the last data record read, not counting
// the header.
func (r *Reader) Row() int { return r.row }

// Line returns the line on which the last record started.
func (r *Reader) Line() int { return r.tok.Line() }

// ReusesRecord reports whether Read returns the same Record every time.
func (r *Reader) ReusesRecord() bool { return r.cfg.reuse }

// Package csvtext tokenizes and writes RFC 4180 text.
//
// It knows nothing about columns, types or mappings: the reader turns bytes
// into field slices and the writer does the reverse. Record-level concerns
// (headers, record reuse, layouts) live in package csvio.
package csvtext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

const defaultBufferSize = 4 << 10

var (
	// ErrBareQuote is returned when a quote appears inside an unquoted field.
	ErrBareQuote = errors.New("csvtext: bare quote in non-quoted field")
	// ErrUnterminatedQuote is returned when input ends inside a quoted field.
	ErrUnterminatedQuote = errors.New("csvtext: unterminated quoted field")
	// ErrFieldCount is returned when a record has an unexpected number of fields.
	ErrFieldCount = errors.New("csvtext: wrong number of fields")
	// ErrInvalidDelim is returned when Comma or Quote cannot delimit fields.
	ErrInvalidDelim = errors.New("csvtext: invalid field or quote delimiter")
)

// ParseError carries the position of a parse failure.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("csvtext: record on line %d: %v", e.Line, e.Err)
	}

	return fmt.Sprintf("csvtext: parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Reader splits CSV text into records.
type Reader struct {
	// Comma is the field delimiter. Default is ','.
	Comma byte
	// Quote is the quote character. Default is '"'.
	Quote byte
	// FieldsPerRecord is the expected record width. Zero takes the width of
	// the first record; a negative value disables the check.
	FieldsPerRecord int
	// SkipEmptyLines drops lines holding no characters at all.
	SkipEmptyLines bool

	src *bufio.Reader

	line       int
	recordLine int
	data       []byte
	bounds     []int
}

// NewReader returns a Reader consuming r. It panics if r is nil.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		panic("csvtext: reader source cannot be nil")
	}

	return &Reader{
		Comma:  ',',
		Quote:  '"',
		src:    bufio.NewReaderSize(r, defaultBufferSize),
		line:   1,
		data:   make([]byte, 0, 512),
		bounds: make([]int, 0, 32),
	}
}

// Line returns the line on which the most recently read record started.
func (r *Reader) Line() int { return r.recordLine }

// Read parses the next record and stores its fields in dst[:0], growing dst
// as needed. All fields of one record share a single string allocation.
// At the end of input Read returns io.EOF.
func (r *Reader) Read(dst []string) ([]string, error) {
	if !validDelim(r.Comma) || !validDelim(r.Quote) || r.Comma == r.Quote {
		return nil, ErrInvalidDelim
	}

	for {
		empty, err := r.readRecord()
		if err != nil {
			return nil, err
		}

		if empty && r.SkipEmptyLines {
			continue
		}

		return r.build(dst)
	}
}

// ReadAll reads every remaining record.
func (r *Reader) ReadAll() ([][]string, error) {
	var records [][]string

	for {
		rec, err := r.Read(nil)
		if errors.Is(err, io.EOF) {
			return records, nil
		}

		if err != nil {
			return records, err
		}

		records = append(records, rec)
	}
}

// readRecord fills r.data and r.bounds with the next record. empty reports
// a line without any characters.
func (r *Reader) readRecord() (empty bool, err error) {
	r.data = r.data[:0]
	r.bounds = r.bounds[:0]
	r.recordLine = r.line

	var (
		column     int
		fieldStart int
		inQuotes   bool
		quoted     bool
		seen       bool
	)

	endField := func() {
		r.bounds = append(r.bounds, fieldStart, len(r.data))
		fieldStart = len(r.data)
		quoted = false
	}

	for {
		b, err := r.src.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return false, err
			}

			if inQuotes {
				return false, &ParseError{Line: r.line, Column: column, Err: ErrUnterminatedQuote}
			}

			if !seen {
				return false, io.EOF
			}

			endField()

			return false, nil
		}

		column++

		if inQuotes {
			seen = true

			switch b {
			case r.Quote:
				next, err := r.src.ReadByte()
				switch {
				case err == nil && next == r.Quote:
					r.data = append(r.data, r.Quote)
					column++
				case err == nil:
					_ = r.src.UnreadByte()
					inQuotes = false
				case errors.Is(err, io.EOF):
					inQuotes = false
				default:
					return false, err
				}
			case '\n':
				r.data = append(r.data, b)
				r.line++
				column = 0
			default:
				r.data = append(r.data, b)
			}

			continue
		}

		switch b {
		case r.Comma:
			seen = true

			endField()
		case '\r':
			next, err := r.src.ReadByte()
			switch {
			case err == nil && next != '\n':
				_ = r.src.UnreadByte()
			case err != nil && !errors.Is(err, io.EOF):
				return false, err
			}

			fallthrough
		case '\n':
			empty = !seen
			endField()
			r.line++

			return empty, nil
		case r.Quote:
			seen = true

			if len(r.data) != fieldStart || quoted {
				return false, &ParseError{Line: r.line, Column: column, Err: ErrBareQuote}
			}

			inQuotes = true
			quoted = true
		default:
			seen = true
			r.data = append(r.data, b)
		}
	}
}

func (r *Reader) build(dst []string) ([]string, error) {
	n := len(r.bounds) / 2
	text := string(r.data)

	dst = dst[:0]
	for i := range n {
		dst = append(dst, text[r.bounds[2*i]:r.bounds[2*i+1]])
	}

	switch {
	case r.FieldsPerRecord == 0:
		r.FieldsPerRecord = n
	case r.FieldsPerRecord > 0 && n != r.FieldsPerRecord:
		return dst, &ParseError{Line: r.recordLine, Err: ErrFieldCount}
	}

	return dst, nil
}

func validDelim(b byte) bool {
	return b != 0 && b != '\r' && b != '\n'
}

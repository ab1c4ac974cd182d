package csvtext

import (
	"bufio"
	"io"
	"strings"
)

// Writer emits CSV records with minimal quoting.
type Writer struct {
	// Comma is the field delimiter. Default is ','.
	Comma byte
	// Quote is the quote character. Default is '"'.
	Quote byte
	// UseCRLF terminates records with \r\n instead of \n.
	UseCRLF bool
	// AlwaysQuote quotes every field.
	AlwaysQuote bool

	dst *bufio.Writer
	err error
}

// NewWriter returns a buffered Writer on w. It panics if w is nil.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		panic("csvtext: writer destination cannot be nil")
	}

	return &Writer{
		Comma: ',',
		Quote: '"',
		dst:   bufio.NewWriterSize(w, defaultBufferSize),
	}
}

// Write emits one record. After the first error every call returns it.
func (w *Writer) Write(fields []string) error {
	if w.err != nil {
		return w.err
	}

	if !validDelim(w.Comma) || !validDelim(w.Quote) || w.Comma == w.Quote {
		w.err = ErrInvalidDelim
		return w.err
	}

	for i, field := range fields {
		if i > 0 {
			if err := w.dst.WriteByte(w.Comma); err != nil {
				w.err = err
				return err
			}
		}

		// A lone empty field is quoted so it does not read back as an empty line.
		if err := w.writeField(field, len(fields) == 1 && field == ""); err != nil {
			w.err = err
			return err
		}
	}

	var err error
	if w.UseCRLF {
		_, err = w.dst.WriteString("\r\n")
	} else {
		err = w.dst.WriteByte('\n')
	}

	if err != nil {
		w.err = err
	}

	return err
}

// Flush writes buffered data to the destination.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}

	if err := w.dst.Flush(); err != nil {
		w.err = err
		return err
	}

	return nil
}

// Error reports the first error encountered by the writer.
func (w *Writer) Error() error { return w.err }

func (w *Writer) writeField(field string, force bool) error {
	if !force && !w.AlwaysQuote && !w.needsQuote(field) {
		_, err := w.dst.WriteString(field)
		return err
	}

	if err := w.dst.WriteByte(w.Quote); err != nil {
		return err
	}

	for {
		i := strings.IndexByte(field, w.Quote)
		if i < 0 {
			break
		}

		if _, err := w.dst.WriteString(field[:i+1]); err != nil {
			return err
		}

		if err := w.dst.WriteByte(w.Quote); err != nil {
			return err
		}

		field = field[i+1:]
	}

	if _, err := w.dst.WriteString(field); err != nil {
		return err
	}

	return w.dst.WriteByte(w.Quote)
}

// needsQuote reports whether field must be quoted to read back unchanged.
func (w *Writer) needsQuote(field string) bool {
	for i := range len(field) {
		switch field[i] {
		case w.Comma, w.Quote, '\n', '\r':
			return true
		}
	}

	return false
}

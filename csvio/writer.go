package csvio

import (
	"fmt"
	"io"

	"csv-mapper/internal/csvtext"
	"csv-mapper/record"
)

// Writer writes records as CSV text.
type Writer struct {
	tok        *csvtext.Writer
	layout     *record.Layout
	width      int
	header     bool
	headerDone bool
}

// NewWriter returns a Writer on w. It panics if w is nil.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	cfg := newConfig(opts)

	tok := csvtext.NewWriter(w)
	tok.Comma = cfg.comma
	tok.Quote = cfg.quote
	tok.UseCRLF = cfg.crlf

	width := cfg.columnCount
	if len(cfg.names) > width {
		width = len(cfg.names)
	}

	return &Writer{
		tok:    tok,
		layout: record.NewLayout(cfg.names, cfg.ignoreCase),
		width:  width,
		header: cfg.header && len(cfg.names) > 0,
	}
}

// Layout returns the layout of records created by NewRecord.
func (w *Writer) Layout() *record.Layout { return w.layout }

// NewRecord returns a blank record with the writer's layout and width.
func (w *Writer) NewRecord() *record.Record {
	return record.Blank(w.layout, w.width)
}

// Write writes rec, preceded by the header row on the first call.
func (w *Writer) Write(rec *record.Record) error {
	if w.header && !w.headerDone {
		w.headerDone = true

		if err := w.tok.Write(w.layout.Names()); err != nil {
			return fmt.Errorf("csvio: header: %w", err)
		}
	}

	if err := w.tok.Write(rec.Values()); err != nil {
		return fmt.Errorf("csvio: write: %w", err)
	}

	return nil
}

// Flush writes buffered data to the destination.
func (w *Writer) Flush() error {
	if err := w.tok.Flush(); err != nil {
		return fmt.Errorf("csvio: flush: %w", err)
	}

	return nil
}

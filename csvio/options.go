package csvio

import "slices"

type config struct {
	comma       byte
	quote       byte
	header      bool
	ignoreCase  bool
	reuse       bool
	names       []string
	columnCount int
	crlf        bool
	skipEmpty   bool
	strictWidth bool
}

func newConfig(opts []Option) config {
	cfg := config{
		comma:  ',',
		quote:  '"',
		header: true,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Option configures a Reader or Writer.
type Option func(*config)

// WithSeparator sets the field delimiter. Default is ','.
func WithSeparator(sep byte) Option {
	return func(c *config) {
		c.comma = sep
	}
}

// WithQuote sets the quote character. Default is '"'.
func WithQuote(quote byte) Option {
	return func(c *config) {
		c.quote = quote
	}
}

// WithHeader controls whether the first row holds column names. It is on
// by default. A Writer writes the header before the first record when it
// has column names.
func WithHeader(header bool) Option {
	return func(c *config) {
		c.header = header
	}
}

// WithIgnoreCase makes column-name comparison case-insensitive.
func WithIgnoreCase(ignoreCase bool) Option {
	return func(c *config) {
		c.ignoreCase = ignoreCase
	}
}

// WithReuseRecord makes a Reader return the same *record.Record from every
// Read, replacing its fields in place. Callers must copy a record they want
// to keep.
func WithReuseRecord(reuse bool) Option {
	return func(c *config) {
		c.reuse = reuse
	}
}

// WithColumnNames sets the column names. For a Writer they define the
// layout of new records; for a Reader of headerless data they name the
// columns.
func WithColumnNames(names ...string) Option {
	return func(c *config) {
		c.names = slices.Clone(names)
	}
}

// WithColumnCount sets the width of records created by a headerless Writer.
func WithColumnCount(n int) Option {
	return func(c *config) {
		c.columnCount = n
	}
}

// WithCRLF terminates written records with \r\n.
func WithCRLF(crlf bool) Option {
	return func(c *config) {
		c.crlf = crlf
	}
}

// WithSkipEmptyLines drops lines without any characters when reading.
func WithSkipEmptyLines(skip bool) Option {
	return func(c *config) {
		c.skipEmpty = skip
	}
}

// WithStrictWidth makes a Reader reject records whose width differs from
// the first row.
func WithStrictWidth(strict bool) Option {
	return func(c *config) {
		c.strictWidth = strict
	}
}

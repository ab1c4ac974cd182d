package conv

import "time"

type config struct {
	throwing   bool
	hasDefault bool
	def        any
	format     string
	layout     string
	location   *time.Location
	ignoreCase bool
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	return cfg
}

// Option configures a converter.
type Option func(*config)

// WithThrowing makes Parse return a *FormatError instead of the default
// value when the input cannot be parsed.
func WithThrowing(throwing bool) Option {
	return func(c *config) {
		c.throwing = throwing
	}
}

// WithDefault sets the value returned for blank or (when not throwing)
// unparsable input. The value's dynamic type must match the converter's type
// exactly, and the converter must accept it.
func WithDefault(v any) Option {
	return func(c *config) {
		c.hasDefault = true
		c.def = v
	}
}

// WithFormat sets the numeric or UUID format string.
func WithFormat(format string) Option {
	return func(c *config) {
		c.format = format
	}
}

// WithLayout sets the time layout used by Time. It defaults to
// time.RFC3339Nano.
func WithLayout(layout string) Option {
	return func(c *config) {
		c.layout = layout
	}
}

// WithLocation sets the location used by Time for layouts without a zone.
// It defaults to time.UTC.
func WithLocation(loc *time.Location) Option {
	return func(c *config) {
		c.location = loc
	}
}

// WithIgnoreCase makes Bool and Enum match names case-insensitively.
func WithIgnoreCase(ignoreCase bool) Option {
	return func(c *config) {
		c.ignoreCase = ignoreCase
	}
}

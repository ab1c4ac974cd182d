package conv

import (
	"strings"
	"time"
)

// TimeConverter converts time.Time using a layout string.
type TimeConverter struct {
	base[time.Time]
	layout string
	loc    *time.Location
}

// Time returns a converter for time.Time fields. The layout defaults to
// time.RFC3339Nano, which round-trips; the location defaults to UTC.
func Time(opts ...Option) (*TimeConverter, error) {
	cfg := newConfig(opts)

	b, err := newBase[time.Time](cfg, time.Time{})
	if err != nil {
		return nil, err
	}

	c := &TimeConverter{base: b, layout: cfg.layout, loc: cfg.location}
	if c.layout == "" {
		c.layout = time.RFC3339Nano
	}

	if c.loc == nil {
		c.loc = time.UTC
	}

	if err := checkDefault[time.Time](c); err != nil {
		return nil, err
	}

	return c, nil
}

// Layout returns the layout used for parsing and formatting.
func (c *TimeConverter) Layout() string { return c.layout }

func (c *TimeConverter) TryParse(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(c.layout, strings.TrimSpace(s), c.loc)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

func (c *TimeConverter) Format(v time.Time) string { return v.Format(c.layout) }

// DurationConverter converts time.Duration using Go duration syntax
// such as "1h30m".
type DurationConverter struct {
	base[time.Duration]
}

// Duration returns a converter for time.Duration fields.
func Duration(opts ...Option) (*DurationConverter, error) {
	b, err := newBase[time.Duration](newConfig(opts), 0)
	if err != nil {
		return nil, err
	}

	return &DurationConverter{base: b}, nil
}

func (c *DurationConverter) TryParse(s string) (time.Duration, bool) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}

	return d, true
}

func (c *DurationConverter) Format(v time.Duration) string { return v.String() }

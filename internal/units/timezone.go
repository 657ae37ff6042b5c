package units

import (
	"fmt"
	"time"
)

// DefaultTimeLayout is used for tooltip timestamps when none is configured.
const DefaultTimeLayout = "2006-01-02 15:04 MST"

// LoadLocation resolves an IANA timezone name.
// An empty name and "UTC" both resolve to time.UTC without touching the tz database.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "UTC" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load location: failed to load timezone %s: %w", name, err)
	}
	return loc, nil
}

// TimestampFormatter renders instants in a fixed zone and layout.
type TimestampFormatter struct {
	Location *time.Location
	Layout   string
}

// FormatTimestamp converts t into the formatter's zone and renders it.
func (tf TimestampFormatter) FormatTimestamp(t time.Time) string {
	loc := tf.Location
	if loc == nil {
		loc = time.UTC
	}
	layout := tf.Layout
	if layout == "" {
		layout = DefaultTimeLayout
	}
	return t.In(loc).Format(layout)
}

package note

import (
	"time"

	"github.com/araddon/dateparse"
)

// DisplayLayout is the fixed presentation layout for note timestamps. The
// remote store persists the formatted string as-is, so both CreatedAt and
// UpdatedAt round-trip through this layout.
const DisplayLayout = "Jan 2, 2006, 3:04 PM"

// Timestamp renders t in the display layout.
func Timestamp(t time.Time) string {
	return t.Format(DisplayLayout)
}

// Now is the timestamp source used for creates and blur-commits.
func Now() string {
	return Timestamp(time.Now())
}

// ParseTimestamp parses a stored timestamp string. Parsing is lenient so
// values written by other clients of the same collection still resolve.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(DisplayLayout, s); err == nil {
		return t, nil
	}
	return dateparse.ParseAny(s)
}

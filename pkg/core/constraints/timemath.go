package constraints

import (
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// ParseClock converts a local "HH:MM" time-of-day into fractional hours
func ParseClock(s string) (float64, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return float64(t.Hour()) + float64(t.Minute())/60, nil
}

// ShiftDuration returns the length of a shift in hours. An end time before
// the start time means the shift crosses midnight.
func ShiftDuration(start, end float64) float64 {
	if end < start {
		return (24 - start) + end
	}
	return end - start
}

// isoWeekBounds returns the Monday and Sunday of the ISO week containing d
func isoWeekBounds(d time.Time) (time.Time, time.Time) {
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday
	}
	monday := d.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}

// formatHours renders a fractional hour count without trailing zeros,
// matching the user-facing violation messages (7.5h, 12h)
func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// Package agenda implements the meeting listing pipeline: parsing display
// datetime labels into instants, evaluating filter criteria, and partitioning
// the result into upcoming and past buckets.
//
// The listing stores no normalized timestamps. Each record carries only a
// locale-formatted label ("Hoy, 15:30", "Ayer, 12:07", "21/08/2026, 09:00"),
// so every evaluation re-derives an absolute instant from the label relative
// to an explicit "now". All functions in this package are pure; the caller
// supplies the reference instant, never the system clock.
package agenda

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Relative day labels accepted in display datetimes, matched case-insensitively.
const (
	labelToday     = "hoy"
	labelYesterday = "ayer"
)

// literalDatePattern matches "DD/MM/YYYY" and "DD-MM-YYYY" with 1-2 digit
// day and month.
var literalDatePattern = regexp.MustCompile(`^(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})$`)

// ParseDisplayDatetime resolves a display datetime label to an absolute
// instant, anchored on now for the relative labels. The expected form is
// "<label>, <HH:mm>" where label is "Hoy", "Ayer" or a literal date.
//
// The second return value reports whether the label was parseable. A failed
// parse is not an error condition: callers treat it as "no determinable
// instant" (excluded from day matching, bucketed as past).
func ParseDisplayDatetime(label string, now time.Time) (time.Time, bool) {
	datePart, timePart, found := strings.Cut(label, ",")
	if !found {
		return time.Time{}, false
	}
	datePart = strings.TrimSpace(datePart)
	timePart = strings.TrimSpace(timePart)

	hour, minute, ok := parseClock(timePart)
	if !ok {
		return time.Time{}, false
	}

	switch strings.ToLower(datePart) {
	case labelToday:
		return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()), true
	case labelYesterday:
		y := now.AddDate(0, 0, -1)
		return time.Date(y.Year(), y.Month(), y.Day(), hour, minute, 0, 0, now.Location()), true
	}

	m := literalDatePattern.FindStringSubmatch(datePart)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, now.Location()), true
}

// parseClock parses an "HH:mm" fragment. A non-numeric hour or minute
// invalidates the whole parse rather than defaulting to zero.
func parseClock(s string) (hour, minute int, ok bool) {
	hh, mm, found := strings.Cut(s, ":")
	if !found {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(strings.TrimSpace(mm))
	if err != nil {
		return 0, 0, false
	}
	return hour, minute, true
}

// sameCalendarDay reports whether a and b fall on the same year, month and day.
func sameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

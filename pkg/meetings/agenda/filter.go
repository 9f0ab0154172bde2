package agenda

import (
	"strings"
	"time"

	"github.com/samuhq/samu-cli/pkg/meetings"
)

// EvaluateFilters applies the active filter criteria against each record and
// returns the surviving subset in input order.
//
// Three predicates combine with AND semantics:
//   - host: empty means unconstrained, otherwise a case-insensitive substring
//     match against the record's host;
//   - client: same rule against the record's client;
//   - day: nil selectedDay means unconstrained; a record whose label cannot
//     be parsed is never excluded by the day filter; otherwise the record's
//     derived instant must fall on the same calendar day.
//
// Fields of FilterState beyond Host and Client are reserved and have no
// effect on evaluation. The function is pure and preserves input order;
// ordering by time is the partitioner's concern.
func EvaluateFilters(records []meetings.Record, filters meetings.FilterState, selectedDay *time.Time, now time.Time) []meetings.Record {
	out := make([]meetings.Record, 0, len(records))
	for _, rec := range records {
		if !matchesSubstring(rec.Host, filters.Host) {
			continue
		}
		if !matchesSubstring(rec.Client, filters.Client) {
			continue
		}
		if !matchesDay(rec, selectedDay, now) {
			continue
		}
		out = append(out, rec)
	}
	evaluationsTotal.Inc()
	return out
}

// matchesSubstring reports whether value contains filter case-insensitively.
// An empty filter matches everything.
func matchesSubstring(value, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}

// matchesDay applies the exact-day predicate. Records without a determinable
// instant pass: the day filter only excludes records it can place in time.
func matchesDay(rec meetings.Record, selectedDay *time.Time, now time.Time) bool {
	if selectedDay == nil {
		return true
	}
	instant, ok := ParseDisplayDatetime(rec.Datetime, now)
	if !ok {
		unparseableLabelsTotal.Inc()
		return true
	}
	return sameCalendarDay(instant, *selectedDay)
}

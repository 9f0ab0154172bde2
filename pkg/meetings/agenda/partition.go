package agenda

import (
	"sort"
	"time"

	"github.com/samuhq/samu-cli/pkg/meetings"
)

// Partition splits records into the upcoming and past buckets relative to
// now. A record whose instant is at or after now is upcoming; everything
// else, including records with no determinable instant, is past. The two
// buckets are disjoint and together cover the input exactly.
//
// Upcoming is sorted ascending (soonest first), past descending (most recent
// first). Records that fail to parse sort with an epoch-zero fallback, which
// pushes them to the very end of the past bucket. That mirrors the dashboard
// behavior and is a documented quirk: an unparseable label silently sorts to
// an extreme position instead of being flagged.
func Partition(records []meetings.Record, now time.Time) (upcoming, past []meetings.Record) {
	upcoming = make([]meetings.Record, 0, len(records))
	past = make([]meetings.Record, 0, len(records))

	for _, rec := range records {
		instant, ok := ParseDisplayDatetime(rec.Datetime, now)
		if ok && !instant.Before(now) {
			upcoming = append(upcoming, rec)
		} else {
			past = append(past, rec)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return sortInstant(upcoming[i], now) < sortInstant(upcoming[j], now)
	})
	sort.SliceStable(past, func(i, j int) bool {
		return sortInstant(past[i], now) > sortInstant(past[j], now)
	})

	return upcoming, past
}

// sortInstant derives the sort key for a record: the parsed instant in unix
// milliseconds, or 0 (epoch) when the label is unparseable.
func sortInstant(rec meetings.Record, now time.Time) int64 {
	instant, ok := ParseDisplayDatetime(rec.Datetime, now)
	if !ok {
		return 0
	}
	return instant.UnixMilli()
}

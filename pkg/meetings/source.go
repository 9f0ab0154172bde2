package meetings

import (
	"context"
	"fmt"

	pferrors "github.com/samuhq/samu-cli/pkg/errors"
)

// Source provides meeting records to the listing pipeline. The core treats
// the source as a black box: in production it would be backed by the Samu
// platform API, locally it is the static seed or a Postgres repository.
type Source interface {
	// List returns all meeting records known to the source.
	List(ctx context.Context) ([]Record, error)

	// Get returns the full detail for one meeting.
	Get(ctx context.Context, id string) (*Detail, error)

	// Schedule returns the agenda events for the current day.
	Schedule(ctx context.Context) ([]ScheduleEvent, error)
}

// StaticSource serves the built-in seed data. It is the default source when
// no database is configured and is safe for concurrent reads: the seed is
// never mutated after package initialization.
type StaticSource struct{}

// NewStaticSource returns a Source over the built-in seed data.
func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

// List returns copies of the seed records.
func (s *StaticSource) List(ctx context.Context) ([]Record, error) {
	out := make([]Record, len(seedRecords))
	copy(out, seedRecords)
	return out, nil
}

// Get returns the seed detail for the given meeting ID.
func (s *StaticSource) Get(ctx context.Context, id string) (*Detail, error) {
	detail, ok := seedDetails[id]
	if !ok {
		return nil, fmt.Errorf("meeting %s: %w", id, pferrors.ErrNotFound)
	}
	// Copy so callers cannot mutate the seed through the returned pointer.
	d := detail
	return &d, nil
}

// Schedule returns the seed agenda events.
func (s *StaticSource) Schedule(ctx context.Context) ([]ScheduleEvent, error) {
	out := make([]ScheduleEvent, len(seedSchedule))
	copy(out, seedSchedule)
	return out, nil
}

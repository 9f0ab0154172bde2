package meetings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	pferrors "github.com/samuhq/samu-cli/pkg/errors"
	"github.com/samuhq/samu-cli/pkg/logging"
)

// Repository is a Source backed by PostgreSQL. Nested collections on the
// detail row (participants, actions, objections, transcript, insights) are
// stored as jsonb columns and unmarshaled on read.
type Repository struct {
	pool *pgxpool.Pool
	log  logging.Logger
}

// NewRepository creates a Repository over the given connection pool.
func NewRepository(pool *pgxpool.Pool, log logging.Logger) *Repository {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Repository{pool: pool, log: log}
}

// List returns all meeting records ordered by their display datetime label's
// insertion order. Ordering is the caller's concern: the listing pipeline
// partitions and sorts records itself.
func (r *Repository) List(ctx context.Context) ([]Record, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, host, client, datetime_label, duration, tag, thumb_index, pending_tasks
		FROM meetings
		ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("query meetings: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID, &rec.Title, &rec.Host, &rec.Client, &rec.Datetime,
			&rec.Duration, &rec.Tag, &rec.ThumbIndex, &rec.PendingTasks,
		); err != nil {
			return nil, fmt.Errorf("scan meeting row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meetings: %w", err)
	}

	r.log.Debug("listed meetings from database", logging.F("count", len(records)))
	return records, nil
}

// Get returns the full detail for one meeting.
func (r *Repository) Get(ctx context.Context, id string) (*Detail, error) {
	var detail Detail
	var participants, actions, objections, transcript, insights []byte

	err := r.pool.QueryRow(ctx, `
		SELECT m.id, m.title, m.host, m.client, m.datetime_label, m.duration,
		       m.tag, m.thumb_index, m.pending_tasks,
		       d.type, d.seller, d.duration_min, d.summary, d.sentiment,
		       d.participants, d.actions, d.objections, d.transcript, d.insights
		FROM meetings m
		JOIN meeting_details d ON d.meeting_id = m.id
		WHERE m.id = $1`, id).Scan(
		&detail.ID, &detail.Title, &detail.Host, &detail.Client, &detail.Datetime,
		&detail.Duration, &detail.Tag, &detail.ThumbIndex, &detail.PendingTasks,
		&detail.Type, &detail.Seller, &detail.DurationMin, &detail.Summary, &detail.Sentiment,
		&participants, &actions, &objections, &transcript, &insights,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("meeting %s: %w", id, pferrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query meeting %s: %w", id, err)
	}

	for _, col := range []struct {
		raw  []byte
		dest interface{}
		name string
	}{
		{participants, &detail.Participants, "participants"},
		{actions, &detail.Actions, "actions"},
		{objections, &detail.Objections, "objections"},
		{transcript, &detail.Transcript, "transcript"},
		{insights, &detail.Insights, "insights"},
	} {
		if len(col.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(col.raw, col.dest); err != nil {
			return nil, fmt.Errorf("decode %s for meeting %s: %w", col.name, id, err)
		}
	}

	return &detail, nil
}

// Schedule returns the agenda events for the current day.
func (r *Repository) Schedule(ctx context.Context) ([]ScheduleEvent, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, start_offset_ms, end_offset_ms, tag, location, pending_tasks, tasks
		FROM schedule_events
		ORDER BY start_offset_ms`)
	if err != nil {
		return nil, fmt.Errorf("query schedule: %w", err)
	}
	defer rows.Close()

	var events []ScheduleEvent
	for rows.Next() {
		var ev ScheduleEvent
		var startMs, endMs int64
		var tasks []byte
		if err := rows.Scan(&ev.ID, &ev.Title, &startMs, &endMs, &ev.Tag, &ev.Location, &ev.PendingTasks, &tasks); err != nil {
			return nil, fmt.Errorf("scan schedule row: %w", err)
		}
		ev.Start = time.Duration(startMs) * time.Millisecond
		ev.End = time.Duration(endMs) * time.Millisecond
		if len(tasks) > 0 {
			if err := json.Unmarshal(tasks, &ev.Tasks); err != nil {
				return nil, fmt.Errorf("decode tasks for event %s: %w", ev.ID, err)
			}
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedule: %w", err)
	}

	return events, nil
}

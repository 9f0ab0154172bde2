package meetings

import (
	"context"
	"errors"
	"testing"
	"time"

	pferrors "github.com/samuhq/samu-cli/pkg/errors"
)

func TestStaticSource_List(t *testing.T) {
	source := NewStaticSource()

	records, err := source.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("List() returned %d records, want 3", len(records))
	}

	// Mutating the returned slice must not touch the seed.
	records[0].Title = "mutated"
	again, err := source.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if again[0].Title == "mutated" {
		t.Error("List() mutation leaked into the seed data")
	}
}

func TestStaticSource_Get(t *testing.T) {
	source := NewStaticSource()

	detail, err := source.Get(context.Background(), "2")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if detail.ID != "2" {
		t.Errorf("Get() ID = %q, want 2", detail.ID)
	}
	if len(detail.Participants) == 0 {
		t.Error("Get() detail should include participants")
	}
	if len(detail.Transcript) == 0 {
		t.Error("Get() detail should include the transcript")
	}
	if len(detail.Objections) == 0 {
		t.Error("Get() detail should include objections")
	}
}

func TestStaticSource_GetNotFound(t *testing.T) {
	source := NewStaticSource()

	_, err := source.Get(context.Background(), "999")
	if !errors.Is(err, pferrors.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestStaticSource_GetReturnsCopy(t *testing.T) {
	source := NewStaticSource()

	first, err := source.Get(context.Background(), "1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	first.Summary = "mutated"

	second, err := source.Get(context.Background(), "1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if second.Summary == "mutated" {
		t.Error("Get() mutation leaked into the seed data")
	}
}

func TestStaticSource_Schedule(t *testing.T) {
	source := NewStaticSource()

	events, err := source.Schedule(context.Background())
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}
	if len(events) != 6 {
		t.Fatalf("Schedule() returned %d events, want 6", len(events))
	}

	var withTasks int
	for _, ev := range events {
		if len(ev.Tasks) > 0 {
			withTasks++
		}
	}
	if withTasks == 0 {
		t.Error("Schedule() should include events with attached tasks")
	}
}

func TestScheduleEvent_Anchoring(t *testing.T) {
	ev := ScheduleEvent{
		Start: 12 * time.Hour,
		End:   12*time.Hour + 15*time.Minute,
	}

	ref := time.Date(2026, time.August, 21, 15, 45, 0, 0, time.UTC)
	start := ev.StartAt(ref)
	end := ev.EndAt(ref)

	wantStart := time.Date(2026, time.August, 21, 12, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("StartAt() = %v, want %v", start, wantStart)
	}
	if got := end.Sub(start); got != 15*time.Minute {
		t.Errorf("event length = %v, want 15m", got)
	}
}

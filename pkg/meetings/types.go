// Package meetings defines the meeting domain model for the Samu CLI.
// A meeting is one recorded or scheduled sales call, as sourced from an
// external listing. The only persisted time representation is the display
// datetime label; all temporal reasoning re-derives an instant from it.
package meetings

import "time"

// Record represents one row in the meeting listing.
// Records are immutable within a refresh cycle.
type Record struct {
	// ID is an opaque unique identifier.
	ID string `json:"id" yaml:"id"`

	// Title is the meeting display title.
	Title string `json:"title" yaml:"title"`

	// Host is the organizing party's display name or role.
	Host string `json:"host" yaml:"host"`

	// Client is the counterparty display name.
	Client string `json:"client" yaml:"client"`

	// Datetime is the display-formatted datetime label, e.g. "Hoy, 15:30",
	// "Ayer, 12:07" or "21/08/2026, 09:00". It is NOT a normalized timestamp.
	Datetime string `json:"datetime" yaml:"datetime"`

	// Duration is a display string like "54:00". Not used in temporal logic.
	Duration string `json:"duration,omitempty" yaml:"duration,omitempty"`

	// Tag is optional display metadata, e.g. "Ventas • Baseline".
	Tag string `json:"tag,omitempty" yaml:"tag,omitempty"`

	// Source is the recording platform, if known.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// ThumbIndex selects a thumbnail variant. Display only.
	ThumbIndex int `json:"thumb_index,omitempty" yaml:"thumb_index,omitempty"`

	// PendingTasks is the count of open follow-up tasks. Display only.
	PendingTasks int `json:"pending_tasks,omitempty" yaml:"pending_tasks,omitempty"`
}

// FilterState holds the active filter criteria for the meeting listing.
// An empty or zero value means "no constraint"; present filters combine
// with AND semantics.
//
// Only Host, Client and the selected day are consulted by the evaluator.
// The remaining fields are part of the declared filter surface of the
// dashboard but are reserved extension points and currently inert.
type FilterState struct {
	Host   string `json:"host" yaml:"host"`
	Client string `json:"client" yaml:"client"`

	// Reserved criteria, accepted but not yet wired into evaluation.
	Name         string     `json:"name,omitempty" yaml:"name,omitempty"`
	Link         string     `json:"link,omitempty" yaml:"link,omitempty"`
	Origins      []string   `json:"origins,omitempty" yaml:"origins,omitempty"`
	Teams        []string   `json:"teams,omitempty" yaml:"teams,omitempty"`
	CallTypes    []string   `json:"call_types,omitempty" yaml:"call_types,omitempty"`
	HubSpot      string     `json:"hubspot,omitempty" yaml:"hubspot,omitempty"`
	Zoho         string     `json:"zoho,omitempty" yaml:"zoho,omitempty"`
	Score        [2]float64 `json:"score,omitempty" yaml:"score,omitempty"`
	Libraries    []string   `json:"libraries,omitempty" yaml:"libraries,omitempty"`
	Topics       []string   `json:"topics,omitempty" yaml:"topics,omitempty"`
	Participants [2]int     `json:"participants,omitempty" yaml:"participants,omitempty"`
	Duration     [2]int     `json:"duration,omitempty" yaml:"duration,omitempty"`
	View         string     `json:"view,omitempty" yaml:"view,omitempty"`
}

// ParticipantRole distinguishes the hosting side from the client side.
type ParticipantRole string

const (
	RoleHost   ParticipantRole = "host"
	RoleClient ParticipantRole = "client"
)

// Participant is one attendee of a meeting.
type Participant struct {
	ID           string          `json:"id" yaml:"id"`
	Name         string          `json:"name" yaml:"name"`
	Email        string          `json:"email" yaml:"email"`
	Organization string          `json:"organization" yaml:"organization"`
	Role         ParticipantRole `json:"role" yaml:"role"`
	SpeakPct     int             `json:"speak_pct" yaml:"speak_pct"`
}

// ObjectionStatus captures how an objection was handled during the call.
type ObjectionStatus string

const (
	ObjectionHandled     ObjectionStatus = "handled"
	ObjectionImprovement ObjectionStatus = "improvement"
	ObjectionNotHandled  ObjectionStatus = "not-handled"
)

// Objection is an extracted buyer objection with its handling outcome.
type Objection struct {
	ID     string          `json:"id" yaml:"id"`
	Text   string          `json:"text" yaml:"text"`
	Status ObjectionStatus `json:"status" yaml:"status"`
}

// ActionItem is a follow-up task extracted from a meeting.
type ActionItem struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Done  bool   `json:"done" yaml:"done"`
}

// TranscriptEntry is one utterance in the meeting transcript.
type TranscriptEntry struct {
	// Offset is the position within the recording, e.g. "03:12".
	Offset  string `json:"offset" yaml:"offset"`
	Speaker string `json:"speaker" yaml:"speaker"`
	Text    string `json:"text" yaml:"text"`
}

// InsightSection groups the extractor output under one heading,
// e.g. identified pain points or suggested next steps.
type InsightSection struct {
	Label string   `json:"label" yaml:"label"`
	Items []string `json:"items" yaml:"items"`
}

// Detail is the full per-meeting view: listing metadata plus the
// intelligence outputs rendered on the detail page.
type Detail struct {
	Record `yaml:",inline"`

	Type         string            `json:"type,omitempty" yaml:"type,omitempty"`
	Seller       string            `json:"seller,omitempty" yaml:"seller,omitempty"`
	DurationMin  int               `json:"duration_min,omitempty" yaml:"duration_min,omitempty"`
	Summary      string            `json:"summary,omitempty" yaml:"summary,omitempty"`
	Participants []Participant     `json:"participants,omitempty" yaml:"participants,omitempty"`
	Actions      []ActionItem      `json:"actions,omitempty" yaml:"actions,omitempty"`
	Objections   []Objection       `json:"objections,omitempty" yaml:"objections,omitempty"`
	Transcript   []TranscriptEntry `json:"transcript,omitempty" yaml:"transcript,omitempty"`
	Insights     []InsightSection  `json:"insights,omitempty" yaml:"insights,omitempty"`
	Sentiment    string            `json:"sentiment,omitempty" yaml:"sentiment,omitempty"`
}

// ScheduleTask is one to-do attached to a schedule event.
type ScheduleTask struct {
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	Completed   bool   `json:"completed" yaml:"completed"`
}

// ScheduleEvent is one slot in the day's agenda. Start and End are offsets
// from midnight of the event's day; the agenda always describes "today"
// relative to the evaluation instant.
type ScheduleEvent struct {
	ID           string         `json:"id" yaml:"id"`
	Title        string         `json:"title" yaml:"title"`
	Start        time.Duration  `json:"start_offset" yaml:"start_offset"`
	End          time.Duration  `json:"end_offset" yaml:"end_offset"`
	Tag          string         `json:"tag,omitempty" yaml:"tag,omitempty"`
	Location     string         `json:"location,omitempty" yaml:"location,omitempty"`
	PendingTasks int            `json:"pending_tasks,omitempty" yaml:"pending_tasks,omitempty"`
	Tasks        []ScheduleTask `json:"tasks,omitempty" yaml:"tasks,omitempty"`
}

// StartAt anchors the event's start offset on the calendar day of ref.
func (e ScheduleEvent) StartAt(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location()).Add(e.Start)
}

// EndAt anchors the event's end offset on the calendar day of ref.
func (e ScheduleEvent) EndAt(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location()).Add(e.End)
}

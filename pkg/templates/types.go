// Package templates manages follow-up generation templates: the reusable
// prompts that turn a finished sales call into an email or a task list.
package templates

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	pferrors "github.com/samuhq/samu-cli/pkg/errors"
)

// Kind distinguishes what a template generates.
type Kind string

const (
	KindEmail Kind = "email"
	KindTask  Kind = "task"
)

// Status is the publication state of a template. Only published templates are
// offered when generating follow-ups.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Template is a reusable follow-up generation prompt.
type Template struct {
	ID       uuid.UUID `json:"id" yaml:"id"`
	Kind     Kind      `json:"kind" yaml:"kind"`
	Title    string    `json:"title" yaml:"title"`
	Author   string    `json:"author" yaml:"author"`
	Status   Status    `json:"status" yaml:"status"`
	Language string    `json:"language,omitempty" yaml:"language,omitempty"`
	Tone     string    `json:"tone,omitempty" yaml:"tone,omitempty"`
	Length   string    `json:"length,omitempty" yaml:"length,omitempty"`

	// Prompt holds the instructions used to generate the follow-up from the
	// meeting content.
	Prompt string `json:"prompt" yaml:"prompt"`

	// InsertCallLink controls whether the generated email embeds a link back
	// to the call recording. Only meaningful for email templates.
	InsertCallLink bool `json:"insert_call_link,omitempty" yaml:"insert_call_link,omitempty"`

	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// Validate checks the template fields. It returns an error wrapping
// ErrValidation when a field is missing or out of range.
func (t *Template) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("template title is required: %w", pferrors.ErrValidation)
	}
	switch t.Kind {
	case KindEmail, KindTask:
	default:
		return fmt.Errorf("unknown template kind %q: %w", t.Kind, pferrors.ErrValidation)
	}
	switch t.Status {
	case StatusDraft, StatusPublished:
	default:
		return fmt.Errorf("unknown template status %q: %w", t.Status, pferrors.ErrValidation)
	}
	if t.Kind == KindTask && t.InsertCallLink {
		return fmt.Errorf("task templates cannot embed call links: %w", pferrors.ErrValidation)
	}
	return nil
}

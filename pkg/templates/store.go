package templates

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	pferrors "github.com/samuhq/samu-cli/pkg/errors"
)

// Store is the interface for template persistence.
type Store interface {
	// List returns templates of the given kind, most recently updated first.
	// An empty kind returns all templates.
	List(ctx context.Context, kind Kind) ([]Template, error)

	// Get returns the template with the given ID.
	Get(ctx context.Context, id uuid.UUID) (*Template, error)

	// Create persists a new template. The ID and UpdatedAt fields are set by
	// the store.
	Create(ctx context.Context, t *Template) error

	// Update replaces an existing template. UpdatedAt is refreshed.
	Update(ctx context.Context, t *Template) error

	// Delete removes the template with the given ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// MemStore is an in-memory Store. It is the default backend when no database
// is configured, seeded with the built-in demo templates.
type MemStore struct {
	mu        sync.RWMutex
	templates map[uuid.UUID]Template
	now       func() time.Time
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		templates: make(map[uuid.UUID]Template),
		now:       time.Now,
	}
}

// NewSeededMemStore returns an in-memory store preloaded with the built-in
// demo templates.
func NewSeededMemStore() *MemStore {
	s := NewMemStore()
	for _, t := range seedTemplates {
		s.templates[t.ID] = t
	}
	return s
}

// List returns templates of the given kind sorted by UpdatedAt descending.
func (s *MemStore) List(ctx context.Context, kind Kind) ([]Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Template, 0, len(s.templates))
	for _, t := range s.templates {
		if kind != "" && t.Kind != kind {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].Title < out[j].Title
	})
	return out, nil
}

// Get returns the template with the given ID.
func (s *MemStore) Get(ctx context.Context, id uuid.UUID) (*Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.templates[id]
	if !ok {
		return nil, fmt.Errorf("template %s: %w", id, pferrors.ErrNotFound)
	}
	return &t, nil
}

// Create persists a new template.
func (s *MemStore) Create(ctx context.Context, t *Template) error {
	if err := t.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	} else if _, exists := s.templates[t.ID]; exists {
		return fmt.Errorf("template %s: %w", t.ID, pferrors.ErrAlreadyExists)
	}
	t.UpdatedAt = s.now()
	s.templates[t.ID] = *t
	return nil
}

// Update replaces an existing template.
func (s *MemStore) Update(ctx context.Context, t *Template) error {
	if err := t.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.templates[t.ID]; !ok {
		return fmt.Errorf("template %s: %w", t.ID, pferrors.ErrNotFound)
	}
	t.UpdatedAt = s.now()
	s.templates[t.ID] = *t
	return nil
}

// Delete removes the template with the given ID.
func (s *MemStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.templates[id]; !ok {
		return fmt.Errorf("template %s: %w", id, pferrors.ErrNotFound)
	}
	delete(s.templates, id)
	return nil
}

// Duplicate copies an existing template into a new draft. The copy gets a
// fresh ID, a "(copia)" suffix on the title, and always starts as a draft
// regardless of the original's status.
func Duplicate(ctx context.Context, store Store, id uuid.UUID) (*Template, error) {
	orig, err := store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	dup := *orig
	dup.ID = uuid.Nil
	dup.Title = orig.Title + " (copia)"
	dup.Status = StatusDraft

	if err := store.Create(ctx, &dup); err != nil {
		return nil, fmt.Errorf("duplicate template %s: %w", id, err)
	}
	return &dup, nil
}

package templates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	pferrors "github.com/samuhq/samu-cli/pkg/errors"
)

// Repository is a Store backed by PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewRepository creates a Repository over the given connection pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool, now: time.Now}
}

const templateColumns = `id, kind, title, author, status, language, tone, length, prompt, insert_call_link, updated_at`

func scanTemplate(row pgx.Row) (*Template, error) {
	var t Template
	err := row.Scan(
		&t.ID, &t.Kind, &t.Title, &t.Author, &t.Status,
		&t.Language, &t.Tone, &t.Length, &t.Prompt, &t.InsertCallLink, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns templates of the given kind, most recently updated first.
func (r *Repository) List(ctx context.Context, kind Kind) ([]Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates`
	args := []interface{}{}
	if kind != "" {
		query += ` WHERE kind = $1`
		args = append(args, kind)
	}
	query += ` ORDER BY updated_at DESC, title`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	defer rows.Close()

	var out []Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template row: %w", err)
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate templates: %w", err)
	}
	return out, nil
}

// Get returns the template with the given ID.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*Template, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+templateColumns+` FROM templates WHERE id = $1`, id)
	t, err := scanTemplate(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("template %s: %w", id, pferrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query template %s: %w", id, err)
	}
	return t, nil
}

// Create persists a new template.
func (r *Repository) Create(ctx context.Context, t *Template) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.UpdatedAt = r.now()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO templates (`+templateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		t.ID, t.Kind, t.Title, t.Author, t.Status,
		t.Language, t.Tone, t.Length, t.Prompt, t.InsertCallLink, t.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("template %s: %w", t.ID, pferrors.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

// Update replaces an existing template.
func (r *Repository) Update(ctx context.Context, t *Template) error {
	if err := t.Validate(); err != nil {
		return err
	}
	t.UpdatedAt = r.now()

	tag, err := r.pool.Exec(ctx, `
		UPDATE templates
		SET kind = $2, title = $3, author = $4, status = $5, language = $6,
		    tone = $7, length = $8, prompt = $9, insert_call_link = $10, updated_at = $11
		WHERE id = $1`,
		t.ID, t.Kind, t.Title, t.Author, t.Status,
		t.Language, t.Tone, t.Length, t.Prompt, t.InsertCallLink, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update template %s: %w", t.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("template %s: %w", t.ID, pferrors.ErrNotFound)
	}
	return nil
}

// Delete removes the template with the given ID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete template %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("template %s: %w", id, pferrors.ErrNotFound)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

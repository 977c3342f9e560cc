package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
)

// PostgresPromptRepository implements PromptRepository using PostgreSQL.
type PostgresPromptRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPromptRepository creates a new PostgresPromptRepository.
func NewPostgresPromptRepository(pool *pgxpool.Pool) *PostgresPromptRepository {
	return &PostgresPromptRepository{pool: pool}
}

const promptColumns = `id, title, body, category, tags, created_at, updated_at`

func scanPrompt(row pgx.Row) (domain.Prompt, error) {
	var p domain.Prompt
	err := row.Scan(&p.ID, &p.Title, &p.Body, &p.Category, &p.Tags, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// Create inserts a new prompt.
func (r *PostgresPromptRepository) Create(ctx context.Context, prompt *domain.Prompt) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO prompts (`+promptColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, prompt.ID, prompt.Title, prompt.Body, prompt.Category, nonNilTags(prompt.Tags),
		prompt.CreatedAt, prompt.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert prompt: %w", err)
	}
	return nil
}

// Get retrieves a prompt by ID.
func (r *PostgresPromptRepository) Get(ctx context.Context, id string) (*domain.Prompt, error) {
	p, err := scanPrompt(r.pool.QueryRow(ctx, `SELECT `+promptColumns+` FROM prompts WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get prompt: %w", err)
	}
	return &p, nil
}

// Update replaces an existing prompt.
func (r *PostgresPromptRepository) Update(ctx context.Context, prompt *domain.Prompt) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE prompts
		SET title = $2, body = $3, category = $4, tags = $5, updated_at = $6
		WHERE id = $1
	`, prompt.ID, prompt.Title, prompt.Body, prompt.Category, nonNilTags(prompt.Tags), prompt.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update prompt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a prompt.
func (r *PostgresPromptRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM prompts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete prompt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns the prompts of category, or all of them when category is empty.
func (r *PostgresPromptRepository) List(ctx context.Context, category string) ([]domain.Prompt, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+promptColumns+`
		FROM prompts
		WHERE $1 = '' OR category = $1
		ORDER BY created_at, id
	`, category)
	if err != nil {
		return nil, fmt.Errorf("query prompts: %w", err)
	}
	defer rows.Close()

	prompts := make([]domain.Prompt, 0)
	for rows.Next() {
		p, err := scanPrompt(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prompt: %w", err)
		}
		prompts = append(prompts, p)
	}
	return prompts, rows.Err()
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
)

// PostgresTaskRepository implements TaskRepository using PostgreSQL.
type PostgresTaskRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTaskRepository creates a new PostgresTaskRepository.
func NewPostgresTaskRepository(pool *pgxpool.Pool) *PostgresTaskRepository {
	return &PostgresTaskRepository{pool: pool}
}

const taskColumns = `id, title, description, status, content_id, content_title,
			due_date, assignee, tags, created_at, updated_at`

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func taskArgs(t *domain.Task) []any {
	return []any{t.ID, t.Title, t.Description, t.Status, t.ContentID, t.ContentTitle,
		t.DueDate, t.Assignee, nonNilTags(t.Tags), t.CreatedAt, t.UpdatedAt}
}

func scanTask(row pgx.Row) (domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.ContentID, &t.ContentTitle,
		&t.DueDate, &t.Assignee, &t.Tags, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// Create inserts a new task.
func (r *PostgresTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, taskArgs(task)...)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// Get retrieves a task by ID.
func (r *PostgresTaskRepository) Get(ctx context.Context, id string) (*domain.Task, error) {
	t, err := scanTask(r.pool.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

// Update replaces an existing task.
func (r *PostgresTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE tasks
		SET title = $2, description = $3, status = $4, content_id = $5, content_title = $6,
			due_date = $7, assignee = $8, tags = $9, updated_at = $10
		WHERE id = $1
	`, task.ID, task.Title, task.Description, task.Status, task.ContentID, task.ContentTitle,
		task.DueDate, task.Assignee, nonNilTags(task.Tags), task.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Upsert inserts a task or replaces the one with the same id.
func (r *PostgresTaskRepository) Upsert(ctx context.Context, task *domain.Task) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title, description = EXCLUDED.description, status = EXCLUDED.status,
			content_id = EXCLUDED.content_id, content_title = EXCLUDED.content_title,
			due_date = EXCLUDED.due_date, assignee = EXCLUDED.assignee, tags = EXCLUDED.tags,
			updated_at = EXCLUDED.updated_at
	`, taskArgs(task)...)
	if err != nil {
		return fmt.Errorf("upsert task: %w", err)
	}
	return nil
}

// Delete removes a task.
func (r *PostgresTaskRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns every task, oldest first.
func (r *PostgresTaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

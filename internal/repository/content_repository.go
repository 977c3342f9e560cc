package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/logger"
)

// PostgresContentRepository implements ContentRepository using PostgreSQL.
// The whole aggregate is kept in a JSONB document so that legacy records
// keep absent fields absent; title and tags are duplicated into columns for
// searching.
type PostgresContentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresContentRepository creates a new PostgresContentRepository.
func NewPostgresContentRepository(pool *pgxpool.Pool) *PostgresContentRepository {
	return &PostgresContentRepository{pool: pool}
}

func encodeContent(item *domain.ContentItem) ([]byte, []string, error) {
	doc, err := json.Marshal(item)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal content: %w", err)
	}
	return doc, nonNilTags(item.Tags), nil
}

func decodeContent(id string, doc []byte) (domain.ContentItem, error) {
	var item domain.ContentItem
	if err := json.Unmarshal(doc, &item); err != nil {
		return item, fmt.Errorf("unmarshal content %s: %w", id, err)
	}
	item.ID = id
	return item, nil
}

// reconciledFields returns the stored fields SaveReconciled writes. Absent
// statuses stay absent.
func reconciledFields(item *domain.ContentItem) map[string]any {
	fields := make(map[string]any, 3)
	if item.StatusEs != "" {
		fields["statusEs"] = item.StatusEs
	}
	if item.StatusEn != "" {
		fields["statusEn"] = item.StatusEn
	}
	if item.PlatformStatus != nil {
		fields["platformStatus"] = item.PlatformStatus
	}
	return fields
}

// Create inserts a new content item.
func (r *PostgresContentRepository) Create(ctx context.Context, item *domain.ContentItem) error {
	doc, tags, err := encodeContent(item)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO content_items (id, title, tags, doc, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, item.ID, item.Title, tags, doc, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert content: %w", err)
	}

	return nil
}

// Get retrieves a content item by ID.
func (r *PostgresContentRepository) Get(ctx context.Context, id string) (*domain.ContentItem, error) {
	var doc []byte
	err := r.pool.QueryRow(ctx, `SELECT doc FROM content_items WHERE id = $1`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}

	item, err := decodeContent(id, doc)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update replaces an existing content item.
func (r *PostgresContentRepository) Update(ctx context.Context, item *domain.ContentItem) error {
	doc, tags, err := encodeContent(item)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE content_items
		SET title = $2, tags = $3, doc = $4, updated_at = $5
		WHERE id = $1
	`, item.ID, item.Title, tags, doc, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update content: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Save inserts or replaces a content item.
func (r *PostgresContentRepository) Save(ctx context.Context, item *domain.ContentItem) error {
	doc, tags, err := encodeContent(item)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO content_items (id, title, tags, doc, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title, tags = EXCLUDED.tags, doc = EXCLUDED.doc, updated_at = EXCLUDED.updated_at
	`, item.ID, item.Title, tags, doc, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save content: %w", err)
	}

	return nil
}

// Delete removes a content item with everything it holds.
func (r *PostgresContentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM content_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns the items matching filter, oldest first.
func (r *PostgresContentRepository) List(ctx context.Context, filter ContentFilter) ([]domain.ContentItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, doc
		FROM content_items
		WHERE ($1 = '' OR title ILIKE '%' || $1 || '%'
			OR doc->>'descriptionEs' ILIKE '%' || $1 || '%'
			OR doc->>'descriptionEn' ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR $2 = ANY(tags))
		ORDER BY created_at
	`, filter.Query, filter.Tag)
	if err != nil {
		return nil, fmt.Errorf("query content: %w", err)
	}
	defer rows.Close()

	items := make([]domain.ContentItem, 0)
	for rows.Next() {
		var id string
		var doc []byte
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		item, err := decodeContent(id, doc)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// StreamAll streams all content items with O(1) memory.
func (r *PostgresContentRepository) StreamAll(ctx context.Context, callback func(domain.ContentItem) error) error {
	rows, err := r.pool.Query(ctx, `SELECT id, doc FROM content_items ORDER BY created_at, id`)
	if err != nil {
		return fmt.Errorf("query content: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var doc []byte
		if err := rows.Scan(&id, &doc); err != nil {
			return fmt.Errorf("scan content: %w", err)
		}
		item, err := decodeContent(id, doc)
		if err != nil {
			return err
		}

		if err := callback(item); err != nil {
			return fmt.Errorf("callback error: %w", err)
		}
	}

	return rows.Err()
}

// contentRow is the archived form of one content_items row.
type contentRow struct {
	Title     string          `json:"title"`
	Tags      []string        `json:"tags"`
	Doc       json.RawMessage `json:"doc"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// StreamRecords streams every row. A document that does not decode is
// delivered with its error.
func (r *PostgresContentRepository) StreamRecords(ctx context.Context, callback func(ContentRecord) error) error {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, tags, doc, created_at, updated_at
		FROM content_items
		ORDER BY created_at, id
	`)
	if err != nil {
		return fmt.Errorf("query content: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec ContentRecord
		var row contentRow
		var doc []byte
		if err := rows.Scan(&rec.ID, &row.Title, &row.Tags, &doc, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return fmt.Errorf("scan content: %w", err)
		}
		row.Doc = doc

		raw, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("encode content row %s: %w", rec.ID, err)
		}
		rec.Raw = raw
		rec.Item, rec.Err = decodeContent(rec.ID, doc)

		if err := callback(rec); err != nil {
			return fmt.Errorf("callback error: %w", err)
		}
	}

	return rows.Err()
}

// SaveReconciled merges the reconciled fields into the stored document.
func (r *PostgresContentRepository) SaveReconciled(ctx context.Context, item *domain.ContentItem) error {
	fields := reconciledFields(item)
	if len(fields) == 0 {
		return nil
	}
	patch, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal reconciled fields: %w", err)
	}

	result, err := r.pool.Exec(ctx, `
		UPDATE content_items SET doc = doc || $2::jsonb WHERE id = $1
	`, item.ID, patch)
	if err != nil {
		return fmt.Errorf("save reconciled content: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RestoreRecords swaps the whole collection for the archived rows in one
// transaction.
func (r *PostgresContentRepository) RestoreRecords(ctx context.Context, records []ContentRecord) error {
	rowsToCopy := make([][]any, 0, len(records))
	for _, rec := range records {
		var row contentRow
		if err := json.Unmarshal(rec.Raw, &row); err != nil {
			return fmt.Errorf("decode archived row %s: %w", rec.ID, err)
		}
		rowsToCopy = append(rowsToCopy, []any{rec.ID, row.Title, nonNilTags(row.Tags), []byte(row.Doc), row.CreatedAt, row.UpdatedAt})
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM content_items`); err != nil {
		return fmt.Errorf("clear content: %w", err)
	}

	copied, err := tx.CopyFrom(ctx,
		pgx.Identifier{"content_items"},
		[]string{"id", "title", "tags", "doc", "created_at", "updated_at"},
		pgx.CopyFromRows(rowsToCopy),
	)
	if err != nil {
		return fmt.Errorf("copy content: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit restore: %w", err)
	}

	logger.Default().Info("Content collection restored",
		slog.String("repository", "content"),
		slog.Int64("rows", copied))
	return nil
}

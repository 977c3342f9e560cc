package repository

import (
	"context"
	"encoding/json"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
)

// ContentFilter narrows a content search. Empty fields match everything.
type ContentFilter struct {
	Query string
	Tag   string
}

// ContentRecord is one stored content record as the reconciler reads it.
// Raw is the record exactly as the backend stores it, so archives keep
// fields ContentItem does not model. Err is set, and Item left empty, when
// Raw could not be decoded.
type ContentRecord struct {
	ID   string
	Raw  json.RawMessage
	Item domain.ContentItem
	Err  error
}

// ContentStore is the part of content storage the migration reconciler
// needs. It is implemented by every backend, including the legacy MongoDB
// collection.
type ContentStore interface {
	// StreamRecords calls callback once per stored record. Records that do
	// not decode are delivered with Err set instead of ending the stream.
	StreamRecords(ctx context.Context, callback func(ContentRecord) error) error
	// SaveReconciled writes the top-level statuses and the platform blocks
	// of item. Every other stored field is left as it is.
	SaveReconciled(ctx context.Context, item *domain.ContentItem) error
	// RestoreRecords replaces the whole collection with records read by
	// StreamRecords of the same backend.
	RestoreRecords(ctx context.Context, records []ContentRecord) error
}

// ContentRepository defines methods for content data access.
// Get, Update and Delete return domain.ErrNotFound for unknown ids.
type ContentRepository interface {
	ContentStore
	StreamAll(ctx context.Context, callback func(domain.ContentItem) error) error
	Save(ctx context.Context, item *domain.ContentItem) error
	Create(ctx context.Context, item *domain.ContentItem) error
	Get(ctx context.Context, id string) (*domain.ContentItem, error)
	Update(ctx context.Context, item *domain.ContentItem) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ContentFilter) ([]domain.ContentItem, error)
}

// TaskRepository defines methods for task data access.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	Get(ctx context.Context, id string) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Upsert(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Task, error)
}

// PromptRepository defines methods for prompt library data access.
type PromptRepository interface {
	Create(ctx context.Context, prompt *domain.Prompt) error
	Get(ctx context.Context, id string) (*domain.Prompt, error)
	Update(ctx context.Context, prompt *domain.Prompt) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, category string) ([]domain.Prompt, error)
}

// PreferencesRepository stores the single preferences document.
// Get returns domain.DefaultPreferences when nothing was saved yet.
type PreferencesRepository interface {
	Get(ctx context.Context) (domain.Preferences, error)
	Save(ctx context.Context, prefs domain.Preferences) error
}

// RestoreJobRepository defines methods for restore job data access.
// Lookups return (nil, nil) when the job does not exist.
type RestoreJobRepository interface {
	CreateRestoreJob(ctx context.Context, job *domain.RestoreJob) error
	GetRestoreJob(ctx context.Context, id string) (*domain.RestoreJob, error)
	GetRestoreJobByIdempotencyToken(ctx context.Context, token string) (*domain.RestoreJob, error)
	UpdateRestoreJob(ctx context.Context, job *domain.RestoreJob) error
}

package service

import (
	"context"
	"io"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/calendar"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/kanban"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/migration"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/repository"
)

// StreamWriter interface for streaming backup data.
type StreamWriter interface {
	Write(data []byte) error
	Flush()
}

// ChangeNotifier is told about every change of the content collection.
// realtime.Hub implements it.
type ChangeNotifier interface {
	ContentChanged(eventType string, version uint64, id string)
}

// ContentInvalidator drops every cached content read. Bulk writers
// (restore, migrations) call it once they are done.
type ContentInvalidator interface {
	InvalidateAll()
}

// ContentList is a content search result together with the cache version
// it was read at.
type ContentList struct {
	Items   []domain.ContentItem
	Version uint64
}

// ContentLister reads content through the cache.
type ContentLister interface {
	List(ctx context.Context, filter repository.ContentFilter) (ContentList, error)
}

// ContentServiceInterface defines the content aggregate operations.
// Used for dependency injection and mocking in tests.
type ContentServiceInterface interface {
	ContentLister
	ContentInvalidator
	// Create stores a new item built from whitelisted fields.
	Create(ctx context.Context, fields map[string]any) (*domain.ContentItem, error)
	// Get returns one item.
	Get(ctx context.Context, id string) (*domain.ContentItem, error)
	// Replace applies a full update restricted to whitelisted fields.
	Replace(ctx context.Context, id string, fields map[string]any) (*domain.ContentItem, error)
	// PatchPublication applies a partial update of the publication flags and dates.
	PatchPublication(ctx context.Context, id string, fields map[string]any) (*domain.ContentItem, error)
	// SetStatus sets the top-level status of one language.
	SetStatus(ctx context.Context, id, lang, status string) (*domain.ContentItem, error)
	// SetPlatformStatus sets the status of one language of one platform.
	SetPlatformStatus(ctx context.Context, id, platform, lang, status string, url *string) (*domain.ContentItem, error)
	// MoveCard moves an item to a content board column.
	MoveCard(ctx context.Context, id, column string) (*domain.ContentItem, error)
	// Delete removes the whole aggregate.
	Delete(ctx context.Context, id string) error
}

// TaskServiceInterface defines task board operations.
type TaskServiceInterface interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	Update(ctx context.Context, id string, task *domain.Task) (*domain.Task, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Task, error)
}

// PromptServiceInterface defines prompt library operations.
type PromptServiceInterface interface {
	Create(ctx context.Context, prompt *domain.Prompt) (*domain.Prompt, error)
	Get(ctx context.Context, id string) (*domain.Prompt, error)
	Update(ctx context.Context, id string, prompt *domain.Prompt) (*domain.Prompt, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, category string) ([]domain.Prompt, error)
}

// PreferencesServiceInterface defines preferences operations.
type PreferencesServiceInterface interface {
	Get(ctx context.Context) (domain.Preferences, error)
	Update(ctx context.Context, update PreferencesUpdate) (domain.Preferences, error)
}

// BoardServiceInterface defines the read-only projections.
type BoardServiceInterface interface {
	ContentBoard(ctx context.Context) (kanban.Board, uint64, error)
	TaskBoard(ctx context.Context) (kanban.TaskBoard, error)
	Calendar(ctx context.Context, year int) (*calendar.Calendar, error)
}

// BackupServiceInterface defines backup and restore operations.
// Used for dependency injection and mocking in tests.
type BackupServiceInterface interface {
	// StreamBackup writes a backup document of the given type to the writer.
	StreamBackup(ctx context.Context, backupType string, writer StreamWriter) (int, error)
	// StartRestore creates a restore job and queues it.
	StartRestore(ctx context.Context, idempotencyToken, filename, requestID string, reader io.Reader) (*domain.RestoreJob, error)
	// GetRestoreJob retrieves a restore job by ID.
	GetRestoreJob(ctx context.Context, id string) (*domain.RestoreJob, error)
	// Close shuts down the restore workers.
	Close()
}

// MigrationServiceInterface defines migration operations.
type MigrationServiceInterface interface {
	Run(ctx context.Context, mode string, dryRun bool) (domain.MigrationTally, error)
	Archives(ctx context.Context) ([]migration.Archive, error)
	Rollback(ctx context.Context, name string) (migration.RollbackResult, error)
	Discard(ctx context.Context, name string) error
}

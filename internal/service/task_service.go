package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/logger"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/repository"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/validator"
)

// TaskService manages task board cards. Every task points at an existing
// content item and carries a snapshot of its title.
type TaskService struct {
	repo        repository.TaskRepository
	contentRepo repository.ContentRepository
	validator   *validator.Validator
	now         func() time.Time
}

// NewTaskService creates a new TaskService.
func NewTaskService(repo repository.TaskRepository, contentRepo repository.ContentRepository, v *validator.Validator) *TaskService {
	return &TaskService{
		repo:        repo,
		contentRepo: contentRepo,
		validator:   v,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a new task. An empty status defaults to draft.
func (s *TaskService) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	t := task.Clone()
	t.ID = uuid.New().String()
	if t.Status == "" {
		t.Status = domain.TaskStatusDraft
	}
	t.Tags = domain.NormalizeTags(t.Tags)

	if err := validator.ToDomainError(s.validator.ValidateTask(t)); err != nil {
		return nil, err
	}
	if err := s.snapshotContent(ctx, t); err != nil {
		return nil, err
	}

	now := s.now()
	t.CreatedAt, t.UpdatedAt = now, now
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	logger.Info("Task created", slog.String("task_id", t.ID), slog.String("content_id", t.ContentID))
	return t, nil
}

// Get returns one task.
func (s *TaskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	if err := ParseID(id); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// Update replaces the editable fields of a task. The content title is
// refreshed when the task moves to another item.
func (s *TaskService) Update(ctx context.Context, id string, task *domain.Task) (*domain.Task, error) {
	if err := ParseID(id); err != nil {
		return nil, err
	}
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	t := task.Clone()
	t.ID = existing.ID
	t.CreatedAt = existing.CreatedAt
	t.ContentTitle = existing.ContentTitle
	if t.Status == "" {
		t.Status = existing.Status
	}
	t.Tags = domain.NormalizeTags(t.Tags)

	if err := validator.ToDomainError(s.validator.ValidateTask(t)); err != nil {
		return nil, err
	}
	if t.ContentID != existing.ContentID {
		if err := s.snapshotContent(ctx, t); err != nil {
			return nil, err
		}
	}

	t.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateStatus moves a task to another task board column.
func (s *TaskService) UpdateStatus(ctx context.Context, id, status string) (*domain.Task, error) {
	if err := ParseID(id); err != nil {
		return nil, err
	}
	if !domain.IsValidTaskStatus(status) {
		return nil, domain.NewValidationError("status", "invalid_status")
	}
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Status = domain.TaskStatus(status)
	t.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes a task.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := ParseID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// List returns every task.
func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) snapshotContent(ctx context.Context, t *domain.Task) error {
	item, err := s.contentRepo.Get(ctx, t.ContentID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewValidationError("contentId", "content_not_found")
	}
	if err != nil {
		return fmt.Errorf("get task content: %w", err)
	}
	t.ContentTitle = item.Title
	return nil
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/mocks"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/repository"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/service"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/validator"
)

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots the content title and defaults to draft", func(t *testing.T) {
		mockTaskRepo := mocks.NewMockTaskRepository(t)
		mockContentRepo := mocks.NewMockContentRepository(t)
		svc := service.NewTaskService(mockTaskRepo, mockContentRepo, validator.NewValidator())

		contentID := uuid.New().String()
		mockContentRepo.EXPECT().
			Get(mock.Anything, contentID).
			Return(&domain.ContentItem{ID: contentID, Title: "Launch video"}, nil)
		mockTaskRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Task")).
			Return(nil)

		task, err := svc.Create(ctx, &domain.Task{Title: "Record intro", ContentID: contentID, Tags: []string{"video", "video"}})

		require.NoError(t, err)
		assert.NotEmpty(t, task.ID)
		assert.Equal(t, domain.TaskStatusDraft, task.Status)
		assert.Equal(t, "Launch video", task.ContentTitle)
		assert.Equal(t, []string{"video"}, task.Tags)
		assert.False(t, task.CreatedAt.IsZero())
	})

	t.Run("unknown content", func(t *testing.T) {
		mockTaskRepo := mocks.NewMockTaskRepository(t)
		mockContentRepo := mocks.NewMockContentRepository(t)
		svc := service.NewTaskService(mockTaskRepo, mockContentRepo, validator.NewValidator())

		mockContentRepo.EXPECT().
			Get(mock.Anything, mock.Anything).
			Return(nil, domain.ErrNotFound)

		_, err := svc.Create(ctx, &domain.Task{Title: "Record intro", ContentID: uuid.New().String()})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "content_not_found", verr.Fields["contentId"])
	})

	t.Run("invalid fields never reach the store", func(t *testing.T) {
		mockTaskRepo := mocks.NewMockTaskRepository(t)
		mockContentRepo := mocks.NewMockContentRepository(t)
		svc := service.NewTaskService(mockTaskRepo, mockContentRepo, validator.NewValidator())

		_, err := svc.Create(ctx, &domain.Task{Status: "blocked", ContentID: "abc"})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "title_required", verr.Fields["title"])
		assert.Equal(t, "invalid_status", verr.Fields["status"])
		assert.Equal(t, "invalid_content_id", verr.Fields["contentId"])
	})

	t.Run("content lookup failure", func(t *testing.T) {
		mockTaskRepo := mocks.NewMockTaskRepository(t)
		mockContentRepo := mocks.NewMockContentRepository(t)
		svc := service.NewTaskService(mockTaskRepo, mockContentRepo, validator.NewValidator())

		mockContentRepo.EXPECT().
			Get(mock.Anything, mock.Anything).
			Return(nil, errors.New("timeout"))

		_, err := svc.Create(ctx, &domain.Task{Title: "Record intro", ContentID: uuid.New().String()})

		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrValidationFailed)
	})
}

func TestTaskService_Update(t *testing.T) {
	ctx := context.Background()
	contentRepo := repository.NewMemoryContentRepository()
	taskRepo := repository.NewMemoryTaskRepository()
	svc := service.NewTaskService(taskRepo, contentRepo, validator.NewValidator())

	first := domain.NewContentItem(uuid.New().String(), "First", fixedNow)
	second := domain.NewContentItem(uuid.New().String(), "Second", fixedNow)
	require.NoError(t, contentRepo.Create(ctx, first))
	require.NoError(t, contentRepo.Create(ctx, second))

	task, err := svc.Create(ctx, &domain.Task{Title: "Edit", ContentID: first.ID})
	require.NoError(t, err)

	t.Run("keeps the snapshot when the content is unchanged", func(t *testing.T) {
		got, err := svc.Update(ctx, task.ID, &domain.Task{Title: "Edit cut", ContentID: first.ID, Status: domain.TaskStatusInProgress})

		require.NoError(t, err)
		assert.Equal(t, "First", got.ContentTitle)
		assert.Equal(t, domain.TaskStatusInProgress, got.Status)
		assert.True(t, task.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("refreshes the snapshot when the content changes", func(t *testing.T) {
		got, err := svc.Update(ctx, task.ID, &domain.Task{Title: "Edit cut", ContentID: second.ID})

		require.NoError(t, err)
		assert.Equal(t, "Second", got.ContentTitle)
		assert.Equal(t, domain.TaskStatusInProgress, got.Status)
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := svc.Update(ctx, uuid.New().String(), &domain.Task{Title: "x", ContentID: first.ID})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestTaskService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	contentRepo := repository.NewMemoryContentRepository()
	svc := service.NewTaskService(repository.NewMemoryTaskRepository(), contentRepo, validator.NewValidator())

	item := domain.NewContentItem(uuid.New().String(), "Clip", fixedNow)
	require.NoError(t, contentRepo.Create(ctx, item))
	task, err := svc.Create(ctx, &domain.Task{Title: "Cut", ContentID: item.ID})
	require.NoError(t, err)

	got, err := svc.UpdateStatus(ctx, task.ID, "done")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusDone, got.Status)

	_, err = svc.UpdateStatus(ctx, task.ID, "published")
	assert.ErrorIs(t, err, domain.ErrValidationFailed)

	_, err = svc.UpdateStatus(ctx, "nope", "done")
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)

	require.NoError(t, svc.Delete(ctx, task.ID))
	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

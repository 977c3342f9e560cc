package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/mocks"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/repository"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/service"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/validator"
)

type bufferWriter struct {
	bytes.Buffer
	flushes int
}

func (w *bufferWriter) Write(p []byte) error {
	_, err := w.Buffer.Write(p)
	return err
}

func (w *bufferWriter) Flush() { w.flushes++ }

type store struct {
	content *repository.MemoryContentRepository
	tasks   *repository.MemoryTaskRepository
	prefs   *repository.MemoryPreferencesRepository
	jobs    *repository.MemoryJobRepository
}

func newStore() store {
	return store{
		content: repository.NewMemoryContentRepository(),
		tasks:   repository.NewMemoryTaskRepository(),
		prefs:   repository.NewMemoryPreferencesRepository(),
		jobs:    repository.NewMemoryJobRepository(),
	}
}

func (s store) backupService(invalidator service.ContentInvalidator) *service.BackupService {
	return service.NewBackupService(s.content, s.tasks, s.prefs, s.jobs, validator.NewValidator(), invalidator, 1)
}

func waitForJob(t *testing.T, svc *service.BackupService, id string) *domain.RestoreJob {
	t.Helper()
	var job *domain.RestoreJob
	require.Eventually(t, func() bool {
		var err error
		job, err = svc.GetRestoreJob(context.Background(), id)
		if err != nil || job == nil {
			return false
		}
		switch job.Status {
		case domain.JobStatusCompleted, domain.JobStatusCompletedWithErrors, domain.JobStatusFailed:
			return true
		}
		return false
	}, 5*time.Second, 10*time.Millisecond)
	return job
}

func TestBackupService_StreamBackup(t *testing.T) {
	ctx := context.Background()
	src := newStore()
	svc := src.backupService(nil)
	defer svc.Close()

	for i := 0; i < service.BackupFlushInterval+1; i++ {
		item := domain.NewContentItem(uuid.New().String(), "item", fixedNow)
		require.NoError(t, src.content.Create(ctx, item))
	}

	t.Run("content backup", func(t *testing.T) {
		w := &bufferWriter{}

		count, err := svc.StreamBackup(ctx, "content", w)

		require.NoError(t, err)
		assert.Equal(t, service.BackupFlushInterval+1, count)
		assert.GreaterOrEqual(t, w.flushes, 2)

		var doc domain.Backup
		require.NoError(t, json.Unmarshal(w.Bytes(), &doc))
		assert.Equal(t, domain.BackupVersion, doc.Version)
		assert.Equal(t, domain.BackupTypeContent, doc.Type)
		assert.Len(t, doc.Data.Content, service.BackupFlushInterval+1)
		assert.Nil(t, doc.Data.Preferences)
		assert.Empty(t, doc.Data.Kanban)
	})

	t.Run("invalid type", func(t *testing.T) {
		_, err := svc.StreamBackup(ctx, "partial", &bufferWriter{})
		assert.ErrorIs(t, err, domain.ErrValidationFailed)
	})
}

func TestBackupService_RoundTrip(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := context.Background()

	src := newStore()
	item := domain.NewContentItem(uuid.New().String(), "Launch video", fixedNow)
	item.SetStatus(domain.LangEs, domain.StatusPublished, fixedNow)
	item.Tags = []string{"launch"}
	require.NoError(t, src.content.Create(ctx, item))
	task := &domain.Task{ID: uuid.New().String(), Title: "Edit", Status: domain.TaskStatusInProgress, ContentID: item.ID, Tags: []string{}}
	require.NoError(t, src.tasks.Create(ctx, task))
	require.NoError(t, src.prefs.Save(ctx, domain.Preferences{
		Settings: map[string]any{"theme": "dark"},
		Cookies:  map[string]bool{"analytics": true},
	}))

	backupSvc := src.backupService(nil)
	w := &bufferWriter{}
	count, err := backupSvc.StreamBackup(ctx, "full", w)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	backupSvc.Close()
	assert.Contains(t, w.String(), `"cookies":{"analytics":true}`)

	dst := newStore()
	invalidator := mocks.NewMockContentServiceInterface(t)
	invalidator.EXPECT().InvalidateAll().Return().Once()
	restoreSvc := dst.backupService(invalidator)
	defer restoreSvc.Close()

	job, err := restoreSvc.StartRestore(ctx, uuid.New().String(), "backup.json", "req-1", bytes.NewReader(w.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusPending, job.Status)

	done := waitForJob(t, restoreSvc, job.ID)
	assert.Equal(t, domain.JobStatusCompleted, done.Status)
	assert.Equal(t, domain.BackupTypeFull, done.BackupType)
	assert.Equal(t, 3, done.TotalRecords)
	assert.Equal(t, 3, done.SuccessCount)

	restored, err := dst.content.Get(ctx, item.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(item, restored, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("restored item differs (-want +got):\n%s", diff)
	}

	restoredTask, err := dst.tasks.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Launch video", restoredTask.ContentTitle)

	prefs, err := dst.prefs.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", prefs.Settings["theme"])
	assert.Empty(t, prefs.Cookies)
}

func TestBackupService_StartRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("returns existing job for duplicate idempotency token", func(t *testing.T) {
		mockJobRepo := mocks.NewMockRestoreJobRepository(t)
		svc := service.NewBackupService(
			mocks.NewMockContentRepository(t),
			mocks.NewMockTaskRepository(t),
			mocks.NewMockPreferencesRepository(t),
			mockJobRepo,
			validator.NewValidator(),
			nil,
			1,
		)
		defer svc.Close()

		existing := &domain.RestoreJob{
			ID:               uuid.New().String(),
			Status:           domain.JobStatusCompleted,
			IdempotencyToken: "existing-token",
		}
		mockJobRepo.EXPECT().
			GetRestoreJobByIdempotencyToken(mock.Anything, "existing-token").
			Return(existing, nil)

		job, err := svc.StartRestore(ctx, "existing-token", "backup.json", "req-1", strings.NewReader("{}"))

		require.NoError(t, err)
		assert.Equal(t, existing.ID, job.ID)
	})

	t.Run("malformed document fails the job", func(t *testing.T) {
		s := newStore()
		svc := s.backupService(nil)
		defer svc.Close()

		job, err := svc.StartRestore(ctx, uuid.New().String(), "backup.json", "req-2", strings.NewReader("{not json"))
		require.NoError(t, err)

		done := waitForJob(t, svc, job.ID)
		assert.Equal(t, domain.JobStatusFailed, done.Status)
		require.NotNil(t, done.ErrorMessage)
		assert.Contains(t, *done.ErrorMessage, "invalid backup document")
	})

	t.Run("unsupported type fails the job", func(t *testing.T) {
		s := newStore()
		svc := s.backupService(nil)
		defer svc.Close()

		job, err := svc.StartRestore(ctx, uuid.New().String(), "backup.json", "req-3",
			strings.NewReader(`{"version":"1.0","type":"partial","data":{}}`))
		require.NoError(t, err)

		done := waitForJob(t, svc, job.ID)
		assert.Equal(t, domain.JobStatusFailed, done.Status)
	})

	t.Run("rejects after close", func(t *testing.T) {
		s := newStore()
		svc := s.backupService(nil)
		svc.Close()

		_, err := svc.StartRestore(ctx, uuid.New().String(), "backup.json", "req-4", strings.NewReader("{}"))
		assert.Error(t, err)
	})
}

func TestBackupService_RestoreRecordErrors(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	invalidator := mocks.NewMockContentServiceInterface(t)
	invalidator.EXPECT().InvalidateAll().Return().Once()
	svc := s.backupService(invalidator)
	defer svc.Close()

	doc := `{
		"version": "1.0",
		"type": "full",
		"data": {
			"content": [
				{"id": "legacy-1", "title": "Old item", "publishedEs": true, "tags": []},
				{"id": "legacy-2", "title": "", "tags": []}
			],
			"kanban": [
				{"title": "Follows the remap", "status": "done", "contentId": "legacy-1"},
				{"title": "Dangling", "contentId": "legacy-2"}
			]
		}
	}`

	job, err := svc.StartRestore(ctx, uuid.New().String(), "backup.json", "req-5", strings.NewReader(doc))
	require.NoError(t, err)

	done := waitForJob(t, svc, job.ID)
	assert.Equal(t, domain.JobStatusCompletedWithErrors, done.Status)
	assert.Equal(t, 4, done.TotalRecords)
	assert.Equal(t, 2, done.SuccessCount)
	assert.Equal(t, 2, done.FailureCount)
	assert.NotEmpty(t, done.Metadata["errors"])

	items, err := s.content.List(ctx, repository.ContentFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.NotEqual(t, "legacy-1", items[0].ID)

	tasks, err := s.tasks.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, items[0].ID, tasks[0].ContentID)
	assert.Equal(t, "Old item", tasks[0].ContentTitle)
}

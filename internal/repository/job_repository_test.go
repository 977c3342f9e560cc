package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/repository"
)

func TestPostgresJobRepository_RestoreJobs(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresJobRepository(testDB.Pool)
	ctx := context.Background()

	newJob := func(token string) *domain.RestoreJob {
		now := time.Now()
		return &domain.RestoreJob{
			ID:               uuid.New().String(),
			BackupType:       domain.BackupTypeFull,
			Status:           domain.JobStatusPending,
			IdempotencyToken: token,
			Metadata:         map[string]interface{}{"filename": "backup.json"},
			CreatedAt:        now,
			UpdatedAt:        now,
		}
	}

	t.Run("create and get restore job", func(t *testing.T) {
		testDB.TruncateTables(t, "restore_jobs")

		job := newJob(uuid.New().String())
		require.NoError(t, repo.CreateRestoreJob(ctx, job))

		retrieved, err := repo.GetRestoreJob(ctx, job.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved)

		assert.Equal(t, job.ID, retrieved.ID)
		assert.Equal(t, domain.BackupTypeFull, retrieved.BackupType)
		assert.Equal(t, domain.JobStatusPending, retrieved.Status)
		assert.Equal(t, "backup.json", retrieved.Metadata["filename"])
	})

	t.Run("get restore job by idempotency token", func(t *testing.T) {
		testDB.TruncateTables(t, "restore_jobs")

		token := uuid.New().String()
		job := newJob(token)
		require.NoError(t, repo.CreateRestoreJob(ctx, job))

		retrieved, err := repo.GetRestoreJobByIdempotencyToken(ctx, token)
		require.NoError(t, err)
		require.NotNil(t, retrieved)
		assert.Equal(t, job.ID, retrieved.ID)
	})

	t.Run("get non-existent restore job returns nil", func(t *testing.T) {
		testDB.TruncateTables(t, "restore_jobs")

		retrieved, err := repo.GetRestoreJob(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Nil(t, retrieved)

		retrieved, err = repo.GetRestoreJobByIdempotencyToken(ctx, "non-existent-token")
		require.NoError(t, err)
		assert.Nil(t, retrieved)
	})

	t.Run("update restore job", func(t *testing.T) {
		testDB.TruncateTables(t, "restore_jobs")

		job := newJob(uuid.New().String())
		require.NoError(t, repo.CreateRestoreJob(ctx, job))

		completedAt := time.Now()
		msg := "1 record failed"
		job.Status = domain.JobStatusCompletedWithErrors
		job.TotalRecords = 10
		job.ProcessedRecords = 10
		job.SuccessCount = 9
		job.FailureCount = 1
		job.ErrorMessage = &msg
		job.UpdatedAt = completedAt
		job.CompletedAt = &completedAt
		require.NoError(t, repo.UpdateRestoreJob(ctx, job))

		retrieved, err := repo.GetRestoreJob(ctx, job.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved)

		assert.Equal(t, domain.JobStatusCompletedWithErrors, retrieved.Status)
		assert.Equal(t, 9, retrieved.SuccessCount)
		assert.Equal(t, 1, retrieved.FailureCount)
		require.NotNil(t, retrieved.ErrorMessage)
		assert.Equal(t, msg, *retrieved.ErrorMessage)
		assert.NotNil(t, retrieved.CompletedAt)
	})

	t.Run("duplicate idempotency token returns existing job", func(t *testing.T) {
		testDB.TruncateTables(t, "restore_jobs")

		token := uuid.New().String()
		job1 := newJob(token)
		require.NoError(t, repo.CreateRestoreJob(ctx, job1))

		job2 := newJob(token)
		require.NoError(t, repo.CreateRestoreJob(ctx, job2))

		assert.Equal(t, job1.ID, job2.ID)
	})
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
)

// PostgresJobRepository implements RestoreJobRepository using PostgreSQL.
type PostgresJobRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresJobRepository creates a new PostgresJobRepository.
func NewPostgresJobRepository(pool *pgxpool.Pool) *PostgresJobRepository {
	return &PostgresJobRepository{pool: pool}
}

const restoreJobColumns = `id, backup_type, status, total_records, processed_records,
			success_count, failure_count, idempotency_token, metadata, error_message,
			created_at, updated_at, completed_at`

// CreateRestoreJob creates a new restore job. When another request won the
// race for the same idempotency token, job is overwritten with the stored one.
func (r *PostgresJobRepository) CreateRestoreJob(ctx context.Context, job *domain.RestoreJob) error {
	metadata, err := json.Marshal(job.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO restore_jobs (id, backup_type, status, total_records, processed_records,
			success_count, failure_count, idempotency_token, metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, job.ID, job.BackupType, job.Status, job.TotalRecords, job.ProcessedRecords,
		job.SuccessCount, job.FailureCount, job.IdempotencyToken, metadata, job.CreatedAt, job.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" &&
			strings.Contains(pgErr.ConstraintName, "idempotency_token") {
			existingJob, fetchErr := r.GetRestoreJobByIdempotencyToken(ctx, job.IdempotencyToken)
			if fetchErr != nil {
				return fmt.Errorf("fetch existing job after race: %w", fetchErr)
			}
			if existingJob != nil {
				*job = *existingJob
				return nil
			}
		}
		return fmt.Errorf("insert restore job: %w", err)
	}

	return nil
}

// GetRestoreJob retrieves a restore job by ID.
func (r *PostgresJobRepository) GetRestoreJob(ctx context.Context, id string) (*domain.RestoreJob, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+restoreJobColumns+` FROM restore_jobs WHERE id = $1`, id)
	job, err := scanRestoreJob(row)
	if err != nil {
		return nil, fmt.Errorf("get restore job: %w", err)
	}
	return job, nil
}

// GetRestoreJobByIdempotencyToken retrieves a restore job by idempotency token.
func (r *PostgresJobRepository) GetRestoreJobByIdempotencyToken(ctx context.Context, token string) (*domain.RestoreJob, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+restoreJobColumns+` FROM restore_jobs WHERE idempotency_token = $1`, token)
	job, err := scanRestoreJob(row)
	if err != nil {
		return nil, fmt.Errorf("get restore job by token: %w", err)
	}
	return job, nil
}

func scanRestoreJob(row pgx.Row) (*domain.RestoreJob, error) {
	var job domain.RestoreJob
	var metadata []byte
	var completedAt *time.Time
	var errorMsg *string

	err := row.Scan(&job.ID, &job.BackupType, &job.Status, &job.TotalRecords, &job.ProcessedRecords,
		&job.SuccessCount, &job.FailureCount, &job.IdempotencyToken, &metadata, &errorMsg,
		&job.CreatedAt, &job.UpdatedAt, &completedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if metadata != nil {
		if err := json.Unmarshal(metadata, &job.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}
	job.CompletedAt = completedAt
	job.ErrorMessage = errorMsg

	return &job, nil
}

// UpdateRestoreJob updates an existing restore job.
func (r *PostgresJobRepository) UpdateRestoreJob(ctx context.Context, job *domain.RestoreJob) error {
	metadata, err := json.Marshal(job.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		UPDATE restore_jobs
		SET backup_type = $2, status = $3, total_records = $4, processed_records = $5,
			success_count = $6, failure_count = $7, metadata = $8, error_message = $9,
			updated_at = $10, completed_at = $11
		WHERE id = $1
	`, job.ID, job.BackupType, job.Status, job.TotalRecords, job.ProcessedRecords,
		job.SuccessCount, job.FailureCount, metadata, job.ErrorMessage,
		job.UpdatedAt, job.CompletedAt)

	if err != nil {
		return fmt.Errorf("update restore job: %w", err)
	}

	return nil
}

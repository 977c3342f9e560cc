package domain

import "time"

// JobStatus represents the status of a restore job.
type JobStatus string

const (
	JobStatusPending             JobStatus = "pending"
	JobStatusProcessing          JobStatus = "processing"
	JobStatusCompleted           JobStatus = "completed"
	JobStatusCompletedWithErrors JobStatus = "completed_with_errors"
	JobStatusFailed              JobStatus = "failed"
)

// RestoreJob tracks the asynchronous re-ingestion of a backup document.
type RestoreJob struct {
	ID               string                 `json:"id"`
	BackupType       BackupType             `json:"backup_type"`
	Status           JobStatus              `json:"status"`
	TotalRecords     int                    `json:"total_records"`
	ProcessedRecords int                    `json:"processed_records"`
	SuccessCount     int                    `json:"success_count"`
	FailureCount     int                    `json:"failure_count"`
	IdempotencyToken string                 `json:"idempotency_token"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
	ErrorMessage     *string                `json:"error_message,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
	CompletedAt      *time.Time             `json:"completed_at,omitempty"`
}

// RecordError represents a per-record error during restore.
type RecordError struct {
	Section string `json:"section"`
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Reason  string `json:"reason"`
}

// RestoreResult represents the final result of a restore operation.
type RestoreResult struct {
	TotalRecords     int           `json:"total_records"`
	ProcessedRecords int           `json:"processed_records"`
	SuccessCount     int           `json:"success_count"`
	FailureCount     int           `json:"failure_count"`
	Errors           []RecordError `json:"errors,omitempty"`
}

// MigrationTally is the outcome of one reconciler run. It is always
// reported, including when every item failed.
type MigrationTally struct {
	Mode      string   `json:"mode"`
	DryRun    bool     `json:"dry_run"`
	Archive   string   `json:"archive,omitempty"`
	Scanned   int      `json:"scanned"`
	Attempted int      `json:"attempted"`
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	Skipped   int      `json:"skipped"`
	Failures  []string `json:"failures,omitempty"`
}

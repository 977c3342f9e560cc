package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/logger"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/metrics"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/repository"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/validator"
)

const (
	// DefaultRestoreTimeout is the timeout for restore processing
	DefaultRestoreTimeout = 30 * time.Minute

	// QueueSendTimeout is the timeout for sending tasks to the queue
	QueueSendTimeout = 5 * time.Second

	// BackupFlushInterval is how many records are written between flushes
	BackupFlushInterval = 100

	// MaxReportedErrors caps the record errors kept in a job's metadata
	MaxReportedErrors = 100

	// Backup sections, also used as the section of record errors
	SectionContent     = "content"
	SectionKanban      = "kanban"
	SectionPreferences = "preferences"
)

// BackupService streams backup documents and restores them asynchronously
// on a bounded worker pool.
type BackupService struct {
	contentRepo repository.ContentRepository
	taskRepo    repository.TaskRepository
	prefsRepo   repository.PreferencesRepository
	jobRepo     repository.RestoreJobRepository
	validator   *validator.Validator
	invalidator ContentInvalidator

	workerCount int
	timeout     time.Duration
	now         func() time.Time

	jobQueue chan restoreTask
	stopChan chan struct{}
	wg       sync.WaitGroup
	closed   bool
	mu       sync.RWMutex
}

type restoreTask struct {
	job       *domain.RestoreJob
	data      []byte // Buffered file content
	requestID string // Request ID for tracing
}

// NewBackupService creates a new BackupService with worker pool.
// invalidator may be nil.
func NewBackupService(
	contentRepo repository.ContentRepository,
	taskRepo repository.TaskRepository,
	prefsRepo repository.PreferencesRepository,
	jobRepo repository.RestoreJobRepository,
	v *validator.Validator,
	invalidator ContentInvalidator,
	workerCount int,
) *BackupService {
	s := &BackupService{
		contentRepo: contentRepo,
		taskRepo:    taskRepo,
		prefsRepo:   prefsRepo,
		jobRepo:     jobRepo,
		validator:   v,
		invalidator: invalidator,
		workerCount: workerCount,
		timeout:     DefaultRestoreTimeout,
		now:         func() time.Time { return time.Now().UTC() },
		jobQueue:    make(chan restoreTask, workerCount*2),
		stopChan:    make(chan struct{}),
	}

	for i := 0; i < workerCount; i++ {
		s.wg.Add(1)
		go s.worker()
	}

	return s
}

func (s *BackupService) worker() {
	defer s.wg.Done()

	for {
		select {
		case task, ok := <-s.jobQueue:
			if !ok {
				return
			}
			s.processRestore(task)
		case <-s.stopChan:
			return
		}
	}
}

// Close shuts down the worker pool immediately.
func (s *BackupService) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	close(s.stopChan)
	s.wg.Wait()
}

// StreamBackup writes a backup document straight to the writer. Content is
// streamed item by item; the document is never held in memory or on disk.
func (s *BackupService) StreamBackup(ctx context.Context, backupType string, writer StreamWriter) (int, error) {
	if !domain.IsValidBackupType(backupType) {
		return 0, domain.NewValidationError("type", "invalid_backup_type")
	}

	metrics.StartBackup()
	timer := metrics.NewTimer()
	count, err := s.writeBackup(ctx, domain.BackupType(backupType), writer)
	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.EndBackup(backupType, result, timer.Seconds(), count)
	return count, err
}

func (s *BackupService) writeBackup(ctx context.Context, backupType domain.BackupType, writer StreamWriter) (int, error) {
	header, err := json.Marshal(struct {
		Version   string            `json:"version"`
		Type      domain.BackupType `json:"type"`
		Timestamp time.Time         `json:"timestamp"`
	}{domain.BackupVersion, backupType, s.now()})
	if err != nil {
		return 0, fmt.Errorf("marshal header: %w", err)
	}

	// Reopen the header object to append the data section
	if err := writer.Write(header[:len(header)-1]); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}
	if err := writer.Write([]byte(`,"data":{"content":[`)); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	var count int
	err = s.contentRepo.StreamAll(ctx, func(item domain.ContentItem) error {
		if err := writeElement(writer, count > 0, item); err != nil {
			return err
		}
		count++
		if count%BackupFlushInterval == 0 {
			writer.Flush()
		}
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("stream content: %w", err)
	}
	if err := writer.Write([]byte("]")); err != nil {
		return count, fmt.Errorf("write content: %w", err)
	}

	if backupType == domain.BackupTypeFull {
		tasks, err := s.taskRepo.List(ctx)
		if err != nil {
			return count, fmt.Errorf("list tasks: %w", err)
		}
		if err := writer.Write([]byte(`,"kanban":[`)); err != nil {
			return count, fmt.Errorf("write kanban: %w", err)
		}
		for i, t := range tasks {
			if err := writeElement(writer, i > 0, t); err != nil {
				return count, err
			}
			count++
		}
		if err := writer.Write([]byte("]")); err != nil {
			return count, fmt.Errorf("write kanban: %w", err)
		}

		prefs, err := s.prefsRepo.Get(ctx)
		if err != nil {
			return count, fmt.Errorf("get preferences: %w", err)
		}
		section, err := json.Marshal(domain.BackupPreferences{Cookies: prefs.Cookies, Settings: prefs.Settings})
		if err != nil {
			return count, fmt.Errorf("marshal preferences: %w", err)
		}
		if err := writer.Write(append([]byte(`,"preferences":`), section...)); err != nil {
			return count, fmt.Errorf("write preferences: %w", err)
		}
	}

	if err := writer.Write([]byte("}}\n")); err != nil {
		return count, fmt.Errorf("write trailer: %w", err)
	}
	writer.Flush()
	return count, nil
}

func writeElement(writer StreamWriter, comma bool, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if comma {
		b = append([]byte(","), b...)
	}
	if err := writer.Write(b); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

// StartRestore creates a restore job and queues it for processing. A token
// seen before returns the existing job.
func (s *BackupService) StartRestore(ctx context.Context, idempotencyToken, filename, requestID string, reader io.Reader) (*domain.RestoreJob, error) {
	log := logger.WithRequestID(requestID)
	log.Info("Starting restore", slog.String("filename", filename))

	existingJob, err := s.jobRepo.GetRestoreJobByIdempotencyToken(ctx, idempotencyToken)
	if err != nil {
		return nil, fmt.Errorf("check idempotency token: %w", err)
	}
	if existingJob != nil {
		log.Info("Returning existing job for idempotency token", slog.String("job_id", existingJob.ID))
		return existingJob, nil
	}

	// Buffer the file content before returning - the reader will be closed after this function returns
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read file content: %w", err)
	}

	now := s.now()
	job := &domain.RestoreJob{
		ID:               uuid.New().String(),
		Status:           domain.JobStatusPending,
		IdempotencyToken: idempotencyToken,
		Metadata: map[string]interface{}{
			"filename": filename,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		return nil, errors.New("restore service is shutting down")
	}

	if err := s.jobRepo.CreateRestoreJob(ctx, job); err != nil {
		return nil, fmt.Errorf("create restore job: %w", err)
	}

	// The worker mutates its own copy; the caller keeps the pending snapshot
	queued := *job
	queued.Metadata = map[string]interface{}{"filename": filename}
	task := restoreTask{job: &queued, data: data, requestID: requestID}

	select {
	case s.jobQueue <- task:
		log.Info("Restore job queued", slog.String("job_id", job.ID))
	case <-time.After(QueueSendTimeout):
		log.Warn("Queue full, restore job will be processed when capacity available", slog.String("job_id", job.ID))
		go func() {
			select {
			case s.jobQueue <- task:
			case <-s.stopChan:
			}
		}()
	}

	return job, nil
}

// GetRestoreJob retrieves a restore job by ID.
func (s *BackupService) GetRestoreJob(ctx context.Context, id string) (*domain.RestoreJob, error) {
	return s.jobRepo.GetRestoreJob(ctx, id)
}

func (s *BackupService) processRestore(task restoreTask) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	job := task.job
	log := logger.WithJobID(job.ID).With(slog.String("request_id", task.requestID))
	startTime := time.Now()

	job.Status = domain.JobStatusProcessing
	job.UpdatedAt = s.now()
	if err := s.jobRepo.UpdateRestoreJob(ctx, job); err != nil {
		log.Error("Failed to update restore job status to processing", slog.String("error", err.Error()))
	}

	var doc domain.Backup
	if err := json.NewDecoder(bytes.NewReader(task.data)).Decode(&doc); err != nil {
		s.failJob(ctx, job, log, fmt.Sprintf("invalid backup document: %v", err))
		return
	}
	if doc.Type == "" {
		doc.Type = domain.BackupTypeFull
	}
	if !domain.IsValidBackupType(string(doc.Type)) {
		s.failJob(ctx, job, log, fmt.Sprintf("unsupported backup type: %s", doc.Type))
		return
	}
	if doc.Version != "" && doc.Version != domain.BackupVersion {
		log.Warn("Restoring backup of another version", slog.String("version", doc.Version))
	}
	job.BackupType = doc.Type

	backupType := string(doc.Type)
	metrics.StartJob(backupType)
	defer metrics.EndJob(backupType)

	log.Info("Processing restore job",
		slog.String("backup_type", backupType),
		slog.Int("content", len(doc.Data.Content)),
		slog.Int("kanban", len(doc.Data.Kanban)))

	result := s.restore(ctx, &doc, log)

	now := s.now()
	job.TotalRecords = result.TotalRecords
	job.ProcessedRecords = result.ProcessedRecords
	job.SuccessCount = result.SuccessCount
	job.FailureCount = result.FailureCount
	job.UpdatedAt = now
	job.CompletedAt = &now
	if len(result.Errors) > 0 {
		errs := result.Errors
		if len(errs) > MaxReportedErrors {
			errs = errs[:MaxReportedErrors]
		}
		job.Metadata["errors"] = errs
	}

	if result.FailureCount == result.TotalRecords && result.TotalRecords > 0 {
		job.Status = domain.JobStatusFailed
	} else if result.FailureCount > 0 {
		job.Status = domain.JobStatusCompletedWithErrors
	} else {
		job.Status = domain.JobStatusCompleted
	}

	if err := s.jobRepo.UpdateRestoreJob(ctx, job); err != nil {
		log.Error("Failed to update restore job", slog.String("error", err.Error()))
	}

	if result.SuccessCount > 0 && s.invalidator != nil {
		s.invalidator.InvalidateAll()
	}

	elapsed := time.Since(startTime)
	metrics.ObserveJobCompletion(backupType, string(job.Status), elapsed.Seconds())
	log.Info("Restore job completed",
		slog.String("status", string(job.Status)),
		slog.Int("total", job.TotalRecords),
		slog.Int("success", job.SuccessCount),
		slog.Int("failed", job.FailureCount),
		slog.Duration("elapsed", elapsed.Round(time.Millisecond)))
}

func (s *BackupService) failJob(ctx context.Context, job *domain.RestoreJob, log *slog.Logger, msg string) {
	now := s.now()
	job.Status = domain.JobStatusFailed
	job.ErrorMessage = &msg
	job.UpdatedAt = now
	job.CompletedAt = &now
	if err := s.jobRepo.UpdateRestoreJob(ctx, job); err != nil {
		log.Error("Failed to update restore job", slog.String("error", err.Error()))
	}
	metrics.ObserveJobCompletion("unknown", string(job.Status), 0)
	log.Warn("Restore job failed", slog.String("reason", msg))
}

// restore applies the sections present in the document. Missing sections
// are skipped. Cookie consent is never replayed.
func (s *BackupService) restore(ctx context.Context, doc *domain.Backup, log *slog.Logger) domain.RestoreResult {
	result := domain.RestoreResult{Errors: []domain.RecordError{}}

	// Content ids that are not UUIDs get a new id; tasks follow the mapping.
	ids := make(map[string]string, len(doc.Data.Content))

	before := result
	for i := range doc.Data.Content {
		s.restoreContent(ctx, i+1, &doc.Data.Content[i], ids, &result)
	}
	observeSection(SectionContent, before, result)

	if doc.Type != domain.BackupTypeFull {
		return result
	}

	before = result
	for i := range doc.Data.Kanban {
		s.restoreTask(ctx, i+1, &doc.Data.Kanban[i], ids, &result)
	}
	observeSection(SectionKanban, before, result)

	if doc.Data.Preferences != nil && len(doc.Data.Preferences.Settings) > 0 {
		before = result
		s.restorePreferences(ctx, doc.Data.Preferences.Settings, &result)
		observeSection(SectionPreferences, before, result)
	}
	if doc.Data.Preferences != nil && len(doc.Data.Preferences.Cookies) > 0 {
		log.Info("Skipping cookie consent from backup", slog.Int("cookies", len(doc.Data.Preferences.Cookies)))
	}

	return result
}

func observeSection(section string, before, after domain.RestoreResult) {
	metrics.ObserveRecords(section, after.SuccessCount-before.SuccessCount, after.FailureCount-before.FailureCount)
}

func (s *BackupService) restoreContent(ctx context.Context, row int, item *domain.ContentItem, ids map[string]string, result *domain.RestoreResult) {
	result.TotalRecords++
	result.ProcessedRecords++

	if ParseID(item.ID) != nil {
		newID := uuid.New().String()
		if item.ID != "" {
			ids[item.ID] = newID
		}
		item.ID = newID
	}
	item.Tags = domain.NormalizeTags(item.Tags)
	if item.CreatedAt.IsZero() {
		item.CreatedAt = s.now()
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = item.CreatedAt
	}

	if err := s.validator.ValidateContent(item); err != nil {
		result.Errors = append(result.Errors, validator.ConvertValidationErrors(SectionContent, row, err)...)
		result.FailureCount++
		return
	}
	if err := s.contentRepo.Save(ctx, item); err != nil {
		result.Errors = append(result.Errors, domain.RecordError{Section: SectionContent, Row: row, Field: "record", Reason: err.Error()})
		result.FailureCount++
		return
	}
	result.SuccessCount++
}

func (s *BackupService) restoreTask(ctx context.Context, row int, task *domain.Task, ids map[string]string, result *domain.RestoreResult) {
	result.TotalRecords++
	result.ProcessedRecords++

	if mapped, ok := ids[task.ContentID]; ok {
		task.ContentID = mapped
	}
	if ParseID(task.ID) != nil {
		task.ID = uuid.New().String()
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusDraft
	}
	task.Tags = domain.NormalizeTags(task.Tags)
	if task.CreatedAt.IsZero() {
		task.CreatedAt = s.now()
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = task.CreatedAt
	}

	if err := s.validator.ValidateTask(task); err != nil {
		result.Errors = append(result.Errors, validator.ConvertValidationErrors(SectionKanban, row, err)...)
		result.FailureCount++
		return
	}

	item, err := s.contentRepo.Get(ctx, task.ContentID)
	if err != nil {
		reason := err.Error()
		if errors.Is(err, domain.ErrNotFound) {
			reason = "content_not_found"
		}
		result.Errors = append(result.Errors, domain.RecordError{Section: SectionKanban, Row: row, Field: "contentId", Reason: reason})
		result.FailureCount++
		return
	}
	task.ContentTitle = item.Title

	if err := s.taskRepo.Upsert(ctx, task); err != nil {
		result.Errors = append(result.Errors, domain.RecordError{Section: SectionKanban, Row: row, Field: "record", Reason: err.Error()})
		result.FailureCount++
		return
	}
	result.SuccessCount++
}

func (s *BackupService) restorePreferences(ctx context.Context, settings map[string]any, result *domain.RestoreResult) {
	result.TotalRecords++
	result.ProcessedRecords++

	fail := func(field, reason string) {
		result.Errors = append(result.Errors, domain.RecordError{Section: SectionPreferences, Row: 1, Field: field, Reason: reason})
		result.FailureCount++
	}

	prefs, err := s.prefsRepo.Get(ctx)
	if err != nil {
		fail("record", err.Error())
		return
	}
	mergePreferences(&prefs, PreferencesUpdate{Settings: settings})

	if err := s.validator.ValidatePreferences(&prefs); err != nil {
		result.Errors = append(result.Errors, validator.ConvertValidationErrors(SectionPreferences, 1, err)...)
		result.FailureCount++
		return
	}

	prefs.UpdatedAt = s.now()
	if err := s.prefsRepo.Save(ctx, prefs); err != nil {
		fail("record", err.Error())
		return
	}
	result.SuccessCount++
}

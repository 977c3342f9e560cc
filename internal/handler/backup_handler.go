package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/logger"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/middleware"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/service"
)

// BackupHandler handles backup downloads and restore jobs.
type BackupHandler struct {
	backupService service.BackupServiceInterface
}

// NewBackupHandler creates a new BackupHandler.
func NewBackupHandler(backupService service.BackupServiceInterface) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// RestoreJobResponse represents a restore job in the API response.
type RestoreJobResponse struct {
	ID               string                 `json:"id"`
	BackupType       string                 `json:"backup_type,omitempty"`
	Status           string                 `json:"status"`
	TotalRecords     int                    `json:"total_records"`
	ProcessedRecords int                    `json:"processed_records"`
	SuccessCount     int                    `json:"success_count"`
	FailureCount     int                    `json:"failure_count"`
	ErrorMessage     *string                `json:"error_message,omitempty"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt        string                 `json:"created_at"`
	UpdatedAt        string                 `json:"updated_at"`
	CompletedAt      *string                `json:"completed_at,omitempty"`
}

// toRestoreJobResponse converts a domain.RestoreJob to a RestoreJobResponse.
func toRestoreJobResponse(job *domain.RestoreJob) RestoreJobResponse {
	response := RestoreJobResponse{
		ID:               job.ID,
		BackupType:       string(job.BackupType),
		Status:           string(job.Status),
		TotalRecords:     job.TotalRecords,
		ProcessedRecords: job.ProcessedRecords,
		SuccessCount:     job.SuccessCount,
		FailureCount:     job.FailureCount,
		ErrorMessage:     job.ErrorMessage,
		Metadata:         job.Metadata,
		CreatedAt:        job.CreatedAt.Format(TimeFormat),
		UpdatedAt:        job.UpdatedAt.Format(TimeFormat),
	}
	if job.CompletedAt != nil {
		completedAt := job.CompletedAt.Format(TimeFormat)
		response.CompletedAt = &completedAt
	}
	return response
}

// ginStreamWriter wraps gin.ResponseWriter for streaming.
type ginStreamWriter struct {
	writer gin.ResponseWriter
}

func (w *ginStreamWriter) Write(data []byte) error {
	_, err := w.writer.Write(data)
	return err
}

func (w *ginStreamWriter) Flush() {
	w.writer.Flush()
}

// Backup handles GET /api/v1/backup?type=full|content
func (h *BackupHandler) Backup(c *gin.Context) {
	backupType := c.DefaultQuery("type", string(domain.BackupTypeFull))
	if !domain.IsValidBackupType(backupType) {
		respondError(c, domain.NewValidationError("type", "invalid_backup_type"), "")
		return
	}

	requestID := middleware.GetRequestID(c)
	log := logger.WithRequestID(requestID)

	filename := fmt.Sprintf("content-manager-%s-%s.json", backupType, time.Now().UTC().Format("20060102"))
	c.Header("Content-Type", "application/json")
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")

	writer := &ginStreamWriter{writer: c.Writer}
	count, err := h.backupService.StreamBackup(c.Request.Context(), backupType, writer)
	if err != nil {
		// Can't return an error status once the body has started
		log.Error("Backup stream failed", slog.String("error", err.Error()))
		return
	}

	log.Info("Backup streamed", slog.String("type", backupType), slog.Int("records", count))
}

// CreateRestore handles POST /api/v1/restore
func (h *BackupHandler) CreateRestore(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxRestoreFileSize); err != nil {
		badRequest(c, "request must be multipart/form-data")
		return
	}

	idempotencyToken := c.PostForm("idempotency_token")
	if idempotencyToken == "" {
		idempotencyToken = uuid.New().String()
	}

	if _, err := uuid.Parse(idempotencyToken); err != nil {
		badRequest(c, "idempotency_token must be a valid UUID")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		badRequest(c, "file is required")
		return
	}
	defer file.Close()

	requestID := middleware.GetRequestID(c)
	job, err := h.backupService.StartRestore(c.Request.Context(), idempotencyToken, header.Filename, requestID, file)
	if err != nil {
		respondError(c, err, "failed to process restore request")
		return
	}

	c.JSON(http.StatusAccepted, toRestoreJobResponse(job))
}

// GetRestore handles GET /api/v1/restore/:id
func (h *BackupHandler) GetRestore(c *gin.Context) {
	id := c.Param("id")
	if err := service.ParseID(id); err != nil {
		respondError(c, err, "")
		return
	}

	job, err := h.backupService.GetRestoreJob(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to retrieve restore job")
		return
	}

	if job == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "restore job not found"})
		return
	}

	c.JSON(http.StatusOK, toRestoreJobResponse(job))
}

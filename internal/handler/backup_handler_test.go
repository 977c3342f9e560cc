package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/service"
)

func restoreRequest(t *testing.T, token string, withFile bool) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if token != "" {
		require.NoError(t, writer.WriteField("idempotency_token", token))
	}
	if withFile {
		part, err := writer.CreateFormFile("file", "backup.json")
		require.NoError(t, err)
		_, err = part.Write([]byte(`{"version":"1.0","type":"content","data":{"content":[]}}`))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/restore", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestBackupHandler_Backup(t *testing.T) {
	t.Run("streams the document as an attachment", func(t *testing.T) {
		router, s := newTestRouter(t)

		s.backup.EXPECT().
			StreamBackup(mock.Anything, "content", mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, w service.StreamWriter) (int, error) {
				require.NoError(t, w.Write([]byte(`{"version":"1.0","type":"content","data":{"content":[]}}`)))
				w.Flush()
				return 0, nil
			})

		w := doJSON(router, http.MethodGet, "/api/v1/backup?type=content", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment;")
		assert.Contains(t, w.Header().Get("Content-Disposition"), "content-manager-content-")

		var doc domain.Backup
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		assert.Equal(t, domain.BackupTypeContent, doc.Type)
	})

	t.Run("defaults to a full backup", func(t *testing.T) {
		router, s := newTestRouter(t)

		s.backup.EXPECT().StreamBackup(mock.Anything, "full", mock.Anything).Return(0, nil)

		w := doJSON(router, http.MethodGet, "/api/v1/backup", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects an unknown type before streaming", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doJSON(router, http.MethodGet, "/api/v1/backup?type=partial", nil)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Empty(t, w.Header().Get("Content-Disposition"))
	})
}

func TestBackupHandler_CreateRestore(t *testing.T) {
	t.Run("queues a restore job", func(t *testing.T) {
		router, s := newTestRouter(t)
		token := uuid.New().String()
		now := time.Now()
		job := &domain.RestoreJob{
			ID:               uuid.New().String(),
			Status:           domain.JobStatusPending,
			IdempotencyToken: token,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		s.backup.EXPECT().
			StartRestore(mock.Anything, token, "backup.json", mock.AnythingOfType("string"), mock.Anything).
			RunAndReturn(func(_ context.Context, _, _, _ string, r io.Reader) (*domain.RestoreJob, error) {
				data, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Contains(t, string(data), `"type":"content"`)
				return job, nil
			})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, restoreRequest(t, token, true))

		require.Equal(t, http.StatusAccepted, w.Code)
		var resp RestoreJobResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, job.ID, resp.ID)
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("generates a token when none is sent", func(t *testing.T) {
		router, s := newTestRouter(t)

		s.backup.EXPECT().
			StartRestore(mock.Anything, mock.MatchedBy(func(token string) bool {
				_, err := uuid.Parse(token)
				return err == nil
			}), "backup.json", mock.Anything, mock.Anything).
			Return(&domain.RestoreJob{ID: uuid.New().String(), Status: domain.JobStatusPending}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, restoreRequest(t, "", true))

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("rejects a malformed token", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, restoreRequest(t, "not-a-uuid", true))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "idempotency_token must be a valid UUID")
	})

	t.Run("requires a file", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, restoreRequest(t, uuid.New().String(), false))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "file is required")
	})

	t.Run("rejects a JSON body", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doJSON(router, http.MethodPost, "/api/v1/restore", map[string]any{"file": "x"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBackupHandler_GetRestore(t *testing.T) {
	t.Run("returns the job", func(t *testing.T) {
		router, s := newTestRouter(t)
		completed := time.Now()
		job := &domain.RestoreJob{
			ID:           uuid.New().String(),
			BackupType:   domain.BackupTypeFull,
			Status:       domain.JobStatusCompletedWithErrors,
			TotalRecords: 3,
			SuccessCount: 2,
			FailureCount: 1,
			CompletedAt:  &completed,
		}
		s.backup.EXPECT().GetRestoreJob(mock.Anything, job.ID).Return(job, nil)

		w := doJSON(router, http.MethodGet, "/api/v1/restore/"+job.ID, nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp RestoreJobResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "completed_with_errors", resp.Status)
		assert.Equal(t, "full", resp.BackupType)
		require.NotNil(t, resp.CompletedAt)
	})

	t.Run("unknown job", func(t *testing.T) {
		router, s := newTestRouter(t)
		id := uuid.New().String()
		s.backup.EXPECT().GetRestoreJob(mock.Anything, id).Return(nil, nil)

		w := doJSON(router, http.MethodGet, "/api/v1/restore/"+id, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doJSON(router, http.MethodGet, "/api/v1/restore/123", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

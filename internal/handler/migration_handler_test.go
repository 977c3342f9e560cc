package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/migration"
)

const archiveName = "content_20240601T120000_0123abcd.ndjson"

func TestMigrationHandler_Run(t *testing.T) {
	t.Run("returns the tally", func(t *testing.T) {
		router, s := newTestRouter(t)
		tally := domain.MigrationTally{Mode: "status", DryRun: true, Scanned: 4, Attempted: 3, Succeeded: 2, Failed: 1, Skipped: 1}

		s.migration.EXPECT().Run(mock.Anything, "status", true).Return(tally, nil)

		w := doJSON(router, http.MethodPost, "/api/v1/migrations", MigrationRequest{Mode: "status", DryRun: true})

		require.Equal(t, http.StatusOK, w.Code)
		var got domain.MigrationTally
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, tally, got)
	})

	t.Run("requires a mode", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doJSON(router, http.MethodPost, "/api/v1/migrations", map[string]any{"dryRun": true})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown mode", func(t *testing.T) {
		router, s := newTestRouter(t)

		s.migration.EXPECT().
			Run(mock.Anything, "everything", false).
			Return(domain.MigrationTally{}, domain.NewValidationError("mode", `unknown mode "everything"`))

		w := doJSON(router, http.MethodPost, "/api/v1/migrations", MigrationRequest{Mode: "everything"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		router, s := newTestRouter(t)

		s.migration.EXPECT().
			Run(mock.Anything, "all", false).
			Return(domain.MigrationTally{}, errors.New("archive before migrate: disk full"))

		w := doJSON(router, http.MethodPost, "/api/v1/migrations", MigrationRequest{Mode: "all"})

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "migration failed", decodeError(t, w).Error)
	})
}

func TestMigrationHandler_Archives(t *testing.T) {
	router, s := newTestRouter(t)

	s.migration.EXPECT().Archives(mock.Anything).Return([]migration.Archive{
		{Name: archiveName, Size: 42, CreatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)},
	}, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/migrations/archives", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), archiveName)
}

func TestMigrationHandler_Rollback(t *testing.T) {
	t.Run("restores the archive", func(t *testing.T) {
		router, s := newTestRouter(t)

		s.migration.EXPECT().
			Rollback(mock.Anything, archiveName).
			Return(migration.RollbackResult{Archive: archiveName, Restored: 5, Backup: "content_20240601T120500_89abcdef.ndjson"}, nil)

		w := doJSON(router, http.MethodPost, "/api/v1/migrations/archives/"+archiveName+"/rollback", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var got migration.RollbackResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 5, got.Restored)
	})

	t.Run("unknown archive", func(t *testing.T) {
		router, s := newTestRouter(t)

		s.migration.EXPECT().
			Rollback(mock.Anything, archiveName).
			Return(migration.RollbackResult{}, fmt.Errorf("archive %s: %w", archiveName, domain.ErrNotFound))

		w := doJSON(router, http.MethodPost, "/api/v1/migrations/archives/"+archiveName+"/rollback", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMigrationHandler_Discard(t *testing.T) {
	router, s := newTestRouter(t)

	s.migration.EXPECT().Discard(mock.Anything, archiveName).Return(nil)

	w := doJSON(router, http.MethodDelete, "/api/v1/migrations/archives/"+archiveName, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

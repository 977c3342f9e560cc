package migration_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/migration"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/repository"
)

func TestArchiveStore_CreateLoad(t *testing.T) {
	dir := t.TempDir()
	store := migration.NewArchiveStore(dir)
	repo := seed(t, legacyItem("a", true, false), legacyItem("b", false, true))

	name, count, err := store.Create(context.Background(), repo)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Regexp(t, `^content_\d{8}T\d{6}_[0-9a-f]{8}\.ndjson$`, name)

	raw, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(raw), "\n"), "one item per line")

	records, err := store.Load(name)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].ID)

	var stored map[string]any
	require.NoError(t, json.Unmarshal(records[0].Raw, &stored))
	assert.Equal(t, true, stored["publishedEs"])
	assert.NotContains(t, stored, "statusEs", "absent fields stay absent")
}

// rawStore serves fixed stored records.
type rawStore struct {
	*repository.MemoryContentRepository
	records []repository.ContentRecord
}

func (s *rawStore) StreamRecords(ctx context.Context, callback func(repository.ContentRecord) error) error {
	for _, rec := range s.records {
		if err := callback(rec); err != nil {
			return err
		}
	}
	return nil
}

func TestArchiveStore_KeepsStoredFormVerbatim(t *testing.T) {
	store := migration.NewArchiveStore(t.TempDir())
	raw := json.RawMessage(`{"_id":"a","title":"old","__v":3,"legacyNote":"keep me"}`)
	src := &rawStore{
		MemoryContentRepository: repository.NewMemoryContentRepository(),
		records: []repository.ContentRecord{
			{ID: "a", Raw: raw},
			{ID: "b", Raw: json.RawMessage(`{"_id":"b","publishedDate":"2024-03-01"}`), Err: errors.New("cannot decode publishedDate")},
		},
	}

	name, count, err := store.Create(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "undecodable records are archived too")

	records, err := store.Load(name)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.JSONEq(t, string(raw), string(records[0].Raw))
	assert.Equal(t, "b", records[1].ID)
	assert.JSONEq(t, `{"_id":"b","publishedDate":"2024-03-01"}`, string(records[1].Raw))
}

func TestArchiveStore_RefusesRecordsWithoutStoredForm(t *testing.T) {
	dir := t.TempDir()
	store := migration.NewArchiveStore(dir)
	src := &rawStore{
		MemoryContentRepository: repository.NewMemoryContentRepository(),
		records:                 []repository.ContentRecord{{ID: "a", Err: errors.New("unreadable")}},
	}

	_, _, err := store.Create(context.Background(), src)
	require.Error(t, err)

	archives, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, archives, "no partial archive is published")
}

func TestArchiveStore_ListSkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	store := migration.NewArchiveStore(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644))

	archives, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, archives)

	name, _, err := store.Create(context.Background(), seed(t))
	require.NoError(t, err)

	archives, err = store.List()
	require.NoError(t, err)
	require.Len(t, archives, 1)
	assert.Equal(t, name, archives[0].Name)
	assert.False(t, archives[0].CreatedAt.IsZero())
}

func TestArchiveStore_MissingDir(t *testing.T) {
	store := migration.NewArchiveStore(filepath.Join(t.TempDir(), "missing"))
	archives, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, archives)
}

func TestArchiveStore_RejectsPathNames(t *testing.T) {
	store := migration.NewArchiveStore(t.TempDir())

	_, err := store.Load("../etc/passwd")
	assert.ErrorIs(t, err, domain.ErrValidationFailed)
	assert.ErrorIs(t, store.Discard("content_x.ndjson"), domain.ErrValidationFailed)

	_, err = store.Load("content_20240101T000000_deadbeef.ndjson")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

package migration_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/migration"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/repository"
)

var created = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

// legacyItem builds an item as written before the status enum existed.
func legacyItem(id string, es, en bool) domain.ContentItem {
	return domain.ContentItem{
		ID:          id,
		Title:       "item " + id,
		PublishedEs: es,
		PublishedEn: en,
		Tags:        []string{},
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func seed(t *testing.T, items ...domain.ContentItem) *repository.MemoryContentRepository {
	t.Helper()
	repo := repository.NewMemoryContentRepository()
	for i := range items {
		require.NoError(t, repo.Save(context.Background(), &items[i]))
	}
	return repo
}

func snapshot(t *testing.T, repo *repository.MemoryContentRepository) map[string][]byte {
	t.Helper()
	out := map[string][]byte{}
	require.NoError(t, repo.StreamAll(context.Background(), func(it domain.ContentItem) error {
		b, err := json.Marshal(it)
		out[it.ID] = b
		return err
	}))
	return out
}

func TestReconciler_DefaultScenario(t *testing.T) {
	ctx := context.Background()
	repo := seed(t, legacyItem("a", false, false))
	rec := migration.NewReconciler(repo, migration.NewArchiveStore(t.TempDir()))

	tally, err := rec.Run(ctx, migration.Options{Mode: migration.ModePlatform})
	require.NoError(t, err)
	assert.Equal(t, 1, tally.Attempted)
	assert.Equal(t, 1, tally.Succeeded)
	assert.NotEmpty(t, tally.Archive)

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	require.Len(t, got.PlatformStatus, len(domain.Platforms))

	yt := got.PlatformStatus[domain.PlatformYouTube]
	assert.Equal(t, domain.StatusPending, yt.StatusEs)
	assert.Equal(t, domain.StatusPending, yt.StatusEn)
	for _, p := range domain.Platforms[1:] {
		b := got.PlatformStatus[p]
		require.NotNil(t, b, p)
		assert.Equal(t, domain.StatusPending, b.StatusEs)
		assert.Equal(t, domain.StatusPending, b.StatusEn)
		assert.Empty(t, b.UrlEs)
		assert.Empty(t, b.UrlEn)
		assert.Nil(t, b.PublishedDateEs)
		assert.Nil(t, b.PublishedDateEn)
	}
}

func TestReconciler_PlatformSeedFromTopLevel(t *testing.T) {
	ctx := context.Background()
	shared := time.Date(2023, 5, 4, 0, 0, 0, 0, time.UTC)
	specific := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	item := legacyItem("b", true, true)
	item.StatusEn = domain.StatusInProgress
	item.PublishedEn = false
	item.PublishedUrlEs = "https://youtu.be/x"
	item.PublishedDate = &shared
	item.PublishedDateEn = &specific
	tiktok := &domain.PlatformBlock{StatusEs: domain.StatusPublished, StatusEn: domain.StatusPending, UrlEs: "https://tiktok.com/x"}
	item.PlatformStatus = map[domain.Platform]*domain.PlatformBlock{domain.PlatformTikTok: tiktok}

	repo := seed(t, item)
	rec := migration.NewReconciler(repo, nil)

	tally, err := rec.Run(ctx, migration.Options{Mode: migration.ModePlatform, DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 1, tally.Succeeded)

	// dry run leaves the store alone
	got, err := repo.Get(ctx, "b")
	require.NoError(t, err)
	assert.Nil(t, got.PlatformStatus[domain.PlatformYouTube])

	require.NoError(t, migration.Apply(got, migration.ModePlatform))
	yt := got.PlatformStatus[domain.PlatformYouTube]
	assert.Equal(t, domain.StatusPublished, yt.StatusEs)
	assert.Equal(t, "https://youtu.be/x", yt.UrlEs)
	require.NotNil(t, yt.PublishedDateEs)
	assert.True(t, shared.Equal(*yt.PublishedDateEs), "published without its own date falls back to the shared date")

	assert.Equal(t, domain.StatusInProgress, yt.StatusEn)
	require.NotNil(t, yt.PublishedDateEn)
	assert.True(t, specific.Equal(*yt.PublishedDateEn))

	assert.Equal(t, tiktok, got.PlatformStatus[domain.PlatformTikTok], "existing blocks are kept")
	assert.Equal(t, domain.StatusPending, got.PlatformStatus[domain.PlatformFacebook].StatusEs)
}

func TestReconciler_SharedDateOnlyWhenPublished(t *testing.T) {
	shared := time.Date(2023, 5, 4, 0, 0, 0, 0, time.UTC)
	item := legacyItem("c", false, false)
	item.PublishedDate = &shared

	require.NoError(t, migration.Apply(&item, migration.ModePlatform))
	assert.Nil(t, item.PlatformStatus[domain.PlatformYouTube].PublishedDateEs)
	assert.Nil(t, item.PlatformStatus[domain.PlatformYouTube].PublishedDateEn)
}

func TestReconciler_Idempotent(t *testing.T) {
	ctx := context.Background()
	items := []domain.ContentItem{
		legacyItem("1", false, false),
		legacyItem("2", true, false),
		legacyItem("3", false, true),
		legacyItem("4", true, true),
	}
	repo := seed(t, items...)
	rec := migration.NewReconciler(repo, migration.NewArchiveStore(t.TempDir()))

	first, err := rec.Run(ctx, migration.Options{Mode: migration.ModeAll})
	require.NoError(t, err)
	assert.Equal(t, 4, first.Succeeded)
	after := snapshot(t, repo)

	second, err := rec.Run(ctx, migration.Options{Mode: migration.ModeAll})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Attempted)
	assert.Equal(t, 4, second.Skipped)

	if diff := cmp.Diff(after, snapshot(t, repo)); diff != "" {
		t.Fatalf("second run modified items (-first +second):\n%s", diff)
	}

	got, err := repo.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPublished, got.StatusEs)
	assert.Equal(t, domain.StatusPending, got.StatusEn)
}

func TestReconciler_StatusModeNeverClobbers(t *testing.T) {
	ctx := context.Background()

	// both statuses present, one disagreeing with the flag, one not even valid
	manual := legacyItem("manual", true, false)
	manual.StatusEs = domain.StatusInProgress
	manual.StatusEn = "archived"
	partial := legacyItem("partial", true, false)
	partial.StatusEn = domain.StatusInProgress

	repo := seed(t, manual, partial)
	before := snapshot(t, repo)
	rec := migration.NewReconciler(repo, migration.NewArchiveStore(t.TempDir()))

	tally, err := rec.Run(ctx, migration.Options{Mode: migration.ModeStatus})
	require.NoError(t, err)
	assert.Equal(t, 1, tally.Skipped)
	assert.Equal(t, 1, tally.Succeeded)

	after := snapshot(t, repo)
	if diff := cmp.Diff(before["manual"], after["manual"]); diff != "" {
		t.Fatalf("fully migrated item changed (-before +after):\n%s", diff)
	}

	got, err := repo.Get(ctx, "partial")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPublished, got.StatusEs)
	assert.Equal(t, domain.StatusInProgress, got.StatusEn, "present status wins over the flag")
}

func TestReconciler_InvalidPresentStatusIsItemFailure(t *testing.T) {
	ctx := context.Background()
	bad := legacyItem("bad", false, false)
	bad.StatusEs = "done"

	repo := seed(t, bad, legacyItem("ok", false, false))
	rec := migration.NewReconciler(repo, nil)

	tally, err := rec.Run(ctx, migration.Options{Mode: migration.ModeStatus, DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 2, tally.Attempted)
	assert.Equal(t, 1, tally.Failed)
	assert.Equal(t, 1, tally.Succeeded)
	require.Len(t, tally.Failures, 1)
	assert.Contains(t, tally.Failures[0], "bad")
}

// flakyStore fails saves for chosen ids.
type flakyStore struct {
	*repository.MemoryContentRepository
	failIDs map[string]bool
	saves   int
}

func (s *flakyStore) SaveReconciled(ctx context.Context, item *domain.ContentItem) error {
	s.saves++
	if s.failIDs[item.ID] {
		return errors.New("write conflict")
	}
	return s.MemoryContentRepository.SaveReconciled(ctx, item)
}

func TestReconciler_IsolatesItemFailures(t *testing.T) {
	ctx := context.Background()
	var items []domain.ContentItem
	for i := 0; i < 25; i++ {
		items = append(items, legacyItem(fmt.Sprintf("item-%02d", i), i%2 == 0, false))
	}
	store := &flakyStore{MemoryContentRepository: seed(t, items...), failIDs: map[string]bool{"item-03": true, "item-17": true}}
	rec := migration.NewReconciler(store, migration.NewArchiveStore(t.TempDir()))

	tally, err := rec.Run(ctx, migration.Options{Mode: migration.ModeStatus})
	require.NoError(t, err)
	assert.Equal(t, 25, tally.Scanned)
	assert.Equal(t, 25, tally.Attempted)
	assert.Equal(t, 23, tally.Succeeded)
	assert.Equal(t, 2, tally.Failed)
	assert.Equal(t, 25, store.saves, "one save per item")

	got, err := store.Get(ctx, "item-24")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPublished, got.StatusEs)

	got, err = store.Get(ctx, "item-03")
	require.NoError(t, err)
	assert.Empty(t, got.StatusEs)
}

func TestReconciler_RejectsUnknownMode(t *testing.T) {
	rec := migration.NewReconciler(repository.NewMemoryContentRepository(), nil)
	_, err := rec.Run(context.Background(), migration.Options{Mode: "everything", DryRun: true})
	assert.ErrorIs(t, err, domain.ErrValidationFailed)
}

func TestReconciler_NonDryRunNeedsArchives(t *testing.T) {
	rec := migration.NewReconciler(repository.NewMemoryContentRepository(), nil)
	_, err := rec.Run(context.Background(), migration.Options{Mode: migration.ModeStatus})
	assert.Error(t, err)
}

func TestReconciler_RollbackRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := seed(t, legacyItem("x", true, false), legacyItem("y", false, false))
	original := snapshot(t, repo)
	rec := migration.NewReconciler(repo, migration.NewArchiveStore(t.TempDir()))

	tally, err := rec.Run(ctx, migration.Options{Mode: migration.ModeAll})
	require.NoError(t, err)
	migrated := snapshot(t, repo)
	require.NotEqual(t, original, migrated)

	result, err := rec.Rollback(ctx, tally.Archive)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Restored)
	assert.NotEmpty(t, result.Backup)

	if diff := cmp.Diff(original, snapshot(t, repo)); diff != "" {
		t.Fatalf("rollback did not restore the archive (-want +got):\n%s", diff)
	}

	// the rollback itself can be undone once
	_, err = rec.Rollback(ctx, result.Backup)
	require.NoError(t, err)
	if diff := cmp.Diff(migrated, snapshot(t, repo)); diff != "" {
		t.Fatalf("undoing the rollback failed (-want +got):\n%s", diff)
	}

	archives, err := rec.Archives()
	require.NoError(t, err)
	assert.Len(t, archives, 3)

	require.NoError(t, rec.Discard(tally.Archive))
	assert.ErrorIs(t, rec.Discard(tally.Archive), domain.ErrNotFound)
	_, err = rec.Rollback(ctx, tally.Archive)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// brokenRecordStore streams an undecodable record after the first item.
type brokenRecordStore struct {
	*repository.MemoryContentRepository
}

func (s *brokenRecordStore) StreamRecords(ctx context.Context, callback func(repository.ContentRecord) error) error {
	n := 0
	return s.MemoryContentRepository.StreamRecords(ctx, func(rec repository.ContentRecord) error {
		if err := callback(rec); err != nil {
			return err
		}
		n++
		if n != 1 {
			return nil
		}
		return callback(repository.ContentRecord{
			ID:  "broken",
			Raw: json.RawMessage(`{"_id":"broken","publishedDate":"2024-03-01"}`),
			Err: errors.New("cannot decode publishedDate"),
		})
	})
}

func TestReconciler_UndecodableRecordIsItemFailure(t *testing.T) {
	ctx := context.Background()
	store := &brokenRecordStore{seed(t, legacyItem("a", true, false), legacyItem("b", false, true))}
	rec := migration.NewReconciler(store, migration.NewArchiveStore(t.TempDir()))

	tally, err := rec.Run(ctx, migration.Options{Mode: migration.ModeStatus})
	require.NoError(t, err)
	assert.Equal(t, 3, tally.Scanned)
	assert.Equal(t, 3, tally.Attempted)
	assert.Equal(t, 2, tally.Succeeded)
	assert.Equal(t, 1, tally.Failed)
	require.Len(t, tally.Failures, 1)
	assert.Contains(t, tally.Failures[0], "broken")

	got, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPublished, got.StatusEn, "items after the bad record are still migrated")
}

// cancellingStore cancels the run on its first write.
type cancellingStore struct {
	*repository.MemoryContentRepository
	cancel context.CancelFunc
	saves  int
}

func (s *cancellingStore) SaveReconciled(ctx context.Context, item *domain.ContentItem) error {
	s.saves++
	s.cancel()
	return s.MemoryContentRepository.SaveReconciled(ctx, item)
}

func TestReconciler_CancelStopsRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store := &cancellingStore{
		MemoryContentRepository: seed(t, legacyItem("a", false, false), legacyItem("b", false, false), legacyItem("c", false, false)),
		cancel:                  cancel,
	}
	rec := migration.NewReconciler(store, nil)

	tally, err := rec.Run(ctx, migration.Options{Mode: migration.ModeStatus})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, 1, tally.Scanned)
}

// restoreCapture records what a rollback hands to the store.
type restoreCapture struct {
	rawStore
	restored []repository.ContentRecord
}

func (s *restoreCapture) RestoreRecords(_ context.Context, records []repository.ContentRecord) error {
	s.restored = records
	return nil
}

func TestReconciler_RollbackRestoresStoredForm(t *testing.T) {
	ctx := context.Background()
	raw := json.RawMessage(`{"_id":"a","title":"old","__v":3,"legacyNote":"keep me","publishedDate":"2024-03-01"}`)
	store := &restoreCapture{rawStore: rawStore{
		MemoryContentRepository: repository.NewMemoryContentRepository(),
		records:                 []repository.ContentRecord{{ID: "a", Raw: raw, Err: errors.New("cannot decode publishedDate")}},
	}}
	archives := migration.NewArchiveStore(t.TempDir())
	name, _, err := archives.Create(ctx, store)
	require.NoError(t, err)

	result, err := migration.NewReconciler(store, archives).Rollback(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Restored)
	require.Len(t, store.restored, 1)
	assert.Equal(t, "a", store.restored[0].ID)
	assert.JSONEq(t, string(raw), string(store.restored[0].Raw))
}

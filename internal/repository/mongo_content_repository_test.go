package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/migration"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/repository"
)

func TestMongoContentRepository_LegacyDocuments(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tm := SetupTestMongo(t)
	defer tm.Cleanup(t)

	repo := repository.NewMongoContentRepository(tm.DB)
	ctx := context.Background()
	coll := tm.DB.Collection(repository.ContentCollection)

	oid := primitive.NewObjectID()
	published := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	_, err := coll.InsertOne(ctx, bson.M{
		"_id":             oid,
		"title":           "legacy video",
		"publishedEs":     true,
		"publishedEn":     false,
		"publishedDateEs": published,
		"tags":            bson.A{"old"},
		"createdAt":       published,
	})
	require.NoError(t, err)

	t.Run("object ids surface as hex strings", func(t *testing.T) {
		got, err := repo.Get(ctx, oid.Hex())
		require.NoError(t, err)
		assert.Equal(t, oid.Hex(), got.ID)
		assert.Empty(t, got.StatusEs)
		assert.Equal(t, domain.StatusPublished, got.EffectiveStatus(domain.LangEs))
	})

	t.Run("save writes back under the original key", func(t *testing.T) {
		got, err := repo.Get(ctx, oid.Hex())
		require.NoError(t, err)
		got.StatusEs = domain.StatusPublished
		got.StatusEn = domain.StatusPending
		require.NoError(t, repo.Save(ctx, got))

		count, err := coll.CountDocuments(ctx, bson.M{})
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)

		var raw bson.M
		require.NoError(t, coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&raw))
		assert.Equal(t, "published", raw["statusEs"])
	})

	t.Run("stream returns callback errors", func(t *testing.T) {
		var seen []string
		require.NoError(t, repo.StreamAll(ctx, func(it domain.ContentItem) error {
			seen = append(seen, it.ID)
			return nil
		}))
		assert.Equal(t, []string{oid.Hex()}, seen)

		err := repo.StreamAll(ctx, func(domain.ContentItem) error { return context.Canceled })
		assert.ErrorIs(t, err, context.Canceled)
		err = repo.StreamRecords(ctx, func(repository.ContentRecord) error { return context.Canceled })
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("list by tag", func(t *testing.T) {
		found, err := repo.List(ctx, repository.ContentFilter{Tag: "missing"})
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestMongoContentRepository_ReconcileKeepsStoredDocuments(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tm := SetupTestMongo(t)
	defer tm.Cleanup(t)

	repo := repository.NewMongoContentRepository(tm.DB)
	ctx := context.Background()
	coll := tm.DB.Collection(repository.ContentCollection)

	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	legacy := primitive.NewObjectID()
	broken := primitive.NewObjectID()
	_, err := coll.InsertMany(ctx, []any{
		bson.M{
			"_id":         legacy,
			"title":       "legacy video",
			"publishedEs": true,
			"publishedEn": false,
			"tags":        bson.A{},
			"createdAt":   created,
			"__v":         0,
			"legacyNote":  "keep me",
		},
		bson.M{
			"_id":           broken,
			"title":         "hand edited",
			"publishedDate": "2024-03-01",
			"createdAt":     created,
		},
	})
	require.NoError(t, err)

	rec := migration.NewReconciler(repo, migration.NewArchiveStore(t.TempDir()))
	tally, err := rec.Run(ctx, migration.Options{Mode: migration.ModeAll})
	require.NoError(t, err)
	assert.Equal(t, 2, tally.Scanned)
	assert.Equal(t, 1, tally.Succeeded)
	assert.Equal(t, 1, tally.Failed)
	require.Len(t, tally.Failures, 1)
	assert.Contains(t, tally.Failures[0], broken.Hex())

	var raw bson.M
	require.NoError(t, coll.FindOne(ctx, bson.M{"_id": legacy}).Decode(&raw))
	assert.Equal(t, "keep me", raw["legacyNote"])
	assert.EqualValues(t, 0, raw["__v"])
	assert.Equal(t, "published", raw["statusEs"])
	assert.Equal(t, "pending", raw["statusEn"])
	assert.Contains(t, raw, "platformStatus")

	result, err := rec.Rollback(ctx, tally.Archive)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Restored)

	raw = bson.M{}
	require.NoError(t, coll.FindOne(ctx, bson.M{"_id": legacy}).Decode(&raw))
	assert.NotContains(t, raw, "statusEs")
	assert.NotContains(t, raw, "platformStatus")
	assert.Equal(t, "keep me", raw["legacyNote"])
	assert.EqualValues(t, 0, raw["__v"])
	assert.Equal(t, primitive.NewDateTimeFromTime(created), raw["createdAt"])

	raw = bson.M{}
	require.NoError(t, coll.FindOne(ctx, bson.M{"_id": broken}).Decode(&raw))
	assert.Equal(t, "2024-03-01", raw["publishedDate"])
}

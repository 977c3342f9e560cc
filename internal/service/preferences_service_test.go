package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/mocks"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/repository"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/service"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/validator"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestPreferencesService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("merges settings and cookies", func(t *testing.T) {
		svc := service.NewPreferencesService(repository.NewMemoryPreferencesRepository(), validator.NewValidator())

		_, err := svc.Update(ctx, service.PreferencesUpdate{Settings: map[string]any{"language": "es"}})
		require.NoError(t, err)

		prefs, err := svc.Update(ctx, service.PreferencesUpdate{
			Settings: map[string]any{"theme": "dark"},
			Cookies:  map[string]bool{"analytics": false},
		})
		require.NoError(t, err)

		assert.Equal(t, "dark", prefs.Settings["theme"])
		assert.Equal(t, "es", prefs.Settings["language"])
		assert.Equal(t, map[string]bool{"analytics": false}, prefs.Cookies)

		stored, err := svc.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, prefs.Settings, stored.Settings)
	})

	t.Run("nil removes a setting", func(t *testing.T) {
		svc := service.NewPreferencesService(repository.NewMemoryPreferencesRepository(), validator.NewValidator())

		_, err := svc.Update(ctx, service.PreferencesUpdate{Settings: map[string]any{"language": "en"}})
		require.NoError(t, err)
		prefs, err := svc.Update(ctx, service.PreferencesUpdate{Settings: map[string]any{"language": nil}})
		require.NoError(t, err)

		assert.NotContains(t, prefs.Settings, "language")
	})

	t.Run("unknown theme is rejected", func(t *testing.T) {
		repo := mocks.NewMockPreferencesRepository(t)
		svc := service.NewPreferencesService(repo, validator.NewValidator())

		repo.EXPECT().Get(mock.Anything).Return(domain.DefaultPreferences(), nil)

		_, err := svc.Update(ctx, service.PreferencesUpdate{Settings: map[string]any{"theme": "neon"}})

		assert.ErrorIs(t, err, domain.ErrValidationFailed)
	})

	t.Run("empty update", func(t *testing.T) {
		repo := mocks.NewMockPreferencesRepository(t)
		svc := service.NewPreferencesService(repo, validator.NewValidator())

		_, err := svc.Update(ctx, service.PreferencesUpdate{})

		assert.ErrorIs(t, err, domain.ErrEmptyUpdate)
	})
}

func TestPromptService(t *testing.T) {
	ctx := context.Background()
	svc := service.NewPromptService(repository.NewMemoryPromptRepository(), validator.NewValidator())

	created, err := svc.Create(ctx, &domain.Prompt{Title: "  Hook ideas ", Body: "Give me ten hooks", Category: "youtube"})
	require.NoError(t, err)
	assert.Equal(t, "Hook ideas", created.Title)
	assert.Equal(t, []string{}, created.Tags)

	_, err = svc.Create(ctx, &domain.Prompt{Title: "Caption", Body: "Write a caption", Category: "tiktok"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &domain.Prompt{Title: "No body"})
	assert.ErrorIs(t, err, domain.ErrValidationFailed)

	prompts, err := svc.List(ctx, "youtube")
	require.NoError(t, err)
	require.Len(t, prompts, 1)
	assert.Equal(t, created.ID, prompts[0].ID)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	updated, err := svc.Update(ctx, created.ID, &domain.Prompt{Title: "Hooks", Body: "Give me five hooks", Category: "youtube"})
	require.NoError(t, err)
	assert.Equal(t, "Hooks", updated.Title)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Get(ctx, uuid.New().String()+"x")
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
}

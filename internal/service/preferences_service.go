package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/repository"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/validator"
)

// PreferencesUpdate carries the keys to merge into the stored preferences.
// A nil setting value removes the key.
type PreferencesUpdate struct {
	Settings map[string]any  `json:"settings"`
	Cookies  map[string]bool `json:"cookies"`
}

// PreferencesService manages the single preferences document.
type PreferencesService struct {
	repo      repository.PreferencesRepository
	validator *validator.Validator
	now       func() time.Time
}

// NewPreferencesService creates a new PreferencesService.
func NewPreferencesService(repo repository.PreferencesRepository, v *validator.Validator) *PreferencesService {
	return &PreferencesService{
		repo:      repo,
		validator: v,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Get returns the stored preferences or the defaults.
func (s *PreferencesService) Get(ctx context.Context) (domain.Preferences, error) {
	prefs, err := s.repo.Get(ctx)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("get preferences: %w", err)
	}
	return prefs, nil
}

// Update merges the given keys into the stored preferences.
func (s *PreferencesService) Update(ctx context.Context, update PreferencesUpdate) (domain.Preferences, error) {
	if len(update.Settings) == 0 && len(update.Cookies) == 0 {
		return domain.Preferences{}, domain.ErrEmptyUpdate
	}

	prefs, err := s.Get(ctx)
	if err != nil {
		return domain.Preferences{}, err
	}
	mergePreferences(&prefs, update)

	if err := validator.ToDomainError(s.validator.ValidatePreferences(&prefs)); err != nil {
		return domain.Preferences{}, err
	}

	prefs.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, prefs); err != nil {
		return domain.Preferences{}, fmt.Errorf("save preferences: %w", err)
	}
	return prefs, nil
}

func mergePreferences(prefs *domain.Preferences, update PreferencesUpdate) {
	if prefs.Settings == nil {
		prefs.Settings = map[string]any{}
	}
	if prefs.Cookies == nil {
		prefs.Cookies = map[string]bool{}
	}
	for k, v := range update.Settings {
		if v == nil {
			delete(prefs.Settings, k)
			continue
		}
		prefs.Settings[k] = v
	}
	for k, v := range update.Cookies {
		prefs.Cookies[k] = v
	}
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
)

// PostgresPreferencesRepository implements PreferencesRepository using the
// single-row preferences table.
type PostgresPreferencesRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPreferencesRepository creates a new PostgresPreferencesRepository.
func NewPostgresPreferencesRepository(pool *pgxpool.Pool) *PostgresPreferencesRepository {
	return &PostgresPreferencesRepository{pool: pool}
}

// Get returns the stored preferences or the defaults.
func (r *PostgresPreferencesRepository) Get(ctx context.Context) (domain.Preferences, error) {
	var settings, cookies []byte
	prefs := domain.Preferences{}

	err := r.pool.QueryRow(ctx, `
		SELECT settings, cookies, updated_at FROM preferences WHERE id = 1
	`).Scan(&settings, &cookies, &prefs.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.DefaultPreferences(), nil
	}
	if err != nil {
		return prefs, fmt.Errorf("get preferences: %w", err)
	}

	if err := json.Unmarshal(settings, &prefs.Settings); err != nil {
		return prefs, fmt.Errorf("unmarshal settings: %w", err)
	}
	if err := json.Unmarshal(cookies, &prefs.Cookies); err != nil {
		return prefs, fmt.Errorf("unmarshal cookies: %w", err)
	}
	if prefs.Settings == nil {
		prefs.Settings = map[string]any{}
	}
	if prefs.Cookies == nil {
		prefs.Cookies = map[string]bool{}
	}
	return prefs, nil
}

// Save replaces the preferences document.
func (r *PostgresPreferencesRepository) Save(ctx context.Context, prefs domain.Preferences) error {
	if prefs.Settings == nil {
		prefs.Settings = map[string]any{}
	}
	if prefs.Cookies == nil {
		prefs.Cookies = map[string]bool{}
	}
	settings, err := json.Marshal(prefs.Settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	cookies, err := json.Marshal(prefs.Cookies)
	if err != nil {
		return fmt.Errorf("marshal cookies: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO preferences (id, settings, cookies, updated_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET settings = EXCLUDED.settings, cookies = EXCLUDED.cookies, updated_at = EXCLUDED.updated_at
	`, settings, cookies, prefs.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

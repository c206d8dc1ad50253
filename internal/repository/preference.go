package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PreferenceRepository persists small per-profile settings as strings.
type PreferenceRepository interface {
	Get(ctx context.Context, profile, key, def string) (string, error)
	Set(ctx context.Context, profile, key, value string) error
}

type sqlPreference struct {
	db *sql.DB
}

func NewPreferenceRepository(db *sql.DB) PreferenceRepository {
	return &sqlPreference{
		db: db,
	}
}

// Get returns def when the key was never set.
func (that *sqlPreference) Get(ctx context.Context, profile, key, def string) (string, error) {
	query := `SELECT value FROM preferences WHERE profile = ? AND key = ?`

	var value string

	err := that.db.QueryRowContext(ctx, query, profile, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}

	if err != nil {
		return def, fmt.Errorf("failed to get preference %q: %w", key, err)
	}

	return value, nil
}

func (that *sqlPreference) Set(ctx context.Context, profile, key, value string) error {
	query := `INSERT INTO preferences (profile, key, value) VALUES (?, ?, ?)
		ON CONFLICT (profile, key) DO UPDATE SET value = excluded.value`

	if _, err := that.db.ExecContext(ctx, query, profile, key, value); err != nil {
		return fmt.Errorf("failed to set preference %q: %w", key, err)
	}

	return nil
}

package repository

import (
	"database/sql"

	"github.com/aircloud/supportbot/internal/domain"
)

// SettingsRepository handles the singleton bot configuration row.
type SettingsRepository struct {
	db *DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get retrieves the bot configuration. Returns nil when the row has not
// been seeded yet.
func (r *SettingsRepository) Get() (*domain.BotConfig, error) {
	cfg := &domain.BotConfig{}
	var active int

	err := r.db.QueryRow(`
		SELECT key, context, is_active
		FROM settings WHERE key = ?
	`, domain.SettingsKey).Scan(&cfg.Key, &cfg.Context, &active)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	cfg.IsActive = active != 0
	return cfg, nil
}

// Upsert replaces both configuration fields in a single statement, so a
// reader never observes one field updated without the other.
func (r *SettingsRepository) Upsert(context string, isActive bool) (*domain.BotConfig, error) {
	active := 0
	if isActive {
		active = 1
	}

	_, err := r.db.Exec(`
		INSERT INTO settings (key, context, is_active)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET context = excluded.context, is_active = excluded.is_active
	`, domain.SettingsKey, context, active)
	if err != nil {
		return nil, err
	}

	return &domain.BotConfig{Key: domain.SettingsKey, Context: context, IsActive: isActive}, nil
}

// EnsureDefault seeds the configuration row on first start. Existing
// configuration is left untouched.
func (r *SettingsRepository) EnsureDefault(context string) error {
	_, err := r.db.Exec(`
		INSERT INTO settings (key, context, is_active)
		VALUES (?, ?, 1)
		ON CONFLICT(key) DO NOTHING
	`, domain.SettingsKey, context)
	return err
}

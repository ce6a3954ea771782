package repository

import (
	"testing"

	"github.com/aircloud/supportbot/internal/domain"
)

func TestSettingsGetBeforeSeedReturnsNil(t *testing.T) {
	repo := NewSettingsRepository(newTestDB(t))

	cfg, err := repo.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Fatalf("expected nil before seeding, got %+v", cfg)
	}
}

func TestSettingsEnsureDefault(t *testing.T) {
	repo := NewSettingsRepository(newTestDB(t))

	if err := repo.EnsureDefault(domain.DefaultContext); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	cfg, err := repo.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil || cfg.Key != domain.SettingsKey || !cfg.IsActive {
		t.Fatalf("unexpected seeded config: %+v", cfg)
	}
	if cfg.Context != domain.DefaultContext {
		t.Fatalf("seeded context does not match default")
	}

	// Seeding again must not clobber admin edits.
	if _, err := repo.Upsert("Custom context.", false); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := repo.EnsureDefault(domain.DefaultContext); err != nil {
		t.Fatalf("re-seed failed: %v", err)
	}

	cfg, err = repo.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Context != "Custom context." || cfg.IsActive {
		t.Fatalf("re-seed overwrote existing config: %+v", cfg)
	}
}

func TestSettingsUpsertReplacesBothFields(t *testing.T) {
	repo := NewSettingsRepository(newTestDB(t))

	if _, err := repo.Upsert("First.", true); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if _, err := repo.Upsert("Second.", false); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	cfg, err := repo.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Context != "Second." || cfg.IsActive {
		t.Fatalf("upsert left stale fields: %+v", cfg)
	}
}

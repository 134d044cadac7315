package repository

import (
	"testing"

	"artistry/internal/domain"
)

func TestSettingUpsert(t *testing.T) {
	db := testDB(t)
	repo := NewSettingRepository(db)

	if err := repo.Set("phone", `"+91 12345"`); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := repo.Get("phone")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != `"+91 12345"` {
		t.Fatalf("got %q", got)
	}

	// Second write to the same key replaces the value, no duplicate row.
	if err := repo.Set("phone", `"+91 99999"`); err != nil {
		t.Fatalf("set again: %v", err)
	}
	got, err = repo.Get("phone")
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if got != `"+91 99999"` {
		t.Fatalf("got %q after upsert", got)
	}
	list, err := repo.GetAll()
	if err != nil {
		t.Fatalf("getall: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 settings row, got %d", len(list))
	}
}

func TestSeedDefaultsDoesNotOverwrite(t *testing.T) {
	db := testDB(t)
	repo := NewSettingRepository(db)

	if err := repo.Set("phone", `"+91 12345"`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.SeedDefaults(domain.DefaultSettingKeys); err != nil {
		t.Fatalf("seed: %v", err)
	}
	got, err := repo.Get("phone")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != `"+91 12345"` {
		t.Fatalf("seed overwrote existing value: %q", got)
	}
	list, err := repo.GetAll()
	if err != nil {
		t.Fatalf("getall: %v", err)
	}
	if len(list) != len(domain.DefaultSettingKeys) {
		t.Fatalf("expected %d rows, got %d", len(domain.DefaultSettingKeys), len(list))
	}
}

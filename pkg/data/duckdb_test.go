package data

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) (*DuckDBStore, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "lectures-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	store, err := NewDuckDBStore(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to init DB: %v", err)
	}

	cleanup := func() {
		store.Close()
		os.RemoveAll(tmpDir)
	}

	return store, cleanup
}

func TestSetAndGet(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	if err := store.Set(ProgressKey, `{"1_0_Intro":{"completed":true}}`); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	value, err := store.Get(ProgressKey)
	if err != nil {
		t.Fatalf("Failed to get value: %v", err)
	}

	if value != `{"1_0_Intro":{"completed":true}}` {
		t.Errorf("Unexpected value: %s", value)
	}
}

func TestGetMissingKey(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := store.Get("missing")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got %v", err)
	}
}

func TestSetUpsert(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	if err := store.Set(DarkModeKey, "false"); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}
	if err := store.Set(DarkModeKey, "true"); err != nil {
		t.Fatalf("Failed to overwrite value: %v", err)
	}

	value, err := store.Get(DarkModeKey)
	if err != nil {
		t.Fatalf("Failed to get value: %v", err)
	}
	if value != "true" {
		t.Errorf("Expected 'true', got '%s'", value)
	}

	var rows int
	if err := store.db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&rows); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if rows != 1 {
		t.Errorf("Expected 1 row after upsert, got %d", rows)
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	store, err := NewDuckDBStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	if err := store.Set(IntroShownKey, "true"); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}
	store.Close()

	reopened, err := NewDuckDBStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	value, err := reopened.Get(IntroShownKey)
	if err != nil {
		t.Fatalf("Failed to get value: %v", err)
	}
	if value != "true" {
		t.Errorf("Expected 'true', got '%s'", value)
	}
}

package state

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		t.Fatalf("failed to init schema: %v", err)
	}

	return db
}

func TestGetVolume_Empty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	v, err := getVolume(db)
	if err != nil {
		t.Fatalf("getVolume failed: %v", err)
	}
	if v != 1.0 {
		t.Errorf("volume = %v, want default 1.0", v)
	}
}

func TestSaveAndGetVolume(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := saveVolume(db, 0.35); err != nil {
		t.Fatalf("saveVolume failed: %v", err)
	}

	v, err := getVolume(db)
	if err != nil {
		t.Fatalf("getVolume failed: %v", err)
	}
	if v != 0.35 {
		t.Errorf("volume = %v, want 0.35", v)
	}

	// Saving again overwrites the single row.
	if err := saveVolume(db, 0.8); err != nil {
		t.Fatalf("saveVolume failed: %v", err)
	}
	v, err = getVolume(db)
	if err != nil {
		t.Fatalf("getVolume failed: %v", err)
	}
	if v != 0.8 {
		t.Errorf("volume = %v, want 0.8", v)
	}
}

func TestSaveAndGetLastSource(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	desc, err := getLastSource(db)
	if err != nil {
		t.Fatalf("getLastSource failed: %v", err)
	}
	if desc != "" {
		t.Errorf("last source = %q, want empty on fresh db", desc)
	}

	if err := saveLastSource(db, "flac:/music/track.flac"); err != nil {
		t.Fatalf("saveLastSource failed: %v", err)
	}
	desc, err = getLastSource(db)
	if err != nil {
		t.Fatalf("getLastSource failed: %v", err)
	}
	if desc != "flac:/music/track.flac" {
		t.Errorf("last source = %q, want saved value", desc)
	}
}

func TestVolumeAndSourceCoexist(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := saveVolume(db, 0.5); err != nil {
		t.Fatal(err)
	}
	if err := saveLastSource(db, "sine 440Hz 2s"); err != nil {
		t.Fatal(err)
	}

	v, err := getVolume(db)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0.5 {
		t.Errorf("volume = %v, want 0.5 after saving source", v)
	}
}

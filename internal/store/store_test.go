package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const twoRows = `event_date,otp_count,user_count
2024-04-01,10,100
2024-04-01,20,5
`

const threeRows = twoRows + "2024-05-02,1,7\n"

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "otp.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDataset_CachesAcrossCalls(t *testing.T) {
	path := writeDataset(t, twoRows)
	s := New(path)

	ds, err := s.Dataset()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(ds.Records))
	}

	// Grow the file; the cache must keep serving the old view.
	if err := os.WriteFile(path, []byte(threeRows), 0644); err != nil {
		t.Fatal(err)
	}
	again, err := s.Dataset()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(again.Records) != 2 {
		t.Errorf("cache was bypassed: got %d records, want 2", len(again.Records))
	}
}

func TestInvalidate_ForcesReload(t *testing.T) {
	path := writeDataset(t, twoRows)
	s := New(path)
	if _, err := s.Dataset(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := os.WriteFile(path, []byte(threeRows), 0644); err != nil {
		t.Fatal(err)
	}
	s.Invalidate()

	ds, err := s.Dataset()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds.Records) != 3 {
		t.Errorf("got %d records after invalidate, want 3", len(ds.Records))
	}
}

func TestRefresh_KeepsPreviousOnFailure(t *testing.T) {
	path := writeDataset(t, twoRows)
	s := New(path)
	if _, err := s.Dataset(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Corrupt the file; refresh must fail but the cache must survive.
	if err := os.WriteFile(path, []byte("event_date,otp_count,user_count\nbad,1,1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Refresh(); err == nil {
		t.Fatal("expected refresh error for corrupt file")
	}

	ds, err := s.Dataset()
	if err != nil {
		t.Fatalf("cached dataset lost after failed refresh: %v", err)
	}
	if len(ds.Records) != 2 {
		t.Errorf("got %d records, want the 2 cached ones", len(ds.Records))
	}
}

func TestDataset_MissingFile(t *testing.T) {
	s := New("/nonexistent/otp.csv")
	if _, err := s.Dataset(); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestStale(t *testing.T) {
	path := writeDataset(t, twoRows)
	s := New(path)

	if s.Stale() {
		t.Error("Stale() = true before anything was loaded")
	}
	if _, err := s.Dataset(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Stale() {
		t.Error("Stale() = true immediately after load")
	}

	// Push the mtime forward to simulate an external rewrite.
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}
	if !s.Stale() {
		t.Error("Stale() = false after source mtime advanced")
	}
}

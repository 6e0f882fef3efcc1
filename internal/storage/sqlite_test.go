package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its parent were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreInMemory(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer store.Close()

	if _, err := store.RecordRun(Run{GameID: "memory", Result: "won", Level: 3}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	runs, err := store.RecentRuns("memory", 10)
	if err != nil || len(runs) != 1 {
		t.Fatalf("RecentRuns() = %v, %v", runs, err)
	}
}

func TestStoreRecordAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	runs := []Run{
		{GameID: "memory", Player: "ana", Result: "timed_out", Level: 1, Matched: 1, Duration: 20 * time.Second, CreatedAt: base},
		{GameID: "memory", Player: "ana", Result: "won", Level: 3, Matched: 8, Duration: 95 * time.Second, CreatedAt: base.Add(time.Hour)},
		{GameID: "memory", Player: "bo", Result: "timed_out", Level: 2, Matched: 3, Duration: 80 * time.Second, CreatedAt: base.Add(30 * time.Minute)},
		{GameID: "other", Player: "bo", Result: "won", Level: 1, CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, r := range runs {
		if _, err := store.RecordRun(r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	got, err := store.RecentRuns("memory", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(got))
	}

	// Newest first
	if got[0].Result != "won" || got[1].Player != "bo" || got[2].Level != 1 {
		t.Errorf("order = %+v", got)
	}
	if got[0].Duration != 95*time.Second || got[0].Matched != 8 {
		t.Errorf("round trip lost fields: %+v", got[0])
	}
	if !got[0].CreatedAt.Equal(base.Add(time.Hour)) {
		t.Errorf("CreatedAt = %v", got[0].CreatedAt)
	}

	all, _ := store.RecentRuns("", 10)
	if len(all) != 4 || all[0].GameID != "other" {
		t.Errorf("all games = %+v", all)
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)
	for i := range 15 {
		if _, err := store.RecordRun(Run{GameID: "memory", Result: "timed_out", Level: 1 + i%3}); err != nil {
			t.Fatal(err)
		}
	}

	runs, _ := store.RecentRuns("memory", 5)
	if len(runs) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(runs))
	}

	runs, _ = store.RecentRuns("memory", 0)
	if len(runs) != 10 {
		t.Errorf("limit 0 should default to 10, got %d", len(runs))
	}
}

func TestStoreResultCounts(t *testing.T) {
	store := openTestStore(t)
	for _, result := range []string{"won", "timed_out", "timed_out", "timed_out", "won"} {
		store.RecordRun(Run{GameID: "memory", Result: result, Level: 1})
	}
	store.RecordRun(Run{GameID: "other", Result: "won", Level: 1})

	counts, err := store.ResultCounts("memory")
	if err != nil {
		t.Fatalf("ResultCounts() failed: %v", err)
	}
	want := []ResultCount{{"timed_out", 3}, {"won", 2}}
	if len(counts) != len(want) {
		t.Fatalf("counts = %+v, want %+v", counts, want)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("counts[%d] = %+v, want %+v", i, counts[i], want[i])
		}
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)
	store.RecordRun(Run{GameID: "memory", Result: "won", Level: 3})
	store.RecordRun(Run{GameID: "memory", Result: "timed_out", Level: 1})
	store.RecordRun(Run{GameID: "other", Result: "won", Level: 1})

	n, err := store.ClearRuns("memory")
	if err != nil || n != 2 {
		t.Fatalf("ClearRuns() = %d, %v", n, err)
	}
	if runs, _ := store.RecentRuns("memory", 10); len(runs) != 0 {
		t.Errorf("runs left after clear: %+v", runs)
	}
	if runs, _ := store.RecentRuns("other", 10); len(runs) != 1 {
		t.Errorf("clear touched other games: %+v", runs)
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store1.RecordRun(Run{GameID: "memory", Player: "ana", Result: "won", Level: 3})
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	runs, _ := store2.RecentRuns("memory", 10)
	if len(runs) != 1 || runs[0].Player != "ana" {
		t.Errorf("runs after reopen = %+v", runs)
	}
}

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dermotk/heart-chase/internal/game"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	results := []game.Result{
		{Outcome: game.OutcomeGameOver, Level: 1, Hearts: 1, Duration: 30000},
		{Outcome: game.OutcomeWin, Level: 2, Hearts: 4, Duration: 95000},
		{Outcome: game.OutcomeWin, Level: 2, Hearts: 4, Duration: 60000},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	recent, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("RecentResults() returned %d entries, expected 3", len(recent))
	}
	// Newest first
	if recent[0].DurationMS != 60000 {
		t.Errorf("first entry duration = %d, expected the latest insert", recent[0].DurationMS)
	}
}

func TestWinsOrderedByDuration(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []game.Result{
		{Outcome: game.OutcomeWin, Level: 2, Hearts: 4, Duration: 95000},
		{Outcome: game.OutcomeGameOver, Level: 1, Hearts: 0, Duration: 5000},
		{Outcome: game.OutcomeWin, Level: 2, Hearts: 4, Duration: 60000},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	wins, err := store.Wins()
	if err != nil {
		t.Fatalf("Wins() failed: %v", err)
	}
	if len(wins) != 2 {
		t.Fatalf("Wins() returned %d entries, expected 2", len(wins))
	}
	if wins[0].DurationMS != 60000 || wins[1].DurationMS != 95000 {
		t.Error("Wins() not ordered fastest first")
	}
	for _, w := range wins {
		if w.Outcome != game.OutcomeWin {
			t.Errorf("Wins() returned outcome %q", w.Outcome)
		}
	}
}

func TestRecentResultsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := range 5 {
		if _, err := store.SaveResult(game.Result{
			Outcome: game.OutcomeGameOver, Level: 1, Hearts: i, Duration: 1000,
		}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	recent, err := store.RecentResults(2)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("RecentResults(2) returned %d entries", len(recent))
	}
}

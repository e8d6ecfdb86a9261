package storage

import (
	"os"
	"path/filepath"
	"testing"
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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []struct {
		name  string
		score int
		level int
	}{
		{"ann", 100, 1},
		{"bob", 50, 1},
		{"cat", 200, 3},
	} {
		if _, err := store.SaveHighScore(e.name, e.score, e.level); err != nil {
			t.Fatalf("SaveHighScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores()
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending, names normalized to uppercase
	if scores[0].Score != 200 || scores[0].Name != "CAT" {
		t.Errorf("Top entry = %q/%d, want CAT/200", scores[0].Name, scores[0].Score)
	}
	if scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Order wrong: %d, %d", scores[1].Score, scores[2].Score)
	}
	if scores[0].Level != 3 {
		t.Errorf("Level = %d, want 3", scores[0].Level)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not recorded")
	}
}

func TestStoreKeepsOnlyTopFive(t *testing.T) {
	store := openTestStore(t)

	for i, score := range []int{10, 70, 30, 90, 50, 20, 80} {
		name := string(rune('A'+i)) + "AA"
		if _, err := store.SaveHighScore(name, score, 1); err != nil {
			t.Fatalf("SaveHighScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores()
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != MaxHighScores {
		t.Fatalf("Expected %d scores, got %d", MaxHighScores, len(scores))
	}

	want := []int{90, 80, 70, 50, 30}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("Position %d: score %d, want %d", i, scores[i].Score, w)
		}
	}
}

func TestStoreQualifies(t *testing.T) {
	store := openTestStore(t)

	if ok, _ := store.Qualifies(0); ok {
		t.Error("Zero score qualified")
	}
	if ok, _ := store.Qualifies(1); !ok {
		t.Error("Score did not qualify on an empty table")
	}

	for i := 0; i < MaxHighScores; i++ {
		if _, err := store.SaveHighScore("AAA", (i+1)*100, 1); err != nil {
			t.Fatalf("SaveHighScore() failed: %v", err)
		}
	}

	if ok, _ := store.Qualifies(100); ok {
		t.Error("Score tying the worst entry qualified on a full table")
	}
	if ok, _ := store.Qualifies(150); !ok {
		t.Error("Score beating the worst entry did not qualify")
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Empty table best = %d, want 0", best)
	}

	store.SaveHighScore("AAA", 700, 2)
	store.SaveHighScore("BBB", 300, 1)

	best, err = store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 700 {
		t.Errorf("Best = %d, want 700", best)
	}
}

func TestStoreRejectsEmptyName(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveHighScore("   ", 100, 1); err == nil {
		t.Error("Blank name accepted")
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc", "ABC"},
		{"toolong", "TOO"},
		{"a", "A  "},
		{" zz ", "ZZ "},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveHighScore("AAA", 1234, 4); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer reopened.Close()

	scores, err := reopened.TopScores()
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 1234 {
		t.Errorf("Scores after reopen: %+v", scores)
	}
}

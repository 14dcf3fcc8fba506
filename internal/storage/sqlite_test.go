package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-island/internal/island"
)

func openStore(t *testing.T) *Store {
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreWorldRoundTrip(t *testing.T) {
	store := openStore(t)

	rec := island.Generate(island.DefaultParams(), 42)
	saved := island.Record{Seed: 42}
	for _, tr := range rec.Trees {
		saved.Trees = append(saved.Trees, island.TreeRecord{
			ID: tr.ID, X: tr.Pos.X, Y: tr.Pos.Y,
			Fruit:         tr.Fruit.String(),
			InstantHazard: tr.InstantHazard,
		})
	}
	for _, r := range rec.Rocks {
		saved.Rocks = append(saved.Rocks, island.RockRecord{ID: r.ID, X: r.Pos.X, Y: r.Pos.Y})
	}
	saved.Trees[3].Shaken = true
	saved.Trees[5].HazardSpent = true

	if err := store.SaveWorld(saved); err != nil {
		t.Fatalf("SaveWorld() failed: %v", err)
	}

	loaded, ok, err := store.LoadWorld()
	if err != nil {
		t.Fatalf("LoadWorld() failed: %v", err)
	}
	if !ok {
		t.Fatal("LoadWorld() found nothing after a save")
	}
	if !reflect.DeepEqual(loaded, saved) {
		t.Errorf("world changed across save/load:\n got %+v\nwant %+v", loaded, saved)
	}
}

func TestStoreWorldOverwrite(t *testing.T) {
	store := openStore(t)

	first := island.Record{Seed: 1, Trees: []island.TreeRecord{
		{ID: 0, X: 1, Y: 2, Fruit: "peach"},
		{ID: 1, X: 3, Y: 4, Fruit: "none"},
	}}
	second := island.Record{Seed: 2, Trees: []island.TreeRecord{
		{ID: 0, X: 5, Y: 6, Fruit: "apple", Shaken: true},
	}}

	if err := store.SaveWorld(first); err != nil {
		t.Fatalf("SaveWorld() failed: %v", err)
	}
	if err := store.SaveWorld(second); err != nil {
		t.Fatalf("SaveWorld() failed: %v", err)
	}

	loaded, ok, err := store.LoadWorld()
	if err != nil || !ok {
		t.Fatalf("LoadWorld() failed: %v ok=%v", err, ok)
	}
	if loaded.Seed != 2 || len(loaded.Trees) != 1 {
		t.Errorf("second save should fully replace the first, got %+v", loaded)
	}
}

func TestStoreLoadWorldEmpty(t *testing.T) {
	store := openStore(t)

	_, ok, err := store.LoadWorld()
	if err != nil {
		t.Fatalf("LoadWorld() failed: %v", err)
	}
	if ok {
		t.Error("LoadWorld() reported a world in an empty database")
	}
}

func TestStoreClearWorld(t *testing.T) {
	store := openStore(t)

	rec := island.Record{Seed: 9, Trees: []island.TreeRecord{{ID: 0, X: 1, Y: 1, Fruit: "none"}}}
	if err := store.SaveWorld(rec); err != nil {
		t.Fatalf("SaveWorld() failed: %v", err)
	}
	if err := store.ClearWorld(); err != nil {
		t.Fatalf("ClearWorld() failed: %v", err)
	}

	if _, ok, err := store.LoadWorld(); err != nil || ok {
		t.Errorf("world should be gone after clear: ok=%v err=%v", ok, err)
	}
}

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := openStore(t)

	for _, s := range []struct {
		score   int
		outcome string
	}{
		{7, OutcomeCaught},
		{3, OutcomeInstant},
		{12, OutcomeQuit},
	} {
		if _, err := store.SaveScore(s.score, s.outcome); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 12 || scores[1].Score != 7 || scores[2].Score != 3 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Outcome != OutcomeQuit {
		t.Errorf("Expected best run to end with %q, got %q", OutcomeQuit, scores[0].Outcome)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore((i+1)*2, OutcomeQuit)
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 10 || scores[1].Score != 8 || scores[2].Score != 6 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openStore(t)

	// No scores yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty database, got %d", high)
	}

	store.SaveScore(4, OutcomeCaught)
	store.SaveScore(11, OutcomeQuit)
	store.SaveScore(8, OutcomeCaught)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 11 {
		t.Errorf("Expected high score of 11, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openStore(t)

	store.SaveScore(5, OutcomeQuit)
	store.SaveScore(6, OutcomeCaught)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

package storage

import (
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("close storage: %v", err)
		}
	})
	return s
}

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()
	if prefs.Username != "Player" {
		t.Errorf("want username 'Player', got %q", prefs.Username)
	}
	if prefs.Difficulty != DifficultyMedium {
		t.Error("want medium difficulty by default")
	}
	if prefs.PlayerColor != ColorWhite {
		t.Error("want white by default")
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	s := openTestStorage(t)

	prefs := DefaultPreferences()
	prefs.Username = "Tester"
	prefs.Difficulty = DifficultyHard
	prefs.PlayerColor = ColorBlack

	if err := s.SavePreferences(prefs); err != nil {
		t.Fatal(err)
	}

	loaded, err := s.LoadPreferences()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Username != "Tester" || loaded.Difficulty != DifficultyHard || loaded.PlayerColor != ColorBlack {
		t.Errorf("preferences round trip mismatch: %+v", loaded)
	}
}

func TestLoadPreferencesDefaultsWhenMissing(t *testing.T) {
	s := openTestStorage(t)

	prefs, err := s.LoadPreferences()
	if err != nil {
		t.Fatal(err)
	}
	if prefs.Username != "Player" {
		t.Errorf("missing prefs should return defaults, got %+v", prefs)
	}
}

func TestRecordGame(t *testing.T) {
	s := openTestStorage(t)

	results := []GameResult{
		{Won: true, Difficulty: DifficultyEasy, Duration: time.Minute},
		{Won: true, Difficulty: DifficultyEasy, Duration: time.Minute},
		{Draw: true, Difficulty: DifficultyMedium, Duration: time.Minute},
		{Won: false, Difficulty: DifficultyHard, Duration: time.Minute},
	}
	for _, r := range results {
		if err := s.RecordGame(r); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.GamesPlayed != 4 || stats.Wins != 2 || stats.Draws != 1 || stats.Losses != 1 {
		t.Errorf("stats wrong: %+v", stats)
	}
	if stats.LongestWinStrk != 2 {
		t.Errorf("want streak 2, got %d", stats.LongestWinStrk)
	}
	if stats.WinsByDiff["easy"] != 2 {
		t.Errorf("want 2 easy wins, got %d", stats.WinsByDiff["easy"])
	}
	if rate := stats.GetWinRate(); rate != 50 {
		t.Errorf("want 50%% win rate, got %.2f%%", rate)
	}
}

func TestSavedGames(t *testing.T) {
	s := openTestStorage(t)

	games := []*SavedGame{
		{ID: "italian", Moves: []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4"}, Result: "active"},
		{ID: "scholars", Moves: []string{"e2e4", "e7e5", "d1h5", "b8c6", "f1c4", "g8f6", "h5f7"}, Result: "checkmate"},
	}
	for _, g := range games {
		if err := s.SaveGame(g); err != nil {
			t.Fatal(err)
		}
	}

	loaded, err := s.LoadGame("scholars")
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Moves) != 7 || loaded.Result != "checkmate" {
		t.Errorf("saved game mismatch: %+v", loaded)
	}
	if loaded.SavedAt.IsZero() {
		t.Error("SavedAt not stamped")
	}

	ids, err := s.ListGames()
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 {
		t.Fatalf("want 2 saved games, got %v", ids)
	}

	if err := s.DeleteGame("italian"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.LoadGame("italian"); err != badger.ErrKeyNotFound {
		t.Errorf("want ErrKeyNotFound after delete, got %v", err)
	}

	if err := s.SaveGame(&SavedGame{}); err == nil {
		t.Error("empty id should be rejected")
	}
}

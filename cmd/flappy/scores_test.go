package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func testStore(t *testing.T, entries ...storage.ScoreEntry) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	for _, e := range entries {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	return store
}

func TestPrintScores(t *testing.T) {
	store := testStore(t,
		storage.ScoreEntry{Score: 2, Avatar: "blue", Backdrop: "day", Pipe: "green"},
		storage.ScoreEntry{Score: 5.5, Avatar: "red", Backdrop: "night", Pipe: "red"},
	)

	tests := []struct {
		name     string
		backdrop string
		want     []string
		notWant  string
	}{
		{"all", "", []string{"High Scores - All", "5.5", "Best: 5.5"}, ""},
		{"night only", "night", []string{"High Scores - night", "Best: 5.5"}, "blue"},
		{"day only", "day", []string{"Best: 2"}, "5.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := printScores(&buf, store, tt.backdrop); err != nil {
				t.Fatalf("printScores() failed: %v", err)
			}
			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
			if tt.notWant != "" && strings.Contains(out, tt.notWant) {
				t.Errorf("output should not contain %q:\n%s", tt.notWant, out)
			}
		})
	}
}

func TestPrintScoresEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := printScores(&buf, testStore(t), ""); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrintStats(t *testing.T) {
	store := testStore(t,
		storage.ScoreEntry{Score: 1, Avatar: "blue", Backdrop: "day", Pipe: "green"},
		storage.ScoreEntry{Score: 3, Avatar: "blue", Backdrop: "day", Pipe: "green"},
		storage.ScoreEntry{Score: 4.5, Avatar: "red", Backdrop: "night", Pipe: "red"},
	)

	var buf bytes.Buffer
	if err := printStats(&buf, store); err != nil {
		t.Fatalf("printStats() failed: %v", err)
	}
	out := buf.String()

	if strings.Index(out, "day") > strings.Index(out, "night") {
		t.Error("backdrops should be listed in name order")
	}
	for _, w := range []string{"2.00", "4.5", "Last played:"} {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestPrintStatsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := printStats(&buf, testStore(t)); err != nil {
		t.Fatalf("printStats() failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "No games played yet." {
		t.Errorf("output = %q", buf.String())
	}
}

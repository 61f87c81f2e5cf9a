package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func seedScores(t *testing.T) *storage.Store {
	t.Helper()
	store := openStore(t)
	entries := []storage.ScoreEntry{
		{Score: 3, Avatar: "blue", Backdrop: "day", Pipe: "green"},
		{Score: 1.5, Avatar: "red", Backdrop: "night", Pipe: "red"},
		{Score: 7.5, Avatar: "yellow", Backdrop: "night", Pipe: "green"},
	}
	for _, e := range entries {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	return store
}

func TestScoreRows(t *testing.T) {
	created := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)
	rows := ScoreRows([]storage.ScoreEntry{
		{Score: 7.5, Avatar: "yellow", Backdrop: "night", Pipe: "green", CreatedAt: created},
		{Score: 3, Avatar: "blue", Backdrop: "day", Pipe: "red", CreatedAt: created},
	})

	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	want := []string{"#1", "7.5", "yellow", "night", "green", "Mar 09 14:05"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("row 0 col %d = %q, want %q", i, rows[0][i], cell)
		}
	}
	if rows[1][0] != "#2" || rows[1][1] != "3" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestScoreboardTabs(t *testing.T) {
	m := NewScoreboardModel(seedScores(t), 100, 30)

	steps := []struct {
		name  string
		key   tea.KeyMsg
		title string
		count int
	}{
		{"next to day", tea.KeyMsg{Type: tea.KeyTab}, "Day", 1},
		{"next to night", tea.KeyMsg{Type: tea.KeyRight}, "Night", 2},
		{"wrap to all", tea.KeyMsg{Type: tea.KeyTab}, "All", 3},
		{"back to night", tea.KeyMsg{Type: tea.KeyShiftTab}, "Night", 2},
	}

	if got := len(m.Scores()); got != 3 {
		t.Fatalf("All tab shows %d scores, want 3", got)
	}
	if m.Scores()[0].Score != 7.5 {
		t.Errorf("first score = %v, want best first", m.Scores()[0].Score)
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			next, _ := m.Update(step.key)
			m = next.(ScoreboardModel)
			if got := len(m.Scores()); got != step.count {
				t.Errorf("scores = %d, want %d", got, step.count)
			}
			if !strings.Contains(m.View(), "HIGH SCORES - "+step.title) {
				t.Errorf("View() missing title for %s", step.title)
			}
		})
	}
}

func TestScoreboardLayouts(t *testing.T) {
	store := seedScores(t)

	wide := NewScoreboardModel(store, 100, 30).View()
	if !strings.Contains(wide, "Backdrop") {
		t.Error("wide layout should show the backdrop sidebar")
	}

	narrow := NewScoreboardModel(store, 60, 30).View()
	if strings.Contains(narrow, "> All") {
		t.Error("narrow layout should not show the sidebar")
	}
	if !strings.Contains(narrow, "Night") {
		t.Error("narrow layout should show the tabs")
	}
}

func TestScoreboardEmptyAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("empty scoreboard should say so")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if cmd == nil || !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back")
	}
	if m.View() != "" {
		t.Error("View() should be empty after leaving")
	}
}

package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// session wraps a model and a fake clock for driving it tick by tick.
type session struct {
	t   *testing.T
	m   Model
	now time.Time
}

func newSession(t *testing.T, store *storage.Store) *session {
	t.Helper()
	m := NewModel(Options{
		Game: config.DefaultFlappyConfig(),
		Runtime: core.RuntimeConfig{
			ScreenW:  80,
			ScreenH:  24,
			TickRate: 60,
			Seed:     1,
		},
		Store:         store,
		ScreenshotDir: t.TempDir(),
	})
	return &session{t: t, m: m, now: epoch}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func (s *session) send(msg tea.Msg) tea.Cmd {
	next, cmd := s.m.Update(msg)
	s.m = next.(Model)
	return cmd
}

func (s *session) tick(d time.Duration) {
	s.now = s.now.Add(d)
	s.send(TickMsg(s.now))
}

// tickUntil runs 16ms ticks until cond holds or limit ticks have run.
func (s *session) tickUntil(limit int, cond func() bool) bool {
	for i := 0; i < limit; i++ {
		if cond() {
			return true
		}
		s.tick(16 * time.Millisecond)
	}
	return cond()
}

// pickDefaults selects blue bird, day and green pipes from the menu.
func (s *session) pickDefaults() {
	s.send(tea.KeyMsg{Type: tea.KeyEnter})
	s.send(tea.KeyMsg{Type: tea.KeyDown})
	s.send(tea.KeyMsg{Type: tea.KeyEnter})
	s.send(tea.KeyMsg{Type: tea.KeyDown})
	s.send(tea.KeyMsg{Type: tea.KeyEnter})
}

func (s *session) state() flappy.State {
	return s.m.Machine().State()
}

func TestModelMenuConsumesKeys(t *testing.T) {
	s := newSession(t, nil)

	if !s.m.Picker().Visible() {
		t.Fatal("menu should be shown at start")
	}

	s.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !s.m.Picker().IsSelected(flappy.ItemBlueBird) {
		t.Error("space in the menu should select the item under the cursor")
	}

	s.pickDefaults()
	if len(s.m.Picker().Items()) != 2 {
		t.Errorf("items = %v, want blue bird toggled off and day and green on", s.m.Picker().Items())
	}

	if !strings.Contains(s.m.View(), "F L A P P Y") {
		t.Error("View() should render the menu while it is shown")
	}
}

func TestModelPlaysAGame(t *testing.T) {
	s := newSession(t, nil)
	s.pickDefaults()

	if !s.tickUntil(60, func() bool { return s.state() == flappy.StateStartMessage }) {
		t.Fatalf("state = %v, want StartMessage after confirming the menu", s.state())
	}
	if s.m.Picker().Visible() {
		t.Error("menu should hide once the selection is confirmed")
	}
	if !strings.Contains(s.m.View(), "FLAPPY") {
		t.Errorf("View() should show the start message:\n%s", s.m.View())
	}

	s.send(tea.KeyMsg{Type: tea.KeyEnter})
	s.tick(16 * time.Millisecond)
	if s.state() != flappy.StateRunning {
		t.Fatalf("state = %v, want Running after enter", s.state())
	}

	s.m.Machine().World().Player().Y = 570
	if !s.tickUntil(5, func() bool { return s.state() == flappy.StateRestarting }) {
		t.Fatalf("state = %v, want Restarting after hitting the floor", s.state())
	}
	if !s.m.scoreSaved {
		t.Error("game over should be recorded once")
	}
	if !strings.Contains(s.m.View(), "GAME OVER") {
		t.Errorf("View() should show the game over message:\n%s", s.m.View())
	}

	s.tick(time.Second + 16*time.Millisecond)
	if s.state() != flappy.StateMenuSelection {
		t.Fatalf("state = %v, want MenuSelection after the restart delay", s.state())
	}
	if !s.m.Picker().Visible() || len(s.m.Picker().Items()) != 0 {
		t.Error("menu should be shown again with an empty selection")
	}
}

func TestModelMouseClickStarts(t *testing.T) {
	s := newSession(t, nil)
	s.pickDefaults()
	s.tickUntil(60, func() bool { return s.state() == flappy.StateStartMessage })

	s.send(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	s.tick(16 * time.Millisecond)

	if s.state() != flappy.StateRunning {
		t.Errorf("state = %v, want Running after a click", s.state())
	}
}

func TestModelSaveScore(t *testing.T) {
	store := openStore(t)
	s := newSession(t, store)
	sel := flappy.Selection{Avatar: flappy.AvatarRed, Backdrop: flappy.BackdropNight, Pipe: flappy.PipeRed}

	s.m.saveScore(0, sel)
	s.m.saveScore(2.5, sel)

	scores, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1 (zero scores are skipped)", len(scores))
	}
	got := scores[0]
	if got.Score != 2.5 || got.Avatar != "red" || got.Backdrop != "night" || got.Pipe != "red" {
		t.Errorf("saved entry = %+v", got)
	}
	if s.m.Best() != 2.5 {
		t.Errorf("Best() = %v, want 2.5", s.m.Best())
	}
}

func TestModelBestFromStore(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore(storage.ScoreEntry{Score: 4, Avatar: "blue", Backdrop: "day", Pipe: "green"}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	s := newSession(t, store)
	if s.m.Best() != 4 {
		t.Errorf("Best() = %v, want 4", s.m.Best())
	}
	if !strings.Contains(s.m.View(), "Best: 4") {
		t.Error("menu should show the best score")
	}
}

func TestModelQuit(t *testing.T) {
	s := newSession(t, nil)

	if cmd := s.send(runeKey('q')); cmd == nil {
		t.Error("q should return a quit command")
	}
	if s.m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelScreenshot(t *testing.T) {
	s := newSession(t, nil)

	s.send(tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(s.m.shotDir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "flappy_") {
		t.Errorf("screenshot files = %v, want one flappy_*.txt", entries)
	}
}

func TestModelResize(t *testing.T) {
	s := newSession(t, nil)

	s.send(tea.WindowSizeMsg{Width: 100, Height: 30})

	if s.m.screen.Width() != 100 || s.m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", s.m.screen.Width(), s.m.screen.Height())
	}
}

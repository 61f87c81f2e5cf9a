package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/menu"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Options configures a terminal game session.
type Options struct {
	Game    config.FlappyConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional; nil disables high scores
	Audio   flappy.Audio   // Optional; nil is silent
	Logger  *log.Logger    // Optional
	// ScreenshotDir is where ctrl+s writes the screen. Empty uses ~/.flappy/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for a game session: the customization menu,
// the game canvas, and high score saving.
type Model struct {
	machine    *flappy.Machine
	picker     *menu.Picker
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	shotDir    string
	best       float64
	quitting   bool
	scoreSaved bool // Whether the score of the current game over has been saved
}

// NewModel creates a new Bubble Tea model.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	picker := menu.New()
	machine := flappy.New(flappy.Options{
		Config:  opts.Game,
		Surface: NewScreenSurface(screen, opts.Game.Canvas.Width, opts.Game.Canvas.Height),
		Audio:   opts.Audio,
		Menu:    picker,
		Seed:    cfg.Seed,
		Logger:  logger,
	})

	m := Model{
		machine:    machine,
		picker:     picker,
		screen:     screen,
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		shotDir:    opts.ScreenshotDir,
	}
	m.best = m.highScore()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.picker.Visible() && IsStartClick(msg) {
			m.inputFrame.Set(core.ActionStart)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. The menu consumes keys while shown.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.picker.Visible() {
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if action == core.ActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.picker.HandleAction(action)
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.machine.Frame(now, m.inputFrame)
	m.inputFrame.Clear()

	switch m.machine.State() {
	case flappy.StateRestarting:
		if !m.scoreSaved {
			m.saveScore(m.machine.Score(), m.machine.Selection())
			m.scoreSaved = true
		}
	case flappy.StateRunning:
		m.scoreSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records a finished game with a positive score.
func (m *Model) saveScore(score float64, sel flappy.Selection) {
	if m.store == nil || score <= 0 {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		Score:    score,
		Avatar:   sel.Avatar.String(),
		Backdrop: sel.Backdrop.String(),
		Pipe:     sel.Pipe.String(),
	})
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.best = max(m.best, score)
}

func (m Model) highScore() float64 {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore("")
	if err != nil {
		m.logger.Warn("could not read high score", "error", err)
		return 0
	}
	return best
}

// saveScreenshot writes the current screen to a timestamped text file.
func (m Model) saveScreenshot() (string, error) {
	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".flappy", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	name := fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the menu while it is shown, the game canvas otherwise.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.picker.Visible() {
		return RenderMenu(m.picker, m.best, m.config.ScreenW)
	}
	return RenderScreen(m.screen)
}

// Machine returns the game machine driven by this model.
func (m Model) Machine() *flappy.Machine {
	return m.machine
}

// Picker returns the customization menu.
func (m Model) Picker() *menu.Picker {
	return m.picker
}

// Best returns the best score known to this session.
func (m Model) Best() float64 {
	return m.best
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

package main

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/platform/window"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagConfig string
	flagMute   bool
	flagWindow bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game with the customization menu.

Pick one bird, one background and one pipe color, then press Enter or
click to start. Night levels spawn hearts; each collected heart is an
extra life.

Controls:
  Arrows/WASD  - Move in the menu
  Enter/Space  - Select a menu item
  Enter/Click  - Start the level
  Space/Up     - Flap
  Ctrl+S       - Save a screenshot (terminal only)
  Q/Ctrl+C     - Quit

Examples:
  flappy play
  flappy play --window
  flappy play --mute --fps 30
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The TUI owns stdout; window mode can log to stderr.
	var fallback io.Writer = io.Discard
	if flagWindow {
		fallback = os.Stderr
	}
	logger, closeLog, err := newLogger(fallback)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	sound := openAudio(cfg.Audio, logger)
	defer func() {
		if bank, ok := sound.(*audio.Bank); ok {
			bank.Close()
		}
	}()

	// Continue without storage - the game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	if flagWindow {
		return window.Run(window.Options{
			Game:     cfg,
			TickRate: flagFPS,
			Seed:     flagSeed,
			Store:    store,
			Audio:    sound,
			Logger:   logger,
		})
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal; use --window or run in a terminal")
	}
	return tui.Run(tui.Options{
		Game:    cfg,
		Runtime: runtimeConfig(),
		Store:   store,
		Audio:   sound,
		Logger:  logger,
	})
}

// runtimeConfig sizes the game to the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	return rc
}

// openAudio returns the speaker bank, or a silent stand-in when sound is
// muted, disabled in the config, or the speaker cannot be opened.
func openAudio(cfg config.AudioConfig, logger *log.Logger) flappy.Audio {
	if flagMute || !cfg.Enabled {
		return flappy.NopAudio{}
	}
	bank := audio.NewBank(cfg)
	if err := bank.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return flappy.NopAudio{}
	}
	return bank
}

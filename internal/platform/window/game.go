// Package window runs the flappy game in a desktop window with Ebiten.
// The machine draws into a canvas.Recorder during Update; Draw replays
// the recorded frame as filled rectangles and text.
package window

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/menu"
	"github.com/vovakirdan/tui-flappy/internal/platform/canvas"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Options configures a window session.
type Options struct {
	Game     config.FlappyConfig
	TickRate int
	Seed     int64
	Store    *storage.Store // Optional; nil disables high scores
	Audio    flappy.Audio   // Optional; nil is silent
	Logger   *log.Logger    // Optional
}

// Game implements ebiten.Game around a flappy machine.
type Game struct {
	cfg      config.FlappyConfig
	machine  *flappy.Machine
	picker   *menu.Picker
	recorder *canvas.Recorder
	store    *storage.Store
	logger   *log.Logger
	font     *text.GoTextFaceSource

	best       float64
	scoreSaved bool
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates the game with the customization menu shown.
func NewGame(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	font, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("window: cannot load font: %w", err)
	}

	recorder := canvas.NewRecorder(opts.Game.Canvas.Width, opts.Game.Canvas.Height)
	picker := menu.New()
	machine := flappy.New(flappy.Options{
		Config:  opts.Game,
		Surface: recorder,
		Audio:   opts.Audio,
		Menu:    picker,
		Seed:    seed,
		Logger:  logger,
	})

	g := &Game{
		cfg:      opts.Game,
		machine:  machine,
		picker:   picker,
		recorder: recorder,
		store:    opts.Store,
		logger:   logger,
		font:     font,
	}
	if g.store != nil {
		if best, err := g.store.HighScore(""); err == nil {
			g.best = best
		}
	}
	return g, nil
}

// Update reads input and runs one game frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	in := core.NewInputFrame()
	if g.picker.Visible() {
		for _, a := range menuActions() {
			g.picker.HandleAction(a)
		}
	} else {
		if anyJustPressed(ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW) {
			in.Set(core.ActionJump)
		}
		if anyJustPressed(ebiten.KeyEnter) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			in.Set(core.ActionStart)
		}
	}

	g.machine.Frame(time.Now(), in)

	switch g.machine.State() {
	case flappy.StateRestarting:
		if !g.scoreSaved {
			g.saveScore()
			g.scoreSaved = true
		}
	case flappy.StateRunning:
		g.scoreSaved = false
	}
	return nil
}

func (g *Game) saveScore() {
	score := g.machine.Score()
	if g.store == nil || score <= 0 {
		return
	}
	sel := g.machine.Selection()
	_, err := g.store.SaveScore(storage.ScoreEntry{
		Score:    score,
		Avatar:   sel.Avatar.String(),
		Backdrop: sel.Backdrop.String(),
		Pipe:     sel.Pipe.String(),
	})
	if err != nil {
		g.logger.Warn("could not save score", "error", err)
		return
	}
	g.best = max(g.best, score)
}

// Draw replays the recorded frame, or draws the menu while it is shown.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.picker.Visible() {
		g.drawMenu(screen)
		return
	}
	screen.Fill(canvas.Sky)
	for _, op := range g.recorder.Ops() {
		g.drawOp(screen, op)
	}
}

// Layout keeps the logical screen at canvas size; Ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.cfg.Canvas.Width), int(g.cfg.Canvas.Height)
}

// Machine returns the game machine.
func (g *Game) Machine() *flappy.Machine {
	return g.machine
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(opts.Game.Canvas.Width), int(opts.Game.Canvas.Height))
	ebiten.SetWindowTitle("Flappy")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// menuActions maps this tick's key presses to menu actions.
func menuActions() []core.Action {
	var actions []core.Action
	if anyJustPressed(ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK) {
		actions = append(actions, core.ActionUp)
	}
	if anyJustPressed(ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ) {
		actions = append(actions, core.ActionDown)
	}
	if anyJustPressed(ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH) {
		actions = append(actions, core.ActionLeft)
	}
	if anyJustPressed(ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL) {
		actions = append(actions, core.ActionRight)
	}
	if anyJustPressed(ebiten.KeyEnter, ebiten.KeySpace) {
		actions = append(actions, core.ActionSelect)
	}
	return actions
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

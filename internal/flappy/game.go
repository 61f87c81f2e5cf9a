// Package flappy implements the side-scrolling flappy game core: entities,
// spawners, collision and scoring, the game state machine, and the frame
// driver. Drawing, audio, input and the customization menu are collaborators
// provided by a frontend.
package flappy

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Options configures a Machine. Nil collaborators are replaced with no-ops;
// a nil Menu always reports the default selection.
type Options struct {
	Config  config.FlappyConfig
	Surface Surface
	Audio   Audio
	Menu    Menu
	Seed    int64
	Logger  *log.Logger
}

// Machine is the game state machine and frame driver. It is not safe for
// concurrent use; frontends call Frame from a single goroutine.
type Machine struct {
	cfg     config.FlappyConfig
	surface Surface
	audio   Audio
	menu    Menu
	logger  *log.Logger

	world  *World
	timers *Scheduler
	state  State
	now    time.Time

	pending    Selection // Confirmed in the menu, applied on level load
	startArmed bool      // Start trigger accepted in StartMessage
}

// New creates a machine in MenuSelection with the menu shown.
func New(opts Options) *Machine {
	m := &Machine{
		cfg:     opts.Config,
		surface: opts.Surface,
		audio:   opts.Audio,
		menu:    opts.Menu,
		logger:  opts.Logger,
		world:   NewWorld(opts.Config, opts.Seed),
		timers:  NewScheduler(),
		state:   StateMenuSelection,
		pending: DefaultSelection(),
	}
	if m.surface == nil {
		m.surface = nopSurface{}
	}
	if m.audio == nil {
		m.audio = NopAudio{}
	}
	if m.menu == nil {
		m.menu = &fixedMenu{sel: DefaultSelection()}
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	m.menu.Show()
	return m
}

// Frame runs one display refresh: clear the canvas, deliver due timers,
// apply input triggers, then run the current state.
func (m *Machine) Frame(now time.Time, in core.InputFrame) {
	m.now = now
	m.surface.ClearRegion(0, 0, m.cfg.Canvas.Width, m.cfg.Canvas.Height)
	m.timers.Advance(now)

	if in.Has(core.ActionStart) && m.state == StateStartMessage && m.startArmed {
		m.loadLevel(false)
		m.transition(StateRunning)
	}
	if in.Has(core.ActionJump) && m.state == StateRunning {
		m.audio.Play(SoundSwoosh)
		m.world.Player().Impulse()
	}

	switch m.state {
	case StateMenuSelection:
		m.pollMenu()
	case StateStartMessage:
		m.drawCentered(SpriteStartMessage, m.cfg.HUD.StartMessage)
	case StateRunning:
		m.run()
	case StateExtraLife:
		m.extraLife()
	case StateGameOver:
		m.gameOver()
	case StateRestarting:
		m.world.Draw(m.surface)
		m.drawCentered(SpriteGameOverMessage, m.cfg.HUD.GameOverMessage)
	}
}

func (m *Machine) pollMenu() {
	if m.timers.Active(TimerMenuConfirm) {
		return
	}
	if _, ok := m.menu.Selection(); !ok {
		return
	}
	m.timers.After(m.now, TimerMenuConfirm, m.cfg.Timing.MenuConfirmDelay, m.confirmMenu)
}

// confirmMenu re-reads the menu so a selection withdrawn during the delay
// keeps the game in MenuSelection.
func (m *Machine) confirmMenu() {
	if m.state != StateMenuSelection {
		return
	}
	sel, ok := m.menu.Selection()
	if !ok {
		return
	}
	m.menu.Hide()
	m.pending = sel
	m.startArmed = true
	m.transition(StateStartMessage)
}

func (m *Machine) run() {
	w := m.world
	w.Update(m.audio)
	w.Draw(m.surface)

	w.CollectBonus(m.audio)
	if w.Collided() {
		if w.Lives() > 0 {
			m.transition(StateExtraLife)
		} else {
			m.transition(StateGameOver)
		}
	}
	w.Prune()
	w.AwardScore(m.audio)
	w.NextFrame()
}

func (m *Machine) extraLife() {
	score := m.world.Score()
	m.loadLevel(true)
	m.world.score = score
	m.world.ConsumeLife()
	m.world.Draw(m.surface)
	m.audio.Play(SoundHit)
	m.transition(StateRunning)
}

func (m *Machine) gameOver() {
	m.world.Draw(m.surface)
	m.drawCentered(SpriteGameOverMessage, m.cfg.HUD.GameOverMessage)

	m.audio.Play(SoundHit)
	m.timers.Cancel(TimerPipes)
	m.timers.Cancel(TimerHearts)
	m.menu.ClearSelection()
	m.timers.After(m.now, TimerRestart, m.cfg.Timing.RestartDelay, func() {
		m.menu.Show()
		m.transition(StateMenuSelection)
	})
	m.logger.Info("game over", "score", FormatScore(m.world.Score()), "frame", m.world.Frame())
	m.transition(StateRestarting)
}

// loadLevel applies the pending selection, resets the level and re-arms the
// spawn timers. With keepHazards set, obstacles, hearts and lives survive.
func (m *Machine) loadLevel(keepHazards bool) {
	m.startArmed = false
	m.world.Apply(m.pending)
	m.world.Reset(keepHazards)

	m.timers.Cancel(TimerPipes)
	m.timers.Cancel(TimerHearts)
	speed := m.world.Speed()
	m.timers.Every(m.now, TimerPipes, config.Interval(m.cfg.Obstacles.SpawnInterval, speed), m.world.SpawnObstacles)
	if m.pending.Night() {
		m.timers.Every(m.now, TimerHearts, config.Interval(m.cfg.Bonus.SpawnInterval, speed), m.world.SpawnBonus)
	}

	m.logger.Info("level loaded",
		"avatar", m.pending.Avatar,
		"backdrop", m.pending.Backdrop,
		"pipe", m.pending.Pipe,
		"speed", speed,
		"resume", keepHazards,
	)
}

// transition moves to the next state if the game flow allows it.
func (m *Machine) transition(to State) bool {
	if !CanTransition(m.state, to) {
		m.logger.Error("refused state transition", "from", m.state, "to", to)
		return false
	}
	m.logger.Debug("state transition", "from", m.state, "to", to)
	m.state = to
	return true
}

func (m *Machine) drawCentered(s Sprite, size config.Size) {
	x := m.cfg.Canvas.Width/2 - size.Width/2
	y := m.cfg.Canvas.Height/2 - size.Height/2
	m.surface.DrawImage(s, x, y, size.Width, size.Height)
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Score returns the current score.
func (m *Machine) Score() float64 {
	return m.world.Score()
}

// Selection returns the configuration record of the current or last level.
func (m *Machine) Selection() Selection {
	return m.world.Selection()
}

// Lives returns the number of extra lives held.
func (m *Machine) Lives() int {
	return m.world.Lives()
}

// World exposes the entity aggregate for frontends and tests.
func (m *Machine) World() *World {
	return m.world
}

// Timers exposes the scheduler for inspection.
func (m *Machine) Timers() *Scheduler {
	return m.timers
}

// Config returns the game configuration.
func (m *Machine) Config() config.FlappyConfig {
	return m.cfg
}

// fixedMenu always reports the same selection. Used when a frontend has no
// interactive menu.
type fixedMenu struct {
	sel Selection
}

func (f *fixedMenu) Selection() (Selection, bool) { return f.sel, true }

func (f *fixedMenu) Show() {}

func (f *fixedMenu) Hide() {}

func (f *fixedMenu) ClearSelection() {}

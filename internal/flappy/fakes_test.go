package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

type drawOp struct {
	kind   string // "clear", "image", "text"
	sprite Sprite
	text   string
	x, y   float64
	w, h   float64
}

// recordSurface keeps every draw call since the last Reset.
type recordSurface struct {
	ops []drawOp
}

func (s *recordSurface) ClearRegion(x, y, w, h float64) {
	s.ops = append(s.ops, drawOp{kind: "clear", x: x, y: y, w: w, h: h})
}

func (s *recordSurface) DrawImage(sp Sprite, x, y, w, h float64) {
	s.ops = append(s.ops, drawOp{kind: "image", sprite: sp, x: x, y: y, w: w, h: h})
}

func (s *recordSurface) DrawText(text string, x, y float64) {
	s.ops = append(s.ops, drawOp{kind: "text", text: text, x: x, y: y})
}

func (s *recordSurface) Reset() {
	s.ops = s.ops[:0]
}

func (s *recordSurface) images(sp Sprite) []drawOp {
	var out []drawOp
	for _, op := range s.ops {
		if op.kind == "image" && op.sprite == sp {
			out = append(out, op)
		}
	}
	return out
}

func (s *recordSurface) last() drawOp {
	if len(s.ops) == 0 {
		return drawOp{}
	}
	return s.ops[len(s.ops)-1]
}

type recordAudio struct {
	played []Sound
}

func (a *recordAudio) Play(s Sound) {
	a.played = append(a.played, s)
}

func (a *recordAudio) count(s Sound) int {
	n := 0
	for _, p := range a.played {
		if p == s {
			n++
		}
	}
	return n
}

type fakeMenu struct {
	sel     Selection
	ok      bool
	visible bool
	shows   int
	clears  int
}

func (m *fakeMenu) Selection() (Selection, bool) {
	return m.sel, m.ok
}

func (m *fakeMenu) Show() {
	m.visible = true
	m.shows++
}

func (m *fakeMenu) Hide() {
	m.visible = false
}

func (m *fakeMenu) ClearSelection() {
	m.ok = false
	m.clears++
}

const frameStep = 16 * time.Millisecond

// harness drives a machine with recording collaborators on a fake clock.
type harness struct {
	m       *Machine
	surface *recordSurface
	audio   *recordAudio
	menu    *fakeMenu
	now     time.Time
}

func newHarness(sel Selection) *harness {
	h := &harness{
		surface: &recordSurface{},
		audio:   &recordAudio{},
		menu:    &fakeMenu{sel: sel},
		now:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	h.m = New(Options{
		Config:  config.DefaultFlappyConfig(),
		Surface: h.surface,
		Audio:   h.audio,
		Menu:    h.menu,
		Seed:    7,
	})
	return h
}

// frame advances the clock by one step and runs a frame with the given actions.
func (h *harness) frame(actions ...core.Action) {
	h.now = h.now.Add(frameStep)
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	h.surface.Reset()
	h.m.Frame(h.now, in)
}

// frames runs n frames without input.
func (h *harness) frames(n int) {
	for i := 0; i < n; i++ {
		h.frame()
	}
}

// until runs frames until cond holds or limit frames have run.
func (h *harness) until(limit int, cond func() bool) bool {
	for i := 0; i < limit; i++ {
		if cond() {
			return true
		}
		h.frame()
	}
	return cond()
}

// start confirms the menu and starts a level.
func (h *harness) start() {
	h.menu.ok = true
	h.until(100, func() bool { return h.m.State() == StateStartMessage })
	h.frame(core.ActionStart)
}

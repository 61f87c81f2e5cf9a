package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Heart is a collectible bonus worth one extra life.
type Heart struct {
	X, Y      float64
	W, H      float64
	Collected bool

	speed     float64
	angle     float64
	angleStep float64
	curve     float64
}

// Update scrolls the heart left and bobs it along a sine curve.
func (h *Heart) Update() {
	h.X = math.Floor(h.X - h.speed)
	h.Y += h.curve * math.Sin(h.angle)
	h.angle += h.angleStep
}

// Rect returns the heart's collision rectangle.
func (h *Heart) Rect() core.Rect {
	return core.NewRect(h.X, h.Y, h.W, h.H)
}

// Draw blits the heart.
func (h *Heart) Draw(s Surface) {
	s.DrawImage(SpriteHeart, h.X, h.Y, h.W, h.H)
}

// HeartList holds the hearts still flying across the canvas.
type HeartList struct {
	hearts []Heart
}

// Push appends a heart.
func (l *HeartList) Push(h Heart) {
	l.hearts = append(l.hearts, h)
}

// Collect removes and returns the first heart overlapping r.
func (l *HeartList) Collect(r core.Rect) (Heart, bool) {
	for i := range l.hearts {
		if !Overlaps(r, l.hearts[i].Rect()) {
			continue
		}
		h := l.hearts[i]
		h.Collected = true
		l.hearts = append(l.hearts[:i], l.hearts[i+1:]...)
		return h, true
	}
	return Heart{}, false
}

// PruneOffscreen drops hearts that have fully left the canvas on the left.
func (l *HeartList) PruneOffscreen() int {
	kept := l.hearts[:0]
	for _, h := range l.hearts {
		if h.X+h.W >= 0 {
			kept = append(kept, h)
		}
	}
	removed := len(l.hearts) - len(kept)
	l.hearts = kept
	return removed
}

// Len returns the number of hearts in flight.
func (l *HeartList) Len() int {
	return len(l.hearts)
}

// Each calls fn for every heart.
func (l *HeartList) Each(fn func(h *Heart)) {
	for i := range l.hearts {
		fn(&l.hearts[i])
	}
}

// Clear drops every heart.
func (l *HeartList) Clear() {
	l.hearts = l.hearts[:0]
}

// Lives is the pool of collected hearts, consumed one per obstacle hit.
type Lives struct {
	held []Heart
}

// Add stores a collected heart.
func (l *Lives) Add(h Heart) {
	l.held = append(l.held, h)
}

// Consume removes the most recently collected heart.
// Returns false if the pool is empty.
func (l *Lives) Consume() bool {
	if len(l.held) == 0 {
		return false
	}
	l.held = l.held[:len(l.held)-1]
	return true
}

// Len returns the number of lives held.
func (l *Lives) Len() int {
	return len(l.held)
}

// Clear empties the pool.
func (l *Lives) Clear() {
	l.held = l.held[:0]
}

// BonusSpawner creates hearts at the right edge of the canvas.
type BonusSpawner struct {
	cfg     config.BonusConfig
	canvasW float64
}

// NewBonusSpawner creates a bonus spawner.
func NewBonusSpawner(cfg config.BonusConfig, canvasW float64) *BonusSpawner {
	return &BonusSpawner{cfg: cfg, canvasW: canvasW}
}

// Spawn pushes one heart at height y moving at speed.
func (s *BonusSpawner) Spawn(l *HeartList, y, speed float64) {
	l.Push(Heart{
		X:         s.canvasW + s.cfg.SpawnOffset,
		Y:         y,
		W:         s.cfg.Width,
		H:         s.cfg.Height,
		speed:     speed,
		angleStep: s.cfg.AngleStep,
		curve:     s.cfg.Curve,
	})
}

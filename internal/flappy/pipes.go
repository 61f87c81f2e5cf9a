package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// PipeRole tells the two members of a pipe pair apart.
type PipeRole int

const (
	PipeLeading  PipeRole = iota // Lower pipe, spawned first
	PipeTrailing                 // Upper pipe, spawned second
)

// Pipe is one member of an obstacle pair.
type Pipe struct {
	X, Y   float64
	W, H   float64
	Role   PipeRole
	Sprite Sprite
	Passed bool // Pair already scored

	speed     float64
	angle     float64
	angleStep float64
	curve     float64
}

// Update scrolls the pipe left and drifts it along a sine curve.
// The two roles drift in opposite directions.
func (p *Pipe) Update() {
	p.X = math.Floor(p.X - p.speed)
	drift := p.curve * math.Sin(p.angle)
	if p.Role == PipeLeading {
		p.Y -= drift
	} else {
		p.Y += drift
	}
	p.angle += p.angleStep
}

// Rect returns the pipe's collision rectangle.
func (p *Pipe) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Draw blits the pipe.
func (p *Pipe) Draw(s Surface) {
	s.DrawImage(p.Sprite, p.X, p.Y, p.W, p.H)
}

// PipeQueue holds the active pipes in spawn order: leading, trailing, leading, ...
// It only grows and shrinks by whole pairs, so its length is always even.
type PipeQueue struct {
	pipes []Pipe
}

// Push appends one pair.
func (q *PipeQueue) Push(leading, trailing Pipe) {
	q.pipes = append(q.pipes, leading, trailing)
}

// RemovePassed drops pairs from the front while the oldest leading pipe has
// fully left the canvas. Returns the number of pairs removed.
func (q *PipeQueue) RemovePassed() int {
	removed := 0
	for len(q.pipes) >= 2 && q.pipes[0].X+q.pipes[0].W < 0 {
		q.pipes = q.pipes[2:]
		removed++
	}
	return removed
}

// Len returns the number of pipes (twice the number of pairs).
func (q *PipeQueue) Len() int {
	return len(q.pipes)
}

// Each calls fn for every pipe in spawn order.
func (q *PipeQueue) Each(fn func(p *Pipe)) {
	for i := range q.pipes {
		fn(&q.pipes[i])
	}
}

// EachPair calls fn for every pair, oldest first.
func (q *PipeQueue) EachPair(fn func(leading, trailing *Pipe)) {
	for i := 0; i+1 < len(q.pipes); i += 2 {
		fn(&q.pipes[i], &q.pipes[i+1])
	}
}

// Clear drops every pipe.
func (q *PipeQueue) Clear() {
	q.pipes = q.pipes[:0]
}

// ObstacleSpawner creates pipe pairs at the right edge of the canvas with a
// random vertical offset, and remembers where the gap of the last pair is so
// a bonus can be centered in it.
type ObstacleSpawner struct {
	cfg        config.ObstacleConfig
	canvasW    float64
	bonusH     float64
	rng        *rand.Rand
	nextBonusY float64
}

// NewObstacleSpawner creates a spawner with the given RNG seed.
func NewObstacleSpawner(cfg config.ObstacleConfig, canvasW, bonusH float64, seed int64) *ObstacleSpawner {
	return &ObstacleSpawner{
		cfg:     cfg,
		canvasW: canvasW,
		bonusH:  bonusH,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Spawn pushes one leading/trailing pair moving at speed.
func (s *ObstacleSpawner) Spawn(q *PipeQueue, skin PipeSkin, speed float64) {
	r := s.rng.Float64()*s.cfg.JitterRange + s.cfg.JitterMin
	s.nextBonusY = -r + s.cfg.Height + s.cfg.Gap/2 - s.bonusH/2

	sprites := pipeSprites[skin]
	q.Push(s.pipe(PipeLeading, sprites[0], -r+s.cfg.Height+s.cfg.Gap, speed),
		s.pipe(PipeTrailing, sprites[1], -r, speed))
}

// NextBonusY returns the y at which a bonus sits centered in the last gap.
func (s *ObstacleSpawner) NextBonusY() float64 {
	return s.nextBonusY
}

func (s *ObstacleSpawner) pipe(role PipeRole, sprite Sprite, y, speed float64) Pipe {
	return Pipe{
		X:         s.canvasW,
		Y:         y,
		W:         s.cfg.Width,
		H:         s.cfg.Height,
		Role:      role,
		Sprite:    sprite,
		speed:     speed,
		angleStep: s.cfg.AngleStep,
		curve:     s.cfg.Curve,
	}
}

package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Player is the bird. Its x is fixed; y follows the ascend/fall cycle.
type Player struct {
	X, Y float64
	W, H float64

	cfg     config.PlayerConfig
	spawnY  float64
	sprites [3]Sprite
	frame   int // Index into sprites

	ascending bool
	originY   float64 // y at the moment the current ascent started
}

// NewPlayer creates a player at its spawn point with the default avatar.
func NewPlayer(cfg config.PlayerConfig, canvasH float64) *Player {
	p := &Player{
		W:      cfg.Width,
		H:      cfg.Height,
		cfg:    cfg,
		spawnY: canvasH * cfg.SpawnYFraction,
	}
	p.ApplyAvatar(AvatarBlue)
	p.Reset()
	return p
}

// ApplyAvatar sets the three-frame flap cycle for the chosen skin.
func (p *Player) ApplyAvatar(a Avatar) {
	frames, ok := avatarFrames[a]
	if !ok {
		return
	}
	p.sprites = frames
}

// Reset restores the spawn position and animation. The avatar is kept.
func (p *Player) Reset() {
	p.X = p.cfg.X
	p.Y = p.spawnY
	p.ascending = false
	p.frame = 0
}

// Impulse starts an ascent. It is a no-op while already ascending.
func (p *Player) Impulse() {
	if p.ascending {
		return
	}
	p.originY = p.Y
	p.ascending = true
}

// Update advances the bird by one frame. Positions snap to whole pixels.
// Returns true when the flap animation stepped, which is when the wing sound plays.
func (p *Player) Update(frame int) bool {
	if p.ascending {
		p.Y = math.Floor(p.Y - p.cfg.Force)
		if p.Y <= p.originY-p.H*p.cfg.AscentFactor {
			p.ascending = false
		}
	} else {
		p.Y = math.Floor(p.Y + p.cfg.Force)
	}

	if frame%p.cfg.FlapEvery != 0 {
		return false
	}
	p.frame = (p.frame + 1) % len(p.sprites)
	return true
}

// Ascending reports whether the bird is in the rising half of the cycle.
func (p *Player) Ascending() bool {
	return p.ascending
}

// AscentOrigin returns the y where the current (or last) ascent started.
func (p *Player) AscentOrigin() float64 {
	return p.originY
}

// Sprite returns the current animation frame.
func (p *Player) Sprite() Sprite {
	return p.sprites[p.frame]
}

// Rect returns the player's collision rectangle.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Draw blits the current animation frame.
func (p *Player) Draw(s Surface) {
	s.DrawImage(p.Sprite(), p.X, p.Y, p.W, p.H)
}

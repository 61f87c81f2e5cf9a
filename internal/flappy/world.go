package flappy

import (
	"strconv"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// World owns every entity and counter of a game session. Subsystems reach the
// entity collections only through its spawn, prune and iterate operations.
type World struct {
	cfg config.FlappyConfig

	player *Player
	floor  *Floor
	pipes  PipeQueue
	hearts HeartList
	lives  Lives

	obstacles *ObstacleSpawner
	bonuses   *BonusSpawner

	selection Selection
	backdrop  Sprite
	speed     float64
	score     float64
	frame     int // Running frames since startup, drives the flap cadence
}

// NewWorld creates a world with default selection applied.
func NewWorld(cfg config.FlappyConfig, seed int64) *World {
	w := &World{
		cfg:       cfg,
		player:    NewPlayer(cfg.Player, cfg.Canvas.Height),
		floor:     NewFloor(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Floor.Height),
		obstacles: NewObstacleSpawner(cfg.Obstacles, cfg.Canvas.Width, cfg.Bonus.Height, seed),
		bonuses:   NewBonusSpawner(cfg.Bonus, cfg.Canvas.Width),
		frame:     1,
	}
	w.Apply(DefaultSelection())
	return w
}

// Apply resolves a configuration record into sprites and speed.
func (w *World) Apply(sel Selection) {
	w.selection = sel
	w.player.ApplyAvatar(sel.Avatar)
	w.backdrop = backdropSprites[sel.Backdrop]
	w.speed = w.cfg.Speed.Multiplier(sel.Night())
	w.floor.SetSpeed(w.speed)
}

// Reset prepares a level. With keepHazards the pipes, hearts and lives in
// flight survive, which is how a consumed extra life resumes play.
func (w *World) Reset(keepHazards bool) {
	w.floor.Reset()
	w.player.Reset()
	w.score = 0
	if keepHazards {
		return
	}
	w.pipes.Clear()
	w.hearts.Clear()
	w.lives.Clear()
}

// SpawnObstacles adds one pipe pair at the current speed.
func (w *World) SpawnObstacles() {
	w.obstacles.Spawn(&w.pipes, w.selection.Pipe, w.speed)
}

// SpawnBonus adds one heart centered in the last spawned gap.
func (w *World) SpawnBonus() {
	w.bonuses.Spawn(&w.hearts, w.obstacles.NextBonusY(), w.speed)
}

// Update moves every entity by one frame.
func (w *World) Update(audio Audio) {
	if w.player.Update(w.frame) {
		audio.Play(SoundWing)
	}
	w.pipes.Each(func(p *Pipe) { p.Update() })
	w.hearts.Each(func(h *Heart) { h.Update() })
	w.floor.Update()
}

// Draw renders backdrop, entities and HUD.
func (w *World) Draw(s Surface) {
	cw, ch := w.cfg.Canvas.Width, w.cfg.Canvas.Height
	s.DrawImage(w.backdrop, 0, 0, cw, ch)
	s.DrawImage(w.backdrop, cw, 0, cw, ch)

	w.player.Draw(s)
	w.pipes.Each(func(p *Pipe) { p.Draw(s) })
	w.hearts.Each(func(h *Heart) { h.Draw(s) })

	hud := w.cfg.HUD
	for i := 0; i < w.lives.Len(); i++ {
		s.DrawImage(SpriteHeart, hud.LifeMargin+hud.LifeIconSize*float64(i), hud.LifeMargin, hud.LifeIconSize, hud.LifeIconSize)
	}

	w.floor.Draw(s)
	s.DrawText(FormatScore(w.score), cw/2, hud.ScoreY)
}

// CollectBonus moves the first heart the player touches into the lives pool.
func (w *World) CollectBonus(audio Audio) bool {
	h, ok := w.hearts.Collect(w.player.Rect())
	if !ok {
		return false
	}
	w.lives.Add(h)
	audio.Play(SoundExtraLife)
	return true
}

// Collided reports whether the player left the play field or hit a pipe.
func (w *World) Collided() bool {
	pr := w.player.Rect()
	if OutOfBounds(pr, w.floor.Y) {
		return true
	}
	hit := false
	w.pipes.Each(func(p *Pipe) {
		if !hit && Overlaps(pr, p.Rect()) {
			hit = true
		}
	})
	return hit
}

// Prune drops pipe pairs and hearts that scrolled off the left edge.
func (w *World) Prune() {
	w.pipes.RemovePassed()
	w.hearts.PruneOffscreen()
}

// AwardScore adds half a point for every unscored pair the player has crossed.
// Only the leading pipe is compared; both members are tagged.
func (w *World) AwardScore(audio Audio) int {
	pr := w.player.Rect()
	scored := 0
	w.pipes.EachPair(func(leading, trailing *Pipe) {
		if leading.Passed || !PassedBy(pr, leading.Rect()) {
			return
		}
		leading.Passed = true
		trailing.Passed = true
		w.score += 0.5
		scored++
		audio.Play(SoundPoint)
	})
	return scored
}

// Player returns the bird.
func (w *World) Player() *Player {
	return w.player
}

// Floor returns the scrolling floor.
func (w *World) Floor() *Floor {
	return w.floor
}

// Score returns the current score.
func (w *World) Score() float64 {
	return w.score
}

// Speed returns the speed multiplier of the applied selection.
func (w *World) Speed() float64 {
	return w.speed
}

// Selection returns the applied configuration record.
func (w *World) Selection() Selection {
	return w.selection
}

// Pipes returns the number of active pipes.
func (w *World) Pipes() int {
	return w.pipes.Len()
}

// Hearts returns the number of hearts in flight.
func (w *World) Hearts() int {
	return w.hearts.Len()
}

// Lives returns the number of extra lives held.
func (w *World) Lives() int {
	return w.lives.Len()
}

// FormatScore prints a half-point score without trailing zeros: 0, 0.5, 1, 1.5.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// NextFrame advances the running-frame counter. It is never reset, so the
// flap cadence continues across levels.
func (w *World) NextFrame() {
	w.frame++
}

// Frame returns the running-frame counter.
func (w *World) Frame() int {
	return w.frame
}

// ConsumeLife pops one extra life. Returns false if none is held.
func (w *World) ConsumeLife() bool {
	return w.lives.Consume()
}

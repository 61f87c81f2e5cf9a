// Package config provides YAML-based game configuration loading for the
// flappy game: canvas geometry, entity sizes, motion constants, spawn
// intervals, state timing, and audio levels.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all tunable parameters of the game.
type FlappyConfig struct {
	Canvas    CanvasConfig   `yaml:"canvas"`
	Player    PlayerConfig   `yaml:"player"`
	Floor     FloorConfig    `yaml:"floor"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Bonus     BonusConfig    `yaml:"bonus"`
	Speed     SpeedConfig    `yaml:"speed"`
	Timing    TimingConfig   `yaml:"timing"`
	HUD       HUDConfig      `yaml:"hud"`
	Audio     AudioConfig    `yaml:"audio"`
}

// CanvasConfig defines the logical drawing area in pixels.
// Frontends scale it to terminal cells or window pixels.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the bird's geometry and ascend/fall cycle.
type PlayerConfig struct {
	X              float64 `yaml:"x"`
	SpawnYFraction float64 `yaml:"spawn_y_fraction"` // Spawn y as a fraction of canvas height
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Force          float64 `yaml:"force"`         // Pixels moved per frame, up or down
	AscentFactor   float64 `yaml:"ascent_factor"` // Ascent stops after rising AscentFactor*Height
	FlapEvery      int     `yaml:"flap_every"`    // Frames between animation steps
}

// FloorConfig defines the scrolling floor strip at the bottom of the canvas.
type FloorConfig struct {
	Height float64 `yaml:"height"`
}

// ObstacleConfig defines pipe geometry, placement and drift.
type ObstacleConfig struct {
	Width         float64       `yaml:"width"`
	Height        float64       `yaml:"height"`
	Gap           float64       `yaml:"gap"`          // Vertical gap between the two pipes of a pair
	JitterMin     float64       `yaml:"jitter_min"`   // Lower bound of the random vertical offset
	JitterRange   float64       `yaml:"jitter_range"` // Width of the random vertical offset range
	AngleStep     float64       `yaml:"angle_step"`
	Curve         float64       `yaml:"curve"`
	SpawnInterval time.Duration `yaml:"spawn_interval"` // At speed multiplier 1
}

// BonusConfig defines heart geometry, drift and spawn cadence.
type BonusConfig struct {
	Width         float64       `yaml:"width"`
	Height        float64       `yaml:"height"`
	SpawnOffset   float64       `yaml:"spawn_offset"` // Distance past the right edge at spawn
	AngleStep     float64       `yaml:"angle_step"`
	Curve         float64       `yaml:"curve"`
	SpawnInterval time.Duration `yaml:"spawn_interval"` // At speed multiplier 1
}

// SpeedConfig maps each backdrop to its speed multiplier.
type SpeedConfig struct {
	Day   float64 `yaml:"day"`
	Night float64 `yaml:"night"`
}

// Multiplier returns the multiplier for the night or day backdrop.
func (s SpeedConfig) Multiplier(night bool) float64 {
	if night {
		return s.Night
	}
	return s.Day
}

// Interval divides a base interval by a speed multiplier.
func Interval(base time.Duration, multiplier float64) time.Duration {
	if multiplier <= 0 {
		return base
	}
	return time.Duration(float64(base) / multiplier)
}

// TimingConfig defines delays of the state machine.
type TimingConfig struct {
	MenuConfirmDelay time.Duration `yaml:"menu_confirm_delay"`
	RestartDelay     time.Duration `yaml:"restart_delay"`
}

// Size is a width/height pair.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HUDConfig defines overlay placement.
type HUDConfig struct {
	ScoreY          float64 `yaml:"score_y"`
	LifeIconSize    float64 `yaml:"life_icon_size"`
	LifeMargin      float64 `yaml:"life_margin"`
	StartMessage    Size    `yaml:"start_message"`
	GameOverMessage Size    `yaml:"game_over_message"`
}

// AudioConfig defines sound output and per-effect volumes (0.0 - 1.0).
type AudioConfig struct {
	Enabled      bool          `yaml:"enabled"`
	SampleRate   int           `yaml:"sample_rate"`
	BufferSize   time.Duration `yaml:"buffer_size"`
	MasterVolume float64       `yaml:"master_volume"`
	Volumes      SoundVolumes  `yaml:"volumes"`
}

// SoundVolumes holds the volume of each sound effect.
type SoundVolumes struct {
	Wing      float64 `yaml:"wing"`
	Swoosh    float64 `yaml:"swoosh"`
	Point     float64 `yaml:"point"`
	Hit       float64 `yaml:"hit"`
	ExtraLife float64 `yaml:"extra_life"`
}

// FloorY returns the top edge of the floor strip.
func (c FlappyConfig) FloorY() float64 {
	return c.Canvas.Height - c.Floor.Height
}

// Validate reports the first parameter that would make the game unplayable.
func (c FlappyConfig) Validate() error {
	checks := []struct {
		ok   bool
		name string
	}{
		{c.Canvas.Width > 0 && c.Canvas.Height > 0, "canvas size"},
		{c.Player.Width > 0 && c.Player.Height > 0, "player size"},
		{c.Player.Force > 0, "player force"},
		{c.Player.AscentFactor > 0, "player ascent_factor"},
		{c.Player.FlapEvery > 0, "player flap_every"},
		{c.Floor.Height > 0 && c.Floor.Height < c.Canvas.Height, "floor height"},
		{c.Obstacles.Width > 0 && c.Obstacles.Height > 0, "obstacle size"},
		{c.Obstacles.Gap > 0, "obstacle gap"},
		{c.Obstacles.JitterRange >= 0, "obstacle jitter_range"},
		{c.Obstacles.SpawnInterval > 0, "obstacle spawn_interval"},
		{c.Bonus.Width > 0 && c.Bonus.Height > 0, "bonus size"},
		{c.Bonus.SpawnInterval > 0, "bonus spawn_interval"},
		{c.Speed.Day > 0 && c.Speed.Night > 0, "speed multipliers"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: invalid %s", chk.name)
		}
	}
	if c.Audio.MasterVolume < 0 {
		return errors.New("config: master_volume must not be negative")
	}
	return nil
}

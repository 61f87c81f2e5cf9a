package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It matches defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Canvas: CanvasConfig{
			Width:  600,
			Height: 700,
		},
		Player: PlayerConfig{
			X:              20,
			SpawnYFraction: 1.0 / 3.0,
			Width:          34,
			Height:         24,
			Force:          1.5,
			AscentFactor:   1.5,
			FlapEvery:      20,
		},
		Floor: FloorConfig{
			Height: 112,
		},
		Obstacles: ObstacleConfig{
			Width:         52,
			Height:        320,
			Gap:           100,
			JitterMin:     10,
			JitterRange:   130,
			AngleStep:     0.1,
			Curve:         0.5,
			SpawnInterval: 2500 * time.Millisecond,
		},
		Bonus: BonusConfig{
			Width:         24,
			Height:        24,
			SpawnOffset:   12,
			AngleStep:     0.05,
			Curve:         0.5,
			SpawnInterval: 25 * time.Second,
		},
		Speed: SpeedConfig{
			Day:   1,
			Night: 2,
		},
		Timing: TimingConfig{
			MenuConfirmDelay: 250 * time.Millisecond,
			RestartDelay:     time.Second,
		},
		HUD: HUDConfig{
			ScoreY:          30,
			LifeIconSize:    24,
			LifeMargin:      10,
			StartMessage:    Size{Width: 184, Height: 267},
			GameOverMessage: Size{Width: 192, Height: 42},
		},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   44100,
			BufferSize:   100 * time.Millisecond,
			MasterVolume: 1.0,
			Volumes: SoundVolumes{
				Wing:      0.1,
				Swoosh:    0.1,
				Point:     0.3,
				Hit:       0.3,
				ExtraLife: 0.3,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}

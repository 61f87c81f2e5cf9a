package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Synthesize builds the streamer of a sound effect at the configured volume.
// Returns nil for unknown sounds.
func Synthesize(s flappy.Sound, cfg config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var (
		st  beep.Streamer
		vol float64
	)
	switch s {
	case flappy.SoundWing:
		d := 60 * time.Millisecond
		st = NewEnvelope(NewTone(WaveNoise, 0, d, rate), d, 10*time.Millisecond, 40*time.Millisecond, rate)
		vol = cfg.Volumes.Wing
	case flappy.SoundSwoosh:
		d := 150 * time.Millisecond
		st = NewEnvelope(NewSweep(WaveSine, 900, 300, d, rate), d, 10*time.Millisecond, 100*time.Millisecond, rate)
		vol = cfg.Volumes.Swoosh
	case flappy.SoundPoint:
		st = beep.Seq(
			note(WaveSquare, 987.77, 70*time.Millisecond, rate),
			note(WaveSquare, 1318.51, 180*time.Millisecond, rate),
		)
		vol = cfg.Volumes.Point
	case flappy.SoundHit:
		d := 250 * time.Millisecond
		st = beep.Mix(
			withVolume(NewEnvelope(NewSweep(WaveSaw, 220, 60, d, rate), d, 2*time.Millisecond, 200*time.Millisecond, rate), 0.7),
			withVolume(NewEnvelope(NewTone(WaveNoise, 0, d/2, rate), d/2, 2*time.Millisecond, 100*time.Millisecond, rate), 0.3),
		)
		vol = cfg.Volumes.Hit
	case flappy.SoundExtraLife:
		st = beep.Seq(
			note(WaveSine, 1046.50, 80*time.Millisecond, rate),
			note(WaveSine, 1318.51, 80*time.Millisecond, rate),
			note(WaveSine, 1567.98, 160*time.Millisecond, rate),
		)
		vol = cfg.Volumes.ExtraLife
	default:
		return nil
	}
	return withVolume(st, vol*cfg.MasterVolume)
}

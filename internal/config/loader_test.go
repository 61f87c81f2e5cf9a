package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultFlappyConfig()) {
		t.Errorf("embedded defaults drifted from DefaultFlappyConfig():\n got %+v\nwant %+v", cfg, DefaultFlappyConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := []byte("speed:\n  night: 3\nobstacles:\n  spawn_interval: 1s\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Speed.Night != 3 {
		t.Errorf("Speed.Night = %v, expected 3", cfg.Speed.Night)
	}
	if cfg.Obstacles.SpawnInterval != time.Second {
		t.Errorf("Obstacles.SpawnInterval = %v, expected 1s", cfg.Obstacles.SpawnInterval)
	}
	// Untouched keys keep their defaults
	if cfg.Player.Width != 34 || cfg.Speed.Day != 1 {
		t.Errorf("defaults should survive a partial override, got player width %v, day speed %v",
			cfg.Player.Width, cfg.Speed.Day)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player:\n  width: 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	_, err := Load(bad)
	if err == nil || !strings.Contains(err.Error(), "player size") {
		t.Errorf("Load() of an invalid file should report player size, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
	}{
		{"zero canvas", func(c *FlappyConfig) { c.Canvas.Width = 0 }},
		{"floor taller than canvas", func(c *FlappyConfig) { c.Floor.Height = 800 }},
		{"zero pipe interval", func(c *FlappyConfig) { c.Obstacles.SpawnInterval = 0 }},
		{"zero night speed", func(c *FlappyConfig) { c.Speed.Night = 0 }},
		{"zero ascent factor", func(c *FlappyConfig) { c.Player.AscentFactor = 0 }},
		{"negative pipe gap", func(c *FlappyConfig) { c.Obstacles.Gap = -10 }},
		{"negative volume", func(c *FlappyConfig) { c.Audio.MasterVolume = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}

	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestIntervalAndMultiplier(t *testing.T) {
	speed := DefaultFlappyConfig().Speed

	if speed.Multiplier(false) != 1 || speed.Multiplier(true) != 2 {
		t.Errorf("Multiplier() = day %v night %v, expected 1 and 2", speed.Multiplier(false), speed.Multiplier(true))
	}
	if got := Interval(2500*time.Millisecond, 2); got != 1250*time.Millisecond {
		t.Errorf("Interval(2500ms, 2) = %v, expected 1250ms", got)
	}
	if got := Interval(time.Second, 0); got != time.Second {
		t.Errorf("Interval with zero multiplier = %v, expected base", got)
	}
}

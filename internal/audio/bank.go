// Package audio synthesizes and plays the game's sound effects through beep.
// Sounds are generated at play time; there are no sample files.
package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

var _ flappy.Audio = (*Bank)(nil)

// Bank plays sound effects fire-and-forget through a single mixer.
// Play before Initialize, or after Close, does nothing.
type Bank struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	initialized bool
}

// NewBank creates an uninitialized bank.
func NewBank(cfg config.AudioConfig) *Bank {
	return &Bank{cfg: cfg, mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer.
func (b *Bank) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	rate := beep.SampleRate(b.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(b.cfg.BufferSize)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Play mixes one sound effect into the output.
func (b *Bank) Play(s flappy.Sound) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	st := Synthesize(s, b.cfg)
	if st == nil {
		return
	}
	speaker.Lock()
	b.mixer.Add(st)
	speaker.Unlock()
}

// Initialized reports whether the speaker is open.
func (b *Bank) Initialized() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.initialized
}

// Close stops every playing sound and releases the speaker.
func (b *Bank) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	b.mixer = &beep.Mixer{}
	b.initialized = false
}

package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a fixed-length oscillator whose frequency glides linearly from
// startFreq to endFreq.
type tone struct {
	wave      Wave
	startFreq float64
	endFreq   float64
	phase     float64
	pos       int
	length    int
	rate      beep.SampleRate
}

// NewTone creates a constant-frequency oscillator.
func NewTone(wave Wave, freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewSweep(wave, freq, freq, d, rate)
}

// NewSweep creates an oscillator gliding between two frequencies.
func NewSweep(wave Wave, from, to float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{wave: wave, startFreq: from, endFreq: to, length: rate.N(d), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (t.phase - 0.5)
		case WaveNoise:
			v = rand.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		progress := float64(t.pos) / float64(t.length)
		freq := t.startFreq + (t.endFreq-t.startFreq)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope shapes a stream with a linear attack and release.
type envelope struct {
	s       beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

// NewEnvelope wraps s so it fades in over attack and out over release,
// ending after d.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{s: s, total: rate.N(d), attack: rate.N(attack), release: rate.N(release)}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}
		gain := 1.0
		if e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		} else if e.release > 0 && e.pos >= releaseStart {
			gain = float64(e.total-e.pos) / float64(e.release)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// withVolume scales a stream by a linear gain. Zero or negative gain is silent.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// note is one enveloped tone.
func note(wave Wave, freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewTone(wave, freq, d, rate), d, 5*time.Millisecond, d/2, rate)
}

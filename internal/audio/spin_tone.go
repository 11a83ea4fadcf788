// Package audio sonifies the spin as a soft sine drone.
package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"

	"github.com/iburimskiy/wormhole-visualization/internal/config"
)

// SpinTone is a beep.Streamer whose pitch and level follow the rotation
// velocity. The render loop sets the velocity; the speaker goroutine streams.
type SpinTone struct {
	SampleRate beep.SampleRate

	mu    sync.RWMutex
	freq  float64
	gain  float64
	phase float64 // only touched by Stream
}

func NewSpinTone(sr beep.SampleRate) *SpinTone {
	t := &SpinTone{SampleRate: sr}
	t.SetVelocity(0)
	return t
}

// SetVelocity retunes the drone for a rotation velocity in radians per frame.
func (t *SpinTone) SetVelocity(v float64) {
	freq := Frequency(v)
	gain := config.ToneAmplitude * (0.5 + 0.5*clamp01(math.Abs(v)/0.05))

	t.mu.Lock()
	t.freq = freq
	t.gain = gain
	t.mu.Unlock()
}

func (t *SpinTone) Stream(samples [][2]float64) (int, bool) {
	t.mu.RLock()
	freq, gain := t.freq, t.gain
	t.mu.RUnlock()

	step := freq / float64(t.SampleRate)
	for i := range samples {
		s := gain * math.Sin(2*math.Pi*t.phase)
		samples[i] = [2]float64{s, s}
		t.phase += step
		if t.phase >= 1 {
			t.phase -= 1
		}
	}
	return len(samples), true
}

func (t *SpinTone) Err() error { return nil }

// Frequency maps a rotation velocity to a pitch in Hz.
func Frequency(v float64) float64 {
	return min(config.ToneBaseHz+math.Abs(v)*config.ToneHzPerRadian, config.ToneMaxHz)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

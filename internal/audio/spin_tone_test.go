package audio

import (
	"math"
	"testing"

	"github.com/faiface/beep"

	"github.com/iburimskiy/wormhole-visualization/internal/config"
	"github.com/iburimskiy/wormhole-visualization/internal/interaction"
)

func TestFrequency(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"still", 0, config.ToneBaseHz},
		{"default spin", interaction.DefaultSpin, config.ToneBaseHz + interaction.DefaultSpin*config.ToneHzPerRadian},
		{"reverse spin", -interaction.DefaultSpin, config.ToneBaseHz + interaction.DefaultSpin*config.ToneHzPerRadian},
		{"fast drag", 1, config.ToneMaxHz},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Frequency(tt.v); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Frequency(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestStreamBounded(t *testing.T) {
	tone := NewSpinTone(beep.SampleRate(config.ToneSampleRate))
	buf := make([][2]float64, 512)

	for _, v := range []float64{0, 0.0075, -0.3, 5} {
		tone.SetVelocity(v)
		n, ok := tone.Stream(buf)
		if n != len(buf) || !ok {
			t.Fatalf("Stream returned (%d, %v)", n, ok)
		}
		for i, s := range buf {
			if s[0] != s[1] {
				t.Fatalf("Sample %d not mono: %v", i, s)
			}
			if math.Abs(s[0]) > config.ToneAmplitude {
				t.Fatalf("Sample %d exceeds amplitude: %v", i, s[0])
			}
		}
	}
	if tone.Err() != nil {
		t.Errorf("Unexpected error %v", tone.Err())
	}
}

// TestStreamPitch counts upward zero crossings over one second.
func TestStreamPitch(t *testing.T) {
	sr := beep.SampleRate(config.ToneSampleRate)
	tone := NewSpinTone(sr)
	tone.SetVelocity(0.05)

	buf := make([][2]float64, config.ToneSampleRate)
	tone.Stream(buf)

	crossings := 0
	for i := 1; i < len(buf); i++ {
		if buf[i-1][0] < 0 && buf[i][0] >= 0 {
			crossings++
		}
	}
	want := Frequency(0.05)
	if math.Abs(float64(crossings)-want) > 2 {
		t.Errorf("Expected about %v cycles, counted %d", want, crossings)
	}
}

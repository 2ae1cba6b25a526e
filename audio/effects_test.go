package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// drain pulls a streamer to completion and returns the sample count and the
// peak absolute sample value
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()

	var total int
	var peak float64
	buf := make([][2]float64, 512)

	// Safety cap: no effect is longer than a couple of seconds
	for total < int(testRate)*5 {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for c := 0; c < 2; c++ {
				v := buf[i][c]
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never terminated")
	return 0, 0
}

// TestEffectsTerminateAndStayInRange verifies every effect builder produces
// a bounded, finite stream.
func TestEffectsTerminateAndStayInRange(t *testing.T) {
	builders := map[string]func(beep.SampleRate, float64) beep.Streamer{
		"hop":    HopSound,
		"land":   LandSound,
		"splash": SplashSound,
		"coin":   CoinSound,
		"hit":    HitSound,
	}

	for name, build := range builders {
		n, peak := drain(t, build(testRate, 0.8))
		if n == 0 {
			t.Errorf("%s produced no samples", name)
		}
		if peak > 1.0 {
			t.Errorf("%s peaked at %v, clipping", name, peak)
		}
	}
}

// TestToneFadesToSilence verifies the fade-out reaches zero at the end so
// short effects do not click.
func TestToneFadesToSilence(t *testing.T) {
	s := newTone(sine, 440, 100*time.Millisecond, 100*time.Millisecond, testRate)

	buf := make([][2]float64, 256)
	var last float64
	for {
		n, ok := s.Stream(buf)
		if n > 0 {
			last = buf[n-1][0]
		}
		if !ok {
			break
		}
	}

	if last > 0.01 || last < -0.01 {
		t.Fatalf("final sample %v, want near zero", last)
	}
}

// TestZeroVolumeIsSilent verifies a zero-volume gain produces only silence.
func TestZeroVolumeIsSilent(t *testing.T) {
	s := gain(newTone(sine, 440, 50*time.Millisecond, 10*time.Millisecond, testRate), 0)

	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] != 0 || buf[i][1] != 0 {
				t.Fatal("silent gain leaked signal")
			}
		}
		if !ok {
			return
		}
	}
}

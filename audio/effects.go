package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// wave is a waveform sampled by phase in [0,1)
type wave func(phase float64) float64

func sine(phase float64) float64 {
	return math.Sin(2 * math.Pi * phase)
}

func square(phase float64) float64 {
	if phase < 0.5 {
		return 1
	}
	return -1
}

func saw(phase float64) float64 {
	return 2*phase - 1
}

func noise(float64) float64 {
	return rand.Float64()*2 - 1
}

// tone generates a fixed-length waveform with a linear fade-out so short
// effects end without a click
type tone struct {
	wave     wave
	freq     float64
	rate     beep.SampleRate
	phase    float64
	pos      int
	total    int
	fadeFrom int
}

// newTone creates a streamer playing the given wave for the duration, fading
// out over the final fade portion
func newTone(w wave, freq float64, duration, fade time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	fadeSamples := rate.N(fade)
	if fadeSamples > total {
		fadeSamples = total
	}
	return &tone{
		wave:     w,
		freq:     freq,
		rate:     rate,
		total:    total,
		fadeFrom: total - fadeSamples,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		val := t.wave(t.phase)
		if t.pos >= t.fadeFrom && t.total > t.fadeFrom {
			val *= float64(t.total-t.pos) / float64(t.total-t.fadeFrom)
		}

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// gain wraps a streamer at the given linear volume; zero volume is silent
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Effect builders. Each call returns a fresh streamer; streamers are
// single-use.

// HopSound is a short upward blip for a hop launch
func HopSound(rate beep.SampleRate, vol float64) beep.Streamer {
	blip := newTone(square, 520, 45*time.Millisecond, 25*time.Millisecond, rate)
	return gain(blip, vol*0.4)
}

// LandSound is a soft low thump for a stick-landing
func LandSound(rate beep.SampleRate, vol float64) beep.Streamer {
	thump := newTone(sine, 140, 90*time.Millisecond, 70*time.Millisecond, rate)
	return gain(thump, vol*0.7)
}

// SplashSound layers noise over a sinking tone for water entry
func SplashSound(rate beep.SampleRate, vol float64) beep.Streamer {
	wash := newTone(noise, 0, 350*time.Millisecond, 300*time.Millisecond, rate)
	sink := newTone(sine, 110, 250*time.Millisecond, 220*time.Millisecond, rate)
	return gain(beep.Mix(gain(wash, 0.6), gain(sink, 0.4)), vol)
}

// CoinSound is a two-note rising chime for pickup collection
func CoinSound(rate beep.SampleRate, vol float64) beep.Streamer {
	n1 := newTone(sine, 987.77, 70*time.Millisecond, 40*time.Millisecond, rate)
	n2 := newTone(sine, 1318.51, 110*time.Millisecond, 80*time.Millisecond, rate)
	return gain(beep.Seq(n1, n2), vol*0.6)
}

// HitSound is a harsh buzz for obstacle and hazard impacts
func HitSound(rate beep.SampleRate, vol float64) beep.Streamer {
	buzz := newTone(saw, 95, 160*time.Millisecond, 120*time.Millisecond, rate)
	return gain(buzz, vol*0.8)
}

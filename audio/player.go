package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"pondhop/game"
)

// Player plays synthesized gameplay effects through the speaker. If the
// speaker cannot be initialized the player runs in silent mode instead of
// failing the game.
type Player struct {
	rate   beep.SampleRate
	volume float64
	silent bool
}

// NewPlayer initializes the speaker at the given sample rate
func NewPlayer(sampleRate int, volume float64) *Player {
	p := &Player{
		rate:   beep.SampleRate(sampleRate),
		volume: volume,
	}

	if volume <= 0 {
		p.silent = true
		return p
	}

	if err := speaker.Init(p.rate, p.rate.N(50*time.Millisecond)); err != nil {
		log.Printf("audio disabled: %v", err)
		p.silent = true
	}
	return p
}

// Play starts the effect for the given gameplay sound. Never blocks the
// game loop; the speaker mixes concurrently.
func (p *Player) Play(s game.Sound) {
	if p.silent {
		return
	}

	var streamer beep.Streamer
	switch s {
	case game.SoundHop:
		streamer = HopSound(p.rate, p.volume)
	case game.SoundLand:
		streamer = LandSound(p.rate, p.volume)
	case game.SoundSplash:
		streamer = SplashSound(p.rate, p.volume)
	case game.SoundCoin:
		streamer = CoinSound(p.rate, p.volume)
	case game.SoundHit:
		streamer = HitSound(p.rate, p.volume)
	default:
		return
	}

	speaker.Play(streamer)
}

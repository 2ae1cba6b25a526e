package game

import "math"

// SurfaceController governs the actor's landing slide: how much of the
// approach velocity survives a landing on a given surface under the active
// weather, and how that slide decays on subsequent ticks.
type SurfaceController struct {
	maxSlideSpeed  float64
	minSlideSpeed  float64
	maxSlideFrames int
	landingPause   float64
	decelFast      float64
	decelSlow      float64
}

// NewSurfaceController creates a controller from gameplay config
func NewSurfaceController(cfg Config) *SurfaceController {
	return &SurfaceController{
		maxSlideSpeed:  cfg.MaxSlideSpeed,
		minSlideSpeed:  cfg.MinSlideSpeed,
		maxSlideFrames: cfg.MaxSlideFrames,
		landingPause:   cfg.LandingPause,
		decelFast:      cfg.SlideDecelFast,
		decelSlow:      cfg.SlideDecelSlow,
	}
}

// SlipFactor maps platform type x weather to a slip scalar in [0,1].
// 0 is a normal stick-landing; higher means more of the approach velocity
// survives as slide. Precipitation and ice contribute more than calm weather.
func (s *SurfaceController) SlipFactor(platformType PlatformType, weather Weather) float64 {
	var slip float64

	switch platformType {
	case PlatformIce:
		slip = 0.8
	case PlatformLily:
		slip = 0.15
	case PlatformLog:
		slip = 0.25
	}

	switch weather {
	case WeatherRain:
		slip += 0.25
	case WeatherSnow:
		slip += 0.45
	case WeatherWind:
		slip += 0.1
	}

	// Dry normal pads stick regardless of weather
	if platformType == PlatformNormal && weather == WeatherClear {
		slip = 0
	}

	if slip > 1 {
		slip = 1
	}
	return slip
}

// OnLanded transitions the actor into a sliding state when the surface and
// weather call for it. The slide velocity follows the approach vector scaled
// by the slip factor and capped at the maximum slide speed; the landing
// pause shrinks linearly as the slip factor rises.
func (s *SurfaceController) OnLanded(actor *Actor, platformType PlatformType, weather Weather) {
	slip := s.SlipFactor(platformType, weather)
	actor.PauseTimer = s.landingPause * (1 - slip)

	if slip <= 0 {
		actor.Slide.Stop()
		return
	}

	speed := math.Hypot(actor.VelX, actor.VelY)
	if speed == 0 {
		actor.Slide.Stop()
		return
	}

	mag := speed * slip
	if mag > s.maxSlideSpeed {
		mag = s.maxSlideSpeed
	}

	actor.Slide = SlideState{
		VelX:      actor.VelX / speed * mag,
		VelY:      actor.VelY / speed * mag,
		Sliding:   true,
		MinSpeed:  s.minSlideSpeed,
		MaxFrames: s.maxSlideFrames,
	}
}

// Integrate decays an active slide by one step. Deceleration steepens as the
// slide slows so a near-stopped slide cannot creep indefinitely; a minimum
// speed cutoff and a hard frame cap both force-terminate the slide.
func (s *SurfaceController) Integrate(actor *Actor, dt float64) {
	slide := &actor.Slide
	if !slide.Sliding {
		return
	}

	speed := math.Hypot(slide.VelX, slide.VelY)
	if speed <= slide.MinSpeed {
		slide.Stop()
		return
	}

	// Blend from the gentle high-speed deceleration to the steep low-speed
	// one as the slide loses momentum
	t := speed / s.maxSlideSpeed
	if t > 1 {
		t = 1
	}
	decel := s.decelSlow + (s.decelFast-s.decelSlow)*t

	next := speed - decel*dt
	if next <= slide.MinSpeed {
		slide.Stop()
		return
	}

	scale := next / speed
	slide.VelX *= scale
	slide.VelY *= scale

	slide.Frames++
	if slide.Frames >= slide.MaxFrames {
		slide.Stop()
	}
}

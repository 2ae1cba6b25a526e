package game

// Weather identifies the active weather category
type Weather int

const (
	WeatherClear Weather = iota
	WeatherRain
	WeatherSnow
	WeatherWind
	WeatherFog
)

// String returns a human-readable weather name for the HUD and debug stream
func (w Weather) String() string {
	switch w {
	case WeatherClear:
		return "clear"
	case WeatherRain:
		return "rain"
	case WeatherSnow:
		return "snow"
	case WeatherWind:
		return "wind"
	case WeatherFog:
		return "fog"
	default:
		return "unknown"
	}
}

// WeatherSchedule maps score thresholds to weather categories.
// The game layer consults it once per tick and feeds the result into the
// collision and surface passes as explicit input.
type WeatherSchedule struct {
	// Thresholds are minimum scores, ascending; Categories is parallel
	Thresholds []int
	Categories []Weather
}

// DefaultWeatherSchedule cycles toward harsher weather as the score climbs
func DefaultWeatherSchedule() *WeatherSchedule {
	return &WeatherSchedule{
		Thresholds: []int{0, 15, 35, 60, 90},
		Categories: []Weather{WeatherClear, WeatherWind, WeatherRain, WeatherFog, WeatherSnow},
	}
}

// ForScore returns the weather category active at the given score
func (s *WeatherSchedule) ForScore(score int) Weather {
	active := WeatherClear
	for i, threshold := range s.Thresholds {
		if score >= threshold {
			active = s.Categories[i]
		}
	}
	return active
}

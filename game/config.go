package game

// Config holds gameplay tuning constants
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// LaneWidth is the playable horizontal extent of the pond in pixels
	LaneWidth float64

	// RowSpacing is the vertical distance between spawned platform rows
	RowSpacing float64

	// ActorRadius is the frog's collision footprint in pixels
	ActorRadius float64

	// HopSpeed is the horizontal speed imparted by a hop in pixels per second
	HopSpeed float64

	// JumpVelocity is the initial height-axis velocity of a hop
	JumpVelocity float64

	// Gravity pulls the height axis back toward the surface, units per second squared
	Gravity float64

	// LandingPause is the base pause after a stick-landing before the next hop
	LandingPause float64

	// HazardHeightWindow is the height-axis proximity below which a hazard can hit
	HazardHeightWindow float64

	// MaxSlideSpeed caps the slide velocity imparted by a slippery landing
	MaxSlideSpeed float64

	// MinSlideSpeed is the cutoff below which a slide is force-terminated
	MinSlideSpeed float64

	// MaxSlideFrames hard-bounds slide duration in integration steps
	MaxSlideFrames int

	// SlideDecelFast is the deceleration applied near MaxSlideSpeed
	SlideDecelFast float64

	// SlideDecelSlow is the steeper deceleration applied near MinSlideSpeed
	SlideDecelSlow float64

	// RocketDuration is how long launch-pad rocket flight lasts in seconds
	RocketDuration float64

	// LogTraversalDuration is how long a log-traversal power-up lasts in seconds
	LogTraversalDuration float64

	// InvulnDuration is the invulnerability window granted by grave pads and crashes
	InvulnDuration float64

	// WarpDistance is how far forward a warp pad teleports the actor
	WarpDistance float64

	// CullBehind is how far behind the actor platforms survive before removal
	CullBehind float64

	// SpawnAhead is how far ahead of the actor rows are kept populated
	SpawnAhead float64

	// Lives is the starting life count
	Lives int
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:          480,
		ScreenHeight:         720,
		LaneWidth:            440.0,
		RowSpacing:           90.0,
		ActorRadius:          10.0,
		HopSpeed:             220.0,
		JumpVelocity:         160.0,
		Gravity:              640.0,
		LandingPause:         0.18,
		HazardHeightWindow:   14.0,
		MaxSlideSpeed:        140.0,
		MinSlideSpeed:        8.0,
		MaxSlideFrames:       120,
		SlideDecelFast:       90.0,
		SlideDecelSlow:       420.0,
		RocketDuration:       3.0,
		LogTraversalDuration: 6.0,
		InvulnDuration:       2.0,
		WarpDistance:         270.0,
		CullBehind:           240.0,
		SpawnAhead:           900.0,
		Lives:                3,
	}
}

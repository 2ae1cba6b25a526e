package game

// SlideState tracks the residual slide a slippery landing imparts.
// It is owned by the actor and mutated by the SurfaceController.
type SlideState struct {
	// Slide velocity in pixels per second
	VelX, VelY float64

	// Sliding reports whether the actor is currently on a slippery surface
	Sliding bool

	// MinSpeed is the cutoff below which sliding is force-terminated
	MinSpeed float64

	// Frames counts integration steps since the slide began
	Frames int

	// MaxFrames force-terminates the slide regardless of deceleration
	MaxFrames int
}

// Stop ends the slide immediately
func (s *SlideState) Stop() {
	s.VelX = 0
	s.VelY = 0
	s.Sliding = false
	s.Frames = 0
}

// Actor is the player-controlled frog
type Actor struct {
	// Position in world coordinates
	X, Y float64

	// Planar velocity in pixels per second
	VelX, VelY float64

	// Height is the jump-arc coordinate above the water surface; VertVel is
	// its rate of change. Height 0 is surface level.
	Height  float64
	VertVel float64

	// Radius is the collision footprint in pixels
	Radius float64

	// Capability flags with their remaining durations in seconds
	RocketActive bool
	RocketTimer  float64
	LogTraversal bool
	LogTimer     float64
	Invulnerable bool
	InvulnTimer  float64

	// RestingOn is a weak reference to the platform the actor sits on.
	// A dangling handle means the actor is not resting on anything.
	RestingOn PlatformHandle

	// Slide is the surface-induced residual motion state
	Slide SlideState

	// PauseTimer blocks the next hop until the landing pause elapses
	PauseTimer float64

	gravity float64
}

// NewActor creates the frog at the given position
func NewActor(x, y float64, cfg Config) *Actor {
	return &Actor{
		X:       x,
		Y:       y,
		Radius:  cfg.ActorRadius,
		gravity: cfg.Gravity,
	}
}

// Descending reports whether the actor is at or below surface level and not
// ascending, the precondition for the landing pass.
func (a *Actor) Descending() bool {
	return a.Height <= 0 && a.VertVel <= 0
}

// CanHop reports whether a new hop may start this tick
func (a *Actor) CanHop() bool {
	return a.Height <= 0 && a.PauseTimer <= 0
}

// Jump launches a hop in the given planar direction. A jump always takes
// precedence over sliding: any active slide is terminated first, never
// blended into the hop trajectory.
func (a *Actor) Jump(dirX, dirY, hopSpeed, jumpVelocity float64) {
	a.Slide.Stop()
	a.VelX = dirX * hopSpeed
	a.VelY = dirY * hopSpeed
	a.VertVel = jumpVelocity
	a.Height = 0.001
	a.PauseTimer = 0
	a.RestingOn = NoPlatform
}

// Update integrates velocity, slide velocity, and the jump arc
func (a *Actor) Update(dt float64) {
	a.X += (a.VelX + a.Slide.VelX) * dt
	a.Y += (a.VelY + a.Slide.VelY) * dt

	// Planar velocity is not cleared here: the landing pass still needs the
	// approach vector. The game layer stops the actor once landing resolves.
	if a.Height > 0 || a.VertVel > 0 {
		a.VertVel -= a.gravity * dt
		a.Height += a.VertVel * dt
		if a.Height <= 0 {
			a.Height = 0
			if a.VertVel < 0 {
				a.VertVel = 0
			}
		}
	}

	if a.PauseTimer > 0 {
		a.PauseTimer -= dt
	}

	a.tickCapabilities(dt)
}

// tickCapabilities decays the transient capability flags
func (a *Actor) tickCapabilities(dt float64) {
	if a.RocketActive {
		a.RocketTimer -= dt
		if a.RocketTimer <= 0 {
			a.RocketActive = false
		}
	}
	if a.LogTraversal {
		a.LogTimer -= dt
		if a.LogTimer <= 0 {
			a.LogTraversal = false
		}
	}
	if a.Invulnerable {
		a.InvulnTimer -= dt
		if a.InvulnTimer <= 0 {
			a.Invulnerable = false
		}
	}
}

// GrantRocket puts the actor into rocket flight for the given duration.
// Rocket flight suppresses all obstacle collision.
func (a *Actor) GrantRocket(duration float64) {
	a.RocketActive = true
	a.RocketTimer = duration
}

// GrantLogTraversal lets the actor land on floating logs for the duration
func (a *Actor) GrantLogTraversal(duration float64) {
	a.LogTraversal = true
	a.LogTimer = duration
}

// GrantInvulnerability shields the actor from hazards for the duration
func (a *Actor) GrantInvulnerability(duration float64) {
	a.Invulnerable = true
	a.InvulnTimer = duration
}

package game

// Hazard is an ephemeral threat crossing the pond (dragonfly, snake).
// The spawner owns its lifetime and motion.
type Hazard struct {
	// Position in world coordinates
	X, Y float64

	// Velocity in pixels per second
	VelX, VelY float64

	// Height is the hazard's jump-arc coordinate, compared against the
	// actor's height so the actor can jump over a hazard
	Height float64

	// Radius is the fixed interaction radius
	Radius float64
}

// Update advances the hazard along its flight path
func (h *Hazard) Update(dt float64) {
	h.X += h.VelX * dt
	h.Y += h.VelY * dt
}

// Pickup is a collectible coin floating on a platform
type Pickup struct {
	// Position in world coordinates
	X, Y float64

	// Radius is the fixed interaction radius
	Radius float64

	// Collected is write-once: false to true, never back
	Collected bool
}

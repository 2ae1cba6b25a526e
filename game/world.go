package game

// World owns the live platform set, hazards, and pickups, and moves the
// platforms each tick. The ordered handle list is the iteration order handed
// to the resolver: nearest-spawned-first, so the oldest surviving platform
// wins landing ties.
type World struct {
	// Arena stores platforms behind stable handles
	Arena *PlatformArena

	// Order is the live platform list in spawn order
	Order []PlatformHandle

	// Hazards and Pickups are flat lists owned by the spawner
	Hazards []*Hazard
	Pickups []*Pickup

	// Config is the gameplay tuning in effect
	Config Config
}

// NewWorld creates an empty world
func NewWorld(cfg Config) *World {
	return &World{
		Arena:   NewPlatformArena(128),
		Order:   make([]PlatformHandle, 0, 128),
		Hazards: make([]*Hazard, 0, 16),
		Pickups: make([]*Pickup, 0, 32),
		Config:  cfg,
	}
}

// AddPlatform registers a platform and appends it to the resolver order
func (w *World) AddPlatform(p Platform) PlatformHandle {
	h := w.Arena.Add(p)
	w.Order = append(w.Order, h)
	return h
}

// Update advances platform motion: moving pads and logs drift horizontally
// and bounce off the lane edges, shrinking pads lose radius down to a floor.
func (w *World) Update(dt float64) {
	halfLane := w.Config.LaneWidth / 2

	for _, h := range w.Order {
		p := w.Arena.Get(h)
		if p == nil {
			continue
		}

		if p.Moves() {
			p.X += p.Direction * p.Speed * dt
			if p.X > halfLane && p.Direction > 0 {
				p.Direction = -1
			} else if p.X < -halfLane && p.Direction < 0 {
				p.Direction = 1
			}
		}

		if p.Type == PlatformShrinking && p.ScaledRadius > shrinkFloorRadius {
			p.ScaledRadius -= shrinkRate * dt
			if p.ScaledRadius < shrinkFloorRadius {
				p.ScaledRadius = shrinkFloorRadius
			}
		}
	}

	for _, hz := range w.Hazards {
		hz.Update(dt)
	}
}

// Shrinking pad decay: radius loss per second and the smallest radius a pad
// shrinks to before stabilizing
const (
	shrinkRate        = 3.5
	shrinkFloorRadius = 12.0
)

// Cull removes platforms, hazards, and pickups that scrolled behind the
// actor. The actor advances toward negative Y, so "behind" is larger Y.
func (w *World) Cull(behindY float64) {
	keep := w.Order[:0]
	for _, h := range w.Order {
		p := w.Arena.Get(h)
		if p == nil {
			continue
		}
		if p.Y > behindY {
			w.Arena.Remove(h)
			continue
		}
		keep = append(keep, h)
	}
	w.Order = keep

	hazards := w.Hazards[:0]
	for _, hz := range w.Hazards {
		if hz.Y <= behindY && hz.X > -hazardCullX && hz.X < hazardCullX {
			hazards = append(hazards, hz)
		}
	}
	w.Hazards = hazards

	pickups := w.Pickups[:0]
	for _, pk := range w.Pickups {
		if pk.Y <= behindY && !pk.Collected {
			pickups = append(pickups, pk)
		}
	}
	w.Pickups = pickups
}

// hazardCullX removes hazards that flew off the sides of the pond
const hazardCullX = 600.0

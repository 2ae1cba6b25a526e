package game

import "math/rand"

// Spawner generates the platform field ahead of the actor: rows of pads and
// logs, coins on some pads, and hazards launched across the pond on a timer.
type Spawner struct {
	rng *rand.Rand
	cfg Config

	// nextRowY is where the next platform row will be placed
	nextRowY float64

	// hazardTimer counts down to the next hazard launch
	hazardTimer float64

	// rowsSpawned drives the difficulty ramp
	rowsSpawned int
}

// NewSpawner creates a spawner with a deterministic seed
func NewSpawner(cfg Config, seed int64) *Spawner {
	return &Spawner{
		rng:         rand.New(rand.NewSource(seed)),
		cfg:         cfg,
		nextRowY:    -cfg.RowSpacing,
		hazardTimer: 4.0,
	}
}

// Update keeps rows populated ahead of the actor and launches hazards
func (s *Spawner) Update(w *World, actor *Actor, dt float64) {
	s.FillAhead(w, actor.Y-s.cfg.SpawnAhead)

	s.hazardTimer -= dt
	if s.hazardTimer <= 0 {
		s.launchHazard(w, actor)
		// Launches come faster as the run progresses, floored at 1.5 s
		interval := 5.0 - float64(s.rowsSpawned)*0.02
		if interval < 1.5 {
			interval = 1.5
		}
		s.hazardTimer = interval
	}
}

// FillAhead spawns rows until the field reaches aheadY (more negative is
// further ahead)
func (s *Spawner) FillAhead(w *World, aheadY float64) {
	for s.nextRowY > aheadY {
		s.spawnRow(w, s.nextRowY)
		s.nextRowY -= s.cfg.RowSpacing
		s.rowsSpawned++
	}
}

// spawnRow places one row of platforms at the given Y
func (s *Spawner) spawnRow(w *World, y float64) {
	halfLane := s.cfg.LaneWidth / 2

	// Occasional log row: a single moving log spanning the lane
	if s.rowsSpawned > 4 && s.rng.Float64() < 0.18 {
		direction := 1.0
		if s.rng.Float64() < 0.5 {
			direction = -1.0
		}
		x := (s.rng.Float64()*2 - 1) * halfLane * 0.5
		speed := 40.0 + s.rng.Float64()*50.0
		w.AddPlatform(NewLogPlatform(x, y, logCoupleHalfW, logCoupleHalfH, direction, speed))
		return
	}

	count := 1 + s.rng.Intn(3)
	for i := 0; i < count; i++ {
		// Spread pads across lane thirds with jitter so rows stay hoppable
		slot := (float64(i)+0.5)/float64(count)*2 - 1
		x := slot*halfLane*0.8 + (s.rng.Float64()*2-1)*25.0
		radius := 28.0 + s.rng.Float64()*14.0

		p := NewPadPlatform(x, y, radius, s.rollPadType())
		if p.Type == PlatformMoving {
			p.Direction = 1
			if s.rng.Float64() < 0.5 {
				p.Direction = -1
			}
			p.Speed = 30.0 + s.rng.Float64()*40.0
		}
		w.AddPlatform(p)

		if s.rng.Float64() < 0.3 {
			w.Pickups = append(w.Pickups, &Pickup{X: x, Y: y, Radius: 8.0})
		}
	}
}

// rollPadType picks a circular platform type, weighted toward plain pads
// early and trickier surfaces as the run progresses
func (s *Spawner) rollPadType() PlatformType {
	roll := s.rng.Float64()
	ramp := float64(s.rowsSpawned) / 100.0
	if ramp > 0.35 {
		ramp = 0.35
	}

	switch {
	case roll < 0.04:
		return PlatformLaunch
	case roll < 0.07:
		return PlatformWarp
	case roll < 0.10:
		return PlatformGrave
	case roll < 0.18+ramp:
		return PlatformIce
	case roll < 0.28+ramp:
		return PlatformShrinking
	case roll < 0.40+ramp:
		return PlatformMoving
	case roll < 0.55+ramp:
		return PlatformLily
	default:
		return PlatformNormal
	}
}

// launchHazard sends a hazard flying across the pond near the actor
func (s *Spawner) launchHazard(w *World, actor *Actor) {
	fromLeft := s.rng.Float64() < 0.5
	x := hazardCullX - 1
	velX := -(70.0 + s.rng.Float64()*80.0)
	if fromLeft {
		x = -x
		velX = -velX
	}

	// Aim at a row near the actor's current position
	y := actor.Y - s.rng.Float64()*s.cfg.RowSpacing*3

	w.Hazards = append(w.Hazards, &Hazard{
		X:      x,
		Y:      y,
		VelX:   velX,
		Height: s.rng.Float64() * 10.0,
		Radius: 9.0,
	})
}

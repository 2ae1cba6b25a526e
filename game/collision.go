package game

// TickInput carries the per-tick world state the resolver reads. Capability
// and weather state is passed explicitly rather than read from globals so the
// pass stays testable in isolation.
type TickInput struct {
	// RocketActive suppresses all obstacle collision
	RocketActive bool

	// LogTraversal turns logs from obstacles into landing surfaces
	LogTraversal bool

	// Invulnerable skips the hazard pass entirely
	Invulnerable bool

	// Weather is the active weather category
	Weather Weather
}

// Events is the discriminated outcome set of one resolver tick. Landing and
// obstacle events fire at most once per tick; pickups and hazards may fire
// multiple times.
type Events struct {
	// Landed is set when the actor came to rest on a new platform this tick
	Landed  PlatformHandle
	DidLand bool

	// FellIntoWater is set when the landing test ran and no platform accepted
	FellIntoWater bool

	// Obstacle is set when the actor struck a log this tick
	Obstacle    PlatformHandle
	HitObstacle bool

	// Collected lists pickups collected this tick
	Collected []*Pickup

	// Crashed lists every hazard that hit this tick. The caller decides
	// whether each hit costs a life or hits are clamped to one per tick.
	Crashed []*Hazard
}

// Resolver runs the per-tick actor-vs-world collision pass
type Resolver struct {
	arena *PlatformArena

	// heightWindow is the height-axis proximity below which a hazard connects
	heightWindow float64
}

// NewResolver creates a resolver over the given platform arena
func NewResolver(arena *PlatformArena, cfg Config) *Resolver {
	return &Resolver{
		arena:        arena,
		heightWindow: cfg.HazardHeightWindow,
	}
}

// Resolve runs the four collision passes in fixed order: landing, obstacle,
// pickup, hazard. Platforms are tested in the order the caller supplies;
// first match wins. Runs unconditionally once per tick and never blocks.
func (r *Resolver) Resolve(actor *Actor, order []PlatformHandle, hazards []*Hazard, pickups []*Pickup, in TickInput) Events {
	var ev Events

	r.resolveLanding(actor, order, in, &ev)
	r.resolveObstacles(actor, order, in, &ev)
	r.resolvePickups(actor, pickups, &ev)
	r.resolveHazards(actor, hazards, in, &ev)

	return ev
}

// resolveLanding finds the first platform accepting the actor, if the actor
// is at or below surface level and not ascending. Logs only count as landing
// surfaces while the actor holds the log-traversal capability; without it
// they are skipped here and handled as obstacles in the next pass.
func (r *Resolver) resolveLanding(actor *Actor, order []PlatformHandle, in TickInput, ev *Events) {
	if !actor.Descending() {
		return
	}

	hit := NoPlatform
	for _, h := range order {
		p := r.arena.Get(h)
		if p == nil {
			continue
		}
		if p.Type == PlatformLog && !in.LogTraversal {
			continue
		}
		if r.footprintOverlap(actor, p) {
			hit = h
			break
		}
	}

	if hit == NoPlatform {
		// Terminal case: nothing accepted the actor, no grace window here
		ev.FellIntoWater = true
		actor.RestingOn = NoPlatform
		return
	}

	// Re-testing the resting platform every frame fires no repeated event
	if hit != actor.RestingOn {
		ev.DidLand = true
		ev.Landed = hit
	}
	actor.RestingOn = hit
}

// resolveObstacles tests the actor against every log. Skipped entirely under
// rocket flight (full immunity) or log traversal (logs are floor, not wall).
// At most one obstacle event fires per tick.
func (r *Resolver) resolveObstacles(actor *Actor, order []PlatformHandle, in TickInput, ev *Events) {
	if in.RocketActive || in.LogTraversal {
		return
	}

	for _, h := range order {
		p := r.arena.Get(h)
		if p == nil || p.Type != PlatformLog {
			continue
		}
		if rectOverlap(actor.X, actor.Y, actor.Radius, p) {
			ev.HitObstacle = true
			ev.Obstacle = h
			return
		}
	}
}

// resolvePickups collects every uncollected pickup in range. The collected
// flag is a one-way transition; this loop does not stop early.
func (r *Resolver) resolvePickups(actor *Actor, pickups []*Pickup, ev *Events) {
	for _, pk := range pickups {
		if pk.Collected {
			continue
		}
		reach := pk.Radius + actor.Radius
		dx := pk.X - actor.X
		dy := pk.Y - actor.Y
		if dx*dx+dy*dy < reach*reach {
			pk.Collected = true
			ev.Collected = append(ev.Collected, pk)
		}
	}
}

// resolveHazards reports every hazard hitting the actor. A hit needs both
// horizontal overlap and height-axis proximity, so the actor can jump over a
// hazard it horizontally overlaps. No early exit: each hit is a distinct
// threat for the caller to resolve.
func (r *Resolver) resolveHazards(actor *Actor, hazards []*Hazard, in TickInput, ev *Events) {
	if in.Invulnerable {
		return
	}

	for _, hz := range hazards {
		reach := hz.Radius + actor.Radius
		dx := hz.X - actor.X
		dy := hz.Y - actor.Y
		if dx*dx+dy*dy >= reach*reach {
			continue
		}
		dh := actor.Height - hz.Height
		if dh < 0 {
			dh = -dh
		}
		if dh < r.heightWindow {
			ev.Crashed = append(ev.Crashed, hz)
		}
	}
}

// footprintOverlap tests the actor's circular footprint against a platform
// of either shape
func (r *Resolver) footprintOverlap(actor *Actor, p *Platform) bool {
	switch p.Kind {
	case ShapeRect:
		return rectOverlap(actor.X, actor.Y, actor.Radius, p)
	default:
		return circleOverlap(actor.X, actor.Y, actor.Radius, p)
	}
}

// rectOverlap is the rectangular footprint test shared by the landing and
// obstacle passes
func rectOverlap(x, y, radius float64, p *Platform) bool {
	dx := x - p.X
	if dx < 0 {
		dx = -dx
	}
	dy := y - p.Y
	if dy < 0 {
		dy = -dy
	}
	return dx < p.HalfW+radius && dy < p.HalfH+radius
}

// circleOverlap rejects cheaply on the bounding box before the squared
// distance test
func circleOverlap(x, y, radius float64, p *Platform) bool {
	reach := p.ScaledRadius + radius
	dx := x - p.X
	if dx >= reach || dx <= -reach {
		return false
	}
	dy := y - p.Y
	if dy >= reach || dy <= -reach {
		return false
	}
	return dx*dx+dy*dy < reach*reach
}

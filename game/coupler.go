package game

// Half-extents used for platform-vs-platform overlap. Logs use their real
// footprint; every other platform type is approximated as a 45x45 box.
const (
	logCoupleHalfW = 60.0
	logCoupleHalfH = 20.0
	padCoupleHalf  = 45.0
)

// MotionCoupler resolves moving-log vs platform overlap before the actor
// pass, flipping a log's travel direction when it runs into anything.
type MotionCoupler struct {
	arena *PlatformArena
}

// NewMotionCoupler creates a coupler over the given platform arena
func NewMotionCoupler(arena *PlatformArena) *MotionCoupler {
	return &MotionCoupler{arena: arena}
}

// ResolveOverlaps runs once per tick. O(n^2) over live platforms; the live
// count stays small under culling.
func (c *MotionCoupler) ResolveOverlaps(order []PlatformHandle) {
	for _, lh := range order {
		log := c.arena.Get(lh)
		if log == nil || log.Type != PlatformLog || log.Speed == 0 {
			continue
		}

		for _, oh := range order {
			// Exclude by identity: two platforms at the same position are
			// still distinct
			if oh == lh {
				continue
			}
			other := c.arena.Get(oh)
			if other == nil {
				continue
			}

			halfW, halfH := padCoupleHalf, padCoupleHalf
			if other.Type == PlatformLog {
				halfW, halfH = logCoupleHalfW, logCoupleHalfH
			}

			dx := log.X - other.X
			if dx < 0 {
				dx = -dx
			}
			dy := log.Y - other.Y
			if dy < 0 {
				dy = -dy
			}
			if dx >= logCoupleHalfW+halfW || dy >= logCoupleHalfH+halfH {
				continue
			}

			// Flip only when the log is moving toward the obstacle, so a log
			// already moving away does not jitter back and forth
			if log.X < other.X && log.Direction > 0 {
				log.Direction = -1
			} else if log.X > other.X && log.Direction < 0 {
				log.Direction = 1
			}
		}
	}
}

package game

// PlatformType identifies the gameplay behavior of a platform
type PlatformType int

const (
	PlatformNormal PlatformType = iota
	PlatformMoving
	PlatformLily
	PlatformLog
	PlatformIce
	PlatformGrave
	PlatformShrinking
	PlatformLaunch
	PlatformWarp
)

// String returns a human-readable platform type name
func (t PlatformType) String() string {
	switch t {
	case PlatformNormal:
		return "normal"
	case PlatformMoving:
		return "moving"
	case PlatformLily:
		return "lily"
	case PlatformLog:
		return "log"
	case PlatformIce:
		return "ice"
	case PlatformGrave:
		return "grave"
	case PlatformShrinking:
		return "shrinking"
	case PlatformLaunch:
		return "launch"
	case PlatformWarp:
		return "warp"
	default:
		return "unknown"
	}
}

// ShapeKind discriminates the two collision footprints a platform can have
type ShapeKind int

const (
	// ShapeCircle is a circular footprint with a radius that may change over
	// the platform's lifetime (shrinking pads)
	ShapeCircle ShapeKind = iota

	// ShapeRect is a fixed axis-aligned rectangular footprint (logs)
	ShapeRect
)

// Platform is a surface the actor can land on or be blocked by
type Platform struct {
	// Position in world coordinates
	X, Y float64

	// Shape discriminant; shape-specific fields below
	Kind ShapeKind

	// ScaledRadius is the current circle radius, always >= 0 (circle only)
	ScaledRadius float64

	// HalfW, HalfH are the fixed rectangle half-extents (rect only)
	HalfW, HalfH float64

	// Type tags gameplay behavior
	Type PlatformType

	// Direction is the travel direction scalar (+1 or -1) for moving platforms
	Direction float64

	// Speed is the travel speed in pixels per second for moving platforms
	Speed float64
}

// NewPadPlatform creates a circular platform of the given type
func NewPadPlatform(x, y, radius float64, platformType PlatformType) Platform {
	return Platform{
		X:            x,
		Y:            y,
		Kind:         ShapeCircle,
		ScaledRadius: radius,
		Type:         platformType,
	}
}

// NewLogPlatform creates a rectangular floating log moving in the given direction
func NewLogPlatform(x, y, halfW, halfH, direction, speed float64) Platform {
	return Platform{
		X:         x,
		Y:         y,
		Kind:      ShapeRect,
		HalfW:     halfW,
		HalfH:     halfH,
		Type:      PlatformLog,
		Direction: direction,
		Speed:     speed,
	}
}

// Moves reports whether the platform travels horizontally each tick
func (p *Platform) Moves() bool {
	return p.Speed != 0 && (p.Type == PlatformMoving || p.Type == PlatformLog)
}

// PlatformHandle is a weak reference into a PlatformArena. The zero value
// never resolves; a handle to a removed platform stops resolving as soon as
// the slot is reused or freed.
type PlatformHandle struct {
	index      int
	generation uint32
}

// NoPlatform is the null handle ("not resting on anything")
var NoPlatform = PlatformHandle{}

// PlatformArena stores platforms in stable slots so handles survive removals
// of unrelated platforms. Slots are recycled with a bumped generation, which
// invalidates any handle still pointing at the old occupant.
type PlatformArena struct {
	slots []arenaSlot
	free  []int
}

type arenaSlot struct {
	platform   Platform
	generation uint32
	live       bool
}

// NewPlatformArena creates an arena with the given initial slot capacity
func NewPlatformArena(capacity int) *PlatformArena {
	return &PlatformArena{
		slots: make([]arenaSlot, 0, capacity),
		free:  make([]int, 0, capacity),
	}
}

// Add stores a platform and returns its handle
func (a *PlatformArena) Add(p Platform) PlatformHandle {
	if n := len(a.free); n > 0 {
		index := a.free[n-1]
		a.free = a.free[:n-1]
		slot := &a.slots[index]
		slot.platform = p
		slot.generation++
		slot.live = true
		return PlatformHandle{index: index, generation: slot.generation}
	}

	// Generations start at 1 so the zero handle never resolves
	a.slots = append(a.slots, arenaSlot{platform: p, generation: 1, live: true})
	return PlatformHandle{index: len(a.slots) - 1, generation: 1}
}

// Remove frees the slot behind the handle; a stale handle is a no-op
func (a *PlatformArena) Remove(h PlatformHandle) {
	if !a.contains(h) {
		return
	}
	a.slots[h.index].live = false
	a.free = append(a.free, h.index)
}

// Get returns the platform behind the handle, or nil if the handle is
// dangling (platform culled, slot reused, or zero handle)
func (a *PlatformArena) Get(h PlatformHandle) *Platform {
	if !a.contains(h) {
		return nil
	}
	return &a.slots[h.index].platform
}

// Len returns the number of live platforms
func (a *PlatformArena) Len() int {
	return len(a.slots) - len(a.free)
}

func (a *PlatformArena) contains(h PlatformHandle) bool {
	return h.index >= 0 && h.index < len(a.slots) &&
		a.slots[h.index].live && a.slots[h.index].generation == h.generation
}

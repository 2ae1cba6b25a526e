package game

import "testing"

// TestLogFlipsWhenMovingTowardObstacle verifies the bumper flip: log A left
// of pad B and moving right flips to moving left; B is untouched.
func TestLogFlipsWhenMovingTowardObstacle(t *testing.T) {
	arena := NewPlatformArena(8)
	logH := arena.Add(NewLogPlatform(0, 0, 60, 20, 1, 50))
	padH := arena.Add(NewPadPlatform(80, 0, 40, PlatformNormal))

	c := NewMotionCoupler(arena)
	c.ResolveOverlaps([]PlatformHandle{logH, padH})

	if arena.Get(logH).Direction != -1 {
		t.Fatal("log moving toward the pad must flip to -1")
	}
	if pad := arena.Get(padH); pad.Direction != 0 || pad.Speed != 0 {
		t.Fatal("the stationary obstacle must be untouched")
	}
}

// TestLogDoesNotFlipWhenMovingAway verifies the anti-jitter tie-break: a log
// already moving away from the overlap keeps its direction.
func TestLogDoesNotFlipWhenMovingAway(t *testing.T) {
	arena := NewPlatformArena(8)
	logH := arena.Add(NewLogPlatform(0, 0, 60, 20, -1, 50))
	padH := arena.Add(NewPadPlatform(80, 0, 40, PlatformNormal))

	c := NewMotionCoupler(arena)
	c.ResolveOverlaps([]PlatformHandle{logH, padH})

	if arena.Get(logH).Direction != -1 {
		t.Fatal("log moving away must not flip back")
	}
}

// TestLogRightOfObstacleFlipsPositive verifies the mirrored case: log right
// of the obstacle and moving left flips to +1.
func TestLogRightOfObstacleFlipsPositive(t *testing.T) {
	arena := NewPlatformArena(8)
	logH := arena.Add(NewLogPlatform(80, 0, 60, 20, -1, 50))
	padH := arena.Add(NewPadPlatform(0, 0, 40, PlatformNormal))

	c := NewMotionCoupler(arena)
	c.ResolveOverlaps([]PlatformHandle{logH, padH})

	if arena.Get(logH).Direction != 1 {
		t.Fatal("log moving toward an obstacle on its left must flip to +1")
	}
}

// TestCoupledLogsUseLogExtents verifies log-vs-log overlap uses the 60x20
// footprint on both sides: vertically separated logs do not interact.
func TestCoupledLogsUseLogExtents(t *testing.T) {
	arena := NewPlatformArena(8)
	a := arena.Add(NewLogPlatform(0, 0, 60, 20, 1, 50))
	b := arena.Add(NewLogPlatform(40, 50, 60, 20, -1, 50))

	c := NewMotionCoupler(arena)
	c.ResolveOverlaps([]PlatformHandle{a, b})

	// |dy| = 50 >= 20+20, so neither flips despite the x overlap
	if arena.Get(a).Direction != 1 || arena.Get(b).Direction != -1 {
		t.Fatal("logs separated beyond their half-heights must not couple")
	}
}

// TestIdenticalPositionsAreDistinctPlatforms verifies exclusion by identity,
// not equality: two platforms at the same position still interact.
func TestIdenticalPositionsAreDistinctPlatforms(t *testing.T) {
	arena := NewPlatformArena(8)
	logH := arena.Add(NewLogPlatform(0, 0, 60, 20, 1, 50))
	twin := arena.Add(NewPadPlatform(0, 0, 40, PlatformNormal))

	c := NewMotionCoupler(arena)
	c.ResolveOverlaps([]PlatformHandle{logH, twin})

	// Same position means neither flip branch matches; the point is that
	// the pair was tested without panicking or self-exclusion by value
	if arena.Get(logH).Direction != 1 {
		t.Fatal("co-located overlap must not flip a log in neither direction branch")
	}
}

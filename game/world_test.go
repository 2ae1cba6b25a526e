package game

import "testing"

// TestCullRemovesPlatformsBehind verifies culling drops platforms behind
// the line and keeps the order list consistent with the arena.
func TestCullRemovesPlatformsBehind(t *testing.T) {
	w := NewWorld(DefaultConfig())
	behind := w.AddPlatform(NewPadPlatform(0, 300, 30, PlatformNormal))
	ahead := w.AddPlatform(NewPadPlatform(0, -300, 30, PlatformNormal))

	w.Cull(100)

	if w.Arena.Get(behind) != nil {
		t.Fatal("platform behind the cull line must be removed")
	}
	if w.Arena.Get(ahead) == nil {
		t.Fatal("platform ahead must survive")
	}
	if len(w.Order) != 1 || w.Order[0] != ahead {
		t.Fatalf("order list out of sync after cull: %v", w.Order)
	}
}

// TestCullDropsCollectedPickups verifies collected pickups leave the list
// while uncollected ones ahead of the line stay.
func TestCullDropsCollectedPickups(t *testing.T) {
	w := NewWorld(DefaultConfig())
	taken := &Pickup{X: 0, Y: -50, Radius: 8, Collected: true}
	live := &Pickup{X: 0, Y: -50, Radius: 8}
	w.Pickups = append(w.Pickups, taken, live)

	w.Cull(100)

	if len(w.Pickups) != 1 || w.Pickups[0] != live {
		t.Fatalf("expected only the live pickup to survive, got %d", len(w.Pickups))
	}
}

// TestMovingPlatformBouncesOffLaneEdge verifies drifting platforms reverse
// at the lane boundary instead of leaving the pond.
func TestMovingPlatformBouncesOffLaneEdge(t *testing.T) {
	cfg := DefaultConfig()
	w := NewWorld(cfg)

	p := NewPadPlatform(cfg.LaneWidth/2-1, 0, 30, PlatformMoving)
	p.Direction = 1
	p.Speed = 600
	h := w.AddPlatform(p)

	w.Update(0.1)

	if w.Arena.Get(h).Direction != -1 {
		t.Fatal("platform crossing the right edge must reverse")
	}
}

// TestShrinkingPadHasRadiusFloor verifies a shrinking pad never collapses
// below its minimum radius.
func TestShrinkingPadHasRadiusFloor(t *testing.T) {
	w := NewWorld(DefaultConfig())
	h := w.AddPlatform(NewPadPlatform(0, 0, 30, PlatformShrinking))

	for i := 0; i < 600; i++ {
		w.Update(1.0 / 60.0)
	}

	r := w.Arena.Get(h).ScaledRadius
	if r != shrinkFloorRadius {
		t.Fatalf("radius %v, want floor %v", r, shrinkFloorRadius)
	}
	if r < 0 {
		t.Fatal("radius must never go negative")
	}
}

// TestSpawnerKeepsFieldPopulated verifies rows are generated ahead of the
// requested line and stamped into the resolver order.
func TestSpawnerKeepsFieldPopulated(t *testing.T) {
	cfg := DefaultConfig()
	w := NewWorld(cfg)
	s := NewSpawner(cfg, 7)

	s.FillAhead(w, -cfg.SpawnAhead)

	if w.Arena.Len() == 0 {
		t.Fatal("spawner produced no platforms")
	}
	for _, h := range w.Order {
		p := w.Arena.Get(h)
		if p == nil {
			t.Fatal("order list contains a dangling handle after spawn")
		}
		if p.Y < -cfg.SpawnAhead-cfg.RowSpacing {
			t.Fatalf("platform spawned beyond the fill line: %v", p.Y)
		}
	}
}

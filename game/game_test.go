package game

import "testing"

// scriptedInput is a canned input provider for tests
type scriptedInput struct {
	dirX, dirY float64
	hop        bool
	restart    bool
}

func (s *scriptedInput) HopRequest() (float64, float64, bool) {
	return s.dirX, s.dirY, s.hop
}

func (s *scriptedInput) RestartRequest() bool { return s.restart }

func (s *scriptedInput) Update(deltaTime float64) {}

// recordingSound counts played effects
type recordingSound struct {
	counts map[Sound]int
}

func (r *recordingSound) Play(s Sound) {
	if r.counts == nil {
		r.counts = map[Sound]int{}
	}
	r.counts[s]++
}

func newTestGame() *Game {
	return NewGame(DefaultConfig(), &scriptedInput{}, 42)
}

// TestCrashClampOneLifePerTick verifies the game-layer policy: however many
// hazards connect in one tick, exactly one life is lost.
func TestCrashClampOneLifePerTick(t *testing.T) {
	g := newTestGame()
	lives := g.lives

	g.applyEvents(Events{Crashed: []*Hazard{
		{X: 0, Y: 0, Radius: 9},
		{X: 2, Y: 0, Radius: 9},
		{X: 4, Y: 0, Radius: 9},
	}})

	if g.lives != lives-1 {
		t.Fatalf("lives %d, want %d: multiple crashes clamp to one loss", g.lives, lives-1)
	}
}

// TestFallCostsLifeAndRespawns verifies water entry costs a life, respawns
// the actor on the nearest pad, and grants a grace window.
func TestFallCostsLifeAndRespawns(t *testing.T) {
	g := newTestGame()
	lives := g.lives

	g.applyEvents(Events{FellIntoWater: true})

	if g.lives != lives-1 {
		t.Fatalf("lives %d, want %d", g.lives, lives-1)
	}
	if g.state != StatePlaying {
		t.Fatal("with lives left the run continues")
	}
	if g.world.Arena.Get(g.actor.RestingOn) == nil {
		t.Fatal("respawn must put the actor on a live platform")
	}
	if !g.actor.Invulnerable {
		t.Fatal("respawn must grant a grace window")
	}
}

// TestFallOnLastLifeEndsTheRun verifies the terminal case flips to game
// over.
func TestFallOnLastLifeEndsTheRun(t *testing.T) {
	g := newTestGame()
	g.lives = 1

	g.applyEvents(Events{FellIntoWater: true})

	if g.state != StateGameOver {
		t.Fatal("falling on the last life ends the run")
	}
	if g.lives != 0 {
		t.Fatalf("lives %d, want 0", g.lives)
	}
}

// TestLandingAddsRippleAndSound verifies landing feedback: one impulse in
// the ripple field and a landing sound.
func TestLandingAddsRippleAndSound(t *testing.T) {
	g := newTestGame()
	sound := &recordingSound{}
	g.SetSound(sound)

	h := g.world.AddPlatform(NewPadPlatform(g.actor.X, g.actor.Y, 40, PlatformNormal))
	g.applyEvents(Events{DidLand: true, Landed: h})

	snapshot := g.ripples.Snapshot()
	found := false
	for _, imp := range snapshot {
		if imp.Amplitude == DefaultRippleAmplitude && imp.X == g.actor.X {
			found = true
		}
	}
	if !found {
		t.Fatal("landing must add a ripple impulse at the impact point")
	}
	if sound.counts[SoundLand] != 1 {
		t.Fatal("landing must play the landing sound")
	}
}

// TestLaunchPadGrantsRocketFlight verifies the launch power-up.
func TestLaunchPadGrantsRocketFlight(t *testing.T) {
	g := newTestGame()
	h := g.world.AddPlatform(NewPadPlatform(g.actor.X, g.actor.Y, 40, PlatformLaunch))

	g.applyEvents(Events{DidLand: true, Landed: h})

	if !g.actor.RocketActive {
		t.Fatal("landing on a launch pad must start rocket flight")
	}
}

// TestWarpPadTeleportsForward verifies the warp power-up moves the actor
// ahead and drops it back into the air.
func TestWarpPadTeleportsForward(t *testing.T) {
	g := newTestGame()
	h := g.world.AddPlatform(NewPadPlatform(g.actor.X, g.actor.Y, 40, PlatformWarp))
	startY := g.actor.Y

	g.applyEvents(Events{DidLand: true, Landed: h})

	if g.actor.Y >= startY {
		t.Fatal("warp pad must move the actor forward")
	}
	if g.actor.RestingOn != NoPlatform {
		t.Fatal("warped actor is airborne until the next landing resolves")
	}
}

// TestGravePadGrantsInvulnerability verifies the grave power-up.
func TestGravePadGrantsInvulnerability(t *testing.T) {
	g := newTestGame()
	h := g.world.AddPlatform(NewPadPlatform(g.actor.X, g.actor.Y, 40, PlatformGrave))

	g.applyEvents(Events{DidLand: true, Landed: h})

	if !g.actor.Invulnerable {
		t.Fatal("landing on a grave pad must grant invulnerability")
	}
}

// TestCoinsRaiseScore verifies collection feeds the score.
func TestCoinsRaiseScore(t *testing.T) {
	g := newTestGame()

	g.applyEvents(Events{Collected: []*Pickup{{Collected: true}, {Collected: true}}})

	if g.coins != 2 {
		t.Fatalf("coins %d, want 2", g.coins)
	}
	if g.score < 2 {
		t.Fatalf("score %d should include collected coins", g.score)
	}
}

// TestUpdateSmoke runs several seconds of simulated play with a forward
// hopper and checks the run stays consistent.
func TestUpdateSmoke(t *testing.T) {
	input := &scriptedInput{dirY: -1, hop: true}
	g := NewGame(DefaultConfig(), input, 42)

	for i := 0; i < 600; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if g.lives < 0 {
			t.Fatalf("tick %d: lives went negative", i)
		}
	}

	if g.world.Arena.Len() == 0 {
		t.Fatal("the platform field must stay populated")
	}
	for _, h := range g.world.Order {
		if g.world.Arena.Get(h) == nil {
			t.Fatal("order list must never hold dangling handles after cull")
		}
	}
}

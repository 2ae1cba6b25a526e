package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sound identifies a gameplay sound effect
type Sound int

const (
	SoundHop Sound = iota
	SoundLand
	SoundSplash
	SoundCoin
	SoundHit
)

// SoundPlayer plays gameplay sound effects. Implementations must not block.
type SoundPlayer interface {
	Play(s Sound)
}

// Publisher receives periodic tick snapshots for debugging
type Publisher interface {
	Publish(s Snapshot)
}

// GameState tracks the top-level game flow
type GameState int

const (
	StatePlaying GameState = iota
	StateGameOver
)

// Rocket flight parameters: cruise height keeps the actor out of the hazard
// height window and above the landing precondition
const (
	rocketHeight = 30.0
	rocketSpeed  = 260.0
)

// Game wires the world, the per-tick interaction core, and the presentation
// layer into an ebiten game. Tick order is fixed: platform motion and the
// coupler settle first, then the resolver runs the actor-vs-world pass, then
// ripples age and the actor integrates its modified velocity.
type Game struct {
	world    *World
	resolver *Resolver
	coupler  *MotionCoupler
	ripples  *RippleField
	surface  *SurfaceController
	spawner  *Spawner
	schedule *WeatherSchedule

	actor    *Actor
	input    InputProvider
	renderer *Renderer
	camera   *Camera
	config   Config

	sound    SoundPlayer
	stream   Publisher
	profiler *Profiler

	state   GameState
	score   int
	coins   int
	lives   int
	bestRow int
	weather Weather
	tick    uint64
	seed    int64
}

// NewGame creates a game instance with the given input provider. Sound and
// stream collaborators are optional.
func NewGame(cfg Config, input InputProvider, seed int64) *Game {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	camera := NewCamera(float64(cfg.ScreenWidth), float64(cfg.ScreenHeight))
	g := &Game{
		input:    input,
		renderer: NewRenderer(camera),
		camera:   camera,
		config:   cfg,
		schedule: DefaultWeatherSchedule(),
		profiler: NewProfiler(),
		seed:     seed,
	}
	g.reset()
	return g
}

// SetSound attaches a sound player
func (g *Game) SetSound(s SoundPlayer) {
	g.sound = s
}

// SetStream attaches a debug snapshot publisher
func (g *Game) SetStream(p Publisher) {
	g.stream = p
}

// reset rebuilds the run from scratch: fresh world, spawner, and actor.
// Discarding the old world drops all platforms, hazards, and pickups.
func (g *Game) reset() {
	g.world = NewWorld(g.config)
	g.resolver = NewResolver(g.world.Arena, g.config)
	g.coupler = NewMotionCoupler(g.world.Arena)
	g.ripples = NewRippleField()
	g.surface = NewSurfaceController(g.config)
	g.spawner = NewSpawner(g.config, g.seed)

	// A guaranteed starting pad under the actor
	start := g.world.AddPlatform(NewPadPlatform(0, 0, 40.0, PlatformNormal))

	g.actor = NewActor(0, 0, g.config)
	g.actor.RestingOn = start

	g.spawner.FillAhead(g.world, -g.config.SpawnAhead)

	g.state = StatePlaying
	g.score = 0
	g.coins = 0
	g.lives = g.config.Lives
	g.bestRow = 0
	g.weather = WeatherClear
	g.tick = 0
}

// Update runs one simulation tick at ebiten's fixed 60 TPS
func (g *Game) Update() error {
	const dt = 1.0 / 60.0
	tickStart := time.Now()
	defer func() {
		g.profiler.RecordTick(time.Since(tickStart))
	}()

	g.tick++
	g.input.Update(dt)

	if g.state == StateGameOver {
		if g.input.RestartRequest() {
			g.seed++
			g.reset()
		}
		return nil
	}

	// Platforms settle their own motion before the actor pass
	g.world.Update(dt)
	g.coupler.ResolveOverlaps(g.world.Order)
	g.ridePlatform(dt)

	g.weather = g.schedule.ForScore(g.score)
	in := TickInput{
		RocketActive: g.actor.RocketActive,
		LogTraversal: g.actor.LogTraversal,
		Invulnerable: g.actor.Invulnerable,
		Weather:      g.weather,
	}

	ev := g.resolver.Resolve(g.actor, g.world.Order, g.world.Hazards, g.world.Pickups, in)
	g.applyEvents(ev)

	g.ripples.Advance(dt)
	g.surface.Integrate(g.actor, dt)
	g.actor.Update(dt)

	if g.actor.RocketActive {
		// Rocket flight cruises forward above the pond
		g.actor.Height = rocketHeight
		g.actor.VertVel = 0
		g.actor.VelX = 0
		g.actor.VelY = -rocketSpeed
	} else if g.state == StatePlaying && g.actor.CanHop() && g.world.Arena.Get(g.actor.RestingOn) != nil {
		if dx, dy, ok := g.input.HopRequest(); ok {
			g.actor.Jump(dx, dy, g.config.HopSpeed, g.config.JumpVelocity)
			g.play(SoundHop)
		}
	}

	g.spawner.Update(g.world, g.actor, dt)
	g.world.Cull(g.actor.Y + g.config.CullBehind)

	g.camera.Follow(g.actor.X, g.actor.Y)

	if g.stream != nil && g.tick%streamInterval == 0 {
		g.stream.Publish(g.snapshot(ev))
	}

	return nil
}

// streamInterval is how many ticks pass between debug snapshots
const streamInterval = 15

// applyEvents turns the resolver's event set into gameplay consequences
func (g *Game) applyEvents(ev Events) {
	if ev.DidLand {
		g.onLanded(ev.Landed)
	}
	if ev.FellIntoWater {
		g.onFellIntoWater()
	}
	if ev.HitObstacle {
		g.onHitObstacle(ev.Obstacle)
	}

	for range ev.Collected {
		g.coins++
		g.play(SoundCoin)
	}

	// Policy choice: however many hazards connect in one tick, the actor
	// loses a single life and gets a grace window
	if len(ev.Crashed) > 0 {
		g.loseLife()
		g.play(SoundHit)
	}

	g.score = g.bestRow + g.coins
}

// onLanded applies landing feedback: a ripple at the impact point, the
// surface slide transition, and any pad power-up
func (g *Game) onLanded(h PlatformHandle) {
	p := g.world.Arena.Get(h)
	if p == nil {
		return
	}

	g.ripples.AddImpulse(g.actor.X, g.actor.Y, DefaultRippleAmplitude, DefaultRippleFrequency)
	g.surface.OnLanded(g.actor, p.Type, g.weather)
	g.play(SoundLand)

	// The surface controller consumed the approach vector; the landing
	// itself absorbs the planar motion
	g.actor.VelX = 0
	g.actor.VelY = 0
	g.actor.Height = 0
	g.actor.VertVel = 0

	if row := int(-g.actor.Y / g.config.RowSpacing); row > g.bestRow {
		g.bestRow = row
	}

	switch p.Type {
	case PlatformLaunch:
		g.actor.GrantRocket(g.config.RocketDuration)
	case PlatformWarp:
		g.actor.Y -= g.config.WarpDistance
		g.actor.RestingOn = NoPlatform
		g.actor.VertVel = 0
		g.actor.Height = 0.001
	case PlatformGrave:
		g.actor.GrantInvulnerability(g.config.InvulnDuration)
	}
}

// onFellIntoWater handles the miss case: splash feedback, then either a
// respawn on the nearest surviving platform or game over
func (g *Game) onFellIntoWater() {
	g.ripples.AddImpulse(g.actor.X, g.actor.Y, DefaultRippleAmplitude*2, DefaultRippleFrequency*0.6)
	g.play(SoundSplash)
	g.actor.VelX = 0
	g.actor.VelY = 0
	g.actor.Slide.Stop()

	g.loseLife()
	if g.state == StateGameOver {
		return
	}

	// Put the actor back on the nearest platform and give it a moment
	if h, p := g.nearestPlatform(); p != nil {
		g.actor.X = p.X
		g.actor.Y = p.Y
		g.actor.RestingOn = h
		g.actor.GrantInvulnerability(g.config.InvulnDuration)
	}
}

// onHitObstacle bounces the actor off a log bumper-style
func (g *Game) onHitObstacle(h PlatformHandle) {
	p := g.world.Arena.Get(h)
	if p == nil {
		return
	}

	g.ripples.AddImpulse(g.actor.X, g.actor.Y, DefaultRippleAmplitude*0.5, DefaultRippleFrequency*1.4)
	g.play(SoundHit)

	// Push out along the axis of least penetration, then reflect
	dx := g.actor.X - p.X
	dy := g.actor.Y - p.Y
	penX := p.HalfW + g.actor.Radius
	if dx < 0 {
		penX += dx
	} else {
		penX -= dx
	}
	penY := p.HalfH + g.actor.Radius
	if dy < 0 {
		penY += dy
	} else {
		penY -= dy
	}

	if penX < penY {
		if dx < 0 {
			g.actor.X -= penX
		} else {
			g.actor.X += penX
		}
		g.actor.VelX = -g.actor.VelX * 0.5
	} else {
		if dy < 0 {
			g.actor.Y -= penY
		} else {
			g.actor.Y += penY
		}
		g.actor.VelY = -g.actor.VelY * 0.5
	}
}

// loseLife takes one life and flips to game over at zero
func (g *Game) loseLife() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.state = StateGameOver
	}
}

// ridePlatform carries the actor along with a drifting platform it rests on
func (g *Game) ridePlatform(dt float64) {
	p := g.world.Arena.Get(g.actor.RestingOn)
	if p == nil || !p.Moves() {
		return
	}
	g.actor.X += p.Direction * p.Speed * dt
}

// nearestPlatform finds the live platform closest to the actor
func (g *Game) nearestPlatform() (PlatformHandle, *Platform) {
	best := NoPlatform
	var bestPlatform *Platform
	bestDist := 0.0

	for _, h := range g.world.Order {
		p := g.world.Arena.Get(h)
		if p == nil || p.Type == PlatformLog {
			continue
		}
		dx := p.X - g.actor.X
		dy := p.Y - g.actor.Y
		d := dx*dx + dy*dy
		if bestPlatform == nil || d < bestDist {
			best = h
			bestPlatform = p
			bestDist = d
		}
	}
	return best, bestPlatform
}

// play forwards to the sound player when one is attached
func (g *Game) play(s Sound) {
	if g.sound != nil {
		g.sound.Play(s)
	}
}

// Draw renders the current frame
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g)
}

// Layout returns the fixed logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}

package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Camera represents the viewport into the world
type Camera struct {
	X, Y   float64 // Camera position in world coordinates
	Width  float64 // Viewport width
	Height float64 // Viewport height
}

// NewCamera creates a new camera
func NewCamera(width, height float64) *Camera {
	return &Camera{Width: width, Height: height}
}

// Follow eases the camera toward the actor, keeping it in the lower third
// of the screen so the player sees the field ahead
func (c *Camera) Follow(x, y float64) {
	targetX := x * 0.3 // The lane is narrow; only drift gently sideways
	targetY := y - c.Height*0.2

	c.X += (targetX - c.X) * 0.1
	c.Y += (targetY - c.Y) * 0.1
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	sx := wx - c.X + c.Width/2
	sy := wy - c.Y + c.Height/2
	return sx, sy
}

// Renderer draws the pond, platforms, ripples, actor, and HUD
type Renderer struct {
	camera *Camera
	face   *basicfont.Face
}

// NewRenderer creates a new renderer
func NewRenderer(camera *Camera) *Renderer {
	return &Renderer{
		camera: camera,
		face:   basicfont.Face7x13,
	}
}

// Platform colors by type
var platformColors = map[PlatformType]color.RGBA{
	PlatformNormal:    {60, 160, 70, 255},
	PlatformMoving:    {70, 150, 120, 255},
	PlatformLily:      {100, 190, 90, 255},
	PlatformIce:       {180, 220, 240, 255},
	PlatformGrave:     {120, 120, 130, 255},
	PlatformShrinking: {170, 170, 80, 255},
	PlatformLaunch:    {220, 120, 50, 255},
	PlatformWarp:      {150, 90, 200, 255},
}

// Water tint per weather category
var waterColors = map[Weather]color.RGBA{
	WeatherClear: {30, 70, 110, 255},
	WeatherRain:  {25, 60, 95, 255},
	WeatherSnow:  {45, 80, 115, 255},
	WeatherWind:  {30, 75, 105, 255},
	WeatherFog:   {55, 85, 110, 255},
}

// Draw renders one frame
func (r *Renderer) Draw(screen *ebiten.Image, g *Game) {
	screen.Fill(waterColors[g.weather])

	r.drawRipples(screen, g)
	r.drawPlatforms(screen, g)
	r.drawPickups(screen, g)
	r.drawHazards(screen, g)
	r.drawActor(screen, g.actor)
	r.drawHUD(screen, g)
}

// drawRipples samples the ripple field snapshot and draws each live impulse
// as an expanding, fading ring
func (r *Renderer) drawRipples(screen *ebiten.Image, g *Game) {
	clock := g.ripples.Clock()
	snapshot := g.ripples.Snapshot()

	for _, imp := range snapshot {
		if imp.Amplitude <= 0 {
			continue
		}
		age := clock - imp.Start
		if age < 0 {
			continue
		}

		sx, sy := r.camera.WorldToScreen(imp.X, imp.Y)
		fade := 1.0 - age/rippleLifetime
		if fade <= 0 {
			continue
		}

		radius := 6.0 + age*imp.Frequency*6.0
		alpha := uint8(fade * 110 * imp.Amplitude / DefaultRippleAmplitude)
		clr := color.RGBA{200, 230, 255, alpha}
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(radius), 2, clr, true)
	}
}

func (r *Renderer) drawPlatforms(screen *ebiten.Image, g *Game) {
	for _, h := range g.world.Order {
		p := g.world.Arena.Get(h)
		if p == nil {
			continue
		}
		sx, sy := r.camera.WorldToScreen(p.X, p.Y)

		if p.Kind == ShapeRect {
			w := float32(p.HalfW * 2)
			ht := float32(p.HalfH * 2)
			vector.DrawFilledRect(screen, float32(sx)-w/2, float32(sy)-ht/2, w, ht, color.RGBA{130, 90, 50, 255}, true)
			continue
		}

		clr, ok := platformColors[p.Type]
		if !ok {
			clr = platformColors[PlatformNormal]
		}
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(p.ScaledRadius), clr, true)
	}
}

func (r *Renderer) drawPickups(screen *ebiten.Image, g *Game) {
	for _, pk := range g.world.Pickups {
		if pk.Collected {
			continue
		}
		sx, sy := r.camera.WorldToScreen(pk.X, pk.Y)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(pk.Radius), color.RGBA{240, 210, 60, 255}, true)
	}
}

func (r *Renderer) drawHazards(screen *ebiten.Image, g *Game) {
	for _, hz := range g.world.Hazards {
		sx, sy := r.camera.WorldToScreen(hz.X, hz.Y)
		// Raise the sprite by its flight height
		sy -= hz.Height * 0.8
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(hz.Radius), color.RGBA{200, 60, 60, 255}, true)
	}
}

// drawActor draws the frog with a ground shadow; the body lifts and grows
// with jump height to fake the arc
func (r *Renderer) drawActor(screen *ebiten.Image, a *Actor) {
	sx, sy := r.camera.WorldToScreen(a.X, a.Y)

	shadowScale := 1.0 - math.Min(a.Height/120.0, 0.6)
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(a.Radius*shadowScale), color.RGBA{0, 0, 0, 70}, true)

	bodyScale := 1.0 + a.Height/120.0
	bodyY := sy - a.Height*0.8
	bodyColor := color.RGBA{90, 200, 60, 255}
	if a.Invulnerable {
		bodyColor = color.RGBA{160, 230, 150, 255}
	}
	vector.DrawFilledCircle(screen, float32(sx), float32(bodyY), float32(a.Radius*bodyScale), bodyColor, true)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, g *Game) {
	hud := fmt.Sprintf("score %d   coins %d   lives %d   %s", g.score, g.coins, g.lives, g.weather)
	text.Draw(screen, hud, r.face, 12, 20, color.White)

	if g.actor.RocketActive {
		text.Draw(screen, "ROCKET", r.face, 12, 38, color.RGBA{250, 170, 60, 255})
	} else if g.actor.LogTraversal {
		text.Draw(screen, "LOG RIDER", r.face, 12, 38, color.RGBA{210, 180, 130, 255})
	}

	if g.state == StateGameOver {
		msg := fmt.Sprintf("game over - score %d\npress R to restart", g.score)
		text.Draw(screen, msg, r.face, g.config.ScreenWidth/2-80, g.config.ScreenHeight/2, color.White)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("plat %d", g.world.Arena.Len()), g.config.ScreenWidth-70, 4)
}

package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputProvider defines the interface for actor control. The game layer
// reads it once per tick; tests substitute a scripted provider.
type InputProvider interface {
	// HopRequest returns the desired hop direction as a unit vector and
	// whether a hop was requested this tick
	HopRequest() (dirX, dirY float64, ok bool)

	// RestartRequest returns true if the player asked to restart after
	// game over
	RestartRequest() bool

	// Update updates the input provider state
	Update(deltaTime float64)
}

// PlayerInput provides input from the keyboard
type PlayerInput struct {
	keys []ebiten.Key
}

// NewPlayerInput creates a new keyboard input provider
func NewPlayerInput() *PlayerInput {
	return &PlayerInput{
		keys: make([]ebiten.Key, 0, 10),
	}
}

// HopRequest maps arrow keys / WASD to a hop direction. Forward is up the
// screen (negative Y). Diagonals are normalized so diagonal hops cover the
// same distance.
func (p *PlayerInput) HopRequest() (float64, float64, bool) {
	var dx, dy float64

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		dy -= 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		dy += 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		dx -= 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		dx += 1
	}

	// Holding a direction keeps hopping once the landing pause allows it
	if dx == 0 && dy == 0 {
		if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
			dy -= 1
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
			dy += 1
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
			dx -= 1
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
			dx += 1
		}
	}

	if dx == 0 && dy == 0 {
		return 0, 0, false
	}

	length := math.Hypot(dx, dy)
	return dx / length, dy / length, true
}

// RestartRequest returns true if R or Space is pressed
func (p *PlayerInput) RestartRequest() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// Update updates the pressed key list
func (p *PlayerInput) Update(deltaTime float64) {
	p.keys = inpututil.AppendPressedKeys(p.keys[:0])
}

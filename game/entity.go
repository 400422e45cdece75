package game

import (
	"math/rand/v2"
)

// Entity dimensions in logical pixels
const (
	playerWidth  = 240.0
	playerHeight = 300.0

	// Gap between the bottom of the screen and the player ship
	playerBottomMargin = 40.0

	bulletWidth  = 10.0
	bulletHeight = 30.0

	enemyWidth  = 210.0
	enemyHeight = 210.0

	// Enemies spawn with their top edge here, above the screen
	enemySpawnY = -100.0

	// Horizontal spawn margin on each side
	enemySpawnMargin = 50.0
)

// Rect is an axis-aligned rectangle with its origin at the top-left corner
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rectangle. The right and
// bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Player is the ship controlled by touch
type Player struct {
	// Position in screen coordinates (top-left)
	X, Y float64

	Width, Height float64

	// TargetX is where the left edge is heading
	TargetX float64

	// Speed in pixels per second
	Speed float64

	screenWidth float64
}

// NewPlayer creates a player clamped inside a screen of the given width
func NewPlayer(x, y, speed, screenWidth float64) *Player {
	p := &Player{
		X:           x,
		Y:           y,
		Width:       playerWidth,
		Height:      playerHeight,
		Speed:       speed,
		screenWidth: screenWidth,
	}
	p.clamp()
	p.TargetX = p.X
	return p
}

// Update moves the player toward its target without overshooting
func (p *Player) Update(deltaTime float64) {
	if p.X != p.TargetX && deltaTime > 0 {
		distance := p.TargetX - p.X
		movement := p.Speed * deltaTime
		if movement >= abs(distance) {
			p.X = p.TargetX
		} else if distance > 0 {
			p.X += movement
		} else {
			p.X -= movement
		}
	}
	p.clamp()
}

// MoveTo centers the movement target on a touch x coordinate
func (p *Player) MoveTo(x float64) {
	p.TargetX = clamp(x-p.Width/2, 0, p.maxX())
}

// Reset places the player and cancels any pending movement
func (p *Player) Reset(x, y float64) {
	p.X = x
	p.Y = y
	p.clamp()
	p.TargetX = p.X
}

// SetScreenWidth changes the bounds the player is clamped to
func (p *Player) SetScreenWidth(w float64) {
	p.screenWidth = w
	p.clamp()
	p.TargetX = clamp(p.TargetX, 0, p.maxX())
}

// Bounds returns the collision rectangle
func (p *Player) Bounds() Rect {
	return Rect{p.X, p.Y, p.Width, p.Height}
}

func (p *Player) maxX() float64 {
	return max(0, p.screenWidth-p.Width)
}

func (p *Player) clamp() {
	p.X = clamp(p.X, 0, p.maxX())
}

// Bullet travels straight up from the player
type Bullet struct {
	X, Y          float64
	Width, Height float64

	// Speed in pixels per second, upward
	Speed float64

	Destroyed bool
}

// NewBullet creates a bullet with its top-left corner at x, y
func NewBullet(x, y, speed float64) *Bullet {
	return &Bullet{
		X:      x,
		Y:      y,
		Width:  bulletWidth,
		Height: bulletHeight,
		Speed:  speed,
	}
}

// Update moves the bullet upward
func (b *Bullet) Update(deltaTime float64) {
	b.Y -= b.Speed * deltaTime
}

// OffScreen reports whether the bullet has left through the top edge
func (b *Bullet) OffScreen() bool {
	return b.Y < -b.Height
}

// Destroy marks the bullet for removal
func (b *Bullet) Destroy() {
	b.Destroyed = true
}

// Bounds returns the collision rectangle
func (b *Bullet) Bounds() Rect {
	return Rect{b.X, b.Y, b.Width, b.Height}
}

// Enemy descends while drifting sideways between the screen edges
type Enemy struct {
	X, Y          float64
	Width, Height float64

	// Speed is the downward velocity in pixels per second
	Speed float64

	// LateralSpeed is the sideways speed, multiplied by Direction
	LateralSpeed float64

	// Direction is +1 or -1
	Direction float64

	HP        int
	Destroyed bool

	screenWidth float64
}

// NewEnemy creates an enemy with randomized speeds drawn from rng
func NewEnemy(x, y float64, t Tuning, screenWidth float64, rng *rand.Rand) *Enemy {
	direction := 1.0
	if rng.Float64() <= 0.5 {
		direction = -1.0
	}
	return &Enemy{
		X:            x,
		Y:            y,
		Width:        enemyWidth,
		Height:       enemyHeight,
		Speed:        t.EnemyBaseSpeed + rng.Float64()*t.EnemySpeedJitter,
		LateralSpeed: rng.Float64()*t.EnemyLateralSpeed - t.EnemyLateralSpeed/2,
		Direction:    direction,
		HP:           t.EnemyHP,
		screenWidth:  screenWidth,
	}
}

// Update moves the enemy and reflects it off the side walls
func (e *Enemy) Update(deltaTime float64) {
	e.Y += e.Speed * deltaTime
	e.X += e.LateralSpeed * e.Direction * deltaTime

	maxX := max(0, e.screenWidth-e.Width)
	if e.X < 0 {
		e.X = 0
		e.Direction = -e.Direction
	} else if e.X > maxX {
		e.X = maxX
		e.Direction = -e.Direction
	}
}

// TakeDamage removes hit points and destroys the enemy when they run out
func (e *Enemy) TakeDamage(damage int) {
	e.HP -= damage
	if e.HP <= 0 {
		e.Destroy()
	}
}

// Destroy marks the enemy for removal
func (e *Enemy) Destroy() {
	e.Destroyed = true
}

// Bounds returns the collision rectangle
func (e *Enemy) Bounds() Rect {
	return Rect{e.X, e.Y, e.Width, e.Height}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

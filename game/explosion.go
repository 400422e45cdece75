package game

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// Explosion tuning
const (
	explosionParticles = 20
	explosionDuration  = 0.6 // seconds

	particleSpeedMin    = 100.0
	particleSpeedJitter = 200.0
	particleSizeMin     = 5.0
	particleSizeJitter  = 10.0
)

// particleColors are the fire tones a particle picks from
var particleColors = []color.NRGBA{
	{R: 255, G: 0, B: 0, A: 255},
	{R: 255, G: 255, B: 0, A: 255},
	{R: 255, G: 165, B: 0, A: 255},
}

// Particle is a single spark of an explosion
type Particle struct {
	X, Y   float64
	VX, VY float64 // velocity in pixels per second
	Size   float64
	Color  color.NRGBA
}

// Explosion is a burst of particles sharing one timer
type Explosion struct {
	X, Y      float64
	Particles []Particle

	elapsed  float64
	duration float64
	finished bool
}

// NewExplosion emits a fixed burst of particles from x, y
func NewExplosion(x, y float64, rng *rand.Rand) *Explosion {
	e := &Explosion{
		X:         x,
		Y:         y,
		Particles: make([]Particle, 0, explosionParticles),
		duration:  explosionDuration,
	}
	for i := 0; i < explosionParticles; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := particleSpeedMin + rng.Float64()*particleSpeedJitter
		e.Particles = append(e.Particles, Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Size:  particleSizeMin + rng.Float64()*particleSizeJitter,
			Color: particleColors[rng.IntN(len(particleColors))],
		})
	}
	return e
}

// Update advances the shared timer and moves the particles until the
// explosion has run its course
func (e *Explosion) Update(deltaTime float64) {
	if e.finished {
		return
	}

	e.elapsed += deltaTime
	if e.elapsed >= e.duration {
		e.finished = true
		return
	}

	for i := range e.Particles {
		p := &e.Particles[i]
		p.X += p.VX * deltaTime
		p.Y += p.VY * deltaTime
	}
}

// Finished reports whether the explosion can be dropped
func (e *Explosion) Finished() bool {
	return e.finished
}

// Alpha is the fade factor in [0, 1], falling linearly over the duration
func (e *Explosion) Alpha() float64 {
	return clamp(1-e.elapsed/e.duration, 0, 1)
}

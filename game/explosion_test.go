package game

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestExplosionParticles(t *testing.T) {
	ex := NewExplosion(300, 400, rand.New(rand.NewPCG(3, 4)))

	if len(ex.Particles) != explosionParticles {
		t.Fatalf("Expected %d particles, got %d", explosionParticles, len(ex.Particles))
	}

	for i, p := range ex.Particles {
		if p.X != 300 || p.Y != 400 {
			t.Errorf("Particle %d: expected to start at the origin, got (%v, %v)", i, p.X, p.Y)
		}
		speed := math.Hypot(p.VX, p.VY)
		if speed < 100-1e-9 || speed >= 300 {
			t.Errorf("Particle %d: speed %v out of [100, 300)", i, speed)
		}
		if p.Size < 5 || p.Size >= 15 {
			t.Errorf("Particle %d: size %v out of [5, 15)", i, p.Size)
		}
		known := false
		for _, c := range particleColors {
			if p.Color == c {
				known = true
			}
		}
		if !known {
			t.Errorf("Particle %d: unexpected color %v", i, p.Color)
		}
	}
}

func TestExplosionFinishes(t *testing.T) {
	ex := NewExplosion(0, 0, rand.New(rand.NewPCG(3, 4)))
	start := ex.Particles[0]

	ex.Update(0.4)
	if ex.Finished() {
		t.Fatalf("Expected explosion running at 0.4s")
	}
	moved := ex.Particles[0]
	if moved.X != start.VX*0.4 || moved.Y != start.VY*0.4 {
		t.Errorf("Expected particle at velocity*dt, got (%v, %v)", moved.X, moved.Y)
	}
	if a := ex.Alpha(); math.Abs(a-(1-0.4/0.6)) > 1e-9 {
		t.Errorf("Expected alpha %v, got %v", 1-0.4/0.6, a)
	}

	ex.Update(0.19)
	if ex.Finished() {
		t.Fatalf("Expected explosion running at 0.59s")
	}

	ex.Update(0.02)
	if !ex.Finished() {
		t.Fatalf("Expected explosion finished at 0.61s")
	}

	frozen := ex.Particles[0]
	for i := 0; i < 5; i++ {
		ex.Update(1)
		if !ex.Finished() {
			t.Fatalf("Expected explosion to stay finished")
		}
	}
	if ex.Particles[0] != frozen {
		t.Errorf("Expected particles frozen once finished")
	}
	if ex.Alpha() != 0 {
		t.Errorf("Expected alpha 0 once finished, got %v", ex.Alpha())
	}
}

func TestFinishedExplosionsAreDropped(t *testing.T) {
	g, _ := newTestGame(t)
	g.StartGame()
	g.explosions = append(g.explosions, NewExplosion(100, 100, g.rng))

	g.Update(0.3)
	if len(g.explosions) != 1 {
		t.Fatalf("Expected explosion kept at 0.3s, got %d", len(g.explosions))
	}

	g.Update(0.3)
	g.Update(0.05)
	if len(g.explosions) != 0 {
		t.Errorf("Expected explosion dropped after 0.65s, got %d", len(g.explosions))
	}
}

package game

import (
	"testing"
)

func TestOverlapIsSymmetric(t *testing.T) {
	rects := []Rect{
		{0, 0, 10, 10},
		{5, 5, 10, 10},
		{10, 0, 10, 10}, // touches the first on its right edge
		{0, 10, 10, 10}, // touches the first on its bottom edge
		{-5, -5, 30, 30},
		{100, 100, 1, 1},
		{2, 2, 2, 2},
	}

	for i, a := range rects {
		for j, b := range rects {
			if Overlap(a, b) != Overlap(b, a) {
				t.Errorf("Overlap(%d, %d) = %v but Overlap(%d, %d) = %v", i, j, Overlap(a, b), j, i, Overlap(b, a))
			}
		}
	}
}

func TestOverlap(t *testing.T) {
	base := Rect{0, 0, 10, 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"partial", Rect{5, 5, 10, 10}, true},
		{"contained", Rect{2, 2, 2, 2}, true},
		{"containing", Rect{-5, -5, 30, 30}, true},
		{"touching right edge", Rect{10, 0, 10, 10}, false},
		{"touching bottom edge", Rect{0, 10, 10, 10}, false},
		{"apart", Rect{100, 100, 1, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlap(base, tt.other); got != tt.want {
				t.Errorf("Overlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBulletHitScoresOnce(t *testing.T) {
	g, sounds := newTestGame(t)
	g.StartGame()

	enemy := stillEnemy(g, 100, 500, 0)
	g.enemies = append(g.enemies, enemy)
	g.bullets = append(g.bullets,
		&Bullet{X: 100, Y: 500, Width: enemyWidth, Height: enemyHeight, Speed: 900},
		&Bullet{X: 150, Y: 600, Width: bulletWidth, Height: bulletHeight, Speed: 900},
	)

	g.checkCollisions()

	s := g.Session()
	if s.Score != 10 || s.Kills != 1 {
		t.Errorf("Expected score 10 and 1 kill, got score %d kills %d", s.Score, s.Kills)
	}
	if len(g.enemies) != 0 {
		t.Errorf("Expected enemy removed, got %d", len(g.enemies))
	}
	if len(g.bullets) != 1 {
		t.Errorf("Expected exactly one bullet spent, %d left", len(g.bullets))
	}
	if len(g.explosions) != 1 {
		t.Fatalf("Expected one explosion, got %d", len(g.explosions))
	}
	if ex := g.explosions[0]; ex.X != 205 || ex.Y != 605 {
		t.Errorf("Expected explosion at the enemy center (205, 605), got (%v, %v)", ex.X, ex.Y)
	}
	if sounds.count(SoundExplosion) != 1 {
		t.Errorf("Expected one explosion cue, got %d", sounds.count(SoundExplosion))
	}
}

func TestBulletHitsOnlyTheFirstEnemy(t *testing.T) {
	g, _ := newTestGame(t)
	g.StartGame()

	g.enemies = append(g.enemies, stillEnemy(g, 100, 500, 0), stillEnemy(g, 120, 520, 0))
	g.bullets = append(g.bullets, NewBullet(200, 600, 900))

	g.checkCollisions()

	if len(g.enemies) != 1 {
		t.Fatalf("Expected one enemy left, got %d", len(g.enemies))
	}
	if g.enemies[0].X != 120 {
		t.Errorf("Expected the second enemy to survive, got x=%v", g.enemies[0].X)
	}
	if g.Session().Score != 10 {
		t.Errorf("Expected score 10, got %d", g.Session().Score)
	}
}

func TestToughEnemyNeedsTwoHits(t *testing.T) {
	g, _ := newTestGame(t)
	g.StartGame()

	enemy := stillEnemy(g, 100, 500, 0)
	enemy.HP = 2
	g.enemies = append(g.enemies, enemy)
	g.bullets = append(g.bullets, NewBullet(200, 600, 900))

	g.checkCollisions()
	if len(g.enemies) != 1 || g.Session().Score != 0 || len(g.explosions) != 0 {
		t.Errorf("Expected a damaged enemy and no score, got %d enemies score %d", len(g.enemies), g.Session().Score)
	}
	if len(g.bullets) != 0 {
		t.Errorf("Expected the bullet spent, got %d", len(g.bullets))
	}

	g.bullets = append(g.bullets, NewBullet(200, 600, 900))
	g.checkCollisions()
	if len(g.enemies) != 0 || g.Session().Score != 10 {
		t.Errorf("Expected the enemy destroyed for 10 points, got %d enemies score %d", len(g.enemies), g.Session().Score)
	}
}

func TestPlayerRam(t *testing.T) {
	g, sounds := newTestGame(t)
	g.StartGame()

	p := g.player.Bounds()
	g.enemies = append(g.enemies, stillEnemy(g, p.X, p.Y, 0), stillEnemy(g, p.X+10, p.Y, 0))

	g.checkCollisions()

	if g.Session().Lives != 2 {
		t.Errorf("Expected one life lost per pass, got %d lives", g.Session().Lives)
	}
	if len(g.enemies) != 1 {
		t.Errorf("Expected only the ramming enemy removed, got %d enemies", len(g.enemies))
	}
	if len(g.explosions) != 1 {
		t.Errorf("Expected one explosion, got %d", len(g.explosions))
	}
	if g.Session().Score != 0 {
		t.Errorf("Expected no score for a ram, got %d", g.Session().Score)
	}
	if sounds.count(SoundLifeLost) != 1 {
		t.Errorf("Expected a life-lost cue, got %d", sounds.count(SoundLifeLost))
	}
}

func TestLastRamEndsTheGame(t *testing.T) {
	g, _ := newTestGame(t)
	g.StartGame()
	g.lives = 1

	p := g.player.Bounds()
	g.enemies = append(g.enemies, stillEnemy(g, p.X, p.Y, 0))
	g.Update(0.01)

	if g.State() != StateGameOver {
		t.Errorf("Expected game over, got %v", g.State())
	}
}

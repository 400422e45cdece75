package game

// Overlap reports whether two axis-aligned rectangles intersect. Touching
// edges do not count.
func Overlap(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// bulletDamage is the hit points one bullet removes
const bulletDamage = 1

// checkCollisions resolves bullet hits first, then at most one ship ram.
// Entity counts stay in the tens, so a brute-force pass is enough.
func (g *Game) checkCollisions() {
	for _, bullet := range g.bullets {
		if bullet.Destroyed {
			continue
		}
		for _, enemy := range g.enemies {
			if enemy.Destroyed {
				continue
			}
			if !Overlap(bullet.Bounds(), enemy.Bounds()) {
				continue
			}

			// One bullet hits at most one enemy per tick
			bullet.Destroy()
			enemy.TakeDamage(bulletDamage)
			if enemy.Destroyed {
				g.spawnExplosion(enemy)
				g.score += g.tuning.KillScore
				g.kills++
			}
			break
		}
	}

	g.bullets = removeDestroyedBullets(g.bullets)
	g.enemies = removeDestroyedEnemies(g.enemies)

	playerBounds := g.player.Bounds()
	for i, enemy := range g.enemies {
		if !Overlap(playerBounds, enemy.Bounds()) {
			continue
		}

		g.spawnExplosion(enemy)
		g.enemies = append(g.enemies[:i], g.enemies[i+1:]...)
		g.loseLife("rammed")
		break
	}
}

func (g *Game) spawnExplosion(enemy *Enemy) {
	cx, cy := enemy.Bounds().Center()
	g.explosions = append(g.explosions, NewExplosion(cx, cy, g.rng))
	g.sounds.Play(SoundExplosion)
}

func removeDestroyedBullets(bullets []*Bullet) []*Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		if !b.Destroyed {
			kept = append(kept, b)
		}
	}
	clear(bullets[len(kept):])
	return kept
}

func removeDestroyedEnemies(enemies []*Enemy) []*Enemy {
	kept := enemies[:0]
	for _, e := range enemies {
		if !e.Destroyed {
			kept = append(kept, e)
		}
	}
	clear(enemies[len(kept):])
	return kept
}

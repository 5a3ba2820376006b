package loop

import (
	"time"

	"github.com/tomz197/spaceshooter/internal/input"
	"github.com/tomz197/spaceshooter/internal/object"
)

// updateGame advances one simulation step while playing.
func (g *Game) updateGame(now time.Time, delta time.Duration, in input.Input) {
	// Timer
	g.Timer -= delta.Seconds()
	if g.Timer <= 0 {
		g.Timer = 0
		g.endGame("timer")
		return
	}

	g.Player.ExpireEffects(now)

	ctx := g.updateContext(now, delta, in)
	g.Player.Update(ctx)
	g.tryShoot(now, in)

	updateObjects(g, ctx)
	g.checkCollisions(now)

	g.spawnPowerup()
	g.topUpCollectibles()
	g.advanceLevel()
}

// tryShoot fires a player bullet when shoot is held or pressed and the
// cooldown has elapsed.
func (g *Game) tryShoot(now time.Time, in input.Input) {
	if !in.Shoot && !in.ShootPressed {
		return
	}
	if now.Sub(g.LastShotTime) <= g.cfg.ShootingInterval {
		return
	}
	x, y := g.Player.Nose()
	g.Bullets = append(g.Bullets, object.NewBullet(x, y, object.PlayerBulletSpeed, object.OwnerPlayer))
	g.LastShotTime = now
}

// updateObjects moves every pool, culls bullets that left the field and
// adds bullets the bosses fired.
func updateObjects(g *Game, ctx object.UpdateContext) {
	object.UpdateAll(g.Asteroids, ctx)
	object.UpdateAll(g.Collectibles, ctx)
	object.UpdateAll(g.Powerups, ctx)

	kept := g.Bullets[:0] // reuse backing array
	for _, b := range g.Bullets {
		b.Update(ctx)
		if !b.OutOfBounds(g.screen) {
			kept = append(kept, b)
		}
	}
	clear(g.Bullets[len(kept):])
	g.Bullets = kept

	object.UpdateAll(g.Bosses, ctx)
	g.flushSpawned()
}

// spawnPowerup occasionally adds a powerup of random type while below the cap.
func (g *Game) spawnPowerup() {
	if len(g.Powerups) >= g.cfg.MaxPowerups {
		return
	}
	if g.rng.Float64() >= g.cfg.PowerupSpawnChance {
		return
	}
	g.Powerups = append(g.Powerups, object.NewPowerup(g.rng, g.screen, object.RandomPowerupType(g.rng)))
}

// topUpCollectibles refills the coin pool to its floor.
func (g *Game) topUpCollectibles() {
	for len(g.Collectibles) < g.cfg.MinCollectibles {
		g.Collectibles = append(g.Collectibles, object.NewCollectible(g.rng, g.screen))
	}
}

// advanceLevel moves up at most one level per step once the score reaches
// the threshold for the current level.
func (g *Game) advanceLevel() {
	if g.Score < g.cfg.CoinsToAdvance*g.Level {
		return
	}
	g.Level++
	g.Timer += g.cfg.LevelTimeBonus
	for i := 0; i < g.cfg.AsteroidsPerLevel; i++ {
		g.Asteroids = append(g.Asteroids, object.NewAsteroid(g.rng, g.screen))
	}
	if g.Level >= g.cfg.BossMinLevel && len(g.Bosses) == 0 {
		g.Bosses = append(g.Bosses, object.NewBoss(g.screen, g.cfg.BossHealth, g.cfg.ShootingInterval))
		g.logger.Info("Boss spawned", "level", g.Level)
	}
	g.logger.Info("Level up", "level", g.Level, "score", g.Score, "timer", g.Timer)
}

package loop

import (
	"time"

	"github.com/tomz197/spaceshooter/internal/object"
)

// checkCollisions resolves every collision category in a fixed order.
// Categories are independent; one entity may take part in several.
func (g *Game) checkCollisions(now time.Time) {
	g.checkPlayerAsteroidCollisions(now)
	g.checkPlayerCollectibleCollisions()
	g.checkPlayerPowerupCollisions(now)
	g.checkBossBulletCollisions()
}

// checkPlayerAsteroidCollisions starts the death explosion on the first
// unshielded hit. Further hits are ignored while an explosion is active.
func (g *Game) checkPlayerAsteroidCollisions(now time.Time) {
	for _, a := range g.Asteroids {
		if g.Player.IsShielded || g.Explosion != nil {
			return
		}
		if object.Collides(g.Player, a) {
			g.Explosion = object.NewExplosion(g.Player.X, g.Player.Y, now, g.cfg.ExplosionDuration)
			g.cues.PlayCrash()
			g.logger.Debug("Player hit", "x", g.Player.X, "y", g.Player.Y)
		}
	}
}

// checkPlayerCollectibleCollisions scores and removes touched coins.
func (g *Game) checkPlayerCollectibleCollisions() {
	kept := g.Collectibles[:0]
	for _, c := range g.Collectibles {
		if object.Collides(g.Player, c) {
			g.Score++
			g.cues.PlayCollect()
			continue
		}
		kept = append(kept, c)
	}
	clear(g.Collectibles[len(kept):])
	g.Collectibles = kept
}

// checkPlayerPowerupCollisions applies and removes touched powerups.
func (g *Game) checkPlayerPowerupCollisions(now time.Time) {
	kept := g.Powerups[:0]
	for _, p := range g.Powerups {
		if object.Collides(g.Player, p) {
			g.Player.ApplyPowerup(p.Type, now, g.cfg.PowerupDuration)
			g.logger.Debug("Powerup collected", "type", p.Type)
			continue
		}
		kept = append(kept, p)
	}
	clear(g.Powerups[len(kept):])
	g.Powerups = kept
}

// checkBossBulletCollisions damages bosses with player bullets. A bullet is
// consumed by its first hit and a destroyed boss takes no further hits.
func (g *Game) checkBossBulletCollisions() {
	keptBosses := g.Bosses[:0]
	for _, boss := range g.Bosses {
		destroyed := false
		keptBullets := g.Bullets[:0]
		for _, b := range g.Bullets {
			if !destroyed && b.Owner == object.OwnerPlayer && object.Collides(boss, b) {
				destroyed = boss.Hit()
				continue
			}
			keptBullets = append(keptBullets, b)
		}
		clear(g.Bullets[len(keptBullets):])
		g.Bullets = keptBullets

		if destroyed {
			g.Score += g.cfg.BossKillScore
			g.logger.Info("Boss destroyed", "level", g.Level, "score", g.Score)
			continue
		}
		keptBosses = append(keptBosses, boss)
	}
	clear(g.Bosses[len(keptBosses):])
	g.Bosses = keptBosses
}

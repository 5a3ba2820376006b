package loop

import (
	"math"
	"strconv"
	"time"

	"github.com/tomz197/spaceshooter/internal/scene"
)

// Player sprite variants.
const (
	PlayerNormal  = 0
	PlayerBoosted = 1 // Tinted while the speed powerup is active
)

// Scene builds the draw calls for the current frame in z-order: stars,
// asteroids, collectibles, powerups, bosses, bullets, player, explosion.
// The returned scene is reused by the next call.
func (g *Game) Scene() *scene.Scene {
	now := g.lastFrame
	if now.IsZero() {
		now = g.clock.Now()
	}

	s := &g.scene
	s.Reset()
	s.Width, s.Height = g.screen.Width, g.screen.Height
	s.ShowHelp = g.ShowHelp

	for _, st := range g.Stars {
		s.Add(scene.Call{Kind: scene.KindStar, X: st.X, Y: st.Y, Size: st.Size})
	}

	switch g.Status {
	case StatusLoading:
		s.Overlay = scene.OverlayLoading
		if g.assets != nil {
			s.Loaded, s.Total = g.assets.Progress()
		}
		return s
	case StatusStart:
		s.Overlay = scene.OverlayStart
		return s
	case StatusPaused:
		s.Overlay = scene.OverlayPaused
	case StatusGameOver:
		s.Overlay = scene.OverlayGameOver
	}

	g.addEntities(s, now)
	s.HUD = scene.HUD{
		Visible: true,
		Level:   g.Level,
		Score:   g.Score,
		Time:    int(math.Ceil(g.Timer)),
	}
	return s
}

// addEntities appends every gameplay sprite.
func (g *Game) addEntities(s *scene.Scene, now time.Time) {
	for _, a := range g.Asteroids {
		s.Add(scene.Call{Kind: scene.KindAsteroid, X: a.X, Y: a.Y, Size: a.Size, Variant: a.Variant})
	}
	for _, c := range g.Collectibles {
		s.Add(scene.Call{Kind: scene.KindCollectible, X: c.X, Y: c.Y, Size: c.Size})
	}
	for _, p := range g.Powerups {
		s.Add(scene.Call{Kind: scene.KindPowerup, X: p.X, Y: p.Y, Size: p.Size, Variant: int(p.Type)})
	}
	for _, b := range g.Bosses {
		s.Add(scene.Call{
			Kind:  scene.KindBoss,
			X:     b.X,
			Y:     b.Y,
			Size:  b.Size,
			Label: "HP: " + strconv.Itoa(b.Health),
		})
	}
	for _, b := range g.Bullets {
		s.Add(scene.Call{Kind: scene.KindBullet, X: b.X, Y: b.Y, Size: b.Size, Variant: int(b.Owner)})
	}

	p := g.Player
	variant := PlayerNormal
	if p.SpeedBoost {
		variant = PlayerBoosted
	}
	s.Add(scene.Call{Kind: scene.KindPlayer, X: p.X, Y: p.Y, Size: p.Size, Variant: variant, Shielded: p.IsShielded})

	if e := g.Explosion; e != nil {
		s.Add(scene.Call{
			Kind:  scene.KindExplosion,
			X:     e.X,
			Y:     e.Y,
			Size:  e.Size(now, g.cfg.SpaceshipSize),
			Alpha: e.Alpha(now),
		})
	}
}

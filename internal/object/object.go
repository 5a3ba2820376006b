// Package object holds the game entities as plain records with per-frame
// update functions. Nothing here draws; renderers read the exported fields.
package object

import (
	"math/rand"
	"time"

	"github.com/tomz197/spaceshooter/internal/input"
	"github.com/tomz197/spaceshooter/internal/physics"
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// Screen is the play-field size in logical units.
type Screen struct {
	Width  float64
	Height float64
}

// Center returns the middle of the play field.
func (s Screen) Center() (float64, float64) {
	return s.Width / 2, s.Height / 2
}

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	SpawnBullet(b *Bullet)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Now     time.Time
	Delta   time.Duration
	Input   Input
	Screen  Screen
	Rand    *rand.Rand
	Spawner Spawner
}

// Updater is an entity advanced once per simulation step.
type Updater interface {
	Update(ctx UpdateContext)
}

// Body is anything with a center and a sprite size, i.e. anything collidable.
type Body interface {
	Bounds() (x, y, size float64)
}

// Collides reports whether two bodies touch: distance between centers is
// less than the sum of their half-sizes.
func Collides(a, b Body) bool {
	ax, ay, as := a.Bounds()
	bx, by, bs := b.Bounds()
	return physics.SpritesOverlap(ax, ay, as, bx, by, bs)
}

// UpdateAll advances every entity in a pool.
func UpdateAll[T Updater](items []T, ctx UpdateContext) {
	for _, item := range items {
		item.Update(ctx)
	}
}

// randRange returns a uniform value in [lo, hi).
func randRange(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// offscreenRight picks a spawn point just past the right edge.
func offscreenRight(r *rand.Rand, screen Screen) (float64, float64) {
	return randRange(r, screen.Width, screen.Width+spawnBand), randRange(r, 0, screen.Height)
}

// spawnBand is the width of the region right of the field where pickups and
// hazards re-enter.
const spawnBand = 200.0

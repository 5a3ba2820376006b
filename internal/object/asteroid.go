package object

import "math/rand"

// Asteroid sizes and speeds (units, units per frame).
const (
	AsteroidMinSize  = 30.0
	AsteroidMaxSize  = 80.0
	AsteroidMinSpeed = 1.0
	AsteroidMaxSpeed = 3.0
)

// Asteroid is a drifting hazard. It never leaves its pool: once it passes the
// left edge it is recycled at the right edge with a fresh size.
type Asteroid struct {
	X, Y    float64 // Position (center)
	Size    float64 // Sprite diameter
	Speed   float64 // Leftward drift per frame, fixed for life
	Variant int     // Sprite variant, 1 or 2
}

// NewAsteroid creates an asteroid somewhere past the right edge.
func NewAsteroid(r *rand.Rand, screen Screen) *Asteroid {
	a := &Asteroid{}
	a.Reset(r, screen)
	a.Speed = randRange(r, AsteroidMinSpeed, AsteroidMaxSpeed)
	a.Variant = 1
	if r.Float64() >= 0.5 {
		a.Variant = 2
	}
	return a
}

// Reset moves the asteroid back to the spawn band and re-rolls its size.
func (a *Asteroid) Reset(r *rand.Rand, screen Screen) {
	a.X, a.Y = offscreenRight(r, screen)
	a.Size = randRange(r, AsteroidMinSize, AsteroidMaxSize)
}

// Update drifts left and recycles once fully off screen.
func (a *Asteroid) Update(ctx UpdateContext) {
	a.X -= a.Speed
	if a.X < -a.Size {
		a.Reset(ctx.Rand, ctx.Screen)
	}
}

// Bounds implements Body.
func (a *Asteroid) Bounds() (float64, float64, float64) {
	return a.X, a.Y, a.Size
}

package object

import (
	"time"

	"github.com/tomz197/spaceshooter/internal/physics"
)

// Explosion is the death effect. It grows and fades over its duration and
// then signals the end of the game.
type Explosion struct {
	X, Y     float64
	Start    time.Time
	Duration time.Duration
}

// NewExplosion starts an explosion at (x, y).
func NewExplosion(x, y float64, start time.Time, duration time.Duration) *Explosion {
	return &Explosion{X: x, Y: y, Start: start, Duration: duration}
}

// Progress returns elapsed/duration. It is not clamped.
func (e *Explosion) Progress(now time.Time) float64 {
	if e.Duration <= 0 {
		return 1
	}
	return float64(now.Sub(e.Start)) / float64(e.Duration)
}

// Finished reports whether strictly more than Duration has elapsed.
func (e *Explosion) Finished(now time.Time) bool {
	return now.Sub(e.Start) > e.Duration
}

// Alpha returns the tint alpha, fading from 255 to 0.
func (e *Explosion) Alpha(now time.Time) float64 {
	return physics.Clamp(physics.MapRange(e.Progress(now), 0, 1, 255, 0), 0, 255)
}

// Size returns the sprite size, growing from base to 3×base.
func (e *Explosion) Size(now time.Time, base float64) float64 {
	p := physics.Clamp(e.Progress(now), 0, 1)
	return physics.MapRange(p, 0, 1, base, base*3)
}

package object

import "math/rand"

// Star is background decoration. It takes no part in collisions.
type Star struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// NewStar places a star anywhere on the field.
func NewStar(r *rand.Rand, screen Screen) *Star {
	return &Star{
		X:     randRange(r, 0, screen.Width),
		Y:     randRange(r, 0, screen.Height),
		Size:  randRange(r, 1, 3),
		Speed: randRange(r, 0.5, 2),
	}
}

// Update drifts left and wraps to the right edge at a new height.
func (s *Star) Update(ctx UpdateContext) {
	s.X -= s.Speed
	if s.X < 0 {
		s.X = ctx.Screen.Width
		s.Y = randRange(ctx.Rand, 0, ctx.Screen.Height)
	}
}

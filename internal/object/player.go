package object

import (
	"time"

	"github.com/tomz197/spaceshooter/internal/physics"
)

// Player is the ship. Powerup effects are stored as expiry timestamps and
// mirrored into IsShielded/SpeedBoost once per step by ExpireEffects.
type Player struct {
	X, Y       float64
	Size       float64
	Speed      float64 // Units per frame on each active axis
	BoostScale float64 // Speed multiplier while SpeedBoost is on

	IsShielded bool
	SpeedBoost bool

	ShieldUntil time.Time
	SpeedUntil  time.Time
}

// NewPlayer creates a ship at the center of the field.
func NewPlayer(screen Screen, size, speed, boostScale float64) *Player {
	x, y := screen.Center()
	return &Player{X: x, Y: y, Size: size, Speed: speed, BoostScale: boostScale}
}

// Reset recenters the ship and cancels every effect.
func (p *Player) Reset(screen Screen) {
	p.X, p.Y = screen.Center()
	p.IsShielded = false
	p.SpeedBoost = false
	p.ShieldUntil = time.Time{}
	p.SpeedUntil = time.Time{}
}

// Update applies input and then keeps the ship on screen.
func (p *Player) Update(ctx UpdateContext) {
	p.HandleInput(ctx.Input)
	p.Constrain(ctx.Screen)
}

// HandleInput moves the ship along every active axis. Diagonals are not
// normalized, so moving diagonally covers more ground per frame.
func (p *Player) HandleInput(in Input) {
	move := p.Speed
	if p.SpeedBoost {
		move *= p.BoostScale
	}
	if in.Left {
		p.X -= move
	}
	if in.Right {
		p.X += move
	}
	if in.Up {
		p.Y -= move
	}
	if in.Down {
		p.Y += move
	}
}

// Constrain clamps the ship so the whole sprite stays inside the field.
func (p *Player) Constrain(screen Screen) {
	half := p.Size / 2
	p.X = physics.Clamp(p.X, half, screen.Width-half)
	p.Y = physics.Clamp(p.Y, half, screen.Height-half)
}

// ApplyPowerup turns on the effect for t and extends its expiry to
// max(current expiry, now+duration). Repeat pickups never shorten an effect.
func (p *Player) ApplyPowerup(t PowerupType, now time.Time, duration time.Duration) {
	until := now.Add(duration)
	switch t {
	case PowerupShield:
		p.IsShielded = true
		if until.After(p.ShieldUntil) {
			p.ShieldUntil = until
		}
	case PowerupSpeed:
		p.SpeedBoost = true
		if until.After(p.SpeedUntil) {
			p.SpeedUntil = until
		}
	}
}

// ExpireEffects clears every effect whose expiry is at or before now.
func (p *Player) ExpireEffects(now time.Time) {
	if p.IsShielded && !now.Before(p.ShieldUntil) {
		p.IsShielded = false
	}
	if p.SpeedBoost && !now.Before(p.SpeedUntil) {
		p.SpeedBoost = false
	}
}

// Bounds implements Body.
func (p *Player) Bounds() (float64, float64, float64) {
	return p.X, p.Y, p.Size
}

// Nose returns the spawn point for player bullets (right edge, center line).
func (p *Player) Nose() (float64, float64) {
	return p.X + p.Size/2, p.Y
}

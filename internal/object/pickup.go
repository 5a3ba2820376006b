package object

import "math/rand"

// Pickup sizes and speeds.
const (
	CollectibleSize   = 30.0
	CollectibleSpeed  = 2.0
	PowerupSize       = 40.0
	PowerupDriftSpeed = 2.5
)

// Collectible is a coin worth one point. It is consumed on pickup and
// otherwise recycled at the right edge.
type Collectible struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// NewCollectible creates a coin past the right edge.
func NewCollectible(r *rand.Rand, screen Screen) *Collectible {
	c := &Collectible{Size: CollectibleSize, Speed: CollectibleSpeed}
	c.X, c.Y = offscreenRight(r, screen)
	return c
}

// Update drifts left and recycles once fully off screen.
func (c *Collectible) Update(ctx UpdateContext) {
	c.X -= c.Speed
	if c.X < -c.Size {
		c.X, c.Y = offscreenRight(ctx.Rand, ctx.Screen)
	}
}

// Bounds implements Body.
func (c *Collectible) Bounds() (float64, float64, float64) {
	return c.X, c.Y, c.Size
}

// PowerupType identifies a powerup effect.
type PowerupType int

const (
	PowerupShield PowerupType = iota
	PowerupSpeed
)

// PowerupTypes lists every effect, in the order random spawns choose from.
var PowerupTypes = []PowerupType{PowerupShield, PowerupSpeed}

// String returns the effect name.
func (t PowerupType) String() string {
	switch t {
	case PowerupShield:
		return "shield"
	case PowerupSpeed:
		return "speed"
	default:
		return "unknown"
	}
}

// RandomPowerupType picks an effect uniformly.
func RandomPowerupType(r *rand.Rand) PowerupType {
	return PowerupTypes[r.Intn(len(PowerupTypes))]
}

// Powerup grants a timed effect on pickup. It persists (recycling at the
// right edge) until collected.
type Powerup struct {
	X, Y  float64
	Size  float64
	Speed float64
	Type  PowerupType
}

// NewPowerup creates a powerup of the given type past the right edge.
func NewPowerup(r *rand.Rand, screen Screen, t PowerupType) *Powerup {
	p := &Powerup{Size: PowerupSize, Speed: PowerupDriftSpeed, Type: t}
	p.X, p.Y = offscreenRight(r, screen)
	return p
}

// Update drifts left and recycles once fully off screen.
func (p *Powerup) Update(ctx UpdateContext) {
	p.X -= p.Speed
	if p.X < -p.Size {
		p.X, p.Y = offscreenRight(ctx.Rand, ctx.Screen)
	}
}

// Bounds implements Body.
func (p *Powerup) Bounds() (float64, float64, float64) {
	return p.X, p.Y, p.Size
}

package object

import "time"

// Boss constants.
const (
	BossSize       = 80.0
	BossSpeed      = 2.0
	bossEdgeOffset = 100.0
)

// Boss patrols vertically near the right edge and fires at a fixed interval.
type Boss struct {
	X, Y         float64
	Size         float64
	Health       int
	Speed        float64 // Signed vertical speed per frame
	LastShot     time.Time
	ShotInterval time.Duration
}

// NewBoss creates a boss at the right side of the field, vertically centered.
// LastShot starts at the zero time, so the first update fires immediately.
func NewBoss(screen Screen, health int, shotInterval time.Duration) *Boss {
	return &Boss{
		X:            screen.Width - bossEdgeOffset,
		Y:            screen.Height / 2,
		Size:         BossSize,
		Health:       health,
		Speed:        BossSpeed,
		ShotInterval: shotInterval,
	}
}

// Update bounces between the top and bottom edges and fires a leftward
// bullet whenever the shot interval has elapsed.
func (b *Boss) Update(ctx UpdateContext) {
	b.Y += b.Speed
	if b.Y > ctx.Screen.Height-b.Size/2 || b.Y < b.Size/2 {
		b.Speed = -b.Speed
	}

	if ctx.Now.Sub(b.LastShot) > b.ShotInterval {
		if ctx.Spawner != nil {
			ctx.Spawner.SpawnBullet(NewBullet(b.X-b.Size/2, b.Y, BossBulletSpeed, OwnerBoss))
		}
		b.LastShot = ctx.Now
	}
}

// Hit applies one point of damage and reports whether the boss is destroyed.
func (b *Boss) Hit() bool {
	b.Health--
	return b.Health <= 0
}

// Bounds implements Body.
func (b *Boss) Bounds() (float64, float64, float64) {
	return b.X, b.Y, b.Size
}

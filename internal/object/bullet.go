package object

// Owner identifies who fired a bullet.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerBoss
)

// Bullet constants.
const (
	BulletSize        = 10.0
	PlayerBulletSpeed = 6.0
	BossBulletSpeed   = -4.0
	BulletCullMargin  = 20.0
)

// Bullet travels horizontally. Positive speed moves right (player fire),
// negative moves left (boss fire).
type Bullet struct {
	X, Y  float64
	Size  float64
	Speed float64
	Owner Owner
}

// NewBullet creates a bullet.
func NewBullet(x, y, speed float64, owner Owner) *Bullet {
	return &Bullet{X: x, Y: y, Size: BulletSize, Speed: speed, Owner: owner}
}

// Update moves the bullet by its signed speed.
func (b *Bullet) Update(_ UpdateContext) {
	b.X += b.Speed
}

// OutOfBounds reports whether the bullet has left the field horizontally by
// more than BulletCullMargin.
func (b *Bullet) OutOfBounds(screen Screen) bool {
	return b.X < -BulletCullMargin || b.X > screen.Width+BulletCullMargin
}

// Bounds implements Body.
func (b *Bullet) Bounds() (float64, float64, float64) {
	return b.X, b.Y, b.Size
}

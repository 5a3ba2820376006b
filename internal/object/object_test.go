package object

import (
	"math/rand"
	"testing"
	"time"
)

var testScreen = Screen{Width: 960, Height: 640}

func testContext() UpdateContext {
	return UpdateContext{
		Now:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Screen: testScreen,
		Rand:   rand.New(rand.NewSource(1)),
	}
}

type bulletSink struct {
	bullets []*Bullet
}

func (s *bulletSink) SpawnBullet(b *Bullet) {
	s.bullets = append(s.bullets, b)
}

func TestNewAsteroidSpawnsInBand(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		a := NewAsteroid(r, testScreen)
		if a.X < testScreen.Width || a.X >= testScreen.Width+spawnBand {
			t.Fatalf("x = %v outside spawn band", a.X)
		}
		if a.Y < 0 || a.Y >= testScreen.Height {
			t.Fatalf("y = %v outside field", a.Y)
		}
		if a.Size < AsteroidMinSize || a.Size >= AsteroidMaxSize {
			t.Fatalf("size = %v out of range", a.Size)
		}
		if a.Speed < AsteroidMinSpeed || a.Speed >= AsteroidMaxSpeed {
			t.Fatalf("speed = %v out of range", a.Speed)
		}
		if a.Variant != 1 && a.Variant != 2 {
			t.Fatalf("variant = %d", a.Variant)
		}
	}
}

func TestAsteroidRecyclesAtLeftEdge(t *testing.T) {
	ctx := testContext()
	a := &Asteroid{X: -39, Y: 10, Size: 40, Speed: 2}

	a.Update(ctx)
	if a.X < testScreen.Width {
		t.Fatalf("asteroid past -size should respawn on the right, x = %v", a.X)
	}
	if a.Speed != 2 {
		t.Errorf("speed must survive recycling, got %v", a.Speed)
	}

	b := &Asteroid{X: 100, Y: 10, Size: 40, Speed: 2}
	b.Update(ctx)
	if b.X != 98 {
		t.Errorf("x = %v, want 98", b.X)
	}
}

func TestPickupsRecycle(t *testing.T) {
	ctx := testContext()

	c := &Collectible{X: -29, Size: CollectibleSize, Speed: CollectibleSpeed}
	c.Update(ctx)
	if c.X < testScreen.Width {
		t.Errorf("collectible should recycle, x = %v", c.X)
	}

	p := &Powerup{X: -38, Size: PowerupSize, Speed: PowerupDriftSpeed, Type: PowerupSpeed}
	p.Update(ctx)
	if p.X < testScreen.Width {
		t.Errorf("powerup should recycle, x = %v", p.X)
	}
	if p.Type != PowerupSpeed {
		t.Error("powerup type must not change when recycled")
	}
}

func TestStarWraps(t *testing.T) {
	ctx := testContext()
	s := &Star{X: 0.5, Y: 3, Size: 2, Speed: 1}
	s.Update(ctx)
	if s.X != testScreen.Width {
		t.Errorf("star x = %v, want %v", s.X, testScreen.Width)
	}
	if s.Y < 0 || s.Y >= testScreen.Height {
		t.Errorf("star y = %v out of field", s.Y)
	}
}

func TestBulletMovesAndCulls(t *testing.T) {
	ctx := testContext()
	b := NewBullet(testScreen.Width+15, 0, PlayerBulletSpeed, OwnerPlayer)
	if b.OutOfBounds(testScreen) {
		t.Fatal("bullet inside margin should not be culled yet")
	}
	b.Update(ctx)
	if !b.OutOfBounds(testScreen) {
		t.Errorf("bullet at x=%v should be culled", b.X)
	}

	enemy := NewBullet(-15, 0, BossBulletSpeed, OwnerBoss)
	enemy.Update(ctx)
	if enemy.X != -19 || enemy.OutOfBounds(testScreen) {
		t.Errorf("boss bullet x = %v", enemy.X)
	}
	enemy.Update(ctx)
	if !enemy.OutOfBounds(testScreen) {
		t.Error("boss bullet past -20 should be culled")
	}
}

func TestBossBouncesAndFires(t *testing.T) {
	ctx := testContext()
	sink := &bulletSink{}
	ctx.Spawner = sink

	b := NewBoss(testScreen, 10, 800*time.Millisecond)
	b.Y = testScreen.Height - b.Size/2 - 1

	b.Update(ctx)
	if b.Speed >= 0 {
		t.Errorf("boss should reverse at the bottom edge, speed = %v", b.Speed)
	}
	if len(sink.bullets) != 1 {
		t.Fatalf("first update should fire, got %d bullets", len(sink.bullets))
	}
	shot := sink.bullets[0]
	if shot.Owner != OwnerBoss || shot.Speed != BossBulletSpeed || shot.X != b.X-b.Size/2 {
		t.Errorf("unexpected boss bullet %+v", shot)
	}

	ctx.Now = ctx.Now.Add(800 * time.Millisecond)
	b.Update(ctx)
	if len(sink.bullets) != 1 {
		t.Error("boss fired before the interval strictly elapsed")
	}

	ctx.Now = ctx.Now.Add(time.Millisecond)
	b.Update(ctx)
	if len(sink.bullets) != 2 {
		t.Error("boss should fire once the interval has elapsed")
	}
}

func TestBossHit(t *testing.T) {
	b := NewBoss(testScreen, 2, time.Second)
	if b.Hit() {
		t.Fatal("boss destroyed after first of two hits")
	}
	if !b.Hit() || b.Health != 0 {
		t.Fatalf("boss should be destroyed at 0 health, health = %d", b.Health)
	}
}

func TestExplosionTiming(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	e := NewExplosion(10, 20, t0, 12*time.Second)

	if e.Finished(t0.Add(11999 * time.Millisecond)) {
		t.Error("finished too early")
	}
	if e.Finished(t0.Add(12 * time.Second)) {
		t.Error("finished at exactly the duration; must be strictly after")
	}
	if !e.Finished(t0.Add(12001 * time.Millisecond)) {
		t.Error("not finished after duration")
	}

	if a := e.Alpha(t0); a != 255 {
		t.Errorf("alpha at start = %v", a)
	}
	if a := e.Alpha(t0.Add(6 * time.Second)); a != 127.5 {
		t.Errorf("alpha halfway = %v", a)
	}
	if a := e.Alpha(t0.Add(time.Minute)); a != 0 {
		t.Errorf("alpha after end = %v", a)
	}
	if s := e.Size(t0.Add(12*time.Second), 60); s != 180 {
		t.Errorf("size at end = %v, want 180", s)
	}
}

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name   string
		in     Input
		boost  bool
		dx, dy float64
	}{
		{"idle", Input{}, false, 0, 0},
		{"left", Input{Left: true}, false, -5, 0},
		{"down boosted", Input{Down: true}, true, 0, 7.5},
		{"diagonal is not normalized", Input{Right: true, Up: true}, false, 5, -5},
		{"opposites cancel", Input{Left: true, Right: true}, false, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(testScreen, 60, 5, 1.5)
			p.SpeedBoost = tt.boost
			x0, y0 := p.X, p.Y

			ctx := testContext()
			ctx.Input = tt.in
			p.Update(ctx)

			if p.X-x0 != tt.dx || p.Y-y0 != tt.dy {
				t.Errorf("moved (%v,%v), want (%v,%v)", p.X-x0, p.Y-y0, tt.dx, tt.dy)
			}
		})
	}
}

func TestPlayerConstrain(t *testing.T) {
	p := NewPlayer(testScreen, 60, 5, 1.5)
	p.X, p.Y = -100, 10000
	p.Constrain(testScreen)
	if p.X != 30 || p.Y != testScreen.Height-30 {
		t.Errorf("constrained to (%v,%v)", p.X, p.Y)
	}
}

func TestShieldWindow(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewPlayer(testScreen, 60, 5, 1.5)

	p.ApplyPowerup(PowerupShield, t0, 5*time.Second)
	for _, d := range []time.Duration{0, time.Second, 4999 * time.Millisecond} {
		p.ExpireEffects(t0.Add(d))
		if !p.IsShielded {
			t.Fatalf("shield should be active at t0+%v", d)
		}
	}
	p.ExpireEffects(t0.Add(5 * time.Second))
	if p.IsShielded {
		t.Error("shield should be off at t0+5s")
	}
}

func TestRepeatPickupExtendsEffect(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewPlayer(testScreen, 60, 5, 1.5)

	p.ApplyPowerup(PowerupSpeed, t0, 5*time.Second)
	p.ApplyPowerup(PowerupSpeed, t0.Add(3*time.Second), 5*time.Second)

	// The first pickup's expiry must not clear the effect early.
	p.ExpireEffects(t0.Add(6 * time.Second))
	if !p.SpeedBoost {
		t.Error("speed boost cleared by the earlier pickup's expiry")
	}
	p.ExpireEffects(t0.Add(8 * time.Second))
	if p.SpeedBoost {
		t.Error("speed boost should end 5s after the latest pickup")
	}
}

func TestPlayerResetCancelsEffects(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewPlayer(testScreen, 60, 5, 1.5)
	p.ApplyPowerup(PowerupShield, t0, 5*time.Second)
	p.X = 10

	p.Reset(testScreen)
	if p.IsShielded || !p.ShieldUntil.IsZero() {
		t.Error("reset must cancel the shield")
	}
	if p.X != testScreen.Width/2 {
		t.Errorf("reset x = %v", p.X)
	}
}

func TestCollides(t *testing.T) {
	p := &Player{X: 0, Y: 0, Size: 60}
	if !Collides(p, &Collectible{X: 44, Y: 0, Size: 30}) {
		t.Error("expected collision at distance 44")
	}
	if Collides(p, &Collectible{X: 45, Y: 0, Size: 30}) {
		t.Error("distance equal to the sum of half-sizes is not a collision")
	}
}

func TestRandomPowerupType(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	seen := map[PowerupType]bool{}
	for i := 0; i < 50; i++ {
		seen[RandomPowerupType(r)] = true
	}
	if !seen[PowerupShield] || !seen[PowerupSpeed] {
		t.Errorf("expected both types, saw %v", seen)
	}
	if PowerupShield.String() != "shield" || PowerupSpeed.String() != "speed" {
		t.Error("unexpected type names")
	}
}

// Package scene describes a rendered frame as an ordered list of draw calls.
// The simulation produces a Scene; renderers consume it without touching game state.
package scene

// Kind identifies what a draw call depicts.
type Kind int

const (
	KindStar Kind = iota
	KindAsteroid
	KindCollectible
	KindPowerup
	KindBoss
	KindBullet
	KindPlayer
	KindExplosion
)

// String returns a short name for logs and tests.
func (k Kind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindAsteroid:
		return "asteroid"
	case KindCollectible:
		return "collectible"
	case KindPowerup:
		return "powerup"
	case KindBoss:
		return "boss"
	case KindBullet:
		return "bullet"
	case KindPlayer:
		return "player"
	case KindExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Call is one sprite to draw, centered on (X, Y).
type Call struct {
	Kind     Kind
	X, Y     float64
	Size     float64
	Variant  int     // Asteroid sprite, powerup type, bullet owner
	Shielded bool    // Player shield ring
	Alpha    float64 // 0..255 tint; 255 is opaque
	Label    string  // Text drawn above the sprite (boss HP)
}

// Overlay is the full-screen layer drawn on top of the play field.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayLoading
	OverlayStart
	OverlayPaused
	OverlayGameOver
)

// HUD is the in-game status line.
type HUD struct {
	Visible bool
	Level   int
	Score   int
	Time    int // Seconds remaining, rounded up
}

// Scene is everything a renderer needs for one frame.
type Scene struct {
	Width, Height float64
	Calls         []Call
	HUD           HUD
	Overlay       Overlay
	ShowHelp      bool
	Loaded, Total int // Asset progress for the loading overlay
}

// Reset empties the scene while keeping the call buffer.
func (s *Scene) Reset() {
	calls := s.Calls[:0]
	*s = Scene{Calls: calls}
}

// Add appends a draw call.
func (s *Scene) Add(c Call) {
	if c.Alpha == 0 && c.Kind != KindExplosion {
		c.Alpha = 255
	}
	s.Calls = append(s.Calls, c)
}

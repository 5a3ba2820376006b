package loop

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/spaceshooter/internal/asset"
	"github.com/tomz197/spaceshooter/internal/audio"
	"github.com/tomz197/spaceshooter/internal/clock"
	"github.com/tomz197/spaceshooter/internal/loop/config"
	"github.com/tomz197/spaceshooter/internal/object"
	"github.com/tomz197/spaceshooter/internal/scene"
)

// Status is the screen the game is on.
type Status int

const (
	StatusLoading  Status = iota // Waiting for assets
	StatusStart                  // Title screen
	StatusPlaying                // Active gameplay
	StatusPaused                 // Gameplay suspended
	StatusGameOver               // Timer ran out or the explosion finished
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusStart:
		return "start"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Cues receives fire-and-forget audio signals.
type Cues interface {
	PlayCollect()
	PlayCrash()
	PlayMusic()
}

// assetUser is implemented by cue players that need the loaded assets.
type assetUser interface {
	Use(assets *asset.Loader)
}

// Options configures a Game. Zero values pick sensible defaults.
type Options struct {
	Config config.Config
	Clock  clock.Clock
	Rand   *rand.Rand
	Cues   Cues
	Assets *asset.Loader
	Logger *log.Logger
}

// Game is the whole session: screen status, progression, and every entity pool.
// It is owned by a single frame loop and is not safe for concurrent use.
type Game struct {
	Status       Status
	Level        int
	Timer        float64 // Seconds remaining
	Score        int
	Paused       bool
	LastShotTime time.Time
	Explosion    *object.Explosion
	ShowHelp     bool

	Player       *object.Player
	Asteroids    []*object.Asteroid
	Collectibles []*object.Collectible
	Powerups     []*object.Powerup
	Bullets      []*object.Bullet
	Bosses       []*object.Boss
	Stars        []*object.Star

	cfg    config.Config
	screen object.Screen
	clock  clock.Clock
	rng    *rand.Rand
	cues   Cues
	assets *asset.Loader
	logger *log.Logger

	lastFrame time.Time
	toSpawn   []*object.Bullet // Bullets fired during the current update
	scene     scene.Scene
}

// NewGame creates a game on the loading screen.
func NewGame(opts Options) *Game {
	cfg := opts.Config
	if cfg == (config.Config{}) {
		cfg = config.Default()
	}
	g := &Game{
		Status: StatusLoading,
		cfg:    cfg,
		screen: object.Screen{Width: cfg.FieldWidth, Height: cfg.FieldHeight},
		clock:  opts.Clock,
		rng:    opts.Rand,
		cues:   opts.Cues,
		assets: opts.Assets,
		logger: opts.Logger,
	}
	if g.clock == nil {
		g.clock = clock.System{}
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.cues == nil {
		g.cues = audio.Nop{}
	}
	if g.logger == nil {
		g.logger = log.Default()
	}

	g.Player = object.NewPlayer(g.screen, cfg.SpaceshipSize, cfg.PlayerSpeed, cfg.SpeedBoost)
	for i := 0; i < cfg.StarCount; i++ {
		g.Stars = append(g.Stars, object.NewStar(g.rng, g.screen))
	}
	g.reset()
	return g
}

// Config returns the session tuning.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Screen returns the play-field dimensions.
func (g *Game) Screen() object.Screen {
	return g.screen
}

// StartLoading launches the asset loads, if any.
func (g *Game) StartLoading(ctx context.Context) {
	if g.assets != nil {
		g.assets.Start(ctx)
	}
}

// SpawnBullet queues a bullet to join the pool after the current update.
// Implements object.Spawner.
func (g *Game) SpawnBullet(b *object.Bullet) {
	g.toSpawn = append(g.toSpawn, b)
}

// flushSpawned adds queued bullets to the pool.
func (g *Game) flushSpawned() {
	g.Bullets = append(g.Bullets, g.toSpawn...)
	clear(g.toSpawn)
	g.toSpawn = g.toSpawn[:0]
}

// reset puts every piece of session state back to its initial value.
// Stars are decoration and survive resets.
func (g *Game) reset() {
	g.Level = 1
	g.Timer = g.cfg.InitialTimer
	g.Score = 0
	g.Paused = false
	g.LastShotTime = time.Time{}
	g.Explosion = nil
	g.ShowHelp = false
	g.Player.Reset(g.screen)

	g.Asteroids = g.Asteroids[:0]
	g.Collectibles = g.Collectibles[:0]
	g.Powerups = g.Powerups[:0]
	g.Bullets = g.Bullets[:0]
	g.Bosses = g.Bosses[:0]
	g.toSpawn = g.toSpawn[:0]

	for i := 0; i < g.cfg.InitialAsteroids; i++ {
		g.Asteroids = append(g.Asteroids, object.NewAsteroid(g.rng, g.screen))
	}
	for i := 0; i < g.cfg.InitialCollectibles; i++ {
		g.Collectibles = append(g.Collectibles, object.NewCollectible(g.rng, g.screen))
	}
	if len(g.Powerups) < g.cfg.MaxPowerups {
		g.Powerups = append(g.Powerups, object.NewPowerup(g.rng, g.screen, object.RandomPowerupType(g.rng)))
	}
}

// updateContext builds the context passed to entity updates.
func (g *Game) updateContext(now time.Time, delta time.Duration, in object.Input) object.UpdateContext {
	return object.UpdateContext{
		Now:     now,
		Delta:   delta,
		Input:   in,
		Screen:  g.screen,
		Rand:    g.rng,
		Spawner: g,
	}
}

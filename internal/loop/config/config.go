// Package config centralizes all tunable game parameters.
package config

import (
	"time"

	envcfg "github.com/tomz197/spaceshooter/internal/config"
)

// Play field - logical units. Rendering scales to fit the terminal.
const (
	FieldWidth  = 960
	FieldHeight = 640
)

// Ship
const (
	SpaceshipSize = 60
	PlayerSpeed   = 5.0 // Units per frame
	SpeedBoost    = 1.5 // Move speed multiplier while boosted
)

// Progression
const (
	CoinsToAdvance    = 15
	InitialTimer      = 120.0 // Seconds
	LevelTimeBonus    = 30.0  // Seconds added per level
	AsteroidsPerLevel = 2
	BossMinLevel      = 2
	BossKillScore     = 10
)

// Combat
const (
	ShootingInterval = 800 * time.Millisecond
	BossHealth       = 10
)

// Pools
const (
	InitialAsteroids    = 5
	InitialCollectibles = 3
	MinCollectibles     = 5
	MaxPowerups         = 3
	PowerupSpawnChance  = 0.01 // Per frame
	StarCount           = 150
)

// Timed effects
const (
	PowerupDuration   = 5 * time.Second
	ExplosionDuration = 12 * time.Second
)

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Terminal render clamp
const (
	MaxTermWidth  = 240
	MaxTermHeight = 80
)

// Config holds every tunable parameter of a session.
type Config struct {
	FieldWidth  float64
	FieldHeight float64

	SpaceshipSize float64
	PlayerSpeed   float64
	SpeedBoost    float64

	CoinsToAdvance    int
	InitialTimer      float64
	LevelTimeBonus    float64
	AsteroidsPerLevel int
	BossMinLevel      int
	BossKillScore     int

	ShootingInterval time.Duration
	BossHealth       int

	InitialAsteroids    int
	InitialCollectibles int
	MinCollectibles     int
	MaxPowerups         int
	PowerupSpawnChance  float64
	StarCount           int

	PowerupDuration   time.Duration
	ExplosionDuration time.Duration
}

// Default returns the stock tuning.
func Default() Config {
	return Config{
		FieldWidth:          FieldWidth,
		FieldHeight:         FieldHeight,
		SpaceshipSize:       SpaceshipSize,
		PlayerSpeed:         PlayerSpeed,
		SpeedBoost:          SpeedBoost,
		CoinsToAdvance:      CoinsToAdvance,
		InitialTimer:        InitialTimer,
		LevelTimeBonus:      LevelTimeBonus,
		AsteroidsPerLevel:   AsteroidsPerLevel,
		BossMinLevel:        BossMinLevel,
		BossKillScore:       BossKillScore,
		ShootingInterval:    ShootingInterval,
		BossHealth:          BossHealth,
		InitialAsteroids:    InitialAsteroids,
		InitialCollectibles: InitialCollectibles,
		MinCollectibles:     MinCollectibles,
		MaxPowerups:         MaxPowerups,
		PowerupSpawnChance:  PowerupSpawnChance,
		StarCount:           StarCount,
		PowerupDuration:     PowerupDuration,
		ExplosionDuration:   ExplosionDuration,
	}
}

// FromEnv returns Default overridden by SHOOTER_* environment variables.
func FromEnv() Config {
	c := Default()
	c.SpaceshipSize = envcfg.GetEnvFloat("SHOOTER_SPACESHIP_SIZE", c.SpaceshipSize)
	c.CoinsToAdvance = envcfg.GetEnvInt("SHOOTER_COINS_TO_ADVANCE", c.CoinsToAdvance)
	c.InitialTimer = envcfg.GetEnvFloat("SHOOTER_INITIAL_TIMER", c.InitialTimer)
	c.ShootingInterval = envcfg.GetEnvDuration("SHOOTER_SHOOTING_INTERVAL", c.ShootingInterval)
	c.MaxPowerups = envcfg.GetEnvInt("SHOOTER_MAX_POWERUPS", c.MaxPowerups)
	c.BossHealth = envcfg.GetEnvInt("SHOOTER_BOSS_HEALTH", c.BossHealth)
	c.StarCount = envcfg.GetEnvInt("SHOOTER_STAR_COUNT", c.StarCount)
	c.ExplosionDuration = envcfg.GetEnvDuration("SHOOTER_EXPLOSION_DURATION", c.ExplosionDuration)
	c.PowerupDuration = envcfg.GetEnvDuration("SHOOTER_POWERUP_DURATION", c.PowerupDuration)
	return c.sanitize()
}

// sanitize replaces values that would break invariants with defaults.
func (c Config) sanitize() Config {
	d := Default()
	if c.SpaceshipSize <= 0 {
		c.SpaceshipSize = d.SpaceshipSize
	}
	if c.CoinsToAdvance <= 0 {
		c.CoinsToAdvance = d.CoinsToAdvance
	}
	if c.InitialTimer <= 0 {
		c.InitialTimer = d.InitialTimer
	}
	if c.ShootingInterval < 0 {
		c.ShootingInterval = d.ShootingInterval
	}
	if c.MaxPowerups < 0 {
		c.MaxPowerups = d.MaxPowerups
	}
	if c.BossHealth <= 0 {
		c.BossHealth = d.BossHealth
	}
	if c.StarCount < 0 {
		c.StarCount = d.StarCount
	}
	if c.ExplosionDuration <= 0 {
		c.ExplosionDuration = d.ExplosionDuration
	}
	if c.PowerupDuration <= 0 {
		c.PowerupDuration = d.PowerupDuration
	}
	return c
}

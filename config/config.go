// Package config assembles runtime settings from defaults, an optional YAML file,
// an optional .env file and ARENA_* environment variables, in increasing precedence
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/arena/parameter"
)

// ErrInvalid marks a configuration value that cannot be used
var ErrInvalid = errors.New("invalid configuration")

// Physics backends
const (
	BackendTracker  = "tracker"
	BackendChipmunk = "chipmunk"
)

// Default file locations
const (
	DefaultConfigPath = "arena.yaml"
	DefaultEnvPath    = ".env"
)

type TickConfig struct {
	Rate int `yaml:"rate"` // Ticks per second
}

type PlayerConfig struct {
	Speed        float64       `yaml:"speed"`
	FireCooldown time.Duration `yaml:"fire_cooldown"`
}

type EnemyConfig struct {
	Speed  float64 `yaml:"speed"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

type ProjectileConfig struct {
	Speed    float64       `yaml:"speed"`
	Lifetime time.Duration `yaml:"lifetime"`
}

type PhysicsConfig struct {
	Backend string `yaml:"backend"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type RenderConfig struct {
	UnitsPerCell float64 `yaml:"units_per_cell"`
}

type DebugConfig struct {
	Log     bool   `yaml:"log"`
	Profile string `yaml:"profile"` // "", "cpu" or "mem"
}

// Config is the complete runtime configuration
type Config struct {
	Tick       TickConfig       `yaml:"tick"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Audio      AudioConfig      `yaml:"audio"`
	Render     RenderConfig     `yaml:"render"`
	Debug      DebugConfig      `yaml:"debug"`
}

// Default returns the stock arena settings
func Default() Config {
	return Config{
		Tick: TickConfig{Rate: parameter.TickRate},
		Player: PlayerConfig{
			Speed:        parameter.PlayerSpeed,
			FireCooldown: parameter.FireCooldown,
		},
		Enemy: EnemyConfig{
			Speed:  parameter.EnemySpeed,
			StartX: parameter.EnemyStartX,
			StartY: parameter.EnemyStartY,
		},
		Projectile: ProjectileConfig{
			Speed:    parameter.ProjectileSpeed,
			Lifetime: parameter.ProjectileLifetime,
		},
		Physics: PhysicsConfig{Backend: BackendTracker},
		Audio:   AudioConfig{Enabled: true, Volume: parameter.AudioVolume},
		Render:  RenderConfig{UnitsPerCell: parameter.WorldUnitsPerCell},
	}
}

// TickInterval returns the fixed simulation step
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Tick.Rate)
}

// Load reads configuration from the default locations
// ARENA_CONFIG overrides the YAML path
func Load() (Config, error) {
	path := os.Getenv("ARENA_CONFIG")
	if path == "" {
		path = DefaultConfigPath
	}
	return LoadFrom(path, DefaultEnvPath)
}

// LoadFrom applies defaults, then the YAML file, then the .env file, then the environment
// Missing files are skipped; the result is validated
func LoadFrom(yamlPath, envPath string) (Config, error) {
	cfg := Default()

	if yamlPath != "" {
		if err := cfg.mergeYAML(yamlPath); err != nil {
			return Config{}, err
		}
	}

	if envPath != "" {
		// godotenv never overrides variables already set in the process
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeYAML(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	log.Printf("[config] loaded %s", path)
	return nil
}

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Tick.Rate <= 0:
		return fmt.Errorf("%w: tick rate %d", ErrInvalid, c.Tick.Rate)
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player speed %v", ErrInvalid, c.Player.Speed)
	case c.Player.FireCooldown <= 0:
		return fmt.Errorf("%w: fire cooldown %v", ErrInvalid, c.Player.FireCooldown)
	case c.Enemy.Speed <= 0:
		return fmt.Errorf("%w: enemy speed %v", ErrInvalid, c.Enemy.Speed)
	case c.Projectile.Speed <= 0:
		return fmt.Errorf("%w: projectile speed %v", ErrInvalid, c.Projectile.Speed)
	case c.Projectile.Lifetime <= 0:
		return fmt.Errorf("%w: projectile lifetime %v", ErrInvalid, c.Projectile.Lifetime)
	case c.Render.UnitsPerCell <= 0:
		return fmt.Errorf("%w: units per cell %v", ErrInvalid, c.Render.UnitsPerCell)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio volume %v", ErrInvalid, c.Audio.Volume)
	}

	switch c.Physics.Backend {
	case BackendTracker, BackendChipmunk:
	default:
		return fmt.Errorf("%w: physics backend %q", ErrInvalid, c.Physics.Backend)
	}

	switch c.Debug.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("%w: profile mode %q", ErrInvalid, c.Debug.Profile)
	}
	return nil
}

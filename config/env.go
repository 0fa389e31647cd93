package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// applyEnv overlays ARENA_* variables; empty variables are ignored
func (c *Config) applyEnv() error {
	var err error
	setInt := func(key string, dst *int) {
		if v := os.Getenv(key); v != "" && err == nil {
			n, perr := strconv.Atoi(v)
			if perr != nil {
				err = fmt.Errorf("%w: %s=%q", ErrInvalid, key, v)
				return
			}
			*dst = n
		}
	}
	setFloat := func(key string, dst *float64) {
		if v := os.Getenv(key); v != "" && err == nil {
			f, perr := strconv.ParseFloat(v, 64)
			if perr != nil {
				err = fmt.Errorf("%w: %s=%q", ErrInvalid, key, v)
				return
			}
			*dst = f
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		if v := os.Getenv(key); v != "" && err == nil {
			d, perr := time.ParseDuration(v)
			if perr != nil {
				err = fmt.Errorf("%w: %s=%q", ErrInvalid, key, v)
				return
			}
			*dst = d
		}
	}
	setBool := func(key string, dst *bool) {
		if v := os.Getenv(key); v != "" && err == nil {
			b, perr := strconv.ParseBool(v)
			if perr != nil {
				err = fmt.Errorf("%w: %s=%q", ErrInvalid, key, v)
				return
			}
			*dst = b
		}
	}
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setInt("ARENA_TICK_RATE", &c.Tick.Rate)
	setFloat("ARENA_PLAYER_SPEED", &c.Player.Speed)
	setDuration("ARENA_FIRE_COOLDOWN", &c.Player.FireCooldown)
	setFloat("ARENA_ENEMY_SPEED", &c.Enemy.Speed)
	setFloat("ARENA_ENEMY_START_X", &c.Enemy.StartX)
	setFloat("ARENA_ENEMY_START_Y", &c.Enemy.StartY)
	setFloat("ARENA_PROJECTILE_SPEED", &c.Projectile.Speed)
	setDuration("ARENA_PROJECTILE_LIFETIME", &c.Projectile.Lifetime)
	setString("ARENA_PHYSICS", &c.Physics.Backend)
	setBool("ARENA_AUDIO", &c.Audio.Enabled)
	setFloat("ARENA_VOLUME", &c.Audio.Volume)
	setFloat("ARENA_UNITS_PER_CELL", &c.Render.UnitsPerCell)
	setBool("ARENA_DEBUG", &c.Debug.Log)
	setString("ARENA_PROFILE", &c.Debug.Profile)

	return err
}

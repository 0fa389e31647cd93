package component

import (
	"time"

	"github.com/lixenwraith/arena/core"
)

// PlayerComponent marks the player avatar and holds its fire cooldown
type PlayerComponent struct {
	Cooldown CooldownTimer
}

// EnemyComponent marks the homing enemy
type EnemyComponent struct{}

// ProjectileComponent marks a fired projectile with its remaining lifetime
type ProjectileComponent struct {
	Owner     core.Entity // Firing entity, telemetry only
	Remaining time.Duration
}

// SpriteComponent carries presentation data for the render snapshot
type SpriteComponent struct {
	Scale float64
	Color core.RGB
}

package parameter

import "time"

// Tick
const (
	TickRate = 60 // Simulation ticks per second
)

// Player
const (
	PlayerSpeed      = 250.0 // World units per second
	PlayerHalfExtent = 20.0
	PlayerScale      = 40.0
	FireCooldown     = 1 * time.Second
)

// Enemy
const (
	EnemySpeed      = 100.0
	EnemyHalfExtent = 20.0
	EnemyScale      = 40.0
	EnemyStartX     = 600.0
	EnemyStartY     = 0.0
)

// Projectile
const (
	ProjectileSpeed    = 300.0
	ProjectileRadius   = 2.5
	ProjectileScale    = 5.0
	ProjectileLifetime = 1 * time.Second
)

// Input
const (
	// KeyHoldWindow is how long a terminal key press counts as held without a repeat
	KeyHoldWindow = 150 * time.Millisecond
)

// Logging
const (
	ContactLogRate  = 20.0 // Contact log lines per second
	ContactLogBurst = 40
)

// Render
const (
	WorldUnitsPerCell = 20.0 // Horizontal world units per terminal column; rows are twice as tall
)

package parameter

// System Execution Priorities (lower runs first)
// Lifecycle commit is not a system: World.Tick always runs it after the last system
const (
	PriorityMovement  = 10  // Player input translation
	PriorityHoming    = 20  // Enemy steering, sets velocity
	PriorityMotion    = 30  // Velocity integration, after steering
	PriorityFiring    = 40  // Cooldown and projectile spawn requests
	PriorityExpiry    = 50  // Projectile lifetime
	PriorityCollision = 100 // Physics collaborator, after all movement
	PriorityResolver  = 110 // Drains collision events into removal requests
)

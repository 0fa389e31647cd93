package engine

// System is the per-tick unit of game logic
// Systems read and write component data of live entities; structural changes
// (spawn, destroy) go through World.Lifecycle and apply at commit
type System interface {
	// Name identifies the system in logs
	Name() string
	// Priority orders execution, lower values run first
	Priority() int
	// Update runs once per tick; delta time is in Resources.Time
	Update()
}

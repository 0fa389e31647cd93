package system

import (
	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/parameter"
	"github.com/lixenwraith/arena/vmath"
)

// HomingSystem steers enemies toward the player by setting their velocity
// Position is advanced later by MotionSystem
type HomingSystem struct {
	world *engine.World
	speed float64

	playerStore *engine.Store[component.PlayerComponent]
	enemyStore  *engine.Store[component.EnemyComponent]
	bodyStore   *engine.Store[component.BodyComponent]
}

// NewHomingSystem creates a homing system with the given enemy speed
func NewHomingSystem(world *engine.World, speed float64) engine.System {
	return &HomingSystem{
		world: world,
		speed: speed,

		playerStore: world.Components.Player,
		enemyStore:  world.Components.Enemy,
		bodyStore:   world.Components.Body,
	}
}

// Name returns system's name
func (s *HomingSystem) Name() string {
	return "homing"
}

// Priority returns the system's priority
func (s *HomingSystem) Priority() int {
	return parameter.PriorityHoming
}

// Update points every enemy at the player; an enemy on top of the player keeps its velocity
func (s *HomingSystem) Update() {
	player, _, ok := engine.Single(s.playerStore)
	if !ok {
		return
	}
	target, ok := s.bodyStore.GetComponent(player)
	if !ok {
		return
	}

	for _, e := range s.enemyStore.GetAllEntities() {
		body, ok := s.bodyStore.GetComponent(e)
		if !ok {
			continue
		}
		dir, ok := vmath.Direction(body.Position, target.Position)
		if !ok {
			continue
		}
		body.Velocity = dir.Scale(s.speed)
		s.bodyStore.UpdateComponent(e, body)
	}
}

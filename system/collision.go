package system

import (
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/parameter"
	"github.com/lixenwraith/arena/physics"
)

// CollisionSystem feeds every collidable body to the physics collaborator
// and pushes the resulting transitions into the tick's event buffer
// Pending entities are still live and still collide; the resolver treats them as stale
type CollisionSystem struct {
	world   *engine.World
	physics physics.Collaborator
	scratch []physics.Body
}

// NewCollisionSystem creates a collision system over a collaborator
func NewCollisionSystem(world *engine.World, collaborator physics.Collaborator) engine.System {
	return &CollisionSystem{
		world:   world,
		physics: collaborator,
	}
}

// Name returns system's name
func (s *CollisionSystem) Name() string {
	return "collision"
}

// Priority returns the system's priority (after all movement)
func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

// Update runs one detection pass
func (s *CollisionSystem) Update() {
	bodies := s.world.Components.Body
	layers := s.world.Components.Layer

	entities := s.world.Query().
		With(bodies).
		With(layers).
		Execute()

	s.scratch = s.scratch[:0]
	for _, e := range entities {
		body, ok := bodies.GetComponent(e)
		if !ok {
			continue
		}
		layer, ok := layers.GetComponent(e)
		if !ok {
			continue
		}
		s.scratch = append(s.scratch, physics.Body{Entity: e, Body: body, Layer: layer})
	}

	events := s.physics.ComputeOverlaps(s.scratch)
	s.world.Resources.Events.Push(events...)
}

package system

import (
	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/parameter"
)

// MotionSystem integrates velocity for velocity-driven bodies
// Static and position-driven bodies are never moved here
type MotionSystem struct {
	world *engine.World

	bodyStore *engine.Store[component.BodyComponent]
}

// NewMotionSystem creates the velocity integrator
func NewMotionSystem(world *engine.World) engine.System {
	return &MotionSystem{
		world:     world,
		bodyStore: world.Components.Body,
	}
}

// Name returns system's name
func (s *MotionSystem) Name() string {
	return "motion"
}

// Priority returns the system's priority (after steering)
func (s *MotionSystem) Priority() int {
	return parameter.PriorityMotion
}

// Update advances each body by Velocity * dt, rejecting non-finite results
func (s *MotionSystem) Update() {
	dt := s.world.Resources.Time.Seconds()
	if dt <= 0 {
		return
	}

	for _, e := range s.bodyStore.GetAllEntities() {
		body, ok := s.bodyStore.GetComponent(e)
		if !ok || !body.Motion.Integrates() || body.Velocity.IsZero() {
			continue
		}
		next := body.Position.Add(body.Velocity.Scale(dt))
		if !next.IsFinite() {
			continue
		}
		body.Position = next
		s.bodyStore.UpdateComponent(e, body)
	}
}

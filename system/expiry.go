package system

import (
	"sync/atomic"

	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/parameter"
)

// ExpirySystem counts down projectile lifetimes and queues expired projectiles
type ExpirySystem struct {
	world *engine.World

	projectileStore *engine.Store[component.ProjectileComponent]

	statExpired *atomic.Int64
}

// NewExpirySystem creates a new expiry system
func NewExpirySystem(world *engine.World) engine.System {
	return &ExpirySystem{
		world:           world,
		projectileStore: world.Components.Projectile,
		statExpired:     world.Resources.Status.Ints.Get("expiry.expired"),
	}
}

// Name returns system's name
func (s *ExpirySystem) Name() string {
	return "expiry"
}

// Priority returns the system's priority
func (s *ExpirySystem) Priority() int {
	return parameter.PriorityExpiry
}

// Update subtracts dt from every remaining lifetime; at or below zero the projectile is destroyed at commit
func (s *ExpirySystem) Update() {
	dt := s.world.Resources.Time.DeltaTime
	lifecycle := s.world.Lifecycle

	for _, e := range s.projectileStore.GetAllEntities() {
		p, ok := s.projectileStore.GetComponent(e)
		if !ok {
			continue
		}
		p.Remaining -= dt
		s.projectileStore.UpdateComponent(e, p)

		if p.Remaining <= 0 && lifecycle.RequestDestroy(e, engine.ReasonExpired) {
			s.statExpired.Add(1)
		}
	}
}

package system

import (
	"log"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/event"
	"github.com/lixenwraith/arena/parameter"
)

// ResolveStats counts what one Resolve call did
type ResolveStats struct {
	Started  int
	Stopped  int
	Removed  int // New removal requests accepted by the lifecycle
	Stale    int // Started events whose projectile side was already gone or pending
	Filtered int // Started events rejected by the layer check
}

// Resolver turns Started contacts into projectile removal requests
// It never touches stores; every structural change goes through the lifecycle queue
type Resolver struct {
	lifecycle *engine.Lifecycle
	limiter   *rate.Limiter

	statStarted  *atomic.Int64
	statStopped  *atomic.Int64
	statRemoved  *atomic.Int64
	statStale    *atomic.Int64
	statFiltered *atomic.Int64
}

// NewResolver creates a resolver bound to the world's lifecycle
func NewResolver(world *engine.World) *Resolver {
	reg := world.Resources.Status
	return &Resolver{
		lifecycle: world.Lifecycle,
		limiter:   rate.NewLimiter(rate.Limit(parameter.ContactLogRate), parameter.ContactLogBurst),

		statStarted:  reg.Ints.Get("collision.started"),
		statStopped:  reg.Ints.Get("collision.stopped"),
		statRemoved:  reg.Ints.Get("resolver.removed"),
		statStale:    reg.Ints.Get("resolver.stale"),
		statFiltered: reg.Ints.Get("resolver.filtered"),
	}
}

// Resolve processes one tick's events in order
// For a Started pair the projectile side is removed, preferring A; duplicates coalesce in the lifecycle
func (r *Resolver) Resolve(events []event.CollisionEvent) ResolveStats {
	var stats ResolveStats

	for _, ev := range events {
		r.trace(ev)

		if ev.Kind == event.CollisionStopped {
			stats.Stopped++
			continue
		}
		stats.Started++

		if !component.Accepts(ev.A.Layer, ev.B.Layer) {
			stats.Filtered++
			continue
		}

		// A projectile A decides the pair; B is considered only when A is not a projectile
		var target event.Participant
		switch {
		case isProjectile(ev.A):
			target = ev.A
		case isProjectile(ev.B):
			target = ev.B
		default:
			continue
		}
		if r.lifecycle.Stale(target.Entity) {
			stats.Stale++
			continue
		}

		if r.lifecycle.RequestDestroy(target.Entity, engine.ReasonCollision) {
			stats.Removed++
		} else {
			stats.Stale++
		}
	}

	r.statStarted.Add(int64(stats.Started))
	r.statStopped.Add(int64(stats.Stopped))
	r.statRemoved.Add(int64(stats.Removed))
	r.statStale.Add(int64(stats.Stale))
	r.statFiltered.Add(int64(stats.Filtered))
	return stats
}

func isProjectile(p event.Participant) bool {
	return p.Layer.Group == component.GroupProjectile
}

// trace logs contact transitions, sampled so a swarm of contacts cannot flood the log
func (r *Resolver) trace(ev event.CollisionEvent) {
	if r.limiter.Allow() {
		log.Printf("[resolver] %s", ev)
	}
}

// ResolverSystem drains the tick's event buffer exactly once and resolves it
type ResolverSystem struct {
	world    *engine.World
	resolver *Resolver
}

// NewResolverSystem creates the system around a new resolver
func NewResolverSystem(world *engine.World) engine.System {
	return &ResolverSystem{
		world:    world,
		resolver: NewResolver(world),
	}
}

// Name returns system's name
func (s *ResolverSystem) Name() string {
	return "resolver"
}

// Priority returns the system's priority (after the collision system)
func (s *ResolverSystem) Priority() int {
	return parameter.PriorityResolver
}

// Update resolves buffered contacts and plays a hit cue per removal
func (s *ResolverSystem) Update() {
	events := s.world.Resources.Events.Drain()
	if len(events) == 0 {
		return
	}

	stats := s.resolver.Resolve(events)
	for i := 0; i < stats.Removed; i++ {
		s.world.Resources.Audio.Hit()
	}
}

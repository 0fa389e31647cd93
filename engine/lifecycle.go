package engine

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/arena/core"
)

// Reason records why an entity was queued for removal
type Reason uint8

const (
	ReasonRequested Reason = iota // Direct request, no gameplay cause
	ReasonExpired                 // Lifetime ran out
	ReasonCollision               // Removed by the collision resolver
)

func (r Reason) String() string {
	switch r {
	case ReasonExpired:
		return "expired"
	case ReasonCollision:
		return "collision"
	default:
		return "requested"
	}
}

// Removal is a queued destruction, keyed by entity
type Removal struct {
	Entity core.Entity
	Reason Reason
}

// Part is one staged component of a pending spawn, applied at commit
type Part func(e core.Entity)

// With stages component c in store for a spawn
func With[T any](store *Store[T], c T) Part {
	return func(e core.Entity) {
		store.SetComponent(e, c)
	}
}

type pendingSpawn struct {
	entity    core.Entity
	parts     []Part
	cancelled bool
}

// CommitResult reports the structural changes applied by one commit
type CommitResult struct {
	Removed   []Removal
	Spawned   []core.Entity
	Cancelled int
}

// Empty reports whether the commit changed nothing
func (r CommitResult) Empty() bool {
	return len(r.Removed) == 0 && len(r.Spawned) == 0 && r.Cancelled == 0
}

// Lifecycle buffers spawn and destroy requests issued during a tick and applies
// them together at Commit; no system observes a half-destroyed or half-built entity
type Lifecycle struct {
	world *World

	destroyQueue []Removal
	destroySet   map[core.Entity]struct{}

	spawns     []*pendingSpawn
	spawnIndex map[core.Entity]*pendingSpawn

	statSpawned   *atomic.Int64
	statDestroyed *atomic.Int64
	statCancelled *atomic.Int64
}

func newLifecycle(w *World) *Lifecycle {
	reg := w.Resources.Status
	return &Lifecycle{
		world:         w,
		destroySet:    make(map[core.Entity]struct{}),
		spawnIndex:    make(map[core.Entity]*pendingSpawn),
		statSpawned:   reg.Ints.Get("lifecycle.spawned"),
		statDestroyed: reg.Ints.Get("lifecycle.destroyed"),
		statCancelled: reg.Ints.Get("lifecycle.cancelled"),
	}
}

// RequestDestroy queues e for destruction at the next commit
// Returns true only for the first request of a live entity in this tick; repeats,
// null, unknown and already destroyed entities are a no-op. A provisional entity
// is cancelled instead and never materializes
func (l *Lifecycle) RequestDestroy(e core.Entity, reason Reason) bool {
	if e == core.NullEntity {
		return false
	}

	if sp, ok := l.spawnIndex[e]; ok {
		if sp.cancelled {
			return false
		}
		sp.cancelled = true
		return true
	}

	if _, queued := l.destroySet[e]; queued {
		return false
	}
	if !l.world.Alive(e) {
		return false
	}

	l.destroySet[e] = struct{}{}
	l.destroyQueue = append(l.destroyQueue, Removal{Entity: e, Reason: reason})
	return true
}

// Pending reports whether e is live but queued for destruction
// Its components stay intact until commit
func (l *Lifecycle) Pending(e core.Entity) bool {
	_, ok := l.destroySet[e]
	return ok
}

// Stale reports whether e must not be acted on this tick: it is not live
// (null, destroyed, or still provisional) or it is already queued for destruction
func (l *Lifecycle) Stale(e core.Entity) bool {
	return !l.world.Alive(e) || l.Pending(e)
}

// RequestSpawn reserves a provisional entity with staged components
// The id is usable with Attach in the same tick; stores and queries see it only after commit
func (l *Lifecycle) RequestSpawn(parts ...Part) core.Entity {
	e := l.world.reserveEntityID()
	sp := &pendingSpawn{entity: e, parts: append([]Part(nil), parts...)}
	l.spawns = append(l.spawns, sp)
	l.spawnIndex[e] = sp
	return e
}

// Attach stages more components on a provisional entity
// Returns false if e is not an uncancelled pending spawn
func (l *Lifecycle) Attach(e core.Entity, parts ...Part) bool {
	sp, ok := l.spawnIndex[e]
	if !ok || sp.cancelled {
		return false
	}
	sp.parts = append(sp.parts, parts...)
	return true
}

// Provisional reports whether e is a pending, uncancelled spawn
func (l *Lifecycle) Provisional(e core.Entity) bool {
	sp, ok := l.spawnIndex[e]
	return ok && !sp.cancelled
}

// Commit applies every queued destruction, then every queued spawn, in one step
// After it returns, identifiers destroyed in this tick are stale and absent from all stores
func (l *Lifecycle) Commit() CommitResult {
	var result CommitResult

	if len(l.destroyQueue) > 0 {
		doomed := make([]core.Entity, len(l.destroyQueue))
		for i, r := range l.destroyQueue {
			doomed[i] = r.Entity
		}
		l.world.destroyBatch(doomed)
		result.Removed = l.destroyQueue
		l.statDestroyed.Add(int64(len(doomed)))
	}

	for _, sp := range l.spawns {
		if sp.cancelled {
			result.Cancelled++
			continue
		}
		for _, part := range sp.parts {
			part(sp.entity)
		}
		l.world.markAlive(sp.entity)
		result.Spawned = append(result.Spawned, sp.entity)
	}
	l.statSpawned.Add(int64(len(result.Spawned)))
	l.statCancelled.Add(int64(result.Cancelled))

	l.destroyQueue = nil
	clear(l.destroySet)
	l.spawns = nil
	clear(l.spawnIndex)

	if !result.Empty() {
		log.Printf("[lifecycle] commit: removed=%d spawned=%d cancelled=%d", len(result.Removed), len(result.Spawned), result.Cancelled)
	}
	return result
}

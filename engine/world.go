package engine

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/event"
	"github.com/lixenwraith/arena/status"
)

// World contains all entities and their components using typed stores
// It is the entity store owned by the Lifecycle: entities become live and die only at commit
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	Components ComponentStore
	Resources  Resource
	Lifecycle  *Lifecycle

	// Lifecycle registry - every store is cleared of an entity on destruction
	stores []AnyStore

	systems     []System
	updateMutex sync.Mutex
	frame       int64

	statTicks *atomic.Int64
}

// NewWorld creates a world with all component stores, resources and the lifecycle manager
func NewWorld() *World {
	reg := status.NewRegistry()
	w := &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		Components:   newComponentStore(),
		Resources: Resource{
			Time:   &TimeResource{},
			Status: reg,
			Events: event.NewBuffer(),
			Audio:  silentAudio{},
		},
		statTicks: reg.Ints.Get("engine.ticks"),
	}
	w.stores = w.Components.all()
	w.Lifecycle = newLifecycle(w)
	return w
}

// reserveEntityID allocates an id that has never been handed out before
func (w *World) reserveEntityID() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// Alive reports whether the entity has been committed and not yet destroyed
func (w *World) Alive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.alive[e]
	return ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.alive)
}

// markAlive is called by Lifecycle.Commit after an entity's parts are applied
func (w *World) markAlive(e core.Entity) {
	w.mu.Lock()
	w.alive[e] = struct{}{}
	w.mu.Unlock()
}

// destroyBatch removes entities from the alive set and every registered store
// Called only by Lifecycle.Commit
func (w *World) destroyBatch(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}

	w.mu.Lock()
	for _, e := range entities {
		delete(w.alive, e)
	}
	stores := make([]AnyStore, len(w.stores))
	copy(stores, w.stores)
	w.mu.Unlock()

	for _, store := range stores {
		store.RemoveBatch(entities)
	}
}

// AddSystem adds a system to the world and keeps systems sorted by priority
// Systems with equal priority keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// FrameNumber returns the number of the last started tick
func (w *World) FrameNumber() int64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.frame
}

// Tick runs one simulation step: every system in priority order, then the lifecycle commit
// The commit is the single synchronization point for structural changes in a tick
func (w *World) Tick(dt time.Duration) CommitResult {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()

	w.mu.Lock()
	w.frame++
	frame := w.frame
	w.mu.Unlock()

	w.Resources.Time.Update(dt, frame)

	for _, system := range w.Systems() {
		system.Update()
	}

	result := w.Lifecycle.Commit()
	w.statTicks.Add(1)
	return result
}

// RunSafe executes a function while holding the world's update lock
// Use for reads from outside the tick goroutine
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

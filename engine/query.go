package engine

import (
	"slices"
	"sort"

	"github.com/lixenwraith/arena/core"
)

// QueryBuilder provides a fluent interface for querying entities based on component intersection.
// The query optimizes by starting with the smallest store and filtering through larger ones.
type QueryBuilder struct {
	world    *World
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder for finding entities with specific component combinations.
//
// Example:
//
//	entities := world.Query().
//	    With(world.Components.Body).
//	    With(world.Components.Projectile).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world:  w,
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store to the query filter.
// Panics if called after Execute().
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute returns all entities present in every store, in ascending entity order.
// The result is a private copy and stays valid across commits; entities in it may become stale.
// Calling Execute() multiple times returns the cached result.
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	// Smallest store first minimizes HasEntity checks
	sort.Slice(qb.stores, func(i, j int) bool {
		return qb.stores[i].CountEntities() < qb.stores[j].CountEntities()
	})

	candidates := qb.stores[0].GetAllEntities()
	for i := 1; i < len(qb.stores) && len(candidates) > 0; i++ {
		store := qb.stores[i]
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.HasEntity(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
	}

	slices.Sort(candidates)
	qb.results = candidates
	return qb.results
}

// Single returns the only entity holding a component in store
// ok is false when the store is empty or holds more than one entity
func Single[T any](store *Store[T]) (core.Entity, T, bool) {
	var zero T
	entities := store.GetAllEntities()
	if len(entities) != 1 {
		return core.NullEntity, zero, false
	}
	val, ok := store.GetComponent(entities[0])
	if !ok {
		return core.NullEntity, zero, false
	}
	return entities[0], val, true
}

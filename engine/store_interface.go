package engine

import (
	"github.com/lixenwraith/arena/core"
)

// AnyStore provides type-erased operations for lifecycle management
// This interface allows World to manage all stores uniformly
// for operations like entity destruction without knowing the concrete type
type AnyStore interface {
	RemoveBatch(entities []core.Entity)
	HasEntity(e core.Entity) bool
	CountEntities() int
}

// QueryableStore extends AnyStore with the entity listing the query builder intersects
type QueryableStore interface {
	AnyStore
	GetAllEntities() []core.Entity
}

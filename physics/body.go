package physics

import (
	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/event"
)

// Body is the per-tick view of one collidable entity handed to a collaborator
type Body struct {
	Entity core.Entity
	Body   component.BodyComponent
	Layer  component.LayerComponent
}

func (b Body) participant() event.Participant {
	return event.Participant{Entity: b.Entity, Layer: b.Layer}
}

// Collaborator detects contacts between bodies and reports transitions
// Implementations filter pairs symmetrically by group and mask, emit one event per
// pair per transition, and return events in a deterministic order
type Collaborator interface {
	ComputeOverlaps(bodies []Body) []event.CollisionEvent
}

// pairKey identifies an unordered entity pair, lower entity first
type pairKey struct {
	lo, hi core.Entity
}

func makePairKey(a, b core.Entity) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

func (k pairKey) less(o pairKey) bool {
	if k.lo != o.lo {
		return k.lo < o.lo
	}
	return k.hi < o.hi
}

// contact holds the last participant snapshots of an active pair, ordered as the key
type contact struct {
	a, b event.Participant
}

func newContact(x, y event.Participant) contact {
	if x.Entity > y.Entity {
		x, y = y, x
	}
	return contact{a: x, b: y}
}

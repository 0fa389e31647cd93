package event

import (
	"fmt"

	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/core"
)

// CollisionKind is the contact transition reported by the physics collaborator
type CollisionKind uint8

const (
	// CollisionStarted signals a pair began overlapping this tick
	CollisionStarted CollisionKind = iota
	// CollisionStopped signals a pair stopped overlapping this tick
	CollisionStopped
)

func (k CollisionKind) String() string {
	if k == CollisionStarted {
		return "started"
	}
	return "stopped"
}

// Participant is one side of a contact, captured when the event was emitted
// It is a snapshot, not a live reference: the entity may already be pending removal
type Participant struct {
	Entity core.Entity
	Layer  component.LayerComponent
}

func (p Participant) String() string {
	return fmt.Sprintf("%d(%s)", p.Entity, p.Layer.Group)
}

// CollisionEvent is a Started or Stopped transition for one pair
type CollisionEvent struct {
	Kind CollisionKind
	A, B Participant
}

// Started builds a Started event
func Started(a, b Participant) CollisionEvent {
	return CollisionEvent{Kind: CollisionStarted, A: a, B: b}
}

// Stopped builds a Stopped event
func Stopped(a, b Participant) CollisionEvent {
	return CollisionEvent{Kind: CollisionStopped, A: a, B: b}
}

func (e CollisionEvent) String() string {
	return fmt.Sprintf("%s %s<->%s", e.Kind, e.A, e.B)
}

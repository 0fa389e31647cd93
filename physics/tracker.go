package physics

import (
	"slices"

	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/event"
)

// Tracker is the built-in collaborator: pairwise narrow phase plus a set of active pairs
// Each call diffs the current overlap set against the previous one
type Tracker struct {
	active map[pairKey]contact
}

// NewTracker creates a tracker with no active contacts
func NewTracker() *Tracker {
	return &Tracker{active: make(map[pairKey]contact)}
}

// Active returns the number of pairs currently in contact
func (t *Tracker) Active() int {
	return len(t.active)
}

// ComputeOverlaps returns Stopped events for pairs that separated or lost a participant,
// then Started events for new pairs, each group in ascending pair order
func (t *Tracker) ComputeOverlaps(bodies []Body) []event.CollisionEvent {
	sorted := make([]Body, 0, len(bodies))
	seen := make(map[core.Entity]struct{}, len(bodies))
	for _, b := range bodies {
		if b.Entity == core.NullEntity {
			continue
		}
		if _, dup := seen[b.Entity]; dup {
			continue
		}
		seen[b.Entity] = struct{}{}
		sorted = append(sorted, b)
	}
	slices.SortFunc(sorted, func(x, y Body) int {
		switch {
		case x.Entity < y.Entity:
			return -1
		case x.Entity > y.Entity:
			return 1
		}
		return 0
	})

	current := make(map[pairKey]contact)
	var started []pairKey
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			a, b := sorted[i], sorted[j]
			if !component.Accepts(a.Layer, b.Layer) {
				continue
			}
			if !Overlaps(a.Body, b.Body) {
				continue
			}
			key := makePairKey(a.Entity, b.Entity)
			current[key] = newContact(a.participant(), b.participant())
			if _, was := t.active[key]; !was {
				started = append(started, key)
			}
		}
	}

	var stopped []pairKey
	for key := range t.active {
		if _, still := current[key]; !still {
			stopped = append(stopped, key)
		}
	}
	sortKeys(stopped)

	events := make([]event.CollisionEvent, 0, len(stopped)+len(started))
	for _, key := range stopped {
		c := t.active[key]
		// Prefer this tick's snapshot when the participant is still present
		if cur, ok := lastSnapshot(sorted, c); ok {
			c = cur
		}
		events = append(events, event.Stopped(c.a, c.b))
	}
	for _, key := range started {
		c := current[key]
		events = append(events, event.Started(c.a, c.b))
	}

	t.active = current
	return events
}

func lastSnapshot(sorted []Body, c contact) (contact, bool) {
	a, okA := findBody(sorted, c.a.Entity)
	b, okB := findBody(sorted, c.b.Entity)
	if !okA || !okB {
		return c, false
	}
	return newContact(a.participant(), b.participant()), true
}

func findBody(sorted []Body, e core.Entity) (Body, bool) {
	i, ok := slices.BinarySearchFunc(sorted, e, func(b Body, target core.Entity) int {
		switch {
		case b.Entity < target:
			return -1
		case b.Entity > target:
			return 1
		}
		return 0
	})
	if !ok {
		return Body{}, false
	}
	return sorted[i], true
}

func sortKeys(keys []pairKey) {
	slices.SortFunc(keys, func(x, y pairKey) int {
		switch {
		case x.less(y):
			return -1
		case y.less(x):
			return 1
		}
		return 0
	})
}

package physics

import (
	"log"
	"slices"

	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/event"
)

// sensorCollisionType tags every arena shape so a single handler sees all pairs
const sensorCollisionType cp.CollisionType = 1

// chipmunkStep is the fixed step handed to the space; bodies never integrate, so it only drives detection
const chipmunkStep = 1.0 / 60.0

// shapeSpec is what a cp shape was built from; a change forces a rebuild
type shapeSpec struct {
	kind component.ShapeKind
	hx   float64
	hy   float64
}

type chipmunkEntry struct {
	body  *cp.Body
	shape *cp.Shape
	spec  shapeSpec
	layer component.LayerComponent
}

// Chipmunk is a collaborator backed by a Chipmunk2D space
// Every entity becomes a sensor shape on a zero-velocity body teleported to its position each call;
// begin/separate callbacks become Started/Stopped events
type Chipmunk struct {
	space   *cp.Space
	entries map[core.Entity]*chipmunkEntry
	active  map[pairKey]contact

	// Events raised by callbacks, flushed at the end of ComputeOverlaps
	pending []event.CollisionEvent
}

// NewChipmunk creates an empty zero-gravity space with the sensor handler installed
func NewChipmunk() *Chipmunk {
	c := &Chipmunk{
		space:   cp.NewSpace(),
		entries: make(map[core.Entity]*chipmunkEntry),
		active:  make(map[pairKey]contact),
	}
	c.space.SetGravity(cp.Vector{})

	handler := c.space.NewCollisionHandler(sensorCollisionType, sensorCollisionType)
	handler.BeginFunc = c.begin
	handler.SeparateFunc = c.separate
	return c
}

// Active returns the number of pairs currently in contact
func (c *Chipmunk) Active() int {
	return len(c.active)
}

// ComputeOverlaps syncs the space with bodies, steps it once and returns the transitions
// Bodies missing from the list are removed; their open contacts are reported Stopped in this call
func (c *Chipmunk) ComputeOverlaps(bodies []Body) []event.CollisionEvent {
	present := make(map[core.Entity]struct{}, len(bodies))
	for _, b := range bodies {
		if b.Entity == core.NullEntity {
			continue
		}
		if _, dup := present[b.Entity]; dup {
			continue
		}
		present[b.Entity] = struct{}{}
		c.sync(b)
	}

	var departed []core.Entity
	for e := range c.entries {
		if _, ok := present[e]; !ok {
			departed = append(departed, e)
		}
	}
	slices.Sort(departed)
	for _, e := range departed {
		c.remove(e)
	}

	c.space.Step(chipmunkStep)

	events := c.pending
	c.pending = nil
	sortEvents(events)
	return events
}

func (c *Chipmunk) sync(b Body) {
	spec := shapeSpec{kind: b.Body.Shape, hx: b.Body.HalfExtents.X, hy: b.Body.HalfExtents.Y}

	entry, ok := c.entries[b.Entity]
	if ok && entry.spec != spec {
		c.remove(b.Entity)
		ok = false
	}
	if !ok {
		entry = c.add(b.Entity, spec)
	}

	entry.body.SetPosition(cp.Vector{X: b.Body.Position.X, Y: b.Body.Position.Y})
	if entry.layer != b.Layer {
		entry.shape.SetFilter(filterFor(b.Layer))
	}
	entry.layer = b.Layer
}

func (c *Chipmunk) add(e core.Entity, spec shapeSpec) *chipmunkEntry {
	body := c.space.AddBody(cp.NewBody(1, cp.INFINITY))

	var shape *cp.Shape
	switch spec.kind {
	case component.ShapeCircle:
		shape = cp.NewCircle(body, spec.hx, cp.Vector{})
	default:
		shape = cp.NewBox(body, spec.hx*2, spec.hy*2, 0)
	}
	shape.SetSensor(true)
	shape.SetCollisionType(sensorCollisionType)
	shape.SetFilter(filterFor(component.LayerComponent{}))
	shape.UserData = e
	c.space.AddShape(shape)

	entry := &chipmunkEntry{body: body, shape: shape, spec: spec}
	c.entries[e] = entry
	return entry
}

// remove drops the entity's shape and closes its contacts with the last known snapshots
func (c *Chipmunk) remove(e core.Entity) {
	entry, ok := c.entries[e]
	if !ok {
		return
	}
	c.space.RemoveShape(entry.shape)
	c.space.RemoveBody(entry.body)
	delete(c.entries, e)

	// Separate callbacks fired during RemoveShape already closed some pairs
	for key, ct := range c.active {
		if key.lo == e || key.hi == e {
			c.pending = append(c.pending, event.Stopped(ct.a, ct.b))
			delete(c.active, key)
		}
	}
}

func (c *Chipmunk) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b, ok := c.participants(arb)
	if !ok {
		return false
	}
	key := makePairKey(a.Entity, b.Entity)
	if _, open := c.active[key]; open {
		return true
	}
	ct := newContact(a, b)
	c.active[key] = ct
	c.pending = append(c.pending, event.Started(ct.a, ct.b))
	return true
}

func (c *Chipmunk) separate(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
	sa, sb := arb.Shapes()
	ea, okA := sa.UserData.(core.Entity)
	eb, okB := sb.UserData.(core.Entity)
	if !okA || !okB {
		return
	}
	key := makePairKey(ea, eb)
	ct, open := c.active[key]
	if !open {
		return
	}
	// Refresh snapshots for participants still in the space
	if a, b, ok := c.participants(arb); ok {
		ct = newContact(a, b)
	}
	delete(c.active, key)
	c.pending = append(c.pending, event.Stopped(ct.a, ct.b))
}

func (c *Chipmunk) participants(arb *cp.Arbiter) (event.Participant, event.Participant, bool) {
	sa, sb := arb.Shapes()
	ea, okA := sa.UserData.(core.Entity)
	eb, okB := sb.UserData.(core.Entity)
	if !okA || !okB {
		log.Printf("[physics] chipmunk shape without entity data")
		return event.Participant{}, event.Participant{}, false
	}
	entA, okA := c.entries[ea]
	entB, okB := c.entries[eb]
	if !okA || !okB {
		return event.Participant{}, event.Participant{}, false
	}
	return event.Participant{Entity: ea, Layer: entA.layer}, event.Participant{Entity: eb, Layer: entB.layer}, true
}

// filterFor maps a layer onto a Chipmunk filter; Chipmunk rejects a pair unless
// each side's categories intersect the other's mask, the same symmetric rule as component.Accepts
func filterFor(l component.LayerComponent) cp.ShapeFilter {
	return cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: uint(l.Group),
		Mask:       uint(l.Mask),
	}
}

// sortEvents orders Stopped before Started, then by pair
func sortEvents(events []event.CollisionEvent) {
	slices.SortStableFunc(events, func(x, y event.CollisionEvent) int {
		if x.Kind != y.Kind {
			if x.Kind == event.CollisionStopped {
				return -1
			}
			return 1
		}
		kx := makePairKey(x.A.Entity, x.B.Entity)
		ky := makePairKey(y.A.Entity, y.B.Entity)
		switch {
		case kx.less(ky):
			return -1
		case ky.less(kx):
			return 1
		}
		return 0
	})
}

package engine

import (
	"slices"

	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/vmath"
)

// SnapshotItem is the read-only presentation view of one live body
type SnapshotItem struct {
	Entity   core.Entity
	Position vmath.Vec2
	Scale    float64
	Color    core.RGB
}

// Snapshot is exposed once per tick after commit for the render collaborator
type Snapshot struct {
	Frame int64
	Items []SnapshotItem
}

// Snapshot builds the presentation view of every live entity with a body
// Entities without a sprite are reported with their shape size in white
func (w *World) Snapshot() Snapshot {
	bodies := w.Components.Body
	sprites := w.Components.Sprite

	entities := bodies.GetAllEntities()
	slices.Sort(entities)

	snap := Snapshot{
		Frame: w.FrameNumber(),
		Items: make([]SnapshotItem, 0, len(entities)),
	}
	for _, e := range entities {
		if !w.Alive(e) {
			continue
		}
		body, ok := bodies.GetComponent(e)
		if !ok {
			continue
		}
		item := SnapshotItem{
			Entity:   e,
			Position: body.Position,
			Scale:    body.HalfExtents.X * 2,
			Color:    core.RGBWhite,
		}
		if sprite, ok := sprites.GetComponent(e); ok {
			item.Scale = sprite.Scale
			item.Color = sprite.Color
		}
		snap.Items = append(snap.Items, item)
	}
	return snap
}

// Find returns the snapshot item for e
func (s Snapshot) Find(e core.Entity) (SnapshotItem, bool) {
	for _, item := range s.Items {
		if item.Entity == e {
			return item, true
		}
	}
	return SnapshotItem{}, false
}

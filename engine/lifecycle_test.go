package engine

import (
	"testing"

	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/vmath"
)

func spawnEnemy(w *World, pos vmath.Vec2) core.Entity {
	e := w.Lifecycle.RequestSpawn(
		With(w.Components.Body, component.BodyComponent{Position: pos, HalfExtents: vmath.V2(20, 20)}),
		With(w.Components.Layer, component.EnemyLayer()),
		With(w.Components.Enemy, component.EnemyComponent{}),
	)
	w.Lifecycle.Commit()
	return e
}

func TestRequestDestroyIsIdempotent(t *testing.T) {
	w := NewWorld()
	e := spawnEnemy(w, vmath.V2(0, 0))

	if !w.Lifecycle.RequestDestroy(e, ReasonCollision) {
		t.Fatal("first RequestDestroy returned false")
	}
	for i := 0; i < 3; i++ {
		if w.Lifecycle.RequestDestroy(e, ReasonExpired) {
			t.Fatalf("repeat RequestDestroy #%d returned true", i+1)
		}
	}

	result := w.Lifecycle.Commit()
	if len(result.Removed) != 1 {
		t.Fatalf("Removed = %d, want 1", len(result.Removed))
	}
	if result.Removed[0].Reason != ReasonCollision {
		t.Errorf("Reason = %v, want collision", result.Removed[0].Reason)
	}
	if got := w.Resources.Status.Int("lifecycle.destroyed"); got != 1 {
		t.Errorf("lifecycle.destroyed = %d, want 1", got)
	}
}

func TestDestroyIsDeferredUntilCommit(t *testing.T) {
	w := NewWorld()
	e := spawnEnemy(w, vmath.V2(5, 5))

	w.Lifecycle.RequestDestroy(e, ReasonRequested)

	if !w.Alive(e) {
		t.Error("entity dead before commit")
	}
	if !w.Lifecycle.Pending(e) {
		t.Error("entity not reported pending")
	}
	if body, ok := w.Components.Body.GetComponent(e); !ok || body.Position != vmath.V2(5, 5) {
		t.Error("components not intact before commit")
	}

	w.Lifecycle.Commit()

	if w.Alive(e) {
		t.Error("entity alive after commit")
	}
	if w.Lifecycle.Pending(e) {
		t.Error("pending flag survived commit")
	}
	for i, s := range w.stores {
		if s.HasEntity(e) {
			t.Errorf("store %d still holds destroyed entity", i)
		}
	}
	if w.Lifecycle.RequestDestroy(e, ReasonRequested) {
		t.Error("RequestDestroy on stale entity returned true")
	}
}

func TestRequestDestroyIgnoresUnknown(t *testing.T) {
	w := NewWorld()
	if w.Lifecycle.RequestDestroy(core.NullEntity, ReasonRequested) {
		t.Error("null entity accepted")
	}
	if w.Lifecycle.RequestDestroy(12345, ReasonRequested) {
		t.Error("unknown entity accepted")
	}
	if r := w.Lifecycle.Commit(); !r.Empty() {
		t.Errorf("commit not empty: %+v", r)
	}
}

func TestSpawnIsProvisionalUntilCommit(t *testing.T) {
	w := NewWorld()
	e := w.Lifecycle.RequestSpawn(With(w.Components.Enemy, component.EnemyComponent{}))

	if e == core.NullEntity {
		t.Fatal("RequestSpawn returned null entity")
	}
	if w.Alive(e) || w.Components.Enemy.HasEntity(e) {
		t.Fatal("provisional entity visible before commit")
	}
	if !w.Lifecycle.Provisional(e) {
		t.Fatal("entity not provisional")
	}
	if !w.Lifecycle.Attach(e, With(w.Components.Sprite, component.SpriteComponent{Scale: 5})) {
		t.Fatal("Attach to provisional entity failed")
	}

	result := w.Lifecycle.Commit()
	if len(result.Spawned) != 1 || result.Spawned[0] != e {
		t.Fatalf("Spawned = %v, want [%d]", result.Spawned, e)
	}
	if !w.Alive(e) || !w.Components.Enemy.HasEntity(e) || !w.Components.Sprite.HasEntity(e) {
		t.Error("spawned entity incomplete after commit")
	}
	if w.Lifecycle.Attach(e, With(w.Components.Player, component.PlayerComponent{})) {
		t.Error("Attach after commit accepted")
	}
}

func TestDestroyProvisionalCancelsSpawn(t *testing.T) {
	w := NewWorld()
	e := w.Lifecycle.RequestSpawn(With(w.Components.Enemy, component.EnemyComponent{}))

	if !w.Lifecycle.RequestDestroy(e, ReasonRequested) {
		t.Fatal("destroy of provisional entity rejected")
	}
	if w.Lifecycle.RequestDestroy(e, ReasonRequested) {
		t.Error("second destroy of cancelled spawn accepted")
	}
	if w.Lifecycle.Attach(e, With(w.Components.Sprite, component.SpriteComponent{})) {
		t.Error("Attach to cancelled spawn accepted")
	}

	result := w.Lifecycle.Commit()
	if result.Cancelled != 1 || len(result.Spawned) != 0 {
		t.Fatalf("result = %+v, want one cancelled spawn", result)
	}
	if w.Alive(e) || w.Components.Enemy.HasEntity(e) {
		t.Error("cancelled spawn materialized")
	}
}

func TestEntityIDsAreNeverReused(t *testing.T) {
	w := NewWorld()
	seen := make(map[core.Entity]bool)
	for i := 0; i < 50; i++ {
		e := spawnEnemy(w, vmath.V2(0, 0))
		if seen[e] {
			t.Fatalf("entity id %d reused", e)
		}
		seen[e] = true
		w.Lifecycle.RequestDestroy(e, ReasonRequested)
		w.Lifecycle.Commit()
	}
}

func TestCommitDestroysBeforeSpawns(t *testing.T) {
	w := NewWorld()
	old := spawnEnemy(w, vmath.V2(0, 0))

	w.Lifecycle.RequestDestroy(old, ReasonRequested)
	fresh := w.Lifecycle.RequestSpawn(With(w.Components.Enemy, component.EnemyComponent{}))
	result := w.Lifecycle.Commit()

	if len(result.Removed) != 1 || len(result.Spawned) != 1 {
		t.Fatalf("result = %+v", result)
	}
	if w.EntityCount() != 1 || !w.Alive(fresh) || w.Alive(old) {
		t.Error("unexpected live set after mixed commit")
	}
}

func TestStale(t *testing.T) {
	w := NewWorld()
	live := spawnEnemy(w, vmath.V2(0, 0))
	pending := spawnEnemy(w, vmath.V2(1, 0))
	gone := spawnEnemy(w, vmath.V2(2, 0))

	w.Lifecycle.RequestDestroy(gone, ReasonRequested)
	w.Lifecycle.Commit()

	w.Lifecycle.RequestDestroy(pending, ReasonCollision)
	provisional := w.Lifecycle.RequestSpawn(With(w.Components.Enemy, component.EnemyComponent{}))

	tests := []struct {
		name string
		e    core.Entity
		want bool
	}{
		{"live", live, false},
		{"pending", pending, true},
		{"destroyed", gone, true},
		{"provisional", provisional, true},
		{"null", core.NullEntity, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Lifecycle.Stale(tt.e); got != tt.want {
				t.Errorf("Stale(%d) = %v, want %v", tt.e, got, tt.want)
			}
		})
	}

	w.Lifecycle.Commit()
	if w.Lifecycle.Stale(provisional) {
		t.Error("committed spawn still stale")
	}
	if !w.Lifecycle.Stale(pending) {
		t.Error("destroyed entity not stale after commit")
	}
}

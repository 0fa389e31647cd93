package system

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/input"
	"github.com/lixenwraith/arena/vmath"
)

const eps = 1e-9

func near(a, b vmath.Vec2) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestMovement(t *testing.T) {
	diag := 250 / math.Sqrt2

	tests := []struct {
		name string
		keys input.Pressed
		want vmath.Vec2
	}{
		{"none", input.Pressed{}, vmath.V2(0, 0)},
		{"up", input.Pressed{input.KeyUp: true}, vmath.V2(0, 250)},
		{"left", input.Pressed{input.KeyLeft: true}, vmath.V2(-250, 0)},
		{"diagonal is normalized", input.Pressed{input.KeyDown: true, input.KeyRight: true}, vmath.V2(diag, -diag)},
		{"opposites cancel", input.Pressed{input.KeyLeft: true, input.KeyRight: true}, vmath.V2(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWorld()
			player := spawnPlayer(w, vmath.V2(0, 0), time.Second)
			w.AddSystem(NewMovementSystem(w, tt.keys, 250))

			w.Tick(time.Second)

			body, _ := w.Components.Body.GetComponent(player)
			if !near(body.Position, tt.want) || !body.Position.IsFinite() {
				t.Errorf("position = %+v, want %+v", body.Position, tt.want)
			}
		})
	}
}

func TestMovementWithoutPlayer(t *testing.T) {
	w, _ := newTestWorld()
	w.AddSystem(NewMovementSystem(w, input.Pressed{input.KeyUp: true}, 250))
	w.Tick(time.Second)
}

func TestHoming(t *testing.T) {
	w, _ := newTestWorld()
	spawnPlayer(w, vmath.V2(0, 0), time.Second)
	enemy := spawnEnemy(w, vmath.V2(600, 0))
	w.AddSystem(NewHomingSystem(w, 100))

	w.Tick(time.Second / 60)

	body, _ := w.Components.Body.GetComponent(enemy)
	if !near(body.Velocity, vmath.V2(-100, 0)) {
		t.Errorf("velocity = %+v, want (-100, 0)", body.Velocity)
	}
}

func TestHomingCoincidentSkips(t *testing.T) {
	w, _ := newTestWorld()
	spawnPlayer(w, vmath.V2(50, 50), time.Second)
	enemy := spawnEnemy(w, vmath.V2(50, 50))
	w.AddSystem(NewHomingSystem(w, 100))

	w.Tick(time.Second / 60)

	body, _ := w.Components.Body.GetComponent(enemy)
	if !body.Velocity.IsZero() || !body.Velocity.IsFinite() {
		t.Errorf("velocity = %+v, want untouched zero", body.Velocity)
	}
}

func TestHomingAndMotionApproach(t *testing.T) {
	w, _ := newTestWorld()
	spawnPlayer(w, vmath.V2(0, 0), time.Second)
	enemy := spawnEnemy(w, vmath.V2(600, 0))
	w.AddSystem(NewHomingSystem(w, 100))
	w.AddSystem(NewMotionSystem(w))

	for i := 0; i < 3; i++ {
		w.Tick(time.Second)
	}

	body, _ := w.Components.Body.GetComponent(enemy)
	if !near(body.Position, vmath.V2(300, 0)) {
		t.Errorf("position = %+v, want (300, 0)", body.Position)
	}
}

func TestMotionKinds(t *testing.T) {
	tests := []struct {
		motion component.MotionKind
		moves  bool
	}{
		{component.MotionStatic, false},
		{component.MotionKinematicPosition, false},
		{component.MotionKinematicVelocity, true},
		{component.MotionDynamic, true},
	}
	for _, tt := range tests {
		t.Run(tt.motion.String(), func(t *testing.T) {
			w, _ := newTestWorld()
			e := w.Lifecycle.RequestSpawn(engineBody(w, component.BodyComponent{
				Velocity: vmath.V2(10, -4),
				Motion:   tt.motion,
			}))
			w.Lifecycle.Commit()
			w.AddSystem(NewMotionSystem(w))

			w.Tick(500 * time.Millisecond)

			body, _ := w.Components.Body.GetComponent(e)
			want := vmath.V2(0, 0)
			if tt.moves {
				want = vmath.V2(5, -2)
			}
			if !near(body.Position, want) {
				t.Errorf("position = %+v, want %+v", body.Position, want)
			}
		})
	}
}

func TestMotionRejectsNonFinite(t *testing.T) {
	w, _ := newTestWorld()
	e := w.Lifecycle.RequestSpawn(engineBody(w, component.BodyComponent{
		Position: vmath.V2(1, 1),
		Velocity: vmath.V2(math.Inf(1), 0),
		Motion:   component.MotionDynamic,
	}))
	w.Lifecycle.Commit()
	w.AddSystem(NewMotionSystem(w))

	w.Tick(time.Second)

	body, _ := w.Components.Body.GetComponent(e)
	if body.Position != vmath.V2(1, 1) {
		t.Errorf("position = %+v, want unchanged", body.Position)
	}
}

func TestExpiryBoundary(t *testing.T) {
	w, _ := newTestWorld()
	shot := spawnProjectile(w, vmath.V2(0, 0), vmath.Vec2{}, time.Second)
	w.AddSystem(NewExpirySystem(w))

	for tick := 1; tick <= 2; tick++ {
		w.Tick(400 * time.Millisecond)
		if !w.Alive(shot) {
			t.Fatalf("projectile destroyed on tick %d", tick)
		}
	}

	result := w.Tick(400 * time.Millisecond)
	if w.Alive(shot) {
		t.Fatal("projectile alive after tick 3")
	}
	if len(result.Removed) != 1 || result.Removed[0].Reason.String() != "expired" {
		t.Errorf("removed = %+v", result.Removed)
	}
	if got := w.Resources.Status.Int("expiry.expired"); got != 1 {
		t.Errorf("expiry.expired = %d", got)
	}
}

func TestFiringScenario(t *testing.T) {
	w, audio := newTestWorld()
	player := spawnPlayer(w, vmath.V2(0, 0), time.Second)
	spawnEnemy(w, vmath.V2(600, 0))
	w.AddSystem(NewFiringSystem(w, DefaultFiringConfig()))

	result := w.Tick(time.Second)

	if len(result.Spawned) != 1 {
		t.Fatalf("spawned %d projectiles, want 1", len(result.Spawned))
	}
	shot := result.Spawned[0]
	body, ok := w.Components.Body.GetComponent(shot)
	if !ok {
		t.Fatal("projectile has no body")
	}
	if !near(body.Velocity, vmath.V2(300, 0)) {
		t.Errorf("velocity = %+v, want (300, 0)", body.Velocity)
	}
	if body.Position != vmath.V2(0, 0) || body.Shape != component.ShapeCircle || body.Radius() != 2.5 {
		t.Errorf("body = %+v", body)
	}
	proj, _ := w.Components.Projectile.GetComponent(shot)
	if proj.Remaining != time.Second || proj.Owner != player {
		t.Errorf("projectile = %+v", proj)
	}
	layer, _ := w.Components.Layer.GetComponent(shot)
	if layer != component.ProjectileLayer() {
		t.Errorf("layer = %+v", layer)
	}
	sprite, _ := w.Components.Sprite.GetComponent(shot)
	if sprite.Color != core.RGBBlue || sprite.Scale != 5 {
		t.Errorf("sprite = %+v", sprite)
	}
	if audio.fire != 1 {
		t.Errorf("fire cues = %d", audio.fire)
	}
}

func TestFiringCooldownCarry(t *testing.T) {
	w, _ := newTestWorld()
	spawnPlayer(w, vmath.V2(0, 0), time.Second)
	spawnEnemy(w, vmath.V2(600, 0))
	w.AddSystem(NewFiringSystem(w, DefaultFiringConfig()))

	fired := 0
	for i := 0; i < 5; i++ {
		fired += len(w.Tick(600 * time.Millisecond).Spawned)
	}
	// 3.0s elapsed: fires at 1.2s, 2.4s and 3.0s
	if fired != 3 {
		t.Errorf("fired %d times, want 3", fired)
	}
}

func TestFiringSkipsWithoutEnemy(t *testing.T) {
	w, _ := newTestWorld()
	spawnPlayer(w, vmath.V2(0, 0), time.Second)
	w.AddSystem(NewFiringSystem(w, DefaultFiringConfig()))

	result := w.Tick(time.Second)
	if len(result.Spawned) != 0 {
		t.Fatal("fired without an enemy")
	}
	if got := w.Resources.Status.Int("firing.skipped"); got != 1 {
		t.Errorf("firing.skipped = %d", got)
	}
}

func TestFiringSkipsCoincidentEnemy(t *testing.T) {
	w, _ := newTestWorld()
	spawnPlayer(w, vmath.V2(0, 0), time.Second)
	spawnEnemy(w, vmath.V2(0, 0))
	w.AddSystem(NewFiringSystem(w, DefaultFiringConfig()))

	if result := w.Tick(time.Second); len(result.Spawned) != 0 {
		t.Fatal("fired along a zero direction")
	}
}

package system

import (
	"time"

	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/vmath"
)

type countingAudio struct {
	fire, hit int
}

func (a *countingAudio) Fire() { a.fire++ }
func (a *countingAudio) Hit()  { a.hit++ }

func newTestWorld() (*engine.World, *countingAudio) {
	w := engine.NewWorld()
	audio := &countingAudio{}
	w.Resources.Audio = audio
	return w, audio
}

func spawnPlayer(w *engine.World, pos vmath.Vec2, period time.Duration) core.Entity {
	c := w.Components
	e := w.Lifecycle.RequestSpawn(
		engine.With(c.Body, component.BodyComponent{
			Position:    pos,
			HalfExtents: vmath.V2(20, 20),
			Shape:       component.ShapeBox,
			Motion:      component.MotionKinematicPosition,
		}),
		engine.With(c.Layer, component.PlayerLayer()),
		engine.With(c.Player, component.PlayerComponent{Cooldown: component.CooldownTimer{Period: period}}),
	)
	w.Lifecycle.Commit()
	return e
}

func spawnEnemy(w *engine.World, pos vmath.Vec2) core.Entity {
	c := w.Components
	e := w.Lifecycle.RequestSpawn(
		engine.With(c.Body, component.BodyComponent{
			Position:    pos,
			HalfExtents: vmath.V2(20, 20),
			Shape:       component.ShapeBox,
			Motion:      component.MotionKinematicVelocity,
		}),
		engine.With(c.Layer, component.EnemyLayer()),
		engine.With(c.Enemy, component.EnemyComponent{}),
	)
	w.Lifecycle.Commit()
	return e
}

func spawnProjectile(w *engine.World, pos, vel vmath.Vec2, lifetime time.Duration) core.Entity {
	c := w.Components
	e := w.Lifecycle.RequestSpawn(
		engine.With(c.Body, component.BodyComponent{
			Position:    pos,
			Velocity:    vel,
			HalfExtents: vmath.V2(2.5, 2.5),
			Shape:       component.ShapeCircle,
			Motion:      component.MotionKinematicVelocity,
		}),
		engine.With(c.Layer, component.ProjectileLayer()),
		engine.With(c.Projectile, component.ProjectileComponent{Remaining: lifetime}),
	)
	w.Lifecycle.Commit()
	return e
}

func engineBody(w *engine.World, b component.BodyComponent) engine.Part {
	return engine.With(w.Components.Body, b)
}

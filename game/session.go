// Package game assembles a world, its systems and the two actors into a runnable session
package game

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/arena/audio"
	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/config"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/input"
	"github.com/lixenwraith/arena/parameter"
	"github.com/lixenwraith/arena/physics"
	"github.com/lixenwraith/arena/system"
	"github.com/lixenwraith/arena/vmath"
)

// Session owns one world and drives it at a fixed step
type Session struct {
	World  *engine.World
	Player core.Entity
	Enemy  core.Entity

	cfg  config.Config
	step time.Duration
}

// NewCollaborator builds the physics collaborator named by backend
func NewCollaborator(backend string) (physics.Collaborator, error) {
	switch backend {
	case config.BackendTracker, "":
		return physics.NewTracker(), nil
	case config.BackendChipmunk:
		return physics.NewChipmunk(), nil
	default:
		return nil, fmt.Errorf("%w: physics backend %q", config.ErrInvalid, backend)
	}
}

// New creates a session with the player at the origin and the enemy at its start position
// A nil src means no input; nil cues play nothing
func New(cfg config.Config, src input.Source, cues audio.Cues) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	collaborator, err := NewCollaborator(cfg.Physics.Backend)
	if err != nil {
		return nil, err
	}
	if cues == nil {
		cues = audio.Silent{}
	}

	w := engine.NewWorld()
	w.Resources.Audio = cues

	fire := system.DefaultFiringConfig()
	fire.Speed = cfg.Projectile.Speed
	fire.Lifetime = cfg.Projectile.Lifetime

	w.AddSystem(system.NewMovementSystem(w, src, cfg.Player.Speed))
	w.AddSystem(system.NewHomingSystem(w, cfg.Enemy.Speed))
	w.AddSystem(system.NewMotionSystem(w))
	w.AddSystem(system.NewFiringSystem(w, fire))
	w.AddSystem(system.NewExpirySystem(w))
	w.AddSystem(system.NewCollisionSystem(w, collaborator))
	w.AddSystem(system.NewResolverSystem(w))

	s := &Session{
		World: w,
		cfg:   cfg,
		step:  cfg.TickInterval(),
	}
	s.Player = spawnPlayer(w, cfg)
	s.Enemy = spawnEnemy(w, cfg)
	w.Lifecycle.Commit()

	log.Printf("[game] session ready: backend=%s step=%v player=%d enemy=%d",
		cfg.Physics.Backend, s.step, s.Player, s.Enemy)
	return s, nil
}

func spawnPlayer(w *engine.World, cfg config.Config) core.Entity {
	c := w.Components
	return w.Lifecycle.RequestSpawn(
		engine.With(c.Body, component.BodyComponent{
			HalfExtents: vmath.V2(parameter.PlayerHalfExtent, parameter.PlayerHalfExtent),
			Shape:       component.ShapeBox,
			Motion:      component.MotionKinematicPosition,
		}),
		engine.With(c.Layer, component.PlayerLayer()),
		engine.With(c.Player, component.PlayerComponent{
			Cooldown: component.CooldownTimer{Period: cfg.Player.FireCooldown},
		}),
		engine.With(c.Sprite, component.SpriteComponent{Scale: parameter.PlayerScale, Color: core.RGBGreen}),
	)
}

func spawnEnemy(w *engine.World, cfg config.Config) core.Entity {
	c := w.Components
	return w.Lifecycle.RequestSpawn(
		engine.With(c.Body, component.BodyComponent{
			Position:    vmath.V2(cfg.Enemy.StartX, cfg.Enemy.StartY),
			HalfExtents: vmath.V2(parameter.EnemyHalfExtent, parameter.EnemyHalfExtent),
			Shape:       component.ShapeBox,
			Motion:      component.MotionKinematicVelocity,
		}),
		engine.With(c.Layer, component.EnemyLayer()),
		engine.With(c.Enemy, component.EnemyComponent{}),
		engine.With(c.Sprite, component.SpriteComponent{Scale: parameter.EnemyScale, Color: core.RGBRed}),
	)
}

// Step returns the fixed tick duration
func (s *Session) Step() time.Duration {
	return s.step
}

// Tick advances the simulation by one fixed step
func (s *Session) Tick() engine.CommitResult {
	return s.World.Tick(s.step)
}

// Snapshot returns the presentation view of the last committed tick
func (s *Session) Snapshot() engine.Snapshot {
	var snap engine.Snapshot
	s.World.RunSafe(func() {
		snap = s.World.Snapshot()
	})
	return snap
}

package system

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/parameter"
	"github.com/lixenwraith/arena/vmath"
)

// FiringConfig describes the projectile the player fires
type FiringConfig struct {
	Speed    float64
	Lifetime time.Duration
	Radius   float64
	Scale    float64
	Color    core.RGB
}

// DefaultFiringConfig returns the stock projectile
func DefaultFiringConfig() FiringConfig {
	return FiringConfig{
		Speed:    parameter.ProjectileSpeed,
		Lifetime: parameter.ProjectileLifetime,
		Radius:   parameter.ProjectileRadius,
		Scale:    parameter.ProjectileScale,
		Color:    core.RGBBlue,
	}
}

// FiringSystem ticks the player's cooldown and requests a projectile aimed at the enemy
type FiringSystem struct {
	world *engine.World
	cfg   FiringConfig

	playerStore *engine.Store[component.PlayerComponent]
	enemyStore  *engine.Store[component.EnemyComponent]
	bodyStore   *engine.Store[component.BodyComponent]

	statFired   *atomic.Int64
	statSkipped *atomic.Int64
}

// NewFiringSystem creates a new firing system
func NewFiringSystem(world *engine.World, cfg FiringConfig) engine.System {
	reg := world.Resources.Status
	return &FiringSystem{
		world: world,
		cfg:   cfg,

		playerStore: world.Components.Player,
		enemyStore:  world.Components.Enemy,
		bodyStore:   world.Components.Body,

		statFired:   reg.Ints.Get("firing.fired"),
		statSkipped: reg.Ints.Get("firing.skipped"),
	}
}

// Name returns system's name
func (s *FiringSystem) Name() string {
	return "firing"
}

// Priority returns the system's priority
func (s *FiringSystem) Priority() int {
	return parameter.PriorityFiring
}

// Update fires at most once per tick, when the cooldown completes
func (s *FiringSystem) Update() {
	player, pc, ok := engine.Single(s.playerStore)
	if !ok {
		return
	}

	fire := pc.Cooldown.Tick(s.world.Resources.Time.DeltaTime)
	s.playerStore.UpdateComponent(player, pc)
	if !fire {
		return
	}

	origin, ok := s.bodyStore.GetComponent(player)
	if !ok {
		s.statSkipped.Add(1)
		return
	}

	enemy, _, ok := engine.Single(s.enemyStore)
	if !ok {
		s.statSkipped.Add(1)
		return
	}
	target, ok := s.bodyStore.GetComponent(enemy)
	if !ok {
		s.statSkipped.Add(1)
		return
	}

	dir, ok := vmath.Direction(origin.Position, target.Position)
	if !ok {
		s.statSkipped.Add(1)
		return
	}

	projectile := s.spawnProjectile(player, origin.Position, dir)
	s.statFired.Add(1)
	s.world.Resources.Audio.Fire()
	log.Printf("[firing] projectile %d toward enemy %d", projectile, enemy)
}

func (s *FiringSystem) spawnProjectile(owner core.Entity, at, dir vmath.Vec2) core.Entity {
	c := s.world.Components
	return s.world.Lifecycle.RequestSpawn(
		engine.With(c.Body, component.BodyComponent{
			Position:    at,
			Velocity:    dir.Scale(s.cfg.Speed),
			HalfExtents: vmath.V2(s.cfg.Radius, s.cfg.Radius),
			Shape:       component.ShapeCircle,
			Motion:      component.MotionKinematicVelocity,
		}),
		engine.With(c.Layer, component.ProjectileLayer()),
		engine.With(c.Projectile, component.ProjectileComponent{
			Owner:     owner,
			Remaining: s.cfg.Lifetime,
		}),
		engine.With(c.Sprite, component.SpriteComponent{
			Scale: s.cfg.Scale,
			Color: s.cfg.Color,
		}),
	)
}

package system

import (
	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/input"
	"github.com/lixenwraith/arena/parameter"
	"github.com/lixenwraith/arena/vmath"
)

// MovementSystem translates the player by the held direction keys
type MovementSystem struct {
	world *engine.World
	input input.Source
	speed float64

	playerStore *engine.Store[component.PlayerComponent]
	bodyStore   *engine.Store[component.BodyComponent]
}

// NewMovementSystem creates a movement system reading from src at speed world units per second
func NewMovementSystem(world *engine.World, src input.Source, speed float64) engine.System {
	return &MovementSystem{
		world: world,
		input: src,
		speed: speed,

		playerStore: world.Components.Player,
		bodyStore:   world.Components.Body,
	}
}

// Name returns system's name
func (s *MovementSystem) Name() string {
	return "movement"
}

// Priority returns the system's priority
func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

// Update moves the player; opposite keys cancel and diagonals are not faster
func (s *MovementSystem) Update() {
	if s.input == nil {
		return
	}

	player, _, ok := engine.Single(s.playerStore)
	if !ok {
		return
	}
	body, ok := s.bodyStore.GetComponent(player)
	if !ok {
		return
	}

	dir, ok := heldDirection(s.input).TryNormalize()
	if !ok {
		return
	}

	body.Position = body.Position.Add(dir.Scale(s.speed * s.world.Resources.Time.Seconds()))
	s.bodyStore.UpdateComponent(player, body)
}

// heldDirection sums the held keys into a raw direction, +Y up
func heldDirection(src input.Source) vmath.Vec2 {
	var dir vmath.Vec2
	if src.IsPressed(input.KeyUp) {
		dir.Y++
	}
	if src.IsPressed(input.KeyDown) {
		dir.Y--
	}
	if src.IsPressed(input.KeyLeft) {
		dir.X--
	}
	if src.IsPressed(input.KeyRight) {
		dir.X++
	}
	return dir
}

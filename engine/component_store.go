package engine

import (
	"github.com/lixenwraith/arena/component"
)

// ComponentStore provides cached pointers to the typed component stores
// Initialized once by NewWorld; pointers remain valid for the world's lifetime
type ComponentStore struct {
	// Spatial
	Body  *Store[component.BodyComponent]
	Layer *Store[component.LayerComponent]

	// Gameplay
	Player     *Store[component.PlayerComponent]
	Enemy      *Store[component.EnemyComponent]
	Projectile *Store[component.ProjectileComponent]

	// Presentation
	Sprite *Store[component.SpriteComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Body:       NewStore[component.BodyComponent](),
		Layer:      NewStore[component.LayerComponent](),
		Player:     NewStore[component.PlayerComponent](),
		Enemy:      NewStore[component.EnemyComponent](),
		Projectile: NewStore[component.ProjectileComponent](),
		Sprite:     NewStore[component.SpriteComponent](),
	}
}

// all lists every store for uniform destruction
func (c ComponentStore) all() []AnyStore {
	return []AnyStore{
		c.Body,
		c.Layer,
		c.Player,
		c.Enemy,
		c.Projectile,
		c.Sprite,
	}
}

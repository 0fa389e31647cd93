package component

import "strings"

// Group is the collision category an entity belongs to
type Group uint8

const (
	GroupPlayer Group = 1 << iota
	GroupEnemy
	GroupProjectile
)

// String returns the group name for logs
func (g Group) String() string {
	switch g {
	case GroupPlayer:
		return "player"
	case GroupEnemy:
		return "enemy"
	case GroupProjectile:
		return "projectile"
	default:
		return "none"
	}
}

// Mask is the set of groups an entity can collide with
type Mask uint8

// MaskOf builds a mask containing the given groups
func MaskOf(groups ...Group) Mask {
	var m Mask
	for _, g := range groups {
		m |= Mask(g)
	}
	return m
}

// Has reports whether g is in the mask
func (m Mask) Has(g Group) bool {
	return g != 0 && m&Mask(g) != 0
}

// With returns the mask with g added
func (m Mask) With(g Group) Mask {
	return m | Mask(g)
}

// String lists the groups in the mask
func (m Mask) String() string {
	var parts []string
	for _, g := range []Group{GroupPlayer, GroupEnemy, GroupProjectile} {
		if m.Has(g) {
			parts = append(parts, g.String())
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// LayerComponent tags an entity with its collision group and mask
type LayerComponent struct {
	Group Group
	Mask  Mask
}

// Accepts reports whether a pair passes symmetric group/mask filtering
func Accepts(a, b LayerComponent) bool {
	return a.Mask.Has(b.Group) && b.Mask.Has(a.Group)
}

// PlayerLayer collides with enemies only
func PlayerLayer() LayerComponent {
	return LayerComponent{Group: GroupPlayer, Mask: MaskOf(GroupEnemy)}
}

// EnemyLayer collides with everything
func EnemyLayer() LayerComponent {
	return LayerComponent{Group: GroupEnemy, Mask: MaskOf(GroupPlayer, GroupEnemy, GroupProjectile)}
}

// ProjectileLayer collides with enemies only
func ProjectileLayer() LayerComponent {
	return LayerComponent{Group: GroupProjectile, Mask: MaskOf(GroupEnemy)}
}

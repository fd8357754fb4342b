// Package shooter implements the per-frame simulation of a small arcade
// shooter: a ship steered inside a bounded play-field that fires lasers
// upward. Hosts feed key state in, call Game.Step once per frame and render
// what they read back out.
package shooter

import "github.com/plus3/invaders/ecs"

// Position is a point on the play-field. The origin is the field's centre and
// Y grows upward. Z orders sprites for drawing and is never integrated.
type Position struct {
	X, Y, Z float64
}

// Velocity is a steering direction, not a speed. MovementSystem scales it by
// Config.BaseSpeed and Config.Timestep.
type Velocity struct {
	X, Y float64
}

// Role tags what an entity is; role-specific systems filter on it.
type Role uint8

const (
	RolePlayer Role = iota + 1
	RoleProjectile
)

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// MovementPolicy controls automatic removal.
type MovementPolicy struct {
	// AutoDespawn marks entities LifetimeSystem removes once they leave the
	// top of the play-field.
	AutoDespawn bool
}

// SpriteKind is the visual handle hosts resolve to a texture, colour or glyph.
type SpriteKind uint8

const (
	SpriteShip SpriteKind = iota + 1
	SpriteLaser
)

func (k SpriteKind) String() string {
	switch k {
	case SpriteShip:
		return "ship"
	case SpriteLaser:
		return "laser"
	default:
		return "none"
	}
}

// Sprite attaches a visual handle to an entity. It has no bearing on the
// simulation.
type Sprite struct {
	Kind SpriteKind
}

// body is the projection every simulation system works on.
type body struct {
	ecs.EntityId
	*Position
	*Velocity
	*Role
	*MovementPolicy
}

// RegisterComponents registers every component type the simulation spawns.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Role](registry)
	ecs.RegisterComponent[MovementPolicy](registry)
	ecs.RegisterComponent[Sprite](registry)
}

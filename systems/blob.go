// Package systems contains the per-entity simulation systems: physics,
// collision, lifecycle, AI, melee and pickups.
package systems

import (
	"github.com/pthm-cable/blobarena/components"
	"github.com/pthm-cable/blobarena/config"
)

// Blob is a view of one entity's components. The pointers refer into ECS
// storage and stay valid until the next structural change to the world.
type Blob struct {
	ID    *components.Identity
	Pos   *components.Position
	Vel   *components.Velocity
	Body  *components.Body
	Life  *components.Lifecycle
	Prog  *components.Progression
	Ctl   *components.Control
	Armor *components.Armor
	Brain *components.Brain // nil for human-controlled entities
}

// Alive reports whether the entity takes part in physics and collision.
func (b Blob) Alive() bool {
	return b.Life.Alive
}

// Engageable reports whether the entity can inflict or receive eat,
// bounce and attack outcomes.
func (b Blob) Engageable() bool {
	return b.Life.Alive && !b.Life.Invulnerable()
}

// Same reports whether two views refer to the same entity.
func (b Blob) Same(o Blob) bool {
	return b.ID.ID == o.ID.ID
}

// World holds the immutable per-session arena geometry.
type World struct {
	Width, Height float64
	Gravity       float64
	FloorY        float64
	Platforms     []config.Platform
}

// WorldFromConfig builds the arena from derived config values.
func WorldFromConfig(cfg *config.Config) World {
	return World{
		Width:     cfg.Derived.WorldW,
		Height:    cfg.Derived.WorldH,
		Gravity:   cfg.World.Gravity,
		FloorY:    cfg.Derived.FloorY,
		Platforms: cfg.Derived.Platforms,
	}
}

// kindTable returns the constants for an entity kind. Shards use the
// player table.
func kindTable(cfg *config.Config, k components.Kind) *config.KindConfig {
	if k == components.KindNPC {
		return &cfg.Kinds.NPC
	}
	return &cfg.Kinds.Player
}

// Package components defines ECS components for the arena simulation.
package components

import (
	"math"

	"github.com/pthm-cable/blobarena/config"
)

// Kind is the closed set of entity variants.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindNPC
	KindShard // player-controlled fragment of a split giant
)

// String returns the display name for a Kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindNPC:
		return "npc"
	case KindShard:
		return "shard"
	}
	return "unknown"
}

// Human reports whether the kind is driven by an input slot.
func (k Kind) Human() bool {
	return k == KindPlayer || k == KindShard
}

// NoSlot marks an entity without a control slot or gamepad.
const NoSlot = -1

// Identity holds immutable per-entity facts.
type Identity struct {
	ID          int
	Kind        Kind
	ControlSlot int // groups shards back to their input; NoSlot for NPCs
	Color       config.RGBA
}

// Lifecycle tracks the alive/dead-respawning state machine.
type Lifecycle struct {
	Alive        bool
	RespawnTimer float64 // counts down while dead; +Inf means removed for good
	InvulnTimer  float64 // counts down while alive
}

// Removed reports whether the entity is permanently out.
func (l *Lifecycle) Removed() bool {
	return !l.Alive && math.IsInf(l.RespawnTimer, 1)
}

// Invulnerable reports whether the grace window is still running.
func (l *Lifecycle) Invulnerable() bool {
	return l.InvulnTimer > 0
}

// Progression holds eat count and the derived evolution stage.
type Progression struct {
	EatenCount int
	Stage      int
}

// Control holds input bindings and edge-detection state.
type Control struct {
	Keymap         config.Keymap
	Gamepad        int // NoSlot when unbound
	Facing         int // +1 right, -1 left
	JumpHeld       bool
	AttackHeld     bool
	AttackTimer    float64 // visual swing time left
	AttackCooldown float64
}

// Armor holds equipment state.
type Armor struct {
	Has  bool
	Side int // attack direction it blocks: -1 from the left, +1 from the right
}

// Brain holds NPC scratch state. Only the AI policy mutates it.
type Brain struct {
	JumpCooldown float64
	RoamDir      int
	RoamTimer    float64
}

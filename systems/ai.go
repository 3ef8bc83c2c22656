package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/blobarena/components"
	"github.com/pthm-cable/blobarena/config"
	"github.com/pthm-cable/blobarena/input"
)

// AISystem produces intents for NPCs: chase the nearest alive entity, jump
// at targets overhead, hop now and then, and roam when idle.
type AISystem struct {
	cfg *config.AIConfig
}

// NewAISystem creates a new AI system.
func NewAISystem(cfg *config.Config) *AISystem {
	return &AISystem{cfg: &cfg.AI}
}

// NewBrain returns freshly randomized scratch state.
func (s *AISystem) NewBrain(rng *rand.Rand) components.Brain {
	return components.Brain{
		JumpCooldown: rng.Float64() * s.cfg.InitialCooldown,
		RoamDir:      coinSign(rng),
		RoamTimer:    uniform(rng, s.cfg.RoamDurationMin, s.cfg.RoamDurationMax),
	}
}

// Target returns the alive entity other than self minimizing
// |dx| + w·|dy|. Ties keep the earliest in roster order.
func (s *AISystem) Target(self Blob, roster []Blob) (Blob, bool) {
	var best Blob
	bestDist := math.Inf(1)
	found := false
	for _, other := range roster {
		if other.Same(self) || !other.Alive() {
			continue
		}
		d := math.Abs(other.Pos.X-self.Pos.X) + math.Abs(other.Pos.Y-self.Pos.Y)*s.cfg.VerticalWeight
		if d < bestDist {
			best, bestDist, found = other, d, true
		}
	}
	return best, found
}

// Decide returns this tick's intent for an NPC and advances its brain
// timers. With no other entity alive it returns a neutral intent and leaves
// the brain untouched.
func (s *AISystem) Decide(self Blob, roster []Blob, dt float64, rng *rand.Rand) input.Intent {
	var in input.Intent
	brain := self.Brain
	if brain == nil {
		return in
	}

	target, ok := s.Target(self, roster)
	if !ok {
		return in
	}

	dx := target.Pos.X - self.Pos.X
	if math.Abs(dx) > s.cfg.MoveDeadzone {
		in.Move = signOf(dx)
	}

	brain.JumpCooldown -= dt
	brain.RoamTimer -= dt
	if brain.RoamTimer <= 0 {
		brain.RoamTimer = uniform(rng, s.cfg.RoamDurationMin, s.cfg.RoamDurationMax)
		brain.RoamDir = coinSign(rng)
	}

	overhead := target.Pos.Y < self.Pos.Y-s.cfg.JumpHeight
	if math.Abs(dx) < s.cfg.JumpReach && overhead && brain.JumpCooldown <= 0 {
		in.Jump = true
		brain.JumpCooldown = uniform(rng, s.cfg.JumpCooldownMin, s.cfg.JumpCooldownMax)
	} else if self.Body.OnGround && brain.JumpCooldown <= -s.cfg.HopGrace && rng.Float64() < s.cfg.HopChance {
		in.Jump = true
		brain.JumpCooldown = uniform(rng, s.cfg.HopCooldownMin, s.cfg.HopCooldownMax)
	}

	if in.Move == 0 && rng.Float64() < s.cfg.RoamChance {
		in.Move = brain.RoamDir
	}
	return in
}

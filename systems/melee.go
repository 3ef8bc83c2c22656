package systems

import (
	"github.com/pthm-cable/blobarena/config"
	"github.com/pthm-cable/blobarena/input"
)

// Strike reports the result of one attack intent.
type Strike struct {
	Swung   bool // a swing was triggered and consumed
	Hit     bool
	Blocked bool
	Target  Blob // valid when Hit or Blocked
	Eat     EatResult
}

// MeleeSystem resolves evolved blobs' melee swings.
type MeleeSystem struct {
	cfg  *config.MeleeConfig
	life *LifecycleSystem
}

// NewMeleeSystem creates a new melee system.
func NewMeleeSystem(cfg *config.Config, life *LifecycleSystem) *MeleeSystem {
	return &MeleeSystem{cfg: &cfg.Melee, life: life}
}

// Attack handles the attack intent of one blob. A swing fires on the
// rising edge of the attack input once the blob has evolved far enough and
// its cooldown has run out; the swing is consumed whether or not anything
// is in reach. The nearest engageable blob in front, within reach and
// inside the vertical band is eaten unless its armor faces the attacker.
func (s *MeleeSystem) Attack(attacker Blob, roster []Blob, in input.Intent) Strike {
	ctl := attacker.Ctl
	rising := in.Attack && !ctl.AttackHeld
	ctl.AttackHeld = in.Attack

	if !s.cfg.Enabled || !attacker.Alive() || !rising {
		return Strike{}
	}
	if attacker.Prog.Stage < s.cfg.MinStage || ctl.AttackCooldown > 0 {
		return Strike{}
	}

	ctl.AttackTimer = s.cfg.SwingTime
	ctl.AttackCooldown = s.cfg.Cooldown
	strike := Strike{Swung: true}

	if attacker.Life.Invulnerable() {
		return strike
	}

	target, ok := s.findTarget(attacker, roster)
	if !ok {
		return strike
	}
	strike.Target = target

	incomingSide := 1
	if attacker.Pos.X < target.Pos.X {
		incomingSide = -1
	}
	if target.Armor.Has && target.Armor.Side == incomingSide {
		strike.Blocked = true
		return strike
	}

	strike.Hit = true
	strike.Eat = s.life.Eat(attacker, target, EatOptions{})
	return strike
}

func (s *MeleeSystem) findTarget(attacker Blob, roster []Blob) (Blob, bool) {
	var best Blob
	bestDist := 0.0
	found := false

	r := attacker.Body.Radius
	reach := r + s.cfg.Reach
	band := r * s.cfg.VerticalBand
	facing := float64(attacker.Ctl.Facing)

	for _, other := range roster {
		if other.Same(attacker) || !other.Engageable() {
			continue
		}
		dx := other.Pos.X - attacker.Pos.X
		dy := other.Pos.Y - attacker.Pos.Y
		if dx*facing <= 0 || dx*facing > reach {
			continue
		}
		if dy < -band || dy > band {
			continue
		}
		d := distance(attacker.Pos.X, attacker.Pos.Y, other.Pos.X, other.Pos.Y)
		if !found || d < bestDist {
			best, bestDist, found = other, d, true
		}
	}
	return best, found
}

package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/blobarena/components"
	"github.com/pthm-cable/blobarena/config"
)

// EatOptions modifies how a victim leaves play.
type EatOptions struct {
	Permanent bool // remove without respawn
}

// EatResult reports what an eat did.
type EatResult struct {
	VictimMass float64
	StageUp    bool
	Removed    bool // victim will never respawn
	Split      bool // victim qualifies for a giant split
}

// LifecycleSystem owns elimination, respawn and evolution.
type LifecycleSystem struct {
	cfg   *config.Config
	world World
}

// NewLifecycleSystem creates a new lifecycle system.
func NewLifecycleSystem(cfg *config.Config, world World) *LifecycleSystem {
	return &LifecycleSystem{cfg: cfg, world: world}
}

// StageFor returns the number of thresholds reached by an eaten count.
func StageFor(thresholds []int, eatenCount int) int {
	stage := 0
	for _, t := range thresholds {
		if eatenCount >= t {
			stage++
		}
	}
	return stage
}

// RespawnTime returns the kind-dependent respawn delay.
func (l *LifecycleSystem) RespawnTime(k components.Kind) float64 {
	return kindTable(l.cfg, k).RespawnTime
}

// ScheduleRespawn takes a victim out of play until its timer runs out.
func (l *LifecycleSystem) ScheduleRespawn(victim Blob) {
	victim.Life.Alive = false
	victim.Life.RespawnTimer = l.RespawnTime(victim.ID.Kind)
}

// RemoveWithoutRespawn takes a victim out of play for good.
func RemoveWithoutRespawn(victim Blob) {
	victim.Life.Alive = false
	victim.Life.RespawnTimer = math.Inf(1)
}

// Eat transfers the victim's mass and progression to the eater and takes
// the victim out of play.
func (l *LifecycleSystem) Eat(eater, victim Blob, opts EatOptions) EatResult {
	res := EatResult{VictimMass: victim.Body.Mass}

	split := l.cfg.Split
	if split.Enabled && victim.ID.Kind.Human() && victim.Body.Radius >= split.MinVictimRadius {
		res.Split = true
		opts.Permanent = true
	}

	if opts.Permanent {
		RemoveWithoutRespawn(victim)
		res.Removed = true
	} else {
		l.ScheduleRespawn(victim)
	}

	eater.Body.Grow(res.VictimMass)
	eater.Prog.EatenCount++

	evo := &l.cfg.Evolution
	before := eater.Prog.Stage
	eater.Prog.Stage = StageFor(evo.Thresholds, eater.Prog.EatenCount)
	res.StageUp = eater.Prog.Stage > before

	// Bigger eaters get a smaller hop.
	eater.Vel.Y = -math.Max(evo.EatBoostMin, evo.EatBoostBase-eater.Body.Radius*evo.EatBoostScale)
	if res.StageUp {
		eater.Vel.Y -= evo.PopKick
	}
	return res
}

// Tick advances one entity's timers. Dead entities count down and respawn
// at or below zero; alive entities count down invulnerability and attack
// timers. Returns true if the entity respawned this call.
func (l *LifecycleSystem) Tick(b Blob, dt float64, rng *rand.Rand) bool {
	life := b.Life
	if !life.Alive {
		if math.IsInf(life.RespawnTimer, 1) {
			return false
		}
		life.RespawnTimer -= dt
		if life.RespawnTimer <= 0 {
			l.Respawn(b, rng)
			return true
		}
		return false
	}

	if life.InvulnTimer > 0 {
		life.InvulnTimer -= dt
	}
	ctl := b.Ctl
	if ctl.AttackTimer > 0 {
		ctl.AttackTimer = math.Max(0, ctl.AttackTimer-dt)
	}
	if ctl.AttackCooldown > 0 {
		ctl.AttackCooldown -= dt
	}
	return false
}

// Respawn brings an entity back at base size with a short grace window.
// Humans drop in from a slot-indexed spot near the top; NPCs appear on the
// floor at a random position.
func (l *LifecycleSystem) Respawn(b Blob, rng *rand.Rand) {
	b.Life.Alive = true
	b.Life.RespawnTimer = 0
	b.Life.InvulnTimer = l.cfg.Lifecycle.Invulnerability

	b.Vel.X, b.Vel.Y = 0, 0
	b.Body.OnGround = false
	b.Body.Reset()

	b.Prog.EatenCount = 0
	b.Prog.Stage = 0

	ctl := b.Ctl
	ctl.JumpHeld = false
	ctl.AttackHeld = false
	ctl.AttackTimer = 0
	ctl.AttackCooldown = 0
	ctl.Facing = 1

	b.Armor.Has = false
	b.Armor.Side = 0

	if b.ID.Kind.Human() {
		b.Pos.X, b.Pos.Y = l.PlayerSpawn(b.ID.ControlSlot, b.Body.Radius)
		return
	}

	margin := l.cfg.Lifecycle.SpawnMargin
	b.Pos.X = margin + rng.Float64()*(l.world.Width-2*margin)
	b.Pos.Y = l.world.FloorY - b.Body.Radius
	b.Body.OnGround = true
}

// PlayerSpawn returns the drop-in point for a control slot.
func (l *LifecycleSystem) PlayerSpawn(slot int, radius float64) (x, y float64) {
	if slot < 0 {
		slot = 0
	}
	players := l.cfg.Roster.Players
	spacing := (l.world.Width - 200) / math.Max(1, float64(players-1))
	return 100 + float64(slot)*spacing, radius + 8
}

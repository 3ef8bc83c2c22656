package systems

import (
	"math/rand"

	"github.com/pthm-cable/blobarena/config"
)

// Pickup is the single armor item. It alternates between active and a
// respawn countdown independently of any entity.
type Pickup struct {
	X, Y         float64
	Radius       float64
	Active       bool
	RespawnTimer float64
	Phase        float64 // bob animation
}

// PickupSystem places the armor pickup and hands it out.
type PickupSystem struct {
	cfg   *config.PickupConfig
	world World
}

// NewPickupSystem creates a new pickup system.
func NewPickupSystem(cfg *config.Config, world World) *PickupSystem {
	return &PickupSystem{cfg: &cfg.Pickup, world: world}
}

// New returns an active pickup at a random spot.
func (s *PickupSystem) New(rng *rand.Rand) Pickup {
	p := Pickup{Radius: s.cfg.Radius}
	s.Place(&p, rng)
	return p
}

// Place moves the pickup to a random platform or floor spot and activates
// it. Platforms are chosen with the configured probability.
func (s *PickupSystem) Place(p *Pickup, rng *rand.Rand) {
	p.Active = true
	p.RespawnTimer = 0

	plats := s.world.Platforms
	if len(plats) > 0 && rng.Float64() < s.cfg.PlatformChance {
		pl := plats[rng.Intn(len(plats))]
		span := pl.W/2 - s.cfg.EdgeMargin
		if span < 0 {
			span = 0
		}
		p.X = pl.X + uniform(rng, -span, span)
		p.Y = pl.Top() - p.Radius - s.cfg.Hover
		return
	}

	m := s.cfg.EdgeMargin + p.Radius
	p.X = uniform(rng, m, s.world.Width-m)
	p.Y = s.world.FloorY - p.Radius - s.cfg.Hover
}

// Update advances the pickup by dt and returns the roster index of the
// entity that claimed it this tick, or -1. At most one claim happens per
// tick; the first qualifying entity in roster order wins.
func (s *PickupSystem) Update(p *Pickup, roster []Blob, dt float64, rng *rand.Rand) int {
	if !s.cfg.Enabled {
		return -1
	}
	p.Phase += dt * s.cfg.BobSpeed

	if !p.Active {
		p.RespawnTimer -= dt
		if p.RespawnTimer <= 0 {
			s.Place(p, rng)
		}
		return -1
	}

	for i, b := range roster {
		if !b.Alive() {
			continue
		}
		reach := b.Body.Radius + p.Radius + s.cfg.ClaimMargin
		if distance(b.Pos.X, b.Pos.Y, p.X, p.Y) > reach {
			continue
		}
		b.Armor.Has = true
		b.Armor.Side = b.Ctl.Facing
		p.Active = false
		p.RespawnTimer = s.cfg.RespawnTime
		return i
	}
	return -1
}

package systems

import (
	"math"

	"github.com/pthm-cable/blobarena/config"
)

// Outcome classifies a pairwise contact.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeBounce
	OutcomeEat
)

// String returns the name of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeBounce:
		return "bounce"
	case OutcomeEat:
		return "eat"
	}
	return "none"
}

// Contact is the result of resolving one pair.
type Contact struct {
	Outcome Outcome
	Eater   Blob // set for OutcomeEat
	Victim  Blob // set for OutcomeEat
	Eat     EatResult
}

// CollisionSystem resolves blob-vs-blob contact.
type CollisionSystem struct {
	phys *config.PhysicsConfig
	life *LifecycleSystem
}

// NewCollisionSystem creates a new collision system.
func NewCollisionSystem(cfg *config.Config, life *LifecycleSystem) *CollisionSystem {
	return &CollisionSystem{phys: &cfg.Physics, life: life}
}

// Stomps reports whether a lands on b: falling fast and clearly above it.
func (s *CollisionSystem) Stomps(a, b Blob) bool {
	return a.Vel.Y > s.phys.StompSpeed && a.Pos.Y < b.Pos.Y-b.Body.Radius*s.phys.StompHeight
}

// Resolve handles one unordered pair. Dead or invulnerable pairs, discs
// that do not overlap and exactly coincident centers are left untouched.
// Overlapping discs are pushed apart evenly along the normal; then a lone
// stomper eats the other, otherwise the two swap velocities with energy loss.
func (s *CollisionSystem) Resolve(a, b Blob) Contact {
	if a.Same(b) || !a.Engageable() || !b.Engageable() {
		return Contact{}
	}

	dx := b.Pos.X - a.Pos.X
	dy := b.Pos.Y - a.Pos.Y
	dist := math.Hypot(dx, dy)
	minDist := a.Body.Radius + b.Body.Radius
	if dist >= minDist || dist == 0 {
		return Contact{}
	}

	half := (minDist - dist) * 0.5
	nx, ny := dx/dist, dy/dist
	a.Pos.X -= nx * half
	a.Pos.Y -= ny * half
	b.Pos.X += nx * half
	b.Pos.Y += ny * half

	aStomp := s.Stomps(a, b)
	bStomp := s.Stomps(b, a)

	switch {
	case aStomp && !bStomp:
		return Contact{Outcome: OutcomeEat, Eater: a, Victim: b, Eat: s.life.Eat(a, b, EatOptions{})}
	case bStomp && !aStomp:
		return Contact{Outcome: OutcomeEat, Eater: b, Victim: a, Eat: s.life.Eat(b, a, EatOptions{})}
	}

	k := s.phys.BounceRestitution
	avx, avy := a.Vel.X, a.Vel.Y
	a.Vel.X, a.Vel.Y = b.Vel.X*k, b.Vel.Y*k
	b.Vel.X, b.Vel.Y = avx*k, avy*k
	return Contact{Outcome: OutcomeBounce}
}

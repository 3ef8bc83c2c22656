package components

import "math"

// Body holds the physical disc of an entity.
// Mass and Radius are kept in sync: Radius == sqrt(Mass).
type Body struct {
	Radius     float64
	BaseRadius float64
	Mass       float64
	OnGround   bool
}

// NewBody returns a body at its base size.
func NewBody(baseRadius float64) Body {
	return Body{
		Radius:     baseRadius,
		BaseRadius: baseRadius,
		Mass:       baseRadius * baseRadius,
	}
}

// Grow adds mass and recomputes the radius.
func (b *Body) Grow(mass float64) {
	b.Mass += mass
	b.Radius = math.Sqrt(b.Mass)
}

// Reset restores the base size.
func (b *Body) Reset() {
	b.Radius = b.BaseRadius
	b.Mass = b.BaseRadius * b.BaseRadius
}

// SetBase replaces the base size and resets to it.
func (b *Body) SetBase(baseRadius float64) {
	b.BaseRadius = baseRadius
	b.Reset()
}

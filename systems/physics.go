package systems

import (
	"math"

	"github.com/pthm-cable/blobarena/config"
	"github.com/pthm-cable/blobarena/input"
)

// PhysicsSystem integrates alive entities and resolves world, floor and
// platform contact.
type PhysicsSystem struct {
	cfg   *config.Config
	world World
}

// NewPhysicsSystem creates a new physics system.
func NewPhysicsSystem(cfg *config.Config, world World) *PhysicsSystem {
	return &PhysicsSystem{cfg: cfg, world: world}
}

// MaxSpeed returns the horizontal speed cap for a blob; bigger blobs are slower.
func (s *PhysicsSystem) MaxSpeed(b Blob) float64 {
	kt := kindTable(s.cfg, b.ID.Kind)
	return math.Max(s.cfg.Physics.MinSpeed, kt.SpeedBase-b.Body.Radius*s.cfg.Physics.SpeedSizePenalty)
}

// JumpSpeed returns the magnitude of the jump launch velocity.
func (s *PhysicsSystem) JumpSpeed(b Blob) float64 {
	kt := kindTable(s.cfg, b.ID.Kind)
	return math.Max(kt.MinJumpSpeed, kt.JumpPower-b.Body.Radius*kt.JumpSizePenalty)
}

// Integrate advances one alive blob by dt under the given intent.
func (s *PhysicsSystem) Integrate(b Blob, in input.Intent, dt float64) {
	if !b.Alive() {
		return
	}
	phys := &s.cfg.Physics
	vel, body, ctl := b.Vel, b.Body, b.Ctl

	if in.Move != 0 {
		ctl.Facing = in.Move
	}

	vel.X += float64(in.Move) * phys.MoveImpulse * dt
	vel.X *= phys.Damping
	maxSpeed := s.MaxSpeed(b)
	vel.X = clampFloat(vel.X, -maxSpeed, maxSpeed)

	// Rising edge only: holding jump does not bunny-hop.
	if in.Jump && body.OnGround && !ctl.JumpHeld {
		vel.Y = -s.JumpSpeed(b)
		body.OnGround = false
	}
	ctl.JumpHeld = in.Jump

	vel.Y += s.world.Gravity * dt

	b.Pos.X += vel.X * dt
	b.Pos.Y += vel.Y * dt

	ClampToWorld(b, s.world.Width, phys.WallRestitution)
	LandOnFloor(b, s.world.FloorY)
	LandOnPlatforms(b, s.world.Platforms, dt)
}

// ClampToWorld keeps the disc inside [radius, width-radius] and reflects
// horizontal velocity with the given restitution. Returns true on contact.
func ClampToWorld(b Blob, width, restitution float64) bool {
	r := b.Body.Radius
	switch {
	case b.Pos.X < r:
		b.Pos.X = r
	case b.Pos.X > width-r:
		b.Pos.X = width - r
	default:
		return false
	}
	b.Vel.X *= -restitution
	return true
}

// LandOnFloor snaps a blob that sank below the floor plane back onto it.
func LandOnFloor(b Blob, floorY float64) bool {
	if b.Pos.Y <= floorY-b.Body.Radius {
		return false
	}
	b.Pos.Y = floorY - b.Body.Radius
	b.Vel.Y = 0
	b.Body.OnGround = true
	return true
}

// LandOnPlatforms performs the swept top-surface check against every
// platform. The previous bottom edge is reconstructed as bottom - vy*dt, so
// a fast fall cannot tunnel through a thin platform within one step. When
// several platforms qualify the highest landing surface wins.
func LandOnPlatforms(b Blob, platforms []config.Platform, dt float64) bool {
	r := b.Body.Radius
	landingY := math.Inf(1)

	for _, p := range platforms {
		inSpan := b.Pos.X+r > p.Left() && b.Pos.X-r < p.Right()

		top := p.Top()
		bottom := b.Pos.Y + r
		crossingTop := b.Vel.Y >= 0 && bottom >= top && bottom-b.Vel.Y*dt <= top

		if inSpan && crossingTop {
			landingY = math.Min(landingY, top-r)
		}
	}

	if math.IsInf(landingY, 1) {
		return false
	}
	b.Pos.Y = landingY
	b.Vel.Y = 0
	b.Body.OnGround = true
	return true
}

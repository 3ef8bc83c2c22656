package systems

import (
	"math"

	"github.com/pthm-cable/blobarena/components"
)

// ShardSpec holds the components of one shard to be created.
type ShardSpec struct {
	Identity components.Identity
	Position components.Position
	Velocity components.Velocity
	Body     components.Body
	Control  components.Control
}

// Shards fans a victim out into shard specs launched upward in a cone.
// Shards inherit the victim's control binding, keymap, gamepad, color and
// facing. IDs start at firstID.
func (l *LifecycleSystem) Shards(victim Blob, firstID int) []ShardSpec {
	sc := l.cfg.Split
	n := sc.ShardCount
	spread := math.Pi * sc.Spread
	shards := make([]ShardSpec, 0, n)

	slot := victim.ID.ControlSlot
	if slot == components.NoSlot {
		slot = victim.ID.ID
	}
	facing := victim.Ctl.Facing
	if facing == 0 {
		facing = 1
	}

	for i := 0; i < n; i++ {
		angle := -spread + float64(i)*spread/math.Max(1, float64(n-1))
		body := components.NewBody(sc.ShardRadius)

		shards = append(shards, ShardSpec{
			Identity: components.Identity{
				ID:          firstID + i,
				Kind:        components.KindShard,
				ControlSlot: slot,
				Color:       victim.ID.Color,
			},
			Position: components.Position{
				X: victim.Pos.X + math.Cos(angle)*victim.Body.Radius*0.25,
				Y: math.Max(body.Radius+8, victim.Pos.Y-victim.Body.Radius*0.25),
			},
			Velocity: components.Velocity{
				X: math.Cos(angle) * sc.LaunchSpeed,
				Y: -sc.LiftSpeed - math.Sin(angle)*100,
			},
			Body: body,
			Control: components.Control{
				Keymap:  victim.Ctl.Keymap,
				Gamepad: victim.Ctl.Gamepad,
				Facing:  facing,
			},
		})
	}
	return shards
}

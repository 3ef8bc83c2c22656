package systems

import (
	"math/rand"

	"github.com/pthm-cable/blobarena/components"
	"github.com/pthm-cable/blobarena/config"
)

// testBlob builds a free-standing alive blob for system tests.
func testBlob(id int, kind components.Kind, x, y, radius float64) Blob {
	body := components.NewBody(radius)
	b := Blob{
		ID:    &components.Identity{ID: id, Kind: kind, ControlSlot: components.NoSlot},
		Pos:   &components.Position{X: x, Y: y},
		Vel:   &components.Velocity{},
		Body:  &body,
		Life:  &components.Lifecycle{Alive: true},
		Prog:  &components.Progression{},
		Ctl:   &components.Control{Gamepad: components.NoSlot, Facing: 1},
		Armor: &components.Armor{},
	}
	if kind == components.KindNPC {
		b.Brain = &components.Brain{}
	}
	if kind.Human() {
		b.ID.ControlSlot = id
	}
	return b
}

func testConfig() *config.Config {
	return config.Default()
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func approx(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

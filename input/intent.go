package input

import (
	"github.com/pthm-cable/blobarena/components"
	"github.com/pthm-cable/blobarena/config"
)

// Intent is the normalized per-tick decision for one entity.
type Intent struct {
	Move   int // -1, 0, +1
	Jump   bool
	Attack bool
}

// Bindings holds the controller mapping shared by every player slot.
type Bindings struct {
	AxisDeadzone  float64
	JumpButtons   []int
	AttackButtons []int
}

// BindingsFromConfig extracts controller bindings.
func BindingsFromConfig(cfg *config.Config) Bindings {
	return Bindings{
		AxisDeadzone:  cfg.Roster.AxisDeadzone,
		JumpButtons:   cfg.Roster.JumpButtons,
		AttackButtons: cfg.Roster.AttackButtons,
	}
}

// ForPlayer reads the keys in the entity's keymap and, when a gamepad is
// bound and connected, lets its stick override the move direction and its
// buttons add jump/attack. It never mutates the entity.
func ForPlayer(ctl *components.Control, snap Snapshot, b Bindings) Intent {
	var in Intent

	km := ctl.Keymap
	if snap.IsHeld(km.Left) {
		in.Move--
	}
	if snap.IsHeld(km.Right) {
		in.Move++
	}
	in.Jump = snap.IsHeld(km.Jump)
	in.Attack = snap.IsHeld(km.Attack)

	if ctl.Gamepad == components.NoSlot {
		return in
	}
	pad := snap.Pad(ctl.Gamepad)
	if pad == nil {
		return in
	}

	axis := pad.Axis(0)
	if axis < -b.AxisDeadzone {
		in.Move = -1
	}
	if axis > b.AxisDeadzone {
		in.Move = 1
	}
	if anyPressed(pad, b.JumpButtons) {
		in.Jump = true
	}
	if anyPressed(pad, b.AttackButtons) {
		in.Attack = true
	}
	return in
}

func anyPressed(pad *Pad, buttons []int) bool {
	for _, btn := range buttons {
		if pad.Pressed(btn) {
			return true
		}
	}
	return false
}

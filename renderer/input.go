package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blobarena/config"
	"github.com/pthm-cable/blobarena/input"
)

const maxGamepads = 4

// padButtons maps standard-layout button indices, as used in the config,
// onto raylib buttons.
var padButtons = []int32{
	rl.GamepadButtonRightFaceDown,  // 0 A
	rl.GamepadButtonRightFaceRight, // 1 B
	rl.GamepadButtonRightFaceLeft,  // 2 X
	rl.GamepadButtonRightFaceUp,    // 3 Y
	rl.GamepadButtonLeftTrigger1,   // 4 LB
	rl.GamepadButtonRightTrigger1,  // 5 RB
	rl.GamepadButtonLeftTrigger2,   // 6 LT
	rl.GamepadButtonRightTrigger2,  // 7 RT
	rl.GamepadButtonMiddleLeft,     // 8 back
	rl.GamepadButtonMiddleRight,    // 9 start
	rl.GamepadButtonLeftThumb,      // 10
	rl.GamepadButtonRightThumb,     // 11
	rl.GamepadButtonLeftFaceUp,     // 12 d-pad
	rl.GamepadButtonLeftFaceDown,   // 13
	rl.GamepadButtonLeftFaceLeft,   // 14
	rl.GamepadButtonLeftFaceRight,  // 15
	rl.GamepadButtonMiddle,         // 16 home
}

// keyCodes maps input code names onto raylib keys.
var keyCodes = buildKeyCodes()

func buildKeyCodes() map[string]int32 {
	m := map[string]int32{
		"ArrowLeft":    rl.KeyLeft,
		"ArrowRight":   rl.KeyRight,
		"ArrowUp":      rl.KeyUp,
		"ArrowDown":    rl.KeyDown,
		"Space":        rl.KeySpace,
		"Enter":        rl.KeyEnter,
		"ShiftLeft":    rl.KeyLeftShift,
		"ShiftRight":   rl.KeyRightShift,
		"ControlLeft":  rl.KeyLeftControl,
		"ControlRight": rl.KeyRightControl,
		"Comma":        rl.KeyComma,
		"Period":       rl.KeyPeriod,
		"Slash":        rl.KeySlash,
		"Semicolon":    rl.KeySemicolon,
	}
	for c := 'A'; c <= 'Z'; c++ {
		m["Key"+string(c)] = rl.KeyA + (c - 'A')
	}
	for d := int32(0); d <= 9; d++ {
		digit := string(rune('0' + d))
		m["Digit"+digit] = rl.KeyZero + d
		m["Numpad"+digit] = rl.KeyKp0 + d
	}
	return m
}

// Poller reads raw device state into input snapshots. Only codes named
// by the config are polled.
type Poller struct {
	keys map[string]int32
}

// NewPoller creates a poller for the keys bound in cfg. Unknown codes are
// ignored and never reported as held.
func NewPoller(cfg *config.Config) *Poller {
	p := &Poller{keys: make(map[string]int32)}
	bind := func(code string) {
		if key, ok := keyCodes[code]; ok {
			p.keys[code] = key
		}
	}
	for _, km := range cfg.Roster.Keymaps {
		bind(km.Left)
		bind(km.Right)
		bind(km.Jump)
		bind(km.Attack)
	}
	bind(cfg.Roster.RestartKey)
	return p
}

// Poll returns the current input state. restart is set by the HUD.
func (p *Poller) Poll(restart bool) input.Snapshot {
	snap := input.NewSnapshot()
	snap.Restart = restart

	for code, key := range p.keys {
		if rl.IsKeyDown(key) {
			snap.Held[code] = true
		}
	}

	for i := int32(0); i < maxGamepads; i++ {
		if !rl.IsGamepadAvailable(i) {
			continue
		}
		pad := &input.Pad{Index: int(i)}
		axes := rl.GetGamepadAxisCount(i)
		for a := int32(0); a < axes; a++ {
			pad.Axes = append(pad.Axes, float64(rl.GetGamepadAxisMovement(i, a)))
		}
		pad.Buttons = make([]bool, len(padButtons))
		for b, btn := range padButtons {
			pad.Buttons[b] = rl.IsGamepadButtonDown(i, btn)
		}
		snap.Pads[int(i)] = pad
	}
	return snap
}

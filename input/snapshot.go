// Package input defines the per-tick input snapshot and resolves it into
// movement intents for human-controlled entities.
package input

import "sort"

// Pad is the state of one connected controller.
type Pad struct {
	Index   int
	Axes    []float64 // each in [-1, 1]
	Buttons []bool
}

// Axis returns axis i, or 0 if the pad does not report it.
func (p *Pad) Axis(i int) float64 {
	if i < 0 || i >= len(p.Axes) {
		return 0
	}
	return p.Axes[i]
}

// Pressed reports whether button i is held.
func (p *Pad) Pressed(i int) bool {
	return i >= 0 && i < len(p.Buttons) && p.Buttons[i]
}

// Snapshot is the read-only environment input for one tick.
type Snapshot struct {
	Held map[string]bool // input codes currently held
	Pads map[int]*Pad    // connected controllers by index

	// Restart is set when the environment requested a rebuild
	// (restart key, controller connected or disconnected).
	Restart bool
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() Snapshot {
	return Snapshot{
		Held: make(map[string]bool),
		Pads: make(map[int]*Pad),
	}
}

// IsHeld reports whether code is held. Empty codes are never held.
func (s Snapshot) IsHeld(code string) bool {
	return code != "" && s.Held[code]
}

// Pad returns the controller at index, or nil.
func (s Snapshot) Pad(index int) *Pad {
	if s.Pads == nil {
		return nil
	}
	return s.Pads[index]
}

// PadIndices returns connected controller indices in connection order.
func (s Snapshot) PadIndices() []int {
	indices := make([]int, 0, len(s.Pads))
	for idx := range s.Pads {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	return indices
}

package game

import (
	"slices"

	"github.com/pthm-cable/blobarena/input"
)

// restartRequested reports whether this frame's input rebuilds the
// session: an explicit request, the restart key going down, or a change
// in the set of connected controllers.
func (g *Game) restartRequested(snap input.Snapshot) bool {
	held := snap.IsHeld(g.cfg.Roster.RestartKey)
	pressed := held && !g.restartHeld
	g.restartHeld = held

	if snap.Restart || pressed {
		return true
	}
	return !slices.Equal(snap.PadIndices(), g.pads)
}

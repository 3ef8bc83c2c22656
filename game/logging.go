package game

import (
	"log/slog"

	"github.com/pthm-cable/blobarena/systems"
)

// logSessionStart logs the roster of a freshly built session.
func (g *Game) logSessionStart() {
	slog.Info("session_restart",
		"session", g.session,
		"seed", g.seed,
		"players", g.cfg.Roster.Players,
		"npcs", g.cfg.Roster.NPCs,
		"gamepads", len(g.pads),
		"pickup", g.cfg.Pickup.Enabled,
		"melee", g.cfg.Melee.Enabled,
	)
}

// logGiantSplit logs a split event.
func (g *Game) logGiantSplit(victim systems.Blob, shards int) {
	slog.Info("giant_split",
		"session", g.session,
		"tick", g.tick,
		"victim", victim.ID.ID,
		"slot", victim.ID.ControlSlot,
		"radius", victim.Body.Radius,
		"shards", shards,
	)
}

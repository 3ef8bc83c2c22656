package game

import (
	"log/slog"

	"github.com/pthm-cable/blobarena/components"
	"github.com/pthm-cable/blobarena/systems"
	"github.com/pthm-cable/blobarena/telemetry"
)

// record forwards an event to the window collector.
func (g *Game) record(ev telemetry.Event) {
	g.collector.Record(ev)
}

// recordContact records the outcome of one pairwise resolution.
func (g *Game) recordContact(c systems.Contact) {
	switch c.Outcome {
	case systems.OutcomeEat:
		g.afterEat(telemetry.EventStomp, c.Eater, c.Victim, c.Eat)
	case systems.OutcomeBounce:
		g.record(telemetry.Event{Type: telemetry.EventBounce, Tick: g.tick})
	}
}

// recordStrike records a melee swing and what it did.
func (g *Game) recordStrike(attacker systems.Blob, s systems.Strike) {
	if !s.Swung {
		return
	}
	g.record(telemetry.NewEntityEvent(telemetry.EventSwing, g.tick, attacker.ID.ID, attacker.ID.Kind))
	switch {
	case s.Blocked:
		ev := telemetry.NewEntityEvent(telemetry.EventMeleeBlock, g.tick, attacker.ID.ID, attacker.ID.Kind)
		ev.TargetID, ev.TargetKind = s.Target.ID.ID, s.Target.ID.Kind
		g.record(ev)
	case s.Hit:
		g.afterEat(telemetry.EventMeleeHit, attacker, s.Target, s.Eat)
	}
}

// flushTelemetry closes the stats window when it is due.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.simTime) {
		return
	}

	stats := g.collector.Flush(g.session, g.tick, g.simTime, g.sampleRoster())
	perfStats := g.perf.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.output.WritePerf(perfStats, g.session, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// sampleRoster collects the size and progression distribution.
func (g *Game) sampleRoster() telemetry.Sample {
	var s telemetry.Sample

	query := g.sizeFilter.Query()
	for query.Next() {
		ident, body, life, prog := query.Get()

		switch {
		case life.Removed():
			s.Removed++
			continue
		case !life.Alive:
			s.Dead++
			continue
		}

		if ident.Kind == components.KindNPC {
			s.NPCsAlive++
		} else {
			s.PlayersAlive++
		}
		s.Radii = append(s.Radii, body.Radius)
		s.EatenCounts = append(s.EatenCounts, float64(prog.EatenCount))
		if prog.Stage > s.MaxStage {
			s.MaxStage = prog.Stage
		}
	}
	return s
}

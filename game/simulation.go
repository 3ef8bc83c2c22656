package game

import (
	"math"

	"github.com/pthm-cable/blobarena/input"
	"github.com/pthm-cable/blobarena/telemetry"
)

// Update runs one frame: it handles restart triggers, clamps the elapsed
// wall time to the maximum step, and advances the simulation once. There
// is no catch-up stepping.
func (g *Game) Update(snap input.Snapshot, elapsed float64) {
	if g.restartRequested(snap) {
		g.Restart(snap.PadIndices())
		return
	}
	dt := math.Min(g.cfg.Physics.MaxDT, elapsed)
	if dt < 0 {
		dt = 0
	}
	g.Step(snap, dt)
}

// Step advances the whole simulation by dt in a fixed pass order:
//
//  1. lifecycle timers (respawns)
//  2. intents for entities alive at tick start
//  3. integration with world, floor and platform contact
//  4. melee
//  5. pairwise blob collision, single pass in index order
//  6. pickup
//  7. queued shard creation, telemetry, chaos flip
func (g *Game) Step(snap input.Snapshot, dt float64) {
	g.perf.StartTick()

	views := g.refreshViews()
	n := len(views)
	g.intents = resize(g.intents, n)
	g.aliveAtTick = resize(g.aliveAtTick, n)

	g.perf.StartPhase(telemetry.PhaseLifecycle)
	for i, b := range views {
		g.aliveAtTick[i] = b.Alive()
		if g.lifecycle.Tick(b, dt, g.rng) {
			g.record(telemetry.NewEntityEvent(telemetry.EventRespawn, g.tick, b.ID.ID, b.ID.Kind))
		}
	}

	g.perf.StartPhase(telemetry.PhaseIntents)
	for i, b := range views {
		g.intents[i] = input.Intent{}
		if !g.aliveAtTick[i] {
			continue
		}
		if b.Brain != nil {
			g.intents[i] = g.ai.Decide(b, views, dt, g.rng)
		} else {
			g.intents[i] = input.ForPlayer(b.Ctl, snap, g.bindings)
		}
	}

	g.perf.StartPhase(telemetry.PhaseIntegrate)
	for i, b := range views {
		if g.aliveAtTick[i] {
			g.physics.Integrate(b, g.intents[i], dt)
		}
	}

	g.perf.StartPhase(telemetry.PhaseMelee)
	for i, b := range views {
		if g.aliveAtTick[i] {
			g.recordStrike(b, g.melee.Attack(b, views, g.intents[i]))
		}
	}

	g.perf.StartPhase(telemetry.PhaseCollision)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.recordContact(g.collision.Resolve(views[i], views[j]))
		}
	}

	g.perf.StartPhase(telemetry.PhasePickup)
	if idx := g.pickups.Update(&g.pickup, views, dt, g.rng); idx >= 0 {
		b := views[idx]
		g.record(telemetry.NewEntityEvent(telemetry.EventPickup, g.tick, b.ID.ID, b.ID.Kind))
	}

	g.perf.StartPhase(telemetry.PhaseSpawn)
	g.applySpawns()

	g.tick++
	g.simTime += dt

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()
	g.chaos.Update(dt, g.rng)

	g.perf.EndTick()
}

// resize returns s with length n, reusing its backing array.
func resize[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	return s[:n]
}

package game

import (
	"github.com/pthm-cable/blobarena/systems"
	"github.com/pthm-cable/blobarena/telemetry"
)

// afterEat records an eat and queues the split it may have triggered.
func (g *Game) afterEat(kind telemetry.EventType, eater, victim systems.Blob, res systems.EatResult) {
	g.record(telemetry.NewEatEvent(kind, g.tick, eater.ID.ID, eater.ID.Kind, victim.ID.ID, victim.ID.Kind, res.VictimMass))
	if res.StageUp {
		ev := telemetry.NewEntityEvent(telemetry.EventStageUp, g.tick, eater.ID.ID, eater.ID.Kind)
		ev.Amount = float64(eater.Prog.Stage)
		g.record(ev)
	}
	switch {
	case res.Split:
		g.queueSplit(victim)
	case res.Removed:
		g.record(telemetry.NewEntityEvent(telemetry.EventRemoval, g.tick, victim.ID.ID, victim.ID.Kind))
	}
}

// queueSplit computes shards for a removed victim and reserves their IDs.
// They are created once the current pass has finished.
func (g *Game) queueSplit(victim systems.Blob) {
	shards := g.lifecycle.Shards(victim, g.nextID)
	g.nextID += len(shards)
	g.pendingShards = append(g.pendingShards, shards...)
	g.record(telemetry.NewEntityEvent(telemetry.EventSplit, g.tick, victim.ID.ID, victim.ID.Kind))
	g.logGiantSplit(victim, len(shards))
}

// applySpawns creates queued shard entities. Existing views are invalid
// afterwards.
func (g *Game) applySpawns() {
	for _, spec := range g.pendingShards {
		g.spawnShard(spec)
	}
	g.pendingShards = g.pendingShards[:0]
}

// Split converts a human-controlled entity into shards immediately, as an
// external policy decision. Returns false if the entity does not exist, is
// not human-controlled, or is already permanently removed.
func (g *Game) Split(id int) bool {
	views := g.refreshViews()
	i := g.find(id)
	if i < 0 {
		return false
	}
	victim := views[i]
	if !victim.ID.Kind.Human() || victim.Life.Removed() {
		return false
	}
	systems.RemoveWithoutRespawn(victim)
	g.queueSplit(victim)
	g.applySpawns()
	return true
}

// Remove takes an entity out of play for good. Returns false if it does
// not exist.
func (g *Game) Remove(id int) bool {
	views := g.refreshViews()
	i := g.find(id)
	if i < 0 {
		return false
	}
	b := views[i]
	systems.RemoveWithoutRespawn(b)
	g.record(telemetry.NewEntityEvent(telemetry.EventRemoval, g.tick, b.ID.ID, b.ID.Kind))
	return true
}

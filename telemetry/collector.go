package telemetry

import "github.com/pthm-cable/blobarena/components"

// Collector accumulates events within time windows and produces WindowStats.
// Windows are measured in simulation seconds because dt varies per frame.
type Collector struct {
	windowDurationSec float64

	// Current window tracking
	windowStartTick int32
	windowStartTime float64

	// Event counters for current window
	stomps        int
	bounces       int
	swings        int
	meleeHits     int
	meleeBlocks   int
	pickups       int
	stageUps      int
	respawns      int
	removals      int
	splits        int
	playersEaten  int
	npcsEaten     int
	massTransfer  float64
	eatsByPlayers int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds.
func NewCollector(windowDurationSec float64) *Collector {
	if windowDurationSec <= 0 {
		windowDurationSec = 10
	}
	return &Collector{windowDurationSec: windowDurationSec}
}

// Record counts one event.
func (c *Collector) Record(ev Event) {
	switch ev.Type {
	case EventStomp, EventMeleeHit:
		if ev.Type == EventStomp {
			c.stomps++
		} else {
			c.meleeHits++
		}
		if ev.TargetKind == components.KindNPC {
			c.npcsEaten++
		} else {
			c.playersEaten++
		}
		if ev.Kind.Human() {
			c.eatsByPlayers++
		}
		c.massTransfer += ev.Amount
	case EventBounce:
		c.bounces++
	case EventSwing:
		c.swings++
	case EventMeleeBlock:
		c.meleeBlocks++
	case EventPickup:
		c.pickups++
	case EventStageUp:
		c.stageUps++
	case EventRespawn:
		c.respawns++
	case EventRemoval:
		c.removals++
	case EventSplit:
		c.splits++
	}
}

// ShouldFlush returns true if enough simulation time has passed to flush
// the window.
func (c *Collector) ShouldFlush(simTime float64) bool {
	return simTime-c.windowStartTime >= c.windowDurationSec
}

// Sample is the roster state observed at window end.
type Sample struct {
	PlayersAlive int
	NPCsAlive    int
	Dead         int
	Removed      int
	Radii        []float64
	EatenCounts  []float64
	MaxStage     int
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(session string, currentTick int32, simTime float64, s Sample) WindowStats {
	var hitRate float64
	if c.swings > 0 {
		hitRate = float64(c.meleeHits) / float64(c.swings)
	}

	radius := ComputeDistribution(s.Radii)
	eaten := ComputeDistribution(s.EatenCounts)

	stats := WindowStats{
		Session:         session,
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      simTime,

		PlayersAlive: s.PlayersAlive,
		NPCsAlive:    s.NPCsAlive,
		Dead:         s.Dead,
		Removed:      s.Removed,

		Stomps:       c.stomps,
		Bounces:      c.bounces,
		Swings:       c.swings,
		MeleeHits:    c.meleeHits,
		MeleeBlocks:  c.meleeBlocks,
		HitRate:      hitRate,
		Pickups:      c.pickups,
		StageUps:     c.stageUps,
		Respawns:     c.respawns,
		Removals:     c.removals,
		Splits:       c.splits,
		PlayersEaten: c.playersEaten,
		NPCsEaten:    c.npcsEaten,
		PlayerEats:   c.eatsByPlayers,
		MassTransfer: c.massTransfer,

		RadiusMean: radius.Mean,
		RadiusStd:  radius.Std,
		RadiusP50:  radius.P50,
		RadiusP90:  radius.P90,
		RadiusMax:  radius.Max,
		EatenMean:  eaten.Mean,
		EatenMax:   eaten.Max,
		MaxStage:   s.MaxStage,
	}

	c.windowStartTick = currentTick
	c.windowStartTime = simTime
	c.stomps = 0
	c.bounces = 0
	c.swings = 0
	c.meleeHits = 0
	c.meleeBlocks = 0
	c.pickups = 0
	c.stageUps = 0
	c.respawns = 0
	c.removals = 0
	c.splits = 0
	c.playersEaten = 0
	c.npcsEaten = 0
	c.massTransfer = 0
	c.eatsByPlayers = 0

	return stats
}

// WindowDuration returns the window length in simulation seconds.
func (c *Collector) WindowDuration() float64 {
	return c.windowDurationSec
}

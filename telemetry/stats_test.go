package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/blobarena/components"
)

func TestComputeDistribution(t *testing.T) {
	values := []float64{10, 1, 9, 2, 8, 3, 7, 4, 6, 5}
	d := ComputeDistribution(values)

	if math.Abs(d.Mean-5.5) > 0.001 {
		t.Errorf("mean = %v, want 5.5", d.Mean)
	}
	if d.P50 != 5 {
		t.Errorf("p50 = %v, want 5", d.P50)
	}
	if d.P10 != 1 {
		t.Errorf("p10 = %v, want 1", d.P10)
	}
	if d.P90 < 9 || d.P90 > 10 {
		t.Errorf("p90 = %v, want 9..10", d.P90)
	}
	if d.Max != 10 {
		t.Errorf("max = %v, want 10", d.Max)
	}
	// Sample standard deviation of 1..10.
	if math.Abs(d.Std-3.02765) > 0.001 {
		t.Errorf("std = %v, want ~3.028", d.Std)
	}
	// Input must not be reordered.
	if values[0] != 10 {
		t.Error("input slice was modified")
	}
}

func TestComputeDistributionSmall(t *testing.T) {
	if d := ComputeDistribution(nil); d != (Distribution{}) {
		t.Errorf("empty sample should be zero, got %+v", d)
	}

	d := ComputeDistribution([]float64{24})
	if d.Mean != 24 || d.P50 != 24 || d.Max != 24 || d.Std != 0 {
		t.Errorf("single sample = %+v", d)
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(10)

	c.Record(NewEatEvent(EventStomp, 5, 0, components.KindPlayer, 4, components.KindNPC, 225))
	c.Record(NewEatEvent(EventMeleeHit, 6, 4, components.KindNPC, 1, components.KindPlayer, 576))
	c.Record(NewEntityEvent(EventSwing, 6, 4, components.KindNPC))
	c.Record(NewEntityEvent(EventSwing, 7, 4, components.KindNPC))
	c.Record(NewEntityEvent(EventBounce, 7, 2, components.KindNPC))
	c.Record(NewEntityEvent(EventRespawn, 8, 1, components.KindPlayer))

	if c.ShouldFlush(9.99) {
		t.Fatal("flushed before window end")
	}
	if !c.ShouldFlush(10) {
		t.Fatal("expected flush at window end")
	}

	s := c.Flush("abc", 600, 10, Sample{
		PlayersAlive: 3,
		NPCsAlive:    7,
		Dead:         2,
		Radii:        []float64{20, 30},
		EatenCounts:  []float64{0, 2},
		MaxStage:     1,
	})

	if s.Session != "abc" || s.WindowEndTick != 600 {
		t.Errorf("header = %q %d", s.Session, s.WindowEndTick)
	}
	if s.Stomps != 1 || s.MeleeHits != 1 || s.Swings != 2 || s.Bounces != 1 || s.Respawns != 1 {
		t.Errorf("counts = %+v", s)
	}
	if s.PlayersEaten != 1 || s.NPCsEaten != 1 || s.PlayerEats != 1 {
		t.Errorf("eaten split = %d/%d/%d", s.PlayersEaten, s.NPCsEaten, s.PlayerEats)
	}
	if math.Abs(s.HitRate-0.5) > 1e-9 {
		t.Errorf("hit rate = %v", s.HitRate)
	}
	if s.MassTransfer != 801 {
		t.Errorf("mass transfer = %v", s.MassTransfer)
	}
	if s.RadiusMean != 25 || s.RadiusMax != 30 || s.EatenMax != 2 {
		t.Errorf("distribution = %v %v %v", s.RadiusMean, s.RadiusMax, s.EatenMax)
	}

	// Counters reset; window restarts at the flush time.
	next := c.Flush("abc", 1200, 20, Sample{})
	if next.Stomps != 0 || next.Swings != 0 || next.MassTransfer != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
	if next.WindowStartTick != 600 {
		t.Errorf("window start = %d, want 600", next.WindowStartTick)
	}
	if c.ShouldFlush(25) {
		t.Error("window should restart at last flush")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventMeleeBlock.String() != "melee_block" || EventType(99).String() != "unknown" {
		t.Error("unexpected event names")
	}
}

package camera

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/blobarena/config"
)

// Chaos periodically turns the picture upside down for a few seconds.
// It only drives the presentation; the simulation never reads it.
type Chaos struct {
	cfg config.ChaosConfig

	UpsideDown     bool
	TimerUntilFlip float64
	HoldTimer      float64
	Angle          float64
}

// NewChaos creates a chaos flip with a fresh countdown.
func NewChaos(cfg config.ChaosConfig, rng *rand.Rand) *Chaos {
	c := &Chaos{cfg: cfg}
	c.Reset(rng)
	return c
}

// Reset returns to upright and draws a new countdown.
func (c *Chaos) Reset(rng *rand.Rand) {
	c.UpsideDown = false
	c.HoldTimer = 0
	c.Angle = 0
	c.TimerUntilFlip = c.cfg.DelayMin + rng.Float64()*(c.cfg.DelayMax-c.cfg.DelayMin)
}

// Update advances the flip timers and eases the angle toward its target.
func (c *Chaos) Update(dt float64, rng *rand.Rand) {
	if !c.cfg.Enabled {
		return
	}

	if !c.UpsideDown {
		c.TimerUntilFlip -= dt
		if c.TimerUntilFlip <= 0 {
			c.UpsideDown = true
			c.HoldTimer = c.cfg.HoldMin + rng.Float64()*(c.cfg.HoldMax-c.cfg.HoldMin)
		}
	} else {
		c.HoldTimer -= dt
		if c.HoldTimer <= 0 {
			c.UpsideDown = false
			c.TimerUntilFlip = c.cfg.DelayMin + rng.Float64()*(c.cfg.DelayMax-c.cfg.DelayMin)
		}
	}

	target := 0.0
	if c.UpsideDown {
		target = math.Pi
	}
	c.Angle += (target - c.Angle) * math.Min(1, dt*c.cfg.Easing)
}

// Package game owns the simulation context: the ECS world, the
// index-stable roster, the pickup, the RNG, and the fixed per-tick pass
// order. It never touches the screen; presentation reads View snapshots.
package game

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/blobarena/camera"
	"github.com/pthm-cable/blobarena/components"
	"github.com/pthm-cable/blobarena/config"
	"github.com/pthm-cable/blobarena/input"
	"github.com/pthm-cable/blobarena/systems"
	"github.com/pthm-cable/blobarena/telemetry"
)

// Options configures a Game.
type Options struct {
	Seed          int64
	Output        *telemetry.OutputManager // nil disables CSV output
	LogStats      bool
	StatsCallback func(telemetry.WindowStats)
}

// Game holds the complete simulation state of one arena.
type Game struct {
	cfg   *config.Config
	arena systems.World
	rng   *rand.Rand
	seed  int64

	world *ecs.World

	blobMapper *ecs.Map8[
		components.Identity,
		components.Position,
		components.Velocity,
		components.Body,
		components.Lifecycle,
		components.Progression,
		components.Control,
		components.Armor,
	]
	brainMap   *ecs.Map[components.Brain]
	sizeFilter *ecs.Filter4[components.Identity, components.Body, components.Lifecycle, components.Progression]

	// Roster in creation order. Entities are never removed mid-session.
	roster []ecs.Entity
	nextID int

	// Systems
	physics   *systems.PhysicsSystem
	lifecycle *systems.LifecycleSystem
	collision *systems.CollisionSystem
	ai        *systems.AISystem
	melee     *systems.MeleeSystem
	pickups   *systems.PickupSystem
	bindings  input.Bindings

	pickup systems.Pickup
	chaos  *camera.Chaos

	// Structural changes deferred to the end of the tick
	pendingShards []systems.ShardSpec

	// Per-tick scratch, reused
	views       []systems.Blob
	intents     []input.Intent
	aliveAtTick []bool

	// Restart triggers
	pads        []int
	restartHeld bool

	// Telemetry
	session       string
	tick          int32
	simTime       float64
	collector     *telemetry.Collector
	perf          *telemetry.PerfCollector
	output        *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)
}

// New creates a game and builds the first session.
func New(cfg *config.Config, opts Options) *Game {
	arena := systems.WorldFromConfig(cfg)
	lifecycle := systems.NewLifecycleSystem(cfg, arena)

	g := &Game{
		cfg:       cfg,
		arena:     arena,
		seed:      opts.Seed,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		physics:   systems.NewPhysicsSystem(cfg, arena),
		lifecycle: lifecycle,
		collision: systems.NewCollisionSystem(cfg, lifecycle),
		ai:        systems.NewAISystem(cfg),
		melee:     systems.NewMeleeSystem(cfg, lifecycle),
		pickups:   systems.NewPickupSystem(cfg, arena),
		bindings:  input.BindingsFromConfig(cfg),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		output:    opts.Output,
		logStats:  opts.LogStats,

		statsCallback: opts.StatsCallback,
	}
	g.chaos = camera.NewChaos(cfg.Chaos, g.rng)
	g.Restart(nil)
	return g
}

// Restart discards all entity and world-object state and rebuilds the
// session. Controllers connected at this moment are bound to players in
// connection order.
func (g *Game) Restart(pads []int) {
	g.world = ecs.NewWorld()
	g.blobMapper = ecs.NewMap8[
		components.Identity,
		components.Position,
		components.Velocity,
		components.Body,
		components.Lifecycle,
		components.Progression,
		components.Control,
		components.Armor,
	](g.world)
	g.brainMap = ecs.NewMap[components.Brain](g.world)
	g.sizeFilter = ecs.NewFilter4[components.Identity, components.Body, components.Lifecycle, components.Progression](g.world)

	g.roster = g.roster[:0]
	g.nextID = 0
	g.pendingShards = g.pendingShards[:0]
	g.pads = append(g.pads[:0], pads...)

	g.buildRoster()
	g.pickup = g.pickups.New(g.rng)
	g.chaos.Reset(g.rng)

	g.session = uuid.NewString()
	g.tick = 0
	g.simTime = 0
	g.collector = telemetry.NewCollector(g.cfg.Telemetry.StatsWindow)

	g.logSessionStart()
}

// Config returns the game configuration.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Session returns the current session id.
func (g *Game) Session() string {
	return g.session
}

// Tick returns the number of steps since the last restart.
func (g *Game) Tick() int32 {
	return g.tick
}

// SimTime returns simulated seconds since the last restart.
func (g *Game) SimTime() float64 {
	return g.simTime
}

// Len returns the roster size, including dead and removed entities.
func (g *Game) Len() int {
	return len(g.roster)
}

// Pickup returns a copy of the armor pickup state.
func (g *Game) Pickup() systems.Pickup {
	return g.pickup
}

// ChaosAngle returns the current presentation flip angle.
func (g *Game) ChaosAngle() float64 {
	return g.chaos.Angle
}

// Perf returns the step timing collector.
func (g *Game) Perf() *telemetry.PerfCollector {
	return g.perf
}

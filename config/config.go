// Package config provides configuration loading and access for the arena.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all arena configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Kinds     KindsConfig     `yaml:"kinds"`
	Evolution EvolutionConfig `yaml:"evolution"`
	Lifecycle LifecycleConfig `yaml:"lifecycle"`
	Roster    RosterConfig    `yaml:"roster"`
	AI        AIConfig        `yaml:"ai"`
	Melee     MeleeConfig     `yaml:"melee"`
	Pickup    PickupConfig    `yaml:"pickup"`
	Split     SplitConfig     `yaml:"split"`
	Chaos     ChaosConfig     `yaml:"chaos"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds arena geometry.
// Width/Height of 0 fall back to the screen size.
type WorldConfig struct {
	Width       float64          `yaml:"width"`
	Height      float64          `yaml:"height"`
	Gravity     float64          `yaml:"gravity"`      // downward acceleration, units/s²
	FloorOffset float64          `yaml:"floor_offset"` // floor Y = height - floor_offset
	Platforms   []PlatformConfig `yaml:"platforms"`
}

// PlatformConfig places a static rectangle. The center is given as a
// fraction of the world size, the extent in world units.
type PlatformConfig struct {
	XFrac  float64 `yaml:"x_frac"`
	YFrac  float64 `yaml:"y_frac"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig holds integration constants shared by every kind.
type PhysicsConfig struct {
	MoveImpulse       float64 `yaml:"move_impulse"`
	Damping           float64 `yaml:"damping"`            // per-tick horizontal velocity factor
	MinSpeed          float64 `yaml:"min_speed"`          // floor for the size-scaled max speed
	SpeedSizePenalty  float64 `yaml:"speed_size_penalty"` // max speed lost per unit of radius
	WallRestitution   float64 `yaml:"wall_restitution"`
	BounceRestitution float64 `yaml:"bounce_restitution"`
	StompSpeed        float64 `yaml:"stomp_speed"`  // vy needed to stomp
	StompHeight       float64 `yaml:"stomp_height"` // fraction of the victim radius the stomper must be above
	MaxDT             float64 `yaml:"max_dt"`
	FixedDT           float64 `yaml:"fixed_dt"` // headless step size
}

// KindConfig holds the constant table for one entity kind.
type KindConfig struct {
	SpeedBase       float64 `yaml:"speed_base"`
	JumpPower       float64 `yaml:"jump_power"`
	JumpSizePenalty float64 `yaml:"jump_size_penalty"`
	MinJumpSpeed    float64 `yaml:"min_jump_speed"`
	BaseRadius      float64 `yaml:"base_radius"`
	RadiusJitter    float64 `yaml:"radius_jitter"` // base radius drawn from [base, base+jitter)
	RespawnTime     float64 `yaml:"respawn_time"`
}

// KindsConfig holds per-kind tables.
type KindsConfig struct {
	Player KindConfig `yaml:"player"`
	NPC    KindConfig `yaml:"npc"`
}

// EvolutionConfig holds eat/evolution constants.
type EvolutionConfig struct {
	Thresholds    []int   `yaml:"thresholds"` // ascending eaten counts
	PopKick       float64 `yaml:"pop_kick"`   // extra upward velocity on stage-up
	EatBoostMin   float64 `yaml:"eat_boost_min"`
	EatBoostBase  float64 `yaml:"eat_boost_base"`
	EatBoostScale float64 `yaml:"eat_boost_scale"`
}

// LifecycleConfig holds respawn constants.
type LifecycleConfig struct {
	Invulnerability float64 `yaml:"invulnerability"`
	SpawnMargin     float64 `yaml:"spawn_margin"` // NPC respawn keeps this far from the walls
}

// Keymap binds input codes to one player slot.
type Keymap struct {
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Jump   string `yaml:"jump"`
	Attack string `yaml:"attack"`
}

// RosterConfig holds the initial population.
type RosterConfig struct {
	Players       int      `yaml:"players"`
	NPCs          int      `yaml:"npcs"`
	Keymaps       []Keymap `yaml:"keymaps"`
	PlayerColors  []string `yaml:"player_colors"`
	NPCColor      string   `yaml:"npc_color"`
	RestartKey    string   `yaml:"restart_key"`
	AxisDeadzone  float64  `yaml:"axis_deadzone"`
	JumpButtons   []int    `yaml:"jump_buttons"`
	AttackButtons []int    `yaml:"attack_buttons"`
}

// AIConfig holds NPC pursuit/roam constants.
type AIConfig struct {
	VerticalWeight  float64 `yaml:"vertical_weight"`
	MoveDeadzone    float64 `yaml:"move_deadzone"`
	JumpReach       float64 `yaml:"jump_reach"`  // horizontal distance that allows a pursuit jump
	JumpHeight      float64 `yaml:"jump_height"` // target must be this far above
	JumpCooldownMin float64 `yaml:"jump_cooldown_min"`
	JumpCooldownMax float64 `yaml:"jump_cooldown_max"`
	InitialCooldown float64 `yaml:"initial_cooldown"` // initial jump cooldown drawn from [0, this)
	HopChance       float64 `yaml:"hop_chance"`
	HopGrace        float64 `yaml:"hop_grace"` // cooldown must be this far below zero
	HopCooldownMin  float64 `yaml:"hop_cooldown_min"`
	HopCooldownMax  float64 `yaml:"hop_cooldown_max"`
	RoamChance      float64 `yaml:"roam_chance"`
	RoamDurationMin float64 `yaml:"roam_duration_min"`
	RoamDurationMax float64 `yaml:"roam_duration_max"`
}

// MeleeConfig holds attack constants.
type MeleeConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MinStage     int     `yaml:"min_stage"`
	Cooldown     float64 `yaml:"cooldown"`
	SwingTime    float64 `yaml:"swing_time"`
	Reach        float64 `yaml:"reach"`         // added to the attacker radius
	VerticalBand float64 `yaml:"vertical_band"` // multiple of the attacker radius
}

// PickupConfig holds armor pickup constants.
type PickupConfig struct {
	Enabled        bool    `yaml:"enabled"`
	Radius         float64 `yaml:"radius"`
	ClaimMargin    float64 `yaml:"claim_margin"`
	RespawnTime    float64 `yaml:"respawn_time"`
	PlatformChance float64 `yaml:"platform_chance"`
	EdgeMargin     float64 `yaml:"edge_margin"`
	Hover          float64 `yaml:"hover"` // gap between surface and pickup bottom
	BobSpeed       float64 `yaml:"bob_speed"`
}

// SplitConfig holds giant-split constants.
type SplitConfig struct {
	Enabled         bool    `yaml:"enabled"`
	MinVictimRadius float64 `yaml:"min_victim_radius"`
	ShardCount      int     `yaml:"shard_count"`
	ShardRadius     float64 `yaml:"shard_radius"`
	LaunchSpeed     float64 `yaml:"launch_speed"`
	LiftSpeed       float64 `yaml:"lift_speed"`
	Spread          float64 `yaml:"spread"` // fraction of π covered by the fan
}

// ChaosConfig holds the render-only flip timing.
type ChaosConfig struct {
	Enabled  bool    `yaml:"enabled"`
	DelayMin float64 `yaml:"delay_min"`
	DelayMax float64 `yaml:"delay_max"`
	HoldMin  float64 `yaml:"hold_min"`
	HoldMax  float64 `yaml:"hold_max"`
	Easing   float64 `yaml:"easing"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// RGBA is a parsed color.
type RGBA struct {
	R, G, B, A uint8
}

// Platform is a static rectangle in world units.
type Platform struct {
	X, Y float64 // center
	W, H float64
}

// Top returns the Y of the landing surface.
func (p Platform) Top() float64 {
	return p.Y - p.H*0.5
}

// Left returns the X of the left edge.
func (p Platform) Left() float64 {
	return p.X - p.W*0.5
}

// Right returns the X of the right edge.
func (p Platform) Right() float64 {
	return p.X + p.W*0.5
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WorldW       float64
	WorldH       float64
	FloorY       float64
	Platforms    []Platform
	PlayerColors []RGBA
	NPCColor     RGBA
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the embedded defaults. Panics if they are broken,
// which only a bad build can cause.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Validate rejects configurations the simulation cannot run.
func (c *Config) Validate() error {
	var errs []error
	if c.Roster.Players < 0 || c.Roster.NPCs < 0 {
		errs = append(errs, errors.New("roster counts must be non-negative"))
	}
	if c.Roster.Players+c.Roster.NPCs == 0 {
		errs = append(errs, errors.New("roster is empty"))
	}
	for i := 1; i < len(c.Evolution.Thresholds); i++ {
		if c.Evolution.Thresholds[i] <= c.Evolution.Thresholds[i-1] {
			errs = append(errs, fmt.Errorf("evolution thresholds not ascending at index %d", i))
			break
		}
	}
	if c.World.Width < 0 || c.World.Height < 0 {
		errs = append(errs, errors.New("world size must be non-negative"))
	}
	if c.World.Width == 0 && c.Screen.Width <= 0 || c.World.Height == 0 && c.Screen.Height <= 0 {
		errs = append(errs, errors.New("world size unresolved: set world or screen dimensions"))
	}
	if w := c.resolvedWorldWidth(); w > 0 && w < c.MinWorldWidth() {
		errs = append(errs, fmt.Errorf("world width %.0f below minimum %.0f", w, c.MinWorldWidth()))
	}
	if c.Physics.MaxDT <= 0 {
		errs = append(errs, errors.New("physics.max_dt must be positive"))
	}
	if c.Split.Enabled && c.Split.ShardCount < 1 {
		errs = append(errs, errors.New("split.shard_count must be at least 1"))
	}
	return errors.Join(errs...)
}

// MinWorldWidth is the narrowest arena that still leaves room for the
// spawn columns and the widest starting blob on both sides.
func (c *Config) MinWorldWidth() float64 {
	radius := max(c.Kinds.Player.BaseRadius, c.Kinds.NPC.BaseRadius+c.Kinds.NPC.RadiusJitter)
	return max(200+2*radius, 2*c.Lifecycle.SpawnMargin)
}

func (c *Config) resolvedWorldWidth() float64 {
	if c.World.Width != 0 {
		return c.World.Width
	}
	return float64(c.Screen.Width)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	// World dimensions default to screen size if not specified
	c.Derived.WorldW = c.World.Width
	if c.Derived.WorldW == 0 {
		c.Derived.WorldW = float64(c.Screen.Width)
	}
	c.Derived.WorldH = c.World.Height
	if c.Derived.WorldH == 0 {
		c.Derived.WorldH = float64(c.Screen.Height)
	}
	c.Derived.FloorY = c.Derived.WorldH - c.World.FloorOffset

	c.Derived.Platforms = make([]Platform, len(c.World.Platforms))
	for i, p := range c.World.Platforms {
		c.Derived.Platforms[i] = Platform{
			X: c.Derived.WorldW * p.XFrac,
			Y: c.Derived.WorldH * p.YFrac,
			W: p.Width,
			H: p.Height,
		}
	}

	if len(c.Roster.Keymaps) == 0 {
		c.Roster.Keymaps = []Keymap{{Left: "KeyA", Right: "KeyD", Jump: "KeyW", Attack: "KeyS"}}
	}

	c.Derived.PlayerColors = make([]RGBA, 0, len(c.Roster.PlayerColors))
	for _, hex := range c.Roster.PlayerColors {
		col, err := ParseHexColor(hex)
		if err != nil {
			return fmt.Errorf("roster.player_colors: %w", err)
		}
		c.Derived.PlayerColors = append(c.Derived.PlayerColors, col)
	}
	if len(c.Derived.PlayerColors) == 0 {
		c.Derived.PlayerColors = []RGBA{{R: 255, G: 255, B: 255, A: 255}}
	}
	npc, err := ParseHexColor(c.Roster.NPCColor)
	if err != nil {
		return fmt.Errorf("roster.npc_color: %w", err)
	}
	c.Derived.NPCColor = npc
	return nil
}

// KeymapFor returns the keymap for a player slot, falling back to the
// last defined keymap when there are more slots than keymaps.
func (c *Config) KeymapFor(slot int) Keymap {
	maps := c.Roster.Keymaps
	if slot >= 0 && slot < len(maps) {
		return maps[slot]
	}
	return maps[len(maps)-1]
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(s) == 6 {
		return RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}
	return RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

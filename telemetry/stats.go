package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	Session         string  `csv:"session"`
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Roster at window end
	PlayersAlive int `csv:"players_alive"`
	NPCsAlive    int `csv:"npcs_alive"`
	Dead         int `csv:"dead"`
	Removed      int `csv:"removed"`

	// Events during window
	Stomps       int     `csv:"stomps"`
	Bounces      int     `csv:"bounces"`
	Swings       int     `csv:"swings"`
	MeleeHits    int     `csv:"melee_hits"`
	MeleeBlocks  int     `csv:"melee_blocks"`
	HitRate      float64 `csv:"hit_rate"`
	Pickups      int     `csv:"pickups"`
	StageUps     int     `csv:"stage_ups"`
	Respawns     int     `csv:"respawns"`
	Removals     int     `csv:"removals"`
	Splits       int     `csv:"splits"`
	PlayersEaten int     `csv:"players_eaten"`
	NPCsEaten    int     `csv:"npcs_eaten"`
	PlayerEats   int     `csv:"player_eats"`
	MassTransfer float64 `csv:"mass_transfer"`

	// Size distribution of alive blobs (sampled at window end)
	RadiusMean float64 `csv:"radius_mean"`
	RadiusStd  float64 `csv:"radius_std"`
	RadiusP50  float64 `csv:"radius_p50"`
	RadiusP90  float64 `csv:"radius_p90"`
	RadiusMax  float64 `csv:"radius_max"`

	// Progression
	EatenMean float64 `csv:"eaten_mean"`
	EatenMax  float64 `csv:"eaten_max"`
	MaxStage  int     `csv:"max_stage"`
}

// Distribution summarizes a sample.
type Distribution struct {
	Mean, Std     float64
	P10, P50, P90 float64
	Max           float64
}

// ComputeDistribution calculates mean, spread and empirical quantiles.
// An empty sample yields all zeros.
func ComputeDistribution(values []float64) Distribution {
	n := len(values)
	if n == 0 {
		return Distribution{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	d := Distribution{
		Mean: stat.Mean(sorted, nil),
		P10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
		Max:  sorted[n-1],
	}
	if n > 1 {
		d.Std = stat.StdDev(sorted, nil)
	}
	return d
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("session", s.Session),
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("players_alive", s.PlayersAlive),
		slog.Int("npcs_alive", s.NPCsAlive),
		slog.Int("dead", s.Dead),
		slog.Int("removed", s.Removed),
		slog.Int("stomps", s.Stomps),
		slog.Int("bounces", s.Bounces),
		slog.Int("swings", s.Swings),
		slog.Int("melee_hits", s.MeleeHits),
		slog.Int("melee_blocks", s.MeleeBlocks),
		slog.Float64("hit_rate", s.HitRate),
		slog.Int("pickups", s.Pickups),
		slog.Int("stage_ups", s.StageUps),
		slog.Int("respawns", s.Respawns),
		slog.Int("removals", s.Removals),
		slog.Int("splits", s.Splits),
		slog.Int("players_eaten", s.PlayersEaten),
		slog.Int("npcs_eaten", s.NPCsEaten),
		slog.Int("player_eats", s.PlayerEats),
		slog.Float64("mass_transfer", s.MassTransfer),
		slog.Float64("radius_mean", s.RadiusMean),
		slog.Float64("radius_std", s.RadiusStd),
		slog.Float64("radius_p50", s.RadiusP50),
		slog.Float64("radius_p90", s.RadiusP90),
		slog.Float64("radius_max", s.RadiusMax),
		slog.Float64("eaten_mean", s.EatenMean),
		slog.Float64("eaten_max", s.EatenMax),
		slog.Int("max_stage", s.MaxStage),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"session", s.Session,
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"players_alive", s.PlayersAlive,
		"npcs_alive", s.NPCsAlive,
		"stomps", s.Stomps,
		"melee_hits", s.MeleeHits,
		"melee_blocks", s.MeleeBlocks,
		"pickups", s.Pickups,
		"respawns", s.Respawns,
		"radius_mean", s.RadiusMean,
		"radius_max", s.RadiusMax,
		"max_stage", s.MaxStage,
	)
}

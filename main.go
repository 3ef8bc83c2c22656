package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/profile"

	"github.com/pthm-cable/blobarena/config"
	"github.com/pthm-cable/blobarena/game"
	"github.com/pthm-cable/blobarena/input"
	"github.com/pthm-cable/blobarena/renderer"
	"github.com/pthm-cable/blobarena/telemetry"
	"github.com/pthm-cable/blobarena/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	profileMode := flag.String("profile", "", "Write a cpu or mem profile to the output dir")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	profileDir := *outputDir
	if profileDir == "" {
		profileDir = "."
	}
	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(profileDir), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(profileDir), profile.NoShutdownHook).Stop()
	default:
		slog.Error("unknown profile mode", "profile", *profileMode)
		os.Exit(1)
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output dir", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	opts := game.Options{
		Seed:     rngSeed,
		Output:   output,
		LogStats: *logStats,
	}

	if *headless {
		runHeadless(cfg, opts, *maxTicks)
		return
	}
	runWindowed(cfg, opts, *maxTicks)
}

// runHeadless steps at the fixed headless dt with no input.
func runHeadless(cfg *config.Config, opts game.Options, maxTicks int) {
	g := game.New(cfg, opts)
	snap := input.NewSnapshot()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"fixed_dt", cfg.Physics.FixedDT,
		"max_ticks", maxTicks,
	)

	for {
		g.Step(snap, cfg.Physics.FixedDT)

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick(), "status", g.StatusText())
			return
		}
	}
}

func runWindowed(cfg *config.Config, opts game.Options, maxTicks int) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Blob Arena")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.New(cfg, opts)
	arena := renderer.NewArenaRenderer(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Derived.WorldW, cfg.Derived.WorldH)
	poller := renderer.NewPoller(cfg)
	hud := ui.NewHUD()
	perfPanel := ui.NewPerfPanel(10, 10, 260)

	restartClicked := false
	showPerf := false

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			arena.Resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
		}
		if rl.IsKeyPressed(rl.KeyF3) {
			showPerf = !showPerf
		}

		g.Perf().RecordFrame()
		g.Update(poller.Poll(restartClicked), float64(rl.GetFrameTime()))

		v := g.View()

		rl.BeginDrawing()
		arena.Draw(v)
		restartClicked = hud.Draw(ui.HUDData{
			Status:       v.Status,
			Session:      v.Session,
			Tick:         v.Tick,
			FPS:          rl.GetFPS(),
			UpsideDown:   v.ChaosAngle > 0.5,
			ScreenWidth:  int32(rl.GetScreenWidth()),
			ScreenHeight: int32(rl.GetScreenHeight()),
		})
		if showPerf {
			perfPanel.Draw(g.Perf().Stats())
		}
		rl.EndDrawing()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}
}

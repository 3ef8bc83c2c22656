package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Derived.WorldW != 1280 || cfg.Derived.WorldH != 720 {
		t.Errorf("world = %vx%v, want screen size", cfg.Derived.WorldW, cfg.Derived.WorldH)
	}
	if cfg.Derived.FloorY != 720-48 {
		t.Errorf("floor y = %v", cfg.Derived.FloorY)
	}
	if len(cfg.Derived.Platforms) != len(cfg.World.Platforms) {
		t.Fatalf("derived %d platforms, want %d", len(cfg.Derived.Platforms), len(cfg.World.Platforms))
	}
	p := cfg.Derived.Platforms[0]
	if p.X != 640 || p.W != 380 || p.Top() != p.Y-13 {
		t.Errorf("platform 0 = %+v", p)
	}
	if got := cfg.Evolution.Thresholds; len(got) != 3 || got[0] != 2 || got[2] != 7 {
		t.Errorf("thresholds = %v", got)
	}
	if cfg.Physics.MaxDT != 0.033 {
		t.Errorf("max dt = %v", cfg.Physics.MaxDT)
	}
	if len(cfg.Derived.PlayerColors) != 4 {
		t.Errorf("player colors = %d", len(cfg.Derived.PlayerColors))
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	overlay := "roster:\n  npcs: 3\nmelee:\n  enabled: false\n"
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Roster.NPCs != 3 {
		t.Errorf("npcs = %d, want 3", cfg.Roster.NPCs)
	}
	if cfg.Melee.Enabled {
		t.Error("melee should be disabled by overlay")
	}
	// Untouched fields keep their defaults.
	if cfg.Roster.Players != 4 || cfg.Melee.Reach != 56 {
		t.Errorf("defaults lost: players=%d reach=%v", cfg.Roster.Players, cfg.Melee.Reach)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "reading config file") {
		t.Errorf("error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"empty roster", func(c *Config) { c.Roster.Players, c.Roster.NPCs = 0, 0 }, "roster is empty"},
		{"negative roster", func(c *Config) { c.Roster.NPCs = -1 }, "non-negative"},
		{"thresholds", func(c *Config) { c.Evolution.Thresholds = []int{2, 2, 7} }, "not ascending"},
		{"world size", func(c *Config) { c.World.Width = -5 }, "world size"},
		{"max dt", func(c *Config) { c.Physics.MaxDT = 0 }, "max_dt"},
		{"narrow world", func(c *Config) { c.World.Width = 180 }, "below minimum"},
		{"narrow screen", func(c *Config) { c.Screen.Width = 220 }, "below minimum"},
		{"minimum width", func(c *Config) { c.World.Width = c.MinWorldWidth() }, ""},
		{"shards", func(c *Config) { c.Split.Enabled, c.Split.ShardCount = true, 0 }, "shard_count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestKeymapFor(t *testing.T) {
	cfg := Default()
	maps := cfg.Roster.Keymaps

	if got := cfg.KeymapFor(1); got != maps[1] {
		t.Errorf("slot 1 = %+v", got)
	}
	if got := cfg.KeymapFor(len(maps) + 3); got != maps[len(maps)-1] {
		t.Errorf("overflow slot = %+v, want last keymap", got)
	}
	if got := cfg.KeymapFor(-1); got != maps[len(maps)-1] {
		t.Errorf("negative slot = %+v, want last keymap", got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    RGBA
		wantErr bool
	}{
		{"#ff2d55", RGBA{R: 0xff, G: 0x2d, B: 0x55, A: 255}, false},
		{"00e5ff80", RGBA{R: 0, G: 0xe5, B: 0xff, A: 0x80}, false},
		{"#fff", RGBA{}, true},
		{"#zzzzzz", RGBA{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Roster.NPCs = 5
	path := filepath.Join(t.TempDir(), "out.yaml")

	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if back.Roster.NPCs != 5 {
		t.Errorf("npcs = %d, want 5", back.Roster.NPCs)
	}
}

// Package ui draws the heads-up display over the arena: the status line,
// the restart button and the optional performance panel.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Style holds colors and metrics shared by HUD widgets.
type Style struct {
	Background rl.Color
	Border     rl.Color
	Heading    rl.Color
	Label      rl.Color
	Value      rl.Color
	Track      rl.Color
	Fill       [3]rl.Color // light, moderate, heavy load

	Pad        int32
	Line       int32
	LabelWidth int32
	BarHeight  int32
	Font       int32
	HeadFont   int32
}

// ArenaStyle returns the HUD style used over the arena.
func ArenaStyle() Style {
	return Style{
		Background: rl.Color{R: 15, G: 23, B: 42, A: 220},
		Border:     rl.Color{R: 51, G: 65, B: 85, A: 255},
		Heading:    rl.Yellow,
		Label:      rl.LightGray,
		Value:      rl.RayWhite,
		Track:      rl.Color{R: 30, G: 41, B: 59, A: 255},
		Fill: [3]rl.Color{
			{R: 34, G: 197, B: 94, A: 255},
			{R: 234, G: 179, B: 8, A: 255},
			{R: 239, G: 68, B: 68, A: 255},
		},
		Pad:        10,
		Line:       16,
		LabelWidth: 72,
		BarHeight:  10,
		Font:       12,
		HeadFont:   14,
	}
}

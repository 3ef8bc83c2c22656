// Package renderer draws game views with raylib and polls raw keyboard
// and gamepad state into input snapshots.
package renderer

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blobarena/camera"
	"github.com/pthm-cable/blobarena/components"
	"github.com/pthm-cable/blobarena/config"
	"github.com/pthm-cable/blobarena/game"
)

var (
	colorSky       = rl.Color{R: 15, G: 23, B: 42, A: 255}
	colorGround    = rl.Color{R: 20, G: 83, B: 45, A: 255}
	colorGrass     = rl.Color{R: 22, G: 101, B: 52, A: 255}
	colorPlatform  = rl.Color{R: 120, G: 53, B: 15, A: 255}
	colorHighlight = rl.Color{R: 255, G: 255, B: 255, A: 36}
	colorInk       = rl.Color{R: 17, G: 24, B: 39, A: 255}
	colorTag       = rl.Color{R: 15, G: 23, B: 42, A: 166}
	colorArmor     = rl.Color{R: 226, G: 232, B: 240, A: 230}
	colorSwing     = rl.Color{R: 255, G: 255, B: 255, A: 140}
	colorPickup    = rl.Color{R: 148, G: 163, B: 184, A: 255}
)

// ArenaRenderer draws the arena, blobs and the pickup.
type ArenaRenderer struct {
	cam *camera.Camera
}

// NewArenaRenderer creates a renderer for a screen of the given size.
func NewArenaRenderer(screenW, screenH int32, worldW, worldH float64) *ArenaRenderer {
	return &ArenaRenderer{
		cam: camera.New(float32(screenW), float32(screenH), float32(worldW), float32(worldH)),
	}
}

// Resize refits the arena after a window size change.
func (r *ArenaRenderer) Resize(screenW, screenH int32) {
	r.cam.Resize(float32(screenW), float32(screenH))
}

// Draw renders one view. Must be called between BeginDrawing/EndDrawing.
func (r *ArenaRenderer) Draw(v game.View) {
	r.cam.Angle = v.ChaosAngle
	rl.ClearBackground(rl.Black)

	r.drawRect(v.Width*0.5, v.Height*0.5, v.Width, v.Height, colorSky)
	r.drawRect(v.Width*0.5, (v.FloorY+v.Height)*0.5, v.Width, v.Height-v.FloorY, colorGround)
	r.drawRect(v.Width*0.5, v.FloorY-5, v.Width, 10, colorGrass)

	for _, p := range v.Platforms {
		r.drawRect(p.X, p.Y, p.W, p.H, colorPlatform)
		r.drawRect(p.X, p.Top()+3, p.W, 6, colorHighlight)
	}

	if v.PickupEnabled && v.Pickup.Active {
		r.drawPickup(v)
	}

	for i := range v.Blobs {
		r.drawBlob(&v.Blobs[i])
	}
}

func (r *ArenaRenderer) point(x, y float64) rl.Vector2 {
	sx, sy := r.cam.WorldToScreen(float32(x), float32(y))
	return rl.Vector2{X: sx, Y: sy}
}

func (r *ArenaRenderer) length(w float64) float32 {
	return r.cam.Length(float32(w))
}

// drawRect draws a world-space rectangle given its center.
func (r *ArenaRenderer) drawRect(cx, cy, w, h float64, color rl.Color) {
	c := r.point(cx, cy)
	sw, sh := r.length(w), r.length(h)
	rl.DrawRectanglePro(
		rl.Rectangle{X: c.X, Y: c.Y, Width: sw, Height: sh},
		rl.Vector2{X: sw / 2, Y: sh / 2},
		r.cam.RotationDegrees(),
		color,
	)
}

func (r *ArenaRenderer) drawEllipse(x, y, rx, ry float64, color rl.Color) {
	c := r.point(x, y)
	rl.DrawEllipse(int32(c.X), int32(c.Y), r.length(rx), r.length(ry), color)
}

func (r *ArenaRenderer) drawPickup(v game.View) {
	p := v.Pickup
	y := p.Y + math.Sin(p.Phase)*3
	c := r.point(p.X, y)
	rad := r.length(p.Radius)

	rl.DrawCircleV(c, rad, colorPickup)
	rl.DrawCircleLines(int32(c.X), int32(c.Y), rad, colorArmor)
	rl.DrawRing(c, rad*0.45, rad*0.65, 0, 360, 24, colorInk)
}

func (r *ArenaRenderer) drawBlob(b *game.BlobView) {
	color := toColor(b.Color)
	rad := b.Radius

	// Evolution parts sit behind the body.
	if b.Stage >= 1 {
		r.drawEllipse(b.X-rad*0.36, b.Y+rad*0.92, rad*0.24, rad*0.38, color)
		r.drawEllipse(b.X+rad*0.36, b.Y+rad*0.92, rad*0.24, rad*0.38, color)
	}
	if b.Stage >= 2 {
		r.drawEllipse(b.X-rad*1.04, b.Y+rad*0.05, rad*0.36, rad*0.22, color)
		r.drawEllipse(b.X+rad*1.04, b.Y+rad*0.05, rad*0.36, rad*0.22, color)
	}
	if b.Stage >= 3 {
		thick := r.length(math.Max(2, rad*0.08))
		for _, side := range []float64{-1, 1} {
			start := r.point(b.X+side*rad*0.32, b.Y-rad*0.85)
			ctrl := r.point(b.X+side*rad*0.5, b.Y-rad*1.35)
			end := r.point(b.X+side*rad*0.12, b.Y-rad*1.45)
			rl.DrawLineEx(start, ctrl, thick, colorInk)
			rl.DrawLineEx(ctrl, end, thick, colorInk)
		}
	}

	c := r.point(b.X, b.Y)
	sr := r.length(rad)
	if b.Invulnerable {
		color.A = 150
	}
	rl.DrawCircleGradient(int32(c.X), int32(c.Y), sr, rl.ColorBrightness(color, 0.35), color)

	r.drawEllipse(b.X-rad*0.22, b.Y-rad*0.17, rad*0.11, rad*0.11, colorInk)
	r.drawEllipse(b.X+rad*0.22, b.Y-rad*0.17, rad*0.11, rad*0.11, colorInk)

	rot := r.cam.RotationDegrees()
	if b.HasArmor {
		// Armor covers the side it blocks attacks from.
		start := float32(-60)
		if b.ArmorSide < 0 {
			start = 120
		}
		rl.DrawRing(c, sr*1.02, sr*1.22, start+rot, start+120+rot, 16, colorArmor)
	}
	if b.AttackTimer > 0 {
		start := float32(-40)
		if b.Facing < 0 {
			start = 140
		}
		rl.DrawRing(c, sr*1.1, sr*1.9, start+rot, start+80+rot, 16, colorSwing)
	}

	tag := "NPC"
	if b.Kind != components.KindNPC {
		tag = fmt.Sprintf("P%d", b.Slot+1)
	}
	size := int32(r.length(math.Max(12, rad*0.42)))
	tp := r.point(b.X, b.Y+rad*0.18)
	w := rl.MeasureText(tag, size)
	rl.DrawText(tag, int32(tp.X)-w/2, int32(tp.Y)-size/2, size, colorTag)
}

func toColor(c config.RGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

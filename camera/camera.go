// Package camera maps arena coordinates onto the screen and applies the
// render-only chaos flip.
package camera

import "math"

// Camera fits the fixed-size arena into the viewport, letterboxed and
// centered, and rotates the picture about the viewport center.
type Camera struct {
	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Arena dimensions
	WorldW, WorldH float32

	// Scale maps world units to pixels; OffsetX/Y place the arena.
	Scale            float32
	OffsetX, OffsetY float32

	// Angle rotates the rendered arena about the viewport center (radians).
	Angle float64
}

// New creates a camera fitting the world into the viewport.
func New(viewportW, viewportH, worldW, worldH float32) *Camera {
	c := &Camera{WorldW: worldW, WorldH: worldH}
	c.Resize(viewportW, viewportH)
	return c
}

// Resize updates the viewport and refits the arena.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.Scale = min(viewportW/c.WorldW, viewportH/c.WorldH)
	c.OffsetX = (viewportW - c.WorldW*c.Scale) / 2
	c.OffsetY = (viewportH - c.WorldH*c.Scale) / 2
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.OffsetX + wx*c.Scale
	sy = c.OffsetY + wy*c.Scale
	return c.rotate(sx, sy, c.Angle)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	sx, sy = c.rotate(sx, sy, -c.Angle)
	wx = (sx - c.OffsetX) / c.Scale
	wy = (sy - c.OffsetY) / c.Scale
	return wx, wy
}

// Length converts a world distance to pixels.
func (c *Camera) Length(w float32) float32 {
	return w * c.Scale
}

// RotationDegrees returns the flip angle in degrees, for raylib transforms.
func (c *Camera) RotationDegrees() float32 {
	return float32(c.Angle * 180 / math.Pi)
}

func (c *Camera) rotate(x, y float32, angle float64) (float32, float32) {
	if angle == 0 {
		return x, y
	}
	cx, cy := c.ViewportW/2, c.ViewportH/2
	sin, cos := math.Sincos(angle)
	dx, dy := float64(x-cx), float64(y-cy)
	return cx + float32(dx*cos-dy*sin), cy + float32(dx*sin+dy*cos)
}

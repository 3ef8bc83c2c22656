package ui

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blobarena/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Status       string
	Session      string
	Tick         int32
	FPS          int32
	UpsideDown   bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the main heads-up display.
type HUD struct {
	painter *Painter
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{painter: NewPainter()}
}

// Draw renders the HUD and reports whether the restart button was
// clicked this frame.
func (h *HUD) Draw(data HUDData) bool {
	st := h.painter.Style
	barH := int32(34)
	h.painter.Panel(0, data.ScreenHeight-barH, data.ScreenWidth, barH)

	restart := gui.Button(rl.Rectangle{
		X:      float32(st.Pad),
		Y:      float32(data.ScreenHeight - barH + 5),
		Width:  90,
		Height: float32(barH - 10),
	}, "Restart")

	gui.Label(rl.Rectangle{
		X:      float32(st.Pad + 100),
		Y:      float32(data.ScreenHeight - barH + 5),
		Width:  float32(data.ScreenWidth - st.Pad*2 - 100),
		Height: float32(barH - 10),
	}, data.Status)

	session := data.Session
	if len(session) > 8 {
		session = session[:8]
	}
	info := fmt.Sprintf("Session: %s | Tick: %d | FPS: %d", session, data.Tick, data.FPS)
	if data.UpsideDown {
		info += " | CHAOS"
	}
	w := rl.MeasureText(info, st.Font)
	rl.DrawText(info, data.ScreenWidth-w-st.Pad, st.Pad, st.Font, st.Label)

	return restart
}

// PerfPanel renders the step phase timing panel.
type PerfPanel struct {
	painter *Painter
	x, y    int32
	width   int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y, width int32) *PerfPanel {
	return &PerfPanel{
		painter: NewPainter(),
		x:       x,
		y:       y,
		width:   width,
	}
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	r := p.painter
	pad := r.Style.Pad
	phases := telemetry.Phases()
	height := pad*2 + r.Style.Line*int32(len(phases)+3) + 2

	r.Panel(p.x, p.y, p.width, height)

	x, y := p.x+pad, p.y+pad
	inner := p.width - pad*2
	y = r.Heading(x, y, "Step Timing")
	y = r.Row(x, y, "avg", stats.AvgTickDuration.Round(time.Microsecond).String())
	y = r.Row(x, y, "max", stats.MaxTickDuration.Round(time.Microsecond).String())
	for _, ph := range phases {
		y = r.ShareRow(x, y, ph.String(), stats.Pct(ph), inner)
	}
}

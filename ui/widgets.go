package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Painter draws styled HUD primitives. Row helpers return the next Y.
type Painter struct {
	Style Style
}

// NewPainter creates a painter with the arena style.
func NewPainter() *Painter {
	return &Painter{Style: ArenaStyle()}
}

// Panel fills a bordered box.
func (p *Painter) Panel(x, y, w, h int32) {
	rl.DrawRectangle(x, y, w, h, p.Style.Background)
	rl.DrawRectangleLines(x, y, w, h, p.Style.Border)
}

// Heading draws a panel title row.
func (p *Painter) Heading(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, p.Style.HeadFont, p.Style.Heading)
	return y + p.Style.Line + 2
}

// Row draws a "label: value" row.
func (p *Painter) Row(x, y int32, label, value string) int32 {
	st := &p.Style
	rl.DrawText(label+":", x, y, st.Font, st.Label)
	rl.DrawText(value, x+st.LabelWidth, y, st.Font, st.Value)
	return y + st.Line
}

// ShareRow draws a percentage as a bar that turns warmer as it grows.
func (p *Painter) ShareRow(x, y int32, label string, pct float64, width int32) int32 {
	st := &p.Style
	frac := min(max(pct/100, 0), 1)

	barX := x + st.LabelWidth
	barW := width - st.LabelWidth - 50

	fill := st.Fill[0]
	switch {
	case pct > 40:
		fill = st.Fill[2]
	case pct > 20:
		fill = st.Fill[1]
	}

	rl.DrawText(label+":", x, y, st.Font, st.Label)
	rl.DrawRectangle(barX, y+2, barW, st.BarHeight, st.Track)
	rl.DrawRectangle(barX, y+2, int32(float64(barW)*frac), st.BarHeight, fill)
	rl.DrawText(fmt.Sprintf("%5.1f%%", pct), barX+barW+5, y, st.Font, st.Value)
	return y + st.Line
}

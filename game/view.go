package game

import (
	"fmt"
	"strings"

	"github.com/pthm-cable/blobarena/components"
	"github.com/pthm-cable/blobarena/config"
	"github.com/pthm-cable/blobarena/systems"
)

// BlobView is the render-facing copy of one alive entity.
type BlobView struct {
	ID           int
	Kind         components.Kind
	Slot         int // control slot; NoSlot for NPCs
	X, Y         float64
	Radius       float64
	Color        config.RGBA
	Facing       int
	Stage        int
	HasArmor     bool
	ArmorSide    int
	AttackTimer  float64
	Invulnerable bool
}

// View is a consistent read-only snapshot taken between ticks.
type View struct {
	Width, Height float64
	FloorY        float64
	Platforms     []config.Platform

	Blobs         []BlobView
	Pickup        systems.Pickup
	PickupEnabled bool

	ChaosAngle float64
	Status     string
	Session    string
	Tick       int32
}

// View copies the current state for presentation. Dead entities are
// omitted.
func (g *Game) View() View {
	v := View{
		Width:         g.arena.Width,
		Height:        g.arena.Height,
		FloorY:        g.arena.FloorY,
		Platforms:     g.arena.Platforms,
		Pickup:        g.pickup,
		PickupEnabled: g.cfg.Pickup.Enabled,
		ChaosAngle:    g.chaos.Angle,
		Status:        g.StatusText(),
		Session:       g.session,
		Tick:          g.tick,
	}

	for _, b := range g.refreshViews() {
		if !b.Alive() {
			continue
		}
		v.Blobs = append(v.Blobs, BlobView{
			ID:           b.ID.ID,
			Kind:         b.ID.Kind,
			Slot:         b.ID.ControlSlot,
			X:            b.Pos.X,
			Y:            b.Pos.Y,
			Radius:       b.Body.Radius,
			Color:        b.ID.Color,
			Facing:       b.Ctl.Facing,
			Stage:        b.Prog.Stage,
			HasArmor:     b.Armor.Has,
			ArmorSide:    b.Armor.Side,
			AttackTimer:  b.Ctl.AttackTimer,
			Invulnerable: b.Life.Invulnerable(),
		})
	}
	return v
}

// StatusText summarizes the session for the HUD.
func (g *Game) StatusText() string {
	var sb strings.Builder

	npcs := 0
	var players []string
	for _, b := range g.refreshViews() {
		switch b.ID.Kind {
		case components.KindNPC:
			if b.Alive() {
				npcs++
			}
		case components.KindPlayer:
			state := "out"
			if b.Alive() {
				state = "alive"
			}
			players = append(players, fmt.Sprintf("P%d: lvl %d, ate %d, %s",
				b.ID.ControlSlot+1, b.Prog.Stage+1, b.Prog.EatenCount, state))
		}
	}

	fmt.Fprintf(&sb, "NPCs left: %d. Evolve at %s eats.", npcs, joinInts(g.cfg.Evolution.Thresholds, "/"))
	if len(players) > 0 {
		sb.WriteString(" ")
		sb.WriteString(strings.Join(players, " | "))
	}
	return sb.String()
}

func joinInts(xs []int, sep string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, sep)
}

package game

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/blobarena/components"
	"github.com/pthm-cable/blobarena/config"
	"github.com/pthm-cable/blobarena/systems"
)

// buildRoster creates players then NPCs, IDs in creation order.
func (g *Game) buildRoster() {
	players := g.cfg.Roster.Players
	for i := 0; i < players; i++ {
		e := g.createEntity(components.KindPlayer)
		if i < len(g.pads) {
			_, _, _, _, _, _, ctl, _ := g.blobMapper.Get(e)
			ctl.Gamepad = g.pads[i]
		}
	}
	for i := 0; i < g.cfg.Roster.NPCs; i++ {
		g.createEntity(components.KindNPC)
	}
}

// createEntity spawns a fresh player or NPC. Spawn columns are spread by
// id; NPCs start on the floor, players drop in from the top.
func (g *Game) createEntity(kind components.Kind) ecs.Entity {
	id := g.nextID
	g.nextID++

	kt := &g.cfg.Kinds.Player
	if kind == components.KindNPC {
		kt = &g.cfg.Kinds.NPC
	}
	base := kt.BaseRadius
	if kt.RadiusJitter > 0 {
		base += g.rng.Float64() * kt.RadiusJitter
	}
	body := components.NewBody(base)

	ident := components.Identity{ID: id, Kind: kind, ControlSlot: components.NoSlot}
	ctl := components.Control{Gamepad: components.NoSlot, Facing: 1}
	pos := components.Position{X: 100 + math.Mod(float64(id)*129, g.arena.Width-180)}

	if kind == components.KindNPC {
		ident.Color = g.cfg.Derived.NPCColor
		pos.Y = g.arena.FloorY - base
		body.OnGround = true
	} else {
		ident.ControlSlot = id
		ident.Color = g.playerColor(id)
		ctl.Keymap = g.cfg.KeymapFor(id)
		pos.Y = base + 8
	}

	vel := components.Velocity{}
	life := components.Lifecycle{Alive: true}
	prog := components.Progression{}
	armor := components.Armor{}

	e := g.blobMapper.NewEntity(&ident, &pos, &vel, &body, &life, &prog, &ctl, &armor)
	if kind == components.KindNPC {
		brain := g.ai.NewBrain(g.rng)
		g.brainMap.Add(e, &brain)
	}
	g.roster = append(g.roster, e)
	return e
}

func (g *Game) playerColor(id int) config.RGBA {
	colors := g.cfg.Derived.PlayerColors
	if len(colors) == 0 {
		return g.cfg.Derived.NPCColor
	}
	return colors[id%len(colors)]
}

// spawnShard creates one queued shard entity. Its ID was reserved when
// the split was queued.
func (g *Game) spawnShard(spec systems.ShardSpec) ecs.Entity {
	life := components.Lifecycle{Alive: true}
	prog := components.Progression{}
	armor := components.Armor{}

	e := g.blobMapper.NewEntity(&spec.Identity, &spec.Position, &spec.Velocity, &spec.Body, &life, &prog, &spec.Control, &armor)
	g.roster = append(g.roster, e)
	return e
}

// view resolves an entity into component pointers. Valid until the next
// structural change.
func (g *Game) view(e ecs.Entity) systems.Blob {
	ident, pos, vel, body, life, prog, ctl, armor := g.blobMapper.Get(e)
	b := systems.Blob{
		ID:    ident,
		Pos:   pos,
		Vel:   vel,
		Body:  body,
		Life:  life,
		Prog:  prog,
		Ctl:   ctl,
		Armor: armor,
	}
	if g.brainMap.Has(e) {
		b.Brain = g.brainMap.Get(e)
	}
	return b
}

// refreshViews rebuilds the per-tick views in roster order.
func (g *Game) refreshViews() []systems.Blob {
	g.views = g.views[:0]
	for _, e := range g.roster {
		g.views = append(g.views, g.view(e))
	}
	return g.views
}

// find returns the roster index of an entity ID, or -1.
func (g *Game) find(id int) int {
	for i, b := range g.views {
		if b.ID.ID == id {
			return i
		}
	}
	return -1
}

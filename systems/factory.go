package systems

import (
	"github.com/lixenwraith/gridfall/components"
	"github.com/lixenwraith/gridfall/core"
	"github.com/lixenwraith/gridfall/engine"
	"github.com/lixenwraith/gridfall/vmath"
)

// Entity-kind glyph table: resolved once at creation, never
// re-queried per tick.
const (
	playerGlyph  = '@'
	hostileGlyph = 'Z'
	pickupGlyph  = '+'
)

// SpawnPlayer creates the player bundle at pos and registers it as the
// distinguished player. The caller supplies the collision and death
// reactions; the factory wires them into the collider and vitality.
func SpawnPlayer(ctx *engine.GameContext, pos vmath.Vec2, onOverlap func(self, other core.Entity), onDeath func(self core.Entity)) core.Entity {
	w := ctx.World
	cfg := ctx.Cfg
	size := cfg.Player.Size

	eb := w.NewEntity()
	engine.With(eb, w.Kinds, components.KindComponent{Kind: components.KindPlayer})
	engine.With(eb, w.Transforms, components.TransformComponent{Pos: pos, Scale: vmath.Vec2{X: 1, Y: 1}})
	engine.With(eb, w.Motions, components.MotionComponent{Mass: 1, Friction: cfg.Player.Friction})
	engine.With(eb, w.Visuals, components.VisualComponent{Glyph: playerGlyph, Color: components.ColorPlayer, W: size, H: size})
	engine.With(eb, w.Colliders, components.ColliderComponent{W: size, H: size, OnOverlap: onOverlap})
	engine.With(eb, w.Vitalities, components.VitalityComponent{Current: cfg.Player.MaxVitality, Max: cfg.Player.MaxVitality, OnDeath: onDeath})

	e := eb.Build()
	w.SetPlayer(e)
	return e
}

// SpawnHostile creates a pursuing hostile at pos. Hostiles carry no
// callbacks; the player's collider reacts for both sides of a contact.
func SpawnHostile(ctx *engine.GameContext, pos vmath.Vec2) core.Entity {
	w := ctx.World
	cfg := ctx.Cfg
	size := cfg.Hostile.Size

	eb := w.NewEntity()
	engine.With(eb, w.Kinds, components.KindComponent{Kind: components.KindHostile})
	engine.With(eb, w.Transforms, components.TransformComponent{Pos: pos, Scale: vmath.Vec2{X: 1, Y: 1}})
	engine.With(eb, w.Motions, components.MotionComponent{Mass: 1, Friction: cfg.Hostile.Friction})
	engine.With(eb, w.Visuals, components.VisualComponent{Glyph: hostileGlyph, Color: components.ColorHostile, W: size, H: size})
	engine.With(eb, w.Colliders, components.ColliderComponent{W: size, H: size})

	return eb.Build()
}

// SpawnPickup creates a trigger-shaped medkit at pos. No Motion:
// pickups never move, the integrator skips them entirely.
func SpawnPickup(ctx *engine.GameContext, pos vmath.Vec2) core.Entity {
	w := ctx.World
	cfg := ctx.Cfg
	size := cfg.Pickup.Size

	eb := w.NewEntity()
	engine.With(eb, w.Kinds, components.KindComponent{Kind: components.KindPickup})
	engine.With(eb, w.Transforms, components.TransformComponent{Pos: pos, Scale: vmath.Vec2{X: 1, Y: 1}})
	engine.With(eb, w.Visuals, components.VisualComponent{Glyph: pickupGlyph, Color: components.ColorPickup, W: size, H: size})
	engine.With(eb, w.Colliders, components.ColliderComponent{W: size, H: size, Trigger: true})

	return eb.Build()
}

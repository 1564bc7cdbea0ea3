package systems

import (
	"github.com/lixenwraith/gridfall/components"
	"github.com/lixenwraith/gridfall/core"
	"github.com/lixenwraith/gridfall/engine"
	"github.com/lixenwraith/gridfall/vmath"
)

// PhysicsSystem advances every entity carrying both Transform and
// Motion by semi-implicit Euler integration:
//
//	vel += acc*dt; vel *= friction; clamp |vel|; pos += vel*dt
//
// then clamps the entity footprint into the world bounds, zeroing
// velocity along any clamped axis (inelastic wall stop).
//
// Friction is applied per tick, not time-scaled, so effective damping
// depends on frame rate. Known characteristic, kept as-is.
//
// Deterministic for identical inputs: entities integrate in store
// insertion order and no allocation happens past transient scalars.
type PhysicsSystem struct {
	ctx *engine.GameContext
}

// NewPhysicsSystem creates the integrator.
func NewPhysicsSystem(ctx *engine.GameContext) *PhysicsSystem {
	return &PhysicsSystem{ctx: ctx}
}

func (s *PhysicsSystem) Priority() int {
	return PriorityPhysics
}

func (s *PhysicsSystem) Update(w *engine.World, dt float64) {
	maxSpeed := s.ctx.Cfg.Physics.MaxSpeed
	worldW := s.ctx.Cfg.World.Width
	worldH := s.ctx.Cfg.World.Height

	w.Motions.ForEach(func(e core.Entity, motion components.MotionComponent) {
		tr, ok := w.Transforms.Get(e)
		if !ok {
			return // motion without transform integrates nothing
		}

		motion.Vel = motion.Vel.Add(motion.Acc.Scale(dt))
		motion.Vel = motion.Vel.Scale(motion.Friction)
		motion.Vel = motion.Vel.ClampLen(maxSpeed)
		tr.Pos = tr.Pos.Add(motion.Vel.Scale(dt))

		fw, fh := footprint(w, e)
		maxX := worldW - fw
		if maxX < 0 {
			maxX = 0
		}
		maxY := worldH - fh
		if maxY < 0 {
			maxY = 0
		}
		if tr.Pos.X < 0 {
			tr.Pos.X = 0
			motion.Vel.X = 0
		} else if tr.Pos.X > maxX {
			tr.Pos.X = maxX
			motion.Vel.X = 0
		}
		if tr.Pos.Y < 0 {
			tr.Pos.Y = 0
			motion.Vel.Y = 0
		} else if tr.Pos.Y > maxY {
			tr.Pos.Y = maxY
			motion.Vel.Y = 0
		}

		w.Transforms.Set(e, tr)
		w.Motions.Set(e, motion)
	})
}

// footprint returns the containment size for an entity: the collider
// box when present, the visual footprint otherwise, a point for
// entities with neither.
func footprint(w *engine.World, e core.Entity) (float64, float64) {
	if col, ok := w.Colliders.Get(e); ok {
		return col.W, col.H
	}
	if vis, ok := w.Visuals.Get(e); ok {
		return vis.W, vis.H
	}
	return 0, 0
}

// entityRect builds the collision box for an entity from its transform
// and collider. Shared by the collision system and tests.
func entityRect(tr components.TransformComponent, col components.ColliderComponent) vmath.Rect {
	return vmath.Rect{X: tr.Pos.X, Y: tr.Pos.Y, W: col.W, H: col.H}
}

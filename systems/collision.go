package systems

import (
	"github.com/lixenwraith/gridfall/components"
	"github.com/lixenwraith/gridfall/core"
	"github.com/lixenwraith/gridfall/engine"
)

// contact records one overlapping pair found by the detection pass.
type contact struct {
	a, b    core.Entity
	trigger bool // at least one side is a trigger shape
}

// CollisionSystem runs the pairwise AABB pass in two phases.
//
// Detection is pure: every unordered pair of entities carrying both
// Transform and Collider is tested in store insertion order and
// overlapping pairs are collected. Edge-touching does not count.
//
// Reaction then walks the collected contacts in order: overlap
// callbacks fire (these carry the game rules: damage, scoring,
// removal), and non-trigger pairs are pushed apart along the axis of
// least penetration, the correction split equally, velocity zeroed on
// that axis for both. Equal penetration depths resolve along X.
//
// Entity removal requested by a callback is queued and flushed only
// after the whole pass, so every reaction observes the same liveness
// regardless of contact order.
//
// O(n²) by design; entity counts here never justify a spatial index.
type CollisionSystem struct {
	ctx *engine.GameContext

	// scratch buffers reused across ticks
	entities []core.Entity
	contacts []contact
}

// NewCollisionSystem creates the detector/resolver.
func NewCollisionSystem(ctx *engine.GameContext) *CollisionSystem {
	return &CollisionSystem{ctx: ctx}
}

func (s *CollisionSystem) Priority() int {
	return PriorityCollision
}

func (s *CollisionSystem) Update(w *engine.World, dt float64) {
	s.detect(w)
	s.react(w)
	w.FlushRemovals()
}

// detect fills s.contacts with every overlapping pair. Pairs with a
// missing transform on either side are skipped, never an error.
func (s *CollisionSystem) detect(w *engine.World) {
	s.entities = s.entities[:0]
	s.contacts = s.contacts[:0]

	w.Colliders.ForEach(func(e core.Entity, _ components.ColliderComponent) {
		s.entities = append(s.entities, e)
	})

	for i := 0; i < len(s.entities); i++ {
		a := s.entities[i]
		trA, ok := w.Transforms.Get(a)
		if !ok {
			continue
		}
		colA, _ := w.Colliders.Get(a)
		rectA := entityRect(trA, colA)

		for j := i + 1; j < len(s.entities); j++ {
			b := s.entities[j]
			trB, ok := w.Transforms.Get(b)
			if !ok {
				continue
			}
			colB, _ := w.Colliders.Get(b)

			if rectA.Overlaps(entityRect(trB, colB)) {
				s.contacts = append(s.contacts, contact{
					a:       a,
					b:       b,
					trigger: colA.Trigger || colB.Trigger,
				})
			}
		}
	}
}

// react applies callbacks and separation for each contact in order.
func (s *CollisionSystem) react(w *engine.World) {
	for _, c := range s.contacts {
		colA, okA := w.Colliders.Get(c.a)
		colB, okB := w.Colliders.Get(c.b)
		if !okA || !okB {
			continue
		}

		if colA.OnOverlap != nil {
			colA.OnOverlap(c.a, c.b)
		}
		if colB.OnOverlap != nil {
			colB.OnOverlap(c.b, c.a)
		}

		if !c.trigger {
			s.separate(w, c.a, c.b)
		}
	}
}

// separate pushes a non-trigger pair apart along the axis of least
// penetration. Positions are re-read here: an earlier contact this
// tick may already have moved one of the entities, and pushing out of
// a stale overlap would over-correct. A pair no longer overlapping
// needs no correction (its callbacks still fired).
func (s *CollisionSystem) separate(w *engine.World, a, b core.Entity) {
	trA, okA := w.Transforms.Get(a)
	trB, okB := w.Transforms.Get(b)
	if !okA || !okB {
		return
	}
	colA, _ := w.Colliders.Get(a)
	colB, _ := w.Colliders.Get(b)

	rectA := entityRect(trA, colA)
	rectB := entityRect(trB, colB)
	if !rectA.Overlaps(rectB) {
		return
	}

	px, py := rectA.Penetration(rectB)
	// Ties resolve along X for reproducibility
	if px <= py {
		half := px / 2
		if rectA.X <= rectB.X {
			trA.Pos.X -= half
			trB.Pos.X += half
		} else {
			trA.Pos.X += half
			trB.Pos.X -= half
		}
		zeroAxisX(w, a)
		zeroAxisX(w, b)
	} else {
		half := py / 2
		if rectA.Y <= rectB.Y {
			trA.Pos.Y -= half
			trB.Pos.Y += half
		} else {
			trA.Pos.Y += half
			trB.Pos.Y -= half
		}
		zeroAxisY(w, a)
		zeroAxisY(w, b)
	}

	w.Transforms.Set(a, trA)
	w.Transforms.Set(b, trB)
}

func zeroAxisX(w *engine.World, e core.Entity) {
	if m, ok := w.Motions.Get(e); ok {
		m.Vel.X = 0
		w.Motions.Set(e, m)
	}
}

func zeroAxisY(w *engine.World, e core.Entity) {
	if m, ok := w.Motions.Get(e); ok {
		m.Vel.Y = 0
		w.Motions.Set(e, m)
	}
}

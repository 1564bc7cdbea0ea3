package components

import "github.com/lixenwraith/gridfall/core"

// ColliderComponent gives an entity an axis-aligned bounding box for
// the collision pass. Trigger shapes report overlap through OnOverlap
// but are never positionally separated.
type ColliderComponent struct {
	W, H    float64
	Trigger bool

	// OnOverlap, when set, is invoked during the collision reaction
	// pass for every overlap involving this entity. Self is the owning
	// entity, other is the counterpart. Invoked once per overlapping
	// pair per tick.
	OnOverlap func(self, other core.Entity)
}

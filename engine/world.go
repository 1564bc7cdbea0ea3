package engine

import (
	"github.com/lixenwraith/gridfall/components"
	"github.com/lixenwraith/gridfall/core"
)

// World owns every entity and its components. All component stores are
// explicitly typed for compile-time safety and direct system access.
//
// The world is confined to the simulation goroutine: one tick runs to
// completion before the next is scheduled, so no store or counter here
// is synchronized. Anything that needs world data from another
// goroutine must receive a copy produced during a tick.
type World struct {
	nextEntityID core.Entity

	Kinds      *Store[components.KindComponent]
	Transforms *Store[components.TransformComponent]
	Motions    *Store[components.MotionComponent]
	Visuals    *Store[components.VisualComponent]
	Colliders  *Store[components.ColliderComponent]
	Vitalities *Store[components.VitalityComponent]

	// Lifecycle registry, every store implements AnyStore
	allStores []AnyStore

	player  core.Entity
	pending []core.Entity // removal queue, flushed at the collision pass boundary
}

// NewWorld creates a world with all component stores initialized.
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Kinds:        NewStore[components.KindComponent](),
		Transforms:   NewStore[components.TransformComponent](),
		Motions:      NewStore[components.MotionComponent](),
		Visuals:      NewStore[components.VisualComponent](),
		Colliders:    NewStore[components.ColliderComponent](),
		Vitalities:   NewStore[components.VitalityComponent](),
	}

	w.allStores = []AnyStore{
		w.Kinds,
		w.Transforms,
		w.Motions,
		w.Visuals,
		w.Colliders,
		w.Vitalities,
	}

	return w
}

// reserveEntityID allocates the next entity identifier.
func (w *World) reserveEntityID() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// RemoveEntity immediately removes all components of an entity. Inside
// the collision reaction pass use QueueRemove instead, so every
// reaction observes the same liveness.
func (w *World) RemoveEntity(e core.Entity) {
	for _, store := range w.allStores {
		store.Remove(e)
	}
	if e == w.player {
		w.player = core.InvalidEntity
	}
}

// QueueRemove marks an entity for removal at the next FlushRemovals.
// Queueing the same entity twice is harmless.
func (w *World) QueueRemove(e core.Entity) {
	for _, p := range w.pending {
		if p == e {
			return
		}
	}
	w.pending = append(w.pending, e)
}

// FlushRemovals removes every queued entity from all stores and
// empties the queue. Returns the number of entities removed.
func (w *World) FlushRemovals() int {
	if len(w.pending) == 0 {
		return 0
	}
	for _, store := range w.allStores {
		store.RemoveBatch(w.pending)
	}
	for _, e := range w.pending {
		if e == w.player {
			w.player = core.InvalidEntity
		}
	}
	n := len(w.pending)
	w.pending = w.pending[:0]
	return n
}

// SetPlayer records the distinguished player entity. At most one
// entity is the player at a time.
func (w *World) SetPlayer(e core.Entity) {
	w.player = e
}

// Player returns the player entity, or core.InvalidEntity when no
// player exists.
func (w *World) Player() core.Entity {
	return w.player
}

// CountKind returns the number of live entities with the given kind.
func (w *World) CountKind(k components.EntityKind) int {
	n := 0
	w.Kinds.ForEach(func(_ core.Entity, kc components.KindComponent) {
		if kc.Kind == k {
			n++
		}
	})
	return n
}

// Clear removes all entities and components and resets the identifier
// counter. Used on restart and in tests.
func (w *World) Clear() {
	w.nextEntityID = 1
	for _, store := range w.allStores {
		store.Clear()
	}
	w.player = core.InvalidEntity
	w.pending = w.pending[:0]
}

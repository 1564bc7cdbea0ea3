package engine

import "github.com/lixenwraith/gridfall/core"

// EntityBuilder provides a fluent, type-safe way to construct an entity
// from a component bundle. It reserves the entity ID upfront; With adds
// components, Build finalizes.
//
// Example:
//
//	e := With(With(w.NewEntity(),
//	    w.Kinds, components.KindComponent{Kind: components.KindPickup}),
//	    w.Transforms, components.TransformComponent{Pos: pos},
//	).Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity creates an EntityBuilder with a reserved entity ID.
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.reserveEntityID(),
	}
}

// With adds a component of type T to the entity being built. The store
// must belong to the builder's world. Returns the builder for
// chaining; panics if called after Build.
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built, cannot add components after Build()")
	}
	store.Set(eb.entity, component)
	return eb
}

// Build finalizes construction and returns the entity ID. After Build
// no more components can be added through this builder.
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}

// Entity returns the reserved identifier without finalizing, for
// component callbacks that need to capture it during construction.
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

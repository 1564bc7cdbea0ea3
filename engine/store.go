package engine

import (
	"github.com/lixenwraith/gridfall/core"
)

// AnyStore provides type-erased operations so the world can run
// lifecycle passes (removal, clear) over every store uniformly.
type AnyStore interface {
	Remove(e core.Entity)
	RemoveBatch(entities []core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}

// Store is a generic container for one component type. Entities keep
// stable insertion order in the entity slice, which fixes iteration
// order so identical runs replay identically.
//
// Stores carry no synchronization: the world and everything in it is
// confined to the simulation goroutine (see World).
type Store[T any] struct {
	components map[core.Entity]T
	entities   []core.Entity
}

// NewStore creates an empty component store for type T.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// Set inserts or updates the component for an entity. First insertion
// appends the entity to the iteration order; updates keep its slot.
func (s *Store[T]) Set(e core.Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get retrieves the component for an entity.
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Has reports whether the entity has this component.
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// Remove deletes the component from an entity, preserving the
// insertion order of the remaining entities.
func (s *Store[T]) Remove(e core.Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// RemoveBatch deletes multiple entities in one compaction pass,
// preserving insertion order. O(n+m) against O(n*m) for repeated
// single removes.
func (s *Store[T]) RemoveBatch(entities []core.Entity) {
	if len(entities) == 0 || len(s.components) == 0 {
		return
	}

	toRemove := make(map[core.Entity]struct{}, len(entities))
	for _, e := range entities {
		if _, exists := s.components[e]; exists {
			toRemove[e] = struct{}{}
			delete(s.components, e)
		}
	}
	if len(toRemove) == 0 {
		return
	}

	writeIdx := 0
	for _, e := range s.entities {
		if _, remove := toRemove[e]; !remove {
			s.entities[writeIdx] = e
			writeIdx++
		}
	}
	s.entities = s.entities[:writeIdx]
}

// Entities returns a copy of the entity list in insertion order.
func (s *Store[T]) Entities() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// ForEach visits every entity in insertion order without allocating.
// Calling Set for an already-present entity inside fn is safe; adding
// or removing entities of this component type during iteration is not.
func (s *Store[T]) ForEach(fn func(e core.Entity, val T)) {
	for _, e := range s.entities {
		fn(e, s.components[e])
	}
}

// Count returns the number of entities with this component.
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes all components from this store.
func (s *Store[T]) Clear() {
	s.components = make(map[core.Entity]T)
	s.entities = s.entities[:0]
}

package core

// Entity is an opaque identifier for a simulation entity. Components
// attach to entities through typed stores; the identifier itself
// carries no data.
type Entity uint64

// InvalidEntity is the zero Entity, never assigned to a live entity.
const InvalidEntity Entity = 0

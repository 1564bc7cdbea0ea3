package engine

// System is one stage of the per-tick pipeline. Update receives the
// sanitized tick duration in seconds and runs to completion before the
// next stage. Priority orders stages; lower runs first, ties keep
// registration order.
type System interface {
	Update(w *World, dt float64)
	Priority() int
}

package components

import "github.com/lixenwraith/gridfall/vmath"

// MotionComponent holds integration state for a moving entity.
// Friction is a per-tick multiplicative damping factor in (0, 1]; it is
// applied every tick regardless of dt, so effective damping depends on
// frame rate. Mass is carried but not used numerically.
type MotionComponent struct {
	Vel      vmath.Vec2 // World units per second
	Acc      vmath.Vec2 // World units per second squared
	Mass     float64
	Friction float64
}

package components

import "github.com/lixenwraith/gridfall/vmath"

// TransformComponent holds spatial placement in world units.
// Rotation is carried for renderers but unused by simulation logic.
type TransformComponent struct {
	Pos      vmath.Vec2 // Top-left corner of the entity footprint
	Rotation float64    // Radians, presentation only
	Scale    vmath.Vec2 // Render scale, (1, 1) for normal size
}

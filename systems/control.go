package systems

import (
	"github.com/lixenwraith/gridfall/core"
	"github.com/lixenwraith/gridfall/engine"
)

// InputSource is the seam to the input layer. The control
// system polls it once per tick; nothing calls back into the core.
type InputSource interface {
	// Axes returns the signed unit contribution per movement axis,
	// each in {-1, 0, +1}.
	Axes() (ax, ay float64)
}

// ControlSystem sets the player velocity from the polled input axes.
// The player is assignment-controlled: velocity is written directly,
// magnitude = configured player speed per active axis, not
// acceleration-based. Diagonal movement is not speed-normalized, so
// moving on both axes is √2 faster than axis-aligned movement. That
// asymmetry is a known product decision, kept as-is.
type ControlSystem struct {
	ctx *engine.GameContext
	src InputSource
}

// NewControlSystem creates the control system over an input source.
func NewControlSystem(ctx *engine.GameContext, src InputSource) *ControlSystem {
	return &ControlSystem{ctx: ctx, src: src}
}

func (s *ControlSystem) Priority() int {
	return PriorityControl
}

func (s *ControlSystem) Update(w *engine.World, dt float64) {
	player := w.Player()
	if player == core.InvalidEntity {
		return
	}
	motion, ok := w.Motions.Get(player)
	if !ok {
		return
	}

	ax, ay := s.src.Axes()
	speed := s.ctx.Cfg.Player.Speed
	motion.Vel.X = ax * speed
	motion.Vel.Y = ay * speed
	w.Motions.Set(player, motion)
}

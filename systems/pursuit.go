package systems

import (
	"github.com/lixenwraith/gridfall/components"
	"github.com/lixenwraith/gridfall/core"
	"github.com/lixenwraith/gridfall/engine"
)

// PursuitSystem points every hostile at the player: velocity is set to
// normalize(playerPos - hostilePos) scaled by the configured hostile
// speed, every tick. At exactly zero distance the direction is the
// zero vector, so a hostile sitting on the player holds still instead
// of dividing by zero.
//
// This deliberately overwrites whatever the integrator left from the
// previous tick: hostiles are velocity-controlled and never
// accelerate, while the player is assignment-controlled through input.
// No prediction, no avoidance, no path planning.
type PursuitSystem struct {
	ctx *engine.GameContext
}

// NewPursuitSystem creates the adversary controller.
func NewPursuitSystem(ctx *engine.GameContext) *PursuitSystem {
	return &PursuitSystem{ctx: ctx}
}

func (s *PursuitSystem) Priority() int {
	return PriorityPursuit
}

func (s *PursuitSystem) Update(w *engine.World, dt float64) {
	player := w.Player()
	if player == core.InvalidEntity {
		return
	}
	playerTr, ok := w.Transforms.Get(player)
	if !ok {
		return
	}

	speed := s.ctx.Cfg.Hostile.Speed
	w.Kinds.ForEach(func(e core.Entity, kc components.KindComponent) {
		if kc.Kind != components.KindHostile {
			return
		}
		tr, ok := w.Transforms.Get(e)
		if !ok {
			return
		}
		motion, ok := w.Motions.Get(e)
		if !ok {
			return
		}

		motion.Vel = playerTr.Pos.Sub(tr.Pos).Normalize().Scale(speed)
		w.Motions.Set(e, motion)
	})
}

package systems

import (
	"github.com/lixenwraith/gridfall/components"
	"github.com/lixenwraith/gridfall/config"
	"github.com/lixenwraith/gridfall/engine"
	"github.com/lixenwraith/gridfall/events"
)

// ProgressSystem evaluates run objectives at the end of every tick.
//
// Areas variant: the current area gets its hostile batch seeded the
// first time it is entered, and counts as cleared exactly when its
// live hostile count reaches zero. Clearing unlocks navigation to the
// neighbor areas; the navigation itself happens in the scene loop off
// the just-pressed inputs.
//
// Timed variant: when the pausable game clock passes the target
// duration, the run ends. Zero hostiles alive means victory, anything
// else means game over. The clock freezes while paused, so the target
// cannot be waited out from the pause screen.
type ProgressSystem struct {
	ctx     *engine.GameContext
	spawner *SpawnSystem // placement only, for area batch seeding
}

// NewProgressSystem creates the progression checker.
func NewProgressSystem(ctx *engine.GameContext) *ProgressSystem {
	return &ProgressSystem{ctx: ctx, spawner: NewSpawnSystem(ctx)}
}

func (s *ProgressSystem) Priority() int {
	return PriorityProgress
}

func (s *ProgressSystem) Update(w *engine.World, dt float64) {
	switch s.ctx.Cfg.Run.Variant {
	case config.VariantAreas:
		s.updateAreas(w)
	case config.VariantTimed:
		s.updateTimed(w)
	}
}

func (s *ProgressSystem) updateAreas(w *engine.World) {
	gs := s.ctx.State
	idx := gs.AreaIndex
	if idx < 0 || idx >= len(gs.AreaSeeded) {
		return
	}

	if !gs.AreaSeeded[idx] {
		gs.AreaSeeded[idx] = true
		batch := s.ctx.Cfg.Run.HostilesPerArea
		for i := 0; i < batch; i++ {
			SpawnHostile(s.ctx, s.spawner.SpawnPosition(w, s.ctx.Cfg.Hostile.Size))
		}
		return // freshly seeded areas are never cleared the same tick
	}

	if !gs.AreaCleared[idx] && w.CountKind(components.KindHostile) == 0 {
		gs.AreaCleared[idx] = true
		s.ctx.Emit(events.EventAreaCleared, &events.AreaPayload{Area: idx})
	}
}

func (s *ProgressSystem) updateTimed(w *engine.World) {
	gs := s.ctx.State
	target := s.ctx.Cfg.Run.TargetSeconds
	if s.ctx.Clock.Elapsed().Seconds() <= target {
		return
	}
	now := s.ctx.Clock.Now()
	if w.CountKind(components.KindHostile) == 0 {
		if gs.TransitionPhase(engine.PhaseVictory, now) {
			s.ctx.Emit(events.EventVictory, nil)
		}
		return
	}
	if gs.TransitionPhase(engine.PhaseGameOver, now) {
		s.ctx.Emit(events.EventGameOver, nil)
	}
}

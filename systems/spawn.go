package systems

import (
	"time"

	"github.com/lixenwraith/gridfall/components"
	"github.com/lixenwraith/gridfall/config"
	"github.com/lixenwraith/gridfall/core"
	"github.com/lixenwraith/gridfall/engine"
	"github.com/lixenwraith/gridfall/vmath"
)

// SpawnSystem keeps the field populated. Pickups appear on a fixed
// interval in both variants, capped at the configured live count. In
// the timed variant hostiles also spawn on an interval with their own
// cap; the areas variant seeds hostiles as per-area batches instead,
// which is the progress system's job.
//
// Schedules run on game time (the pausable clock), so nothing spawns
// while the run is paused.
type SpawnSystem struct {
	ctx *engine.GameContext
}

// NewSpawnSystem creates the spawn scheduler.
func NewSpawnSystem(ctx *engine.GameContext) *SpawnSystem {
	return &SpawnSystem{ctx: ctx}
}

func (s *SpawnSystem) Priority() int {
	return PrioritySpawn
}

func (s *SpawnSystem) Update(w *engine.World, dt float64) {
	now := s.ctx.Clock.Now()
	gs := s.ctx.State
	cfg := s.ctx.Cfg

	if gs.NextPickupAt.IsZero() {
		gs.NextPickupAt = now.Add(s.seconds(cfg.Spawn.PickupIntervalSeconds))
	}
	if !now.Before(gs.NextPickupAt) {
		if w.CountKind(components.KindPickup) < cfg.Spawn.MaxPickups {
			SpawnPickup(s.ctx, s.SpawnPosition(w, cfg.Pickup.Size))
		}
		gs.NextPickupAt = now.Add(s.seconds(cfg.Spawn.PickupIntervalSeconds))
	}

	if cfg.Run.Variant != config.VariantTimed {
		return
	}
	if s.ctx.Clock.Elapsed().Seconds() > cfg.Run.TargetSeconds {
		return // past the target nothing new spawns; the run is being judged
	}
	if gs.NextHostileAt.IsZero() {
		gs.NextHostileAt = now.Add(s.seconds(cfg.Spawn.HostileIntervalSeconds))
	}
	if !now.Before(gs.NextHostileAt) {
		if w.CountKind(components.KindHostile) < cfg.Spawn.MaxHostiles {
			SpawnHostile(s.ctx, s.SpawnPosition(w, cfg.Hostile.Size))
		}
		gs.NextHostileAt = now.Add(s.seconds(cfg.Spawn.HostileIntervalSeconds))
	}
}

func (s *SpawnSystem) seconds(sec float64) time.Duration {
	return time.Duration(sec * float64(time.Second))
}

// SpawnPosition picks a random in-bounds position at least the
// configured safe radius away from the player, so nothing materializes
// on top of them. Gives up after a few resamples on a crowded field
// and returns the last candidate; a close spawn is a nuisance, not an
// error.
func (s *SpawnSystem) SpawnPosition(w *engine.World, size float64) vmath.Vec2 {
	cfg := s.ctx.Cfg
	maxX := cfg.World.Width - size
	if maxX < 0 {
		maxX = 0
	}
	maxY := cfg.World.Height - size
	if maxY < 0 {
		maxY = 0
	}

	var playerPos vmath.Vec2
	hasPlayer := false
	if p := w.Player(); p != core.InvalidEntity {
		if tr, ok := w.Transforms.Get(p); ok {
			playerPos = tr.Pos
			hasPlayer = true
		}
	}

	var pos vmath.Vec2
	for attempt := 0; attempt < 16; attempt++ {
		pos = vmath.Vec2{
			X: s.ctx.Rand.Float64() * maxX,
			Y: s.ctx.Rand.Float64() * maxY,
		}
		if !hasPlayer || pos.Sub(playerPos).Len() >= cfg.Spawn.SafeRadius {
			return pos
		}
	}
	return pos
}

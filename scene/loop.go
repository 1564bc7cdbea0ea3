package scene

import (
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/gridfall/components"
	"github.com/lixenwraith/gridfall/config"
	"github.com/lixenwraith/gridfall/core"
	"github.com/lixenwraith/gridfall/engine"
	"github.com/lixenwraith/gridfall/events"
	"github.com/lixenwraith/gridfall/input"
	"github.com/lixenwraith/gridfall/scores"
	"github.com/lixenwraith/gridfall/systems"
	"github.com/lixenwraith/gridfall/vmath"
)

// InputProvider is the polled input seam. The loop queries it once per
// tick; nothing calls back into the simulation.
type InputProvider interface {
	Axes() (ax, ay float64)
	JustPressed(a input.Action) bool
	Reset()
}

// Loop owns the world and drives the per-tick sequence: feedback
// dispatch, input control, integration, collision, pursuit, spawning,
// progression, bookkeeping. It also runs the phase state machine:
// awaiting-start, playing, paused, game-over, victory.
//
// Everything here runs on the main loop goroutine; one Tick completes
// before the next is scheduled.
type Loop struct {
	ctx      *engine.GameContext
	in       InputProvider
	router   *events.Router[*engine.GameContext]
	recorder scores.Recorder
	pipeline []engine.System

	recorded bool // run already written to the score store
}

// NewLoop wires the simulation pipeline over a context. A nil recorder
// disables persistence.
func NewLoop(ctx *engine.GameContext, in InputProvider, recorder scores.Recorder) *Loop {
	if recorder == nil {
		recorder = scores.NopRecorder{}
	}
	l := &Loop{
		ctx:      ctx,
		in:       in,
		router:   events.NewRouter[*engine.GameContext](ctx.Events),
		recorder: recorder,
	}

	for _, sys := range []engine.System{
		systems.NewControlSystem(ctx, in),
		systems.NewPhysicsSystem(ctx),
		systems.NewCollisionSystem(ctx),
		systems.NewPursuitSystem(ctx),
		systems.NewSpawnSystem(ctx),
		systems.NewProgressSystem(ctx),
	} {
		l.addSystem(sys)
	}
	return l
}

// addSystem inserts a system keeping the pipeline sorted by priority,
// registration order breaking ties.
func (l *Loop) addSystem(sys engine.System) {
	pos := len(l.pipeline)
	for i, existing := range l.pipeline {
		if sys.Priority() < existing.Priority() {
			pos = i
			break
		}
	}
	l.pipeline = append(l.pipeline, nil)
	copy(l.pipeline[pos+1:], l.pipeline[pos:])
	l.pipeline[pos] = sys
}

// Router exposes the feedback router so main can register handlers
// (audio cues, debug log) before the loop starts.
func (l *Loop) Router() *events.Router[*engine.GameContext] {
	return l.router
}

// Context returns the game context, for renderers and main.
func (l *Loop) Context() *engine.GameContext {
	return l.ctx
}

// StartRun clears the world and begins a fresh run: new run id, reset
// clock and counters, player re-created, initial entities re-seeded.
// Serves both the cold start and restarts from a terminal phase.
func (l *Loop) StartRun() {
	ctx := l.ctx
	ctx.World.Clear()
	ctx.Clock.Reset()
	ctx.State.Reset(ctx.Cfg.Run.Areas, ctx.Clock.Now(), uuid.NewString())
	l.recorded = false
	l.in.Reset()

	l.seed()
	ctx.Emit(events.EventRunStarted, nil)
	ctx.Log.Debug("run started",
		zap.String("run_id", ctx.State.RunID),
		zap.String("variant", string(ctx.Cfg.Run.Variant)))
}

// seed places the player at the field center and the initial hostiles
// around them. The areas variant seeds nothing here: its first batch
// comes from the progress system when area 0 is entered.
func (l *Loop) seed() {
	ctx := l.ctx
	cfg := ctx.Cfg

	center := vmath.Vec2{
		X: (cfg.World.Width - cfg.Player.Size) / 2,
		Y: (cfg.World.Height - cfg.Player.Size) / 2,
	}
	systems.SpawnPlayer(ctx, center, l.onPlayerOverlap, l.onPlayerDeath)

	if cfg.Run.Variant == config.VariantTimed {
		spawner := systems.NewSpawnSystem(ctx)
		for i := 0; i < cfg.Spawn.InitialHostiles; i++ {
			systems.SpawnHostile(ctx, spawner.SpawnPosition(ctx.World, cfg.Hostile.Size))
		}
	}
}

// Tick advances the simulation by one frame. rawDT is wall-clock
// seconds since the previous tick; it is sanitized here so every
// system downstream sees a finite, capped value.
func (l *Loop) Tick(rawDT float64) {
	ctx := l.ctx
	dt := sanitizeDT(rawDT, ctx.Cfg.Physics.MaxTickSeconds)

	// Feedback from the previous tick goes out first, in every phase,
	// so terminal-phase events (victory fanfare) still play.
	l.router.DispatchAll(ctx)

	switch ctx.State.CurrentPhase {
	case engine.PhaseAwaitingStart:
		if l.in.JustPressed(input.ActionStart) {
			l.StartRun()
		}

	case engine.PhasePaused:
		if l.in.JustPressed(input.ActionPause) {
			ctx.Clock.Resume()
			ctx.State.TransitionPhase(engine.PhasePlaying, ctx.Clock.Now())
		}

	case engine.PhaseGameOver, engine.PhaseVictory:
		if l.in.JustPressed(input.ActionRestart) || l.in.JustPressed(input.ActionStart) {
			l.StartRun()
		}

	case engine.PhasePlaying:
		l.tickPlaying(dt)
	}
}

func (l *Loop) tickPlaying(dt float64) {
	ctx := l.ctx

	if l.in.JustPressed(input.ActionPause) {
		ctx.State.TransitionPhase(engine.PhasePaused, ctx.Clock.Now())
		ctx.Clock.Pause()
		return
	}

	if ctx.Cfg.Run.Variant == config.VariantAreas {
		if l.in.JustPressed(input.ActionNextArea) {
			l.navigateArea(1)
		}
		if l.in.JustPressed(input.ActionPrevArea) {
			l.navigateArea(-1)
		}
	}

	for _, sys := range l.pipeline {
		sys.Update(ctx.World, dt)
		if !ctx.State.IsPlaying() {
			break // a reaction ended the run mid-pipeline
		}
	}

	ctx.State.IncrementFrame()
	l.decayFlash(dt)

	if ctx.State.IsEnded() && !l.recorded {
		l.recordRun()
	}
}

// navigateArea moves between areas once the current one is cleared.
// Entering an unseeded area makes the progress system seed its batch
// on the same tick.
func (l *Loop) navigateArea(delta int) {
	gs := l.ctx.State
	if gs.AreaIndex < 0 || gs.AreaIndex >= len(gs.AreaCleared) {
		return
	}
	if !gs.AreaCleared[gs.AreaIndex] {
		return // locked until the current area is cleared
	}
	next := gs.AreaIndex + delta
	if next < 0 || next >= len(gs.AreaSeeded) {
		return
	}
	gs.AreaIndex = next
	l.ctx.Emit(events.EventAreaEntered, &events.AreaPayload{Area: next})
}

// decayFlash counts down damage-flash timers. Presentation state only.
func (l *Loop) decayFlash(dt float64) {
	w := l.ctx.World
	w.Visuals.ForEach(func(e core.Entity, vis components.VisualComponent) {
		if vis.FlashFor <= 0 {
			return
		}
		vis.FlashFor -= dt
		if vis.FlashFor < 0 {
			vis.FlashFor = 0
		}
		w.Visuals.Set(e, vis)
	})
}

// recordRun writes the finished run to the score store. A persistence
// failure is logged and forgotten; it never interrupts the game.
func (l *Loop) recordRun() {
	l.recorded = true
	ctx := l.ctx
	gs := ctx.State

	outcome := "game-over"
	if gs.CurrentPhase == engine.PhaseVictory {
		outcome = "victory"
	}
	rec := scores.RunRecord{
		ID:              gs.RunID,
		Variant:         string(ctx.Cfg.Run.Variant),
		Outcome:         outcome,
		Score:           gs.Score,
		Defeated:        gs.Defeated,
		SurvivedSeconds: ctx.Clock.Elapsed().Seconds(),
		CreatedAt:       ctx.Clock.Now(),
	}
	if err := l.recorder.RecordRun(rec); err != nil {
		ctx.Log.Warn("score record failed", zap.Error(err))
	}
}

// sanitizeDT clamps a raw tick duration to something the integrator
// can run on: non-finite and negative values become zero, stalls are
// capped so a backgrounded terminal never catapults the simulation.
func sanitizeDT(dt, maxDT float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	if dt > maxDT {
		return maxDT
	}
	return dt
}

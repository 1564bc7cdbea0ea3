package engine

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/lixenwraith/gridfall/config"
	"github.com/lixenwraith/gridfall/events"
)

// GameContext bundles everything the per-tick pipeline operates on:
// the world, run state, the pausable game clock, the immutable config
// snapshot, the seeded random source, and the feedback event queue.
// Systems receive it at construction and keep a pointer; the context
// itself never changes identity during a run.
type GameContext struct {
	World  *World
	State  *GameState
	Clock  *PausableClock
	Cfg    config.Config
	Rand   *rand.Rand
	Events *events.EventQueue
	Log    *zap.Logger
}

// NewGameContext creates a context with a fresh world and state.
// A nil logger is replaced with a nop logger so call sites never
// nil-check.
func NewGameContext(cfg config.Config, tp TimeProvider, rng *rand.Rand, log *zap.Logger) *GameContext {
	if log == nil {
		log = zap.NewNop()
	}
	clock := NewPausableClock(tp)
	return &GameContext{
		World:  NewWorld(),
		State:  NewGameState(cfg.Run.Areas, clock.Now()),
		Clock:  clock,
		Cfg:    cfg,
		Rand:   rng,
		Events: events.NewEventQueue(),
		Log:    log,
	}
}

// Emit stamps and queues a feedback event. Dispatch happens at the top
// of the next tick; the simulation never blocks on consumers.
func (g *GameContext) Emit(t events.EventType, payload any) {
	g.Events.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Frame:     g.State.FrameNumber,
		Timestamp: g.Clock.Now(),
	})
}

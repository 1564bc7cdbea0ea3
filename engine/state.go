package engine

import "time"

// GamePhase is the scene state machine position.
type GamePhase uint8

const (
	PhaseAwaitingStart GamePhase = iota // cold boot, start screen
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseVictory // timed variant only
)

// String returns the phase name for logs and overlays.
func (p GamePhase) String() string {
	switch p {
	case PhaseAwaitingStart:
		return "awaiting-start"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game-over"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// validTransitions is the complete legal edge set of the phase machine.
// Restart edges (GameOver/Victory to Playing) are taken by Reset.
var validTransitions = map[GamePhase][]GamePhase{
	PhaseAwaitingStart: {PhasePlaying},
	PhasePlaying:       {PhasePaused, PhaseGameOver, PhaseVictory},
	PhasePaused:        {PhasePlaying},
	PhaseGameOver:      {PhasePlaying},
	PhaseVictory:       {PhasePlaying},
}

// GameState holds run-scoped counters, spawn bookkeeping, and the
// phase machine. Like the world it is confined to the simulation
// goroutine and unsynchronized; renderers read it between ticks on the
// same goroutine.
type GameState struct {
	CurrentPhase   GamePhase
	PhaseStartTime time.Time // game time the current phase began

	// Run counters, mutated by collision reactions and progression
	Score    int
	Defeated int

	// Area progression (areas variant)
	AreaIndex   int
	AreaSeeded  []bool
	AreaCleared []bool

	// Spawn schedule in game time
	NextPickupAt  time.Time
	NextHostileAt time.Time

	// Frame bookkeeping
	FrameNumber int64

	// RunID identifies this run in the score store
	RunID string
}

// NewGameState creates state for a run with the given area count,
// starting in PhaseAwaitingStart at game time now.
func NewGameState(areas int, now time.Time) *GameState {
	return &GameState{
		CurrentPhase:   PhaseAwaitingStart,
		PhaseStartTime: now,
		AreaSeeded:     make([]bool, areas),
		AreaCleared:    make([]bool, areas),
	}
}

// CanTransition reports whether the edge from -> to is legal.
func (gs *GameState) CanTransition(from, to GamePhase) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// TransitionPhase attempts the transition to a new phase, recording
// the phase start time on success. Illegal transitions are refused,
// never fatal.
func (gs *GameState) TransitionPhase(to GamePhase, now time.Time) bool {
	if !gs.CanTransition(gs.CurrentPhase, to) {
		return false
	}
	gs.CurrentPhase = to
	gs.PhaseStartTime = now
	return true
}

// IsPlaying reports whether simulation systems should run this tick.
func (gs *GameState) IsPlaying() bool {
	return gs.CurrentPhase == PhasePlaying
}

// IsEnded reports whether the run has reached a terminal phase.
func (gs *GameState) IsEnded() bool {
	return gs.CurrentPhase == PhaseGameOver || gs.CurrentPhase == PhaseVictory
}

// IncrementFrame advances and returns the frame counter.
func (gs *GameState) IncrementFrame() int64 {
	gs.FrameNumber++
	return gs.FrameNumber
}

// Reset clears counters and schedules for a fresh run and enters
// PhasePlaying directly. Restart from a terminal phase lands here;
// PhaseAwaitingStart is only the cold-boot state.
func (gs *GameState) Reset(areas int, now time.Time, runID string) {
	gs.CurrentPhase = PhasePlaying
	gs.PhaseStartTime = now
	gs.Score = 0
	gs.Defeated = 0
	gs.AreaIndex = 0
	gs.AreaSeeded = make([]bool, areas)
	gs.AreaCleared = make([]bool, areas)
	gs.NextPickupAt = time.Time{}
	gs.NextHostileAt = time.Time{}
	gs.FrameNumber = 0
	gs.RunID = runID
}

package engine

import "time"

// PausableClock provides game time that freezes while paused, with
// cumulative pause duration tracking. The timed run variant measures
// its target duration against this clock, so pausing never counts
// toward survival time.
type PausableClock struct {
	tp TimeProvider

	start       time.Time // game time epoch (real time of creation or last reset)
	pausedAt    time.Time // real time the current pause began
	totalPaused time.Duration
	paused      bool
}

// NewPausableClock creates a running clock on the given provider.
func NewPausableClock(tp TimeProvider) *PausableClock {
	return &PausableClock{
		tp:    tp,
		start: tp.Now(),
	}
}

// Elapsed returns game time since creation or the last Reset,
// excluding time spent paused.
func (pc *PausableClock) Elapsed() time.Duration {
	if pc.paused {
		return pc.pausedAt.Sub(pc.start) - pc.totalPaused
	}
	return pc.tp.Now().Sub(pc.start) - pc.totalPaused
}

// Now returns the current game time: the epoch advanced by Elapsed.
// Frozen at the pause point while paused.
func (pc *PausableClock) Now() time.Time {
	return pc.start.Add(pc.Elapsed())
}

// Pause stops game time advancement. No-op when already paused.
func (pc *PausableClock) Pause() {
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pausedAt = pc.tp.Now()
}

// Resume continues game time advancement. No-op when not paused.
func (pc *PausableClock) Resume() {
	if !pc.paused {
		return
	}
	pc.totalPaused += pc.tp.Now().Sub(pc.pausedAt)
	pc.paused = false
	pc.pausedAt = time.Time{}
}

// Provider returns the underlying time source.
func (pc *PausableClock) Provider() TimeProvider {
	return pc.tp
}

// IsPaused returns the current pause state.
func (pc *PausableClock) IsPaused() bool {
	return pc.paused
}

// TotalPaused returns cumulative pause time, including the current
// pause when one is in progress.
func (pc *PausableClock) TotalPaused() time.Duration {
	total := pc.totalPaused
	if pc.paused {
		total += pc.tp.Now().Sub(pc.pausedAt)
	}
	return total
}

// Reset restarts the epoch at the present and clears pause history.
// Used when a new run begins.
func (pc *PausableClock) Reset() {
	pc.start = pc.tp.Now()
	pc.pausedAt = time.Time{}
	pc.totalPaused = 0
	pc.paused = false
}

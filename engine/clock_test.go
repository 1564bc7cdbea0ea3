package engine

import (
	"testing"
	"time"
)

func TestClockElapsedExcludesPause(t *testing.T) {
	tp := NewMockTimeProvider(time.Unix(1000, 0))
	pc := NewPausableClock(tp)

	tp.Advance(2 * time.Second)
	if got := pc.Elapsed(); got != 2*time.Second {
		t.Errorf("Expected 2s elapsed, got %v", got)
	}

	pc.Pause()
	tp.Advance(5 * time.Second)
	if got := pc.Elapsed(); got != 2*time.Second {
		t.Errorf("Expected elapsed frozen at 2s during pause, got %v", got)
	}

	pc.Resume()
	tp.Advance(3 * time.Second)
	if got := pc.Elapsed(); got != 5*time.Second {
		t.Errorf("Expected 5s elapsed after resume, got %v", got)
	}
	if got := pc.TotalPaused(); got != 5*time.Second {
		t.Errorf("Expected 5s total paused, got %v", got)
	}
}

func TestClockNowFrozenWhilePaused(t *testing.T) {
	tp := NewMockTimeProvider(time.Unix(1000, 0))
	pc := NewPausableClock(tp)

	tp.Advance(time.Second)
	pc.Pause()
	frozen := pc.Now()

	tp.Advance(10 * time.Second)
	if got := pc.Now(); !got.Equal(frozen) {
		t.Errorf("Expected Now frozen at %v, got %v", frozen, got)
	}
}

func TestClockDoublePauseResume(t *testing.T) {
	tp := NewMockTimeProvider(time.Unix(1000, 0))
	pc := NewPausableClock(tp)

	pc.Pause()
	pc.Pause() // no-op
	tp.Advance(4 * time.Second)
	pc.Resume()
	pc.Resume() // no-op

	if got := pc.TotalPaused(); got != 4*time.Second {
		t.Errorf("Expected 4s total paused, got %v", got)
	}
	if pc.IsPaused() {
		t.Error("Expected clock running after resume")
	}
}

func TestClockTotalPausedIncludesCurrentPause(t *testing.T) {
	tp := NewMockTimeProvider(time.Unix(1000, 0))
	pc := NewPausableClock(tp)

	pc.Pause()
	tp.Advance(3 * time.Second)

	if got := pc.TotalPaused(); got != 3*time.Second {
		t.Errorf("Expected 3s including current pause, got %v", got)
	}
}

func TestClockReset(t *testing.T) {
	tp := NewMockTimeProvider(time.Unix(1000, 0))
	pc := NewPausableClock(tp)

	tp.Advance(7 * time.Second)
	pc.Pause()
	tp.Advance(2 * time.Second)

	pc.Reset()

	if pc.IsPaused() {
		t.Error("Expected clock running after reset")
	}
	if got := pc.Elapsed(); got != 0 {
		t.Errorf("Expected zero elapsed after reset, got %v", got)
	}
	if got := pc.TotalPaused(); got != 0 {
		t.Errorf("Expected zero pause history after reset, got %v", got)
	}

	tp.Advance(time.Second)
	if got := pc.Elapsed(); got != time.Second {
		t.Errorf("Expected 1s after reset and advance, got %v", got)
	}
}

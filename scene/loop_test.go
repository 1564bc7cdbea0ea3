package scene

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/gridfall/components"
	"github.com/lixenwraith/gridfall/config"
	"github.com/lixenwraith/gridfall/core"
	"github.com/lixenwraith/gridfall/engine"
	"github.com/lixenwraith/gridfall/input"
	"github.com/lixenwraith/gridfall/scores"
	"github.com/lixenwraith/gridfall/systems"
	"github.com/lixenwraith/gridfall/vmath"
)

const testDT = 0.016

// stubInput satisfies InputProvider with scriptable state.
type stubInput struct {
	ax, ay  float64
	pressed map[input.Action]bool
}

func newStubInput() *stubInput {
	return &stubInput{pressed: make(map[input.Action]bool)}
}

func (s *stubInput) Axes() (float64, float64) { return s.ax, s.ay }

func (s *stubInput) JustPressed(a input.Action) bool {
	if s.pressed[a] {
		delete(s.pressed, a)
		return true
	}
	return false
}

func (s *stubInput) Reset() {
	s.ax, s.ay = 0, 0
	s.pressed = make(map[input.Action]bool)
}

func (s *stubInput) press(a input.Action) { s.pressed[a] = true }

// captureRecorder remembers every recorded run.
type captureRecorder struct {
	recs []scores.RunRecord
}

func (c *captureRecorder) RecordRun(rec scores.RunRecord) error {
	c.recs = append(c.recs, rec)
	return nil
}

func (c *captureRecorder) BestScore(string) (int, error) { return 0, nil }

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Spawn.InitialHostiles = 0
	// Push timers out of the way so scripted scenarios control the field
	cfg.Spawn.PickupIntervalSeconds = 1e6
	cfg.Spawn.HostileIntervalSeconds = 1e6
	return cfg
}

func newTestLoop(t *testing.T, cfg config.Config) (*Loop, *stubInput, *engine.MockTimeProvider, *captureRecorder) {
	t.Helper()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	tp := engine.NewMockTimeProvider(time.Unix(1000, 0))
	rng := rand.New(rand.NewSource(1))
	ctx := engine.NewGameContext(cfg, tp, rng, nil)
	in := newStubInput()
	rec := &captureRecorder{}
	return NewLoop(ctx, in, rec), in, tp, rec
}

// liveHostiles returns the live hostile entities in insertion order.
func liveHostiles(w *engine.World) []core.Entity {
	var out []core.Entity
	w.Kinds.ForEach(func(e core.Entity, kc components.KindComponent) {
		if kc.Kind == components.KindHostile {
			out = append(out, e)
		}
	})
	return out
}

func TestConsecutiveHitsAndGameOver(t *testing.T) {
	l, _, _, _ := newTestLoop(t, testConfig())
	l.StartRun()

	ctx := l.Context()
	w := ctx.World
	player := w.Player()
	playerTr, _ := w.Transforms.Get(player)

	hit := func() {
		systems.SpawnHostile(ctx, playerTr.Pos)
		l.Tick(testDT)
	}

	for i := 0; i < 3; i++ {
		hit()
	}
	vit, _ := w.Vitalities.Get(player)
	if vit.Current != 70 {
		t.Errorf("Expected vitality 70 after 3 hits, got %d", vit.Current)
	}
	if ctx.State.CurrentPhase != engine.PhasePlaying {
		t.Errorf("Expected run still playing after 3 hits, got %v", ctx.State.CurrentPhase)
	}

	for i := 0; i < 6; i++ {
		hit()
	}
	vit, _ = w.Vitalities.Get(player)
	if vit.Current != 10 {
		t.Errorf("Expected vitality 10 after 9 hits, got %d", vit.Current)
	}
	if ctx.State.CurrentPhase != engine.PhasePlaying {
		t.Errorf("Expected run still playing after 9 hits, got %v", ctx.State.CurrentPhase)
	}

	hit()
	vit, _ = w.Vitalities.Get(player)
	if vit.Current != 0 {
		t.Errorf("Expected vitality 0 after 10th hit, got %d", vit.Current)
	}
	if ctx.State.CurrentPhase != engine.PhaseGameOver {
		t.Errorf("Expected game over after 10th hit, got %v", ctx.State.CurrentPhase)
	}
	if ctx.State.Defeated != 10 {
		t.Errorf("Expected 10 defeated hostiles, got %d", ctx.State.Defeated)
	}
}

func TestPickupHealsAndScores(t *testing.T) {
	l, _, _, _ := newTestLoop(t, testConfig())
	l.StartRun()

	ctx := l.Context()
	w := ctx.World
	player := w.Player()

	vit, _ := w.Vitalities.Get(player)
	vit.Current = 50
	w.Vitalities.Set(player, vit)

	playerTr, _ := w.Transforms.Get(player)
	systems.SpawnPickup(ctx, playerTr.Pos)
	if got := w.CountKind(components.KindPickup); got != 1 {
		t.Fatalf("Expected 1 pickup seeded, got %d", got)
	}

	l.Tick(testDT)

	vit, _ = w.Vitalities.Get(player)
	if vit.Current != 70 {
		t.Errorf("Expected vitality 70 after heal 20, got %d", vit.Current)
	}
	if got := w.CountKind(components.KindPickup); got != 0 {
		t.Errorf("Expected pickup consumed, %d remain", got)
	}
	if ctx.State.Score != ctx.Cfg.Pickup.Reward {
		t.Errorf("Expected score %d, got %d", ctx.Cfg.Pickup.Reward, ctx.State.Score)
	}
}

func TestHealClampsAtMax(t *testing.T) {
	l, _, _, _ := newTestLoop(t, testConfig())
	l.StartRun()

	ctx := l.Context()
	w := ctx.World
	player := w.Player()
	playerTr, _ := w.Transforms.Get(player)
	systems.SpawnPickup(ctx, playerTr.Pos)

	l.Tick(testDT)

	vit, _ := w.Vitalities.Get(player)
	if vit.Current != vit.Max {
		t.Errorf("Expected vitality clamped at max %d, got %d", vit.Max, vit.Current)
	}
}

func TestAreaClearedOnThirdRemoval(t *testing.T) {
	cfg := testConfig()
	cfg.Run.Variant = config.VariantAreas
	cfg.Run.Areas = 2
	cfg.Run.HostilesPerArea = 3
	l, _, _, _ := newTestLoop(t, cfg)
	l.StartRun()

	ctx := l.Context()
	w := ctx.World
	player := w.Player()
	playerTr, _ := w.Transforms.Get(player)

	// First tick seeds area 0's batch
	l.Tick(testDT)
	if got := w.CountKind(components.KindHostile); got != 3 {
		t.Fatalf("Expected 3 hostiles seeded in area 0, got %d", got)
	}

	for i := 0; i < 3; i++ {
		if ctx.State.AreaCleared[0] {
			t.Fatalf("Expected area not cleared before removal %d", i+1)
		}
		hostiles := liveHostiles(w)
		if len(hostiles) != 3-i {
			t.Fatalf("Expected %d live hostiles, got %d", 3-i, len(hostiles))
		}
		tr, _ := w.Transforms.Get(hostiles[0])
		tr.Pos = playerTr.Pos
		w.Transforms.Set(hostiles[0], tr)
		l.Tick(testDT)
	}

	if !ctx.State.AreaCleared[0] {
		t.Error("Expected area 0 cleared exactly on the third removal")
	}
	if ctx.State.AreaCleared[1] {
		t.Error("Expected area 1 untouched")
	}
}

func TestAreaNavigationLockedUntilCleared(t *testing.T) {
	cfg := testConfig()
	cfg.Run.Variant = config.VariantAreas
	cfg.Run.Areas = 3
	cfg.Run.HostilesPerArea = 1
	l, in, _, _ := newTestLoop(t, cfg)
	l.StartRun()

	ctx := l.Context()
	l.Tick(testDT) // seed area 0

	in.press(input.ActionNextArea)
	l.Tick(testDT)
	if ctx.State.AreaIndex != 0 {
		t.Errorf("Expected navigation locked while area uncleared, got index %d", ctx.State.AreaIndex)
	}

	// Clear area 0 by contact
	player := ctx.World.Player()
	playerTr, _ := ctx.World.Transforms.Get(player)
	h := liveHostiles(ctx.World)[0]
	tr, _ := ctx.World.Transforms.Get(h)
	tr.Pos = playerTr.Pos
	ctx.World.Transforms.Set(h, tr)
	l.Tick(testDT)
	if !ctx.State.AreaCleared[0] {
		t.Fatal("Expected area 0 cleared")
	}

	in.press(input.ActionNextArea)
	l.Tick(testDT)
	if ctx.State.AreaIndex != 1 {
		t.Errorf("Expected navigation into area 1, got index %d", ctx.State.AreaIndex)
	}
	if !ctx.State.AreaSeeded[1] {
		t.Error("Expected area 1 seeded on entry")
	}

	// Backward navigation is locked again until area 1 clears
	in.press(input.ActionPrevArea)
	l.Tick(testDT)
	if ctx.State.AreaIndex != 1 {
		t.Errorf("Expected backward navigation locked, got index %d", ctx.State.AreaIndex)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	l, in, tp, _ := newTestLoop(t, testConfig())
	l.StartRun()

	ctx := l.Context()
	in.press(input.ActionPause)
	l.Tick(testDT)
	if ctx.State.CurrentPhase != engine.PhasePaused {
		t.Fatalf("Expected paused, got %v", ctx.State.CurrentPhase)
	}

	elapsedBefore := ctx.Clock.Elapsed()
	frameBefore := ctx.State.FrameNumber
	tp.Advance(10 * time.Second)
	l.Tick(testDT)

	if got := ctx.Clock.Elapsed(); got != elapsedBefore {
		t.Errorf("Expected game clock frozen at %v, got %v", elapsedBefore, got)
	}
	if ctx.State.FrameNumber != frameBefore {
		t.Errorf("Expected no frames advanced while paused")
	}

	in.press(input.ActionPause)
	l.Tick(testDT)
	if ctx.State.CurrentPhase != engine.PhasePlaying {
		t.Errorf("Expected unpaused, got %v", ctx.State.CurrentPhase)
	}
}

func TestTimedVictoryAndDefeat(t *testing.T) {
	cfg := testConfig()
	cfg.Run.TargetSeconds = 5
	l, _, tp, rec := newTestLoop(t, cfg)
	l.StartRun()

	ctx := l.Context()
	tp.Advance(6 * time.Second)
	l.Tick(testDT)
	if ctx.State.CurrentPhase != engine.PhaseVictory {
		t.Fatalf("Expected victory with no hostiles alive, got %v", ctx.State.CurrentPhase)
	}
	if len(rec.recs) != 1 || rec.recs[0].Outcome != "victory" {
		t.Errorf("Expected one recorded victory run, got %+v", rec.recs)
	}

	// A hostile alive at the deadline means defeat instead
	l.StartRun()
	systems.SpawnHostile(ctx, vmath.Vec2{X: 1, Y: 1})
	tp.Advance(6 * time.Second)
	l.Tick(testDT)
	if ctx.State.CurrentPhase != engine.PhaseGameOver {
		t.Errorf("Expected game over with a hostile alive at target, got %v", ctx.State.CurrentPhase)
	}
}

func TestRestartResetsRun(t *testing.T) {
	l, in, _, _ := newTestLoop(t, testConfig())
	l.StartRun()

	ctx := l.Context()
	w := ctx.World
	player := w.Player()
	playerTr, _ := w.Transforms.Get(player)

	// Score something, then die
	systems.SpawnPickup(ctx, playerTr.Pos)
	l.Tick(testDT)
	vit, _ := w.Vitalities.Get(player)
	vit.Current = 10
	w.Vitalities.Set(player, vit)
	systems.SpawnHostile(ctx, playerTr.Pos)
	l.Tick(testDT)
	if ctx.State.CurrentPhase != engine.PhaseGameOver {
		t.Fatalf("Expected game over, got %v", ctx.State.CurrentPhase)
	}
	firstRunID := ctx.State.RunID

	in.press(input.ActionRestart)
	l.Tick(testDT)

	if ctx.State.CurrentPhase != engine.PhasePlaying {
		t.Errorf("Expected playing after restart, got %v", ctx.State.CurrentPhase)
	}
	if ctx.State.Score != 0 || ctx.State.Defeated != 0 {
		t.Errorf("Expected counters reset, got score=%d defeated=%d", ctx.State.Score, ctx.State.Defeated)
	}
	if ctx.State.RunID == firstRunID {
		t.Error("Expected a fresh run id after restart")
	}
	newPlayer := w.Player()
	if newPlayer == core.InvalidEntity {
		t.Fatal("Expected player re-created after restart")
	}
	vit, _ = w.Vitalities.Get(newPlayer)
	if vit.Current != vit.Max {
		t.Errorf("Expected full vitality after restart, got %d/%d", vit.Current, vit.Max)
	}
}

func TestAwaitingStartIgnoresSimulation(t *testing.T) {
	l, in, _, _ := newTestLoop(t, testConfig())
	ctx := l.Context()

	l.Tick(testDT)
	if ctx.State.CurrentPhase != engine.PhaseAwaitingStart {
		t.Fatalf("Expected awaiting start on cold boot, got %v", ctx.State.CurrentPhase)
	}
	if ctx.World.Player() != core.InvalidEntity {
		t.Error("Expected no player before start")
	}

	in.press(input.ActionStart)
	l.Tick(testDT)
	if ctx.State.CurrentPhase != engine.PhasePlaying {
		t.Errorf("Expected playing after start, got %v", ctx.State.CurrentPhase)
	}
	if ctx.World.Player() == core.InvalidEntity {
		t.Error("Expected player created on start")
	}
}

func TestSanitizeDT(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
		want float64
	}{
		{"Normal", 0.016, 0.016},
		{"Negative", -1, 0},
		{"NaN", math.NaN(), 0},
		{"Inf", math.Inf(1), 0},
		{"Stall capped", 3.0, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeDT(tt.dt, 0.25); got != tt.want {
				t.Errorf("Expected %g, got %g", tt.want, got)
			}
		})
	}
}

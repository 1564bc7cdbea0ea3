package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/gridfall/components"
	"github.com/lixenwraith/gridfall/config"
	"github.com/lixenwraith/gridfall/engine"
	"github.com/lixenwraith/gridfall/vmath"
)

// advance moves the mock clock that backs the game context.
func advance(t *testing.T, ctx *engine.GameContext, d time.Duration) {
	t.Helper()
	// The context is always built over a mock provider in tests
	tp, ok := ctx.Clock.Provider().(*engine.MockTimeProvider)
	if !ok {
		t.Fatal("test context not backed by a mock time provider")
	}
	tp.Advance(d)
}

func TestPickupSpawnInterval(t *testing.T) {
	ctx := newTestContext(t, func(c *config.Config) {
		c.Spawn.PickupIntervalSeconds = 2
		c.Spawn.MaxPickups = 2
	})
	sys := NewSpawnSystem(ctx)
	w := ctx.World
	spawnTestPlayer(ctx, vmath.Vec2{X: 50, Y: 15})

	sys.Update(w, 0.016) // arms the schedule
	if got := w.CountKind(components.KindPickup); got != 0 {
		t.Fatalf("Expected no pickup before the interval, got %d", got)
	}

	advance(t, ctx, 2*time.Second)
	sys.Update(w, 0.016)
	if got := w.CountKind(components.KindPickup); got != 1 {
		t.Errorf("Expected 1 pickup after the interval, got %d", got)
	}

	// Cap: with 2 live pickups the timer still rolls but nothing spawns
	advance(t, ctx, 2*time.Second)
	sys.Update(w, 0.016)
	advance(t, ctx, 2*time.Second)
	sys.Update(w, 0.016)
	if got := w.CountKind(components.KindPickup); got != 2 {
		t.Errorf("Expected pickup cap of 2, got %d", got)
	}
}

func TestHostileSpawnTimedVariantOnly(t *testing.T) {
	ctx := newTestContext(t, func(c *config.Config) {
		c.Run.Variant = config.VariantAreas
		c.Spawn.PickupIntervalSeconds = 1e6
	})
	sys := NewSpawnSystem(ctx)
	w := ctx.World
	spawnTestPlayer(ctx, vmath.Vec2{X: 50, Y: 15})

	sys.Update(w, 0.016)
	advance(t, ctx, time.Hour)
	sys.Update(w, 0.016)
	if got := w.CountKind(components.KindHostile); got != 0 {
		t.Errorf("Expected no interval hostiles in the areas variant, got %d", got)
	}
}

func TestHostileSpawnStopsPastTarget(t *testing.T) {
	ctx := newTestContext(t, func(c *config.Config) {
		c.Run.TargetSeconds = 10
		c.Spawn.HostileIntervalSeconds = 3
		c.Spawn.PickupIntervalSeconds = 1e6
	})
	sys := NewSpawnSystem(ctx)
	w := ctx.World
	spawnTestPlayer(ctx, vmath.Vec2{X: 50, Y: 15})

	sys.Update(w, 0.016) // arm
	advance(t, ctx, 3*time.Second)
	sys.Update(w, 0.016)
	if got := w.CountKind(components.KindHostile); got != 1 {
		t.Fatalf("Expected 1 hostile after the interval, got %d", got)
	}

	advance(t, ctx, 20*time.Second) // past the target
	sys.Update(w, 0.016)
	if got := w.CountKind(components.KindHostile); got != 1 {
		t.Errorf("Expected no spawns past the target duration, got %d", got)
	}
}

func TestSpawnPositionRespectsSafeRadius(t *testing.T) {
	ctx := newTestContext(t, func(c *config.Config) {
		c.World.Width = 100
		c.World.Height = 100
		c.Spawn.SafeRadius = 20
	})
	sys := NewSpawnSystem(ctx)
	w := ctx.World
	playerPos := vmath.Vec2{X: 50, Y: 50}
	spawnTestPlayer(ctx, playerPos)

	for i := 0; i < 50; i++ {
		pos := sys.SpawnPosition(w, 1)
		if pos.Sub(playerPos).Len() < 20 {
			t.Fatalf("Spawn %d inside the safe radius: %v", i, pos)
		}
		if pos.X < 0 || pos.X > 99 || pos.Y < 0 || pos.Y > 99 {
			t.Fatalf("Spawn %d out of bounds: %v", i, pos)
		}
	}
}

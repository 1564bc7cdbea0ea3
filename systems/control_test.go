package systems

import (
	"math"
	"testing"

	"github.com/lixenwraith/gridfall/config"
	"github.com/lixenwraith/gridfall/vmath"
)

type fixedAxes struct{ ax, ay float64 }

func (f fixedAxes) Axes() (float64, float64) { return f.ax, f.ay }

func TestControlSetsPlayerVelocity(t *testing.T) {
	ctx := newTestContext(t, func(c *config.Config) { c.Player.Speed = 20 })
	w := ctx.World
	p := spawnTestPlayer(ctx, vmath.Vec2{X: 10, Y: 10})

	sys := NewControlSystem(ctx, fixedAxes{ax: 1, ay: 0})
	sys.Update(w, 0.016)

	m, _ := w.Motions.Get(p)
	if m.Vel != (vmath.Vec2{X: 20, Y: 0}) {
		t.Errorf("Expected velocity (20, 0), got %v", m.Vel)
	}
}

func TestControlDiagonalNotNormalized(t *testing.T) {
	ctx := newTestContext(t, func(c *config.Config) { c.Player.Speed = 10 })
	w := ctx.World
	p := spawnTestPlayer(ctx, vmath.Vec2{X: 10, Y: 10})

	sys := NewControlSystem(ctx, fixedAxes{ax: 1, ay: 1})
	sys.Update(w, 0.016)

	m, _ := w.Motions.Get(p)
	want := 10 * math.Sqrt2
	if math.Abs(m.Vel.Len()-want) > 1e-12 {
		t.Errorf("Expected un-normalized diagonal speed %g, got %g", want, m.Vel.Len())
	}
}

func TestControlZeroAxesStops(t *testing.T) {
	ctx := newTestContext(t, nil)
	w := ctx.World
	p := spawnTestPlayer(ctx, vmath.Vec2{X: 10, Y: 10})

	m, _ := w.Motions.Get(p)
	m.Vel = vmath.Vec2{X: 5, Y: 5}
	w.Motions.Set(p, m)

	sys := NewControlSystem(ctx, fixedAxes{})
	sys.Update(w, 0.016)

	m, _ = w.Motions.Get(p)
	if !m.Vel.IsZero() {
		t.Errorf("Expected direct assignment to zero velocity, got %v", m.Vel)
	}
}

func TestControlNoPlayerNoOp(t *testing.T) {
	ctx := newTestContext(t, nil)
	sys := NewControlSystem(ctx, fixedAxes{ax: 1})
	sys.Update(ctx.World, 0.016) // must not panic
}

package scene

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/gridfall/components"
	"github.com/lixenwraith/gridfall/core"
	"github.com/lixenwraith/gridfall/engine"
	"github.com/lixenwraith/gridfall/events"
)

// flashSeconds is how long the player glyph flashes after a hit.
const flashSeconds = 0.3

// onPlayerOverlap is the player's collision reaction, invoked by the
// collision reaction pass once per overlapping pair. Game rules
// discriminate on the Kind component, never on presentation data.
func (l *Loop) onPlayerOverlap(self, other core.Entity) {
	kind, ok := l.ctx.World.Kinds.Get(other)
	if !ok {
		return
	}
	switch kind.Kind {
	case components.KindHostile:
		l.hitByHostile(self, other)
	case components.KindPickup:
		l.collectPickup(self, other)
	}
}

// hitByHostile applies contact damage, removes the hostile (deferred
// to the pass boundary), and credits the defeated count. Removal
// happens in both variants: the timed objective "all hostiles
// defeated" is only reachable through contact.
func (l *Loop) hitByHostile(player, hostile core.Entity) {
	ctx := l.ctx
	w := ctx.World

	vit, ok := w.Vitalities.Get(player)
	if !ok {
		return
	}
	damage := ctx.Cfg.Hostile.Damage
	died := vit.Damage(damage)
	w.Vitalities.Set(player, vit)

	if vis, ok := w.Visuals.Get(player); ok {
		vis.FlashFor = flashSeconds
		w.Visuals.Set(player, vis)
	}

	w.QueueRemove(hostile)
	ctx.State.Defeated++

	ctx.Emit(events.EventPlayerDamaged, &events.PlayerDamagedPayload{
		Hostile:   hostile,
		Amount:    damage,
		Remaining: vit.Current,
	})
	ctx.Emit(events.EventHostileDefeated, &events.HostileDefeatedPayload{
		Hostile: hostile,
		Total:   ctx.State.Defeated,
	})

	if died && vit.OnDeath != nil {
		vit.OnDeath(player)
	}
}

// collectPickup heals up to max vitality, scores the reward, and
// consumes the pickup.
func (l *Loop) collectPickup(player, pickup core.Entity) {
	ctx := l.ctx
	w := ctx.World

	vit, ok := w.Vitalities.Get(player)
	if !ok {
		return
	}
	before := vit.Current
	vit.Heal(ctx.Cfg.Pickup.Heal)
	w.Vitalities.Set(player, vit)

	reward := ctx.Cfg.Pickup.Reward
	ctx.State.Score += reward
	w.QueueRemove(pickup)

	ctx.Emit(events.EventPickupCollected, &events.PickupCollectedPayload{
		Pickup: pickup,
		Healed: vit.Current - before,
		Reward: reward,
		Score:  ctx.State.Score,
	})
}

// onPlayerDeath ends the run. Fired by the vitality death callback
// inside the reaction pass; the pipeline stops after the current
// system.
func (l *Loop) onPlayerDeath(self core.Entity) {
	ctx := l.ctx
	if !ctx.State.TransitionPhase(engine.PhaseGameOver, ctx.Clock.Now()) {
		return
	}
	ctx.Emit(events.EventPlayerDied, nil)
	ctx.Emit(events.EventGameOver, nil)
	ctx.Log.Debug("player died",
		zap.Int("score", ctx.State.Score),
		zap.Int("defeated", ctx.State.Defeated))
}

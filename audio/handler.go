package audio

import (
	"github.com/lixenwraith/gridfall/engine"
	"github.com/lixenwraith/gridfall/events"
)

// FeedbackHandler maps gameplay events onto sound cues. It registers
// on the scene router and plays one-shots during the dispatch phase.
type FeedbackHandler struct {
	sounds *SoundManager
}

// NewFeedbackHandler creates a feedback handler over a sound manager.
func NewFeedbackHandler(sounds *SoundManager) *FeedbackHandler {
	return &FeedbackHandler{sounds: sounds}
}

// EventTypes implements events.Handler.
func (h *FeedbackHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventPlayerDamaged,
		events.EventPickupCollected,
		events.EventPlayerDied,
		events.EventAreaCleared,
		events.EventVictory,
	}
}

// HandleEvent implements events.Handler.
func (h *FeedbackHandler) HandleEvent(ctx *engine.GameContext, event events.GameEvent) {
	switch event.Type {
	case events.EventPlayerDamaged:
		h.sounds.PlayHit()
	case events.EventPickupCollected:
		h.sounds.PlayPickup()
	case events.EventPlayerDied:
		h.sounds.PlayDeath()
	case events.EventAreaCleared:
		h.sounds.PlayAreaCleared()
	case events.EventVictory:
		h.sounds.PlayVictory()
	}
}

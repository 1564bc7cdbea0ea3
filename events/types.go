package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventRunStarted signals a fresh run beginning (cold start or restart)
	// Trigger: Scene loop on start/restart
	// Consumer: FeedbackSystem | Payload: nil
	EventRunStarted EventType = iota

	// EventPlayerDamaged signals contact damage applied to the player
	// Trigger: Collision reaction pass, player vs hostile
	// Consumer: FeedbackSystem | Payload: *PlayerDamagedPayload
	EventPlayerDamaged

	// EventHostileDefeated signals a hostile removed by contact
	// Trigger: Collision reaction pass, player vs hostile
	// Consumer: FeedbackSystem | Payload: *HostileDefeatedPayload
	EventHostileDefeated

	// EventPickupCollected signals a pickup consumed by the player
	// Trigger: Collision reaction pass, player vs pickup
	// Consumer: FeedbackSystem | Payload: *PickupCollectedPayload
	EventPickupCollected

	// EventPlayerDied signals player vitality reaching zero
	// Trigger: Vitality death callback in the reaction pass
	// Consumer: FeedbackSystem | Payload: nil
	EventPlayerDied

	// EventAreaCleared signals the current area's last hostile removed
	// Trigger: ProgressSystem (areas variant)
	// Consumer: FeedbackSystem | Payload: *AreaPayload
	EventAreaCleared

	// EventAreaEntered signals navigation into an area
	// Trigger: Scene loop on area navigation input
	// Consumer: FeedbackSystem | Payload: *AreaPayload
	EventAreaEntered

	// EventVictory signals the timed variant objective met at timeout
	// Trigger: ProgressSystem (timed variant)
	// Consumer: FeedbackSystem | Payload: nil
	EventVictory

	// EventGameOver signals a lost run (death or failed timeout)
	// Trigger: ProgressSystem or death reaction
	// Consumer: FeedbackSystem | Payload: nil
	EventGameOver
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64
	Timestamp time.Time
}

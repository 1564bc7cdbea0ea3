package events

import "github.com/lixenwraith/gridfall/core"

// PlayerDamagedPayload carries contact damage details.
type PlayerDamagedPayload struct {
	Hostile   core.Entity // the hostile that made contact
	Amount    int
	Remaining int // player vitality after the hit
}

// HostileDefeatedPayload carries removal bookkeeping for one hostile.
type HostileDefeatedPayload struct {
	Hostile core.Entity
	Total   int // defeated count including this one
}

// PickupCollectedPayload carries the effect of a consumed pickup.
type PickupCollectedPayload struct {
	Pickup core.Entity
	Healed int // actual vitality gained after the max clamp
	Reward int
	Score  int // run score after the reward
}

// AreaPayload identifies an area for cleared/entered events.
type AreaPayload struct {
	Area int
}

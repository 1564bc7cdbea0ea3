package systems

// System priorities fix the per-tick pipeline order. Lower runs first.
// The sequence is: feedback dispatch from the previous tick, input
// control, integration, collision, pursuit, spawning, progression.
const (
	PriorityFeedback  = 10
	PriorityControl   = 20
	PriorityPhysics   = 30
	PriorityCollision = 40
	PriorityPursuit   = 50
	PrioritySpawn     = 60
	PriorityProgress  = 70
)

package parameter

// Agent (player) defaults
const (
	// AgentRadius is the collision circle radius in world units
	AgentRadius = 15.0

	// AgentSpeed is the movement speed in world units per second
	AgentSpeed = 300.0

	// AgentClipDepth is the near-plane forward distance in world units
	AgentClipDepth = 10.0

	// AgentTurnRate is the turn speed in radians per second
	AgentTurnRate = 1.8
)

package parameter

// Collision resolution defaults
const (
	// CollisionTolerance is the point-on-segment slack in world units
	CollisionTolerance = 0.5

	// CollisionDamping divides the push-out vector before it replaces velocity
	// Lower corrects faster but jitters when several walls touch
	CollisionDamping = 16.0

	// CollisionIterations bounds the iterative resolver passes per step
	CollisionIterations = 4
)

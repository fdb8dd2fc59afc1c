package parameter

import "time"

// Power-ups
const (
	// PowerUpSpawnInterval is the minimum time between two power-up offers
	PowerUpSpawnInterval = 15 * time.Second

	// PowerUpLifetime is how long an uncollected power-up stays on the board
	PowerUpLifetime = 15 * time.Second

	// EffectDuration is how long a timed effect (slow, reverse) stays active
	EffectDuration = 6 * time.Second

	// SlowFactor is the tick rate multiplier while slow is active
	SlowFactor = 0.6

	// ShrinkAmount is the number of tail cells removed by a shrink pickup
	ShrinkAmount = 3
)

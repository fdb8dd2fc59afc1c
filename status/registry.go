package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys written by the simulation and read by the debug overlay
const (
	KeyTicks            = "run.ticks"
	KeyRuns             = "run.started"
	KeyFoodEaten        = "food.eaten"
	KeyFoodSpawned      = "food.spawned"
	KeyObstacles        = "obstacle.count"
	KeyPowerUpsOffered  = "powerup.offered"
	KeyPowerUpsExpired  = "powerup.expired"
	KeyPowerUpsTaken    = "powerup.collected"
	KeyLevel            = "level.current"
	KeyTickRate         = "tick.rate"
	KeyRateMultiplier   = "tick.multiplier"
	KeyEffect           = "effect.active"
	KeyRecorderDropped  = "recorder.dropped"
	KeyLeaderboardSaves = "leaderboard.saves"
)

// Registry is the metrics facade shared by systems, the run and the overlay
// Systems cache pointers at construction; tick code writes the atomics directly
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Lines formats every metric as "key=value", ints first, for the debug overlay
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.Ints.Count()+r.Floats.Count()+r.Strings.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.2f", key, v.Get()))
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s=%s", key, v.Load()))
	})
	return lines
}

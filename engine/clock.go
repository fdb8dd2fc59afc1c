package engine

import (
	"sync"
	"time"
)

// GameClock is pausable game time layered on a TimeProvider
// While paused Now is frozen; after resume it continues from the frozen point
type GameClock struct {
	mu sync.RWMutex

	source      TimeProvider
	paused      bool
	pausedAt    time.Time     // source time when the current pause started
	pausedTotal time.Duration // cumulative length of finished pauses
}

// NewGameClock creates a running clock over source
func NewGameClock(source TimeProvider) *GameClock {
	return &GameClock{source: source}
}

// Now returns current game time
func (c *GameClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.paused {
		return c.pausedAt.Add(-c.pausedTotal)
	}
	return c.source.Now().Add(-c.pausedTotal)
}

// Pause freezes game time; no-op when already paused
func (c *GameClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.source.Now()
}

// Resume continues game time; no-op when running
func (c *GameClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.paused {
		return
	}
	c.pausedTotal += c.source.Now().Sub(c.pausedAt)
	c.paused = false
	c.pausedAt = time.Time{}
}

// IsPaused reports pause state
func (c *GameClock) IsPaused() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.paused
}

// PausedTotal returns cumulative pause time including an ongoing pause
func (c *GameClock) PausedTotal() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.pausedTotal
	if c.paused {
		total += c.source.Now().Sub(c.pausedAt)
	}
	return total
}

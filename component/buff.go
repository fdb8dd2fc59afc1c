package component

import (
	"time"

	"github.com/lixenwraith/neon-snake/grid"
)

// PowerUpKind enumerates collectible effects
type PowerUpKind int

const (
	PowerUpSlow PowerUpKind = iota
	PowerUpReverse
	PowerUpShrink

	PowerUpKindCount
)

// String returns the lowercase name shown in the HUD
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSlow:
		return "slow"
	case PowerUpReverse:
		return "reverse"
	case PowerUpShrink:
		return "shrink"
	}
	return "unknown"
}

// Timed reports whether the effect lingers; shrink applies once and ends immediately
func (k PowerUpKind) Timed() bool {
	return k == PowerUpSlow || k == PowerUpReverse
}

// PowerUp is an uncollected power-up lying on the board
type PowerUp struct {
	Kind      PowerUpKind
	Pos       grid.Point
	SpawnTime time.Time
}

// Age returns time on the board at now
func (p *PowerUp) Age(now time.Time) time.Duration {
	return now.Sub(p.SpawnTime)
}

// Has lets an offered power-up act as a spawn exclusion
func (p *PowerUp) Has(c grid.Point) bool {
	return p != nil && p.Pos == c
}

// Effect is the single active effect applied to the simulation
type Effect struct {
	Kind   PowerUpKind
	Expiry time.Time
}

// Remaining returns time left at now, never negative
func (e *Effect) Remaining(now time.Time) time.Duration {
	if d := e.Expiry.Sub(now); d > 0 {
		return d
	}
	return 0
}

package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/neon-snake/component"
	"github.com/lixenwraith/neon-snake/grid"
	"github.com/lixenwraith/neon-snake/status"
)

// PowerUpPhase is the externally visible state of the power-up machine
type PowerUpPhase int

const (
	PowerUpIdle    PowerUpPhase = iota // nothing offered, nothing active
	PowerUpOffered                     // a power-up lies on the board
	PowerUpActive                      // a timed effect is applied
)

func (p PowerUpPhase) String() string {
	switch p {
	case PowerUpOffered:
		return "offered"
	case PowerUpActive:
		return "active"
	}
	return "idle"
}

// PowerUpConfig holds power-up timing and strength
type PowerUpConfig struct {
	SpawnInterval  time.Duration
	Lifetime       time.Duration
	EffectDuration time.Duration
	SlowFactor     float64
	ShrinkAmount   int
}

// PowerUpSystem owns at most one offered power-up and at most one active effect
// Simulation parameters (rate multiplier, input inversion) are derived from the active
// effect alone, so replacing an effect never leaves a stale parameter behind
type PowerUpSystem struct {
	cfg     PowerUpConfig
	spawner *SpawnSystem

	offer     *component.PowerUp
	effect    *component.Effect
	lastSpawn time.Time

	statOffered    *atomic.Int64
	statExpired    *atomic.Int64
	statCollected  *atomic.Int64
	statMultiplier *status.AtomicFloat
	statEffect     *status.AtomicString
}

// NewPowerUpSystem creates the machine in Idle; start is the run start time
func NewPowerUpSystem(cfg PowerUpConfig, spawner *SpawnSystem, reg *status.Registry, start time.Time) *PowerUpSystem {
	s := &PowerUpSystem{
		cfg:            cfg,
		spawner:        spawner,
		lastSpawn:      start,
		statOffered:    reg.Ints.Get(status.KeyPowerUpsOffered),
		statExpired:    reg.Ints.Get(status.KeyPowerUpsExpired),
		statCollected:  reg.Ints.Get(status.KeyPowerUpsTaken),
		statMultiplier: reg.Floats.Get(status.KeyRateMultiplier),
		statEffect:     reg.Strings.Get(status.KeyEffect),
	}
	s.publish()
	return s
}

// Phase reports Active when an effect is applied, else Offered when a power-up is on the board
func (s *PowerUpSystem) Phase() PowerUpPhase {
	switch {
	case s.effect != nil:
		return PowerUpActive
	case s.offer != nil:
		return PowerUpOffered
	}
	return PowerUpIdle
}

// Offer returns the power-up on the board, nil when none
func (s *PowerUpSystem) Offer() *component.PowerUp {
	return s.offer
}

// Effect returns the active effect, nil when none
func (s *PowerUpSystem) Effect() *component.Effect {
	return s.effect
}

// RateMultiplier is the tick rate factor; exactly 1.0 unless slow is active
func (s *PowerUpSystem) RateMultiplier() float64 {
	if s.effect != nil && s.effect.Kind == component.PowerUpSlow {
		return s.cfg.SlowFactor
	}
	return 1.0
}

// InputInverted reports whether directional input is negated
func (s *PowerUpSystem) InputInverted() bool {
	return s.effect != nil && s.effect.Kind == component.PowerUpReverse
}

// TranslateInput applies input inversion to a requested direction
func (s *PowerUpSystem) TranslateInput(d grid.Direction) grid.Direction {
	if s.InputInverted() {
		return d.Opposite()
	}
	return d
}

// Place puts a specific power-up on the board, replacing any current offer
func (s *PowerUpSystem) Place(p *component.PowerUp) {
	s.offer = p
}

// Collect activates the offered power-up if the head is on it
// Returns the collected kind and true on pickup
func (s *PowerUpSystem) Collect(snake *component.Snake, now time.Time) (component.PowerUpKind, bool) {
	if s.offer == nil || snake.Head() != s.offer.Pos {
		return 0, false
	}
	kind := s.offer.Kind
	s.offer = nil
	s.statCollected.Add(1)

	if kind.Timed() {
		s.effect = &component.Effect{Kind: kind, Expiry: now.Add(s.cfg.EffectDuration)}
	} else {
		// Shrink is applied once and replaces whatever effect was running
		snake.Shrink(s.cfg.ShrinkAmount)
		s.effect = nil
	}
	s.publish()
	return kind, true
}

// Update expires the offer and the effect at now, then offers a new power-up when due
// Returns true when a power-up was placed this call
func (s *PowerUpSystem) Update(now time.Time, snake *component.Snake, obstacles *component.Obstacles, food *component.Food) (bool, error) {
	if s.offer != nil && s.offer.Age(now) > s.cfg.Lifetime {
		s.offer = nil
		s.statExpired.Add(1)
	}
	if s.effect != nil && !now.Before(s.effect.Expiry) {
		s.effect = nil
	}
	defer s.publish()

	if s.offer != nil || now.Sub(s.lastSpawn) < s.cfg.SpawnInterval {
		return false, nil
	}
	offer, err := s.spawner.SpawnPowerUp(snake, obstacles, food, now)
	if err != nil {
		return false, err
	}
	s.offer = offer
	s.lastSpawn = now
	s.statOffered.Add(1)
	return true, nil
}

func (s *PowerUpSystem) publish() {
	s.statMultiplier.Set(s.RateMultiplier())
	if s.effect != nil {
		s.statEffect.Store(s.effect.Kind.String())
	} else {
		s.statEffect.Store("")
	}
}

package system

import (
	"sync/atomic"

	"github.com/lixenwraith/neon-snake/status"
)

// LevelConfig holds scoring and difficulty escalation
type LevelConfig struct {
	FoodReward   int
	Threshold    int
	BaseTickRate float64
	MaxTickRate  float64
}

// LevelSystem tracks score and level; both only ever increase
type LevelSystem struct {
	cfg LevelConfig

	score    int
	level    int
	tickRate float64

	statLevel *atomic.Int64
	statRate  *status.AtomicFloat
	statEaten *atomic.Int64
}

// NewLevelSystem starts at score 0, level 1, base tick rate
func NewLevelSystem(cfg LevelConfig, reg *status.Registry) *LevelSystem {
	l := &LevelSystem{
		cfg:       cfg,
		level:     1,
		tickRate:  cfg.BaseTickRate,
		statLevel: reg.Ints.Get(status.KeyLevel),
		statRate:  reg.Floats.Get(status.KeyTickRate),
		statEaten: reg.Ints.Get(status.KeyFoodEaten),
	}
	l.statLevel.Store(1)
	l.statRate.Set(l.tickRate)
	return l
}

// Score returns the current score
func (l *LevelSystem) Score() int { return l.score }

// Level returns the current level
func (l *LevelSystem) Level() int { return l.level }

// TickRate returns the base ticks per second before effect multipliers
func (l *LevelSystem) TickRate() float64 { return l.tickRate }

// LevelFor derives the level of a score
func (l *LevelSystem) LevelFor(score int) int {
	return 1 + score/l.cfg.Threshold
}

// OnFoodConsumed adds the food reward and returns every level newly reached, in order
// Each gained level raises the tick rate by 1 + level/2
func (l *LevelSystem) OnFoodConsumed() []int {
	l.score += l.cfg.FoodReward
	l.statEaten.Add(1)

	next := l.LevelFor(l.score)
	var gained []int
	for l.level < next {
		l.level++
		l.tickRate += float64(1 + l.level/2)
		gained = append(gained, l.level)
	}
	if l.cfg.MaxTickRate > 0 && l.tickRate > l.cfg.MaxTickRate {
		l.tickRate = l.cfg.MaxTickRate
	}

	l.statLevel.Store(int64(l.level))
	l.statRate.Set(l.tickRate)
	return gained
}

package engine

import (
	"time"

	"github.com/lixenwraith/neon-snake/component"
	"github.com/lixenwraith/neon-snake/grid"
	"github.com/lixenwraith/neon-snake/leaderboard"
)

// EffectView is the active effect as shown to the player
type EffectView struct {
	Kind      component.PowerUpKind
	Remaining time.Duration
}

// Snapshot is a read-only copy of everything the renderer and recorder need
type Snapshot struct {
	GridSize  int
	Snake     []grid.Point // head first
	Direction grid.Direction
	Obstacles []grid.Point
	Food      grid.Point
	PowerUp   *component.PowerUp
	Effect    *EffectView

	Score    int
	Level    int
	TickRate float64
	Ticks    int
	State    State
	Reason   EndReason

	// Session fields, zero when taken from a bare Run
	Phase       SessionPhase
	Rank        int
	Leaderboard []leaderboard.Entry
}

// Snapshot copies the run state at game time now
func (r *Run) Snapshot() Snapshot {
	now := r.clock.Now()
	snap := Snapshot{
		GridSize:  r.world.Size(),
		Snake:     r.snake.Cells(),
		Direction: r.snake.Direction(),
		Obstacles: r.obstacles.Cells(),
		Food:      r.food.Pos,
		Score:     r.levels.Score(),
		Level:     r.levels.Level(),
		TickRate:  r.TickRate(),
		Ticks:     r.ticks,
		State:     r.state,
		Reason:    r.reason,
	}
	if offer := r.powerups.Offer(); offer != nil {
		p := *offer
		snap.PowerUp = &p
	}
	if eff := r.powerups.Effect(); eff != nil {
		snap.Effect = &EffectView{Kind: eff.Kind, Remaining: eff.Remaining(now)}
	}
	return snap
}

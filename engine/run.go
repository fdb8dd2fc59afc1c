package engine

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/neon-snake/component"
	"github.com/lixenwraith/neon-snake/grid"
	"github.com/lixenwraith/neon-snake/status"
	"github.com/lixenwraith/neon-snake/system"
)

// State is the simulation loop state
type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	}
	return "running"
}

// EndReason explains a GameOver
type EndReason int

const (
	EndNone      EndReason = iota
	EndSelf                // head ran into the body
	EndObstacle            // head ran into an obstacle
	EndBoardFull           // snake and obstacles fill the board
)

func (r EndReason) String() string {
	switch r {
	case EndSelf:
		return "bit itself"
	case EndObstacle:
		return "hit an obstacle"
	case EndBoardFull:
		return "board full"
	}
	return ""
}

// Event is a notable thing that happened during a tick, consumed by audio and logging
type Event int

const (
	EventAteFood Event = iota
	EventLevelUp
	EventPowerUpSpawned
	EventPowerUpCollected
	EventDied
)

// TickResult reports the outcome of one Tick
type TickResult struct {
	State  State
	Score  int
	Reason EndReason
	Events []Event
}

// GameOver reports whether the run has ended
func (r TickResult) GameOver() bool {
	return r.State == StateGameOver
}

// Run owns all per-game state; a restart discards it and builds a new Run
type Run struct {
	settings Settings
	clock    *GameClock

	world     *grid.World
	snake     *component.Snake
	obstacles *component.Obstacles
	food      component.Food

	spawner  *system.SpawnSystem
	powerups *system.PowerUpSystem
	levels   *system.LevelSystem

	state   State
	reason  EndReason
	pending *grid.Direction
	ticks   int

	statTicks *atomic.Int64
}

// NewRun creates a running game: centred snake, seeded obstacles, first food
func NewRun(settings Settings, clock *GameClock, reg *status.Registry) (*Run, error) {
	if settings.GridSize < 2 {
		return nil, fmt.Errorf("grid size %d too small", settings.GridSize)
	}
	world := grid.NewWorld(settings.GridSize, settings.Seed)
	spawner := system.NewSpawnSystem(world, settings.ObstacleMilestone, reg)

	r := &Run{
		settings:  settings,
		clock:     clock,
		world:     world,
		snake:     component.NewSnake(world),
		obstacles: component.NewObstacles(),
		spawner:   spawner,
		powerups:  system.NewPowerUpSystem(settings.PowerUp, spawner, reg, clock.Now()),
		levels:    system.NewLevelSystem(settings.Level, reg),
		statTicks: reg.Ints.Get(status.KeyTicks),
	}

	if err := spawner.SeedObstacles(settings.InitialObstacles, r.snake, r.obstacles); err != nil {
		return nil, fmt.Errorf("new run: %w", err)
	}
	food, err := spawner.SpawnFood(r.snake, r.obstacles)
	if err != nil {
		return nil, fmt.Errorf("new run: %w", err)
	}
	r.food = food
	return r, nil
}

// State returns the loop state
func (r *Run) State() State { return r.state }

// Reason returns why the run ended, EndNone while playing
func (r *Run) Reason() EndReason { return r.reason }

// Score returns the current score
func (r *Run) Score() int { return r.levels.Score() }

// Level returns the current level
func (r *Run) Level() int { return r.levels.Level() }

// Ticks returns the number of simulated ticks
func (r *Run) Ticks() int { return r.ticks }

// Steer records a direction for the next tick; the last call before a tick wins
func (r *Run) Steer(d grid.Direction) {
	if r.state != StateRunning {
		return
	}
	r.pending = &d
}

// TogglePause flips Running and Paused; the game clock is frozen while paused
func (r *Run) TogglePause() {
	switch r.state {
	case StateRunning:
		r.state = StatePaused
		r.clock.Pause()
	case StatePaused:
		r.state = StateRunning
		r.clock.Resume()
	}
}

// TickRate returns effective ticks per second including the active effect
func (r *Run) TickRate() float64 {
	return r.levels.TickRate() * r.powerups.RateMultiplier()
}

// TickInterval returns the wall time between ticks at the effective rate
func (r *Run) TickInterval() time.Duration {
	rate := r.TickRate()
	if rate <= 0 {
		return time.Second
	}
	return time.Duration(float64(time.Second) / rate)
}

// Tick advances the simulation by one step
// Collisions are resolved before any pickup, so a lethal cell is never eaten
func (r *Run) Tick() TickResult {
	if r.state != StateRunning {
		return r.result(nil)
	}
	now := r.clock.Now()
	r.ticks++
	r.statTicks.Add(1)

	if r.pending != nil {
		r.snake.SetDirection(r.powerups.TranslateInput(*r.pending))
		r.pending = nil
	}
	r.snake.Move()

	head := r.snake.Head()
	if r.snake.CollidesWithSelf() {
		return r.end(EndSelf, nil)
	}
	if r.obstacles.Has(head) {
		return r.end(EndObstacle, nil)
	}

	var events []Event
	if head == r.food.Pos {
		events = append(events, EventAteFood)
		r.snake.Grow(r.settings.GrowthPerFood)
		for _, level := range r.levels.OnFoodConsumed() {
			events = append(events, EventLevelUp)
			if _, err := r.spawner.GrowObstacles(level, r.snake, r.obstacles); err != nil {
				return r.fail(err, events)
			}
		}
		food, err := r.spawner.SpawnFood(r.snake, r.obstacles)
		if err != nil {
			return r.fail(err, events)
		}
		r.food = food
	}

	if _, ok := r.powerups.Collect(r.snake, now); ok {
		events = append(events, EventPowerUpCollected)
	}

	placed, err := r.powerups.Update(now, r.snake, r.obstacles, &r.food)
	if err != nil {
		return r.fail(err, events)
	}
	if placed {
		events = append(events, EventPowerUpSpawned)
	}

	if r.snake.Len()+r.obstacles.Len() >= r.world.Capacity() {
		return r.end(EndBoardFull, events)
	}
	return r.result(events)
}

// fail ends the run when a spawn finds no free cell
func (r *Run) fail(err error, events []Event) TickResult {
	if !errors.Is(err, grid.ErrBoardFull) {
		log.Printf("run: unexpected spawn failure: %v", err)
	}
	return r.end(EndBoardFull, events)
}

func (r *Run) end(reason EndReason, events []Event) TickResult {
	r.state = StateGameOver
	r.reason = reason
	r.pending = nil
	return r.result(append(events, EventDied))
}

func (r *Run) result(events []Event) TickResult {
	return TickResult{
		State:  r.state,
		Score:  r.levels.Score(),
		Reason: r.reason,
		Events: events,
	}
}

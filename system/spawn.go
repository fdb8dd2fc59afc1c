package system

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/neon-snake/component"
	"github.com/lixenwraith/neon-snake/grid"
	"github.com/lixenwraith/neon-snake/status"
)

// SpawnSystem places food, power-ups and obstacles on free cells
type SpawnSystem struct {
	world     *grid.World
	milestone int

	statFood      *atomic.Int64
	statObstacles *atomic.Int64
}

// NewSpawnSystem creates a spawner; milestone is the level interval for obstacle growth
func NewSpawnSystem(world *grid.World, milestone int, reg *status.Registry) *SpawnSystem {
	return &SpawnSystem{
		world:         world,
		milestone:     milestone,
		statFood:      reg.Ints.Get(status.KeyFoodSpawned),
		statObstacles: reg.Ints.Get(status.KeyObstacles),
	}
}

// SpawnFood returns a food cell outside the snake and the obstacles
func (s *SpawnSystem) SpawnFood(snake *component.Snake, obstacles *component.Obstacles) (component.Food, error) {
	p, err := s.world.RandomEmptyCell(snake, obstacles)
	if err != nil {
		return component.Food{}, fmt.Errorf("spawn food: %w", err)
	}
	s.statFood.Add(1)
	return component.Food{Pos: p}, nil
}

// SpawnPowerUp returns a power-up of uniformly random kind outside snake, obstacles and food
func (s *SpawnSystem) SpawnPowerUp(snake *component.Snake, obstacles *component.Obstacles, food *component.Food, now time.Time) (*component.PowerUp, error) {
	kind := component.PowerUpKind(s.world.Rand().Intn(int(component.PowerUpKindCount)))
	p, err := s.world.RandomEmptyCell(snake, obstacles, food)
	if err != nil {
		return nil, fmt.Errorf("spawn power-up: %w", err)
	}
	return &component.PowerUp{Kind: kind, Pos: p, SpawnTime: now}, nil
}

// SeedObstacles places the initial obstacle field, never on the snake
func (s *SpawnSystem) SeedObstacles(n int, snake *component.Snake, obstacles *component.Obstacles) error {
	for i := 0; i < n; i++ {
		if err := s.addObstacle(snake, obstacles); err != nil {
			return fmt.Errorf("seed obstacles: %w", err)
		}
	}
	return nil
}

// IsMilestone reports whether reaching level adds obstacles
func (s *SpawnSystem) IsMilestone(level int) bool {
	return s.milestone > 0 && level > 0 && level%s.milestone == 0
}

// GrowObstacles adds level/milestone+1 obstacles when level is a milestone
// Cells avoid the snake and existing obstacles only; food and power-up may be covered
func (s *SpawnSystem) GrowObstacles(level int, snake *component.Snake, obstacles *component.Obstacles) (int, error) {
	if !s.IsMilestone(level) {
		return 0, nil
	}
	count := level/s.milestone + 1
	for i := 0; i < count; i++ {
		if err := s.addObstacle(snake, obstacles); err != nil {
			return i, fmt.Errorf("grow obstacles at level %d: %w", level, err)
		}
	}
	return count, nil
}

func (s *SpawnSystem) addObstacle(snake *component.Snake, obstacles *component.Obstacles) error {
	p, err := s.world.RandomEmptyCell(snake, obstacles)
	if err != nil {
		return err
	}
	obstacles.Add(p)
	s.statObstacles.Store(int64(obstacles.Len()))
	return nil
}

package engine

import (
	"github.com/lixenwraith/neon-snake/parameter"
	"github.com/lixenwraith/neon-snake/system"
)

// Settings configures one Run
type Settings struct {
	GridSize          int
	Seed              uint64
	InitialObstacles  int
	ObstacleMilestone int
	GrowthPerFood     int

	Level   system.LevelConfig
	PowerUp system.PowerUpConfig
}

// DefaultSettings returns the tuning defaults from parameter
func DefaultSettings() Settings {
	return Settings{
		GridSize:          parameter.GridSize,
		Seed:              1,
		InitialObstacles:  parameter.InitialObstacles,
		ObstacleMilestone: parameter.ObstacleMilestone,
		GrowthPerFood:     parameter.SnakeGrowthPerFood,
		Level: system.LevelConfig{
			FoodReward:   parameter.FoodReward,
			Threshold:    parameter.LevelUpThreshold,
			BaseTickRate: parameter.BaseTickRate,
			MaxTickRate:  parameter.MaxTickRate,
		},
		PowerUp: system.PowerUpConfig{
			SpawnInterval:  parameter.PowerUpSpawnInterval,
			Lifetime:       parameter.PowerUpLifetime,
			EffectDuration: parameter.EffectDuration,
			SlowFactor:     parameter.SlowFactor,
			ShrinkAmount:   parameter.ShrinkAmount,
		},
	}
}

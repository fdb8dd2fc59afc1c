package parameter

// Scoring and level progression
const (
	// FoodReward is the score granted per food
	FoodReward = 10

	// LevelUpThreshold is the score span of one level: level = 1 + score/LevelUpThreshold
	LevelUpThreshold = 50

	// ObstacleMilestone is the level interval at which new obstacles are added
	ObstacleMilestone = 3

	// InitialObstacles is the size of the obstacle field placed at run start
	InitialObstacles = 5
)

// Tick rate
const (
	// BaseTickRate is ticks per second at level 1
	BaseTickRate = 12.0

	// MaxTickRate caps the escalation so the terminal can keep up
	MaxTickRate = 60.0
)

package parameter

// Snake body
const (
	// SnakeInitialLength is the body length at run start, head centred on the grid facing +x
	SnakeInitialLength = 3

	// SnakeMinLength is the floor enforced by shrink
	SnakeMinLength = 3

	// SnakeGrowthPerFood is the number of cells queued for growth per food eaten
	SnakeGrowthPerFood = 2
)

// Grid
const (
	// GridSize is the edge length of the square toroidal world
	GridSize = 20

	// GridSampleAttempts bounds random cell sampling before the row-major fallback scan
	GridSampleAttempts = 1000
)

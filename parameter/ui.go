package parameter

// Layout
const (
	// CellWidth is terminal columns per grid cell; two columns keep cells visually square
	CellWidth = 2

	// HUDRows is the number of rows above the board
	HUDRows = 1
)

// Recorder
const (
	// RecorderBuffer is the frame queue depth; frames beyond it are dropped
	RecorderBuffer = 1000
	RecorderDir    = "records"
)

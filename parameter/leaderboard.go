package parameter

// Leaderboard
const (
	LeaderboardSize     = 10
	LeaderboardShown    = 5 // rows on the game over view
	NameMaxLength       = 12
	DefaultPlayerName   = "Player"
	LeaderboardFile     = "neon_snake_scores.json"
	LeaderboardDatabase = "data/neon_snake.db"
)

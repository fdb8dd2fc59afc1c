package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/neon-snake/engine"
	"github.com/lixenwraith/neon-snake/parameter"
	"github.com/lixenwraith/neon-snake/record"
	"github.com/lixenwraith/neon-snake/system"
)

// Duration decodes TOML strings such as "15s" or "500ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config is the full set of tunables; zero fields in a file keep their defaults
type Config struct {
	Game        GameConfig        `toml:"game"`
	PowerUp     PowerUpConfig     `toml:"powerup"`
	Leaderboard LeaderboardConfig `toml:"leaderboard"`
	Audio       AudioConfig       `toml:"audio"`
	Record      RecordConfig      `toml:"record"`
}

type GameConfig struct {
	GridSize          int     `toml:"grid_size"`
	Seed              uint64  `toml:"seed"` // 0 picks a seed from the clock
	InitialObstacles  int     `toml:"initial_obstacles"`
	ObstacleMilestone int     `toml:"obstacle_milestone"`
	GrowthPerFood     int     `toml:"growth_per_food"`
	FoodReward        int     `toml:"food_reward"`
	LevelThreshold    int     `toml:"level_threshold"`
	BaseTickRate      float64 `toml:"base_tick_rate"`
	MaxTickRate       float64 `toml:"max_tick_rate"`
}

type PowerUpConfig struct {
	SpawnInterval  Duration `toml:"spawn_interval"`
	Lifetime       Duration `toml:"lifetime"`
	EffectDuration Duration `toml:"effect_duration"`
	SlowFactor     float64  `toml:"slow_factor"`
	ShrinkAmount   int      `toml:"shrink_amount"`
}

type LeaderboardConfig struct {
	Backend string `toml:"backend"` // "json" or "sqlite"
	File    string `toml:"file"`
	DB      string `toml:"db"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

type RecordConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
	Format  string `toml:"format"`
	Buffer  int    `toml:"buffer"`
}

// Default returns the built-in tuning
func Default() Config {
	return Config{
		Game: GameConfig{
			GridSize:          parameter.GridSize,
			InitialObstacles:  parameter.InitialObstacles,
			ObstacleMilestone: parameter.ObstacleMilestone,
			GrowthPerFood:     parameter.SnakeGrowthPerFood,
			FoodReward:        parameter.FoodReward,
			LevelThreshold:    parameter.LevelUpThreshold,
			BaseTickRate:      parameter.BaseTickRate,
			MaxTickRate:       parameter.MaxTickRate,
		},
		PowerUp: PowerUpConfig{
			SpawnInterval:  Duration{parameter.PowerUpSpawnInterval},
			Lifetime:       Duration{parameter.PowerUpLifetime},
			EffectDuration: Duration{parameter.EffectDuration},
			SlowFactor:     parameter.SlowFactor,
			ShrinkAmount:   parameter.ShrinkAmount,
		},
		Leaderboard: LeaderboardConfig{
			Backend: "json",
			File:    parameter.LeaderboardFile,
			DB:      parameter.LeaderboardDatabase,
		},
		Audio: AudioConfig{Enabled: true},
		Record: RecordConfig{
			Dir:    parameter.RecorderDir,
			Format: string(record.FormatJSONL),
			Buffer: parameter.RecorderBuffer,
		},
	}
}

// Load overlays the TOML file at path onto the defaults and validates the result
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c Config) Validate() error {
	var errs []error
	g := c.Game
	if g.GridSize < 5 {
		errs = append(errs, fmt.Errorf("game.grid_size %d must be at least 5", g.GridSize))
	}
	if g.InitialObstacles < 0 || (g.GridSize > 0 && g.InitialObstacles > g.GridSize*g.GridSize-parameter.SnakeInitialLength-1) {
		errs = append(errs, fmt.Errorf("game.initial_obstacles %d does not fit the board", g.InitialObstacles))
	}
	if g.ObstacleMilestone < 1 {
		errs = append(errs, errors.New("game.obstacle_milestone must be positive"))
	}
	if g.GrowthPerFood < 0 {
		errs = append(errs, errors.New("game.growth_per_food must not be negative"))
	}
	if g.FoodReward < 1 || g.LevelThreshold < 1 {
		errs = append(errs, errors.New("game.food_reward and game.level_threshold must be positive"))
	}
	if g.BaseTickRate <= 0 || g.MaxTickRate < g.BaseTickRate {
		errs = append(errs, fmt.Errorf("tick rates base=%v max=%v invalid", g.BaseTickRate, g.MaxTickRate))
	}

	p := c.PowerUp
	if p.SpawnInterval.Duration <= 0 || p.Lifetime.Duration <= 0 || p.EffectDuration.Duration <= 0 {
		errs = append(errs, errors.New("powerup durations must be positive"))
	}
	if p.SlowFactor <= 0 || p.SlowFactor > 1 {
		errs = append(errs, fmt.Errorf("powerup.slow_factor %v must be in (0, 1]", p.SlowFactor))
	}
	if p.ShrinkAmount < 0 {
		errs = append(errs, errors.New("powerup.shrink_amount must not be negative"))
	}

	switch c.Leaderboard.Backend {
	case "json", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("leaderboard.backend %q must be json or sqlite", c.Leaderboard.Backend))
	}
	if _, err := record.ParseFormat(c.Record.Format); err != nil {
		errs = append(errs, err)
	}
	if c.Record.Buffer < 0 {
		errs = append(errs, errors.New("record.buffer must not be negative"))
	}
	return errors.Join(errs...)
}

// Settings converts the game tunables for engine.NewRun; seed overrides Game.Seed when non-zero
func (c Config) Settings(seed uint64) engine.Settings {
	if seed == 0 {
		seed = c.Game.Seed
	}
	return engine.Settings{
		GridSize:          c.Game.GridSize,
		Seed:              seed,
		InitialObstacles:  c.Game.InitialObstacles,
		ObstacleMilestone: c.Game.ObstacleMilestone,
		GrowthPerFood:     c.Game.GrowthPerFood,
		Level: system.LevelConfig{
			FoodReward:   c.Game.FoodReward,
			Threshold:    c.Game.LevelThreshold,
			BaseTickRate: c.Game.BaseTickRate,
			MaxTickRate:  c.Game.MaxTickRate,
		},
		PowerUp: system.PowerUpConfig{
			SpawnInterval:  c.PowerUp.SpawnInterval.Duration,
			Lifetime:       c.PowerUp.Lifetime.Duration,
			EffectDuration: c.PowerUp.EffectDuration.Duration,
			SlowFactor:     c.PowerUp.SlowFactor,
			ShrinkAmount:   c.PowerUp.ShrinkAmount,
		},
	}
}

package record

import (
	"github.com/lixenwraith/neon-snake/engine"
	"github.com/lixenwraith/neon-snake/grid"
)

// Frame is one recorded tick
type Frame struct {
	Session   string       `json:"session" msgpack:"session"`
	Run       int          `json:"run" msgpack:"run"`
	Tick      int          `json:"tick" msgpack:"tick"`
	State     string       `json:"state" msgpack:"state"`
	Score     int          `json:"score" msgpack:"score"`
	Level     int          `json:"level" msgpack:"level"`
	TickRate  float64      `json:"tick_rate" msgpack:"tick_rate"`
	Snake     []grid.Point `json:"snake" msgpack:"snake"`
	Food      grid.Point   `json:"food" msgpack:"food"`
	Obstacles []grid.Point `json:"obstacles,omitempty" msgpack:"obstacles,omitempty"`
	PowerUp   string       `json:"power_up,omitempty" msgpack:"power_up,omitempty"`
	Effect    string       `json:"effect,omitempty" msgpack:"effect,omitempty"`
}

// NewFrame converts a snapshot; obstacles are only kept when withObstacles is set
func NewFrame(session string, run int, snap engine.Snapshot, withObstacles bool) Frame {
	f := Frame{
		Session:  session,
		Run:      run,
		Tick:     snap.Ticks,
		State:    snap.State.String(),
		Score:    snap.Score,
		Level:    snap.Level,
		TickRate: snap.TickRate,
		Snake:    snap.Snake,
		Food:     snap.Food,
	}
	if withObstacles {
		f.Obstacles = snap.Obstacles
	}
	if snap.PowerUp != nil {
		f.PowerUp = snap.PowerUp.Kind.String()
	}
	if snap.Effect != nil {
		f.Effect = snap.Effect.Kind.String()
	}
	return f
}

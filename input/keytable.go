package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/neon-snake/engine"
	"github.com/lixenwraith/neon-snake/grid"
)

// KeyTable maps keys to play intents
type KeyTable struct {
	// Special keys (arrows, Ctrl+*)
	SpecialKeys map[tcell.Key]engine.Intent

	// Rune bindings while playing
	PlayRunes map[rune]engine.Intent

	// Rune bindings on the recorded screen
	RecordedRunes map[rune]engine.Intent
}

// DefaultKeyTable returns arrows, WASD and vi keys for steering
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]engine.Intent{
			tcell.KeyUp:     engine.Move(grid.Up),
			tcell.KeyDown:   engine.Move(grid.Down),
			tcell.KeyLeft:   engine.Move(grid.Left),
			tcell.KeyRight:  engine.Move(grid.Right),
			tcell.KeyEscape: engine.Quit(),
			tcell.KeyCtrlC:  engine.Quit(),
			tcell.KeyCtrlQ:  engine.Quit(),
		},

		PlayRunes: map[rune]engine.Intent{
			'w': engine.Move(grid.Up),
			's': engine.Move(grid.Down),
			'a': engine.Move(grid.Left),
			'd': engine.Move(grid.Right),
			'k': engine.Move(grid.Up),
			'j': engine.Move(grid.Down),
			'h': engine.Move(grid.Left),
			'l': engine.Move(grid.Right),
			'p': engine.TogglePause(),
			' ': engine.TogglePause(),
			'm': engine.ToggleMute(),
			'q': engine.Quit(),
		},

		RecordedRunes: map[rune]engine.Intent{
			'r': engine.Confirm(""),
			' ': engine.Confirm(""),
			'm': engine.ToggleMute(),
			'q': engine.Quit(),
		},
	}
}

package engine

import "github.com/lixenwraith/neon-snake/grid"

// IntentKind enumerates player intents
type IntentKind int

const (
	IntentMove IntentKind = iota
	IntentTogglePause
	IntentQuit
	IntentConfirm
	IntentToggleMute
)

// Intent is one abstract player command produced by the input layer
type Intent struct {
	Kind IntentKind
	Dir  grid.Direction // IntentMove
	Text string         // IntentConfirm, IntentQuit during name entry
}

// Move requests a direction change applied on the next tick
func Move(d grid.Direction) Intent {
	return Intent{Kind: IntentMove, Dir: d}
}

// TogglePause flips between running and paused
func TogglePause() Intent {
	return Intent{Kind: IntentTogglePause}
}

// Quit ends the process
func Quit() Intent {
	return Intent{Kind: IntentQuit}
}

// QuitAs ends the process, recording a finished run under name first
func QuitAs(name string) Intent {
	return Intent{Kind: IntentQuit, Text: name}
}

// Confirm submits text: the player name after game over, or a restart request once recorded
func Confirm(text string) Intent {
	return Intent{Kind: IntentConfirm, Text: text}
}

// ToggleMute flips audio output; the session ignores it
func ToggleMute() Intent {
	return Intent{Kind: IntentToggleMute}
}

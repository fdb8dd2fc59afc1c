package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/neon-snake/component"
	"github.com/lixenwraith/neon-snake/engine"
	"github.com/lixenwraith/neon-snake/grid"
	"github.com/lixenwraith/neon-snake/leaderboard"
	"github.com/lixenwraith/neon-snake/status"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(100, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func screenText(screen tcell.SimulationScreen) string {
	w, h := screen.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.WriteString(rowText(screen, y, w))
		b.WriteByte('\n')
	}
	return b.String()
}

func baseSnapshot() engine.Snapshot {
	return engine.Snapshot{
		GridSize:  10,
		Snake:     []grid.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
		Direction: grid.Right,
		Obstacles: []grid.Point{{X: 1, Y: 1}},
		Food:      grid.Point{X: 8, Y: 2},
		Score:     30,
		Level:     1,
		TickRate:  12,
		State:     engine.StateRunning,
	}
}

func TestRenderBoardCells(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, nil, false)
	snap := baseSnapshot()
	snap.PowerUp = &component.PowerUp{Kind: component.PowerUpReverse, Pos: grid.Point{X: 0, Y: 9}}
	r.RenderFrame(snap, "")

	check := func(p grid.Point, want rune, what string) {
		t.Helper()
		x, y := CellScreen(p)
		if ch, _, _, _ := screen.GetContent(x, y); ch != want {
			t.Errorf("%s at %v: expected %q, got %q", what, p, want, ch)
		}
	}
	check(grid.Point{X: 5, Y: 5}, '█', "head")
	check(grid.Point{X: 4, Y: 5}, '▓', "body")
	check(grid.Point{X: 1, Y: 1}, '█', "obstacle")
	check(grid.Point{X: 8, Y: 2}, '●', "food")
	check(grid.Point{X: 0, Y: 9}, 'R', "power-up")
	check(grid.Point{X: 7, Y: 7}, '·', "empty")

	x, y := CellScreen(grid.Point{X: 5, Y: 5})
	_, _, style, _ := screen.GetContent(x, y)
	if fg, _, _ := style.Decompose(); fg != RgbSnakeHead {
		t.Errorf("Expected head color, got %v", fg)
	}

	hud := rowText(screen, 0, 100)
	if !strings.Contains(hud, "Score: 30") || !strings.Contains(hud, "Level: 1") {
		t.Errorf("HUD missing score/level: %q", hud)
	}
}

func TestRenderEffectCountdown(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, nil, false)
	snap := baseSnapshot()
	snap.Effect = &engine.EffectView{Kind: component.PowerUpSlow, Remaining: 4200 * time.Millisecond}
	r.RenderFrame(snap, "")

	if hud := rowText(screen, 0, 100); !strings.Contains(hud, "Power: SLOW 4s") {
		t.Errorf("Expected remaining seconds in HUD, got %q", hud)
	}

	// Whole seconds are truncated, the last second reads 0s
	snap.Effect.Remaining = 999 * time.Millisecond
	r.RenderFrame(snap, "")
	if hud := rowText(screen, 0, 100); !strings.Contains(hud, "Power: SLOW 0s") {
		t.Errorf("Expected truncated countdown, got %q", hud)
	}
}

func TestRenderPhases(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, nil, false)

	snap := baseSnapshot()
	snap.State = engine.StatePaused
	r.RenderFrame(snap, "")
	if !strings.Contains(screenText(screen), "PAUSED") {
		t.Errorf("Expected pause panel")
	}

	snap.State = engine.StateGameOver
	snap.Phase = engine.PhaseAwaitingName
	r.RenderFrame(snap, "Ada")
	text := screenText(screen)
	if !strings.Contains(text, "GAME OVER") || !strings.Contains(text, "> Ada_") {
		t.Errorf("Expected name prompt, got:\n%s", text)
	}

	snap.Phase = engine.PhaseRecorded
	snap.Rank = 2
	snap.Leaderboard = []leaderboard.Entry{{Name: "Bob", Score: 90}, {Name: "Ada", Score: 30}}
	r.RenderFrame(snap, "")
	text = screenText(screen)
	if !strings.Contains(text, "LEADERBOARD") || !strings.Contains(text, "*2. Ada") || !strings.Contains(text, " 1. Bob") {
		t.Errorf("Expected leaderboard with rank marker, got:\n%s", text)
	}
}

func TestRenderDebugOverlay(t *testing.T) {
	screen := newTestScreen(t)
	reg := status.NewRegistry()
	reg.Ints.Get(status.KeyTicks).Store(42)
	r := NewTerminalRenderer(screen, reg, true)
	r.RenderFrame(baseSnapshot(), "")

	if !strings.Contains(screenText(screen), "run.ticks=42") {
		t.Errorf("Expected debug metrics on screen")
	}
}

package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/neon-snake/engine"
	"github.com/lixenwraith/neon-snake/grid"
	"github.com/lixenwraith/neon-snake/parameter"
	"github.com/lixenwraith/neon-snake/status"
)

// TerminalRenderer draws snapshots onto a tcell screen
// It only reads the snapshot; core state is never touched
type TerminalRenderer struct {
	screen tcell.Screen
	status *status.Registry
	debug  bool
}

// NewTerminalRenderer creates a renderer; reg feeds the debug overlay when debug is set
func NewTerminalRenderer(screen tcell.Screen, reg *status.Registry, debug bool) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, status: reg, debug: debug}
}

// BoardOrigin returns the screen cell of grid (0,0)
func BoardOrigin() (x, y int) {
	return 1, parameter.HUDRows + 1
}

// CellScreen converts a grid point to its left screen column and row
func CellScreen(p grid.Point) (x, y int) {
	ox, oy := BoardOrigin()
	return ox + p.X*parameter.CellWidth, oy + p.Y
}

// RenderFrame draws the complete frame; draft is the name being typed after game over
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot, draft string) {
	r.screen.Clear()
	base := tcell.StyleDefault.Background(RgbBackground)

	r.drawHUD(snap, base)
	r.drawBorder(snap.GridSize, base)
	r.drawBoard(snap, base)

	switch {
	case snap.Phase == engine.PhaseAwaitingName:
		r.drawNamePrompt(snap, draft)
	case snap.Phase == engine.PhaseRecorded:
		r.drawLeaderboard(snap)
	case snap.State == engine.StatePaused:
		r.drawPanel(snap.GridSize, []string{"PAUSED", "", "p / space to resume"})
	}

	if r.debug && r.status != nil {
		r.drawDebug(snap.GridSize, base)
	}
	r.screen.Show()
}

func (r *TerminalRenderer) drawHUD(snap engine.Snapshot, base tcell.Style) {
	style := base.Foreground(RgbStatusText)
	text := fmt.Sprintf("Score: %d  Level: %d  Speed: %.1f/s", snap.Score, snap.Level, snap.TickRate)
	x := r.drawText(0, 0, text, style)

	if snap.Effect != nil {
		secs := int(snap.Effect.Remaining / time.Second)
		power := fmt.Sprintf("  Power: %s %ds", strings.ToUpper(snap.Effect.Kind.String()), secs)
		r.drawText(x, 0, power, base.Foreground(PowerUpColor(snap.Effect.Kind)).Bold(true))
	}
}

func (r *TerminalRenderer) drawBorder(size int, base tcell.Style) {
	style := base.Foreground(RgbGridDot)
	ox, oy := BoardOrigin()
	w := size * parameter.CellWidth
	top, bottom := oy-1, oy+size
	left, right := ox-1, ox+w

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(left, top, '┌', nil, style)
	r.screen.SetContent(right, top, '┐', nil, style)
	r.screen.SetContent(left, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}

func (r *TerminalRenderer) drawBoard(snap engine.Snapshot, base tcell.Style) {
	dot := base.Foreground(RgbGridDot)
	for y := 0; y < snap.GridSize; y++ {
		for x := 0; x < snap.GridSize; x++ {
			r.drawCell(grid.Point{X: x, Y: y}, '·', ' ', dot)
		}
	}

	for _, p := range snap.Obstacles {
		r.drawCell(p, '█', '█', base.Foreground(RgbObstacle))
	}
	r.drawCell(snap.Food, '●', ' ', base.Foreground(RgbFood))
	if snap.PowerUp != nil {
		style := base.Foreground(PowerUpColor(snap.PowerUp.Kind)).Bold(true)
		r.drawCell(snap.PowerUp.Pos, PowerUpGlyph(snap.PowerUp.Kind), ' ', style)
	}

	// Body tail-first so the head wins on overlap at game over
	for i := len(snap.Snake) - 1; i >= 1; i-- {
		r.drawCell(snap.Snake[i], '▓', '▓', base.Foreground(RgbSnakeBody))
	}
	if len(snap.Snake) > 0 {
		r.drawCell(snap.Snake[0], '█', '█', base.Foreground(RgbSnakeHead))
	}
}

func (r *TerminalRenderer) drawCell(p grid.Point, left, right rune, style tcell.Style) {
	x, y := CellScreen(p)
	r.screen.SetContent(x, y, left, nil, style)
	if parameter.CellWidth > 1 {
		r.screen.SetContent(x+1, y, right, nil, style)
	}
}

func (r *TerminalRenderer) drawNamePrompt(snap engine.Snapshot, draft string) {
	title := "GAME OVER"
	if snap.Reason == engine.EndBoardFull {
		title = "BOARD CLEARED"
	}
	lines := []string{
		title,
		fmt.Sprintf("Score: %d", snap.Score),
		"",
		"Enter your name:",
		fmt.Sprintf("> %s_", draft),
	}
	r.drawPanel(snap.GridSize, lines)
}

func (r *TerminalRenderer) drawLeaderboard(snap engine.Snapshot) {
	lines := []string{"LEADERBOARD", ""}
	if len(snap.Leaderboard) == 0 {
		lines = append(lines, "no entries")
	}
	for i, e := range snap.Leaderboard {
		marker := " "
		if i+1 == snap.Rank {
			marker = "*"
		}
		lines = append(lines, fmt.Sprintf("%s%d. %-12s %6d", marker, i+1, e.Name, e.Score))
	}
	lines = append(lines, "", "enter / r: play again   q: quit")
	r.drawPanel(snap.GridSize, lines)
}

// drawPanel centres a box of lines over the board
func (r *TerminalRenderer) drawPanel(size int, lines []string) {
	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	width += 4

	ox, oy := BoardOrigin()
	boardW := size * parameter.CellWidth
	x0 := ox + (boardW-width)/2
	if x0 < 0 {
		x0 = 0
	}
	y0 := oy + (size-len(lines))/2
	if y0 < 0 {
		y0 = 0
	}

	bg := tcell.StyleDefault.Background(RgbOverlay)
	for y := y0 - 1; y <= y0+len(lines); y++ {
		for x := x0; x < x0+width; x++ {
			r.screen.SetContent(x, y, ' ', nil, bg)
		}
	}
	for i, l := range lines {
		style := bg.Foreground(RgbStatusText)
		if i == 0 {
			style = bg.Foreground(RgbTitle).Bold(true)
		}
		lx := x0 + (width-len([]rune(l)))/2
		r.drawText(lx, y0+i, l, style)
	}
}

func (r *TerminalRenderer) drawDebug(size int, base tcell.Style) {
	ox, oy := BoardOrigin()
	x := ox + size*parameter.CellWidth + 2
	style := base.Foreground(RgbDebug)
	for i, line := range r.status.Lines() {
		r.drawText(x, oy+i, line, style)
	}
}

// drawText writes s from (x, y) and returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

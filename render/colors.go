package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/neon-snake/component"
)

// Neon palette
var (
	RgbBackground = tcell.NewRGBColor(10, 10, 20)    // Near black
	RgbGridDot    = tcell.NewRGBColor(35, 35, 60)    // Faint grid marks
	RgbSnakeHead  = tcell.NewRGBColor(0, 255, 200)   // Bright cyan-green
	RgbSnakeBody  = tcell.NewRGBColor(0, 170, 140)   // Dim cyan-green
	RgbObstacle   = tcell.NewRGBColor(255, 50, 150)  // Hot pink
	RgbFood       = tcell.NewRGBColor(255, 220, 0)   // Yellow
	RgbStatusText = tcell.NewRGBColor(230, 230, 255) // Near white
	RgbOverlay    = tcell.NewRGBColor(20, 20, 45)    // Panel background
	RgbTitle      = tcell.NewRGBColor(255, 80, 200)  // Magenta
	RgbDebug      = tcell.NewRGBColor(130, 130, 160) // Gray

	RgbPowerSlow    = tcell.NewRGBColor(80, 160, 255) // Blue
	RgbPowerReverse = tcell.NewRGBColor(255, 140, 0)  // Orange
	RgbPowerShrink  = tcell.NewRGBColor(180, 90, 255) // Purple
)

// PowerUpColor returns the display color for a power-up kind
func PowerUpColor(kind component.PowerUpKind) tcell.Color {
	switch kind {
	case component.PowerUpSlow:
		return RgbPowerSlow
	case component.PowerUpReverse:
		return RgbPowerReverse
	case component.PowerUpShrink:
		return RgbPowerShrink
	}
	return RgbStatusText
}

// PowerUpGlyph returns the board glyph for a power-up kind
func PowerUpGlyph(kind component.PowerUpKind) rune {
	switch kind {
	case component.PowerUpSlow:
		return 'S'
	case component.PowerUpReverse:
		return 'R'
	case component.PowerUpShrink:
		return 'X'
	}
	return '?'
}

package component

import "github.com/lixenwraith/neon-snake/grid"

// Food is the single food cell; it is respawned every time it is eaten
type Food struct {
	Pos grid.Point
}

// Has lets the food act as a spawn exclusion
func (f *Food) Has(p grid.Point) bool {
	return f != nil && f.Pos == p
}

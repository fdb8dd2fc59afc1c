package component

import (
	"sort"

	"github.com/lixenwraith/neon-snake/grid"
	"github.com/zyedidia/generic/mapset"
)

// Obstacles is the static wall set of a run
// Cells are only ever added; nothing removes an obstacle within a run
type Obstacles struct {
	cells mapset.Set[grid.Point]
}

// NewObstacles creates an empty obstacle set
func NewObstacles() *Obstacles {
	return &Obstacles{cells: mapset.New[grid.Point]()}
}

// Add inserts p, returning false if it was already an obstacle
func (o *Obstacles) Add(p grid.Point) bool {
	if o.cells.Has(p) {
		return false
	}
	o.cells.Put(p)
	return true
}

// Has reports whether p is an obstacle
func (o *Obstacles) Has(p grid.Point) bool {
	return o.cells.Has(p)
}

// Len returns the obstacle count
func (o *Obstacles) Len() int {
	return o.cells.Size()
}

// Cells returns the obstacles in row-major order for stable rendering and recording
func (o *Obstacles) Cells() []grid.Point {
	out := make([]grid.Point, 0, o.cells.Size())
	o.cells.Each(func(p grid.Point) {
		out = append(out, p)
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

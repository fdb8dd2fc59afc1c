package grid

import (
	"errors"

	"github.com/lixenwraith/neon-snake/parameter"
	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned when no cell is free; the capacity check of the run
// should have ended the game before this can happen
var ErrBoardFull = errors.New("grid: no free cell")

// Occupancy answers whether a cell is taken; snake bodies and cell sets implement it
type Occupancy interface {
	Has(p Point) bool
}

// World is the fixed-size toroidal board
// Size is immutable; the random source is owned by the world and only used for sampling
type World struct {
	size int
	rng  *rand.Rand
}

// NewWorld creates a size×size world sampling cells from a source seeded with seed
func NewWorld(size int, seed uint64) *World {
	return &World{
		size: size,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Size returns the edge length
func (w *World) Size() int {
	return w.size
}

// Capacity returns the number of cells on the board
func (w *World) Capacity() int {
	return w.size * w.size
}

// Rand exposes the world's random source so spawners share one reproducible stream
func (w *World) Rand() *rand.Rand {
	return w.rng
}

// Wrap reduces any integer coordinate into [0,size) on both axes
func (w *World) Wrap(p Point) Point {
	return Point{X: mod(p.X, w.size), Y: mod(p.Y, w.size)}
}

// Step moves p one cell in d with wraparound
func (w *World) Step(p Point, d Direction) Point {
	return w.Wrap(p.Add(d))
}

// Contains reports whether p is already in bounds
func (w *World) Contains(p Point) bool {
	return p.X >= 0 && p.X < w.size && p.Y >= 0 && p.Y < w.size
}

// Center returns the middle cell
func (w *World) Center() Point {
	return Point{X: w.size / 2, Y: w.size / 2}
}

// RandomEmptyCell samples a uniformly random cell not held by any of excluded
// After GridSampleAttempts misses it scans row-major and returns the first free cell
func (w *World) RandomEmptyCell(excluded ...Occupancy) (Point, error) {
	for attempt := 0; attempt < parameter.GridSampleAttempts; attempt++ {
		p := Point{X: w.rng.Intn(w.size), Y: w.rng.Intn(w.size)}
		if !occupied(p, excluded) {
			return p, nil
		}
	}

	for y := 0; y < w.size; y++ {
		for x := 0; x < w.size; x++ {
			p := Point{X: x, Y: y}
			if !occupied(p, excluded) {
				return p, nil
			}
		}
	}
	return Point{}, ErrBoardFull
}

func occupied(p Point, excluded []Occupancy) bool {
	for _, ex := range excluded {
		if ex != nil && ex.Has(p) {
			return true
		}
	}
	return false
}

func mod(v, n int) int {
	r := v % n
	if r < 0 {
		r += n
	}
	return r
}

// Cell is a single-cell Occupancy, used to exclude the food or a power-up
type Cell struct {
	Point Point
	Valid bool
}

// Has reports whether p is the held cell
func (c Cell) Has(p Point) bool {
	return c.Valid && c.Point == p
}

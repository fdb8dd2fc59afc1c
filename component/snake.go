package component

import (
	"github.com/lixenwraith/neon-snake/grid"
	"github.com/lixenwraith/neon-snake/parameter"
)

// Snake is the player body, head at index 0
// Body is never empty; shrink keeps at least SnakeMinLength cells
type Snake struct {
	world *grid.World

	body          []grid.Point
	direction     grid.Direction
	growthPending int
}

// NewSnake creates a snake of SnakeInitialLength centred on the world, facing right
func NewSnake(world *grid.World) *Snake {
	center := world.Center()
	body := make([]grid.Point, 0, parameter.SnakeInitialLength)
	for i := 0; i < parameter.SnakeInitialLength; i++ {
		body = append(body, world.Wrap(grid.Point{X: center.X - i, Y: center.Y}))
	}
	return &Snake{
		world:     world,
		body:      body,
		direction: grid.Right,
	}
}

// NewSnakeAt creates a snake from explicit head-first cells
// Used by tests and replays; cells are wrapped into the world
func NewSnakeAt(world *grid.World, direction grid.Direction, cells ...grid.Point) *Snake {
	body := make([]grid.Point, len(cells))
	for i, c := range cells {
		body[i] = world.Wrap(c)
	}
	return &Snake{
		world:     world,
		body:      body,
		direction: direction,
	}
}

// Head returns the head cell
func (s *Snake) Head() grid.Point {
	return s.body[0]
}

// Len returns the body length
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the direction used by the next move
func (s *Snake) Direction() grid.Direction {
	return s.direction
}

// GrowthPending returns the number of queued growth cells
func (s *Snake) GrowthPending() int {
	return s.growthPending
}

// Cells returns a head-first copy of the body
func (s *Snake) Cells() []grid.Point {
	out := make([]grid.Point, len(s.body))
	copy(out, s.body)
	return out
}

// Has reports whether any body cell is p
func (s *Snake) Has(p grid.Point) bool {
	for _, c := range s.body {
		if c == p {
			return true
		}
	}
	return false
}

// SetDirection sets the direction for the next move
// Non-cardinal vectors and exact reversals (while longer than one cell) are rejected
func (s *Snake) SetDirection(d grid.Direction) bool {
	if !d.IsCardinal() {
		return false
	}
	if d == s.direction.Opposite() && len(s.body) > 1 {
		return false
	}
	s.direction = d
	return true
}

// Move advances the head one cell and drops the tail unless growth is pending
func (s *Snake) Move() {
	head := s.world.Step(s.body[0], s.direction)

	s.body = append(s.body, grid.Point{})
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head

	if s.growthPending > 0 {
		s.growthPending--
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// Grow queues n cells of growth
func (s *Snake) Grow(n int) {
	if n > 0 {
		s.growthPending += n
	}
}

// Shrink removes up to n tail cells without going below SnakeMinLength
func (s *Snake) Shrink(n int) int {
	removed := 0
	for removed < n && len(s.body) > parameter.SnakeMinLength {
		s.body = s.body[:len(s.body)-1]
		removed++
	}
	return removed
}

// CollidesWithSelf reports whether the head shares a cell with another segment
func (s *Snake) CollidesWithSelf() bool {
	head := s.body[0]
	for _, c := range s.body[1:] {
		if c == head {
			return true
		}
	}
	return false
}

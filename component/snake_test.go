package component

import (
	"testing"
	"time"

	"github.com/lixenwraith/neon-snake/grid"
)

func TestNewSnakeCentredFacingRight(t *testing.T) {
	w := grid.NewWorld(21, 1)
	s := NewSnake(w)

	if s.Len() != 3 {
		t.Fatalf("Expected length 3, got %d", s.Len())
	}
	want := []grid.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}
	for i, c := range s.Cells() {
		if c != want[i] {
			t.Errorf("Cell %d: expected %v, got %v", i, want[i], c)
		}
	}
	if s.Direction() != grid.Right {
		t.Errorf("Expected initial direction right, got %v", s.Direction())
	}
}

func TestSnakeMoveKeepsLength(t *testing.T) {
	w := grid.NewWorld(21, 1)
	s := NewSnakeAt(w, grid.Right, grid.Point{X: 5, Y: 5}, grid.Point{X: 4, Y: 5}, grid.Point{X: 3, Y: 5})

	s.Move()

	if s.Head() != (grid.Point{X: 6, Y: 5}) {
		t.Errorf("Expected head (6,5), got %v", s.Head())
	}
	if s.Len() != 3 {
		t.Errorf("Expected length 3, got %d", s.Len())
	}
	if s.Has(grid.Point{X: 3, Y: 5}) {
		t.Error("Tail should have been dropped")
	}
}

func TestSnakeMoveWraps(t *testing.T) {
	w := grid.NewWorld(20, 1)
	s := NewSnakeAt(w, grid.Right, grid.Point{X: 19, Y: 5}, grid.Point{X: 18, Y: 5}, grid.Point{X: 17, Y: 5})

	s.Move()

	if s.Head() != (grid.Point{X: 0, Y: 5}) {
		t.Errorf("Expected wrapped head (0,5), got %v", s.Head())
	}
}

func TestSnakeGrowthConsumedPerMove(t *testing.T) {
	w := grid.NewWorld(20, 1)
	s := NewSnake(w)
	s.Grow(2)

	s.Move()
	if s.Len() != 4 || s.GrowthPending() != 1 {
		t.Fatalf("After first move: len=%d pending=%d", s.Len(), s.GrowthPending())
	}
	s.Move()
	if s.Len() != 5 || s.GrowthPending() != 0 {
		t.Fatalf("After second move: len=%d pending=%d", s.Len(), s.GrowthPending())
	}
	s.Move()
	if s.Len() != 5 {
		t.Errorf("Expected neutral move at length 5, got %d", s.Len())
	}

	s.Grow(-3)
	if s.GrowthPending() != 0 {
		t.Errorf("Negative growth must be ignored, pending=%d", s.GrowthPending())
	}
}

func TestSnakeSetDirection(t *testing.T) {
	w := grid.NewWorld(20, 1)
	s := NewSnake(w)

	if s.SetDirection(grid.Left) {
		t.Error("Reversal should be rejected")
	}
	if s.Direction() != grid.Right {
		t.Errorf("Direction changed after rejected reversal: %v", s.Direction())
	}
	if s.SetDirection(grid.Direction{X: 1, Y: 1}) {
		t.Error("Diagonal should be rejected")
	}
	if !s.SetDirection(grid.Up) {
		t.Error("Perpendicular turn should be accepted")
	}
	if s.Direction() != grid.Up {
		t.Errorf("Expected up, got %v", s.Direction())
	}
}

func TestSnakeSingleCellMayReverse(t *testing.T) {
	w := grid.NewWorld(20, 1)
	s := NewSnakeAt(w, grid.Right, grid.Point{X: 3, Y: 3})
	if !s.SetDirection(grid.Left) {
		t.Error("A one-cell snake may reverse")
	}
}

func TestSnakeShrinkFloor(t *testing.T) {
	w := grid.NewWorld(20, 1)
	s := NewSnake(w)
	s.Grow(4)
	for i := 0; i < 4; i++ {
		s.Move()
	}
	if s.Len() != 7 {
		t.Fatalf("Expected length 7, got %d", s.Len())
	}

	if removed := s.Shrink(3); removed != 3 || s.Len() != 4 {
		t.Errorf("Shrink(3): removed=%d len=%d", removed, s.Len())
	}
	if removed := s.Shrink(3); removed != 1 || s.Len() != 3 {
		t.Errorf("Shrink(3) near floor: removed=%d len=%d", removed, s.Len())
	}
	if removed := s.Shrink(10); removed != 0 || s.Len() != 3 {
		t.Errorf("Shrink at floor: removed=%d len=%d", removed, s.Len())
	}
}

func TestSnakeSelfCollision(t *testing.T) {
	w := grid.NewWorld(20, 1)
	// Hook shape: moving up from (5,5) lands on (5,4), which is body
	s := NewSnakeAt(w, grid.Up,
		grid.Point{X: 5, Y: 5},
		grid.Point{X: 6, Y: 5},
		grid.Point{X: 6, Y: 4},
		grid.Point{X: 5, Y: 4},
		grid.Point{X: 4, Y: 4},
	)
	if s.CollidesWithSelf() {
		t.Fatal("No collision before move")
	}
	s.Move()
	if !s.CollidesWithSelf() {
		t.Error("Expected self collision after moving into body")
	}
}

func TestSnakeFollowsTailWithoutCollision(t *testing.T) {
	w := grid.NewWorld(20, 1)
	// Square loop: head moves into the cell the tail vacates this tick
	s := NewSnakeAt(w, grid.Up,
		grid.Point{X: 5, Y: 5},
		grid.Point{X: 6, Y: 5},
		grid.Point{X: 6, Y: 4},
		grid.Point{X: 5, Y: 4},
	)
	s.Move()
	if s.CollidesWithSelf() {
		t.Error("Moving into the vacated tail cell is not a collision")
	}
}

func TestObstaclesMonotonic(t *testing.T) {
	o := NewObstacles()
	if !o.Add(grid.Point{X: 2, Y: 1}) || !o.Add(grid.Point{X: 1, Y: 1}) || !o.Add(grid.Point{X: 0, Y: 3}) {
		t.Fatal("Fresh cells should be added")
	}
	if o.Add(grid.Point{X: 1, Y: 1}) {
		t.Error("Duplicate add should report false")
	}
	if o.Len() != 3 {
		t.Errorf("Expected 3 obstacles, got %d", o.Len())
	}
	want := []grid.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 0, Y: 3}}
	for i, c := range o.Cells() {
		if c != want[i] {
			t.Errorf("Cells()[%d] = %v, want %v", i, c, want[i])
		}
	}
}

func TestEffectRemaining(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	e := &Effect{Kind: PowerUpSlow, Expiry: now.Add(2 * time.Second)}
	if e.Remaining(now) != 2*time.Second {
		t.Errorf("Expected 2s, got %v", e.Remaining(now))
	}
	if e.Remaining(now.Add(3*time.Second)) != 0 {
		t.Error("Remaining must clamp to zero")
	}
	if PowerUpShrink.Timed() || !PowerUpSlow.Timed() || !PowerUpReverse.Timed() {
		t.Error("Only slow and reverse are timed")
	}
}

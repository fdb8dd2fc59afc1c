package engine

import (
	"path/filepath"
	"testing"

	"github.com/lixenwraith/neon-snake/component"
	"github.com/lixenwraith/neon-snake/grid"
	"github.com/lixenwraith/neon-snake/leaderboard"
	"github.com/lixenwraith/neon-snake/status"
)

func newTestSession(t *testing.T) (*Session, *leaderboard.Board, *status.Registry) {
	t.Helper()
	settings := DefaultSettings()
	settings.InitialObstacles = 0
	reg := status.NewRegistry()
	board := leaderboard.NewBoard(leaderboard.NewFileStore(filepath.Join(t.TempDir(), "scores.json")), 10)
	s, err := NewSession(settings, NewGameClock(NewMockTimeProvider(runStart)), board, reg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s, board, reg
}

func crash(s *Session) TickResult {
	r := s.Run()
	r.obstacles.Add(r.world.Step(r.snake.Head(), r.snake.Direction()))
	return s.Tick()
}

func TestSessionFlow(t *testing.T) {
	s, board, reg := newTestSession(t)
	if s.Phase() != PhasePlaying {
		t.Fatalf("Expected playing, got %v", s.Phase())
	}

	// Confirm is meaningless while playing
	if quit, err := s.Handle(Confirm("x")); quit || err != nil {
		t.Fatalf("unexpected quit=%v err=%v", quit, err)
	}
	if len(board.Entries()) != 0 {
		t.Fatalf("entry recorded during play")
	}

	if res := crash(s); !res.GameOver() {
		t.Fatalf("Expected game over, got %+v", res)
	}
	if s.Phase() != PhaseAwaitingName {
		t.Fatalf("Expected awaiting name, got %v", s.Phase())
	}

	// Movement is ignored while typing the name
	s.Handle(Move(grid.Up))
	if _, err := s.Handle(Confirm("")); err != nil {
		t.Fatal(err)
	}
	if s.Phase() != PhaseRecorded || s.Rank() != 1 {
		t.Fatalf("Expected recorded at rank 1, got %v rank %d", s.Phase(), s.Rank())
	}
	entries := board.Entries()
	if len(entries) != 1 || entries[0].Name != "Player" || entries[0].Score != 0 {
		t.Errorf("unexpected entries %v", entries)
	}
	snap := s.Snapshot()
	if len(snap.Leaderboard) != 1 || snap.Phase != PhaseRecorded || snap.State != StateGameOver {
		t.Errorf("unexpected snapshot %+v", snap)
	}

	first := s.Run()
	if _, err := s.Handle(Confirm("")); err != nil {
		t.Fatal(err)
	}
	if s.Run() == first || s.Phase() != PhasePlaying || s.Run().State() != StateRunning {
		t.Errorf("Expected a fresh run after restart")
	}
	if got := reg.Ints.Get(status.KeyRuns).Load(); got != 2 {
		t.Errorf("Expected 2 runs started, got %d", got)
	}
	if got := reg.Ints.Get(status.KeyLeaderboardSaves).Load(); got != 1 {
		t.Errorf("Expected 1 save, got %d", got)
	}
}

func TestSessionQuit(t *testing.T) {
	s, board, reg := newTestSession(t)
	if quit, _ := s.Handle(Quit()); !quit {
		t.Error("Expected quit while playing")
	}
	if len(board.Entries()) != 0 {
		t.Fatalf("quit during play recorded an entry")
	}

	r := s.Run()
	r.food = component.Food{Pos: r.world.Step(r.snake.Head(), r.snake.Direction())}
	if res := s.Tick(); res.Score != 10 {
		t.Fatalf("Expected score 10, got %+v", res)
	}
	crash(s)

	quit, err := s.Handle(Quit())
	if !quit || err != nil {
		t.Fatalf("Expected quit while awaiting name, got quit=%v err=%v", quit, err)
	}
	entries := board.Entries()
	if len(entries) != 1 || entries[0].Name != "Player" || entries[0].Score != 10 {
		t.Errorf("Expected finished run recorded on quit, got %v", entries)
	}
	if s.Phase() != PhaseRecorded || s.Rank() != 1 {
		t.Errorf("Expected recorded at rank 1, got %v rank %d", s.Phase(), s.Rank())
	}
	if got := reg.Ints.Get(status.KeyLeaderboardSaves).Load(); got != 1 {
		t.Errorf("Expected 1 save, got %d", got)
	}

	// Once recorded, quitting does not record again
	if quit, _ := s.Handle(Quit()); !quit || len(board.Entries()) != 1 {
		t.Errorf("Expected plain quit after recording, entries %v", board.Entries())
	}
}

func TestSessionQuitKeepsTypedName(t *testing.T) {
	s, board, _ := newTestSession(t)
	crash(s)
	if _, err := s.Handle(QuitAs("Ada")); err != nil {
		t.Fatal(err)
	}
	if entries := board.Entries(); len(entries) != 1 || entries[0].Name != "Ada" {
		t.Errorf("Expected Ada recorded, got %v", entries)
	}
}

func TestSessionPauseAndSteer(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Handle(TogglePause())
	if s.Run().State() != StatePaused {
		t.Fatalf("Expected paused")
	}
	s.Handle(TogglePause())
	s.Handle(Move(grid.Down))
	s.Tick()
	if s.Run().snake.Direction() != grid.Down {
		t.Errorf("Expected steer to reach the run")
	}
}

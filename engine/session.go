package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/neon-snake/leaderboard"
	"github.com/lixenwraith/neon-snake/parameter"
	"github.com/lixenwraith/neon-snake/status"
)

// SessionPhase is the outer game flow around a Run
type SessionPhase int

const (
	PhasePlaying      SessionPhase = iota // a Run is in progress
	PhaseAwaitingName                     // run ended, collecting the player name
	PhaseRecorded                         // entry stored, waiting for restart
)

func (p SessionPhase) String() string {
	switch p {
	case PhaseAwaitingName:
		return "awaiting name"
	case PhaseRecorded:
		return "recorded"
	}
	return "playing"
}

// Session drives consecutive runs against one leaderboard
type Session struct {
	settings Settings
	clock    *GameClock
	reg      *status.Registry
	board    *leaderboard.Board

	run   *Run
	phase SessionPhase
	runs  uint64
	rank  int

	statRuns  *atomic.Int64
	statSaves *atomic.Int64
}

// NewSession creates a session and starts its first run
func NewSession(settings Settings, clock *GameClock, board *leaderboard.Board, reg *status.Registry) (*Session, error) {
	s := &Session{
		settings:  settings,
		clock:     clock,
		reg:       reg,
		board:     board,
		statRuns:  reg.Ints.Get(status.KeyRuns),
		statSaves: reg.Ints.Get(status.KeyLeaderboardSaves),
	}
	if err := s.restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// Run returns the current run
func (s *Session) Run() *Run { return s.run }

// Phase returns the session phase
func (s *Session) Phase() SessionPhase { return s.phase }

// Rank returns the placement of the last recorded entry, 0 when it did not place
func (s *Session) Rank() int { return s.rank }

// TickInterval returns the delay before the next tick
func (s *Session) TickInterval() time.Duration {
	return s.run.TickInterval()
}

// Handle applies one intent; quit is true when the player asked to leave
// A returned error is a leaderboard write failure; the session continues regardless
// Quitting while the name is pending still records the finished run
func (s *Session) Handle(in Intent) (quit bool, err error) {
	if in.Kind == IntentQuit {
		if s.phase == PhaseAwaitingName {
			return true, s.record(in.Text)
		}
		return true, nil
	}

	switch s.phase {
	case PhasePlaying:
		switch in.Kind {
		case IntentMove:
			s.run.Steer(in.Dir)
		case IntentTogglePause:
			s.run.TogglePause()
		}

	case PhaseAwaitingName:
		if in.Kind == IntentConfirm {
			return false, s.record(in.Text)
		}

	case PhaseRecorded:
		if in.Kind == IntentConfirm {
			return false, s.restart()
		}
	}
	return false, nil
}

// Tick advances the current run; on game over the session starts collecting a name
func (s *Session) Tick() TickResult {
	res := s.run.Tick()
	if s.phase == PhasePlaying && res.GameOver() {
		s.phase = PhaseAwaitingName
	}
	return res
}

// Snapshot returns run state plus the session view
func (s *Session) Snapshot() Snapshot {
	snap := s.run.Snapshot()
	snap.Phase = s.phase
	snap.Rank = s.rank
	snap.Leaderboard = s.board.Top(parameter.LeaderboardShown)
	return snap
}

func (s *Session) record(name string) error {
	s.phase = PhaseRecorded
	rank, err := s.board.Record(name, s.run.Score())
	s.rank = rank
	if err != nil {
		return err
	}
	s.statSaves.Add(1)
	return nil
}

func (s *Session) restart() error {
	settings := s.settings
	settings.Seed += s.runs
	run, err := NewRun(settings, s.clock, s.reg)
	if err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	s.run = run
	s.runs++
	s.phase = PhasePlaying
	s.rank = 0
	s.statRuns.Add(1)
	return nil
}

// File: game/match.go
package game

import (
	"fmt"
	"time"
)

type MatchState int

const (
	NotStarted MatchState = iota
	Playing
	GameOver
)

func (s MatchState) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Playing:
		return "Playing"
	case GameOver:
		return "GameOver"
	}
	return fmt.Sprintf("MatchState(%d)", int(s))
}

func (s MatchState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *MatchState) UnmarshalText(text []byte) error {
	for _, state := range []MatchState{NotStarted, Playing, GameOver} {
		if state.String() == string(text) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown match state %q", text)
}

// Match keeps the score and the lifecycle of the current game.
type Match struct {
	State       MatchState
	LeftScore   int
	RightScore  int
	Winner      Side
	GamesPlayed int
	ResetAt     time.Time

	winningScore  int
	gracePeriod   time.Duration
	endAnnounced  bool
	winnerDecided bool
}

func NewMatch(winningScore int, gracePeriod time.Duration) *Match {
	return &Match{
		State:        NotStarted,
		winningScore: winningScore,
		gracePeriod:  gracePeriod,
	}
}

// Start zeroes the scores and enters Playing. It is accepted in every state.
func (m *Match) Start(now time.Time) {
	m.LeftScore = 0
	m.RightScore = 0
	m.winnerDecided = false
	m.endAnnounced = false
	m.State = Playing
	m.GamesPlayed++
	m.ResetAt = now
}

// Serve records when the ball was last put back in the centre.
func (m *Match) Serve(now time.Time) {
	m.ResetAt = now
}

// BallLive reports whether the grace period after the last serve is over.
func (m *Match) BallLive(now time.Time) bool {
	return now.Sub(m.ResetAt) > m.gracePeriod
}

// Award adds one point to side and returns the new scores.
func (m *Match) Award(side Side) (left, right int) {
	if side == SideLeft {
		m.LeftScore++
	} else {
		m.RightScore++
	}
	return m.LeftScore, m.RightScore
}

// CheckWin moves the match to GameOver once a side reaches the winning score.
// Left is checked first. It returns true on the frame the game ends.
func (m *Match) CheckWin() bool {
	if m.State != Playing {
		return false
	}
	switch {
	case m.LeftScore >= m.winningScore:
		m.Winner = SideLeft
	case m.RightScore >= m.winningScore:
		m.Winner = SideRight
	default:
		return false
	}
	m.winnerDecided = true
	m.State = GameOver
	return true
}

// AnnounceEnd latches the end of the game. It returns true the first time it
// is called after a game ended and false until the next Start.
func (m *Match) AnnounceEnd() bool {
	if m.State != GameOver || m.GamesPlayed == 0 || m.endAnnounced {
		return false
	}
	m.endAnnounced = true
	return true
}

// HasWinner reports whether a finished game has a winner to display.
func (m *Match) HasWinner() bool {
	return m.State == GameOver && m.winnerDecided
}

// PromptVisible reports whether the continue prompt should be shown.
func (m *Match) PromptVisible() bool {
	return m.State != Playing
}

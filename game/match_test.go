// File: game/match_test.go
package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMatchStart(t *testing.T) {
	m := NewMatch(7, time.Second)
	assert.Equal(t, NotStarted, m.State)
	assert.True(t, m.PromptVisible())

	m.LeftScore, m.RightScore = 3, 4
	m.Start(epoch)

	assert.Equal(t, Playing, m.State)
	assert.Equal(t, 1, m.GamesPlayed)
	assert.Zero(t, m.LeftScore)
	assert.Zero(t, m.RightScore)
	assert.Equal(t, epoch, m.ResetAt)
	assert.False(t, m.PromptVisible())
}

func TestMatchBallLive(t *testing.T) {
	m := NewMatch(7, time.Second)
	m.Start(epoch)

	assert.False(t, m.BallLive(epoch))
	assert.False(t, m.BallLive(epoch.Add(time.Second)), "the grace period is exclusive")
	assert.True(t, m.BallLive(epoch.Add(time.Second+time.Nanosecond)))

	m.Serve(epoch.Add(5 * time.Second))
	assert.False(t, m.BallLive(epoch.Add(5500*time.Millisecond)))
}

func TestMatchCheckWin(t *testing.T) {
	testCases := []struct {
		name        string
		left, right int
		ends        bool
		winner      Side
	}{
		{"No winner yet", 6, 6, false, SideLeft},
		{"Left reaches threshold", 7, 2, true, SideLeft},
		{"Right reaches threshold", 0, 7, true, SideRight},
		{"Left checked first", 7, 7, true, SideLeft},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMatch(7, time.Second)
			m.Start(epoch)
			m.LeftScore, m.RightScore = tc.left, tc.right

			assert.Equal(t, tc.ends, m.CheckWin())
			if tc.ends {
				assert.Equal(t, GameOver, m.State)
				assert.Equal(t, tc.winner, m.Winner)
				assert.True(t, m.HasWinner())
				assert.False(t, m.CheckWin(), "the transition happens once")
			} else {
				assert.Equal(t, Playing, m.State)
				assert.False(t, m.HasWinner())
			}
		})
	}
}

func TestMatchAnnounceEndLatch(t *testing.T) {
	m := NewMatch(7, time.Second)
	assert.False(t, m.AnnounceEnd(), "nothing to announce before the first game")

	m.Start(epoch)
	assert.False(t, m.AnnounceEnd(), "nothing to announce while playing")

	m.Award(SideRight)
	m.RightScore = 7
	m.CheckWin()
	assert.True(t, m.AnnounceEnd())
	for i := 0; i < 10; i++ {
		assert.False(t, m.AnnounceEnd())
	}

	m.Start(epoch)
	m.LeftScore = 7
	m.CheckWin()
	assert.True(t, m.AnnounceEnd(), "the latch is cleared by Start")
}

func TestMatchAward(t *testing.T) {
	m := NewMatch(7, time.Second)
	m.Start(epoch)

	left, right := m.Award(SideLeft)
	assert.Equal(t, 1, left)
	assert.Equal(t, 0, right)

	left, right = m.Award(SideRight)
	assert.Equal(t, 1, left)
	assert.Equal(t, 1, right)
}

func TestMatchStateText(t *testing.T) {
	for _, state := range []MatchState{NotStarted, Playing, GameOver} {
		text, err := state.MarshalText()
		assert.NoError(t, err)

		var decoded MatchState
		assert.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, state, decoded)
	}

	var s MatchState
	assert.Error(t, s.UnmarshalText([]byte("Paused")))
}

// File: game/session_test.go
package game

import (
	"testing"
	"time"

	"github.com/lguibr/pongduel/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	events    []Event
	snapshots []Snapshot
}

func (r *recordingSink) HandleEvent(e Event) { r.events = append(r.events, e) }

func (r *recordingSink) PublishFrame(s Snapshot, _ Scene) { r.snapshots = append(r.snapshots, s) }

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestSessionTick(t *testing.T) {
	g := newTestGame(t, utils.ModeDuel)
	sink := &recordingSink{}
	clock := &fakeClock{now: epoch}
	session := NewSession(g, sink, sink)
	session.Clock = clock.Now

	scene := session.Tick(Controls{Pressed: NewKeySet(KeyEnter)})
	assert.Len(t, scene.Boxes, 2)
	require.Len(t, sink.events, 1)
	assert.IsType(t, GameStartedEvent{}, sink.events[0])

	// First frame has no elapsed time, so holding a key moved nothing.
	clock.Advance(100 * time.Millisecond)
	session.Tick(Controls{Held: NewKeySet(KeyS)})
	assert.InDelta(t, 175+10.5, g.Paddles[0].Position.Y, 1e-9)

	require.Len(t, sink.snapshots, 2)
	assert.Equal(t, uint64(1), sink.snapshots[0].Frame)
	assert.Equal(t, uint64(2), sink.snapshots[1].Frame)
	assert.Equal(t, uint64(2), session.Frames())
}

func TestSessionForwardsScoreEvents(t *testing.T) {
	g := newTestGame(t, utils.ModeDuel)
	sink := &recordingSink{}
	clock := &fakeClock{now: epoch}
	session := NewSession(g, sink, nil)
	session.Clock = clock.Now

	session.Tick(Controls{Pressed: NewKeySet(KeyEnter)})
	clock.Advance(2 * time.Second)
	g.Ball.Position = utils.Vector2{X: 590, Y: 200}
	g.Ball.Velocity = utils.Vector2{X: 115, Y: 0}
	session.Tick(Controls{})

	assert.Equal(t, 1, countEvents[ScoreEvent](sink.events))
	assert.Empty(t, sink.snapshots)
}

func TestSessionNilSinks(t *testing.T) {
	session := NewSession(newTestGame(t, utils.ModeSolo), nil, nil)
	assert.NotPanics(t, func() {
		session.Tick(Controls{Pressed: NewKeySet(KeyEnter)})
		session.Tick(Controls{})
	})
}

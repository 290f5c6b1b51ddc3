// File: game/collision_tracker_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactTracker_Begin(t *testing.T) {
	tracker := NewContactTracker()
	left := ContactKey{BallID: 0, PaddleID: SideLeft}
	right := ContactKey{BallID: 0, PaddleID: SideRight}

	assert.Equal(t, Separated, tracker.State(left), "Unknown pairs start separated")

	assert.True(t, tracker.Begin(left), "First Begin should report a new contact")
	assert.Equal(t, Overlapping, tracker.State(left))

	assert.False(t, tracker.Begin(left), "Begin on an overlapping pair should not report a new contact")
	assert.Equal(t, Overlapping, tracker.State(left))

	assert.True(t, tracker.Begin(right), "Pairs are tracked independently")
}

func TestContactTracker_End(t *testing.T) {
	tracker := NewContactTracker()
	key := ContactKey{BallID: 0, PaddleID: SideLeft}

	assert.False(t, tracker.End(key), "Ending a separated pair is a no-op")

	tracker.Begin(key)
	assert.True(t, tracker.End(key))
	assert.Equal(t, Separated, tracker.State(key))

	assert.True(t, tracker.Begin(key), "A pair that separated can begin again")
}

func TestContactTracker_ActiveFor(t *testing.T) {
	tracker := NewContactTracker()
	tracker.Begin(ContactKey{BallID: 0, PaddleID: SideLeft})
	tracker.Begin(ContactKey{BallID: 0, PaddleID: SideRight})
	tracker.Begin(ContactKey{BallID: 1, PaddleID: SideLeft})

	assert.ElementsMatch(t,
		[]ContactKey{{BallID: 0, PaddleID: SideLeft}, {BallID: 0, PaddleID: SideRight}},
		tracker.ActiveFor(0))
	assert.Len(t, tracker.ActiveFor(1), 1)
	assert.Empty(t, tracker.ActiveFor(7))
}

func TestContactTracker_ClearAll(t *testing.T) {
	tracker := NewContactTracker()
	key := ContactKey{BallID: 0, PaddleID: SideRight}
	tracker.Begin(key)

	tracker.ClearAll()

	assert.Equal(t, Separated, tracker.State(key))
	assert.Empty(t, tracker.ActiveFor(0))
	assert.True(t, tracker.Begin(key))
}

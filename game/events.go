// File: game/events.go
package game

import (
	"fmt"

	"github.com/lguibr/pongduel/utils"
)

// Event is a side effect produced by a frame. Events are plain values so they
// can be handed to actors outside the frame loop.
type Event interface {
	fmt.Stringer
	isEvent()
}

// ContactKind tells which probe decided a paddle bounce.
type ContactKind int

const (
	ContactVertical   ContactKind = iota // Top or bottom probe inside the paddle
	ContactHorizontal                    // Left or right probe inside the paddle
	ContactCorner                        // A diagonal probe inside the paddle
	ContactGlancing                      // Circle overlaps but no probe is inside
	ContactWall                          // Solo mode back wall
)

func (k ContactKind) String() string {
	switch k {
	case ContactVertical:
		return "vertical"
	case ContactHorizontal:
		return "horizontal"
	case ContactCorner:
		return "corner"
	case ContactGlancing:
		return "glancing"
	case ContactWall:
		return "wall"
	}
	return fmt.Sprintf("ContactKind(%d)", int(k))
}

// GameStartedEvent is emitted when the start command enters Playing.
type GameStartedEvent struct {
	GamesPlayed int
}

// HitEvent is emitted once per ball/paddle contact.
type HitEvent struct {
	Side     Side
	Contact  ContactKind
	Velocity utils.Vector2 // Velocity after the bounce
}

// ScoreEvent is emitted when the ball leaves the arena through a side edge.
type ScoreEvent struct {
	Scorer Side
	Left   int
	Right  int
}

// GameEndEvent is emitted once per game over.
type GameEndEvent struct {
	Winner      Side
	Left        int
	Right       int
	GamesPlayed int
}

func (GameStartedEvent) isEvent() {}
func (HitEvent) isEvent()         {}
func (ScoreEvent) isEvent()       {}
func (GameEndEvent) isEvent()     {}

func (e GameStartedEvent) String() string {
	return fmt.Sprintf("game %d started", e.GamesPlayed)
}

func (e HitEvent) String() string {
	return fmt.Sprintf("%s hit (%s), velocity %.1f,%.1f", e.Side, e.Contact, e.Velocity.X, e.Velocity.Y)
}

func (e ScoreEvent) String() string {
	return fmt.Sprintf("%s scores, "+utils.ScoreFormat, e.Scorer, e.Left, e.Right)
}

func (e GameEndEvent) String() string {
	return fmt.Sprintf(utils.WinnerFormat+" game %d, "+utils.ScoreFormat, e.Winner, e.GamesPlayed, e.Left, e.Right)
}

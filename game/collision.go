// File: game/collision.go
package game

import (
	"github.com/lguibr/pongduel/utils"
)

// CollideWalls points the vertical velocity back into the arena when the top
// or bottom probe has left it. The reflection is directional, so a ball that
// stays outside for several frames is turned around once.
func (ball *Ball) CollideWalls(arena utils.Rect, probes Probes) {
	if probes.Top.Y < arena.Y {
		ball.HandleCollideTop()
	} else if probes.Bottom.Y > arena.Bottom() {
		ball.HandleCollideBottom()
	}
}

// CollideBackWall turns the ball around at the right edge of the arena. It
// is only used when no right paddle is in play, and reports true on the frame
// the ball is turned.
func (ball *Ball) CollideBackWall(arena utils.Rect, probes Probes) bool {
	if probes.Right.X <= arena.Right() || ball.Velocity.X <= 0 {
		return false
	}
	ball.HandleCollideRight()
	return true
}

// CollidePaddle bounces the ball off the paddle on the first frame of an
// overlap. While the overlap lasts nothing else happens; once the circle
// and the paddle separate the pair is armed again.
func (ball *Ball) CollidePaddle(paddle *Paddle, probes Probes, tracker *ContactTracker) (HitEvent, bool) {
	if paddle == nil {
		return HitEvent{}, false
	}
	key := ContactKey{BallID: ball.ID, PaddleID: paddle.Side}
	rect := paddle.Rect()

	if !utils.CircleIntersectsRect(ball.Position, ball.Radius, rect) {
		tracker.End(key)
		return HitEvent{}, false
	}
	if !tracker.Begin(key) {
		return HitEvent{}, false
	}

	contact := ClassifyContact(probes, rect)
	switch contact {
	case ContactVertical:
		ball.Velocity.Y = -ball.Velocity.Y
	case ContactHorizontal:
		ball.Velocity.X = -ball.Velocity.X
	default:
		ball.Velocity.X = -ball.Velocity.X
		ball.Velocity.Y = -ball.Velocity.Y
	}

	return HitEvent{Side: paddle.Side, Contact: contact, Velocity: ball.Velocity}, true
}

// ClassifyContact picks the first matching probe group: vertical probes,
// then horizontal probes, then diagonals.
func ClassifyContact(probes Probes, rect utils.Rect) ContactKind {
	if utils.PointInRect(probes.Top, rect) || utils.PointInRect(probes.Bottom, rect) {
		return ContactVertical
	}
	if utils.PointInRect(probes.Left, rect) || utils.PointInRect(probes.Right, rect) {
		return ContactHorizontal
	}
	for _, p := range probes.Diagonal {
		if utils.PointInRect(p, rect) {
			return ContactCorner
		}
	}
	return ContactGlancing
}

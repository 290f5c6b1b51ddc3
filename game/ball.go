// File: game/ball.go
package game

import (
	"math"
	"math/rand"

	"github.com/lguibr/pongduel/utils"
)

type Ball struct {
	ID       int           `json:"id"`
	Position utils.Vector2 `json:"position"` // Centre
	Velocity utils.Vector2 `json:"velocity"`
	Radius   float64       `json:"radius"`
	speed    utils.Vector2
}

// NewBall creates a ball resting at the given centre. Call Serve to set it in
// motion.
func NewBall(id int, center utils.Vector2, radius float64, speed utils.Vector2) *Ball {
	return &Ball{
		ID:       id,
		Position: center,
		Velocity: speed,
		Radius:   radius,
		speed:    speed,
	}
}

// Serve re-centres the ball and picks the sign of each velocity component
// with an independent coin flip.
func (ball *Ball) Serve(center utils.Vector2, rng *rand.Rand) {
	ball.Position = center
	ball.Velocity = utils.Vector2{
		X: math.Abs(ball.speed.X) * utils.CoinFlip(rng),
		Y: math.Abs(ball.speed.Y) * utils.CoinFlip(rng),
	}
}

// Move integrates the position over dt seconds.
func (ball *Ball) Move(dt float64) {
	ball.Position = utils.SumVectors(ball.Position, utils.MultiplyVectorByScalar(ball.Velocity, dt))
}

// Probes are sample points on the ball's circumference used as a stand-in
// for exact contact geometry.
type Probes struct {
	Top, Bottom, Left, Right utils.Vector2
	Diagonal                 [4]utils.Vector2
}

// Probes samples the circumference at the four cardinal points and at four
// diagonal points offset by radius*cos(angle) and radius*sin(angle), with the
// angle taken in radians.
func (ball *Ball) Probes(angle float64) Probes {
	x, y, r := ball.Position.X, ball.Position.Y, ball.Radius
	dx, dy := r*math.Cos(angle), r*math.Sin(angle)
	return Probes{
		Top:    utils.Vector2{X: x, Y: y - r},
		Bottom: utils.Vector2{X: x, Y: y + r},
		Left:   utils.Vector2{X: x - r, Y: y},
		Right:  utils.Vector2{X: x + r, Y: y},
		Diagonal: [4]utils.Vector2{
			{X: x + dx, Y: y + dy},
			{X: x - dx, Y: y + dy},
			{X: x - dx, Y: y - dy},
			{X: x + dx, Y: y - dy},
		},
	}
}

func (ball *Ball) HandleCollideTop() {
	ball.Velocity.Y = math.Abs(ball.Velocity.Y)
}

func (ball *Ball) HandleCollideBottom() {
	ball.Velocity.Y = -math.Abs(ball.Velocity.Y)
}

func (ball *Ball) HandleCollideRight() {
	ball.Velocity.X = -math.Abs(ball.Velocity.X)
}

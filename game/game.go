// File: game/game.go
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lguibr/pongduel/utils"
)

// Game owns every piece of state of one table: paddles, ball, score and the
// contact tracker. It is advanced by Step from a single goroutine.
type Game struct {
	Rules   utils.Rules `json:"rules"`
	Mode    string      `json:"mode"`
	Paddles []*Paddle   `json:"paddles"` // Left first
	Ball    *Ball       `json:"ball"`
	Match   *Match      `json:"match"`

	contacts *ContactTracker
	rng      *rand.Rand
}

// New builds a game in the NotStarted state. It panics if the rules are
// invalid or the mode is unknown; both are fixed before the process starts
// drawing frames.
func New(rules utils.Rules, mode string, rng *rand.Rand) *Game {
	if err := rules.Validate(); err != nil {
		panic(fmt.Sprintf("game.New: %v", err))
	}
	if rng == nil {
		rng = utils.NewRandomSource()
	}

	paddles := []*Paddle{NewPaddle(SideLeft, rules)}
	switch mode {
	case utils.ModeDuel:
		paddles = append(paddles, NewPaddle(SideRight, rules))
	case utils.ModeSolo:
	default:
		panic(fmt.Sprintf("game.New: %v: %q", utils.ErrUnknownMode, mode))
	}

	g := &Game{
		Rules:    rules,
		Mode:     mode,
		Paddles:  paddles,
		Ball:     NewBall(0, rules.Center(), rules.BallRadius, rules.BallSpeed),
		Match:    NewMatch(rules.WinningScore, rules.GracePeriod),
		contacts: NewContactTracker(),
		rng:      rng,
	}
	g.Ball.Serve(rules.Center(), rng)
	return g
}

// Paddle returns the paddle on side, or nil when that side is not in play.
func (g *Game) Paddle(side Side) *Paddle {
	for _, p := range g.Paddles {
		if p.Side == side {
			return p
		}
	}
	return nil
}

// Contacts exposes the ball/paddle contact states.
func (g *Game) Contacts() *ContactTracker { return g.contacts }

// Start begins a new game from any state.
func (g *Game) Start(now time.Time) GameStartedEvent {
	g.Match.Start(now)
	g.serve(now)
	for _, p := range g.Paddles {
		p.Reset()
	}
	return GameStartedEvent{GamesPlayed: g.Match.GamesPlayed}
}

// Step advances the game by one frame. dt is the time since the previous
// frame in seconds and now the wall-clock time of this frame. The returned
// events are in the order they happened.
func (g *Game) Step(ctrl Controls, dt float64, now time.Time) []Event {
	if dt < 0 {
		dt = 0
	}
	var events []Event

	if ctrl.StartRequested() {
		events = append(events, g.Start(now))
	}

	if g.Match.State == Playing {
		for _, p := range g.Paddles {
			p.Move(ctrl.Held, dt)
		}
		if g.Match.BallLive(now) {
			events = append(events, g.updateBall(dt)...)
			if score, ok := g.checkScore(now); ok {
				events = append(events, score)
			}
		}
	}

	g.Match.CheckWin()

	if g.Match.AnnounceEnd() {
		events = append(events, GameEndEvent{
			Winner:      g.Match.Winner,
			Left:        g.Match.LeftScore,
			Right:       g.Match.RightScore,
			GamesPlayed: g.Match.GamesPlayed,
		})
	}
	return events
}

// updateBall reflects the ball off walls and paddles, then integrates it.
func (g *Game) updateBall(dt float64) []Event {
	var events []Event
	ball := g.Ball
	arena := g.Rules.Arena()
	probes := ball.Probes(g.Rules.DiagonalAngle)

	ball.CollideWalls(arena, probes)

	for _, paddle := range g.Paddles {
		if hit, ok := ball.CollidePaddle(paddle, probes, g.contacts); ok {
			events = append(events, hit)
		}
	}

	if g.Paddle(SideRight) == nil && ball.CollideBackWall(arena, probes) {
		events = append(events, HitEvent{Side: SideRight, Contact: ContactWall, Velocity: ball.Velocity})
	}

	ball.Move(dt)
	return events
}

// checkScore awards a point when the ball has left the arena through a side
// edge: a left exit scores for the right side and a right exit for the left.
func (g *Game) checkScore(now time.Time) (ScoreEvent, bool) {
	arena := g.Rules.Arena()
	probes := g.Ball.Probes(g.Rules.DiagonalAngle)

	var scorer Side
	switch {
	case probes.Left.X < arena.X:
		scorer = SideRight
	case probes.Right.X > arena.Right() && g.Paddle(SideRight) != nil:
		scorer = SideLeft
	default:
		return ScoreEvent{}, false
	}

	left, right := g.Match.Award(scorer)
	g.serve(now)
	return ScoreEvent{Scorer: scorer, Left: left, Right: right}, true
}

// serve re-centres the ball with a fresh random direction and restarts the
// grace period.
func (g *Game) serve(now time.Time) {
	g.Ball.Serve(g.Rules.Center(), g.rng)
	g.Match.Serve(now)
	g.contacts.ClearAll()
}

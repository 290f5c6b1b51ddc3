// File: game/session.go
package game

import (
	"log"
	"time"
)

// EventSink receives the events of every frame, in order.
type EventSink interface {
	HandleEvent(Event)
}

// FrameSink receives a copy of the state and the scene after every frame.
type FrameSink interface {
	PublishFrame(Snapshot, Scene)
}

// Session drives a Game from a front-end: it measures the frame time, steps
// the game and hands the results to the sinks. A Session is used from the
// goroutine that runs the frame loop.
type Session struct {
	Clock func() time.Time

	game   *Game
	events EventSink
	frames FrameSink
	last   time.Time
	frame  uint64
}

// NewSession wraps g. Either sink may be nil.
func NewSession(g *Game, events EventSink, frames FrameSink) *Session {
	return &Session{
		Clock:  time.Now,
		game:   g,
		events: events,
		frames: frames,
	}
}

func (s *Session) Game() *Game { return s.game }

// Frames is the number of frames ticked so far.
func (s *Session) Frames() uint64 { return s.frame }

// Tick runs one frame. The first frame has a zero time step, later frames use
// the wall-clock time elapsed since the previous Tick.
func (s *Session) Tick(ctrl Controls) Scene {
	now := s.Clock()
	var dt float64
	if !s.last.IsZero() {
		dt = now.Sub(s.last).Seconds()
	}
	s.last = now

	events := s.game.Step(ctrl, dt, now)
	s.frame++

	for _, event := range events {
		switch event.(type) {
		case HitEvent:
		default:
			log.Printf("Session: frame %d: %s", s.frame, event)
		}
		if s.events != nil {
			s.events.HandleEvent(event)
		}
	}

	scene := s.game.Scene()
	if s.frames != nil {
		snapshot := s.game.Snapshot()
		snapshot.Frame = s.frame
		s.frames.PublishFrame(snapshot, scene)
	}
	return scene
}

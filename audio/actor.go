// File: audio/actor.go
package audio

import (
	"log"

	"github.com/lguibr/pongduel/bollywood"
	"github.com/lguibr/pongduel/game"
)

// SoundFor maps a game event to its sound effect.
func SoundFor(event game.Event) (Sound, bool) {
	switch event.(type) {
	case game.HitEvent:
		return SoundHit, true
	case game.ScoreEvent:
		return SoundScore, true
	case game.GameEndEvent:
		return SoundGameEnd, true
	}
	return 0, false
}

// SoundActor plays the sound of every game event it receives, keeping audio
// work off the frame loop.
type SoundActor struct {
	player  Player
	selfPID *bollywood.PID
}

func NewSoundActorProducer(player Player) bollywood.Producer {
	return func() bollywood.Actor {
		return &SoundActor{player: player}
	}
}

func (a *SoundActor) Receive(ctx bollywood.Context) {
	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		log.Printf("SoundActor %s: started", a.selfPID)
	case game.Event:
		if sound, ok := SoundFor(msg); ok {
			a.player.Play(sound)
		}
	case bollywood.Stopping, bollywood.Stopped:
	default:
		log.Printf("SoundActor %s: unknown message type %T", a.selfPID, msg)
	}
}

// EventSink hands game events to a SoundActor.
type EventSink struct {
	engine *bollywood.Engine
	pid    *bollywood.PID
}

func NewEventSink(engine *bollywood.Engine, pid *bollywood.PID) *EventSink {
	return &EventSink{engine: engine, pid: pid}
}

func (s *EventSink) HandleEvent(event game.Event) {
	s.engine.Send(s.pid, event, nil)
}

// File: audio/actor_test.go
package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lguibr/pongduel/bollywood"
	"github.com/lguibr/pongduel/game"
)

type channelPlayer chan Sound

func (c channelPlayer) Play(s Sound) { c <- s }

func TestSoundFor(t *testing.T) {
	testCases := []struct {
		event    game.Event
		sound    Sound
		hasSound bool
	}{
		{game.HitEvent{Side: game.SideLeft}, SoundHit, true},
		{game.ScoreEvent{Scorer: game.SideRight}, SoundScore, true},
		{game.GameEndEvent{Winner: game.SideLeft}, SoundGameEnd, true},
		{game.GameStartedEvent{GamesPlayed: 1}, 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.event.String(), func(t *testing.T) {
			sound, ok := SoundFor(tc.event)
			assert.Equal(t, tc.hasSound, ok)
			assert.Equal(t, tc.sound, sound)
		})
	}
}

func TestSoundActorPlaysEvents(t *testing.T) {
	engine := bollywood.NewEngine()
	defer engine.Shutdown(time.Second)

	player := make(channelPlayer, 8)
	pid := engine.Spawn(bollywood.NewProps(NewSoundActorProducer(player)))
	sink := NewEventSink(engine, pid)

	sink.HandleEvent(game.GameStartedEvent{GamesPlayed: 1})
	sink.HandleEvent(game.HitEvent{Side: game.SideRight})
	sink.HandleEvent(game.ScoreEvent{Scorer: game.SideLeft, Left: 1})
	sink.HandleEvent(game.GameEndEvent{Winner: game.SideLeft})

	var got []Sound
	timeout := time.After(time.Second)
	for len(got) < 3 {
		select {
		case s := <-player:
			got = append(got, s)
		case <-timeout:
			t.Fatalf("only received %v", got)
		}
	}
	assert.Equal(t, []Sound{SoundHit, SoundScore, SoundGameEnd}, got)
}

// File: console/console.go
package console

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lguibr/pongduel/game"
	"github.com/lguibr/pongduel/input"
	"github.com/lguibr/pongduel/render"
	"github.com/lguibr/pongduel/utils"
)

const eventBuffer = 100

// Console runs a session on a terminal screen.
type Console struct {
	screen   tcell.Screen
	session  *game.Session
	tracker  *input.Tracker
	terminal *render.Terminal
	period   time.Duration
}

// New prepares a console on an initialized screen. The caller owns the screen
// and finalizes it after Run returns.
func New(screen tcell.Screen, session *game.Session, cfg utils.Config) *Console {
	return &Console{
		screen:   screen,
		session:  session,
		tracker:  input.NewTracker(cfg.KeyHoldWindow),
		terminal: render.NewTerminal(screen),
		period:   cfg.FramePeriod(),
	}
}

// Run ticks the session until a quit key is pressed or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.period)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, eventBuffer)
	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	c.frame()
	for {
		select {
		case <-ctx.Done():
			log.Printf("Console: stopping: %v", ctx.Err())
			return nil

		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				c.screen.Sync()
				continue
			}
			c.tracker.HandleEvent(ev)
			if c.tracker.Quit() {
				log.Printf("Console: quit key pressed")
				return nil
			}

		case <-ticker.C:
			c.frame()
		}
	}
}

func (c *Console) frame() {
	scene := c.session.Tick(c.tracker.Controls(time.Now()))
	c.terminal.Draw(scene)
}

// File: input/tracker.go
package input

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lguibr/pongduel/game"
)

var (
	runeKeys = map[rune]game.Key{
		'w': game.KeyW,
		's': game.KeyS,
		'a': game.KeyA,
		'd': game.KeyD,
	}
	specialKeys = map[tcell.Key]game.Key{
		tcell.KeyUp:    game.KeyArrowUp,
		tcell.KeyDown:  game.KeyArrowDown,
		tcell.KeyLeft:  game.KeyArrowLeft,
		tcell.KeyRight: game.KeyArrowRight,
		tcell.KeyEnter: game.KeyEnter,
	}
)

// KeyFor translates a terminal key event into a game key.
func KeyFor(ev *tcell.EventKey) (game.Key, bool) {
	if ev.Key() == tcell.KeyRune {
		k, ok := runeKeys[unicode.ToLower(ev.Rune())]
		return k, ok
	}
	k, ok := specialKeys[ev.Key()]
	return k, ok
}

// IsQuit reports whether the event asks to leave the game.
func IsQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}

// Tracker turns terminal key events into per-frame Controls. Terminals only
// report presses and auto-repeats, so a key counts as held until the hold
// window has passed since its last event.
type Tracker struct {
	window   time.Duration
	lastSeen map[game.Key]time.Time
	pressed  game.KeySet
	quit     bool
}

func NewTracker(window time.Duration) *Tracker {
	return &Tracker{
		window:   window,
		lastSeen: make(map[game.Key]time.Time),
	}
}

// HandleEvent records a tcell event. Events other than keys are ignored.
func (t *Tracker) HandleEvent(ev tcell.Event) {
	if key, ok := ev.(*tcell.EventKey); ok {
		t.Observe(key, key.When())
	}
}

// Observe records a key event seen at the given time. A key that was not
// held at that time also counts as pressed for the next frame.
func (t *Tracker) Observe(ev *tcell.EventKey, at time.Time) {
	if IsQuit(ev) {
		t.quit = true
		return
	}
	k, ok := KeyFor(ev)
	if !ok {
		return
	}
	if !t.heldAt(k, at) {
		t.pressed = t.pressed.With(k)
	}
	t.lastSeen[k] = at
}

func (t *Tracker) heldAt(k game.Key, now time.Time) bool {
	last, ok := t.lastSeen[k]
	return ok && now.Sub(last) <= t.window
}

// Controls samples the input for a frame at now and clears the pressed set.
func (t *Tracker) Controls(now time.Time) game.Controls {
	var held game.KeySet
	for k := range t.lastSeen {
		if t.heldAt(k, now) {
			held = held.With(k)
		} else {
			delete(t.lastSeen, k)
		}
	}
	ctrl := game.Controls{Held: held, Pressed: t.pressed}
	t.pressed = 0
	return ctrl
}

// Quit reports whether a quit key has been seen.
func (t *Tracker) Quit() bool { return t.quit }

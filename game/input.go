// File: game/input.go
package game

// Key is one physical key the game reacts to. Front-ends translate their own
// key codes into these.
type Key uint16

const (
	KeyW Key = 1 << iota
	KeyS
	KeyA
	KeyD
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyEnter
)

// KeySet is a set of keys packed into a bitmask.
type KeySet uint16

// NewKeySet returns the set holding the given keys.
func NewKeySet(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s |= KeySet(k)
	}
	return s
}

func (s KeySet) Has(k Key) bool { return s&KeySet(k) != 0 }

// With returns a copy of s with k added.
func (s KeySet) With(k Key) KeySet { return s | KeySet(k) }

func (s KeySet) Empty() bool { return s == 0 }

// Controls is the input sampled for one frame. Held lists keys that are down
// during the frame, Pressed the keys that went down since the previous frame.
type Controls struct {
	Held    KeySet
	Pressed KeySet
}

// StartRequested reports whether the start key was pressed this frame.
func (c Controls) StartRequested() bool {
	return c.Pressed.Has(KeyEnter)
}

// Binding maps the four movement directions of one paddle to keys.
type Binding struct {
	Up, Down, Left, Right Key
}

var (
	LeftBinding  = Binding{Up: KeyW, Down: KeyS, Left: KeyA, Right: KeyD}
	RightBinding = Binding{Up: KeyArrowUp, Down: KeyArrowDown, Left: KeyArrowLeft, Right: KeyArrowRight}
)

// VerticalHeld reports whether a key on the vertical axis is held.
func (b Binding) VerticalHeld(held KeySet) bool {
	return held.Has(b.Up) || held.Has(b.Down)
}

// HorizontalHeld reports whether a key on the horizontal axis is held.
func (b Binding) HorizontalHeld(held KeySet) bool {
	return held.Has(b.Left) || held.Has(b.Right)
}

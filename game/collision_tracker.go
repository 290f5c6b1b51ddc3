// File: game/collision_tracker.go
package game

// ContactState is the state of one ball/paddle pair.
type ContactState int

const (
	Separated ContactState = iota
	Overlapping
)

func (s ContactState) String() string {
	if s == Overlapping {
		return "Overlapping"
	}
	return "Separated"
}

// ContactKey identifies a ball/paddle pair.
type ContactKey struct {
	BallID   int
	PaddleID Side
}

// ContactTracker remembers which ball/paddle pairs currently overlap, so that
// a bounce fires only on the frame an overlap begins. Pairs that were never
// seen are Separated.
//
// The tracker belongs to the frame loop and is not safe for concurrent use.
type ContactTracker struct {
	overlapping map[ContactKey]struct{}
}

func NewContactTracker() *ContactTracker {
	return &ContactTracker{overlapping: make(map[ContactKey]struct{})}
}

// Begin moves key to Overlapping. It returns true only on the transition from
// Separated, which is when the bounce must be applied.
func (ct *ContactTracker) Begin(key ContactKey) bool {
	if _, ok := ct.overlapping[key]; ok {
		return false
	}
	ct.overlapping[key] = struct{}{}
	return true
}

// End moves key back to Separated. It returns true if the pair was overlapping.
func (ct *ContactTracker) End(key ContactKey) bool {
	if _, ok := ct.overlapping[key]; !ok {
		return false
	}
	delete(ct.overlapping, key)
	return true
}

func (ct *ContactTracker) State(key ContactKey) ContactState {
	if _, ok := ct.overlapping[key]; ok {
		return Overlapping
	}
	return Separated
}

// ActiveFor lists the overlapping pairs involving the given ball.
func (ct *ContactTracker) ActiveFor(ballID int) []ContactKey {
	keys := make([]ContactKey, 0, len(ct.overlapping))
	for key := range ct.overlapping {
		if key.BallID == ballID {
			keys = append(keys, key)
		}
	}
	return keys
}

// ClearAll separates every pair. Called whenever the ball is re-served.
func (ct *ContactTracker) ClearAll() {
	clear(ct.overlapping)
}

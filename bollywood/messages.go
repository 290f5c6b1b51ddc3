package bollywood

// Started is the first message an actor receives.
type Started struct{}

// Stopping is delivered when the actor is asked to stop. No user message
// follows it.
type Stopping struct{}

// Stopped is the last message an actor receives, right before its goroutine
// exits.
type Stopped struct{}

type envelope struct {
	sender  *PID
	message interface{}
}

package bollywood

// Actor processes the messages of its mailbox one at a time.
type Actor interface {
	// Receive handles the message held by ctx. System messages (Started,
	// Stopping, Stopped) arrive through the same method.
	Receive(ctx Context)
}

// ActorFunc adapts a plain function to the Actor interface.
type ActorFunc func(ctx Context)

func (f ActorFunc) Receive(ctx Context) { f(ctx) }

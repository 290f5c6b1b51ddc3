package bollywood

// Producer creates a fresh actor instance.
type Producer func() Actor

// Props describes how to create an actor.
type Props struct {
	producer    Producer
	mailboxSize int
	name        string
}

// NewProps panics on a nil producer.
func NewProps(producer Producer) *Props {
	if producer == nil {
		panic("bollywood: producer cannot be nil")
	}
	return &Props{
		producer:    producer,
		mailboxSize: defaultMailboxSize,
	}
}

// WithMailboxSize sets the capacity of the actor's mailbox. Messages sent to
// a full mailbox are dropped.
func (p *Props) WithMailboxSize(size int) *Props {
	if size > 0 {
		p.mailboxSize = size
	}
	return p
}

// WithName prefixes the generated PID, which shows up in log lines.
func (p *Props) WithName(name string) *Props {
	p.name = name
	return p
}

func (p *Props) Produce() Actor {
	return p.producer()
}

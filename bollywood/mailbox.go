package bollywood

import "sync/atomic"

const defaultMailboxSize = 1024

// mailbox is a bounded FIFO queue. Posting never blocks the sender: when the
// queue is full the message is dropped and counted.
type mailbox struct {
	queue   chan envelope
	dropped atomic.Uint64
}

func newMailbox(size int) *mailbox {
	return &mailbox{queue: make(chan envelope, size)}
}

func (m *mailbox) post(e envelope) bool {
	select {
	case m.queue <- e:
		return true
	default:
		m.dropped.Add(1)
		return false
	}
}

func (m *mailbox) Dropped() uint64 {
	return m.dropped.Load()
}

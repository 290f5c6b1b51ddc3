// File: bollywood/process.go
package bollywood

import (
	"log"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// process is the running instance of an actor: its mailbox and the goroutine
// draining it.
type process struct {
	engine   *Engine
	pid      *PID
	props    *Props
	actor    Actor
	mailbox  *mailbox
	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	stopped  atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: newMailbox(props.mailboxSize),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (p *process) send(message interface{}, sender *PID) {
	if p.stopped.Load() {
		return
	}
	if !p.mailbox.post(envelope{sender: sender, message: message}) {
		log.Printf("Actor %s mailbox full, dropping %T", p.pid, message)
	}
}

func (p *process) stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

func (p *process) run() {
	defer close(p.done)
	defer p.engine.remove(p.pid)
	defer p.stopped.Store(true)

	actor, ok := p.produce()
	if !ok {
		return
	}
	p.actor = actor

	if !p.invoke(Started{}, nil) {
		p.terminate()
		return
	}

	for {
		select {
		case <-p.stopCh:
			p.terminate()
			return
		case env := <-p.mailbox.queue:
			if !p.invoke(env.message, env.sender) {
				p.terminate()
				return
			}
		}
	}
}

// terminate delivers the closing system messages. Anything left in the
// mailbox is discarded.
func (p *process) terminate() {
	p.stopped.Store(true)
	p.invoke(Stopping{}, nil)
	p.invoke(Stopped{}, nil)
}

func (p *process) produce() (actor Actor, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Actor %s producer panicked: %v\nStack trace:\n%s", p.pid, r, debug.Stack())
			actor, ok = nil, false
		}
	}()
	actor = p.props.Produce()
	if actor == nil {
		log.Printf("Actor %s producer returned nil actor", p.pid)
		return nil, false
	}
	return actor, true
}

// invoke calls Receive and reports false if it panicked. A panicking actor is
// stopped.
func (p *process) invoke(message interface{}, sender *PID) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Actor %s panicked during Receive(%T): %v\nStack trace:\n%s", p.pid, message, r, debug.Stack())
			ok = false
		}
	}()
	p.actor.Receive(&context{
		engine:  p.engine,
		self:    p.pid,
		sender:  sender,
		message: message,
	})
	return true
}

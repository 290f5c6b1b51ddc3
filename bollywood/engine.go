// File: bollywood/engine.go
package bollywood

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// Engine spawns actors and routes messages to them.
type Engine struct {
	pidCounter atomic.Uint64
	mu         sync.RWMutex
	actors     map[string]*process
	stopping   atomic.Bool
}

func NewEngine() *Engine {
	return &Engine{
		actors: make(map[string]*process),
	}
}

func (e *Engine) nextPID(name string) *PID {
	id := e.pidCounter.Add(1)
	if name == "" {
		name = "actor"
	}
	return &PID{ID: fmt.Sprintf("%s-%d", name, id)}
}

// Spawn starts a new actor and returns its PID, or nil once the engine is
// shutting down.
func (e *Engine) Spawn(props *Props) *PID {
	if e.stopping.Load() {
		log.Printf("Engine is stopping, cannot spawn new actors")
		return nil
	}

	pid := e.nextPID(props.name)
	proc := newProcess(e, pid, props)

	e.mu.Lock()
	e.actors[pid.ID] = proc
	e.mu.Unlock()

	go proc.run()
	return pid
}

// Send posts message to the actor's mailbox without blocking. sender may be
// nil for messages from outside the actor system.
func (e *Engine) Send(pid *PID, message interface{}, sender *PID) {
	if pid == nil || e.stopping.Load() {
		return
	}

	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()

	if !ok {
		log.Printf("Actor %s not found, dropping %T", pid, message)
		return
	}
	proc.send(message, sender)
}

// Stop asks the actor to stop. It receives Stopping and Stopped, and messages
// still queued are discarded.
func (e *Engine) Stop(pid *PID) {
	if pid == nil {
		return
	}
	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()
	if ok {
		proc.stop()
	}
}

// Running reports whether the actor is still registered.
func (e *Engine) Running(pid *PID) bool {
	if pid == nil {
		return false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.actors[pid.ID]
	return ok
}

func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.actors, pid.ID)
	e.mu.Unlock()
}

// Shutdown stops every actor and waits up to timeout for them to exit.
func (e *Engine) Shutdown(timeout time.Duration) {
	if !e.stopping.CompareAndSwap(false, true) {
		return
	}

	e.mu.RLock()
	procs := make([]*process, 0, len(e.actors))
	for _, proc := range e.actors {
		procs = append(procs, proc)
	}
	e.mu.RUnlock()

	log.Printf("Engine: stopping %d actors", len(procs))
	for _, proc := range procs {
		proc.stop()
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for _, proc := range procs {
		select {
		case <-proc.done:
		case <-deadline.C:
			e.mu.RLock()
			remaining := len(e.actors)
			e.mu.RUnlock()
			log.Printf("Engine: shutdown timeout, %d actors did not stop", remaining)
			return
		}
	}
	log.Printf("Engine: shutdown complete")
}

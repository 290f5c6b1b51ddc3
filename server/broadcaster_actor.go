// File: server/broadcaster_actor.go
package server

import (
	"log"
	"time"

	"golang.org/x/net/websocket"

	"github.com/lguibr/pongduel/bollywood"
)

const writeTimeout = 2 * time.Second

// BroadcasterActor owns the spectator connections and pushes frames to them.
// New spectators get the latest frame right away.
type BroadcasterActor struct {
	clients map[*websocket.Conn]bool
	latest  *Frame
	selfPID *bollywood.PID
}

func NewBroadcasterProducer() bollywood.Producer {
	return func() bollywood.Actor {
		return &BroadcasterActor{
			clients: make(map[*websocket.Conn]bool),
		}
	}
}

func (a *BroadcasterActor) Receive(ctx bollywood.Context) {
	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		log.Printf("Broadcaster %s: started", a.selfPID)

	case AddClient:
		if msg.Conn == nil {
			return
		}
		a.clients[msg.Conn] = true
		log.Printf("Broadcaster %s: spectator %s joined, %d watching", a.selfPID, remoteAddr(msg.Conn), len(a.clients))
		if a.latest != nil && !a.send(msg.Conn, a.latest) {
			a.drop(msg.Conn)
		}

	case RemoveClient:
		if _, ok := a.clients[msg.Conn]; ok {
			a.drop(msg.Conn)
		}

	case BroadcastFrame:
		a.latest = msg.Frame
		for conn := range a.clients {
			if !a.send(conn, msg.Frame) {
				a.drop(conn)
			}
		}

	case bollywood.Stopping:
		if len(a.clients) > 0 {
			log.Printf("Broadcaster %s: stopping, closing %d connections", a.selfPID, len(a.clients))
		}
		for conn := range a.clients {
			a.drop(conn)
		}

	case bollywood.Stopped:

	default:
		log.Printf("Broadcaster %s: unknown message type %T", a.selfPID, msg)
	}
}

func (a *BroadcasterActor) send(conn *websocket.Conn, frame *Frame) bool {
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := websocket.JSON.Send(conn, frame); err != nil {
		log.Printf("Broadcaster %s: send to %s failed: %v", a.selfPID, remoteAddr(conn), err)
		return false
	}
	return true
}

func (a *BroadcasterActor) drop(conn *websocket.Conn) {
	delete(a.clients, conn)
	_ = conn.Close()
}

func remoteAddr(conn *websocket.Conn) string {
	if req := conn.Request(); req != nil {
		return req.RemoteAddr
	}
	return "unknown"
}

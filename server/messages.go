// File: server/messages.go
package server

import (
	"golang.org/x/net/websocket"

	"github.com/lguibr/pongduel/game"
)

// Frame is what spectators receive: the game state and the same frame drawn
// as ANSI-coloured text.
type Frame struct {
	Snapshot game.Snapshot `json:"snapshot"`
	ASCII    string        `json:"ascii"`
}

// AddClient registers a spectator connection with the broadcaster.
type AddClient struct {
	Conn *websocket.Conn
}

// RemoveClient unregisters and closes a spectator connection.
type RemoveClient struct {
	Conn *websocket.Conn
}

// BroadcastFrame asks the broadcaster to push a frame to every spectator.
type BroadcastFrame struct {
	Frame *Frame
}

// File: server/server.go
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"sync/atomic"
	"time"

	"golang.org/x/net/websocket"

	"github.com/lguibr/pongduel/bollywood"
	"github.com/lguibr/pongduel/game"
	"github.com/lguibr/pongduel/render"
	"github.com/lguibr/pongduel/utils"
)

// Size of the text frame sent to spectators.
const (
	ASCIICols = 80
	ASCIIRows = 24
)

const shutdownTimeout = 2 * time.Second

// Server is the read-only spectator feed. It is the FrameSink of the game
// session: PublishFrame runs on the frame goroutine and hands frames to the
// broadcaster actor at most SpectatorRate times per second.
type Server struct {
	Clock func() time.Time

	engine         *bollywood.Engine
	broadcasterPID *bollywood.PID
	interval       time.Duration
	lastPublish    time.Time
	latest         atomic.Pointer[Frame]
}

// New spawns the broadcaster on engine.
func New(engine *bollywood.Engine, cfg utils.Config) *Server {
	interval := time.Duration(0)
	if cfg.SpectatorRate > 0 {
		interval = time.Second / time.Duration(cfg.SpectatorRate)
	}
	pid := engine.Spawn(bollywood.NewProps(NewBroadcasterProducer()).WithName("broadcaster"))
	return newServer(engine, pid, interval)
}

func newServer(engine *bollywood.Engine, broadcasterPID *bollywood.PID, interval time.Duration) *Server {
	return &Server{
		Clock:          time.Now,
		engine:         engine,
		broadcasterPID: broadcasterPID,
		interval:       interval,
	}
}

// PublishFrame implements game.FrameSink.
func (s *Server) PublishFrame(snapshot game.Snapshot, scene game.Scene) {
	now := s.Clock()
	if !s.lastPublish.IsZero() && now.Sub(s.lastPublish) < s.interval {
		return
	}
	s.lastPublish = now

	frame := &Frame{
		Snapshot: snapshot,
		ASCII:    render.SceneToASCII(scene, ASCIICols, ASCIIRows, true),
	}
	s.latest.Store(frame)
	s.engine.Send(s.broadcasterPID, BroadcastFrame{Frame: frame}, nil)
}

// Latest returns the last published frame, or nil before the first one.
func (s *Server) Latest() *Frame {
	return s.latest.Load()
}

// Handler routes GET / to the latest snapshot and /subscribe to the
// websocket feed.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.HandleGetState())
	mux.Handle("/subscribe", websocket.Handler(s.HandleSubscribe()))
	return mux
}

// Serve listens on addr until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Printf("Server: spectator feed on %s", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown spectator feed: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve spectators on %s: %w", addr, err)
	}
}

// HandleGetState writes the latest snapshot as JSON.
func (s *Server) HandleGetState() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("Server: panic in HandleGetState: %v\n%s", rec, debug.Stack())
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		frame := s.Latest()
		if frame == nil {
			http.Error(w, "no frame yet", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(frame.Snapshot); err != nil {
			log.Printf("Server: write state: %v", err)
		}
	}
}

// HandleSubscribe registers the connection with the broadcaster and keeps it
// open until the spectator leaves. Anything the spectator sends is ignored.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		addr := remoteAddr(ws)
		log.Printf("Server: spectator connected from %s", addr)
		s.engine.Send(s.broadcasterPID, AddClient{Conn: ws}, nil)
		defer s.engine.Send(s.broadcasterPID, RemoveClient{Conn: ws}, nil)

		buf := make([]byte, 512)
		for {
			if _, err := ws.Read(buf); err != nil {
				log.Printf("Server: spectator %s left: %v", addr, err)
				return
			}
		}
	}
}

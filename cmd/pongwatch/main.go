// Command pongwatch follows a pongduel game from another terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lguibr/asciiring/helpers"
	"golang.org/x/net/websocket"

	"github.com/lguibr/pongduel/server"
)

func main() {
	url := flag.String("url", "ws://localhost:3001/subscribe", "spectator feed to follow")
	origin := flag.String("origin", "http://localhost/", "websocket origin header")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *url, *origin); err != nil {
		fmt.Fprintln(os.Stderr, "pongwatch:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, url, origin string) error {
	conn, err := websocket.Dial(url, "", origin)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", url, err)
	}
	defer conn.Close()

	quit := make(chan struct{})
	if restore, err := setRawMode(os.Stdin.Fd()); err != nil {
		fmt.Fprintln(os.Stderr, "pongwatch: keyboard disabled:", err)
	} else {
		defer restore()
		go readQuitKey(quit)
	}

	frames := make(chan server.Frame)
	errCh := make(chan error, 1)
	go func() {
		for {
			var frame server.Frame
			if err := websocket.JSON.Receive(conn, &frame); err != nil {
				errCh <- err
				return
			}
			frames <- frame
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-quit:
			return nil
		case err := <-errCh:
			return fmt.Errorf("feed closed: %w", err)
		case frame := <-frames:
			helpers.ClearScreen()
			fmt.Print(formatFrame(frame))
		}
	}
}

// readQuitKey closes quit when q or Ctrl-C is typed.
func readQuitKey(quit chan<- struct{}) {
	buf := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(buf); err != nil {
			return
		}
		switch buf[0] {
		case 'q', 'Q', 3:
			close(quit)
			return
		}
	}
}

func formatFrame(frame server.Frame) string {
	var b strings.Builder
	b.WriteString(frame.ASCII)
	s := frame.Snapshot
	fmt.Fprintf(&b, "frame %d  %s  games %d", s.Frame, s.State, s.GamesPlayed)
	if s.Winner != "" {
		fmt.Fprintf(&b, "  winner %s", s.Winner)
	}
	b.WriteString("  (q to quit)\n")
	return b.String()
}

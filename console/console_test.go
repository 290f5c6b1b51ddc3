package console

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lguibr/pongduel/game"
	"github.com/lguibr/pongduel/utils"
)

type frameRecorder struct {
	snapshots chan game.Snapshot
}

func (r frameRecorder) PublishFrame(s game.Snapshot, _ game.Scene) {
	select {
	case r.snapshots <- s:
	default:
	}
}

func newConsole(t *testing.T) (*Console, tcell.SimulationScreen, frameRecorder) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	rec := frameRecorder{snapshots: make(chan game.Snapshot, 1024)}
	g := game.New(utils.StandardRules(), utils.ModeDuel, rand.New(rand.NewSource(1)))
	session := game.NewSession(g, nil, rec)

	cfg := utils.DefaultConfig()
	cfg.TargetFPS = 200
	return New(screen, session, cfg), screen, rec
}

func runAsync(ctx context.Context, c *Console) <-chan error {
	errCh := make(chan error, 1)
	go func() { errCh <- c.Run(ctx) }()
	return errCh
}

func TestConsole_QuitKey(t *testing.T) {
	c, screen, _ := newConsole(t)
	errCh := runAsync(context.Background(), c)

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("console did not stop on escape")
	}
}

func TestConsole_ContextCancel(t *testing.T) {
	c, _, _ := newConsole(t)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := runAsync(ctx, c)

	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("console did not stop on cancel")
	}
}

func TestConsole_EnterStartsMatch(t *testing.T) {
	c, screen, rec := newConsole(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := runAsync(ctx, c)

	first := <-rec.snapshots
	assert.Equal(t, game.NotStarted, first.State)

	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	deadline := time.After(2 * time.Second)
	for started := false; !started; {
		select {
		case s := <-rec.snapshots:
			started = s.State == game.Playing
		case <-deadline:
			t.Fatal("match did not start")
		}
	}

	cancel()
	require.NoError(t, <-errCh)
}

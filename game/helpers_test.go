// File: game/helpers_test.go
package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lguibr/pongduel/utils"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestGame(t *testing.T, mode string) *Game {
	t.Helper()
	return New(utils.StandardRules(), mode, rand.New(rand.NewSource(1)))
}

// liveAfter returns a time at which the ball is past its grace period.
func liveAfter(g *Game) time.Time {
	return g.Match.ResetAt.Add(g.Rules.GracePeriod + time.Millisecond)
}

func countEvents[T Event](events []Event) int {
	n := 0
	for _, e := range events {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}

func within(inner, outer utils.Rect) bool {
	const eps = 1e-9
	return inner.X >= outer.X-eps &&
		inner.Y >= outer.Y-eps &&
		inner.Right() <= outer.Right()+eps &&
		inner.Bottom() <= outer.Bottom()+eps
}

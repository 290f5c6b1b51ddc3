// File: game/snapshot.go
package game

import "github.com/lguibr/pongduel/utils"

// Snapshot is a copy of the game state that is safe to hand to other
// goroutines and to encode as JSON.
type Snapshot struct {
	Frame       uint64        `json:"frame"`
	Mode        string        `json:"mode"`
	State       MatchState    `json:"state"`
	LeftScore   int           `json:"leftScore"`
	RightScore  int           `json:"rightScore"`
	Winner      string        `json:"winner,omitempty"`
	GamesPlayed int           `json:"gamesPlayed"`
	Prompt      bool          `json:"prompt"`
	Ball        Ball          `json:"ball"`
	Paddles     []Paddle      `json:"paddles"`
	Arena       utils.Rect    `json:"arena"`
	Window      utils.Vector2 `json:"window"`
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Mode:        g.Mode,
		State:       g.Match.State,
		LeftScore:   g.Match.LeftScore,
		RightScore:  g.Match.RightScore,
		GamesPlayed: g.Match.GamesPlayed,
		Prompt:      g.Match.PromptVisible(),
		Ball:        *g.Ball,
		Paddles:     make([]Paddle, len(g.Paddles)),
		Arena:       g.Rules.Arena(),
		Window:      g.Rules.Window,
	}
	if g.Match.HasWinner() {
		s.Winner = g.Match.Winner.String()
	}
	for i, p := range g.Paddles {
		s.Paddles[i] = *p
	}
	return s
}

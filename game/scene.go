// File: game/scene.go
package game

import (
	"fmt"

	"github.com/lguibr/pongduel/utils"
)

type Color int

const (
	ColorWhite Color = iota
	ColorYellow
)

type Line struct {
	From, To utils.Vector2
	Color    Color
}

type Box struct {
	Rect  utils.Rect
	Color Color
}

type Circle struct {
	Center utils.Vector2
	Radius float64
	Color  Color
}

// Text is a line of text horizontally centred on X with its top at Y.
type Text struct {
	Value string
	X, Y  float64
	Size  int
	Color Color
}

// Scene lists the primitives of one frame in window coordinates. The game
// never draws; front-ends and the spectator feed consume a Scene.
type Scene struct {
	Width, Height float64
	Lines         []Line
	Boxes         []Box
	Circles       []Circle
	Texts         []Text
}

// Scene describes the current frame.
func (g *Game) Scene() Scene {
	r := g.Rules
	w, h := r.Window.X, r.Window.Y
	mx, my := r.BorderMargin.X, r.BorderMargin.Y

	scene := Scene{
		Width:  w,
		Height: h,
		Lines: []Line{
			{From: utils.Vector2{X: mx, Y: my}, To: utils.Vector2{X: w - mx, Y: my}},
			{From: utils.Vector2{X: mx, Y: h - my}, To: utils.Vector2{X: w - mx, Y: h - my}},
			{From: utils.Vector2{X: w / 2, Y: my}, To: utils.Vector2{X: w / 2, Y: h - my}},
		},
		Circles: []Circle{{Center: g.Ball.Position, Radius: g.Ball.Radius}},
	}
	for _, p := range g.Paddles {
		scene.Boxes = append(scene.Boxes, Box{Rect: p.Rect()})
	}

	if g.Match.HasWinner() {
		scene.Texts = append(scene.Texts, Text{
			Value: fmt.Sprintf(utils.WinnerFormat, g.Match.Winner),
			X:     w / 2,
			Y:     h/4 - float64(utils.BannerSize)/2,
			Size:  utils.BannerSize,
			Color: ColorYellow,
		})
	}
	if g.Match.PromptVisible() {
		scene.Texts = append(scene.Texts, Text{
			Value: utils.ContinueText,
			X:     w / 2,
			Y:     h/4*3 - float64(utils.FontSize)/2,
			Size:  utils.FontSize,
			Color: ColorYellow,
		})
	}
	scene.Texts = append(scene.Texts,
		Text{Value: utils.Title, X: w / 2, Y: h - my, Size: utils.FontSize},
		Text{Value: g.ScoreText(), X: w / 2, Y: 0, Size: utils.FontSize},
	)
	return scene
}

// ScoreText formats the score as shown at the top of the screen.
func (g *Game) ScoreText() string {
	return fmt.Sprintf(utils.ScoreFormat, g.Match.LeftScore, g.Match.RightScore)
}
